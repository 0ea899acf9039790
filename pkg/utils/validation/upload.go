// pkg/utils/validation/upload.go
package validation

import (
	"errors"
	"fmt"
	"mime/multipart"
)

var (
	ErrFileRequired = errors.New("no file provided")
	ErrFileSize     = errors.New("file size exceeds the limit for this slot")
	ErrFileType     = errors.New("file type is not allowed for this slot")
	ErrUnknownSlot  = errors.New("unknown upload slot")
)

// Slot is a named upload target with its own size and type constraints.
type Slot string

const (
	SlotGallery    Slot = "gallery"
	SlotLogo       Slot = "logo"
	SlotFavicon    Slot = "favicon"
	SlotAgentPhoto Slot = "agent_photo"
	SlotIcon       Slot = "icon"
)

// SlotLimits holds one slot's ceiling and MIME allow-list.
type SlotLimits struct {
	MaxSize      int64
	AllowedTypes map[string]bool
}

var slotLimits = map[Slot]SlotLimits{
	SlotGallery: {
		MaxSize:      5 * 1024 * 1024,
		AllowedTypes: map[string]bool{"image/jpeg": true, "image/png": true, "image/webp": true},
	},
	SlotLogo: {
		MaxSize:      2 * 1024 * 1024,
		AllowedTypes: map[string]bool{"image/jpeg": true, "image/png": true, "image/webp": true, "image/svg+xml": true},
	},
	SlotFavicon: {
		MaxSize:      1 * 1024 * 1024,
		AllowedTypes: map[string]bool{"image/png": true, "image/x-icon": true, "image/vnd.microsoft.icon": true},
	},
	SlotAgentPhoto: {
		MaxSize:      2 * 1024 * 1024,
		AllowedTypes: map[string]bool{"image/jpeg": true, "image/png": true},
	},
	SlotIcon: {
		MaxSize:      512 * 1024,
		AllowedTypes: map[string]bool{"image/svg+xml": true, "image/png": true},
	},
}

// SlotOverride is one slot's constraints as loaded from the slots YAML file.
type SlotOverride struct {
	MaxSizeMB int64
	Types     []string
}

// Configure overrides slot limits, typically from the slots YAML file.
// Unknown slot names are ignored so a stale config file cannot invent slots.
func Configure(overrides map[string]SlotOverride) {
	for name, o := range overrides {
		slot := Slot(name)
		if _, ok := slotLimits[slot]; !ok {
			continue
		}
		limits := SlotLimits{MaxSize: o.MaxSizeMB * 1024 * 1024, AllowedTypes: map[string]bool{}}
		for _, t := range o.Types {
			limits.AllowedTypes[t] = true
		}
		slotLimits[slot] = limits
	}
}

// Limits returns the constraints for a slot.
func Limits(slot Slot) (SlotLimits, bool) {
	l, ok := slotLimits[slot]
	return l, ok
}

// ValidateUpload checks a file against its slot's ceiling and allow-list
// before anything touches storage. A rejected file must cause zero storage
// calls and no state change.
func ValidateUpload(slot Slot, file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	limits, ok := slotLimits[slot]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
	}

	if file.Size > limits.MaxSize {
		return fmt.Errorf("%w: maximum is %d bytes", ErrFileSize, limits.MaxSize)
	}

	contentType := file.Header.Get("Content-Type")
	if !limits.AllowedTypes[contentType] {
		return fmt.Errorf("%w: got %s", ErrFileType, contentType)
	}

	return nil
}
