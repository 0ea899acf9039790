package validation

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(size int64, contentType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "photo.jpg",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidateUpload(t *testing.T) {
	testCases := []struct {
		name    string
		slot    Slot
		file    *multipart.FileHeader
		wantErr error
	}{
		{
			name: "gallery jpeg within limit",
			slot: SlotGallery,
			file: fileHeader(4*1024*1024, "image/jpeg"),
		},
		{
			name:    "gallery file over 5MB ceiling",
			slot:    SlotGallery,
			file:    fileHeader(6*1024*1024, "image/jpeg"),
			wantErr: ErrFileSize,
		},
		{
			name:    "logo over 2MB ceiling",
			slot:    SlotLogo,
			file:    fileHeader(3*1024*1024, "image/png"),
			wantErr: ErrFileSize,
		},
		{
			name:    "favicon over 1MB ceiling",
			slot:    SlotFavicon,
			file:    fileHeader(2*1024*1024, "image/png"),
			wantErr: ErrFileSize,
		},
		{
			name:    "gallery rejects svg",
			slot:    SlotGallery,
			file:    fileHeader(1024, "image/svg+xml"),
			wantErr: ErrFileType,
		},
		{
			name:    "gallery rejects pdf",
			slot:    SlotGallery,
			file:    fileHeader(1024, "application/pdf"),
			wantErr: ErrFileType,
		},
		{
			name: "logo accepts svg",
			slot: SlotLogo,
			file: fileHeader(1024, "image/svg+xml"),
		},
		{
			name:    "missing file",
			slot:    SlotGallery,
			file:    nil,
			wantErr: ErrFileRequired,
		},
		{
			name:    "unknown slot",
			slot:    Slot("banner"),
			file:    fileHeader(1024, "image/jpeg"),
			wantErr: ErrUnknownSlot,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUpload(tc.slot, tc.file)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigureOverridesKnownSlotsOnly(t *testing.T) {
	original, ok := Limits(SlotGallery)
	require.True(t, ok)
	defer func() {
		slotLimits[SlotGallery] = original
	}()

	Configure(map[string]SlotOverride{
		"gallery": {MaxSizeMB: 1, Types: []string{"image/png"}},
		"banner":  {MaxSizeMB: 99, Types: []string{"image/gif"}},
	})

	limits, ok := Limits(SlotGallery)
	require.True(t, ok)
	assert.Equal(t, int64(1024*1024), limits.MaxSize)
	assert.True(t, limits.AllowedTypes["image/png"])
	assert.False(t, limits.AllowedTypes["image/jpeg"])

	_, ok = Limits(Slot("banner"))
	assert.False(t, ok, "a config file cannot invent slots")
}

type sampleInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Units int    `json:"units" validate:"omitempty,min=0"`
}

func TestFieldsKeysErrorsByJSONName(t *testing.T) {
	errs := Fields(&sampleInput{Email: "not-an-email", Units: -1})

	assert.Equal(t, "This field is required", errs["name"])
	assert.Equal(t, "Must be a valid email address", errs["email"])
	assert.Contains(t, errs, "units")
	assert.NotContains(t, errs, "Name")
}

func TestFieldsEmptyOnValidInput(t *testing.T) {
	errs := Fields(&sampleInput{Name: "Tower", Email: "a@b.co", Units: 3})
	assert.Empty(t, errs)
}
