// Package selection maintains the chosen subset of a catalog, used by the
// amenity and maintenance-fee-amenity pickers.
package selection

import "strings"

// Entity is a catalog entry addressable by numeric ID.
type Entity interface {
	EntityID() uint
	EntityName() string
}

// Toggle flips membership of entity in the selection: present by ID means
// remove, absent means append. Equality is by ID, never by value.
func Toggle[T Entity](sel []T, entity T) []T {
	for i, e := range sel {
		if e.EntityID() == entity.EntityID() {
			out := make([]T, 0, len(sel)-1)
			out = append(out, sel[:i]...)
			return append(out, sel[i+1:]...)
		}
	}
	out := make([]T, len(sel), len(sel)+1)
	copy(out, sel)
	return append(out, entity)
}

// Contains reports whether the selection holds an entity with the given ID.
func Contains[T Entity](sel []T, id uint) bool {
	for _, e := range sel {
		if e.EntityID() == id {
			return true
		}
	}
	return false
}

// Search filters the catalog by case-insensitive substring match on name.
// The selection is untouched; an empty query returns the whole catalog.
func Search[T Entity](catalog []T, query string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]T, len(catalog))
		copy(out, catalog)
		return out
	}
	var out []T
	for _, e := range catalog {
		if strings.Contains(strings.ToLower(e.EntityName()), query) {
			out = append(out, e)
		}
	}
	return out
}

// IDs projects the selection to the ordered ID sequence sent on submission.
func IDs[T Entity](sel []T) []uint {
	out := make([]uint, len(sel))
	for i, e := range sel {
		out[i] = e.EntityID()
	}
	return out
}
