// Package listops provides pure operations over ordered record lists, the
// editing primitive behind FAQ entries, footer links, hero buttons, tab items
// and header navigation. Every operation returns a new slice; callers keep
// the previous list until they commit the result.
package listops

import (
	"errors"

	"github.com/google/uuid"
)

// ErrIndexOutOfRange reports an index that does not address a list element.
// Field updates treat this as a caller bug rather than a silent no-op.
var ErrIndexOutOfRange = errors.New("listops: index out of range")

// Identifiable is implemented by list items carrying a stable ID.
type Identifiable interface {
	ItemID() string
}

// NewItemID returns a stable identifier for a newly created list item.
func NewItemID() string {
	return uuid.NewString()
}

// Append returns list with item added at the end.
func Append[T any](list []T, item T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, item)
}

// Remove returns list without the element at i. An out-of-range index
// returns an unchanged copy.
func Remove[T any](list []T, i int) []T {
	if i < 0 || i >= len(list) {
		return clone(list)
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// Update returns list with the element at i replaced by fn(element).
func Update[T any](list []T, i int, fn func(T) T) ([]T, error) {
	if i < 0 || i >= len(list) {
		return nil, ErrIndexOutOfRange
	}
	out := clone(list)
	out[i] = fn(out[i])
	return out, nil
}

// MoveUp swaps the element at i with its predecessor. The first element
// stays put.
func MoveUp[T any](list []T, i int) []T {
	if i <= 0 || i >= len(list) {
		return clone(list)
	}
	out := clone(list)
	out[i-1], out[i] = out[i], out[i-1]
	return out
}

// MoveDown swaps the element at i with its successor. The last element
// stays put.
func MoveDown[T any](list []T, i int) []T {
	if i < 0 || i >= len(list)-1 {
		return clone(list)
	}
	out := clone(list)
	out[i], out[i+1] = out[i+1], out[i]
	return out
}

// RemoveByID returns list without the item whose ID matches. Unknown IDs
// leave the list unchanged.
func RemoveByID[T Identifiable](list []T, id string) []T {
	for i, item := range list {
		if item.ItemID() == id {
			return Remove(list, i)
		}
	}
	return clone(list)
}

// UpdateByID applies fn to the item whose ID matches and reports whether a
// match was found.
func UpdateByID[T Identifiable](list []T, id string, fn func(T) T) ([]T, bool) {
	for i, item := range list {
		if item.ItemID() == id {
			out, err := Update(list, i, fn)
			if err != nil {
				return clone(list), false
			}
			return out, true
		}
	}
	return clone(list), false
}

func clone[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}
