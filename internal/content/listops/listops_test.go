package listops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   string
	Text string
}

func (i testItem) ItemID() string { return i.ID }

func items(texts ...string) []testItem {
	out := make([]testItem, len(texts))
	for i, text := range texts {
		out[i] = testItem{ID: text, Text: text}
	}
	return out
}

func TestAppend(t *testing.T) {
	original := items("a", "b")
	got := Append(original, testItem{ID: "c", Text: "c"})

	assert.Equal(t, items("a", "b", "c"), got)
	assert.Equal(t, items("a", "b"), original, "input list must not be mutated")
}

func TestRemove(t *testing.T) {
	testCases := []struct {
		name  string
		index int
		want  []testItem
	}{
		{name: "first", index: 0, want: items("b", "c")},
		{name: "middle", index: 1, want: items("a", "c")},
		{name: "last", index: 2, want: items("a", "b")},
		{name: "negative is a no-op", index: -1, want: items("a", "b", "c")},
		{name: "past the end is a no-op", index: 3, want: items("a", "b", "c")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Remove(items("a", "b", "c"), tc.index))
		})
	}
}

func TestUpdateOutOfRangeIsAnError(t *testing.T) {
	_, err := Update(items("a"), 1, func(i testItem) testItem { return i })
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Update(items("a"), -1, func(i testItem) testItem { return i })
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestUpdateReplacesOneElement(t *testing.T) {
	got, err := Update(items("a", "b"), 1, func(i testItem) testItem {
		i.Text = "B"
		return i
	})
	require.NoError(t, err)

	assert.Equal(t, "a", got[0].Text)
	assert.Equal(t, "B", got[1].Text)
}

func TestMoveBoundariesAreNoOps(t *testing.T) {
	list := items("a", "b", "c")

	assert.Equal(t, list, MoveUp(list, 0))
	assert.Equal(t, list, MoveDown(list, 2))
	assert.Equal(t, list, MoveUp(list, 5))
	assert.Equal(t, list, MoveDown(list, -1))
}

func TestMoveUpThenDownIsIdentity(t *testing.T) {
	// moveDown(moveUp(list, i), i-1) == list for interior indices.
	list := items("a", "b", "c", "d")
	for i := 1; i < len(list); i++ {
		moved := MoveUp(list, i)
		assert.Equal(t, list, MoveDown(moved, i-1), "index %d", i)
	}
}

func TestMoveOrderRoundTrips(t *testing.T) {
	list := items("a", "b", "c")

	got := MoveDown(list, 0)
	assert.Equal(t, items("b", "a", "c"), got)

	got = MoveUp(got, 2)
	assert.Equal(t, items("b", "c", "a"), got)
}

func TestRemoveByID(t *testing.T) {
	assert.Equal(t, items("a", "c"), RemoveByID(items("a", "b", "c"), "b"))
	assert.Equal(t, items("a", "b"), RemoveByID(items("a", "b"), "missing"))
}

func TestUpdateByID(t *testing.T) {
	got, ok := UpdateByID(items("a", "b"), "b", func(i testItem) testItem {
		i.Text = "B"
		return i
	})
	require.True(t, ok)
	assert.Equal(t, "B", got[1].Text)

	_, ok = UpdateByID(items("a"), "missing", func(i testItem) testItem { return i })
	assert.False(t, ok)
}

func TestNewItemIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewItemID()
		require.NotEmpty(t, id)
		require.False(t, seen[id])
		seen[id] = true
	}
}
