package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type entity struct {
	id   uint
	name string
}

func (e entity) EntityID() uint     { return e.id }
func (e entity) EntityName() string { return e.name }

var catalog = []entity{
	{1, "Concierge"},
	{2, "Fitness Centre"},
	{3, "Rooftop Terrace"},
	{4, "Indoor Pool"},
}

func TestToggleAddsAndRemoves(t *testing.T) {
	sel := []entity{}

	sel = Toggle(sel, catalog[0])
	assert.True(t, Contains(sel, 1))

	sel = Toggle(sel, catalog[1])
	assert.Len(t, sel, 2)

	sel = Toggle(sel, catalog[0])
	assert.False(t, Contains(sel, 1))
	assert.True(t, Contains(sel, 2))
}

func TestToggleIsAnInvolution(t *testing.T) {
	sel := []entity{catalog[0], catalog[2]}

	twice := Toggle(Toggle(sel, catalog[1]), catalog[1])

	assert.ElementsMatch(t, sel, twice)
}

func TestToggleMatchesByIDNotValue(t *testing.T) {
	// A renamed copy of an already selected entity still toggles it off.
	sel := []entity{{1, "Concierge"}}
	sel = Toggle(sel, entity{1, "Concierge Desk"})

	assert.Empty(t, sel)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	testCases := []struct {
		query string
		want  []string
	}{
		{query: "pool", want: []string{"Indoor Pool"}},
		{query: "FITNESS", want: []string{"Fitness Centre"}},
		{query: "o", want: []string{"Concierge", "Rooftop Terrace", "Indoor Pool"}},
		{query: "", want: []string{"Concierge", "Fitness Centre", "Rooftop Terrace", "Indoor Pool"}},
		{query: "zzz", want: nil},
	}

	for _, tc := range testCases {
		got := Search(catalog, tc.query)
		var names []string
		for _, e := range got {
			names = append(names, e.name)
		}
		assert.Equal(t, tc.want, names, "query %q", tc.query)
	}
}

func TestSearchDoesNotTouchSelection(t *testing.T) {
	sel := []entity{catalog[0]}
	_ = Search(catalog, "pool")

	assert.Equal(t, []entity{catalog[0]}, sel)
}

func TestIDsProjectsInOrder(t *testing.T) {
	sel := []entity{catalog[2], catalog[0], catalog[3]}

	assert.Equal(t, []uint{3, 1, 4}, IDs(sel))
}
