package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

func TestMergeEmptyPatchYieldsDefaults(t *testing.T) {
	defaults := DefaultDocument()
	merged := Merge(defaults, Patch{})

	assert.Equal(t, defaults, merged)
}

func TestMergeScalarCoalesce(t *testing.T) {
	defaults := DefaultDocument()

	// Only the main heading is persisted; every other hero field must keep
	// its default.
	merged := Merge(defaults, Patch{
		Hero: &HeroPatch{MainHeading: strPtr("Custom")},
	})

	assert.Equal(t, "Custom", merged.Hero.MainHeading)
	assert.Equal(t, defaults.Hero.SubHeading, merged.Hero.SubHeading)
	assert.Equal(t, defaults.Hero.SearchPlaceholder, merged.Hero.SearchPlaceholder)
	assert.Equal(t, defaults.Hero.Buttons, merged.Hero.Buttons)

	// Untouched sections come through whole.
	assert.Equal(t, defaults.About, merged.About)
	assert.Equal(t, defaults.Footer, merged.Footer)
	assert.Equal(t, defaults.MLSSettings, merged.MLSSettings)
}

func TestMergeScalarCoalesceKeepsExplicitZeroValues(t *testing.T) {
	defaults := DefaultDocument()

	merged := Merge(defaults, Patch{
		Hero: &HeroPatch{SubHeading: strPtr("")},
		Footer: &FooterPatch{
			ShowSocialLinks: boolPtr(false),
		},
		CarouselSettings: &CarouselPatch{
			ForRent: &CarouselConfigPatch{Limit: intPtr(4)},
		},
	})

	// An explicitly persisted empty string or false wins over the default;
	// only absence falls back.
	assert.Equal(t, "", merged.Hero.SubHeading)
	assert.False(t, merged.Footer.ShowSocialLinks)
	assert.True(t, merged.Footer.ShowContactInfo)
	assert.Equal(t, 4, merged.CarouselSettings.ForRent.Limit)
	assert.Equal(t, defaults.CarouselSettings.ForSale, merged.CarouselSettings.ForSale)
}

func TestMergeListReplaceWholesale(t *testing.T) {
	defaults := DefaultDocument()

	links := []HeaderLink{
		{ID: "a", Text: "Alpha", URL: "/a", Enabled: true},
		{ID: "b", Text: "Beta", URL: "/b", Enabled: false},
	}
	faqs := []FAQItem{
		{ID: "q1", Question: "Q?", Answer: "A."},
	}

	merged := Merge(defaults, Patch{
		HeaderLinks: links,
		FAQ:         &FAQPatch{Items: faqs},
	})

	// Persisted lists replace wholesale, same order, same elements; they
	// are never element-wise merged with the defaults.
	assert.Equal(t, links, merged.HeaderLinks)
	assert.Equal(t, faqs, merged.FAQ.Items)
	assert.Equal(t, defaults.FAQ.Heading, merged.FAQ.Heading)
}

func TestMergeEmptyListFallsBackToDefaults(t *testing.T) {
	defaults := DefaultDocument()

	merged := Merge(defaults, Patch{
		HeaderLinks: []HeaderLink{},
		About:       &AboutPatch{KeyFacts: []TabItem{}},
	})

	assert.Equal(t, defaults.HeaderLinks, merged.HeaderLinks)
	assert.Equal(t, defaults.About.KeyFacts, merged.About.KeyFacts)
}

func TestMergeEveryDefaultFieldPathDefined(t *testing.T) {
	// Serialize the merged document and walk it against the serialized
	// defaults: every key present in the defaults must be present in the
	// merge output, whatever the patch.
	patches := []Patch{
		{},
		{Hero: &HeroPatch{MainHeading: strPtr("X")}},
		{About: &AboutPatch{Highlights: []TabItem{{ID: "h", Text: "T", Icon: "i"}}}},
		{Footer: &FooterPatch{Tagline: strPtr("t")}, MLSSettings: &MLSSettingsPatch{DefaultStatus: strPtr("draft")}},
	}

	defaultTree := toTree(t, DefaultDocument())

	for _, p := range patches {
		mergedTree := toTree(t, Merge(DefaultDocument(), p))
		assertKeysCovered(t, defaultTree, mergedTree, "")
	}
}

func toTree(t *testing.T, doc Document) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &tree))
	return tree
}

func assertKeysCovered(t *testing.T, want, got map[string]interface{}, path string) {
	t.Helper()
	for key, wv := range want {
		gv, ok := got[key]
		if !assert.True(t, ok, "missing key %s.%s", path, key) {
			continue
		}
		if wm, ok := wv.(map[string]interface{}); ok {
			gm, ok := gv.(map[string]interface{})
			if assert.True(t, ok, "key %s.%s lost its object shape", path, key) {
				assertKeysCovered(t, wm, gm, path+"."+key)
			}
		}
	}
}

func TestMergePatchRoundTripsThroughJSON(t *testing.T) {
	// The editor persists patches as JSON; absent fields must stay absent
	// after a round trip so the merge semantics survive storage.
	patch := Patch{
		Hero: &HeroPatch{MainHeading: strPtr("Custom")},
	}

	data, err := json.Marshal(patch)
	require.NoError(t, err)

	var restored Patch
	require.NoError(t, json.Unmarshal(data, &restored))

	require.NotNil(t, restored.Hero)
	require.NotNil(t, restored.Hero.MainHeading)
	assert.Equal(t, "Custom", *restored.Hero.MainHeading)
	assert.Nil(t, restored.Hero.SubHeading)
	assert.Nil(t, restored.About)
	assert.Nil(t, restored.HeaderLinks)
}

func TestEnsureItemIDs(t *testing.T) {
	patch := Patch{
		Hero: &HeroPatch{Buttons: []HeroButton{{Text: "Go"}, {ID: "keep", Text: "Stay"}}},
		FAQ:  &FAQPatch{Items: []FAQItem{{Question: "Q"}}},
		HeaderLinks: []HeaderLink{
			{Text: "Home", URL: "/"},
		},
	}

	EnsureItemIDs(&patch)

	assert.NotEmpty(t, patch.Hero.Buttons[0].ID)
	assert.Equal(t, "keep", patch.Hero.Buttons[1].ID)
	assert.NotEmpty(t, patch.FAQ.Items[0].ID)
	assert.NotEmpty(t, patch.HeaderLinks[0].ID)
}
