package pricing

import (
	"testing"

	"estimatepro/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want Rule
	}{
		{"", Rule{Kind: RuleAll}},
		{"   ", Rule{Kind: RuleAll}},
		{"All estimates", Rule{Kind: RuleAll}},
		{"If customer selects same layout", Rule{Kind: RuleSameLayout}},
		{"Layout stays the same", Rule{Kind: RuleSameLayout}},
		{"If customer selects toilet will change", Rule{Kind: RuleLayoutChange}},
		{"Layout change requested", Rule{Kind: RuleLayoutChange}},
		{"If customer selects yes for tiles", Rule{Kind: RuleTilesYes}},
		{"Tiles: select yes", Rule{Kind: RuleTilesYes}},
		{"Tiles supplied by client", Rule{Kind: RuleCustom}},
		{"If client selects lives in apartment", Rule{Kind: RuleApartment}},
		{"APARTMENT", Rule{Kind: RuleApartment}},
		{"Premium finish only", Rule{Kind: RuleTilingLevel, Level: "premium"}},
		{"budget", Rule{Kind: RuleTilingLevel, Level: "budget"}},
		{"Standard tiling", Rule{Kind: RuleTilingLevel, Level: "standard"}},
		{"Heritage homes", Rule{Kind: RuleCustom}},
		// "wall" contains "all" and the all check runs first.
		{"If client selects yes to wall change", Rule{Kind: RuleAll}},
		{"If client selects yes to wall layout change", Rule{Kind: RuleAll}},
		// "tiles" and "yes" win over a tier name.
		{"Premium tiles, yes", Rule{Kind: RuleTilesYes}},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.text))
		})
	}
}

func TestRule_TagRoundTrip(t *testing.T) {
	rules := []Rule{
		{Kind: RuleAll}, {Kind: RuleSameLayout}, {Kind: RuleLayoutChange}, {Kind: RuleTilesYes},
		{Kind: RuleApartment}, {Kind: RuleWallChange}, {Kind: RuleCustom},
		{Kind: RuleTilingLevel, Level: "budget"}, {Kind: RuleTilingLevel, Level: "standard"}, {Kind: RuleTilingLevel, Level: "premium"},
	}
	for _, r := range rules {
		got, ok := ParseTag(r.Tag())
		assert.True(t, ok, r.Tag())
		assert.Equal(t, r, got)
	}

	_, ok := ParseTag("tiling_level")
	assert.False(t, ok)
	_, ok = ParseTag("")
	assert.False(t, ok)
}

func TestRuleFor_UsesCacheOnlyWhenFresh(t *testing.T) {
	t.Run("fresh tag is trusted", func(t *testing.T) {
		item := entities.PricingItem{Applicability: "Whatever text", RuleTag: "wall_change", RuleSource: "Whatever text"}
		assert.Equal(t, Rule{Kind: RuleWallChange}, RuleFor(item))
	})

	t.Run("stale tag is reclassified", func(t *testing.T) {
		item := entities.PricingItem{Applicability: "If customer selects same layout", RuleTag: "apartment", RuleSource: "lives in apartment"}
		assert.Equal(t, Rule{Kind: RuleSameLayout}, RuleFor(item))
	})

	t.Run("unknown tag is reclassified", func(t *testing.T) {
		item := entities.PricingItem{Applicability: "premium", RuleTag: "bogus", RuleSource: "premium"}
		assert.Equal(t, Rule{Kind: RuleTilingLevel, Level: "premium"}, RuleFor(item))
	})
}

func TestAnnotate(t *testing.T) {
	in := []entities.PricingItem{
		{ItemName: "a", Applicability: "All estimates"},
		{ItemName: "b", Applicability: "If customer selects yes for tiles", RuleTag: "custom", RuleSource: "old"},
	}

	out := Annotate(in)

	assert.Equal(t, "all", out[0].RuleTag)
	assert.Equal(t, "All estimates", out[0].RuleSource)
	assert.Equal(t, "tiles_yes", out[1].RuleTag)
	assert.Equal(t, "If customer selects yes for tiles", out[1].RuleSource)
	assert.Equal(t, "custom", in[1].RuleTag, "input must not be mutated")
}

func TestShouldInclude(t *testing.T) {
	item := func(applicability string) entities.PricingItem {
		return entities.PricingItem{ItemName: "x", Applicability: applicability, IsActive: true}
	}

	cases := []struct {
		name string
		item entities.PricingItem
		p    Payload
		want bool
	}{
		{"all", item("All estimates"), Payload{}, true},
		{"custom fails open", item("Heritage homes"), Payload{}, true},
		{"same layout with flag absent", item("same layout"), Payload{}, true},
		{"same layout when toilet moves", item("same layout"), Payload{ToiletMove: true}, false},
		{"layout change with flag absent", item("toilet will change"), Payload{}, false},
		{"layout change when toilet moves", item("toilet will change"), Payload{ToiletMove: true}, true},
		{"tiles yes without tiles", item("If customer selects yes for tiles"), Payload{IncludeTiles: false}, false},
		{"tiles yes with tiles", item("If customer selects yes for tiles"), Payload{IncludeTiles: true}, true},
		{"apartment match", item("lives in apartment"), Payload{BathroomType: "Apartment - ensuite"}, true},
		{"apartment miss", item("lives in apartment"), Payload{BathroomType: "House"}, false},
		{"wall change tag absent flag", entities.PricingItem{Applicability: "x", RuleTag: "wall_change", RuleSource: "x"}, Payload{}, false},
		{"wall change tag set flag", entities.PricingItem{Applicability: "x", RuleTag: "wall_change", RuleSource: "x"}, Payload{WallChange: true}, true},
		{"tier match", item("Premium"), Payload{TilingLevel: "premium"}, true},
		{"tier mismatch", item("Premium"), Payload{TilingLevel: "Budget"}, false},
		{"tier with empty level", item("Standard"), Payload{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShouldInclude(tc.item, tc.p))
		})
	}
}
