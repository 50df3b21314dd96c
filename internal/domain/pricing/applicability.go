package pricing

import (
	"strings"

	"estimatepro/internal/domain/entities"
)

// RuleKind is the classified form of a free-text applicability phrase.

type RuleKind string

const (
	RuleAll          RuleKind = "all"
	RuleSameLayout   RuleKind = "same_layout"
	RuleLayoutChange RuleKind = "layout_change"
	RuleTilesYes     RuleKind = "tiles_yes"
	RuleApartment    RuleKind = "apartment"
	RuleWallChange   RuleKind = "wall_change"
	RuleTilingLevel  RuleKind = "tiling_level"
	RuleCustom       RuleKind = "custom"
)

// TilingLevels are the tier names a survey may select, in ascending wall coverage.
var TilingLevels = []string{"Budget", "Standard", "Premium"}

// DefaultTilingLevel is used to pick tiling quantities when the survey leaves the level blank.
const DefaultTilingLevel = "Standard"

// Rule is a classified applicability. Level is set only for RuleTilingLevel and is lowercased.
type Rule struct {
	Kind  RuleKind
	Level string
}

// Tag renders the rule as the string cached on a pricing item.
func (r Rule) Tag() string {
	if r.Kind == RuleTilingLevel {
		return r.Level
	}
	return string(r.Kind)
}

// ParseTag is the inverse of Rule.Tag.
func ParseTag(tag string) (Rule, bool) {
	switch RuleKind(tag) {
	case RuleAll, RuleSameLayout, RuleLayoutChange, RuleTilesYes, RuleApartment, RuleWallChange, RuleCustom:
		return Rule{Kind: RuleKind(tag)}, true
	}
	for _, level := range TilingLevels {
		if tag == strings.ToLower(level) {
			return Rule{Kind: RuleTilingLevel, Level: tag}, true
		}
	}
	return Rule{}, false
}

// Classify maps an applicability phrase to a Rule by case-insensitive substring
// matching. The first matching check wins, so "wall" phrases classify as
// RuleAll because "wall" contains "all". Empty text is RuleAll.
func Classify(text string) Rule {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return Rule{Kind: RuleAll}
	}

	has := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}

	switch {
	case has("all"):
		return Rule{Kind: RuleAll}
	case has("same layout", "layout stays"):
		return Rule{Kind: RuleSameLayout}
	case has("toilet will change", "layout change"):
		return Rule{Kind: RuleLayoutChange}
	case has("tiles") && has("yes", "select yes"):
		return Rule{Kind: RuleTilesYes}
	case has("apartment", "lives in apartment"):
		return Rule{Kind: RuleApartment}
	case has("wall") && has("change", "yes"):
		return Rule{Kind: RuleWallChange}
	}

	for _, level := range TilingLevels {
		l := strings.ToLower(level)
		if strings.Contains(lower, l) {
			return Rule{Kind: RuleTilingLevel, Level: l}
		}
	}
	return Rule{Kind: RuleCustom}
}

// RuleFor returns the cached rule of an item when it still matches the item's
// applicability text, and reclassifies otherwise.
func RuleFor(item entities.PricingItem) Rule {
	if item.RuleTag != "" && item.RuleSource == item.Applicability {
		if r, ok := ParseTag(item.RuleTag); ok {
			return r
		}
	}
	return Classify(item.Applicability)
}

// Annotate returns a copy of items with RuleTag and RuleSource refreshed.
func Annotate(items []entities.PricingItem) []entities.PricingItem {
	out := make([]entities.PricingItem, len(items))
	for i, item := range items {
		item.RuleTag = Classify(item.Applicability).Tag()
		item.RuleSource = item.Applicability
		out[i] = item
	}
	return out
}

// ShouldInclude decides whether an item applies to a survey. Unrecognised rules include the item.
func ShouldInclude(item entities.PricingItem, p Payload) bool {
	r := RuleFor(item)
	switch r.Kind {
	case RuleAll, RuleCustom:
		return true
	case RuleSameLayout:
		return !p.ToiletMove
	case RuleLayoutChange:
		return p.ToiletMove
	case RuleTilesYes:
		return p.IncludeTiles
	case RuleApartment:
		return strings.Contains(strings.ToLower(p.BathroomType), "apartment")
	case RuleWallChange:
		return p.WallChange
	case RuleTilingLevel:
		return r.Level == strings.ToLower(strings.TrimSpace(p.TilingLevel))
	}
	return true
}
