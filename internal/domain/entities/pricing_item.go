package entities

// PriceType determines how the quantity of a catalog item is interpreted.

type PriceType string

const (
	PriceTypeFixed      PriceType = "fixed"
	PriceTypeSqm        PriceType = "sqm"
	PriceTypePercentage PriceType = "percentage"
)

func (t PriceType) IsValid() bool {
	switch t {
	case PriceTypeFixed, PriceTypeSqm, PriceTypePercentage:
		return true
	}
	return false
}

// PricingMode is advisory for the catalog editor only; the engine resolves
// the price path per item.

type PricingMode string

const (
	PricingModeFinal PricingMode = "final"
	PricingModeBase  PricingMode = "base"
)

// PricingItem is one row of a builder's price catalog.
//
// Applicability is free text, usually copied from a spreadsheet. RuleTag caches
// its classification and RuleSource records the text the tag was derived from,
// so a stale tag is detected when the text changes.
type PricingItem struct {
	ItemName      string    `json:"item_name"`
	Applicability string    `json:"applicability"`
	PriceType     PriceType `json:"price_type"`
	FinalPrice    float64   `json:"final_price"`
	BaseCost      float64   `json:"base_cost"`
	MarkupPercent float64   `json:"markup_percent"`
	// IsActive must be set by whoever builds the item; the zero value excludes
	// it from estimates. Request and spreadsheet loaders default it to true.
	IsActive      bool      `json:"is_active"`

	RuleTag    string `json:"rule_tag,omitempty"`
	RuleSource string `json:"rule_source,omitempty"`
}

// LineItem is one priced row of an estimate breakdown.
type LineItem struct {
	ItemName      string    `json:"item_name"`
	Applicability string    `json:"applicability"`
	PriceType     PriceType `json:"price_type"`
	Quantity      float64   `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	Total         float64   `json:"total"`
}
