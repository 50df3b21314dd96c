// Package pricing computes bathroom renovation estimates from a builder's price
// catalog and a client's survey answers. Everything here is pure and safe for
// concurrent use.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"estimatepro/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// HighEstimateMultiplier is the contingency applied to the base estimate.
var HighEstimateMultiplier = decimal.RequireFromString("1.30")

var ErrInvalidPricingItem = errors.New("invalid pricing item")

// Payload is a survey answer set after boundary normalisation.
type Payload struct {
	Measurements entities.Measurements
	TilingLevel  string
	BathroomType string
	ToiletMove   bool
	WallChange   bool
	IncludeTiles bool
}

type Result struct {
	Areas        Areas               `json:"areas"`
	TiledAreas   TiledAreas          `json:"tiled_areas"`
	LineItems    []entities.LineItem `json:"line_items"`
	BaseEstimate float64             `json:"base_estimate"`
	HighEstimate float64             `json:"high_estimate"`
}

// CalculatedAreas merges both area sets into the shape stored on a lead.
func (r Result) CalculatedAreas() entities.CalculatedAreas {
	return entities.CalculatedAreas{
		FloorArea:    r.Areas.FloorArea,
		WallArea:     r.Areas.WallArea,
		TotalArea:    r.Areas.TotalArea,
		BudgetArea:   r.TiledAreas.BudgetArea,
		StandardArea: r.TiledAreas.StandardArea,
		PremiumArea:  r.TiledAreas.PremiumArea,
	}
}

func (r Result) LeadEstimate() entities.LeadEstimate {
	return entities.LeadEstimate{
		BaseEstimate: r.BaseEstimate,
		HighEstimate: r.HighEstimate,
		LineItems:    r.LineItems,
	}
}

// SelectQuantity picks the billable quantity of an item.
//
// Fixed and percentage items count once. Tiling sqm items use the tiered area of
// the requested level; other sqm items use the total area.
func SelectQuantity(item entities.PricingItem, a Areas, t TiledAreas, tilingLevel string) float64 {
	if item.PriceType == entities.PriceTypeFixed || item.PriceType == entities.PriceTypePercentage {
		return 1
	}

	name := strings.ToLower(item.ItemName)
	if strings.Contains(name, "tiling") || strings.Contains(name, "tiles") {
		if v, ok := t.ForLevel(tilingLevel); ok && v != 0 {
			return v
		}
	}
	if a.TotalArea != 0 {
		return a.TotalArea
	}
	return a.FloorArea
}

// ResolvePrice returns the unit price: FinalPrice when set, otherwise cost plus markup.
func ResolvePrice(item entities.PricingItem) float64 {
	if item.FinalPrice > 0 {
		return item.FinalPrice
	}
	return item.BaseCost * (1 + item.MarkupPercent/100)
}

// percentageOf is the first non-zero of markup, final price and base cost.
func percentageOf(item entities.PricingItem) float64 {
	for _, v := range []float64{item.MarkupPercent, item.FinalPrice, item.BaseCost} {
		if v != 0 {
			return v
		}
	}
	return 0
}

// Calculate prices a catalog against a survey payload.
//
// Non-percentage items are priced first and summed into a subtotal. Each
// percentage item is then charged against that same subtotal, so percentage
// items never compound on each other. Line items keep catalog order within
// each pass. Items with IsActive false are skipped, so callers must default
// the flag to true when the source leaves it unset.
func Calculate(items []entities.PricingItem, p Payload) Result {
	areas := CalculateAreas(p.Measurements)
	tiled := CalculateTilingAreas(areas)

	level := strings.TrimSpace(p.TilingLevel)
	if level == "" {
		level = DefaultTilingLevel
	}

	regular := make([]entities.LineItem, 0, len(items))
	var percentages []entities.PricingItem
	subtotal := decimal.Zero

	for _, item := range items {
		if !item.IsActive || !ShouldInclude(item, p) {
			continue
		}
		if item.PriceType == entities.PriceTypePercentage {
			percentages = append(percentages, item)
			continue
		}

		qty := SelectQuantity(item, areas, tiled, level)
		unit := ResolvePrice(item)
		total := dec(qty).Mul(dec(unit)).Round(2)

		regular = append(regular, entities.LineItem{
			ItemName:      item.ItemName,
			Applicability: item.Applicability,
			PriceType:     item.PriceType,
			Quantity:      round2(qty),
			UnitPrice:     round2(unit),
			Total:         total.InexactFloat64(),
		})
		subtotal = subtotal.Add(total)
	}

	lineItems := regular
	for _, item := range percentages {
		pct := percentageOf(item)
		amount := subtotal.Mul(dec(pct)).Div(decimal.NewFromInt(100)).Round(2)
		lineItems = append(lineItems, entities.LineItem{
			ItemName:      item.ItemName,
			Applicability: item.Applicability,
			PriceType:     entities.PriceTypePercentage,
			Quantity:      1,
			UnitPrice:     round2(pct),
			Total:         amount.InexactFloat64(),
		})
	}

	base := decimal.Zero
	for _, li := range lineItems {
		base = base.Add(dec(li.Total))
	}
	base = base.Round(2)

	return Result{
		Areas:        areas,
		TiledAreas:   tiled,
		LineItems:    lineItems,
		BaseEstimate: base.InexactFloat64(),
		HighEstimate: base.Mul(HighEstimateMultiplier).Round(2).InexactFloat64(),
	}
}

// Validate checks a catalog before it is saved.
func Validate(items []entities.PricingItem) error {
	for i, item := range items {
		if strings.TrimSpace(item.ItemName) == "" {
			return fmt.Errorf("%w: item %d has no name", ErrInvalidPricingItem, i)
		}
		if !item.PriceType.IsValid() {
			return fmt.Errorf("%w: item %d has price type %q", ErrInvalidPricingItem, i, item.PriceType)
		}
		if item.FinalPrice < 0 || item.BaseCost < 0 || item.MarkupPercent < 0 {
			return fmt.Errorf("%w: item %d has a negative price", ErrInvalidPricingItem, i)
		}
	}
	return nil
}

// dec converts v to a decimal, mapping NaN and infinities to zero.
func dec(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func round2(v float64) float64 {
	return dec(v).Round(2).InexactFloat64()
}
