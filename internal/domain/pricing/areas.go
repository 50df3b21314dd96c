package pricing

import (
	"math"
	"strings"

	"estimatepro/internal/domain/entities"
)

// Share of wall area treated as tiled at each tier.
const (
	budgetWallShare   = 0.30
	standardWallShare = 0.50
	premiumWallShare  = 1.00
)

type Areas struct {
	FloorArea float64 `json:"floor_area"`
	WallArea  float64 `json:"wall_area"`
	TotalArea float64 `json:"total_area"`
}

type TiledAreas struct {
	BudgetArea   float64 `json:"budget_area"`
	StandardArea float64 `json:"standard_area"`
	PremiumArea  float64 `json:"premium_area"`
}

// ForLevel returns the tiered area for a tiling level name, case-insensitively.
func (t TiledAreas) ForLevel(level string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "budget":
		return t.BudgetArea, true
	case "standard":
		return t.StandardArea, true
	case "premium":
		return t.PremiumArea, true
	}
	return 0, false
}

// CalculateAreas derives floor, wall and total area from raw measurements.
//
// A directly supplied total area collapses all three figures to that value.
// Negative or non-finite inputs count as 0.
func CalculateAreas(m entities.Measurements) Areas {
	total := sanitize(m.TotalArea)
	if total > 0 {
		return Areas{FloorArea: total, WallArea: total, TotalArea: total}
	}

	length := sanitize(m.FloorLength)
	width := sanitize(m.FloorWidth)
	height := sanitize(m.WallHeight)

	floor := length * width
	wall := 2*(length*height) + 2*(width*height)
	return Areas{FloorArea: floor, WallArea: wall, TotalArea: floor + wall}
}

func CalculateTilingAreas(a Areas) TiledAreas {
	return TiledAreas{
		BudgetArea:   a.FloorArea + a.WallArea*budgetWallShare,
		StandardArea: a.FloorArea + a.WallArea*standardWallShare,
		PremiumArea:  a.FloorArea + a.WallArea*premiumWallShare,
	}
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
