package pricing

import (
	"math"
	"testing"

	"estimatepro/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestCalculateAreas_FromDimensions(t *testing.T) {
	a := CalculateAreas(entities.Measurements{FloorLength: 3.5, FloorWidth: 2.5, WallHeight: 2.4})

	assert.InDelta(t, 8.75, a.FloorArea, eps)
	assert.InDelta(t, 28.8, a.WallArea, eps)
	assert.InDelta(t, 37.55, a.TotalArea, eps)
}

func TestCalculateAreas_TotalAreaSupplied(t *testing.T) {
	a := CalculateAreas(entities.Measurements{TotalArea: 12, FloorLength: 5, FloorWidth: 5, WallHeight: 3})

	assert.Equal(t, Areas{FloorArea: 12, WallArea: 12, TotalArea: 12}, a)
}

func TestCalculateAreas_Degenerate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, Areas{}, CalculateAreas(entities.Measurements{}))
	})

	t.Run("missing height keeps floor", func(t *testing.T) {
		a := CalculateAreas(entities.Measurements{FloorLength: 2, FloorWidth: 3})
		assert.Equal(t, Areas{FloorArea: 6, WallArea: 0, TotalArea: 6}, a)
	})

	t.Run("missing width", func(t *testing.T) {
		a := CalculateAreas(entities.Measurements{FloorLength: 2, WallHeight: 2})
		assert.Equal(t, Areas{FloorArea: 0, WallArea: 8, TotalArea: 8}, a)
	})

	t.Run("non finite and negative inputs count as zero", func(t *testing.T) {
		a := CalculateAreas(entities.Measurements{TotalArea: math.NaN(), FloorLength: math.Inf(1), FloorWidth: -2, WallHeight: 2})
		assert.Equal(t, Areas{}, a)
	})
}

func TestCalculateAreas_WallFormula(t *testing.T) {
	dims := []struct{ l, w, h float64 }{
		{1, 1, 1}, {2.2, 1.7, 2.7}, {4, 0.9, 2.4}, {0, 3, 2}, {10, 10, 0},
	}
	for _, d := range dims {
		a := CalculateAreas(entities.Measurements{FloorLength: d.l, FloorWidth: d.w, WallHeight: d.h})
		assert.InDelta(t, 2*d.h*(d.l+d.w), a.WallArea, eps)
		assert.InDelta(t, a.FloorArea+a.WallArea, a.TotalArea, eps)
	}
}

func TestCalculateTilingAreas(t *testing.T) {
	tiled := CalculateTilingAreas(Areas{FloorArea: 8.75, WallArea: 28.8, TotalArea: 37.55})

	assert.InDelta(t, 17.39, tiled.BudgetArea, eps)
	assert.InDelta(t, 23.15, tiled.StandardArea, eps)
	assert.InDelta(t, 37.55, tiled.PremiumArea, eps)
}

func TestCalculateTilingAreas_Monotonic(t *testing.T) {
	for _, a := range []Areas{{}, {FloorArea: 1}, {WallArea: 1}, {FloorArea: 4.2, WallArea: 19.3}, {FloorArea: 12, WallArea: 12}} {
		tiled := CalculateTilingAreas(a)
		assert.LessOrEqual(t, tiled.BudgetArea, tiled.StandardArea)
		assert.LessOrEqual(t, tiled.StandardArea, tiled.PremiumArea)
	}
}

func TestTiledAreas_ForLevel(t *testing.T) {
	tiled := TiledAreas{BudgetArea: 1, StandardArea: 2, PremiumArea: 3}

	v, ok := tiled.ForLevel("PREMIUM")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	v, ok = tiled.ForLevel(" budget ")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = tiled.ForLevel("luxury")
	assert.False(t, ok)
}
