package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swamyslabs/storefront/internal/models"
	"github.com/swamyslabs/storefront/internal/pricing"
)

func material(pricePerSqFt float64) models.Product {
	return models.Product{
		ID:           "test-stone",
		Name:         "Test Stone",
		MaterialType: "Granite",
		PricePerSqFt: pricePerSqFt,
	}
}

func TestEstimateSurface(t *testing.T) {
	t.Run("Ten by ten feet without wastage", func(t *testing.T) {
		// Arrange
		req := models.EstimateRequest{Length: "10", Width: "10", Unit: models.UnitFoot, IncludeWastage: false}

		// Act
		quote := pricing.EstimateSurface(req, material(100))

		// Assert
		assert.InDelta(t, 100.0, quote.FinalArea, 1e-9)
		assert.InDelta(t, 10000.0, quote.BasePrice, 1e-9)
		assert.False(t, quote.IsBulk)
		assert.InDelta(t, 0.0, quote.Discount, 1e-9)
		assert.InDelta(t, 1800.0, quote.Tax, 1e-6)
		assert.InDelta(t, 11800.0, quote.GrandTotal, 1e-6)
	})

	t.Run("Wastage adds ten percent to the area, not the price", func(t *testing.T) {
		req := models.EstimateRequest{Length: "10", Width: "10", Unit: models.UnitFoot, IncludeWastage: true}

		quote := pricing.EstimateSurface(req, material(100))

		assert.InDelta(t, 100.0, quote.BaseArea, 1e-9)
		assert.InDelta(t, 110.0, quote.FinalArea, 1e-9)
		assert.InDelta(t, 11000.0, quote.BasePrice, 1e-6)
		assert.InDelta(t, 1980.0, quote.Tax, 1e-6)
		assert.InDelta(t, 12980.0, quote.GrandTotal, 1e-6)
	})

	t.Run("Inches are divided by twelve", func(t *testing.T) {
		req := models.EstimateRequest{Length: "120", Width: "120", Unit: models.UnitInch}

		quote := pricing.EstimateSurface(req, material(100))

		assert.InDelta(t, 100.0, quote.FinalArea, 1e-9)
	})

	t.Run("Meters convert at 3.28084 feet", func(t *testing.T) {
		req := models.EstimateRequest{Length: "1", Width: "1", Unit: models.UnitMeter}

		quote := pricing.EstimateSurface(req, material(100))

		assert.InDelta(t, 3.28084*3.28084, quote.FinalArea, 1e-9)
	})

	t.Run("Bulk discount strictly above one thousand square feet", func(t *testing.T) {
		// 1001 sqft exactly, via 1001 x 1 feet
		req := models.EstimateRequest{Length: "1001", Width: "1", Unit: models.UnitFoot}

		quote := pricing.EstimateSurface(req, material(10))

		assert.True(t, quote.IsBulk)
		assert.InDelta(t, 10010.0, quote.BasePrice, 1e-6)
		assert.InDelta(t, 500.5, quote.Discount, 1e-6)
		assert.InDelta(t, 9509.5, quote.FinalPrice, 1e-6)
	})

	t.Run("Exactly one thousand square feet is not bulk", func(t *testing.T) {
		req := models.EstimateRequest{Length: "1000", Width: "1", Unit: models.UnitFoot}

		quote := pricing.EstimateSurface(req, material(10))

		assert.False(t, quote.IsBulk)
		assert.InDelta(t, 0.0, quote.Discount, 1e-9)
	})

	t.Run("Bill of materials estimate", func(t *testing.T) {
		req := models.EstimateRequest{Length: "10", Width: "10", Unit: models.UnitFoot}

		quote := pricing.EstimateSurface(req, material(100))

		// ceil(100 / 18) slabs, round(100 * 5.5) kg
		assert.Equal(t, 6, quote.SlabsNeeded)
		assert.Equal(t, 550, quote.WeightKg)
	})

	t.Run("Non-numeric input normalizes to zero", func(t *testing.T) {
		req := models.EstimateRequest{Length: "abc", Width: "10", Unit: models.UnitFoot}

		quote := pricing.EstimateSurface(req, material(100))

		assert.InDelta(t, 0.0, quote.FinalArea, 1e-9)
		assert.InDelta(t, 0.0, quote.GrandTotal, 1e-9)
		assert.Equal(t, 0, quote.SlabsNeeded)
	})

	t.Run("Negative dimensions yield zero, never negative money", func(t *testing.T) {
		req := models.EstimateRequest{Length: "-5", Width: "-5", Unit: models.UnitFoot}

		quote := pricing.EstimateSurface(req, material(100))

		assert.InDelta(t, 0.0, quote.FinalArea, 1e-9)
		assert.InDelta(t, 0.0, quote.BasePrice, 1e-9)
		assert.InDelta(t, 0.0, quote.GrandTotal, 1e-9)
		assert.Equal(t, 0, quote.WeightKg)
	})

	t.Run("Empty input normalizes to zero", func(t *testing.T) {
		req := models.EstimateRequest{Length: "", Width: "", Unit: models.UnitFoot}

		quote := pricing.EstimateSurface(req, material(100))

		assert.InDelta(t, 0.0, quote.GrandTotal, 1e-9)
	})
}

func TestQuickEstimate(t *testing.T) {
	t.Run("Plain multiplication below the threshold", func(t *testing.T) {
		quote := pricing.QuickEstimate("100", false, material(260))

		assert.InDelta(t, 26000.0, quote.Total, 1e-6)
		assert.False(t, quote.DiscountApplied)
	})

	t.Run("Discount requires the opt-in toggle", func(t *testing.T) {
		quote := pricing.QuickEstimate("6000", false, material(10))

		assert.InDelta(t, 60000.0, quote.Total, 1e-6)
		assert.False(t, quote.DiscountApplied)
	})

	t.Run("Opted-in above five thousand square feet", func(t *testing.T) {
		quote := pricing.QuickEstimate("6000", true, material(10))

		assert.InDelta(t, 57000.0, quote.Total, 1e-6)
		assert.True(t, quote.DiscountApplied)
	})

	t.Run("Opted-in at exactly five thousand is not discounted", func(t *testing.T) {
		quote := pricing.QuickEstimate("5000", true, material(10))

		assert.InDelta(t, 50000.0, quote.Total, 1e-6)
		assert.False(t, quote.DiscountApplied)
	})

	t.Run("Non-numeric or non-positive area estimates to zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, pricing.QuickEstimate("abc", true, material(10)).Total, 1e-9)
		assert.InDelta(t, 0.0, pricing.QuickEstimate("", false, material(10)).Total, 1e-9)
		assert.InDelta(t, 0.0, pricing.QuickEstimate("0", true, material(10)).Total, 1e-9)
	})
}
