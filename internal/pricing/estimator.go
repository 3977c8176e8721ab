package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/swamyslabs/storefront/internal/models"
)

const (
	feetPerMeter  = 3.28084
	wastageFactor = 1.10

	// Both estimators share one discount rate but keep their own area
	// thresholds. The duplication of thresholds is inherited from the two
	// independently built flows on the site; they are deliberately kept as
	// separate entry points.
	bulkAreaThresholdSqFt      = 1000.0
	quickBulkAreaThresholdSqFt = 5000.0
	bulkDiscountRate           = 0.05

	gstRate = 0.18

	// BOM constants: an average slab of roughly 6x3 ft, and 5.5 kg per sqft
	// for 20-30mm stone.
	avgSlabSqFt     = 18.0
	weightKgPerSqFt = 5.5
)

// EstimateSurface is the full planner: unit-normalized area, optional
// wastage surcharge, bulk discount above 1000 sqft, GST and a
// bill-of-materials estimate. Pure and deterministic; zero or negative
// dimensions yield an all-zero quote, never an error.
func EstimateSurface(req models.EstimateRequest, material models.Product) models.SurfaceQuote {

	length := toFeet(parseDimension(req.Length), req.Unit)
	width := toFeet(parseDimension(req.Width), req.Unit)

	baseArea := length * width

	finalArea := baseArea
	if req.IncludeWastage {
		finalArea = baseArea * wastageFactor
	}

	basePrice := finalArea * material.PricePerSqFt
	discount, isBulk := bulkDiscount(basePrice, finalArea, bulkAreaThresholdSqFt)
	finalPrice := basePrice - discount
	tax := finalPrice * gstRate

	return models.SurfaceQuote{
		BaseArea:    baseArea,
		FinalArea:   finalArea,
		BasePrice:   basePrice,
		Discount:    discount,
		IsBulk:      isBulk,
		FinalPrice:  finalPrice,
		Tax:         tax,
		GrandTotal:  finalPrice + tax,
		SlabsNeeded: slabsNeeded(finalArea),
		WeightKg:    int(math.Round(finalArea * weightKgPerSqFt)),
	}
}

// QuickEstimate is the direct area-input flow: no unit conversion, no
// wastage, no BOM, and the bulk discount only applies above 5000 sqft when
// the caller opts in.
func QuickEstimate(area string, bulkOptIn bool, material models.Product) models.QuickQuote {

	areaSqFt := parseDimension(area)
	if areaSqFt <= 0 {
		return models.QuickQuote{}
	}

	price := areaSqFt * material.PricePerSqFt

	var applied bool

	if bulkOptIn {

		discount, isBulk := bulkDiscount(price, areaSqFt, quickBulkAreaThresholdSqFt)

		price -= discount
		applied = isBulk
	}

	return models.QuickQuote{Total: price, DiscountApplied: applied}
}

// bulkDiscount applies the shared 5% rate when the area strictly exceeds
// the threshold.
func bulkDiscount(basePrice, areaSqFt, thresholdSqFt float64) (float64, bool) {

	if areaSqFt > thresholdSqFt {
		return basePrice * bulkDiscountRate, true
	}

	return 0, false
}

func slabsNeeded(areaSqFt float64) int {

	if areaSqFt <= 0 {
		return 0
	}

	return int(math.Ceil(areaSqFt / avgSlabSqFt))
}

// parseDimension tolerates form text: empty, non-numeric or negative input
// normalizes to 0.
func parseDimension(s string) float64 {

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}

	return v
}

func toFeet(v float64, unit models.AreaUnit) float64 {

	switch unit {
	case models.UnitInch:
		return v / 12
	case models.UnitMeter:
		return v * feetPerMeter
	default:
		return v
	}
}
