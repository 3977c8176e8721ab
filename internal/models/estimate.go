package models

// AreaUnit is the unit the planner dimensions are entered in.
type AreaUnit string

const (
	UnitInch  AreaUnit = "in"
	UnitFoot  AreaUnit = "ft"
	UnitMeter AreaUnit = "m"
)

// EstimateRequest carries raw planner inputs. Length and width arrive as
// form text; non-numeric or empty values normalize to 0.
type EstimateRequest struct {
	Length         string   `json:"length"`
	Width          string   `json:"width"`
	Unit           AreaUnit `json:"unit"`
	IncludeWastage bool     `json:"includeWastage"`
}

// SurfaceQuote is the full planner output: normalized area, price breakdown
// and the bill-of-materials estimate.
type SurfaceQuote struct {
	BaseArea    float64 `json:"baseArea"`
	FinalArea   float64 `json:"finalArea"`
	BasePrice   float64 `json:"basePrice"`
	Discount    float64 `json:"discount"`
	IsBulk      bool    `json:"isBulk"`
	FinalPrice  float64 `json:"finalPrice"`
	Tax         float64 `json:"tax"`
	GrandTotal  float64 `json:"grandTotal"`
	SlabsNeeded int     `json:"slabsNeeded"`
	WeightKg    int     `json:"weightKg"`
}

// QuickQuote is the simple estimator output for the direct area-input flow.
type QuickQuote struct {
	Total           float64 `json:"total"`
	DiscountApplied bool    `json:"discountApplied"`
}
