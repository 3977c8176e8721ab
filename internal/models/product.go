package models

// Product is a catalog record. The catalog is bundled with the build and
// immutable for the lifetime of the process.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	MaterialType string   `json:"materialType"`
	PricePerSqFt float64  `json:"pricePerSqFt"`
	Images       []string `json:"images"`
	Dimensions   string   `json:"dimensions"`
	Thickness    string   `json:"thickness"`
	Finish       string   `json:"finish"`
	Description  string   `json:"description"`
	Application  string   `json:"application"`
}
