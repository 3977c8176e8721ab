package catalog

import "github.com/swamyslabs/storefront/internal/models"

// Bundled product data. Prices are per square foot.
var premiumStones = []models.Product{
	{
		ID:           "black-galaxy",
		Name:         "Black Galaxy Granite",
		MaterialType: "Granite",
		PricePerSqFt: 260,
		Images: []string{
			"/images/stones/black-galaxy-1.jpg",
			"/images/stones/black-galaxy-2.jpg",
		},
		Dimensions:  "300x180",
		Thickness:   "20mm",
		Finish:      "Polished",
		Description: "Deep black base with golden speckles, quarried in Ongole.",
		Application: "Countertops, Flooring, Cladding",
	},
	{
		ID:           "absolute-black",
		Name:         "Absolute Black Granite",
		MaterialType: "Granite",
		PricePerSqFt: 310,
		Images: []string{
			"/images/stones/absolute-black-1.jpg",
			"/images/stones/absolute-black-2.jpg",
		},
		Dimensions:  "320x160",
		Thickness:   "30mm",
		Finish:      "Honed",
		Description: "Uniform jet black with no visible grain.",
		Application: "Countertops, Monuments",
	},
	{
		ID:           "tan-brown",
		Name:         "Tan Brown Granite",
		MaterialType: "Granite",
		PricePerSqFt: 185,
		Images: []string{
			"/images/stones/tan-brown-1.jpg",
		},
		Dimensions:  "290x170",
		Thickness:   "20mm",
		Finish:      "Flamed",
		Description: "Chocolate brown field with black and grey flecks.",
		Application: "Flooring, External Cladding",
	},
	{
		ID:           "steel-grey",
		Name:         "Steel Grey Granite",
		MaterialType: "Granite",
		PricePerSqFt: 150,
		Images: []string{
			"/images/stones/steel-grey-1.jpg",
			"/images/stones/steel-grey-2.jpg",
		},
		Dimensions:  "310x175",
		Thickness:   "20mm",
		Finish:      "Leathered",
		Description: "Even silver-grey tone, low variation between slabs.",
		Application: "Flooring, Staircases, Countertops",
	},
	{
		ID:           "makrana-white",
		Name:         "Makrana White Marble",
		MaterialType: "Marble",
		PricePerSqFt: 420,
		Images: []string{
			"/images/stones/makrana-white-1.jpg",
		},
		Dimensions:  "240x120",
		Thickness:   "18mm",
		Finish:      "Polished",
		Description: "Classic white marble with soft grey veining.",
		Application: "Flooring, Wall Panels, Sculpture",
	},
	{
		ID:           "rainforest-green",
		Name:         "Rainforest Green Marble",
		MaterialType: "Marble",
		PricePerSqFt: 240,
		Images: []string{
			"/images/stones/rainforest-green-1.jpg",
			"/images/stones/rainforest-green-2.jpg",
		},
		Dimensions:  "250x130",
		Thickness:   "18mm",
		Finish:      "Polished",
		Description: "Forest green base crossed by brown dendritic veins.",
		Application: "Feature Walls, Vanity Tops",
	},
	{
		ID:           "kota-blue",
		Name:         "Kota Blue Limestone",
		MaterialType: "Limestone",
		PricePerSqFt: 95,
		Images: []string{
			"/images/stones/kota-blue-1.jpg",
		},
		Dimensions:  "60x60",
		Thickness:   "25mm",
		Finish:      "Natural",
		Description: "Hard-wearing blue-grey limestone in calibrated tiles.",
		Application: "Flooring, Pathways, Pool Surrounds",
	},
}
