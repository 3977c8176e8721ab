package catalog

import (
	"errors"
	"sort"

	"github.com/swamyslabs/storefront/internal/models"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Catalog is the static set of sellable stones, loaded once and immutable
// for the session. There is no runtime fetch and no schema versioning.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// New builds the catalog from the bundled product list.
func New() *Catalog {
	return FromProducts(premiumStones)
}

// FromProducts builds a catalog over an explicit product list.
func FromProducts(products []models.Product) *Catalog {

	byID := make(map[string]models.Product, len(products))

	for _, p := range products {
		byID[p.ID] = p
	}

	return &Catalog{products: products, byID: byID}
}

// List returns every product in catalog order.
func (c *Catalog) List() []models.Product {

	out := make([]models.Product, len(c.products))
	copy(out, c.products)

	return out
}

// Get looks a product up by id.
func (c *Catalog) Get(id string) (*models.Product, error) {

	p, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &p, nil
}

// FilterByMaterial returns products of one material type. An empty or "All"
// filter returns everything, matching the listing UI's category chips.
func (c *Catalog) FilterByMaterial(materialType string) []models.Product {

	if materialType == "" || materialType == "All" {
		return c.List()
	}

	var out []models.Product

	for _, p := range c.products {
		if p.MaterialType == materialType {
			out = append(out, p)
		}
	}

	return out
}

// MaterialTypes returns the distinct material types, sorted.
func (c *Catalog) MaterialTypes() []string {

	seen := make(map[string]struct{})

	var out []string

	for _, p := range c.products {
		if _, ok := seen[p.MaterialType]; ok {
			continue
		}

		seen[p.MaterialType] = struct{}{}

		out = append(out, p.MaterialType)
	}

	sort.Strings(out)

	return out
}
