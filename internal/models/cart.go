package models

// CartLine is one product's quantity entry in a session cart. The name,
// price, image and category fields are a snapshot of the product at add time,
// not a live reference.
type CartLine struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     Price  `json:"price"`
	Image     string `json:"image,omitempty"`
	Category  string `json:"category,omitempty"`
	Quantity  int    `json:"quantity"`
}

// LineTotal is the line's contribution to the cart total.
func (l CartLine) LineTotal() float64 {
	return l.Price.Amount() * float64(l.Quantity)
}
