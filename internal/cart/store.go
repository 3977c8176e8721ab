package cart

import (
	"context"
	"log/slog"

	"github.com/swamyslabs/storefront/internal/models"
	"github.com/swamyslabs/storefront/internal/storage"
)

// Store is a session cart: a mapping of product id to line, mirrored to a
// durable storage key after every mutation. It is an explicitly constructed
// object passed to whatever needs it, not ambient state. One logical writer
// per session; two sessions writing the same key is last-write-wins.
type Store struct {
	kv    storage.KV
	key   string
	lines map[string]models.CartLine
	order []string
	open  bool
}

// NewStore hydrates a cart from storage. A missing or corrupt payload is
// never a startup fault; the cart starts empty.
func NewStore(ctx context.Context, kv storage.KV, key string) *Store {

	s := &Store{
		kv:    kv,
		key:   key,
		lines: make(map[string]models.CartLine),
	}

	var stored []models.CartLine

	found, err := kv.Get(ctx, key, &stored)
	if err != nil {
		slog.Warn("Failed to load cart from storage, starting empty",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)

		return s
	}

	if found {
		for _, line := range stored {
			if line.Quantity < 1 {
				continue
			}

			s.lines[line.ProductID] = line
			s.order = append(s.order, line.ProductID)
		}
	}

	return s
}

// AddToCart inserts a snapshot line for the product, or increments the
// existing line's quantity. A quantity below 1 is treated as 1. Adding also
// flips the cart-open flag, mirroring the drawer opening in the UI.
func (s *Store) AddToCart(ctx context.Context, product models.Product, quantity int) {

	if quantity < 1 {
		quantity = 1
	}

	if line, exists := s.lines[product.ID]; exists {
		line.Quantity += quantity
		s.lines[product.ID] = line
	} else {

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		s.lines[product.ID] = models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     models.NumericPrice(product.PricePerSqFt),
			Image:     image,
			Category:  product.MaterialType,
			Quantity:  quantity,
		}
		s.order = append(s.order, product.ID)
	}

	s.open = true

	s.persist(ctx)
}

// RemoveFromCart deletes the line if present; removing an absent line is a
// no-op, not an error.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) {

	if _, exists := s.lines[productID]; exists {
		delete(s.lines, productID)
		s.dropFromOrder(productID)
	}

	s.persist(ctx)
}

// UpdateQuantity sets the line's quantity to exactly newQuantity. A value
// below 1 removes the line entirely, so no zero or negative quantity ever
// persists. Unknown product ids are ignored.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, newQuantity int) {

	if newQuantity < 1 {
		s.RemoveFromCart(ctx, productID)

		return
	}

	line, exists := s.lines[productID]
	if !exists {
		return
	}

	line.Quantity = newQuantity
	s.lines[productID] = line

	s.persist(ctx)
}

// ClearCart empties all lines.
func (s *Store) ClearCart(ctx context.Context) {

	s.lines = make(map[string]models.CartLine)
	s.order = nil

	s.persist(ctx)
}

// Count is the sum of all line quantities, recomputed on every call.
func (s *Store) Count() int {

	var count int

	for _, line := range s.lines {
		count += line.Quantity
	}

	return count
}

// Total sums the normalized line prices times quantities. Malformed prices
// contribute 0, so the total is always computable.
func (s *Store) Total() float64 {

	var total float64

	for _, line := range s.lines {
		total += line.LineTotal()
	}

	return total
}

// Lines returns the cart lines in insertion order.
func (s *Store) Lines() []models.CartLine {

	out := make([]models.CartLine, 0, len(s.lines))

	for _, id := range s.order {
		out = append(out, s.lines[id])
	}

	return out
}

// IsOpen reports the cosmetic cart-drawer flag.
func (s *Store) IsOpen() bool {
	return s.open
}

func (s *Store) SetOpen(open bool) {
	s.open = open
}

func (s *Store) ToggleCart() {
	s.open = !s.open
}

func (s *Store) dropFromOrder(productID string) {
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)

			return
		}
	}
}

// persist mirrors the full line set to storage. Failures are logged and
// swallowed; persistence trouble must never break cart operations.
func (s *Store) persist(ctx context.Context) {

	if err := s.kv.Set(ctx, s.key, s.Lines()); err != nil {
		slog.Warn("Failed to persist cart",
			slog.String("key", s.key),
			slog.String("error", err.Error()),
		)
	}
}
