package services

import (
	"context"
	"encoding/json"
	"errors"

	"dinkys-shop/models"
	"dinkys-shop/repositories"
)

// ErrInvalidCartItem rejects malformed line items at the boundary before
// they reach the cart.
var ErrInvalidCartItem = errors.New("cart item requires a product id, a size, and a non-negative price")

// CartStore is the single source of truth for one session's cart. Lines are
// keyed by (productID, size) and kept in insertion order. Every mutation
// re-serializes the cart into the injected storage slot, so state survives
// restarts of the same session.
type CartStore struct {
	storage repositories.CartStorage
	key     string
	items   []models.CartLineItem
}

// LoadCart rehydrates a session's cart from storage. Content that does not
// parse back into a valid line sequence counts as an empty cart, never an
// error; only a storage read failure is surfaced.
func LoadCart(ctx context.Context, storage repositories.CartStorage, sessionKey string) (*CartStore, error) {
	raw, err := storage.Read(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	store := &CartStore{storage: storage, key: sessionKey}
	if raw == "" {
		return store, nil
	}

	var items []models.CartLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return store, nil
	}
	for _, item := range items {
		if item.ProductID == "" || item.Size == "" || item.PriceCents < 0 || item.Quantity < 1 {
			return store, nil
		}
	}
	store.items = items
	return store, nil
}

// AddItem puts one unit of the given item into the cart. When a line with
// the same (productID, size) already exists its quantity goes up by one and
// the stored name, price, and image stay as they were at first add; the cart
// deliberately reflects price-at-add-time. The Quantity field of the
// argument is ignored.
func (s *CartStore) AddItem(ctx context.Context, item models.CartLineItem) error {
	if item.ProductID == "" || item.Size == "" || item.PriceCents < 0 {
		return ErrInvalidCartItem
	}

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID && s.items[i].Size == item.Size {
			s.items[i].Quantity++
			return s.persist(ctx)
		}
	}

	item.Quantity = 1
	s.items = append(s.items, item)
	return s.persist(ctx)
}

// RemoveItem deletes the matching line. A missing line is a no-op, not an
// error.
func (s *CartStore) RemoveItem(ctx context.Context, productID, size string) error {
	kept := s.items[:0]
	for _, item := range s.items {
		if !(item.ProductID == productID && item.Size == size) {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.persist(ctx)
}

// UpdateQuantity sets the line's quantity to the given absolute value. A
// quantity of zero or less removes the line. A missing line is a no-op.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID, size string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID, size)
	}

	for i := range s.items {
		if s.items[i].ProductID == productID && s.items[i].Size == size {
			s.items[i].Quantity = quantity
			break
		}
	}
	return s.persist(ctx)
}

// Clear empties the cart and releases its storage slot.
func (s *CartStore) Clear(ctx context.Context) error {
	s.items = nil
	return s.storage.Delete(ctx, s.key)
}

// Items returns the lines in insertion order.
func (s *CartStore) Items() []models.CartLineItem {
	items := make([]models.CartLineItem, len(s.items))
	copy(items, s.items)
	return items
}

// Total is the cart value in cents, integer arithmetic only.
func (s *CartStore) Total() int64 {
	var total int64
	for _, item := range s.items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}

// ItemCount sums quantities across lines, which differs from the number of
// lines.
func (s *CartStore) ItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *CartStore) persist(ctx context.Context) error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return err
	}
	return s.storage.Write(ctx, s.key, string(data))
}
