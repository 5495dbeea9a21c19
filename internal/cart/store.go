package cart

import (
	"errors"
	"sync"

	"github.com/Shyam-2315/Grocery-Store/internal/domain"
)

// Common errors returned by the store
var ErrLineNotFound = errors.New("cart line not found")

// Store holds the in-progress sale. Lines keep insertion order and there is
// at most one line per product id. The cart lives only in memory; nothing
// survives a terminal restart.
type Store struct {
	mu    sync.Mutex
	lines []domain.CartLine
	index map[int64]int // productID -> position in lines
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{
		index: make(map[int64]int),
	}
}

// AddOrIncrement adds the product to the cart. If a line for the product
// already exists its quantity grows by one and its snapshotted unit price is
// left alone; otherwise a new line is appended with quantity 1 and the
// product's current selling price.
func (s *Store) AddOrIncrement(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, exists := s.index[p.ID]; exists {
		s.lines[i].Quantity++
		return
	}

	s.lines = append(s.lines, domain.CartLine{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    1,
		UnitPrice:   p.SellingPrice,
	})
	s.index[p.ID] = len(s.lines) - 1
}

// AdjustQuantity changes a line's quantity by delta, clamped to a minimum of
// one. Decrementing a quantity-1 line is a no-op rather than a removal;
// taking a line out of the cart is only done through Remove.
func (s *Store) AdjustQuantity(productID int64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, exists := s.index[productID]
	if !exists {
		return ErrLineNotFound
	}

	q := s.lines[i].Quantity + delta
	if q < 1 {
		q = 1
	}
	s.lines[i].Quantity = q
	return nil
}

// Remove deletes the line outright regardless of its quantity.
func (s *Store) Remove(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, exists := s.index[productID]
	if !exists {
		return ErrLineNotFound
	}

	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	delete(s.index, productID)
	for j := i; j < len(s.lines); j++ {
		s.index[s.lines[j].ProductID] = j
	}
	return nil
}

// Clear empties the cart unconditionally. Used on checkout success and when
// the operator cancels the sale.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.index = make(map[int64]int)
}

// Snapshot returns a copy of the current lines in cart order. Callers may
// hold or mutate the result freely without affecting the store.
func (s *Store) Snapshot() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of lines in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}
