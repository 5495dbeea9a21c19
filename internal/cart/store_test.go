package cart

import (
	"testing"

	"github.com/Shyam-2315/Grocery-Store/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cola() domain.Product {
	return domain.Product{ID: 1, Name: "Cola", Barcode: "001", SellingPrice: 1.50, StockQuantity: 10}
}

func chips() domain.Product {
	return domain.Product{ID: 2, Name: "Chips", Barcode: "002", SellingPrice: 2.25, StockQuantity: 4}
}

func TestAddOrIncrement_MergesSameProduct(t *testing.T) {
	s := NewStore()

	for i := 0; i < 5; i++ {
		s.AddOrIncrement(cola())
	}

	lines := s.Snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 1.50, lines[0].UnitPrice)
}

func TestAddOrIncrement_KeepsSnapshottedPrice(t *testing.T) {
	s := NewStore()
	s.AddOrIncrement(cola())

	// Catalog price changes between scans; the existing line must not move.
	repriced := cola()
	repriced.SellingPrice = 9.99
	s.AddOrIncrement(repriced)

	lines := s.Snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1.50, lines[0].UnitPrice)
}

func TestAddOrIncrement_PreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	s.AddOrIncrement(cola())
	s.AddOrIncrement(chips())
	s.AddOrIncrement(cola())

	lines := s.Snapshot()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, int64(2), lines[1].ProductID)
}

func TestAdjustQuantity_FloorsAtOne(t *testing.T) {
	s := NewStore()
	s.AddOrIncrement(cola())

	require.NoError(t, s.AdjustQuantity(1, -5))

	lines := s.Snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestAdjustQuantity_IncrementsAndDecrements(t *testing.T) {
	s := NewStore()
	s.AddOrIncrement(cola())

	require.NoError(t, s.AdjustQuantity(1, 3))
	require.NoError(t, s.AdjustQuantity(1, -1))

	assert.Equal(t, 3, s.Snapshot()[0].Quantity)
}

func TestAdjustQuantity_UnknownProduct(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.AdjustQuantity(42, 1), ErrLineNotFound)
}

func TestRemove_DeletesLineRegardlessOfQuantity(t *testing.T) {
	s := NewStore()
	s.AddOrIncrement(cola())
	s.AddOrIncrement(chips())
	require.NoError(t, s.AdjustQuantity(1, 7))

	require.NoError(t, s.Remove(1))

	lines := s.Snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].ProductID)

	// Index stays consistent after the shift.
	require.NoError(t, s.AdjustQuantity(2, 1))
	assert.Equal(t, 2, s.Snapshot()[0].Quantity)
}

func TestRemove_UnknownProduct(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.Remove(42), ErrLineNotFound)
}

func TestClear_EmptiesCart(t *testing.T) {
	s := NewStore()
	s.AddOrIncrement(cola())
	s.AddOrIncrement(chips())

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Snapshot())

	// The store is reusable after a clear.
	s.AddOrIncrement(cola())
	assert.Equal(t, 1, s.Len())
}

func TestSnapshot_IsIsolatedFromStore(t *testing.T) {
	s := NewStore()
	s.AddOrIncrement(cola())

	snap := s.Snapshot()
	snap[0].Quantity = 99

	assert.Equal(t, 1, s.Snapshot()[0].Quantity)
}
