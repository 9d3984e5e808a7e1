package services

import (
	"context"
	"testing"

	"dinkys-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCartStorage struct {
	data map[string]string
}

func newMemoryCartStorage() *memoryCartStorage {
	return &memoryCartStorage{data: map[string]string{}}
}

func (s *memoryCartStorage) Read(_ context.Context, key string) (string, error) {
	return s.data[key], nil
}

func (s *memoryCartStorage) Write(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func (s *memoryCartStorage) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func tshirt() models.CartLineItem {
	return models.CartLineItem{
		ProductID:  "p1",
		Slug:       "classic-white-tshirt",
		Name:       "Classic White T-Shirt",
		PriceCents: 299900,
		Size:       "M",
		ImageURL:   "https://example.com/tshirt.jpg",
	}
}

func jeans() models.CartLineItem {
	return models.CartLineItem{
		ProductID:  "p2",
		Slug:       "slim-fit-denim-jeans",
		Name:       "Slim Fit Denim Jeans",
		PriceCents: 799900,
		Size:       "32",
		ImageURL:   "https://example.com/jeans.jpg",
	}
}

func newTestCart(t *testing.T) (*CartStore, *memoryCartStorage) {
	t.Helper()
	storage := newMemoryCartStorage()
	store, err := LoadCart(context.Background(), storage, "session-1")
	require.NoError(t, err)
	return store, storage
}

func TestAddItemMergesByProductAndSize(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCart(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.AddItem(ctx, tshirt()))
	}

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddItemDifferentSizeIsSeparateLine(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCart(t)

	require.NoError(t, store.AddItem(ctx, tshirt()))
	large := tshirt()
	large.Size = "L"
	require.NoError(t, store.AddItem(ctx, large))

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "M", items[0].Size)
	assert.Equal(t, "L", items[1].Size)
}

func TestAddItemKeepsPriceAtAddTime(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCart(t)

	require.NoError(t, store.AddItem(ctx, tshirt()))

	repriced := tshirt()
	repriced.PriceCents = 349900
	repriced.Name = "Classic White T-Shirt v2"
	require.NoError(t, store.AddItem(ctx, repriced))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(299900), items[0].PriceCents)
	assert.Equal(t, "Classic White T-Shirt", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCart(t)

	require.NoError(t, store.AddItem(ctx, jeans()))
	require.NoError(t, store.AddItem(ctx, tshirt()))
	require.NoError(t, store.AddItem(ctx, jeans()))

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p2", items[0].ProductID)
	assert.Equal(t, "p1", items[1].ProductID)
}

func TestAddItemRejectsInvalidItems(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCart(t)

	noID := tshirt()
	noID.ProductID = ""
	assert.ErrorIs(t, store.AddItem(ctx, noID), ErrInvalidCartItem)

	noSize := tshirt()
	noSize.Size = ""
	assert.ErrorIs(t, store.AddItem(ctx, noSize), ErrInvalidCartItem)

	negative := tshirt()
	negative.PriceCents = -1
	assert.ErrorIs(t, store.AddItem(ctx, negative), ErrInvalidCartItem)

	assert.Empty(t, store.Items())
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCart(t)

	require.NoError(t, store.AddItem(ctx, tshirt()))
	require.NoError(t, store.UpdateQuantity(ctx, "p1", "M", 5))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()

	updated, _ := newTestCart(t)
	require.NoError(t, updated.AddItem(ctx, tshirt()))
	require.NoError(t, updated.AddItem(ctx, jeans()))
	require.NoError(t, updated.UpdateQuantity(ctx, "p1", "M", 0))

	removed, _ := newTestCart(t)
	require.NoError(t, removed.AddItem(ctx, tshirt()))
	require.NoError(t, removed.AddItem(ctx, jeans()))
	require.NoError(t, removed.RemoveItem(ctx, "p1", "M"))

	assert.Equal(t, removed.Items(), updated.Items())
}

func TestUpdateQuantityMissingLineIsNoop(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCart(t)

	require.NoError(t, store.AddItem(ctx, tshirt()))
	require.NoError(t, store.UpdateQuantity(ctx, "missing", "M", 4))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveItemMissingLineIsNoop(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCart(t)

	require.NoError(t, store.AddItem(ctx, tshirt()))
	require.NoError(t, store.RemoveItem(ctx, "missing", "M"))

	assert.Len(t, store.Items(), 1)
}

func TestTotalAndItemCount(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestCart(t)

	require.NoError(t, store.AddItem(ctx, tshirt()))
	require.NoError(t, store.AddItem(ctx, tshirt()))
	require.NoError(t, store.AddItem(ctx, jeans()))
	require.NoError(t, store.UpdateQuantity(ctx, "p2", "32", 3))

	assert.Equal(t, int64(2*299900+3*799900), store.Total())
	assert.Equal(t, 5, store.ItemCount())
	assert.Len(t, store.Items(), 2)
}

func TestCartRoundTripsThroughStorage(t *testing.T) {
	ctx := context.Background()
	store, storage := newTestCart(t)

	require.NoError(t, store.AddItem(ctx, jeans()))
	require.NoError(t, store.AddItem(ctx, tshirt()))
	require.NoError(t, store.AddItem(ctx, tshirt()))

	rehydrated, err := LoadCart(ctx, storage, "session-1")
	require.NoError(t, err)
	assert.Equal(t, store.Items(), rehydrated.Items())
	assert.Equal(t, store.Total(), rehydrated.Total())
}

func TestCorruptStoredCartIsEmpty(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "{not json at all"},
		{"wrong shape", `{"productId":"p1"}`},
		{"foreign lines", `[{"foo":"bar"}]`},
		{"negative quantity", `[{"productId":"p1","size":"M","priceCents":100,"quantity":-2}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			storage := newMemoryCartStorage()
			storage.data["session-1"] = tc.raw

			store, err := LoadCart(ctx, storage, "session-1")
			require.NoError(t, err)
			assert.Empty(t, store.Items())
			assert.Zero(t, store.Total())
		})
	}
}

func TestClearEmptiesCartAndStorage(t *testing.T) {
	ctx := context.Background()
	store, storage := newTestCart(t)

	require.NoError(t, store.AddItem(ctx, tshirt()))
	require.NoError(t, store.Clear(ctx))

	assert.Empty(t, store.Items())
	assert.Zero(t, store.ItemCount())

	rehydrated, err := LoadCart(ctx, storage, "session-1")
	require.NoError(t, err)
	assert.Empty(t, rehydrated.Items())
}

func TestCartsAreScopedBySessionKey(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryCartStorage()

	first, err := LoadCart(ctx, storage, "session-1")
	require.NoError(t, err)
	second, err := LoadCart(ctx, storage, "session-2")
	require.NoError(t, err)

	require.NoError(t, first.AddItem(ctx, tshirt()))
	require.NoError(t, second.AddItem(ctx, jeans()))

	reloaded, err := LoadCart(ctx, storage, "session-2")
	require.NoError(t, err)
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
}
