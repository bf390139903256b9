package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhollow/storefront/models"
)

func candleItem(maxStock int) models.CartItem {
	return models.CartItem{
		ProductSlug:    "amber-jar",
		VariantID:      "wood_30mm-8oz-lavender",
		Name:           "Amber Jar Candle",
		UnitPriceCents: 2000,
		MaxStock:       maxStock,
		PaymentRef:     "price_amber_jar:wood_30mm-8oz-lavender",
		VariantLabels:  []string{"wood_30mm", "8oz", "Lavender"},
	}
}

func TestAddItemRespectsStockCeiling(t *testing.T) {
	store := NewStore("shopper-1", NewMemoryStorage())
	item := candleItem(2)

	assert.True(t, store.AddItem(item, 1))
	assert.True(t, store.AddItem(item, 1))
	assert.Equal(t, 2, store.ItemQuantity(item.ProductSlug, item.VariantID))

	// Third add exceeds the ceiling: refused, quantity unchanged.
	assert.False(t, store.AddItem(item, 1))
	assert.Equal(t, 2, store.ItemQuantity(item.ProductSlug, item.VariantID))
	assert.Equal(t, int64(4000), store.TotalPriceCents())
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	store := NewStore("shopper-1", NewMemoryStorage())

	assert.True(t, store.AddItem(candleItem(5), 0))
	assert.Equal(t, 1, store.ItemQuantity("amber-jar", "wood_30mm-8oz-lavender"))
}

func TestAddItemUpsertsExistingLine(t *testing.T) {
	store := NewStore("shopper-1", NewMemoryStorage())
	item := candleItem(10)

	require.True(t, store.AddItem(item, 2))

	// A later add refreshes the captured price and ceiling.
	item.UnitPriceCents = 2600
	item.MaxStock = 4
	require.True(t, store.AddItem(item, 1))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(2600), items[0].UnitPriceCents)
	assert.Equal(t, 4, items[0].MaxStock)
}

func TestUpdateQuantityClampsIntoBounds(t *testing.T) {
	store := NewStore("shopper-1", NewMemoryStorage())
	item := candleItem(3)
	require.True(t, store.AddItem(item, 1))

	assert.Equal(t, 3, store.UpdateQuantity(item.ProductSlug, item.VariantID, 7))
	assert.Equal(t, 3, store.ItemQuantity(item.ProductSlug, item.VariantID))

	assert.Equal(t, 2, store.UpdateQuantity(item.ProductSlug, item.VariantID, 2))

	// Negative requests clamp to zero, which removes the line.
	assert.Equal(t, 0, store.UpdateQuantity(item.ProductSlug, item.VariantID, -4))
	assert.Empty(t, store.Items())
}

func TestUpdateQuantityUnknownIdentityIsNoOp(t *testing.T) {
	store := NewStore("shopper-1", NewMemoryStorage())
	assert.Equal(t, 0, store.UpdateQuantity("amber-jar", "missing", 3))
	assert.Empty(t, store.Items())
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	store := NewStore("shopper-1", NewMemoryStorage())
	item := candleItem(5)
	require.True(t, store.AddItem(item, 2))

	store.RemoveItem(item.ProductSlug, item.VariantID)
	assert.Empty(t, store.Items())

	// Removing again is harmless.
	store.RemoveItem(item.ProductSlug, item.VariantID)
	assert.Empty(t, store.Items())
}

func TestClearEmptiesCart(t *testing.T) {
	store := NewStore("shopper-1", NewMemoryStorage())
	require.True(t, store.AddItem(candleItem(5), 2))

	other := candleItem(5)
	other.VariantID = "cdn12-8oz-leather"
	require.True(t, store.AddItem(other, 1))

	store.Clear()
	assert.Empty(t, store.Items())
	assert.Equal(t, int64(0), store.TotalPriceCents())
	assert.Equal(t, 0, store.TotalItems())
}

func TestTotalsRecomputedOnDemand(t *testing.T) {
	store := NewStore("shopper-1", NewMemoryStorage())
	item := candleItem(10)
	require.True(t, store.AddItem(item, 2))

	assert.Equal(t, int64(4000), store.TotalPriceCents())

	store.UpdateQuantity(item.ProductSlug, item.VariantID, 5)
	assert.Equal(t, int64(10000), store.TotalPriceCents())
	assert.Equal(t, 5, store.TotalItems())
}

func TestEveryMutationPersistsSnapshot(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore("shopper-1", storage)
	item := candleItem(5)

	require.True(t, store.AddItem(item, 2))
	snap, err := storage.Load("shopper-1")
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)

	store.UpdateQuantity(item.ProductSlug, item.VariantID, 1)
	snap, err = storage.Load("shopper-1")
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)

	store.Clear()
	snap, err = storage.Load("shopper-1")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
}

func TestNewStoreHydratesFromSnapshot(t *testing.T) {
	storage := NewMemoryStorage()
	first := NewStore("shopper-1", storage)
	require.True(t, first.AddItem(candleItem(5), 2))

	// A fresh store for the same key sees the persisted cart.
	second := NewStore("shopper-1", storage)
	assert.Equal(t, 2, second.ItemQuantity("amber-jar", "wood_30mm-8oz-lavender"))
	assert.Equal(t, int64(4000), second.TotalPriceCents())
}

func TestNewStoreDropsUnknownSnapshotVersion(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save("shopper-1", models.CartSnapshot{
		Version: 99,
		Items:   []models.CartItem{candleItem(5)},
	}))

	store := NewStore("shopper-1", storage)
	assert.Empty(t, store.Items())
}

func TestNewStoreSkipsNonPositiveQuantities(t *testing.T) {
	storage := NewMemoryStorage()
	good := candleItem(5)
	good.Quantity = 2
	bad := candleItem(5)
	bad.VariantID = "cdn12-8oz-leather"
	bad.Quantity = 0

	require.NoError(t, storage.Save("shopper-1", models.CartSnapshot{
		Version: models.SnapshotVersion,
		Items:   []models.CartItem{good, bad},
	}))

	store := NewStore("shopper-1", storage)
	require.Len(t, store.Items(), 1)
	assert.Equal(t, 2, store.ItemQuantity("amber-jar", "wood_30mm-8oz-lavender"))
}

func TestSubscribersFireAfterMutations(t *testing.T) {
	store := NewStore("shopper-1", NewMemoryStorage())
	events := 0
	store.Subscribe(func() { events++ })

	item := candleItem(2)
	store.AddItem(item, 1)                                     // fires
	store.AddItem(item, 5)                                     // refused: no event
	store.UpdateQuantity(item.ProductSlug, item.VariantID, 2)  // fires
	store.RemoveItem(item.ProductSlug, item.VariantID)         // fires
	store.RemoveItem(item.ProductSlug, item.VariantID)         // absent: no event
	store.Clear()                                              // fires

	assert.Equal(t, 4, events)
}

func TestSubscriberMayReadStore(t *testing.T) {
	// Hooks run outside the store lock, so reading totals from inside a
	// hook must not deadlock.
	store := NewStore("shopper-1", NewMemoryStorage())
	var seen int64
	store.Subscribe(func() { seen = store.TotalPriceCents() })

	store.AddItem(candleItem(5), 2)
	assert.Equal(t, int64(4000), seen)
}
