// internal/services/wishlist_service_test.go
package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comparisonmarket/cm-backend/internal/catalog"
	"github.com/comparisonmarket/cm-backend/internal/models"
)

func smallCatalog(price float64) catalog.Repository {
	return catalog.NewMemoryCatalog([]models.Product{
		{ID: 1, Name: "Widget", CurrentPrice: price, Category: "Tools", Brand: "Acme"},
	})
}

func TestWishlistAddSnapshotsPrice(t *testing.T) {
	svc := NewWishlistService(NewMemoryWishlistStore(), smallCatalog(100))

	item, err := svc.Add("alice", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, item.ProductID)
	assert.Equal(t, 100.0, item.PriceWhenAdded)
	assert.Equal(t, 100.0, item.CurrentPrice)
	assert.Zero(t, item.PriceDrop)
	assert.False(t, item.AddedAt.IsZero())
}

func TestWishlistAddDuplicate(t *testing.T) {
	svc := NewWishlistService(NewMemoryWishlistStore(), smallCatalog(100))

	_, err := svc.Add("alice", 1)
	require.NoError(t, err)

	_, err = svc.Add("alice", 1)
	assert.ErrorIs(t, err, ErrAlreadyInWishlist)
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	svc := NewWishlistService(NewMemoryWishlistStore(), smallCatalog(100))

	_, err := svc.Add("alice", 999)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestWishlistRemove(t *testing.T) {
	svc := NewWishlistService(NewMemoryWishlistStore(), smallCatalog(100))

	_, err := svc.Add("alice", 1)
	require.NoError(t, err)

	require.NoError(t, svc.Remove("alice", 1))
	assert.Empty(t, svc.List("alice"))
}

func TestWishlistRemoveNotInList(t *testing.T) {
	svc := NewWishlistService(NewMemoryWishlistStore(), smallCatalog(100))

	err := svc.Remove("alice", 1)
	assert.ErrorIs(t, err, ErrNotInWishlist)
}

func TestWishlistListsAreIsolatedPerUser(t *testing.T) {
	svc := NewWishlistService(NewMemoryWishlistStore(), smallCatalog(100))

	_, err := svc.Add("alice", 1)
	require.NoError(t, err)

	assert.Len(t, svc.List("alice"), 1)
	assert.Empty(t, svc.List("bob"))
}

func TestWishlistRecomputesPriceDropOnRead(t *testing.T) {
	store := NewMemoryWishlistStore()

	svc := NewWishlistService(store, smallCatalog(100))
	_, err := svc.Add("alice", 1)
	require.NoError(t, err)

	// same store, price fell to 80
	svc = NewWishlistService(store, smallCatalog(80))
	items := svc.List("alice")
	require.Len(t, items, 1)
	assert.Equal(t, 100.0, items[0].PriceWhenAdded)
	assert.Equal(t, 80.0, items[0].CurrentPrice)
	assert.Equal(t, 20.0, items[0].PriceDrop)

	// price rose above the snapshot; the drop goes negative
	svc = NewWishlistService(store, smallCatalog(120))
	items = svc.List("alice")
	require.Len(t, items, 1)
	assert.Equal(t, -20.0, items[0].PriceDrop)
}

func TestWishlistConcurrentAdds(t *testing.T) {
	products := make([]models.Product, 50)
	for i := range products {
		products[i] = models.Product{ID: i + 1, CurrentPrice: float64(i + 1)}
	}
	svc := NewWishlistService(NewMemoryWishlistStore(), catalog.NewMemoryCatalog(products))

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, err := svc.Add("alice", id)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, svc.List("alice"), 50)
}
