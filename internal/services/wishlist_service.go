// internal/services/wishlist_service.go
package services

import (
	"sync"
	"time"

	"github.com/comparisonmarket/cm-backend/internal/catalog"
	"github.com/comparisonmarket/cm-backend/internal/models"
)

// WishlistStore is the storage capability behind the reconciler, so the
// in-memory mock can be swapped for a database without touching the
// reconciliation logic. Implementations must be safe for concurrent use.
type WishlistStore interface {
	Items(userID string) []models.WishlistItem
	Add(userID string, item models.WishlistItem) error
	Remove(userID string, productID int) error
}

type memoryWishlistStore struct {
	mu    sync.RWMutex
	lists map[string][]models.WishlistItem
}

func NewMemoryWishlistStore() WishlistStore {
	return &memoryWishlistStore{lists: make(map[string][]models.WishlistItem)}
}

func (s *memoryWishlistStore) Items(userID string) []models.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.lists[userID]
	out := make([]models.WishlistItem, len(items))
	copy(out, items)
	return out
}

func (s *memoryWishlistStore) Add(userID string, item models.WishlistItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.lists[userID] {
		if existing.ProductID == item.ProductID {
			return ErrAlreadyInWishlist
		}
	}
	s.lists[userID] = append(s.lists[userID], item)
	return nil
}

func (s *memoryWishlistStore) Remove(userID string, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.lists[userID]
	for i, item := range items {
		if item.ProductID == productID {
			s.lists[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotInWishlist
}

type WishlistService struct {
	store   WishlistStore
	catalog catalog.Repository
}

func NewWishlistService(store WishlistStore, cat catalog.Repository) *WishlistService {
	return &WishlistService{
		store:   store,
		catalog: cat,
	}
}

// List returns the user's wishlist with currentPrice and priceDrop recomputed
// against the live catalog at read time. priceDrop = priceWhenAdded -
// currentPrice; negative means the price rose since the item was added.
func (s *WishlistService) List(userID string) []models.WishlistItem {
	items := s.store.Items(userID)
	for i := range items {
		if price, ok := s.catalog.CurrentPrice(items[i].ProductID); ok {
			items[i].CurrentPrice = price
			items[i].PriceDrop = items[i].PriceWhenAdded - price
		}
	}
	return items
}

// Add snapshots the live catalog price. Fails with ErrAlreadyInWishlist on a
// duplicate and catalog.ErrProductNotFound on an unknown product.
func (s *WishlistService) Add(userID string, productID int) (*models.WishlistItem, error) {
	price, ok := s.catalog.CurrentPrice(productID)
	if !ok {
		return nil, catalog.ErrProductNotFound
	}

	item := models.WishlistItem{
		ProductID:      productID,
		AddedAt:        time.Now().UTC(),
		PriceWhenAdded: price,
		CurrentPrice:   price,
		PriceDrop:      0,
	}

	if err := s.store.Add(userID, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *WishlistService) Remove(userID string, productID int) error {
	return s.store.Remove(userID, productID)
}
