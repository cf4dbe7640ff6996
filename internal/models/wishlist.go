// internal/models/wishlist.go
package models

import "time"

// WishlistItem tracks a saved product. CurrentPrice and PriceDrop are
// recomputed against the live catalog on every read and never persisted, so a
// stale snapshot can't be served.
type WishlistItem struct {
	ProductID      int       `json:"productId"`
	AddedAt        time.Time `json:"addedAt"`
	PriceWhenAdded float64   `json:"priceWhenAdded"`
	CurrentPrice   float64   `json:"currentPrice"`
	// PriceDrop = priceWhenAdded - currentPrice. Positive means the price fell
	// since the item was added; negative means it rose.
	PriceDrop float64 `json:"priceDrop"`
}
