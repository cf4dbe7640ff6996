// internal/services/product_service.go
package services

import (
	"sort"
	"strings"

	"github.com/comparisonmarket/cm-backend/internal/catalog"
	"github.com/comparisonmarket/cm-backend/internal/models"
)

type ProductService struct {
	catalog catalog.Repository
}

func NewProductService(cat catalog.Repository) *ProductService {
	return &ProductService{catalog: cat}
}

// GetProduct returns one product with its sub-objects normalized to the
// client-facing shape. Returns catalog.ErrProductNotFound on a missing id.
func (s *ProductService) GetProduct(id int) (*models.Product, error) {
	product, err := s.catalog.GetByID(id)
	if err != nil {
		return nil, err
	}

	NormalizeProduct(product)
	return product, nil
}

// ListProducts returns every catalog product, un-normalized, in catalog order.
func (s *ProductService) ListProducts() []models.Product {
	return s.catalog.List()
}

// GetDeals returns products whose price fell below their original price,
// ordered by the size of the drop.
func (s *ProductService) GetDeals() []models.Product {
	var deals []models.Product
	for _, p := range s.catalog.List() {
		if p.PriceDrop() > 0 {
			deals = append(deals, p)
		}
	}

	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].PriceDrop() > deals[j].PriceDrop()
	})
	return deals
}

type CategorySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GetCategories returns distinct catalog categories with product counts, in
// first-seen catalog order.
func (s *ProductService) GetCategories() []CategorySummary {
	var order []string
	counts := make(map[string]int)
	for _, p := range s.catalog.List() {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	summaries := make([]CategorySummary, 0, len(order))
	for _, name := range order {
		summaries = append(summaries, CategorySummary{Name: name, Count: counts[name]})
	}
	return summaries
}

// NormalizeProduct coerces store/review/price-history sub-objects into the
// shape both clients expect. Explicit source fields always win over derived
// defaults.
func NormalizeProduct(p *models.Product) {
	for i := range p.Stores {
		normalizeStore(&p.Stores[i], i)
	}
	for i := range p.Reviews {
		normalizeReview(&p.Reviews[i])
	}
	for i := range p.PriceHistory {
		if p.PriceHistory[i].Store == "" {
			p.PriceHistory[i].Store = "Average"
		}
	}
}

func normalizeStore(store *models.Store, index int) {
	if store.ID == 0 {
		store.ID = index + 1
	}
	if store.Availability == "" {
		if store.InStock {
			store.Availability = models.AvailabilityInStock
		} else {
			store.Availability = models.AvailabilityOutOfStock
		}
	}
	if store.Website == "" {
		store.Website = "https://" + stripWhitespace(strings.ToLower(store.Name)) + ".com"
	}
	if store.Shipping == "" {
		switch {
		case strings.Contains(strings.ToLower(store.DeliveryTime), "day"):
			store.Shipping = "Free"
		case store.DeliveryTime != "":
			store.Shipping = store.DeliveryTime
		default:
			store.Shipping = "Varies"
		}
	}
	if store.ReviewCount == 0 {
		rating := store.Rating
		if rating == 0 {
			rating = 4
		}
		store.ReviewCount = int(rating * 100)
	}
}

func normalizeReview(review *models.Review) {
	if review.Author == "" {
		review.Author = review.User
	}
	if review.Content == "" {
		review.Content = review.Comment
	}
	if review.Verified == nil {
		verified := true
		review.Verified = &verified
	}
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
