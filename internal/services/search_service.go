// internal/services/search_service.go
package services

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/comparisonmarket/cm-backend/internal/cache"
	"github.com/comparisonmarket/cm-backend/internal/catalog"
	"github.com/comparisonmarket/cm-backend/internal/models"
)

type SearchService struct {
	catalog catalog.Repository
	cache   *cache.SearchCache
}

// SearchParams mirror the query string; numeric bounds stay strings so
// malformed values can be ignored rather than rejected.
type SearchParams struct {
	Query    string `json:"q"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	MinPrice string `json:"minPrice"`
	MaxPrice string `json:"maxPrice"`
	SortBy   string `json:"sortBy"`
}

type SearchFilters struct {
	Category string `json:"category"`
	Brand    string `json:"brand"`
	MinPrice string `json:"minPrice"`
	MaxPrice string `json:"maxPrice"`
	SortBy   string `json:"sortBy"`
}

type SearchResult struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	Query    string           `json:"query"`
	Filters  SearchFilters    `json:"filters"`
}

func NewSearchService(cat catalog.Repository, searchCache *cache.SearchCache) *SearchService {
	return &SearchService{
		catalog: cat,
		cache:   searchCache,
	}
}

func (s *SearchService) Search(ctx context.Context, params SearchParams) SearchResult {
	if params.SortBy == "" {
		params.SortBy = string(models.SortRelevance)
	}

	cacheKey := s.cacheKey(params)
	var cached SearchResult
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached
	}

	filtered := filterProducts(s.catalog.List(), params)
	sortProducts(filtered, models.SortKey(params.SortBy))

	result := SearchResult{
		Products: filtered,
		Total:    len(filtered),
		Query:    params.Query,
		Filters: SearchFilters{
			Category: params.Category,
			Brand:    params.Brand,
			MinPrice: params.MinPrice,
			MaxPrice: params.MaxPrice,
			SortBy:   params.SortBy,
		},
	}

	s.cache.Set(ctx, cacheKey, result)
	return result
}

// filterProducts keeps products matching the free-text query in any of
// name/description/brand/category (case-insensitive) or barcode (raw), AND'ed
// with every structured filter. Empty or malformed filters pass everything.
func filterProducts(products []models.Product, params SearchParams) []models.Product {
	query := strings.ToLower(params.Query)
	minPrice, hasMin := parsePrice(params.MinPrice)
	maxPrice, hasMax := parsePrice(params.MaxPrice)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !matchesQuery(&p, query, params.Query) {
			continue
		}
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if params.Brand != "" && p.Brand != params.Brand {
			continue
		}
		if hasMin && p.CurrentPrice < minPrice {
			continue
		}
		if hasMax && p.CurrentPrice > maxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesQuery(p *models.Product, loweredQuery, rawQuery string) bool {
	return strings.Contains(strings.ToLower(p.Name), loweredQuery) ||
		strings.Contains(strings.ToLower(p.Description), loweredQuery) ||
		strings.Contains(strings.ToLower(p.Brand), loweredQuery) ||
		strings.Contains(strings.ToLower(p.Category), loweredQuery) ||
		strings.Contains(p.Barcode, rawQuery)
}

// sortProducts orders in place. Stability matters: ties keep catalog order,
// and relevance is a no-op.
func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CurrentPrice < products[j].CurrentPrice
		})
	case models.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CurrentPrice > products[j].CurrentPrice
		})
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case models.SortReviews:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReviewCount > products[j].ReviewCount
		})
	case models.SortSustainability:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SustainabilityScore > products[j].SustainabilityScore
		})
	}
}

func parsePrice(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func (s *SearchService) cacheKey(params SearchParams) string {
	v := url.Values{}
	v.Set("q", params.Query)
	v.Set("category", params.Category)
	v.Set("brand", params.Brand)
	v.Set("minPrice", params.MinPrice)
	v.Set("maxPrice", params.MaxPrice)
	v.Set("sortBy", params.SortBy)
	return v.Encode()
}
