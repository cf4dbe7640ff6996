// internal/catalog/catalog.go
package catalog

import (
	"errors"

	"github.com/comparisonmarket/cm-backend/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// Repository is the catalog access capability. The in-memory implementation
// backs the mock deployment; a database-backed one can be swapped in without
// touching the resolver logic.
type Repository interface {
	// GetByID returns a copy of the product or ErrProductNotFound.
	GetByID(id int) (*models.Product, error)
	// List returns copies of all products in fixed catalog order.
	List() []models.Product
	// CurrentPrice returns the live catalog price for a product id.
	CurrentPrice(id int) (float64, bool)
}

type memoryCatalog struct {
	products []models.Product
	byID     map[int]int
}

// NewMemoryCatalog builds a catalog over the given products, preserving their
// order. Callers must not mutate the slice afterwards.
func NewMemoryCatalog(products []models.Product) Repository {
	byID := make(map[int]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &memoryCatalog{products: products, byID: byID}
}

// NewSeededCatalog returns the fixed demo catalog.
func NewSeededCatalog() Repository {
	return NewMemoryCatalog(seedProducts())
}

func (c *memoryCatalog) GetByID(id int) (*models.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := cloneProduct(c.products[i])
	return &p, nil
}

// cloneProduct copies the nested slices too, so callers can normalize the
// result without touching catalog state.
func cloneProduct(p models.Product) models.Product {
	p.Stores = append([]models.Store(nil), p.Stores...)
	p.Reviews = append([]models.Review(nil), p.Reviews...)
	p.PriceHistory = append([]models.PricePoint(nil), p.PriceHistory...)
	return p
}

func (c *memoryCatalog) List() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *memoryCatalog) CurrentPrice(id int) (float64, bool) {
	i, ok := c.byID[id]
	if !ok {
		return 0, false
	}
	return c.products[i].CurrentPrice, true
}
