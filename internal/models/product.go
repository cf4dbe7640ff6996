// internal/models/product.go
package models

// Catalog records live in a fixed in-memory catalog, not in the database.
// The JSON field names match what the web and mobile clients already consume.

type Product struct {
	ID                  int               `json:"id"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	LongDescription     string            `json:"longDescription,omitempty"`
	Image               string            `json:"image"`
	CurrentPrice        float64           `json:"currentPrice"`
	OriginalPrice       float64           `json:"originalPrice"`
	BestPrice           float64           `json:"bestPrice"`
	AveragePrice        float64           `json:"averagePrice"`
	Rating              float64           `json:"rating"`
	ReviewCount         int               `json:"reviewCount"`
	SustainabilityScore int               `json:"sustainabilityScore"`
	Category            string            `json:"category"`
	Brand               string            `json:"brand"`
	Barcode             string            `json:"barcode"`
	Stores              []Store           `json:"stores"`
	Specifications      map[string]string `json:"specifications,omitempty"`
	Reviews             []Review          `json:"reviews"`
	PriceHistory        []PricePoint      `json:"priceHistory"`
}

// PriceDrop is derived, never stored.
func (p *Product) PriceDrop() float64 {
	if drop := p.OriginalPrice - p.CurrentPrice; drop > 0 {
		return drop
	}
	return 0
}

// Store is an offer embedded by value in exactly one product.
type Store struct {
	ID           int          `json:"id,omitempty"`
	Name         string       `json:"name"`
	Price        float64      `json:"price"`
	InStock      bool         `json:"inStock"`
	Availability Availability `json:"availability,omitempty"`
	Location     string       `json:"location,omitempty"`
	Distance     string       `json:"distance,omitempty"`
	Rating       float64      `json:"rating,omitempty"`
	ReviewCount  int          `json:"reviewCount,omitempty"`
	DeliveryTime string       `json:"deliveryTime,omitempty"`
	Shipping     string       `json:"shipping,omitempty"`
	ReturnPolicy string       `json:"returnPolicy,omitempty"`
	Website      string       `json:"website,omitempty"`
}

type Review struct {
	ID      int    `json:"id"`
	User    string `json:"user,omitempty"`
	Author  string `json:"author,omitempty"`
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment,omitempty"`
	Content string `json:"content,omitempty"`
	Date    string `json:"date"`
	Helpful int    `json:"helpful"`
	// Verified is a pointer so normalization can tell "absent" from "false".
	Verified *bool `json:"verified,omitempty"`
}

type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
	Store string  `json:"store,omitempty"`
}
