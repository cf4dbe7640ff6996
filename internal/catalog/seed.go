// internal/catalog/seed.go
package catalog

import "github.com/comparisonmarket/cm-backend/internal/models"

// seedProducts returns the demo catalog. Store sub-objects carry the raw
// source fields (inStock, deliveryTime); client-facing derived fields are
// filled by the product normalizer, not here.
func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:              1,
			Name:            "iPhone 15 Pro",
			Description:     "Latest iPhone with A17 Pro chip and titanium design",
			LongDescription: "The iPhone 15 Pro features the A17 Pro chip, the most advanced chip ever in a smartphone. With a titanium design, 48MP main camera, and USB-C connectivity, it's the most powerful iPhone yet.",
			Image:           "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=600&h=400&fit=crop",
			CurrentPrice:    999,
			OriginalPrice:   1199,
			BestPrice:       899,
			AveragePrice:    1099,
			Rating:          4.5,
			ReviewCount:     1247,
			Stores: []models.Store{
				{Name: "Apple Store", Price: 999, InStock: true, Distance: "0.5 miles", Location: "123 Main St", Rating: 4.8, DeliveryTime: "Same day pickup", ReturnPolicy: "14 days"},
				{Name: "Best Buy", Price: 899, InStock: true, Distance: "1.2 miles", Location: "456 Oak Ave", Rating: 4.2, DeliveryTime: "2-3 days", ReturnPolicy: "15 days"},
				{Name: "Target", Price: 1099, InStock: false, Distance: "2.1 miles", Location: "789 Pine Rd", Rating: 4.0, DeliveryTime: "Out of stock", ReturnPolicy: "90 days"},
			},
			PriceHistory: []models.PricePoint{
				{Date: "2024-01-01", Price: 1199},
				{Date: "2024-02-01", Price: 1099},
				{Date: "2024-03-01", Price: 999},
				{Date: "2024-04-01", Price: 899},
				{Date: "2024-05-01", Price: 999},
				{Date: "2024-06-01", Price: 899},
				{Date: "2024-07-01", Price: 999},
			},
			SustainabilityScore: 75,
			Category:            "Electronics",
			Brand:               "Apple",
			Barcode:             "1234567890123",
			Specifications: map[string]string{
				"Screen Size": "6.1 inches",
				"Storage":     "128GB, 256GB, 512GB, 1TB",
				"Color":       "Natural Titanium, Blue Titanium, White Titanium, Black Titanium",
				"Chip":        "A17 Pro chip",
				"Camera":      "48MP Main, 12MP Ultra Wide, 12MP Telephoto",
				"Battery":     "Up to 23 hours video playback",
			},
			Reviews: []models.Review{
				{ID: 1, User: "John D.", Rating: 5, Title: "Excellent phone!", Comment: "The A17 Pro chip is incredibly fast and the camera quality is outstanding.", Date: "2024-07-15", Helpful: 23},
				{ID: 2, User: "Sarah M.", Rating: 4, Title: "Great but expensive", Comment: "Love the titanium design and performance, but it's quite pricey.", Date: "2024-07-10", Helpful: 15},
				{ID: 3, User: "Mike R.", Rating: 5, Title: "Best iPhone yet", Comment: "The USB-C port is a game changer and the battery life is impressive.", Date: "2024-07-05", Helpful: 31},
			},
		},
		{
			ID:              2,
			Name:            "Sony WH-1000XM5",
			Description:     "Premium noise-canceling headphones",
			LongDescription: "Sony's flagship ANC headphones with industry-leading noise cancellation and comfortable fit.",
			Image:           "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=600&h=400&fit=crop",
			CurrentPrice:    349,
			OriginalPrice:   399,
			BestPrice:       299,
			AveragePrice:    349,
			Rating:          4.8,
			ReviewCount:     892,
			Stores: []models.Store{
				{Name: "Amazon", Price: 349, InStock: true, Distance: "Online", Location: "Online", Rating: 4.7, DeliveryTime: "2 days", ReturnPolicy: "30 days"},
				{Name: "Best Buy", Price: 299, InStock: true, Distance: "1.2 miles", Location: "456 Oak Ave", Rating: 4.3, DeliveryTime: "Same day pickup", ReturnPolicy: "15 days"},
				{Name: "Walmart", Price: 399, InStock: true, Distance: "3.5 miles", Location: "321 Elm St", Rating: 4.1, DeliveryTime: "3-5 days", ReturnPolicy: "30 days"},
			},
			PriceHistory: []models.PricePoint{
				{Date: "2024-01-01", Price: 399},
				{Date: "2024-02-01", Price: 349},
				{Date: "2024-03-01", Price: 299},
				{Date: "2024-04-01", Price: 349},
				{Date: "2024-05-01", Price: 299},
				{Date: "2024-06-01", Price: 349},
				{Date: "2024-07-01", Price: 299},
			},
			SustainabilityScore: 82,
			Category:            "Electronics",
			Brand:               "Sony",
			Barcode:             "1234567890124",
			Specifications: map[string]string{
				"Driver Size":  "30mm",
				"Battery":      "Up to 30 hours",
				"Connectivity": "Bluetooth 5.2, USB-C",
				"Weight":       "250g",
				"Colors":       "Black, Silver",
			},
		},
		{
			ID:              3,
			Name:            "MacBook Air M2",
			Description:     "13-inch laptop with M2 chip",
			LongDescription: "Apple's ultra-portable laptop with M2 chip delivers excellent performance and battery life.",
			Image:           "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=600&h=400&fit=crop",
			CurrentPrice:    1199,
			OriginalPrice:   1299,
			BestPrice:       1099,
			AveragePrice:    1199,
			Rating:          4.7,
			ReviewCount:     567,
			Stores: []models.Store{
				{Name: "Apple Store", Price: 1199, InStock: true, Distance: "0.5 miles", Location: "123 Main St", Rating: 4.8, DeliveryTime: "Same day pickup", ReturnPolicy: "14 days"},
				{Name: "Amazon", Price: 1099, InStock: true, Distance: "Online", Location: "Online", Rating: 4.6, DeliveryTime: "2 days", ReturnPolicy: "30 days"},
				{Name: "Best Buy", Price: 1199, InStock: false, Distance: "1.2 miles", Location: "456 Oak Ave", Rating: 4.2, DeliveryTime: "Out of stock", ReturnPolicy: "15 days"},
			},
			PriceHistory: []models.PricePoint{
				{Date: "2024-01-01", Price: 1299},
				{Date: "2024-02-01", Price: 1199},
				{Date: "2024-03-01", Price: 1099},
				{Date: "2024-04-01", Price: 1199},
				{Date: "2024-05-01", Price: 1099},
				{Date: "2024-06-01", Price: 1199},
				{Date: "2024-07-01", Price: 1099},
			},
			SustainabilityScore: 88,
			Category:            "Electronics",
			Brand:               "Apple",
			Barcode:             "1234567890125",
			Specifications: map[string]string{
				"Screen Size": "13.6 inches",
				"Chip":        "Apple M2",
				"Memory":      "8GB, 16GB, 24GB",
				"Storage":     "256GB, 512GB, 1TB, 2TB",
				"Weight":      "1.24 kg",
			},
		},
		{
			ID:              4,
			Name:            "Nike Air Max 270",
			Description:     "Comfortable running shoes",
			LongDescription: "Nike Air Max 270 combines comfort and style with a large Air unit for all-day wear.",
			Image:           "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&h=400&fit=crop",
			CurrentPrice:    150,
			OriginalPrice:   180,
			BestPrice:       120,
			AveragePrice:    150,
			Rating:          4.3,
			ReviewCount:     2341,
			Stores: []models.Store{
				{Name: "Nike Store", Price: 150, InStock: true, Distance: "0.8 miles", Location: "555 Sport Way", Rating: 4.6, DeliveryTime: "2-3 days", ReturnPolicy: "60 days"},
				{Name: "Foot Locker", Price: 120, InStock: true, Distance: "1.5 miles", Location: "777 Athletic Blvd", Rating: 4.1, DeliveryTime: "Same day pickup", ReturnPolicy: "30 days"},
				{Name: "Amazon", Price: 140, InStock: true, Distance: "Online", Location: "Online", Rating: 4.2, DeliveryTime: "2 days", ReturnPolicy: "30 days"},
			},
			PriceHistory: []models.PricePoint{
				{Date: "2024-01-01", Price: 180},
				{Date: "2024-02-01", Price: 160},
				{Date: "2024-03-01", Price: 140},
				{Date: "2024-04-01", Price: 120},
				{Date: "2024-05-01", Price: 150},
				{Date: "2024-06-01", Price: 120},
				{Date: "2024-07-01", Price: 150},
			},
			SustainabilityScore: 65,
			Category:            "Fashion",
			Brand:               "Nike",
			Barcode:             "1234567890126",
			Specifications: map[string]string{
				"Material": "Mesh, Rubber",
				"Sizes":    "US 6-12",
				"Colors":   "Multiple",
				"Weight":   "255g",
			},
		},
		{
			ID:              5,
			Name:            "Samsung 65\" QLED 4K TV",
			Description:     "Smart TV with Quantum Dot technology",
			LongDescription: "Vivid colors and sharp contrast with Samsung's QLED panel and smart TV features.",
			Image:           "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=600&h=400&fit=crop",
			CurrentPrice:    1299,
			OriginalPrice:   1599,
			BestPrice:       1199,
			AveragePrice:    1399,
			Rating:          4.6,
			ReviewCount:     892,
			Stores: []models.Store{
				{Name: "Best Buy", Price: 1299, InStock: true, Distance: "1.2 miles", Location: "456 Oak Ave", Rating: 4.4, DeliveryTime: "Next day", ReturnPolicy: "15 days"},
				{Name: "Amazon", Price: 1199, InStock: true, Distance: "Online", Location: "Online", Rating: 4.5, DeliveryTime: "2 days", ReturnPolicy: "30 days"},
				{Name: "Walmart", Price: 1399, InStock: true, Distance: "3.5 miles", Location: "321 Elm St", Rating: 4.0, DeliveryTime: "2-4 days", ReturnPolicy: "90 days"},
			},
			PriceHistory: []models.PricePoint{
				{Date: "2024-01-01", Price: 1599},
				{Date: "2024-02-01", Price: 1499},
				{Date: "2024-03-01", Price: 1399},
				{Date: "2024-04-01", Price: 1299},
				{Date: "2024-05-01", Price: 1199},
				{Date: "2024-06-01", Price: 1299},
				{Date: "2024-07-01", Price: 1199},
			},
			SustainabilityScore: 72,
			Category:            "Electronics",
			Brand:               "Samsung",
			Barcode:             "1234567890127",
			Specifications: map[string]string{
				"Size":       "65 inches",
				"Resolution": "4K UHD",
				"Panel":      "QLED",
				"HDMI":       "4 ports",
				"OS":         "Tizen",
			},
		},
	}
}
