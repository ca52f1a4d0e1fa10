package backend

import "rupeeshop-client/internal/product"

// DefaultCatalog is the bundled catalog snapshot. It backs the offline demo
// adapter and serves as the fallback when the catalog fetch fails at startup,
// so browsing keeps working in a degraded deployment.
//
// Prices are in paise.
func DefaultCatalog() []product.Product {
	return []product.Product{
		{
			ID:          1,
			Name:        "Aurora Wireless Earbuds",
			Price:       249900,
			Description: "Bluetooth 5.3 earbuds with active noise cancellation and a 28-hour case.",
			Category:    "Electronics",
			Images:      []string{"https://images.rupeeshop.in/products/aurora-earbuds-1.jpg"},
			Rating:      4.5,
			Reviews: []product.Review{
				{ID: 1001, UserID: 7, UserName: "Priya S", Rating: 5, Comment: "Battery easily lasts my commute week.", Date: "2025-11-18"},
				{ID: 1002, UserID: 12, UserName: "Arjun M", Rating: 4, Comment: "ANC is decent for the price.", Date: "2025-12-02"},
			},
			Brand:    "SoundCore",
			Stock:    42,
			Featured: true,
		},
		{
			ID:          2,
			Name:        "Handloom Cotton Kurta",
			Price:       129900,
			Description: "Breathable handloom cotton kurta, natural indigo dye.",
			Category:    "Clothing",
			Images:      []string{"https://images.rupeeshop.in/products/cotton-kurta-1.jpg"},
			Rating:      4.0,
			Reviews: []product.Review{
				{ID: 1003, UserID: 3, UserName: "Neha R", Rating: 4, Comment: "Fits true to size.", Date: "2026-01-09"},
			},
			Brand:    "FabWeave",
			Stock:    80,
			Trending: true,
		},
		{
			ID:          3,
			Name:        "Steelforge Pressure Cooker 5L",
			Price:       189900,
			Description: "Induction-ready stainless steel pressure cooker with two safety valves.",
			Category:    "Home & Kitchen",
			Images:      []string{"https://images.rupeeshop.in/products/steelforge-cooker-1.jpg"},
			Rating:      0,
			Reviews:     []product.Review{},
			Brand:       "Steelforge",
			Stock:       25,
		},
		{
			ID:          4,
			Name:        "Trailblazer Running Shoes",
			Price:       349900,
			Description: "Lightweight road runners with a responsive foam midsole.",
			Category:    "Footwear",
			Images: []string{
				"https://images.rupeeshop.in/products/trailblazer-1.jpg",
				"https://images.rupeeshop.in/products/trailblazer-2.jpg",
			},
			Rating: 4.7,
			Reviews: []product.Review{
				{ID: 1004, UserID: 9, UserName: "Kabir D", Rating: 5, Comment: "Zero break-in needed.", Date: "2025-10-22"},
				{ID: 1005, UserID: 4, UserName: "Ananya T", Rating: 5, Comment: "Great grip in the rain.", Date: "2025-11-30"},
				{ID: 1006, UserID: 15, UserName: "Rohit K", Rating: 4, Comment: "Slightly narrow toe box.", Date: "2026-01-14"},
			},
			Brand:    "Stride",
			Stock:    31,
			Featured: true,
			Trending: true,
		},
		{
			ID:          5,
			Name:        "Everglow Brass Table Lamp",
			Price:       99900,
			Description: "Hand-finished brass lamp with a warm-white filament bulb.",
			Category:    "Home & Kitchen",
			Images:      []string{"https://images.rupeeshop.in/products/everglow-lamp-1.jpg"},
			Rating:      3.5,
			Reviews: []product.Review{
				{ID: 1007, UserID: 21, UserName: "Sana I", Rating: 3, Comment: "Lovely finish, short cord.", Date: "2025-12-19"},
				{ID: 1008, UserID: 2, UserName: "Vikram P", Rating: 4, Comment: "Looks premium on a bedside table.", Date: "2026-02-01"},
			},
			Brand: "Everglow",
			Stock: 12,
		},
		{
			ID:          6,
			Name:        "Peak Focus Whey Protein 1kg",
			Price:       219900,
			Description: "24g protein per serving, unflavoured.",
			Category:    "Health",
			Images:      []string{},
			Rating:      0,
			Reviews:     []product.Review{},
			Brand:       "Peak",
			Stock:       0,
		},
	}
}
