package staticpool

import "github.com/styleloom/outfitter/internal/core/domain"

// seedProducts returns the built-in fashion catalog. IDs are stable across
// calls, unlike live search results.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "seed-1", Name: "Red Cotton Kurti with Palazzo Set",
			Price: 899, OriginalPrice: 1499, Rating: 4.3, Reviews: 1248,
			Category: "Women Ethnic", Seller: "Ethnic Bazaar",
			Description: "Beautiful red cotton kurti with matching palazzo pants, perfect for casual and festive occasions.",
			Features:    []string{"100% Cotton", "Machine washable", "Matching palazzo"},
			Colors:      []string{"Red", "Blue", "Green"},
			Sizes:       []string{"S", "M", "L", "XL"},
			InStock:     true, Source: "seed",
		},
		{
			ID: "seed-2", Name: "Blue Denim Jeans - Skinny Fit",
			Price: 799, OriginalPrice: 1299, Rating: 4.5, Reviews: 892,
			Category: "Women Western", Seller: "Denim Co.",
			Description: "Classic blue skinny fit jeans, perfect bottom wear for any casual top.",
			Colors:      []string{"Blue", "Black", "Grey"},
			Sizes:       []string{"26", "28", "30", "32"},
			InStock:     true, Source: "seed",
		},
		{
			ID: "seed-3", Name: "Black High-Waist Palazzo Pants",
			Price: 599, OriginalPrice: 999, Rating: 4.4, Reviews: 756,
			Category: "Women Western", Seller: "Fashion Hub",
			Description: "Elegant black high-waist palazzo pants for a chic everyday look.",
			Colors:      []string{"Black", "Navy", "Maroon"},
			Sizes:       []string{"S", "M", "L", "XL"},
			InStock:     true, Source: "seed",
		},
		{
			ID: "seed-4", Name: "White Cotton A-Line Skirt",
			Price: 649, OriginalPrice: 1099, Rating: 4.2, Reviews: 543,
			Category: "Women Western", Seller: "Style Studio",
			Description: "Classic white A-line skirt for a fresh, clean casual look.",
			Colors:      []string{"White", "Beige", "Light Blue"},
			Sizes:       []string{"XS", "S", "M", "L"},
			InStock:     true, Source: "seed",
		},
		{
			ID: "seed-5", Name: "Traditional Silk Saree with Blouse",
			Price: 2499, OriginalPrice: 4999, Rating: 4.7, Reviews: 892,
			Category: "Women Ethnic", Seller: "Silk Heritage",
			Description: "Elegant silk saree with intricate border work and matching blouse piece, perfect for special occasions.",
			Colors:      []string{"Red", "Blue", "Green", "Pink"},
			Sizes:       []string{"Free Size"},
			InStock:     true, Source: "seed",
		},
		{
			ID: "seed-6", Name: "Casual Cotton T-Shirt - Red",
			Price: 399, OriginalPrice: 699, Rating: 4.1, Reviews: 1234,
			Category: "Women Western", Seller: "Basic Tees",
			Description: "Comfortable red cotton t-shirt, perfect for pairing with jeans, skirts, or palazzo pants.",
			Colors:      []string{"Red", "White", "Black"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			InStock:     true, Source: "seed",
		},
		{
			ID: "seed-7", Name: "Designer Lehenga Choli Set",
			Price: 3999, OriginalPrice: 7999, Rating: 4.8, Reviews: 456,
			Category: "Women Ethnic", Seller: "Royal Collection",
			Description: "Stunning designer lehenga choli with heavy embroidery work, perfect for weddings and festivals.",
			Colors:      []string{"Pink", "Red", "Blue"},
			Sizes:       []string{"S", "M", "L", "XL"},
			InStock:     true, Source: "seed",
		},
		{
			ID: "seed-8", Name: "Casual White Sneakers",
			Price: 999, OriginalPrice: 1599, Rating: 4.3, Reviews: 892,
			Category: "Footwear", Seller: "Shoe Studio",
			Description: "Comfortable white sneakers perfect for casual outfits and everyday wear.",
			Colors:      []string{"White", "Black", "Grey"},
			Sizes:       []string{"6", "7", "8", "9"},
			InStock:     true, Source: "seed",
		},
		{
			ID: "seed-9", Name: "Brown Block Heel Sandals",
			Price: 799, OriginalPrice: 1299, Rating: 4.4, Reviews: 567,
			Category: "Footwear", Seller: "Heel Heaven",
			Description: "Elegant brown block heel sandals perfect for formal and semi-formal occasions.",
			Colors:      []string{"Brown", "Black", "Tan"},
			Sizes:       []string{"6", "7", "8", "9"},
			InStock:     true, Source: "seed",
		},
		{
			ID: "seed-10", Name: "Black Handbag with Chain Strap",
			Price: 1299, OriginalPrice: 2199, Rating: 4.5, Reviews: 743,
			Category: "Accessories", Seller: "Bag Boutique",
			Description: "Stylish black handbag with chain strap, perfect accessory for any outfit.",
			Colors:      []string{"Black", "Brown", "Navy"},
			Sizes:       []string{"One Size"},
			InStock:     true, Source: "seed",
		},
		{
			ID: "seed-11", Name: "Gold Statement Earrings",
			Price: 399, OriginalPrice: 699, Rating: 4.6, Reviews: 1234,
			Category: "Jewelry", Seller: "Jewelry Junction",
			Description: "Beautiful gold statement earrings to complement ethnic and western outfits.",
			Colors:      []string{"Gold", "Silver"},
			Sizes:       []string{"One Size"},
			InStock:     true, Source: "seed",
		},
		{
			ID: "seed-12", Name: "Navy Blue Cotton Shirt",
			Price: 699, OriginalPrice: 1199, Rating: 4.2, Reviews: 456,
			Category: "Women Western", Seller: "Cotton Craft",
			Description: "Classic navy blue cotton shirt, perfect for office wear and casual styling.",
			Colors:      []string{"Navy", "White"},
			Sizes:       []string{"S", "M", "L", "XL"},
			InStock:     true, Source: "seed",
		},
	}
}
