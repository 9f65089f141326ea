package config

// Default returns the stock sales dataset configuration.
func Default() Config {
	return Config{
		Seed:        42,
		Customers:   1000,
		Products:    200,
		Orders:      10000,
		MinItems:    1,
		MaxItems:    5,
		StartDate:   "2023-01-01",
		EndDate:     "2025-09-30",
		DBPath:      "sales.db",
		ReadmePath:  "README_sales_db.md",
		PreviewRows: 5,
		BatchSize:   200,
		Regions: []string{
			"Nordics: Sweden",
			"Nordics: Norway",
			"Nordics: Denmark",
			"DACH: Germany",
			"DACH: Austria",
			"DACH: Switzerland",
			"US: West",
			"US: East",
			"UK & Ireland",
			"Southern Europe: Spain",
			"Southern Europe: Italy",
			"Benelux: Netherlands",
		},
		Categories: []Category{
			{Name: "Electronics", MinPrice: 80, MaxPrice: 2000, Products: []string{"Smartphone", "Laptop", "Tablet", "Headphones", "Smartwatch", "Camera", "Monitor", "Keyboard"}},
			{Name: "Home", MinPrice: 20, MaxPrice: 600, Products: []string{"Vacuum", "Air Purifier", "Coffee Maker", "Blender", "Microwave", "Toaster", "Lamp", "Heater"}},
			{Name: "Apparel", MinPrice: 5, MaxPrice: 300, Products: []string{"T-Shirt", "Jeans", "Jacket", "Sneakers", "Dress", "Hoodie", "Socks", "Cap"}},
			{Name: "Sports", MinPrice: 10, MaxPrice: 500, Products: []string{"Running Shoes", "Yoga Mat", "Dumbbells", "Bicycle Helmet", "Tennis Racket", "Football", "Basketball", "Swim Goggles"}},
			{Name: "Beauty", MinPrice: 5, MaxPrice: 200, Products: []string{"Moisturizer", "Serum", "Shampoo", "Conditioner", "Perfume", "Sunscreen", "Lipstick", "Mascara"}},
			{Name: "Automotive", MinPrice: 10, MaxPrice: 400, Products: []string{"Car Wax", "Motor Oil", "Air Freshener", "Wiper Blades", "Tire Inflator", "Dashboard Camera", "Phone Mount", "Seat Cover"}},
			{Name: "Toys", MinPrice: 5, MaxPrice: 200, Products: []string{"RC Car", "Puzzle", "Action Figure", "Doll", "Board Game", "Building Blocks", "Kite", "Yo-yo"}},
			{Name: "Outdoors", MinPrice: 15, MaxPrice: 800, Products: []string{"Tent", "Sleeping Bag", "Camping Stove", "Backpack", "Hiking Poles", "Water Filter", "Cooler", "Flashlight"}},
		},
		FirstNames: []string{"Alex", "Taylor", "Jordan", "Morgan", "Casey", "Riley", "Jamie", "Cameron", "Drew", "Sam", "Avery", "Quinn", "Elliot", "Rowan", "Reese", "Hayden"},
		LastNames:  []string{"Smith", "Johnson", "Andersson", "Svensson", "Brown", "Garcia", "Müller", "Schmidt", "Williams", "Jones", "Davis", "Martinez", "Clark", "Lewis", "Walker", "Young"},
	}
}
