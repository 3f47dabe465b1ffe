package catalog

// Static DXLR catalog. Loaded once at startup, read-only afterwards.
// Prices are whole EGP.

var categories = []Category{
	{
		Slug:        "shirts",
		Name:        "Shirts",
		Description: "Premium quality shirts for every occasion",
		Image:       "/images/categories/shirts.jpg",
	},
	{
		Slug:        "pants",
		Name:        "Pants",
		Description: "Tailored trousers and relaxed fits",
		Image:       "/images/categories/pants.jpg",
	},
	{
		Slug:        "jackets",
		Name:        "Jackets",
		Description: "Outerwear that makes a statement",
		Image:       "/images/categories/jackets.jpg",
	},
	{
		Slug:        "accessories",
		Name:        "Accessories",
		Description: "The finishing touches to complete your look",
		Image:       "/images/categories/accessories.jpg",
	},
}

var products = []Product{
	{
		ID:           "001",
		Name:         "Classic White Oxford Shirt",
		Price:        1850,
		Category:     "Shirts",
		CategorySlug: "shirts",
		Description:  "A timeless white Oxford shirt crafted from premium Egyptian cotton. The perfect foundation for any wardrobe, this shirt features a classic fit with a button-down collar and genuine mother-of-pearl buttons. Versatile enough to wear with a suit or casually with jeans.",
		Details: []string{
			"100% Egyptian cotton Oxford weave",
			"Classic fit with button-down collar",
			"Mother-of-pearl buttons",
			"Single chest pocket",
			"Adjustable barrel cuffs",
			"Split back yoke for comfort",
		},
		Care: []string{
			"Machine wash cold with like colors",
			"Tumble dry low",
			"Iron on medium heat",
			"Do not bleach",
		},
		Material: "100% Egyptian Cotton",
		Images: []string{
			"https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=800&q=80",
			"https://images.unsplash.com/photo-1598033129183-c4f50c736f10?w=800&q=80",
			"https://images.unsplash.com/photo-1620012253295-c15cc3e65df4?w=800&q=80",
		},
		Sizes: []string{"S", "M", "L", "XL", "XXL"},
		Colors: []Color{
			{Name: "White", Hex: "#FFFFFF"},
			{Name: "Light Blue", Hex: "#ADD8E6"},
		},
		Featured: true,
		New:      true,
		InStock:  true,
	},
	{
		ID:           "002",
		Name:         "Premium Wool Overcoat",
		Price:        4500,
		Category:     "Jackets",
		CategorySlug: "jackets",
		Description:  "A sophisticated overcoat crafted from Italian virgin wool. This timeless piece features a tailored silhouette with peak lapels, double-breasted closure, and a luxurious satin lining. Perfect for formal occasions and cold weather elegance.",
		Details: []string{
			"100% Italian virgin wool",
			"Double-breasted with peak lapels",
			"Full satin lining",
			"Two flap pockets with ticket pocket",
			"Inside welt pocket",
			"Center back vent",
		},
		Care: []string{
			"Professional dry clean only",
			"Store on wide hanger",
			"Use garment bag for storage",
			"Brush regularly to maintain",
		},
		Material: "100% Virgin Wool",
		Images: []string{
			"https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=800&q=80",
			"https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=800&q=80",
			"https://images.unsplash.com/photo-1617127365659-c47fa864d8bc?w=800&q=80",
		},
		Sizes: []string{"S", "M", "L", "XL"},
		Colors: []Color{
			{Name: "Charcoal", Hex: "#36454F"},
			{Name: "Navy", Hex: "#1B2838"},
			{Name: "Camel", Hex: "#C19A6B"},
		},
		Featured:  true,
		Sale:      true,
		SalePrice: 3600,
		InStock:   true,
	},
	{
		ID:           "003",
		Name:         "Italian Leather Belt",
		Price:        950,
		Category:     "Accessories",
		CategorySlug: "accessories",
		Description:  "A handcrafted leather belt made from full-grain Italian calfskin. Features a solid brass buckle with a brushed finish and carefully stitched edges. This belt ages beautifully, developing a unique patina over time.",
		Details: []string{
			"Full-grain Italian calfskin leather",
			"Solid brass buckle with brushed finish",
			"Hand-stitched edges",
			"35mm width",
			"5 adjustment holes",
			"Made in Italy",
		},
		Care: []string{
			"Wipe with dry cloth after use",
			"Apply leather conditioner monthly",
			"Store flat or rolled",
			"Keep away from direct sunlight",
		},
		Material: "100% Italian Calfskin Leather",
		Images: []string{
			"https://images.unsplash.com/photo-1624222247344-550fb60583dc?w=800&q=80",
			"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&q=80",
			"https://images.unsplash.com/photo-1585856331426-d7e74642e45a?w=800&q=80",
		},
		Sizes: []string{"85cm", "90cm", "95cm", "100cm", "105cm"},
		Colors: []Color{
			{Name: "Black", Hex: "#1A1A1A"},
			{Name: "Dark Brown", Hex: "#3D2314"},
			{Name: "Tan", Hex: "#D2B48C"},
		},
		Featured: true,
		New:      true,
		InStock:  true,
	},
	{
		ID:           "004",
		Name:         "Premium Denim Jeans",
		Price:        3200,
		Category:     "Pants",
		CategorySlug: "pants",
		Description:  "Expertly crafted from Japanese selvedge denim. These jeans feature a modern tapered fit and are rinsed for a softer feel from the first wear. The indigo dye will fade uniquely to you over time.",
		Details: []string{
			"13.5oz Japanese selvedge denim",
			"Modern tapered fit",
			"Button fly",
			"Chain-stitched hem",
			"Leather patch",
			"Made in Japan",
		},
		Care: []string{
			"Wash cold inside out",
			"Hang dry only",
			"Wash infrequently",
			"Avoid light colors initially",
		},
		Material: "100% Cotton Selvedge Denim",
		Images: []string{
			"https://images.unsplash.com/photo-1602293589930-45aad59ba3ab?w=800&q=80",
			"https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=800&q=80",
			"https://images.unsplash.com/photo-1565084888279-aca607ecce0c?w=800&q=80",
		},
		Sizes: []string{"30", "31", "32", "33", "34", "36"},
		Colors: []Color{
			{Name: "Indigo", Hex: "#1F2937"},
			{Name: "Black", Hex: "#111827"},
			{Name: "Light Wash", Hex: "#9CA3AF"},
		},
		Featured: true,
		InStock:  true,
	},
	{
		ID:           "005",
		Name:         "Cashmere Turtleneck",
		Price:        3800,
		Category:     "Shirts",
		CategorySlug: "shirts",
		Description:  "The ultimate luxury basic. Woven from Grade-A Mongolian cashmere, this turtleneck offers unmatched softness and warmth without bulk. A perfect layering piece for the discerning wardrobe.",
		Details: []string{
			"100% Grade-A Mongolian Cashmere",
			"2-ply yarn for durability",
			"Ribbed neck, cuffs and hem",
			"Regular fit",
			"Temperature regulating",
		},
		Care: []string{
			"Hand wash cold or dry clean",
			"Dry flat in shade",
			"Do not hang",
			"Use cashmere comb for pilling",
		},
		Material: "100% Cashmere",
		Images: []string{
			"https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=800&q=80",
			"https://images.unsplash.com/photo-1624458316315-998f828a1ea5?w=800&q=80",
			"https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=800&q=80",
		},
		Sizes: []string{"S", "M", "L", "XL"},
		Colors: []Color{
			{Name: "Charcoal", Hex: "#374151"},
			{Name: "Camel", Hex: "#D4A373"},
			{Name: "Cream", Hex: "#F3E9D2"},
		},
		New:     true,
		InStock: true,
	},
	{
		ID:           "006",
		Name:         "Classic Chelsea Boots",
		Price:        5200,
		Category:     "Accessories",
		CategorySlug: "accessories",
		Description:  "A reimagined classic. These Chelsea boots are constructed with a sleek profile and a durable Goodyear welt. The elastic side panels and pull tabs make them easy to slip on, while the leather sole ensures elegance.",
		Details: []string{
			"Full-grain calf leather upper",
			"Goodyear welt construction",
			"Leather lining and sole",
			"Reinforced elastic panels",
			"Hand-finished",
		},
		Care: []string{
			"Clean with soft brush",
			"Polish regularly",
			"Use shoe trees",
			"Resoling recommended when worn",
		},
		Material: "100% Calf Leather",
		Images: []string{
			"https://images.unsplash.com/photo-1638247025967-b4e38f787b76?w=800&q=80",
			"https://images.unsplash.com/photo-1560343090-f0409e92791a?w=800&q=80",
			"https://images.unsplash.com/photo-1542280756-74b2f55e73ab?w=800&q=80",
		},
		Sizes: []string{"40", "41", "42", "43", "44", "45"},
		Colors: []Color{
			{Name: "Black", Hex: "#000000"},
			{Name: "Dark Brown", Hex: "#3E2723"},
			{Name: "Suede Tan", Hex: "#BCAAA4"},
		},
		InStock: true,
	},
	{
		ID:           "007",
		Name:         "Printed Silk Scarf",
		Price:        1800,
		Category:     "Accessories",
		CategorySlug: "accessories",
		Description:  "Add a touch of flair to any outfit. This 100% silk scarf features an exclusive geometric print designed in our Cairo studio. Lightweight and breathable, it can be styled in multiple ways.",
		Details: []string{
			"100% Mulberry silk",
			"Hand-rolled edges",
			"Exclusive geometric print",
			"90cm x 90cm square",
			"Printed in Italy",
		},
		Care: []string{
			"Dry clean only",
			"Iron on low heat",
			"Do not bleach",
			"Store flat",
		},
		Material: "100% Mulberry Silk",
		Images: []string{
			"https://images.unsplash.com/photo-1601924994987-69e26d50dc26?w=800&q=80",
			"https://images.unsplash.com/photo-1584030373081-f37b7bb4fa8e?w=800&q=80",
			"https://images.unsplash.com/photo-1606294503028-5a417539dfd4?w=800&q=80",
		},
		Sizes: []string{"One Size"},
		Colors: []Color{
			{Name: "Midnight Blue", Hex: "#191970"},
			{Name: "Burgundy", Hex: "#800020"},
		},
		New:     true,
		InStock: true,
	},
	{
		ID:           "008",
		Name:         "Aviator Sunglasses",
		Price:        2400,
		Category:     "Accessories",
		CategorySlug: "accessories",
		Description:  "Iconic style meets modern protection. These aviator frames are made from lightweight aerospace-grade alloy and feature polarized lenses to reduce glare. A timeless accessory for the sunny days ahead.",
		Details: []string{
			"Aerospace-grade metal alloy frame",
			"Polarized UV400 lenses",
			"Adjustable nose pads",
			"Includes leather case",
			"Lens width: 58mm",
		},
		Care: []string{
			"Clean with microfiber cloth",
			"Keep in case when not in use",
			"Avoid harsh chemicals",
			"Do not leave in hot car",
		},
		Material: "Metal Alloy & Polycarbonate",
		Images: []string{
			"https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=800&q=80",
			"https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=800&q=80",
			"https://images.unsplash.com/photo-1473496169904-658ba7c44d8a?w=800&q=80",
		},
		Sizes: []string{"One Size"},
		Colors: []Color{
			{Name: "Gold/Green", Hex: "#FFD700"},
			{Name: "Silver/Blue", Hex: "#C0C0C0"},
			{Name: "Black/Grey", Hex: "#000000"},
		},
		Featured:  true,
		Sale:      true,
		SalePrice: 1950,
		InStock:   true,
	},
	{
		ID:           "009",
		Name:         "Leather Weekend Bag",
		Price:        8500,
		Category:     "Accessories",
		CategorySlug: "accessories",
		Description:  "The perfect companion for your short getaways. This spacious weekender is crafted from durable pebbled leather that resists scratches. Features a separate shoe compartment and multiple internal pockets.",
		Details: []string{
			"Pebbled full-grain leather",
			"Water-resistant lining",
			"Detachable shoulder strap",
			"Dedicated shoe compartment",
			"Brass hardware",
			"Dimensions: 50x30x25cm",
		},
		Care: []string{
			"Wipe clean with damp cloth",
			"Use leather conditioner",
			"Stuff with paper to keep shape",
			"Store in dust bag",
		},
		Material: "100% Full-Grain Leather",
		Images: []string{
			"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&q=80",
			"https://images.unsplash.com/photo-1547949003-9792a18a2601?w=800&q=80",
			"https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=800&q=80",
		},
		Sizes: []string{"One Size"},
		Colors: []Color{
			{Name: "Cognac", Hex: "#9E5B40"},
			{Name: "Black", Hex: "#000000"},
		},
		New:     true,
		InStock: true,
	},
	{
		ID:           "010",
		Name:         "Minimalist Mechanical Watch",
		Price:        6500,
		Category:     "Accessories",
		CategorySlug: "accessories",
		Description:  "Strip back the unnecessary. This automatic watch features a clean Bauhaus-inspired dial, sapphire crystal glass, and a reliable Japanese movement. A statement of understated elegance.",
		Details: []string{
			"Automatic mechanical movement",
			"Sapphire crystal glass",
			"316L Stainless steel case",
			"Genuine leather strap",
			"5ATM water resistance",
			"Case diameter: 40mm",
		},
		Care: []string{
			"Avoid strong magnetic fields",
			"Service every 3-5 years",
			"Do not shower with watch",
			"Wipe clean with soft cloth",
		},
		Material: "Stainless Steel & Leather",
		Images: []string{
			"https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=800&q=80",
			"https://images.unsplash.com/photo-1522312346375-d1a52e2b99b3?w=800&q=80",
			"https://images.unsplash.com/photo-1434056886845-dac89dd99199?w=800&q=80",
		},
		Sizes: []string{"One Size"},
		Colors: []Color{
			{Name: "Silver/White", Hex: "#F5F5F5"},
			{Name: "Rose Gold/Black", Hex: "#B76E79"},
		},
		Featured: true,
		InStock:  true,
	},
}
