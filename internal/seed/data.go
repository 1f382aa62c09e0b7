// Package seed holds the static demo catalog inserted by the admin seed
// endpoint. It is data, not logic: categories are referenced from products
// by position, and the first SellerProductCount products are owned by the
// demo seller account, the rest by the configured admin.
package seed

// CategoryData describes one demo category.
type CategoryData struct {
	Name        string
	Slug        string
	Description string
	Image       string
}

// ProductData describes one demo product. Category is an index into
// Categories.
type ProductData struct {
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64
	Category      int
	Image         string
	Stock         int
	Rating        float64
	NumReviews    int
	Brand         string
	IsFeatured    bool
}

// SellerProductCount is how many leading products are assigned to the demo
// seller account; the remainder belong to the admin.
const SellerProductCount = 15

// Category indexes, in insertion order.
const (
	catMobiles = iota
	catElectronics
	catFashion
	catHome
	catAppliances
	catBeauty
	catGrocery
	catToys
)

// Categories is the fixed demo category set.
var Categories = []CategoryData{
	{Name: "Mobiles", Slug: "mobiles", Description: "Smartphones & Accessories", Image: "https://rukminim2.flixcart.com/flap/80/80/image/22fddf3c7da4c4f4.png?q=100"},
	{Name: "Electronics", Slug: "electronics", Description: "TV, Laptops, Cameras", Image: "https://rukminim2.flixcart.com/flap/80/80/image/69c6589653afdb9a.png?q=100"},
	{Name: "Fashion", Slug: "fashion", Description: "Clothing, Footwear, Watches", Image: "https://rukminim2.flixcart.com/flap/80/80/image/c12afc017e6f24cb.png?q=100"},
	{Name: "Home & Furniture", Slug: "home-furniture", Description: "Furniture, Decor, Kitchen", Image: "https://rukminim2.flixcart.com/flap/80/80/image/ab7e2b022a4587dd.jpg?q=100"},
	{Name: "Appliances", Slug: "appliances", Description: "AC, Refrigerator, Washing Machine", Image: "https://rukminim2.flixcart.com/flap/80/80/image/0ff199d1bd27eb98.png?q=100"},
	{Name: "Beauty", Slug: "beauty", Description: "Makeup, Skincare, Perfumes", Image: "https://rukminim2.flixcart.com/flap/80/80/image/dff3f7adcf3a90c6.png?q=100"},
	{Name: "Grocery", Slug: "grocery", Description: "Staples, Snacks, Beverages", Image: "https://rukminim2.flixcart.com/flap/80/80/image/29327f40e9c4d26b.png?q=100"},
	{Name: "Toys & Baby", Slug: "toys-baby", Description: "Toys, Baby Care, Kids", Image: "https://rukminim2.flixcart.com/flap/80/80/image/fd4d9d0b1c1e7b52.png?q=100"},
}

// Products is the fixed demo product set.
var Products = []ProductData{
	// Mobiles
	{Name: "iPhone 15 Pro Max 256GB", Description: "Apple iPhone 15 Pro Max with A17 Pro chip, 48MP camera, titanium design, USB-C, Action button.", Price: 159900, OriginalPrice: 179900, Category: catMobiles, Image: "https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=400", Stock: 25, Rating: 4.7, NumReviews: 2341, Brand: "Apple", IsFeatured: true},
	{Name: "Samsung Galaxy S24 Ultra 512GB", Description: "Samsung flagship with S Pen, 200MP camera, Snapdragon 8 Gen 3, AI features, titanium frame.", Price: 134999, OriginalPrice: 149999, Category: catMobiles, Image: "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=400", Stock: 30, Rating: 4.6, NumReviews: 1892, Brand: "Samsung", IsFeatured: true},
	{Name: "OnePlus 12 256GB", Description: "OnePlus 12 with Snapdragon 8 Gen 3, Hasselblad camera, 100W charging, 5400mAh battery.", Price: 64999, OriginalPrice: 69999, Category: catMobiles, Image: "https://images.unsplash.com/photo-1585060544812-6b45742d762f?w=400", Stock: 50, Rating: 4.5, NumReviews: 3421, Brand: "OnePlus", IsFeatured: true},
	{Name: "Redmi Note 13 Pro+ 5G", Description: "Redmi Note 13 Pro+ with 200MP camera, 120W charging, AMOLED display, MediaTek Dimensity.", Price: 29999, OriginalPrice: 34999, Category: catMobiles, Image: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400", Stock: 100, Rating: 4.3, NumReviews: 8923, Brand: "Xiaomi"},
	{Name: "Realme GT 5 Pro", Description: "Realme GT 5 Pro with Snapdragon 8 Gen 3, 50MP Sony camera, 100W charging.", Price: 39999, OriginalPrice: 44999, Category: catMobiles, Image: "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=400", Stock: 45, Rating: 4.4, NumReviews: 2134, Brand: "Realme"},
	{Name: "Vivo V30 Pro 5G", Description: "Vivo V30 Pro with ZEISS camera, Aura Light, 5000mAh battery, curved AMOLED display.", Price: 46999, OriginalPrice: 51999, Category: catMobiles, Image: "https://images.unsplash.com/photo-1574944985070-8f3ebc6b79d2?w=400", Stock: 35, Rating: 4.3, NumReviews: 1567, Brand: "Vivo"},
	{Name: "POCO F6 5G 256GB", Description: "POCO F6 with Snapdragon 8s Gen 3, 90W charging, 6.67\" AMOLED, Liquidcool 4.0.", Price: 29999, OriginalPrice: 32999, Category: catMobiles, Image: "https://images.unsplash.com/photo-1592899677977-9c10ca588bbd?w=400", Stock: 80, Rating: 4.4, NumReviews: 4521, Brand: "POCO"},
	{Name: "Nothing Phone (2a)", Description: "Nothing Phone 2a with Glyph Interface, MediaTek Dimensity 7200, 50MP dual camera.", Price: 23999, OriginalPrice: 27999, Category: catMobiles, Image: "https://images.unsplash.com/photo-1565849904461-04a58ad377e0?w=400", Stock: 60, Rating: 4.2, NumReviews: 2890, Brand: "Nothing"},
	{Name: "Google Pixel 8 Pro", Description: "Google Pixel 8 Pro with Tensor G3, 50MP camera, 7 years updates, AI features.", Price: 106999, OriginalPrice: 119999, Category: catMobiles, Image: "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=400", Stock: 20, Rating: 4.6, NumReviews: 1234, Brand: "Google"},
	{Name: "Motorola Edge 50 Pro", Description: "Motorola Edge 50 Pro with 125W charging, 50MP OIS camera, pOLED display.", Price: 31999, OriginalPrice: 36999, Category: catMobiles, Image: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400", Stock: 40, Rating: 4.3, NumReviews: 987, Brand: "Motorola"},

	// Electronics
	{Name: "Sony Bravia 55\" 4K Smart TV", Description: "Sony 55 inch 4K Ultra HD Smart LED Google TV with Dolby Vision, TRILUMINOS PRO.", Price: 69990, OriginalPrice: 99990, Category: catElectronics, Image: "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400", Stock: 15, Rating: 4.5, NumReviews: 2341, Brand: "Sony", IsFeatured: true},
	{Name: "MacBook Air M3 15\"", Description: "Apple MacBook Air 15\" with M3 chip, 8GB RAM, 256GB SSD, 18hr battery, Liquid Retina.", Price: 134900, OriginalPrice: 144900, Category: catElectronics, Image: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=400", Stock: 20, Rating: 4.8, NumReviews: 1567, Brand: "Apple", IsFeatured: true},
	{Name: "HP Pavilion Gaming Laptop", Description: "HP Pavilion Gaming with RTX 4050, Intel i5-13th Gen, 16GB RAM, 512GB SSD, 144Hz.", Price: 74990, OriginalPrice: 89990, Category: catElectronics, Image: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400", Stock: 25, Rating: 4.4, NumReviews: 3421, Brand: "HP"},
	{Name: "Canon EOS R50 Mirrorless Camera", Description: "Canon EOS R50 with 24.2MP, 4K video, Dual Pixel CMOS AF, vlogging camera.", Price: 75990, OriginalPrice: 85990, Category: catElectronics, Image: "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=400", Stock: 12, Rating: 4.6, NumReviews: 892, Brand: "Canon"},
	{Name: "Sony WH-1000XM5 Headphones", Description: "Sony premium wireless noise cancelling headphones with 30hr battery, Hi-Res Audio.", Price: 29990, OriginalPrice: 34990, Category: catElectronics, Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400", Stock: 40, Rating: 4.7, NumReviews: 5678, Brand: "Sony", IsFeatured: true},
	{Name: "Apple AirPods Pro 2nd Gen", Description: "AirPods Pro with H2 chip, Active Noise Cancellation, Adaptive Audio, USB-C.", Price: 24900, OriginalPrice: 26900, Category: catElectronics, Image: "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=400", Stock: 60, Rating: 4.6, NumReviews: 8934, Brand: "Apple"},
	{Name: "JBL Flip 6 Bluetooth Speaker", Description: "JBL Flip 6 portable speaker with IP67 waterproof, 12hr playtime, PartyBoost.", Price: 9999, OriginalPrice: 14999, Category: catElectronics, Image: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400", Stock: 80, Rating: 4.5, NumReviews: 12456, Brand: "JBL"},
	{Name: "Apple Watch Series 9 GPS", Description: "Apple Watch Series 9 with S9 chip, Double Tap gesture, bright display, health features.", Price: 41900, OriginalPrice: 44900, Category: catElectronics, Image: "https://images.unsplash.com/photo-1546868871-7041f2a55e12?w=400", Stock: 35, Rating: 4.7, NumReviews: 3456, Brand: "Apple"},
	{Name: "Samsung Galaxy Tab S9 FE", Description: "Samsung Tab S9 FE with S Pen, 10.9\" display, IP68, One UI 5.1, 8GB RAM.", Price: 44999, OriginalPrice: 54999, Category: catElectronics, Image: "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400", Stock: 25, Rating: 4.4, NumReviews: 1234, Brand: "Samsung"},
	{Name: "Logitech MX Master 3S Mouse", Description: "Logitech MX Master 3S wireless mouse with 8K DPI, quiet clicks, USB-C, multi-device.", Price: 9995, OriginalPrice: 11995, Category: catElectronics, Image: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400", Stock: 50, Rating: 4.6, NumReviews: 2345, Brand: "Logitech"},

	// Fashion
	{Name: "Levi's Men Slim Fit Jeans", Description: "Levi's 511 Slim Fit Jeans in dark indigo wash, stretch denim, classic 5-pocket.", Price: 2499, OriginalPrice: 4299, Category: catFashion, Image: "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400", Stock: 150, Rating: 4.3, NumReviews: 8923, Brand: "Levi's", IsFeatured: true},
	{Name: "Nike Air Max 270 Sneakers", Description: "Nike Air Max 270 with Max Air unit, breathable mesh, iconic design, all-day comfort.", Price: 12995, OriginalPrice: 15995, Category: catFashion, Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400", Stock: 80, Rating: 4.6, NumReviews: 5678, Brand: "Nike", IsFeatured: true},
	{Name: "Allen Solly Formal Shirt", Description: "Allen Solly Men's Regular Fit formal shirt, cotton blend, spread collar, full sleeves.", Price: 1299, OriginalPrice: 2199, Category: catFashion, Image: "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400", Stock: 200, Rating: 4.2, NumReviews: 12345, Brand: "Allen Solly"},
	{Name: "Zara Women Floral Dress", Description: "Zara floral print midi dress, V-neck, puff sleeves, flowy fit, perfect for occasions.", Price: 3990, OriginalPrice: 5990, Category: catFashion, Image: "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=400", Stock: 100, Rating: 4.4, NumReviews: 3456, Brand: "Zara", IsFeatured: true},
	{Name: "Puma Running Shoes Men", Description: "Puma Velocity Nitro 2 running shoes with NITRO foam, breathable mesh, responsive.", Price: 8999, OriginalPrice: 11999, Category: catFashion, Image: "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=400", Stock: 90, Rating: 4.5, NumReviews: 4567, Brand: "Puma"},
	{Name: "H&M Women Kurti Set", Description: "H&M ethnic kurti set with palazzo pants, cotton fabric, embroidered, festive wear.", Price: 1999, OriginalPrice: 3499, Category: catFashion, Image: "https://images.unsplash.com/photo-1583391733956-6c78276477e2?w=400", Stock: 120, Rating: 4.3, NumReviews: 6789, Brand: "H&M"},
	{Name: "Fossil Men Chronograph Watch", Description: "Fossil Grant Chronograph watch, stainless steel, Roman numerals, leather strap.", Price: 9995, OriginalPrice: 14995, Category: catFashion, Image: "https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=400", Stock: 40, Rating: 4.5, NumReviews: 2345, Brand: "Fossil"},
	{Name: "Ray-Ban Aviator Sunglasses", Description: "Ray-Ban Aviator Classic sunglasses, gold frame, green G-15 lenses, iconic style.", Price: 8490, OriginalPrice: 9990, Category: catFashion, Image: "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=400", Stock: 60, Rating: 4.6, NumReviews: 5678, Brand: "Ray-Ban"},
	{Name: "Wildcraft Backpack 35L", Description: "Wildcraft laptop backpack, 35L capacity, rain cover, multiple compartments, padded.", Price: 1899, OriginalPrice: 2999, Category: catFashion, Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400", Stock: 100, Rating: 4.4, NumReviews: 8901, Brand: "Wildcraft"},
	{Name: "Adidas Track Pants Men", Description: "Adidas Essentials 3-Stripes track pants, cotton blend, elastic waist, side pockets.", Price: 2499, OriginalPrice: 3499, Category: catFashion, Image: "https://images.unsplash.com/photo-1556906781-9a412961c28c?w=400", Stock: 150, Rating: 4.3, NumReviews: 7890, Brand: "Adidas"},
	{Name: "Biba Women Saree", Description: "Biba silk blend saree with blouse piece, traditional design, festive collection.", Price: 2999, OriginalPrice: 5999, Category: catFashion, Image: "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=400", Stock: 80, Rating: 4.4, NumReviews: 3456, Brand: "Biba"},
	{Name: "US Polo T-Shirt Men", Description: "US Polo Assn. polo t-shirt, cotton pique, embroidered logo, classic fit.", Price: 999, OriginalPrice: 1799, Category: catFashion, Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400", Stock: 200, Rating: 4.2, NumReviews: 15678, Brand: "US Polo"},

	// Home & Furniture
	{Name: "Wakefit Orthopedic Mattress", Description: "Wakefit Orthopaedic Memory Foam Mattress, 6 inch, medium firm, 10 year warranty.", Price: 8999, OriginalPrice: 16999, Category: catHome, Image: "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?w=400", Stock: 30, Rating: 4.4, NumReviews: 23456, Brand: "Wakefit", IsFeatured: true},
	{Name: "Nilkamal Plastic Chair Set", Description: "Nilkamal CHR 2005 plastic chair set of 4, stackable, weather resistant, durable.", Price: 2999, OriginalPrice: 4499, Category: catHome, Image: "https://images.unsplash.com/photo-1503602642458-232111445657?w=400", Stock: 50, Rating: 4.2, NumReviews: 8901, Brand: "Nilkamal"},
	{Name: "Prestige Induction Cooktop", Description: "Prestige PIC 20 induction cooktop, 1200W, push button, Indian menu, auto voltage.", Price: 1999, OriginalPrice: 2999, Category: catHome, Image: "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400", Stock: 80, Rating: 4.3, NumReviews: 12345, Brand: "Prestige"},
	{Name: "Solimo Bedsheet Set", Description: "Amazon Solimo 100% cotton bedsheet with 2 pillow covers, 144 TC, queen size.", Price: 599, OriginalPrice: 1299, Category: catHome, Image: "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?w=400", Stock: 200, Rating: 4.1, NumReviews: 34567, Brand: "Solimo"},
	{Name: "Urban Ladder Coffee Table", Description: "Urban Ladder Malabar coffee table, solid wood, walnut finish, storage shelf.", Price: 12999, OriginalPrice: 18999, Category: catHome, Image: "https://images.unsplash.com/photo-1532372320572-cda25653a26d?w=400", Stock: 15, Rating: 4.5, NumReviews: 1234, Brand: "Urban Ladder"},
	{Name: "Pigeon Pressure Cooker 5L", Description: "Pigeon by Stovekraft pressure cooker, 5 litre, aluminium, induction base.", Price: 1299, OriginalPrice: 2199, Category: catHome, Image: "https://images.unsplash.com/photo-1585515320310-259814833e62?w=400", Stock: 100, Rating: 4.3, NumReviews: 45678, Brand: "Pigeon"},
	{Name: "Curtain Set 2 Piece", Description: "Cortina polyester curtain set, 7 feet, blackout, eyelet, solid color.", Price: 799, OriginalPrice: 1499, Category: catHome, Image: "https://images.unsplash.com/photo-1513694203232-719a280e022f?w=400", Stock: 150, Rating: 4.2, NumReviews: 8901, Brand: "Cortina"},
	{Name: "Godrej Interio Study Table", Description: "Godrej Interio study table with storage, engineered wood, modern design.", Price: 7999, OriginalPrice: 11999, Category: catHome, Image: "https://images.unsplash.com/photo-1518455027359-f3f8164ba6bd?w=400", Stock: 25, Rating: 4.4, NumReviews: 2345, Brand: "Godrej"},

	// Appliances
	{Name: "LG 1.5 Ton 5 Star AC", Description: "LG 1.5 Ton 5 Star AI Dual Inverter Split AC, 4-in-1 convertible, HD filter.", Price: 46990, OriginalPrice: 62990, Category: catAppliances, Image: "https://images.unsplash.com/photo-1585338107529-13afc5f02586?w=400", Stock: 20, Rating: 4.5, NumReviews: 5678, Brand: "LG", IsFeatured: true},
	{Name: "Samsung 253L Refrigerator", Description: "Samsung 253L 3 Star Frost Free Double Door Refrigerator, Digital Inverter.", Price: 26990, OriginalPrice: 34990, Category: catAppliances, Image: "https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5?w=400", Stock: 25, Rating: 4.4, NumReviews: 8901, Brand: "Samsung"},
	{Name: "IFB 6.5 Kg Washing Machine", Description: "IFB 6.5 Kg 5 Star Fully Automatic Front Load Washing Machine, Aqua Energie.", Price: 24990, OriginalPrice: 32990, Category: catAppliances, Image: "https://images.unsplash.com/photo-1626806787461-102c1bfaaea1?w=400", Stock: 18, Rating: 4.3, NumReviews: 4567, Brand: "IFB"},
	{Name: "Philips Air Fryer HD9252", Description: "Philips Air Fryer HD9252, 4.1L, Rapid Air Technology, touch screen, 1400W.", Price: 7999, OriginalPrice: 12995, Category: catAppliances, Image: "https://images.unsplash.com/photo-1585515320310-259814833e62?w=400", Stock: 40, Rating: 4.5, NumReviews: 12345, Brand: "Philips"},
	{Name: "Bajaj Water Heater 15L", Description: "Bajaj New Shakti Storage 15L Water Heater, glass lined tank, 4 star rated.", Price: 6999, OriginalPrice: 9999, Category: catAppliances, Image: "https://images.unsplash.com/photo-1585338107529-13afc5f02586?w=400", Stock: 35, Rating: 4.2, NumReviews: 6789, Brand: "Bajaj"},
	{Name: "Dyson V12 Vacuum Cleaner", Description: "Dyson V12 Detect Slim cordless vacuum, laser dust detection, 60 min runtime.", Price: 52900, OriginalPrice: 58900, Category: catAppliances, Image: "https://images.unsplash.com/photo-1558317374-067fb5f30001?w=400", Stock: 15, Rating: 4.7, NumReviews: 1234, Brand: "Dyson"},
	{Name: "Kent RO Water Purifier", Description: "Kent Grand Plus RO+UV+UF water purifier, 8L storage, TDS controller.", Price: 15999, OriginalPrice: 21999, Category: catAppliances, Image: "https://images.unsplash.com/photo-1585515320310-259814833e62?w=400", Stock: 30, Rating: 4.3, NumReviews: 8901, Brand: "Kent"},
	{Name: "Havells Mixer Grinder", Description: "Havells Silencio 500W mixer grinder, 3 jars, low noise, stainless steel blades.", Price: 4499, OriginalPrice: 6495, Category: catAppliances, Image: "https://images.unsplash.com/photo-1570222094114-d054a817e56b?w=400", Stock: 60, Rating: 4.4, NumReviews: 15678, Brand: "Havells"},

	// Beauty
	{Name: "Lakme Absolute Makeup Kit", Description: "Lakme Absolute makeup kit with foundation, lipstick, mascara, eyeshadow palette.", Price: 2499, OriginalPrice: 3999, Category: catBeauty, Image: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400", Stock: 80, Rating: 4.3, NumReviews: 5678, Brand: "Lakme", IsFeatured: true},
	{Name: "Forest Essentials Face Cream", Description: "Forest Essentials Soundarya Radiance Cream with 24K Gold, anti-aging, 50g.", Price: 4975, OriginalPrice: 5875, Category: catBeauty, Image: "https://images.unsplash.com/photo-1570194065650-d99fb4b38b17?w=400", Stock: 40, Rating: 4.6, NumReviews: 2345, Brand: "Forest Essentials"},
	{Name: "Maybelline Fit Me Foundation", Description: "Maybelline Fit Me Matte + Poreless foundation, oil-free, natural finish, SPF 22.", Price: 499, OriginalPrice: 699, Category: catBeauty, Image: "https://images.unsplash.com/photo-1631730486572-226d1f595b68?w=400", Stock: 150, Rating: 4.2, NumReviews: 23456, Brand: "Maybelline"},
	{Name: "Philips Hair Dryer", Description: "Philips HP8120 hair dryer, 1200W, ThermoProtect, 3 heat settings, foldable.", Price: 1095, OriginalPrice: 1595, Category: catBeauty, Image: "https://images.unsplash.com/photo-1522338140262-f46f5913618a?w=400", Stock: 100, Rating: 4.3, NumReviews: 34567, Brand: "Philips"},
	{Name: "Nivea Men Grooming Kit", Description: "Nivea Men grooming kit with face wash, moisturizer, deodorant, lip balm.", Price: 599, OriginalPrice: 999, Category: catBeauty, Image: "https://images.unsplash.com/photo-1608248543803-ba4f8c70ae0b?w=400", Stock: 120, Rating: 4.1, NumReviews: 8901, Brand: "Nivea"},
	{Name: "MAC Ruby Woo Lipstick", Description: "MAC Retro Matte Lipstick Ruby Woo, iconic red, long-lasting, matte finish.", Price: 1950, OriginalPrice: 2100, Category: catBeauty, Image: "https://images.unsplash.com/photo-1586495777744-4413f21062fa?w=400", Stock: 60, Rating: 4.7, NumReviews: 12345, Brand: "MAC"},

	// Grocery
	{Name: "Tata Sampann Dals Combo", Description: "Tata Sampann unpolished dals combo pack, toor dal, moong dal, chana dal, 1kg each.", Price: 399, OriginalPrice: 549, Category: catGrocery, Image: "https://images.unsplash.com/photo-1585032226651-759b368d7246?w=400", Stock: 200, Rating: 4.4, NumReviews: 8901, Brand: "Tata"},
	{Name: "Aashirvaad Atta 10kg", Description: "Aashirvaad Superior MP Atta, 100% whole wheat, soft rotis, 10kg pack.", Price: 449, OriginalPrice: 520, Category: catGrocery, Image: "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=400", Stock: 150, Rating: 4.5, NumReviews: 45678, Brand: "Aashirvaad"},
	{Name: "Cadbury Celebrations Pack", Description: "Cadbury Celebrations chocolate gift pack, assorted chocolates, 150g.", Price: 249, OriginalPrice: 299, Category: catGrocery, Image: "https://images.unsplash.com/photo-1549007994-cb92caebd54b?w=400", Stock: 300, Rating: 4.6, NumReviews: 23456, Brand: "Cadbury"},
	{Name: "Nescafe Gold Coffee 200g", Description: "Nescafe Gold Rich and Smooth instant coffee, 100% arabica, premium blend.", Price: 699, OriginalPrice: 850, Category: catGrocery, Image: "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=400", Stock: 100, Rating: 4.4, NumReviews: 12345, Brand: "Nescafe"},

	// Toys & Baby
	{Name: "LEGO City Police Set", Description: "LEGO City Police Station building set, 668 pieces, ages 6+, minifigures included.", Price: 4999, OriginalPrice: 6999, Category: catToys, Image: "https://images.unsplash.com/photo-1587654780291-39c9404d746b?w=400", Stock: 40, Rating: 4.7, NumReviews: 2345, Brand: "LEGO", IsFeatured: true},
	{Name: "Pampers Diapers Pack", Description: "Pampers All Round Protection pants, large size, 64 count, up to 12hr dryness.", Price: 1099, OriginalPrice: 1399, Category: catToys, Image: "https://images.unsplash.com/photo-1584839404042-8bc21d240e63?w=400", Stock: 150, Rating: 4.4, NumReviews: 34567, Brand: "Pampers"},
	{Name: "Hot Wheels Track Set", Description: "Hot Wheels Ultimate Garage track set, stores 100+ cars, motorized, ages 5+.", Price: 7999, OriginalPrice: 9999, Category: catToys, Image: "https://images.unsplash.com/photo-1594787318286-3d835c1d207f?w=400", Stock: 25, Rating: 4.5, NumReviews: 3456, Brand: "Hot Wheels"},
	{Name: "Johnson Baby Care Set", Description: "Johnson's Baby care gift set, shampoo, lotion, powder, oil, soap, gentle formula.", Price: 599, OriginalPrice: 799, Category: catToys, Image: "https://images.unsplash.com/photo-1515488042361-ee00e0ddd4e4?w=400", Stock: 100, Rating: 4.3, NumReviews: 8901, Brand: "Johnson's"},
}
