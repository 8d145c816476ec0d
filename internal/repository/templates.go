package repository

// seedDomains lists every catalog namespace in generation order. Product,
// category and brand ids are derived from a domain's position in this
// slice, so the order is load-bearing for id stability within a process.
var seedDomains = []string{
	"movies", "books", "electronics", "restaurants", "fashion",
	"games", "music", "food", "toys", "hotels",
	"cars", "medicines", "courses", "events", "apps",
	"flights", "pets", "realestate", "sports", "tools",
}

type domainTemplate struct {
	names      []string
	attributes string // serialized JSON, the open per-domain attribute payload
}

var productTemplates = map[string]domainTemplate{
	"movies": {
		names: []string{
			"Avengers Endgame", "The Dark Knight", "Spider-Man No Way Home", "Batman Begins", "Iron Man",
			"Thor Ragnarok", "Captain America", "Wonder Woman", "Joker", "Inception",
			"Interstellar", "Deadpool", "Black Panther", "Guardians of the Galaxy", "Doctor Strange",
			"Ant-Man", "Captain Marvel", "Aquaman", "Superman", "Justice League",
		},
		attributes: `{"director":"Marvel Studios","year":2023,"genre":"Action","duration":120}`,
	},
	"books": {
		names: []string{
			"JavaScript Complete Guide", "Python Programming", "React Development", "Node.js Handbook", "Web Development",
			"Data Science", "Machine Learning", "Clean Code", "Design Patterns", "Algorithms",
			"System Design", "Database Design", "API Development", "Mobile Development", "Cloud Computing",
			"DevOps Guide", "Security Fundamentals", "UI/UX Design", "Project Management", "Software Architecture",
		},
		attributes: `{"author":"Tech Author","pages":300,"language":"English","isbn":"978-1234567890"}`,
	},
	"electronics": {
		names: []string{
			"iPhone 15 Pro", "MacBook Pro M3", "iPad Air", "Samsung Galaxy S24", "Dell XPS 13",
			"HP Spectre", "Surface Pro", "Google Pixel", "OnePlus 12", "Xiaomi Mi 14",
			"Sony Xperia", "Huawei P60", "Asus ROG Phone", "Nintendo Switch", "PlayStation 5",
			"Xbox Series X", "Apple Watch", "AirPods Pro", "Samsung Buds", "Sony WH-1000XM5",
		},
		attributes: `{"brand":"Apple","model":"Latest","warranty":"2 years","color":"Space Gray"}`,
	},
	"restaurants": {
		names: []string{
			"Pizza Napoletana", "Burger Supreme", "Sushi Zen", "Taco Fiesta", "Pasta Milano",
			"Steakhouse Prime", "Cafe Mocha", "Noodle House", "BBQ Paradise", "Thai Garden",
			"Indian Spice", "Greek Taverna", "French Bistro", "Chinese Palace", "Korean BBQ",
			"Mexican Cantina", "Brazilian Grill", "Vietnamese Pho", "Lebanese Kitchen", "Turkish Delight",
		},
		attributes: `{"cuisine":"Italian","location":"Downtown","phone":"+995-555-1234","delivery":true}`,
	},
	"fashion": {
		names: []string{
			"Designer Suit", "Casual Jeans", "Leather Jacket", "Running Sneakers", "Baseball Cap",
			"Silk Scarf", "Wool Sweater", "Cotton T-Shirt", "Evening Dress", "Winter Coat",
			"Summer Shorts", "Denim Jacket", "Polo Shirt", "Maxi Dress", "Blazer",
			"Cardigan", "Hoodie", "Chinos", "Skirt", "Blouse",
		},
		attributes: `{"size":"M","color":"Navy Blue","material":"Cotton","brand":"Fashion Brand"}`,
	},
	"games": {
		names: []string{
			"FIFA 24", "Call of Duty Modern Warfare", "Minecraft", "Fortnite", "Among Us",
			"Valorant", "Rocket League", "Apex Legends", "League of Legends", "Dota 2",
			"Counter-Strike 2", "Overwatch 2", "Cyberpunk 2077", "Grand Theft Auto VI", "The Witcher 4",
			"Assassins Creed", "Far Cry 7", "Battlefield 2042", "Halo Infinite", "God of War",
		},
		attributes: `{"platform":"PC","genre":"Action","rating":"T","multiplayer":true}`,
	},
	"music": {
		names: []string{
			"Greatest Hits 2024", "Rock Classics", "Jazz Anthology", "Pop Favorites", "Country Roads",
			"Hip Hop Beats", "Electronic Vibes", "Classical Masters", "R&B Collection", "Indie Sounds",
			"Folk Tales", "Reggae Rhythms", "Blues Legacy", "Metal Mayhem", "Dance Floor",
			"Acoustic Sessions", "World Music", "Soundtrack Collection", "Live Concert", "Chill Vibes",
		},
		attributes: `{"artist":"Various Artists","genre":"Pop","year":2024,"duration":"3:45"}`,
	},
	"food": {
		names: []string{
			"Organic Bananas", "Fresh Sourdough Bread", "Grass-Fed Milk", "Free-Range Eggs", "Extra Virgin Olive Oil",
			"Wild Salmon", "Quinoa Seeds", "Almond Butter", "Greek Yogurt", "Avocados",
			"Blueberries", "Spinach", "Sweet Potatoes", "Brown Rice", "Chicken Breast",
			"Tofu", "Lentils", "Oats", "Honey", "Dark Chocolate",
		},
		attributes: `{"category":"Organic","organic":true,"weight":"1 kg","expiry":"2025-12-31"}`,
	},
	"toys": {
		names: []string{
			"LEGO Architecture", "Barbie Dreamhouse", "Hot Wheels Track", "Teddy Bear Plush", "Monopoly Board Game",
			"Action Figure Set", "Puzzle 1000pc", "RC Drone", "Nintendo Switch", "PlayStation Controller",
			"Building Blocks", "Art Set", "Science Kit", "Musical Keyboard", "Soccer Ball",
			"Basketball", "Skateboard", "Bike", "Scooter", "Dollhouse",
		},
		attributes: `{"age_group":"6-12 years","educational":true,"safety_certified":true}`,
	},
	"hotels": {
		names: []string{
			"Grand Plaza Hotel", "Sunset Beach Resort", "City Center Inn", "Mountain View Lodge", "Downtown Marriott",
			"Boutique Hotel", "Luxury Suites", "Business Hotel", "Spa Resort", "Airport Hotel",
			"Seaside Villa", "Urban Loft", "Country Inn", "Historic Hotel", "Modern Tower",
			"Garden Hotel", "Riverside Lodge", "Ski Resort", "Desert Oasis", "Lakeside Retreat",
		},
		attributes: `{"star_rating":4,"amenities":["WiFi","Pool","Gym","Restaurant"],"location":"City Center"}`,
	},
	"cars": {
		names: []string{
			"Tesla Model S", "BMW 3 Series", "Mercedes C-Class", "Audi A4", "Toyota Camry",
			"Honda Civic", "Ford Mustang", "Chevrolet Corvette", "Porsche 911", "Lamborghini Huracan",
			"Ferrari F8", "McLaren 720S", "Bugatti Chiron", "Rolls Royce Ghost", "Bentley Continental",
			"Jaguar F-Type", "Maserati Ghibli", "Lexus LS", "Infiniti Q50", "Cadillac CT5",
		},
		attributes: `{"brand":"Tesla","model":"2024","fuel_type":"Electric","transmission":"Automatic"}`,
	},
	"medicines": {
		names: []string{
			"Ibuprofen 400mg", "Paracetamol 500mg", "Aspirin 100mg", "Vitamin D3", "Vitamin C",
			"Multivitamin", "Omega 3", "Calcium Tablets", "Iron Supplements", "Zinc Capsules",
			"Magnesium", "Probiotic", "Melatonin", "Biotin", "Collagen",
			"Glucosamine", "Turmeric", "Ginseng", "Echinacea", "Garlic Extract",
		},
		attributes: `{"dosage":"400mg","form":"Tablet","prescription":false,"category":"Pain Relief"}`,
	},
	"courses": {
		names: []string{
			"Web Development Bootcamp", "Data Science Masterclass", "Machine Learning A-Z", "React Complete Guide", "Python Programming",
			"JavaScript Fundamentals", "UI/UX Design", "Digital Marketing", "Project Management", "Business Analytics",
			"Cloud Computing", "Cybersecurity", "Mobile Development", "Database Design", "DevOps Engineering",
			"Artificial Intelligence", "Blockchain Technology", "Game Development", "Photography", "Graphic Design",
		},
		attributes: `{"duration":"12 weeks","level":"Beginner","certificate":true,"instructor":"Expert Teacher"}`,
	},
	"events": {
		names: []string{
			"Tech Conference 2024", "Music Festival", "Food & Wine Expo", "Art Gallery Opening", "Sports Championship",
			"Business Summit", "Startup Pitch", "Networking Event", "Workshop Series", "Cultural Festival",
			"Fashion Show", "Book Fair", "Career Fair", "Health & Wellness Expo", "Travel Show",
			"Auto Show", "Comedy Night", "Theatre Performance", "Dance Competition", "Film Festival",
		},
		attributes: `{"date":"2024-12-15","location":"Convention Center","duration":"2 days","capacity":500}`,
	},
	"apps": {
		names: []string{
			"Instagram", "TikTok", "WhatsApp", "Telegram", "Discord",
			"Slack", "Zoom", "Netflix", "Spotify", "YouTube",
			"Twitter", "LinkedIn", "Facebook", "Snapchat", "Pinterest",
			"Reddit", "Twitch", "Uber", "Airbnb", "PayPal",
		},
		attributes: `{"platform":"iOS/Android","category":"Social","rating":4.5,"downloads":"1M+"}`,
	},
	"flights": {
		names: []string{
			"Tbilisi-London", "New York-Paris", "Tokyo-Sydney", "Dubai-Mumbai", "Berlin-Rome",
			"Madrid-Moscow", "Istanbul-Cairo", "Bangkok-Singapore", "Los Angeles-Miami", "Chicago-Toronto",
			"Amsterdam-Vienna", "Stockholm-Helsinki", "Oslo-Copenhagen", "Prague-Budapest", "Warsaw-Krakow",
			"Lisbon-Barcelona", "Athens-Thessaloniki", "Zurich-Geneva", "Milan-Naples", "Brussels-Luxembourg",
		},
		attributes: `{"airline":"Georgian Airways","duration":"3h 45m","class":"Economy","stops":0}`,
	},
	"pets": {
		names: []string{
			"Golden Retriever", "German Shepherd", "Labrador", "Bulldog", "Beagle",
			"Poodle", "Rottweiler", "Siberian Husky", "Chihuahua", "Persian Cat",
			"Maine Coon", "Siamese Cat", "British Shorthair", "Ragdoll", "Bengal Cat",
			"Russian Blue", "Parrot", "Canary", "Goldfish", "Rabbit",
		},
		attributes: `{"species":"Dog","age":"2 years","gender":"Male","vaccinated":true}`,
	},
	"realestate": {
		names: []string{
			"Downtown Apartment", "Suburban House", "Luxury Villa", "Studio Loft", "Penthouse Suite",
			"Country Cottage", "Townhouse", "Condo Unit", "Beachfront Property", "Mountain Cabin",
			"City Duplex", "Garden Apartment", "Historic Home", "Modern Flat", "Farmhouse",
			"Lakeside Retreat", "Urban Loft", "Family Home", "Investment Property", "Vacation Rental",
		},
		attributes: `{"bedrooms":3,"bathrooms":2,"area":"120 sqm","price_per_sqm":"$1200"}`,
	},
	"sports": {
		names: []string{
			"Nike Air Max", "Adidas Ultraboost", "Wilson Tennis Racket", "Spalding Basketball", "Nike Soccer Ball",
			"Yoga Mat", "Dumbbells Set", "Resistance Bands", "Treadmill", "Exercise Bike",
			"Protein Powder", "Gym Gloves", "Water Bottle", "Fitness Tracker", "Running Shoes",
			"Swimming Goggles", "Baseball Bat", "Golf Clubs", "Skateboard", "Bicycle Helmet",
		},
		attributes: `{"brand":"Nike","category":"Footwear","sport":"Running","size":"42 EU"}`,
	},
	"tools": {
		names: []string{
			"Drill Set", "Hammer", "Screwdriver Kit", "Wrench Set", "Saw",
			"Pliers", "Measuring Tape", "Level", "Toolbox", "Power Drill",
			"Circular Saw", "Jigsaw", "Angle Grinder", "Soldering Iron", "Multimeter",
			"Socket Set", "Chisel Set", "Sandpaper", "Safety Glasses", "Work Gloves",
		},
		attributes: `{"brand":"Bosch","category":"Power Tools","warranty":"2 years","voltage":"18V"}`,
	},
}

// Four categories per domain; category ids run globally in this order.
var categoryTemplates = map[string][]string{
	"movies":      {"Action", "Comedy", "Drama", "Sci-Fi"},
	"books":       {"Fiction", "Non-Fiction", "Technology", "Biography"},
	"electronics": {"Laptops", "Phones", "Tablets", "Accessories"},
	"restaurants": {"Italian", "Asian", "American", "Mediterranean"},
	"fashion":     {"Casual", "Formal", "Sports", "Vintage"},
	"games":       {"Action", "Strategy", "RPG", "Sports"},
	"music":       {"Rock", "Pop", "Jazz", "Classical"},
	"food":        {"Organic", "Dairy", "Meat", "Vegetables"},
	"toys":        {"Educational", "Action", "Creative", "Electronic"},
	"hotels":      {"Luxury", "Budget", "Business", "Resort"},
	"cars":        {"Sedan", "SUV", "Sports", "Electric"},
	"medicines":   {"Pain Relief", "Vitamins", "Supplements", "Prescription"},
	"courses":     {"Programming", "Design", "Business", "Language"},
	"events":      {"Conference", "Festival", "Workshop", "Exhibition"},
	"apps":        {"Social", "Productivity", "Entertainment", "Education"},
	"flights":     {"Domestic", "International", "Business", "Economy"},
	"pets":        {"Dogs", "Cats", "Birds", "Fish"},
	"realestate":  {"Apartment", "House", "Commercial", "Land"},
	"sports":      {"Footwear", "Equipment", "Apparel", "Accessories"},
	"tools":       {"Power Tools", "Hand Tools", "Measuring", "Safety"},
}

// Three brands per domain; brand ids run globally in this order.
var brandTemplates = map[string][]string{
	"movies":      {"Marvel Studios", "Warner Bros", "Disney"},
	"books":       {"Penguin", "Harper Collins", "Random House"},
	"electronics": {"Apple", "Samsung", "Google"},
	"restaurants": {"Local Eats", "Fine Dining", "Quick Bites"},
	"fashion":     {"StyleCo", "FashionPlus", "TrendyWear"},
	"games":       {"GameStudio", "PlayWorks", "FunGames"},
	"music":       {"RecordLabel", "SoundWave", "MusicBox"},
	"food":        {"FreshFarms", "OrganicChoice", "NaturalGoods"},
	"toys":        {"ToyMaker", "PlayTime", "FunFactory"},
	"hotels":      {"HotelChain", "Hospitality Plus", "Luxury Stays"},
	"cars":        {"AutoWorks", "DriveTech", "CarPlus"},
	"medicines":   {"HealthCare", "MediPlus", "WellnessLab"},
	"courses":     {"EduTech", "LearnPro", "SkillUp"},
	"events":      {"EventPro", "Organize It", "Gather"},
	"apps":        {"AppStudio", "TechSoft", "DigitalWorks"},
	"flights":     {"SkyLine", "AirTech", "FlyHigh"},
	"pets":        {"PetCare", "AnimalLove", "FurryFriends"},
	"realestate":  {"PropertyPlus", "RealEstate Pro", "HomeFinder"},
	"sports":      {"SportsTech", "ActiveWear", "FitGear"},
	"tools":       {"ToolMaster", "WorkPro", "BuildTech"},
}
