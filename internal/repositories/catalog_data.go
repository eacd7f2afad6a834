package repositories

import "tripbuddy/internal/models/response_models"

// Curated activity sets per destination. Declaration order matters: the
// generator's last-resort slot fallback indexes into this order, and swap
// alternatives preserve it.
var curatedActivities = map[string][]response_models.Activity{
	"Hawaii": {
		{
			ID:          "hawaii_beach_waikiki",
			Name:        "Beach Day at Waikiki",
			Description: "Relax and swim at Hawaii's most famous beach",
			Cost:        0,
			Duration:    3,
			Category:    "activity",
			Subcategory: "beach",
			Rating:      4.7,
			ImageURL:    "https://images.unsplash.com/photo-1507525428034-b723cf961d3e",
			Location:    "Waikiki Beach",
		},
		{
			ID:          "hawaii_hike_diamond",
			Name:        "Diamond Head Hike",
			Description: "Iconic crater hike with panoramic views",
			Cost:        5,
			Duration:    2.5,
			Category:    "activity",
			Subcategory: "hiking",
			Rating:      4.8,
			ImageURL:    "https://images.unsplash.com/photo-1551632811-561732d1e306",
			Location:    "Diamond Head State Monument",
		},
		{
			ID:          "hawaii_snorkel_hanauma",
			Name:        "Snorkeling at Hanauma Bay",
			Description: "Swim with tropical fish in pristine waters",
			Cost:        25,
			Duration:    4,
			Category:    "activity",
			Subcategory: "water_sports",
			Rating:      4.9,
			ImageURL:    "https://images.unsplash.com/photo-1544551763-46a013bb70d5",
			Location:    "Hanauma Bay Nature Preserve",
		},
		{
			ID:          "hawaii_kayak_adventure",
			Name:        "Kayaking Adventure",
			Description: "Paddle through calm waters and explore hidden coves",
			Cost:        75,
			Duration:    2.5,
			Category:    "activity",
			Subcategory: "water_sports",
			Rating:      4.8,
			ImageURL:    "https://images.unsplash.com/photo-1544551763-77ef2d0cfc6c",
			Location:    "Kailua Bay",
		},
		{
			ID:          "hawaii_cultural_center",
			Name:        "Polynesian Cultural Center",
			Description: "Immersive cultural experience with traditional villages",
			Cost:        95,
			Duration:    4,
			Category:    "activity",
			Subcategory: "cultural",
			Rating:      4.6,
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96",
			Location:    "Laie",
		},
		{
			ID:          "hawaii_submarine_tour",
			Name:        "Atlantis Submarine Adventure",
			Description: "Underwater adventure to see coral reefs and marine life",
			Cost:        109,
			Duration:    1.5,
			Category:    "activity",
			Subcategory: "tours",
			Rating:      4.9,
			ImageURL:    "https://images.unsplash.com/photo-1559827260-dc66d52bef19",
			Location:    "Waikiki",
		},
		{
			ID:          "hawaii_helicopter_tour",
			Name:        "Helicopter Island Tour",
			Description: "Aerial views of volcanoes, waterfalls, and coastlines",
			Cost:        200,
			Duration:    1,
			Category:    "activity",
			Subcategory: "tours",
			Rating:      4.9,
			Location:    "Honolulu",
		},
		{
			ID:          "hawaii_surfing_lesson",
			Name:        "Surfing Lesson",
			Description: "Learn to surf with professional instructors",
			Cost:        85,
			Duration:    2,
			Category:    "activity",
			Subcategory: "water_sports",
			Rating:      4.7,
			Location:    "Waikiki Beach",
		},
		{
			ID:          "hawaii_market_chinatown",
			Name:        "Chinatown Market Tour",
			Description: "Explore local vendors and authentic cuisine",
			Cost:        40,
			Duration:    2,
			Category:    "activity",
			Subcategory: "cultural",
			Rating:      4.5,
			ImageURL:    "https://images.unsplash.com/photo-1488459716781-31db52582fe9",
			Location:    "Chinatown",
		},
		{
			ID:          "hawaii_pearl_harbor",
			Name:        "Pearl Harbor Historic Tour",
			Description: "Visit the historic World War II memorial site",
			Cost:        35,
			Duration:    4,
			Category:    "activity",
			Subcategory: "historical",
			Rating:      4.8,
			Location:    "Pearl Harbor",
		},
		{
			ID:          "hawaii_botanical_garden",
			Name:        "Lyon Arboretum Hike",
			Description: "Explore tropical plants and peaceful trails",
			Cost:        5,
			Duration:    2.5,
			Category:    "activity",
			Subcategory: "nature",
			Rating:      4.6,
			Location:    "Manoa Valley",
		},
		{
			ID:          "hawaii_dinner_dukes",
			Name:        "Duke's Waikiki Dinner",
			Description: "Oceanfront dining with fresh seafood",
			Cost:        120,
			Duration:    2,
			Category:    "dining",
			Subcategory: "seafood",
			Rating:      4.6,
			ImageURL:    "https://images.unsplash.com/photo-1544025162-d76694265947",
			Location:    "Waikiki",
		},
		{
			ID:          "hawaii_luau_traditional",
			Name:        "Traditional Luau Experience",
			Description: "Authentic Hawaiian cultural dinner show",
			Cost:        220,
			Duration:    3,
			Category:    "dining",
			Subcategory: "cultural",
			Rating:      4.7,
			Location:    "Ko Olina",
		},
		{
			ID:          "hawaii_sunset_cruise",
			Name:        "Sunset Dinner Cruise",
			Description: "Romantic dinner cruise with ocean views",
			Cost:        150,
			Duration:    3,
			Category:    "activity",
			Subcategory: "cruise",
			Rating:      4.8,
			Location:    "Honolulu Harbor",
		},
		{
			ID:          "hawaii_nightlife_honolulu",
			Name:        "Honolulu Nightlife Tour",
			Description: "Experience the best bars and live music venues",
			Cost:        80,
			Duration:    4,
			Category:    "activity",
			Subcategory: "nightlife",
			Rating:      4.4,
			Location:    "Honolulu",
		},
		{
			ID:          "hawaii_fine_dining_orchids",
			Name:        "Orchids Restaurant",
			Description: "Upscale dining with Hawaiian fusion cuisine",
			Cost:        180,
			Duration:    2.5,
			Category:    "dining",
			Subcategory: "fine_dining",
			Rating:      4.9,
			Location:    "Waikiki",
		},
	},
	"Paris": {
		{
			ID:          "paris_eiffel_tower",
			Name:        "Eiffel Tower Visit",
			Description: "Iconic iron tower with city views",
			Cost:        25,
			Duration:    2,
			Category:    "activity",
			Subcategory: "landmark",
			Rating:      4.8,
			Location:    "Champ de Mars",
		},
		{
			ID:          "paris_louvre_museum",
			Name:        "Louvre Museum",
			Description: "World's largest art museum",
			Cost:        17,
			Duration:    4,
			Category:    "activity",
			Subcategory: "museum",
			Rating:      4.7,
			Location:    "1st Arrondissement",
		},
		{
			ID:          "paris_seine_cruise",
			Name:        "Seine River Cruise",
			Description: "Scenic boat tour through the heart of Paris",
			Cost:        45,
			Duration:    1.5,
			Category:    "activity",
			Subcategory: "cruise",
			Rating:      4.6,
			Location:    "Seine River",
		},
		{
			ID:          "paris_montmartre_walk",
			Name:        "Montmartre Walking Tour",
			Description: "Explore the artistic heart of Paris",
			Cost:        15,
			Duration:    3,
			Category:    "activity",
			Subcategory: "cultural",
			Rating:      4.7,
			Location:    "Montmartre",
		},
		{
			ID:          "paris_cafe_dinner",
			Name:        "Traditional French Bistro",
			Description: "Authentic French cuisine experience",
			Cost:        65,
			Duration:    2,
			Category:    "dining",
			Subcategory: "local",
			Rating:      4.6,
			Location:    "Latin Quarter",
		},
		{
			ID:          "paris_nightlife",
			Name:        "Champs-Élysées Nightlife",
			Description: "Experience Parisian nightlife scene",
			Cost:        80,
			Duration:    4,
			Category:    "activity",
			Subcategory: "nightlife",
			Rating:      4.4,
			Location:    "Champs-Élysées",
		},
	},
	"Iceland": {
		{
			ID:          "iceland_blue_lagoon",
			Name:        "Blue Lagoon Geothermal Spa",
			Description: "Relax in natural geothermal waters",
			Cost:        90,
			Duration:    3,
			Category:    "activity",
			Subcategory: "nature",
			Rating:      4.8,
			Location:    "Grindavík",
		},
		{
			ID:          "iceland_northern_lights",
			Name:        "Northern Lights Tour",
			Description: "Chase the aurora borealis",
			Cost:        120,
			Duration:    4,
			Category:    "activity",
			Subcategory: "tours",
			Rating:      4.9,
			Location:    "Reykjavik",
		},
		{
			ID:          "iceland_golden_circle",
			Name:        "Golden Circle Tour",
			Description: "Visit geysers, waterfalls, and national parks",
			Cost:        85,
			Duration:    8,
			Category:    "activity",
			Subcategory: "tours",
			Rating:      4.8,
			Location:    "Thingvellir",
		},
		{
			ID:          "iceland_glacier_hike",
			Name:        "Glacier Hiking Adventure",
			Description: "Explore pristine glacial landscapes",
			Cost:        150,
			Duration:    6,
			Category:    "activity",
			Subcategory: "hiking",
			Rating:      4.9,
			Location:    "Vatnajökull",
		},
		{
			ID:          "iceland_seafood_restaurant",
			Name:        "Reykjavik Seafood House",
			Description: "Fresh Atlantic seafood dining",
			Cost:        110,
			Duration:    2,
			Category:    "dining",
			Subcategory: "seafood",
			Rating:      4.7,
			Location:    "Reykjavik",
		},
		{
			ID:          "iceland_viking_museum",
			Name:        "National Museum of Iceland",
			Description: "Learn about Viking history and culture",
			Cost:        20,
			Duration:    3,
			Category:    "activity",
			Subcategory: "museum",
			Rating:      4.5,
			Location:    "Reykjavik",
		},
	},
	"Tokyo": {
		{
			ID:          "tokyo_temple_visit",
			Name:        "Senso-ji Temple",
			Description: "Ancient Buddhist temple in Asakusa",
			Cost:        0,
			Duration:    2,
			Category:    "activity",
			Subcategory: "cultural",
			Rating:      4.8,
			Location:    "Asakusa",
		},
		{
			ID:          "tokyo_sushi_dinner",
			Name:        "Traditional Sushi Experience",
			Description: "Authentic sushi at a traditional restaurant",
			Cost:        180,
			Duration:    2,
			Category:    "dining",
			Subcategory: "asian",
			Rating:      4.9,
			Location:    "Ginza",
		},
		{
			ID:          "tokyo_shibuya_crossing",
			Name:        "Shibuya Crossing Experience",
			Description: "Experience the world's busiest intersection",
			Cost:        0,
			Duration:    1,
			Category:    "activity",
			Subcategory: "landmark",
			Rating:      4.6,
			Location:    "Shibuya",
		},
		{
			ID:          "tokyo_mount_fuji_tour",
			Name:        "Mount Fuji Day Trip",
			Description: "Visit Japan's iconic mountain",
			Cost:        200,
			Duration:    10,
			Category:    "activity",
			Subcategory: "tours",
			Rating:      4.8,
			Location:    "Mount Fuji",
		},
		{
			ID:          "tokyo_karaoke_night",
			Name:        "Karaoke Night in Shinjuku",
			Description: "Sing the night away in private karaoke rooms",
			Cost:        50,
			Duration:    3,
			Category:    "activity",
			Subcategory: "nightlife",
			Rating:      4.7,
			Location:    "Shinjuku",
		},
		{
			ID:          "tokyo_ramen_tour",
			Name:        "Ramen Walking Tour",
			Description: "Taste authentic ramen at local shops",
			Cost:        75,
			Duration:    3,
			Category:    "dining",
			Subcategory: "asian",
			Rating:      4.8,
			Location:    "Shibuya",
		},
	},
	"New York": {
		{
			ID:          "nyc_central_park",
			Name:        "Central Park Stroll",
			Description: "Walk through Manhattan's green oasis",
			Cost:        0,
			Duration:    2,
			Category:    "activity",
			Subcategory: "nature",
			Rating:      4.7,
			Location:    "Central Park",
		},
		{
			ID:          "nyc_broadway_show",
			Name:        "Broadway Musical",
			Description: "Experience world-class theater",
			Cost:        150,
			Duration:    3,
			Category:    "activity",
			Subcategory: "cultural",
			Rating:      4.9,
			Location:    "Times Square",
		},
		{
			ID:          "nyc_pizza_tour",
			Name:        "NYC Pizza Walking Tour",
			Description: "Taste authentic New York pizza slices",
			Cost:        65,
			Duration:    3,
			Category:    "dining",
			Subcategory: "american",
			Rating:      4.6,
			Location:    "Brooklyn",
		},
		{
			ID:          "nyc_statue_liberty",
			Name:        "Statue of Liberty Ferry",
			Description: "Visit America's symbol of freedom",
			Cost:        30,
			Duration:    4,
			Category:    "activity",
			Subcategory: "landmark",
			Rating:      4.8,
			Location:    "Liberty Island",
		},
		{
			ID:          "nyc_rooftop_bar",
			Name:        "Manhattan Rooftop Bar",
			Description: "Cocktails with skyline views",
			Cost:        120,
			Duration:    3,
			Category:    "activity",
			Subcategory: "nightlife",
			Rating:      4.5,
			Location:    "Manhattan",
		},
		{
			ID:          "nyc_fine_dining",
			Name:        "Michelin Star Restaurant",
			Description: "World-class fine dining experience",
			Cost:        250,
			Duration:    3,
			Category:    "dining",
			Subcategory: "fine_dining",
			Rating:      4.8,
			Location:    "Manhattan",
		},
	},
}

// Generic fallback activities for destinations without curated data.
var genericActivities = []response_models.Activity{
	{
		ID:          "generic_city_walk",
		Name:        "City Walking Tour",
		Description: "Explore the historic downtown area and main landmarks",
		Cost:        25,
		Duration:    3,
		Category:    "activity",
		Subcategory: "cultural",
		Rating:      4.5,
		Location:    "City Center",
	},
	{
		ID:          "generic_local_restaurant",
		Name:        "Local Restaurant Experience",
		Description: "Taste authentic local cuisine at a recommended restaurant",
		Cost:        60,
		Duration:    2,
		Category:    "dining",
		Subcategory: "local",
		Rating:      4.4,
		Location:    "Downtown",
	},
	{
		ID:          "generic_museum",
		Name:        "Local History Museum",
		Description: "Learn about the area's culture and history",
		Cost:        15,
		Duration:    2.5,
		Category:    "activity",
		Subcategory: "museum",
		Rating:      4.3,
		Location:    "Cultural District",
	},
	{
		ID:          "generic_nature_activity",
		Name:        "Scenic Nature Experience",
		Description: "Enjoy the natural beauty of the surrounding area",
		Cost:        30,
		Duration:    4,
		Category:    "activity",
		Subcategory: "nature",
		Rating:      4.6,
		Location:    "Natural Area",
	},
	{
		ID:          "generic_market_visit",
		Name:        "Local Market Visit",
		Description: "Browse local vendors and artisan shops",
		Cost:        20,
		Duration:    2,
		Category:    "activity",
		Subcategory: "cultural",
		Rating:      4.2,
		Location:    "Market District",
	},
	{
		ID:          "generic_nightlife",
		Name:        "Evening Entertainment",
		Description: "Experience the local nightlife scene",
		Cost:        75,
		Duration:    3,
		Category:    "activity",
		Subcategory: "nightlife",
		Rating:      4.1,
		Location:    "Entertainment District",
	},
	{
		ID:          "generic_cafe_lunch",
		Name:        "Local Café Lunch",
		Description: "Casual dining at a popular local café",
		Cost:        35,
		Duration:    1.5,
		Category:    "dining",
		Subcategory: "local",
		Rating:      4.3,
		Location:    "Café District",
	},
	{
		ID:          "generic_guided_tour",
		Name:        "Guided City Tour",
		Description: "Professional guide shows you the highlights",
		Cost:        50,
		Duration:    3,
		Category:    "activity",
		Subcategory: "tours",
		Rating:      4.5,
		Location:    "Various Locations",
	},
	{
		ID:          "generic_fine_dining",
		Name:        "Upscale Dinner Experience",
		Description: "High-quality dining at a recommended restaurant",
		Cost:        120,
		Duration:    2.5,
		Category:    "dining",
		Subcategory: "fine_dining",
		Rating:      4.7,
		Location:    "Fine Dining District",
	},
}
