package estate

// Default returns the built-in Dubai dataset. Coordinates and listing
// metadata mirror the mock listings API.
func Default() *Dataset {
	return NewDataset(defaultCommunities, defaultProjects)
}

var defaultCommunities = map[string]LatLng{
	"The Oasis by Emaar":       {24.9926, 55.3045},
	"Dubai Creek Harbour":      {25.2069, 55.3394},
	"Sobha Hartland II":        {25.1763, 55.3117},
	"Business Bay":             {25.1834, 55.2709},
	"DAMAC Lagoons":            {25.0435, 55.2443},
	"Palm Jumeirah":            {25.1189, 55.1383},
	"Al Barari":                {25.0978, 55.3582},
	"Za'abeel":                 {25.2285, 55.2952},
	"Dubai Marina":             {25.0784, 55.1384},
	"Dubai Hills Estate":       {25.1118, 55.2575},
	"Downtown Dubai":           {25.1972, 55.2744},
	"Arabian Ranches":          {25.0493, 55.2818},
	"Arabian Ranches 2":        {25.0381, 55.2671},
	"Arabian Ranches 3":        {25.0567, 55.3194},
	"Jumeirah Beach Residence": {25.0770, 55.1330},
}

var defaultProjects = map[string][]Project{
	"The Oasis by Emaar": {
		{
			Name: "Palmiera Villas", Type: "Villas", Position: LatLng{24.9930, 55.3050},
			Amenities:           []string{"Private Lagoon Access", "Community Parks", "Fitness Centers", "Gated Community"},
			LocationDescription: "Luxurious villas nestled within a green oasis with swimmable lagoons.",
			LaunchDate:          "2023-06-01", HandoverDate: "2026-12-31", ProjectType: OffPlan,
			StartingPrice: 8000000, CurrencyCode: "AED", ServiceCharge: 5, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Palmiera+Villas",
			Specs: &Specs{AvgPricePerSqft: 1600, UnitTypes: []UnitType{
				{"4 BR Villa", 5000}, {"5 BR Villa", 6000},
			}},
		},
		{
			Name: "Mirage at The Oasis", Type: "Villas", Position: LatLng{24.9920, 55.3040},
			Amenities:           []string{"Resort-style Pool", "Kids Play Area", "Landscaped Gardens", "24/7 Security"},
			LocationDescription: "Exclusive waterfront villas offering a serene and upscale lifestyle.",
			LaunchDate:          "2023-09-10", HandoverDate: "2027-03-31", ProjectType: OffPlan,
			StartingPrice: 9500000, CurrencyCode: "AED", ServiceCharge: 5, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Mirage+at+The+Oasis",
			Specs: &Specs{AvgPricePerSqft: 1750, UnitTypes: []UnitType{
				{"5 BR Villa", 5500}, {"6 BR Villa", 7000},
			}},
		},
		{
			Name: "Oasis Rental Villa", Type: "Villas", Position: LatLng{24.9950, 55.3070},
			Amenities:           []string{"Community Pool", "Playground", "24/7 Security"},
			LocationDescription: "A spacious villa available for rent in a family-friendly community.",
			LaunchDate:          "2022-01-01", HandoverDate: "2023-01-01", ProjectType: ForRent,
			StartingPrice: 450000, CurrencyCode: "AED", IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Rental+Villa",
		},
	},
	"Dubai Creek Harbour": {
		{
			Name: "Creek Waters 2", Type: "Apartments", Position: LatLng{25.2075, 55.3400},
			Amenities:           []string{"Infinity Pool", "State-of-the-art Gym", "Creek Beach Access", "Viewing Decks"},
			LocationDescription: "A striking waterfront apartment tower with unparalleled views of the creek and Dubai skyline.",
			LaunchDate:          "2023-03-15", HandoverDate: "2027-09-30", ProjectType: OffPlan,
			StartingPrice: 1700000, CurrencyCode: "AED", ServiceCharge: 20, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Creek+Waters+2",
			Specs: &Specs{AvgPricePerSqft: 2000, UnitTypes: []UnitType{
				{"1 BR", 800}, {"2 BR", 1200}, {"3 BR", 1800},
			}},
		},
		{
			Name: "Savanna", Type: "Apartments", Position: LatLng{25.2050, 55.3370},
			Amenities:           []string{"Landscaped Gardens", "Community Pool", "Kids Play Area", "Multi-purpose Room"},
			LocationDescription: "Apartments adjacent to a lush park, offering a tranquil environment for families.",
			LaunchDate:          "2023-03-01", HandoverDate: "2026-12-31", ProjectType: OffPlan,
			StartingPrice: 1300000, CurrencyCode: "AED", ServiceCharge: 18, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Savanna",
			Specs: &Specs{AvgPricePerSqft: 1800, UnitTypes: []UnitType{
				{"1 BR", 750}, {"2 BR", 1100},
			}},
		},
		{
			Name: "Harbour Gate", Type: "Apartments", Position: LatLng{25.2095, 55.3420},
			Amenities:           []string{"Gymnasium", "Swimming Pools", "Leisure Deck", "Direct Park Access"},
			LocationDescription: "Apartments for rent in a gateway to the island district, offering park and water views.",
			LaunchDate:          "2017-01-01", HandoverDate: "2020-01-01", ProjectType: ForRent,
			StartingPrice: 135000, CurrencyCode: "AED", IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Harbour+Gate+Rental",
		},
	},
	"Business Bay": {
		{
			Name: "Burj Binghatti Jacob & Co Residences", Type: "Apartments", Position: LatLng{25.1840, 55.2715},
			Amenities:           []string{"Concierge Services", "Private Chef Services", "Infinity Pool overlooking Dubai", "Luxury Spa"},
			LocationDescription: "An ultra-luxury branded skyscraper aspiring to be the world's tallest residential tower.",
			LaunchDate:          "2023-05-20", HandoverDate: "2027-06-30", ProjectType: OffPlan,
			StartingPrice: 8000000, CurrencyCode: "AED", ServiceCharge: 25, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Burj+Binghatti",
			Specs: &Specs{AvgPricePerSqft: 3500, UnitTypes: []UnitType{
				{"2 BR Suite", 2200}, {"3 BR Suite", 3000},
			}},
		},
		{
			Name: "Altitude by DAMAC", Type: "Apartments", Position: LatLng{25.1850, 55.2725},
			Amenities:           []string{"Zero-gravity Pods", "Canal Views", "Swimming Pool", "State-of-the-art Gym"},
			LocationDescription: "A luxury off-plan tower offering stunning views of the Dubai Canal.",
			LaunchDate:          "2024-01-15", HandoverDate: "2027-12-31", ProjectType: OffPlan,
			StartingPrice: 1500000, CurrencyCode: "AED", ServiceCharge: 22, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Altitude+by+DAMAC",
			Specs: &Specs{AvgPricePerSqft: 2200, UnitTypes: []UnitType{
				{"Studio", 450}, {"1 BR", 750}, {"2 BR", 1100},
			}},
		},
		{
			Name: "Executive Towers", Type: "Apartments", Position: LatLng{25.1870, 55.2745},
			Amenities:           []string{"Bay Avenue Mall Access", "Shared Pools", "Gyms", "Landscaped Plazas"},
			LocationDescription: "A landmark mixed-use complex offering apartments for rent in the heart of Business Bay.",
			LaunchDate:          "2005-01-01", HandoverDate: "2009-01-01", ProjectType: ForRent,
			StartingPrice: 110000, CurrencyCode: "AED", IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Executive+Towers+Rental",
		},
	},
	"DAMAC Lagoons": {
		{
			Name: "Morocco at DAMAC Lagoons", Type: "Townhouse", Position: LatLng{25.0440, 55.2450},
			Amenities:           []string{"Serene Yoga Hubs", "Argan Oil Treatment Spa", "Botanical Gardens", "Outdoor Art Installations"},
			LocationDescription: "A tranquil retreat with Moroccan-inspired townhouses and villas.",
			LaunchDate:          "2023-04-01", HandoverDate: "2026-10-31", ProjectType: OffPlan,
			StartingPrice: 2900000, CurrencyCode: "AED", ServiceCharge: 4, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Morocco+Lagoons",
			Specs: &Specs{AvgPricePerSqft: 1200, UnitTypes: []UnitType{
				{"4 BR Townhouse", 2400}, {"5 BR Townhouse", 3000},
			}},
		},
		{
			Name: "Mykonos at DAMAC Lagoons", Type: "Townhouse", Position: LatLng{25.0430, 55.2460},
			Amenities:           []string{"Floating Gardens", "Beach Club", "Cobblestone Streets", "Windmill Park"},
			LocationDescription: "Experience the charm of the Greek isles with these vibrant townhouses.",
			LaunchDate:          "2022-11-20", HandoverDate: "2025-12-31", ProjectType: OffPlan,
			StartingPrice: 2500000, CurrencyCode: "AED", ServiceCharge: 4, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Mykonos+Lagoons",
			Specs: &Specs{AvgPricePerSqft: 1150, UnitTypes: []UnitType{
				{"3 BR Townhouse", 2200}, {"4 BR Townhouse", 2600},
			}},
		},
	},
	"Palm Jumeirah": {
		{
			Name: "Como Residences", Type: "Apartments", Position: LatLng{25.1125, 55.1490},
			Amenities:           []string{"Rooftop Infinity Pool", "Private Elevators", "360-degree Panoramic Views", "Exclusive Beach Club"},
			LocationDescription: "A 76-storey tower offering one residence per floor, defining privacy and luxury.",
			LaunchDate:          "2023-05-15", HandoverDate: "2027-09-30", ProjectType: OffPlan,
			StartingPrice: 21000000, CurrencyCode: "AED", ServiceCharge: 28, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Como+Residences",
			Specs: &Specs{AvgPricePerSqft: 4500, UnitTypes: []UnitType{
				{"3 BR Apartment", 4500}, {"5 BR Apartment", 7000},
			}},
		},
		{
			Name: "Atlantis The Royal Residences", Type: "Apartments", Position: LatLng{25.1385, 55.1205},
			Amenities:           []string{"Sky Pool & Lounge", "Private Beach Club", "Celebrity Chef Restaurants", "Aquaventure Waterpark Access"},
			LocationDescription: "An iconic architectural landmark offering a collection of sky courts, penthouses, and garden suites.",
			LaunchDate:          "2017-03-01", HandoverDate: "2023-02-10", ProjectType: Ready,
			StartingPrice: 7500000, CurrencyCode: "AED", ServiceCharge: 35, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Atlantis+The+Royal",
			Specs: &Specs{AvgPricePerSqft: 5500, UnitTypes: []UnitType{
				{"2 BR Apartment", 1800}, {"3 BR Apartment", 2500},
			}},
		},
		{
			Name: "Shoreline Apartments", Type: "Apartments", Position: LatLng{25.1145, 55.1525},
			Amenities:           []string{"Private Beach Access", "Clubhouses with Gyms", "Infinity Pools", "Children's Playgrounds"},
			LocationDescription: "A collection of 20 residential buildings on the east side of the trunk, popular for rentals.",
			LaunchDate:          "2004-01-01", HandoverDate: "2007-01-01", ProjectType: ForRent,
			StartingPrice: 160000, CurrencyCode: "AED", IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Shoreline+Rental",
		},
	},
	"Dubai Hills Estate": {
		{
			Name: "Maple at Dubai Hills", Type: "Townhouse", Position: LatLng{25.1050, 55.2590},
			Amenities:           []string{"Community Pool", "Cycle Path", "Dubai Hills Mall Access", "18-Hole Golf Course"},
			LocationDescription: "A popular community of contemporary townhouses along a network of green corridors.",
			LaunchDate:          "2016-05-01", HandoverDate: "2019-06-30", ProjectType: Ready,
			StartingPrice: 2500000, CurrencyCode: "AED", ServiceCharge: 3, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Maple+at+DHE",
			Specs: &Specs{AvgPricePerSqft: 1300, UnitTypes: []UnitType{
				{"3 BR Townhouse", 2200}, {"4 BR Townhouse", 2400}, {"5 BR Townhouse", 2700},
			}},
		},
		{
			Name: "Sidra Villas", Type: "Villas", Position: LatLng{25.1080, 55.2630},
			Amenities:           []string{"Private Gardens", "Community Parks", "Dubai Hills Golf Club", "GEMS Schools Nearby"},
			LocationDescription: "An exclusive community of premium villas offering a tranquil and upscale family lifestyle.",
			LaunchDate:          "2015-01-01", HandoverDate: "2018-12-31", ProjectType: Ready,
			StartingPrice: 4500000, CurrencyCode: "AED", ServiceCharge: 4, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Sidra+Villas",
			Specs: &Specs{AvgPricePerSqft: 1450, UnitTypes: []UnitType{
				{"3 BR Villa", 3100}, {"4 BR Villa", 3500}, {"5 BR Villa", 4200},
			}},
		},
		{
			Name: "Park Heights", Type: "Apartments", Position: LatLng{25.1150, 55.2550},
			Amenities:           []string{"Infinity Pool", "Gymnasium", "Dubai Hills Park Access", "Retail Outlets"},
			LocationDescription: "A modern apartment complex with direct access to the expansive Dubai Hills Park.",
			LaunchDate:          "2017-01-01", HandoverDate: "2020-06-30", ProjectType: Ready,
			StartingPrice: 1200000, CurrencyCode: "AED", ServiceCharge: 16, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Park+Heights",
			Specs: &Specs{AvgPricePerSqft: 1600, UnitTypes: []UnitType{
				{"1 BR", 700}, {"2 BR", 1100}, {"3 BR", 1600},
			}},
		},
		{
			Name: "Collective 2.0", Type: "Apartments", Position: LatLng{25.1165, 55.2535},
			Amenities:           []string{"Co-working Spaces", "Library", "Games Room", "Padel Tennis Court", "Rooftop Pool"},
			LocationDescription: "Contemporary apartments designed for a modern, social lifestyle, ideal for young professionals and couples.",
			LaunchDate:          "2018-01-01", HandoverDate: "2021-12-31", ProjectType: ForRent,
			StartingPrice: 90000, CurrencyCode: "AED", IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Collective+2.0+Rental",
		},
	},
	"Downtown Dubai": {
		{
			Name: "St. Regis Residences", Type: "Apartments", Position: LatLng{25.1915, 55.2795},
			Amenities:           []string{"St. Regis Butler Service", "F&B Outlets", "Cigar Lounge", "Cognac Room"},
			LocationDescription: "Ultra-luxury apartments in the Opera District with premium services and amenities.",
			LaunchDate:          "2022-01-01", HandoverDate: "2026-12-31", ProjectType: OffPlan,
			StartingPrice: 2500000, CurrencyCode: "AED", ServiceCharge: 28, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=St+Regis",
			Specs: &Specs{AvgPricePerSqft: 3000, UnitTypes: []UnitType{
				{"1 BR", 900}, {"2 BR", 1400},
			}},
		},
		{
			Name: "Burj Khalifa Residences", Type: "Apartments", Position: LatLng{25.1972, 55.2744},
			Amenities:           []string{"Direct Dubai Mall Access", "Valet Parking", "Sky Lobbies", "Indoor & Outdoor Pools", "Jacuzzis"},
			LocationDescription: "Iconic residences within the world's tallest building, offering ultimate prestige and luxury.",
			LaunchDate:          "2009-01-01", HandoverDate: "2010-01-04", ProjectType: Ready,
			StartingPrice: 5000000, CurrencyCode: "AED", ServiceCharge: 30, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Burj+Khalifa",
			Specs: &Specs{AvgPricePerSqft: 4500, UnitTypes: []UnitType{
				{"1 BR", 1100}, {"2 BR", 2000},
			}},
		},
		{
			Name: "South Ridge Towers", Type: "Apartments", Position: LatLng{25.1890, 55.2760},
			Amenities:           []string{"Swimming Pool", "Gymnasium", "Squash Courts", "Badminton Court"},
			LocationDescription: "A popular cluster of 6 towers offering apartments for rent with easy access to the boulevard.",
			LaunchDate:          "2005-01-01", HandoverDate: "2008-01-01", ProjectType: ForRent,
			StartingPrice: 140000, CurrencyCode: "AED", IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=South+Ridge+Rental",
		},
	},
	"Jumeirah Beach Residence": {
		{
			Name: "Address Beach Resort", Type: "Apartments", Position: LatLng{25.0789, 55.1364},
			Amenities:           []string{"Rooftop Infinity Pool", "Direct Beach Access", "Fitness Centre", "Spa", "Kids Club"},
			LocationDescription: "An iconic beachfront resort with two towers connected by a skybridge, offering luxury serviced apartments.",
			LaunchDate:          "2016-01-01", HandoverDate: "2020-12-31", ProjectType: Ready,
			StartingPrice: 3500000, CurrencyCode: "AED", ServiceCharge: 28, IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Address+Beach+Resort",
			Specs: &Specs{AvgPricePerSqft: 3000, UnitTypes: []UnitType{
				{"1 BR", 1000}, {"2 BR", 1500},
			}},
		},
		{
			Name: "Rimal", Type: "Apartments", Position: LatLng{25.0760, 55.1320},
			Amenities:           []string{"The Walk JBR Access", "Multiple Swimming Pools", "Community Gym", "Retail Outlets", "24/7 Security"},
			LocationDescription: "One of the six original clusters in JBR, offering a vibrant community feel with direct access to The Walk.",
			LaunchDate:          "2004-01-01", HandoverDate: "2007-06-30", ProjectType: ForRent,
			StartingPrice: 180000, CurrencyCode: "AED", IsFreehold: true,
			ImageURL: "https://placehold.co/600x400?text=Rimal",
		},
	},
}
