package catalog

import "github.com/kdeguzman/negosyoplan/internal/core/domain"

// Static knowledge base for Santa Rosa, Laguna. The catalog is compiled
// into the binary and never mutated at runtime; updates ship as code.

var santaRosaProfile = domain.CityProfile{
	Name:       "Santa Rosa",
	Province:   "Laguna",
	Population: 414812,
	Economy: "Component city with a mixed industrial-commercial base anchored on " +
		"automotive assembly, business process outsourcing, and large-format retail. " +
		"Household spending is lifted by industrial-estate payrolls and the Metro Manila commuter belt.",
	Industries: []string{
		"automotive manufacturing",
		"business process outsourcing",
		"retail and commercial centers",
		"food service",
		"real estate and township development",
		"logistics and warehousing",
	},
	Demographics: "Young workforce (median age ~25), strong in-migration from Metro Manila, " +
		"growing middle-income subdivisions around Nuvali and Greenfield City.",
	GrowthOutlook: "Sustained commercial expansion along the Santa Rosa-Tagaytay Road corridor " +
		"and the SLEX exits; barangay Balibago remains the transport and trade hub.",
}

var santaRosaPOIs = []domain.PointOfInterest{
	{
		Name:          "SM City Santa Rosa",
		Type:          "mall",
		Category:      "retail",
		Location:      domain.GeoPoint{Lat: 14.3166, Lon: 121.0991},
		Description:   "Largest mall in the city, anchor of the Balibago commercial district.",
		BusinessHours: "10:00-21:00 daily",
		Significance:  "Primary retail foot-traffic generator; ~60k daily visitors on weekends.",
	},
	{
		Name:          "Santa Rosa City Hall",
		Type:          "government",
		Category:      "civic",
		Location:      domain.GeoPoint{Lat: 14.3131, Lon: 121.1139},
		Description:   "Seat of the city government, permits and licensing offices.",
		BusinessHours: "08:00-17:00 Mon-Fri",
		Significance:  "Daytime worker and transacting-public traffic in the poblacion.",
	},
	{
		Name:          "Santa Rosa Public Market",
		Type:          "market",
		Category:      "retail",
		Location:      domain.GeoPoint{Lat: 14.3124, Lon: 121.1128},
		Description:   "Wet and dry public market serving the old town barangays.",
		BusinessHours: "04:00-19:00 daily",
		Significance:  "Staple-goods price anchor; heavy early-morning trade.",
	},
	{
		Name:          "Enchanted Kingdom",
		Type:          "attraction",
		Category:      "tourism",
		Location:      domain.GeoPoint{Lat: 14.2919, Lon: 121.0795},
		Description:   "National theme park drawing visitors from across Luzon.",
		BusinessHours: "11:00-19:00 Wed-Sun",
		Significance:  "Weekend tourist inflow supports food and lodging demand nearby.",
	},
	{
		Name:          "Paseo de Santa Rosa",
		Type:          "mall",
		Category:      "retail",
		Location:      domain.GeoPoint{Lat: 14.2672, Lon: 121.0975},
		Description:   "Outlet-style commercial strip in Greenfield City.",
		BusinessHours: "10:00-21:00 daily",
		Significance:  "Captures SLEX motorist traffic and Greenfield residents.",
	},
	{
		Name:          "Nuvali Evoliving Center",
		Type:          "mixed_use",
		Category:      "commercial",
		Location:      domain.GeoPoint{Lat: 14.2382, Lon: 121.0565},
		Description:   "Township commercial core with offices, dining, and weekend markets.",
		BusinessHours: "08:00-22:00 daily",
		Significance:  "Higher-income catchment; strong cafe and casual-dining demand.",
	},
	{
		Name:          "Laguna Technopark",
		Type:          "industrial_estate",
		Category:      "industrial",
		Location:      domain.GeoPoint{Lat: 14.2837, Lon: 121.1248},
		Description:   "PEZA industrial estate straddling the Santa Rosa-Binan boundary.",
		BusinessHours: "24/7 shift operations",
		Significance:  "Tens of thousands of shift workers; canteen and services demand at gates.",
	},
	{
		Name:          "Toyota Motor Philippines",
		Type:          "factory",
		Category:      "industrial",
		Location:      domain.GeoPoint{Lat: 14.2436, Lon: 121.0894},
		Description:   "Vehicle assembly plant, the city's largest single employer.",
		Significance:  "Anchor employer; supplier and logistics ecosystem around the plant.",
	},
	{
		Name:          "Robinsons Place Santa Rosa",
		Type:          "mall",
		Category:      "retail",
		Location:      domain.GeoPoint{Lat: 14.3248, Lon: 121.0839},
		Description:   "Community mall along the old national highway.",
		BusinessHours: "10:00-21:00 daily",
		Significance:  "Secondary retail node serving Tagapo and Balibago residents.",
	},
	{
		Name:          "Balibago Transport Terminal",
		Type:          "terminal",
		Category:      "transport",
		Location:      domain.GeoPoint{Lat: 14.3289, Lon: 121.0990},
		Description:   "Jeepney and bus terminal for Metro Manila and Calamba routes.",
		BusinessHours: "04:00-22:00 daily",
		Significance:  "Highest pedestrian counts in the city; informal vending cluster.",
	},
	{
		Name:          "St. Rose of Lima Parish Church",
		Type:          "church",
		Category:      "civic",
		Location:      domain.GeoPoint{Lat: 14.3126, Lon: 121.1120},
		Description:   "Heritage parish church at the center of the poblacion.",
		Significance:  "Sunday crowds sustain the surrounding eatery and sari-sari trade.",
	},
	{
		Name:          "QualiMed Hospital Santa Rosa",
		Type:          "hospital",
		Category:      "healthcare",
		Location:      domain.GeoPoint{Lat: 14.2405, Lon: 121.0525},
		Description:   "Tertiary hospital inside the Nuvali estate.",
		BusinessHours: "24/7",
		Significance:  "Medical-adjacent demand: pharmacies, lodging, food service.",
	},
	{
		Name:          "Lyceum of the Philippines Laguna",
		Type:          "school",
		Category:      "education",
		Location:      domain.GeoPoint{Lat: 14.2568, Lon: 121.0671},
		Description:   "University campus along the Santa Rosa-Tagaytay Road.",
		BusinessHours: "07:00-19:00 Mon-Sat",
		Significance:  "Student market for budget food, printing, and services.",
	},
	{
		Name:          "PUP Santa Rosa Campus",
		Type:          "school",
		Category:      "education",
		Location:      domain.GeoPoint{Lat: 14.3115, Lon: 121.1060},
		Description:   "State university branch campus near the city center.",
		BusinessHours: "07:00-19:00 Mon-Sat",
		Significance:  "Steady weekday student foot traffic in the poblacion.",
	},
	{
		Name:          "Greenfield City Central Park",
		Type:          "park",
		Category:      "recreation",
		Location:      domain.GeoPoint{Lat: 14.2701, Lon: 121.1002},
		Description:   "Open park hosting weekend events and pop-up markets.",
		Significance:  "Event-driven weekend crowds; pop-up retail opportunities.",
	},
	{
		Name:          "Santa Rosa Exit (SLEX)",
		Type:          "interchange",
		Category:      "transport",
		Location:      domain.GeoPoint{Lat: 14.2930, Lon: 121.0890},
		Description:   "South Luzon Expressway interchange feeding the city's main corridor.",
		Significance:  "Gateway traffic; fuel, quick-service food, and convenience retail.",
	},
}

var opportunityTable = map[string]domain.OpportunityScore{
	"restaurant": {
		Suitability:     8,
		Competition:     "High along the Balibago and Nuvali corridors, moderate in the poblacion",
		MarketPotential: "Strong - industrial payrolls and mall foot traffic sustain full-service dining",
		Recommendations: []string{
			"Target the lunch trade of Technopark and BPO shifts with set meals",
			"Locate within 500 m of a mall or terminal for discovery traffic",
			"Secure parking; highway-corridor diners depend on motorists",
		},
	},
	"retail": {
		Suitability:     7,
		Competition:     "High near the three malls, low in newer subdivisions",
		MarketPotential: "Good - household formation in new subdivisions outpaces store openings",
		Recommendations: []string{
			"Differentiate from mall anchors with convenience or specialty formats",
			"Consider subdivision entrances underserved by the major centers",
		},
	},
	"food_truck": {
		Suitability:     8,
		Competition:     "Low - mobile vending is thin outside the Balibago terminal cluster",
		MarketPotential: "Strong - factory gates and event venues lack quick-service options",
		Recommendations: []string{
			"Rotate between Technopark gates on weekdays and Central Park events on weekends",
			"Coordinate vending permits with the city licensing office early",
		},
	},
	"services": {
		Suitability:     7,
		Competition:     "Moderate - fragmented small operators, few branded chains",
		MarketPotential: "Good - growing households need laundry, repair, and personal care",
		Recommendations: []string{
			"Cluster near residential subdivisions rather than the commercial strips",
			"Offer pickup or delivery; commuter households are time-poor",
		},
	},
	"cafe": {
		Suitability:     7,
		Competition:     "Rising in Nuvali and Greenfield, sparse in the old town",
		MarketPotential: "Good - student and remote-worker demand for third places",
		Recommendations: []string{
			"Pair seating capacity with reliable connectivity for remote workers",
			"Morning trade near schools and offices outperforms mall locations",
		},
	},
}

// defaultOpportunity is returned for categories missing from the table.
var defaultOpportunity = domain.OpportunityScore{
	Suitability:     6,
	Competition:     "Moderate",
	MarketPotential: "Moderate",
	Recommendations: []string{
		"Validate demand with a barangay-level foot traffic survey before committing",
		"Start with a small footprint and scale after the first permit year",
	},
}
