package domain

// PointOfInterest is a named nearby place used for contextual enrichment.
// Catalog entries are loaded once at startup and never mutated; the
// Distance field is computed per query and set on a copy.
type PointOfInterest struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Category      string   `json:"category"`
	Location      GeoPoint `json:"location"`
	Description   string   `json:"description,omitempty"`
	BusinessHours string   `json:"business_hours,omitempty"`
	Significance  string   `json:"significance,omitempty"`

	// Distance is the planar distance in meters from the query center.
	Distance float64 `json:"distance_meters"`
}

// OpportunityScore is the canned viability assessment for a business
// category in the configured city.
type OpportunityScore struct {
	Suitability     int      `json:"suitability"` // 1..10
	Competition     string   `json:"competition"`
	MarketPotential string   `json:"market_potential"`
	Recommendations []string `json:"recommendations"`
}

// CityProfile holds the static facts about the configured city that are
// rendered into prompt context blocks.
type CityProfile struct {
	Name          string   `json:"name"`
	Province      string   `json:"province"`
	Population    int      `json:"population"`
	Economy       string   `json:"economy"`
	Industries    []string `json:"industries"`
	Demographics  string   `json:"demographics"`
	GrowthOutlook string   `json:"growth_outlook"`
}

// CategoryDensity is a per-category POI count inside a bounding box,
// used by the heatmap endpoint.
type CategoryDensity struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
