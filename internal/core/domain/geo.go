package domain

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsZero reports whether the point is the unset (0, 0) coordinate.
// The null island coordinate never appears in real siting input.
func (p GeoPoint) IsZero() bool {
	return p.Lat == 0 && p.Lon == 0
}

// Valid reports whether the point is inside the WGS 84 coordinate range.
func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Bounds represents a geographic bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Contains reports whether a point lies within the box, edges inclusive.
func (b Bounds) Contains(p GeoPoint) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// Polygon is a finalized user-drawn lot boundary with derived geometry.
// The ring is implicitly closed: the edge from the last vertex back to
// the first is always part of the shape.
type Polygon struct {
	Coordinates     []GeoPoint `json:"coordinates"`
	AreaSqMeters    float64    `json:"area_sq_meters"`
	PerimeterMeters float64    `json:"perimeter_meters"`
	Center          GeoPoint   `json:"center"`
}
