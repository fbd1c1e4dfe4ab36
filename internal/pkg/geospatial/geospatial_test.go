package geospatial_test

import (
	"math"
	"testing"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/pkg/geospatial"
)

// rectangle builds an axis-aligned ring of the given size in meters,
// anchored at the southwest corner.
func rectangle(lat, lon, heightM, widthM float64) []domain.GeoPoint {
	dLat := heightM / 111320.0
	dLon := widthM / (111320.0 * math.Cos(lat*math.Pi/180))
	return []domain.GeoPoint{
		{Lat: lat, Lon: lon},
		{Lat: lat + dLat, Lon: lon},
		{Lat: lat + dLat, Lon: lon + dLon},
		{Lat: lat, Lon: lon + dLon},
	}
}

func TestPolygonArea_Rectangle(t *testing.T) {
	pts := rectangle(14.31, 121.05, 100, 100)

	area := geospatial.PolygonArea(pts)
	if math.Abs(area-10000) > 10 {
		t.Errorf("expected ~10000 sq m, got %f", area)
	}
}

func TestPolygonArea_WindingOrderIrrelevant(t *testing.T) {
	pts := rectangle(14.31, 121.05, 80, 120)
	reversed := make([]domain.GeoPoint, len(pts))
	for i, p := range pts {
		reversed[len(pts)-1-i] = p
	}

	a1 := geospatial.PolygonArea(pts)
	a2 := geospatial.PolygonArea(reversed)
	if a1 < 0 || a2 < 0 {
		t.Fatalf("area must be non-negative, got %f and %f", a1, a2)
	}
	if math.Abs(a1-a2) > 1e-6 {
		t.Errorf("winding order changed area: %f vs %f", a1, a2)
	}
}

func TestPolygonArea_Degenerate(t *testing.T) {
	if got := geospatial.PolygonArea(nil); got != 0 {
		t.Errorf("empty ring: expected 0, got %f", got)
	}
	if got := geospatial.PolygonArea([]domain.GeoPoint{{Lat: 14.3, Lon: 121.1}, {Lat: 14.31, Lon: 121.11}}); got != 0 {
		t.Errorf("two vertices: expected 0, got %f", got)
	}

	collinear := []domain.GeoPoint{
		{Lat: 14.30, Lon: 121.10},
		{Lat: 14.31, Lon: 121.10},
		{Lat: 14.32, Lon: 121.10},
	}
	if got := geospatial.PolygonArea(collinear); got > 1e-3 {
		t.Errorf("collinear ring: expected ~0, got %f", got)
	}
}

func TestPolygonPerimeter_IncludesClosingEdge(t *testing.T) {
	pts := rectangle(14.31, 121.05, 100, 100)

	got := geospatial.PolygonPerimeter(pts)

	var want float64
	for i := 0; i < len(pts); i++ {
		j := (i + 1) % len(pts)
		want += geospatial.Haversine(pts[i].Lat, pts[i].Lon, pts[j].Lat, pts[j].Lon)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("perimeter %f does not match edge sum %f", got, want)
	}
	// Sanity: a 100x100 m rectangle has a ~400 m perimeter.
	if got < 395 || got > 405 {
		t.Errorf("expected ~400 m perimeter, got %f", got)
	}
}

func TestPolygon_MillidegreeSquare(t *testing.T) {
	pts := []domain.GeoPoint{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.001},
		{Lat: 0.001, Lon: 0.001},
		{Lat: 0.001, Lon: 0},
	}

	area := geospatial.PolygonArea(pts)
	if area < 11070 || area > 13530 {
		t.Errorf("expected ~12300 sq m for a 0.001 degree square, got %f", area)
	}

	perim := geospatial.PolygonPerimeter(pts)
	if perim < 422 || perim > 466 {
		t.Errorf("expected ~444 m perimeter, got %f", perim)
	}

	// The closed ring is strictly longer than the open path.
	var open float64
	for i := 0; i < len(pts)-1; i++ {
		open += geospatial.Haversine(pts[i].Lat, pts[i].Lon, pts[i+1].Lat, pts[i+1].Lon)
	}
	if perim <= open {
		t.Errorf("perimeter %f must exceed the open path %f", perim, open)
	}
}

func TestPolygonCenter_BoundsMidpoint(t *testing.T) {
	pts := []domain.GeoPoint{
		{Lat: 14.30, Lon: 121.10},
		{Lat: 14.32, Lon: 121.10},
		{Lat: 14.32, Lon: 121.14},
		{Lat: 14.30, Lon: 121.14},
	}

	c := geospatial.PolygonCenter(pts)
	if math.Abs(c.Lat-14.31) > 1e-9 || math.Abs(c.Lon-121.12) > 1e-9 {
		t.Errorf("expected (14.31, 121.12), got (%f, %f)", c.Lat, c.Lon)
	}

	if got := geospatial.PolygonCenter(nil); !got.IsZero() {
		t.Errorf("empty ring: expected zero point, got (%f, %f)", got.Lat, got.Lon)
	}
}

func TestNewPolygon(t *testing.T) {
	pts := rectangle(14.31, 121.05, 50, 50)

	poly := geospatial.NewPolygon(pts)
	if len(poly.Coordinates) != 4 {
		t.Fatalf("expected 4 coordinates, got %d", len(poly.Coordinates))
	}
	if poly.AreaSqMeters <= 0 || poly.PerimeterMeters <= 0 {
		t.Errorf("expected positive geometry, got area=%f perimeter=%f",
			poly.AreaSqMeters, poly.PerimeterMeters)
	}
	if poly.Center.IsZero() {
		t.Error("expected non-zero center")
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	// SM City Santa Rosa to Santa Rosa City Hall, roughly 1.6 km apart.
	d := geospatial.Haversine(14.3166, 121.0991, 14.3131, 121.1139)
	if d < 1500 || d > 1800 {
		t.Errorf("expected ~1.6 km, got %f m", d)
	}
}

func TestPlanarDistance_MatchesHaversineAtCityScale(t *testing.T) {
	lat1, lon1 := 14.3166, 121.0991
	lat2, lon2 := 14.2919, 121.0795

	h := geospatial.Haversine(lat1, lon1, lat2, lon2)
	p := geospatial.PlanarDistance(lat1, lon1, lat2, lon2)

	// Within 1% at a few kilometers.
	if math.Abs(h-p)/h > 0.01 {
		t.Errorf("planar %f diverges from haversine %f", p, h)
	}
}

func TestPlanarDistance_ZeroForSamePoint(t *testing.T) {
	if d := geospatial.PlanarDistance(14.3, 121.1, 14.3, 121.1); d != 0 {
		t.Errorf("expected 0, got %f", d)
	}
}

func TestBoundingBox_ContainsCenter(t *testing.T) {
	minLat, minLon, maxLat, maxLon := geospatial.BoundingBox(14.31, 121.10, 1000)
	if minLat >= 14.31 || maxLat <= 14.31 || minLon >= 121.10 || maxLon <= 121.10 {
		t.Errorf("box (%f,%f)-(%f,%f) does not contain center", minLat, minLon, maxLat, maxLon)
	}
}
