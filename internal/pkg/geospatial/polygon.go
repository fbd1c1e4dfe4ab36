package geospatial

import (
	"math"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
)

// PolygonArea computes the enclosed area in square meters of a lot
// boundary, treating the ring as implicitly closed. It projects degrees
// to meters with the local scaling factor and runs the Shoelace formula;
// the signed sum's absolute value makes winding order irrelevant.
// Fewer than three vertices, or degenerate (collinear/duplicate) rings,
// yield 0 rather than an error.
func PolygonArea(pts []domain.GeoPoint) float64 {
	if len(pts) < 3 {
		return 0
	}

	refLat := pts[0].Lat
	cosLat := math.Cos(toRad(refLat))

	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi := pts[i].Lon * metersPerDegree * cosLat
		yi := pts[i].Lat * metersPerDegree
		xj := pts[j].Lon * metersPerDegree * cosLat
		yj := pts[j].Lat * metersPerDegree
		sum += xi*yj - xj*yi
	}

	return math.Abs(sum) / 2
}

// PolygonPerimeter sums the haversine distance in meters between each
// consecutive vertex pair, including the wrap-around edge from the last
// vertex back to the first.
func PolygonPerimeter(pts []domain.GeoPoint) float64 {
	if len(pts) < 2 {
		return 0
	}

	var total float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += Haversine(pts[i].Lat, pts[i].Lon, pts[j].Lat, pts[j].Lon)
	}
	return total
}

// PolygonCenter returns the midpoint of the bounding extremes. This is
// an approximation, not the true centroid: for concave shapes the result
// can fall outside the polygon. Callers use it as a label coordinate
// only and must not rely on it being interior.
func PolygonCenter(pts []domain.GeoPoint) domain.GeoPoint {
	if len(pts) == 0 {
		return domain.GeoPoint{}
	}

	b := PolygonBounds(pts)
	return domain.GeoPoint{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lon: (b.MinLon + b.MaxLon) / 2,
	}
}

// PolygonBounds returns the bounding box of a vertex set.
func PolygonBounds(pts []domain.GeoPoint) domain.Bounds {
	if len(pts) == 0 {
		return domain.Bounds{}
	}

	b := domain.Bounds{
		MinLat: pts[0].Lat, MaxLat: pts[0].Lat,
		MinLon: pts[0].Lon, MaxLon: pts[0].Lon,
	}
	for _, p := range pts[1:] {
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
		b.MinLon = math.Min(b.MinLon, p.Lon)
		b.MaxLon = math.Max(b.MaxLon, p.Lon)
	}
	return b
}

// NewPolygon derives the full geometry record from a finalized ring.
func NewPolygon(pts []domain.GeoPoint) domain.Polygon {
	return domain.Polygon{
		Coordinates:     pts,
		AreaSqMeters:    PolygonArea(pts),
		PerimeterMeters: PolygonPerimeter(pts),
		Center:          PolygonCenter(pts),
	}
}
