// Package catalog is the in-memory knowledge base for the configured
// city: points of interest, the city profile, and the per-category
// opportunity table. It implements ports.POIRepository without any
// external storage; all lookups are deterministic and read-only.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/pkg/geospatial"
)

// Catalog serves the static city knowledge base.
type Catalog struct {
	profile domain.CityProfile
	pois    []domain.PointOfInterest
	scores  map[string]domain.OpportunityScore
}

// New returns the catalog for Santa Rosa, Laguna.
func New() *Catalog {
	return &Catalog{
		profile: santaRosaProfile,
		pois:    santaRosaPOIs,
		scores:  opportunityTable,
	}
}

// Profile returns the configured city's static profile.
func (c *Catalog) Profile() domain.CityProfile {
	return c.profile
}

// FindNearby implements ports.POIRepository. Results are copies with the
// computed planar distance set, sorted ascending by distance (name as a
// deterministic tie-break), and limited to radiusMeters.
func (c *Catalog) FindNearby(ctx context.Context, center domain.GeoPoint, radiusMeters float64, categories []string) ([]domain.PointOfInterest, error) {
	if radiusMeters <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %f", radiusMeters)
	}

	var out []domain.PointOfInterest
	for _, poi := range c.pois {
		if !matchesCategory(poi, categories) {
			continue
		}
		d := geospatial.PlanarDistance(center.Lat, center.Lon, poi.Location.Lat, poi.Location.Lon)
		if d > radiusMeters {
			continue
		}
		p := poi
		p.Distance = d
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

// DensityByCategory counts catalog entries per category inside bounds,
// sorted by count descending then category name.
func (c *Catalog) DensityByCategory(ctx context.Context, bounds domain.Bounds) ([]domain.CategoryDensity, error) {
	counts := make(map[string]int)
	for _, poi := range c.pois {
		if bounds.Contains(poi.Location) {
			counts[poi.Category]++
		}
	}

	out := make([]domain.CategoryDensity, 0, len(counts))
	for cat, n := range counts {
		out = append(out, domain.CategoryDensity{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

// Opportunity returns the canned viability assessment for a category.
// Unknown categories get the generic default, never an error.
func (c *Catalog) Opportunity(category string) domain.OpportunityScore {
	if s, ok := c.scores[strings.ToLower(strings.TrimSpace(category))]; ok {
		return s
	}
	return defaultOpportunity
}

// CityContext renders the city profile as the multi-line block embedded
// verbatim in analysis prompts.
func (c *Catalog) CityContext() string {
	p := c.profile
	var b strings.Builder
	fmt.Fprintf(&b, "City: %s, %s, Philippines\n", p.Name, p.Province)
	fmt.Fprintf(&b, "Population: %d\n", p.Population)
	fmt.Fprintf(&b, "Economic profile: %s\n", p.Economy)
	fmt.Fprintf(&b, "Key industries: %s\n", strings.Join(p.Industries, ", "))
	fmt.Fprintf(&b, "Demographics: %s\n", p.Demographics)
	fmt.Fprintf(&b, "Growth outlook: %s", p.GrowthOutlook)
	return b.String()
}

func matchesCategory(poi domain.PointOfInterest, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if strings.EqualFold(poi.Type, c) || strings.EqualFold(poi.Category, c) {
			return true
		}
	}
	return false
}
