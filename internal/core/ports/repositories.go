package ports

import (
	"context"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
)

// POIRepository serves the static point-of-interest catalog.
type POIRepository interface {
	// FindNearby returns POIs within radiusMeters of center, ascending by
	// distance. An empty categories slice matches everything; otherwise an
	// entry matches when its type or category equals any listed value.
	FindNearby(ctx context.Context, center domain.GeoPoint, radiusMeters float64, categories []string) ([]domain.PointOfInterest, error)

	// DensityByCategory counts catalog entries per category inside bounds.
	DensityByCategory(ctx context.Context, bounds domain.Bounds) ([]domain.CategoryDensity, error)
}

// InsightProvider serves the static city intelligence used to enrich
// prompts and the insight endpoints.
type InsightProvider interface {
	Opportunity(category string) domain.OpportunityScore
	CityContext() string
	Profile() domain.CityProfile
}

// BusinessRepository persists the LGU business directory.
type BusinessRepository interface {
	Upsert(ctx context.Context, b *domain.Business) error
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	List(ctx context.Context, filter domain.BusinessFilter, offset, limit int) ([]domain.Business, int, error)
}
