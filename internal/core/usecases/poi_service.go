package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/core/ports"
	"github.com/kdeguzman/negosyoplan/internal/pkg/metrics"
)

// POIService handles point-of-interest lookups with read-through caching.
type POIService struct {
	pois  ports.POIRepository
	cache ports.CacheService
}

// NewPOIService creates a new POIService.
func NewPOIService(pois ports.POIRepository, cache ports.CacheService) *POIService {
	return &POIService{pois: pois, cache: cache}
}

// FindNearby returns POIs within radiusMeters of the given point,
// ascending by distance.
func (s *POIService) FindNearby(ctx context.Context, lat, lon, radiusMeters float64, categories []string) ([]domain.PointOfInterest, error) {
	if radiusMeters <= 0 || radiusMeters > 10000 {
		radiusMeters = 2000
	}

	// Try cache
	cacheKey := fmt.Sprintf("pois:nearby:%.4f:%.4f:%.0f:%s", lat, lon, radiusMeters, strings.Join(categories, ","))
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var pois []domain.PointOfInterest
			if err := json.Unmarshal(data, &pois); err == nil {
				metrics.CacheHits.WithLabelValues("pois_nearby").Inc()
				return pois, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("pois_nearby").Inc()
	}

	pois, err := s.pois.FindNearby(ctx, domain.GeoPoint{Lat: lat, Lon: lon}, radiusMeters, categories)
	if err != nil {
		return nil, err
	}

	// Cache for 5 minutes (the catalog rarely changes)
	if s.cache != nil {
		if data, err := json.Marshal(pois); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 300)
		}
	}

	return pois, nil
}

// Density counts catalog entries per category inside bounds, most
// saturated category first.
func (s *POIService) Density(ctx context.Context, bounds domain.Bounds) ([]domain.CategoryDensity, error) {
	cacheKey := fmt.Sprintf("pois:density:%.4f:%.4f:%.4f:%.4f",
		bounds.MinLat, bounds.MinLon, bounds.MaxLat, bounds.MaxLon)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var out []domain.CategoryDensity
			if err := json.Unmarshal(data, &out); err == nil {
				metrics.CacheHits.WithLabelValues("pois_density").Inc()
				return out, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("pois_density").Inc()
	}

	out, err := s.pois.DensityByCategory(ctx, bounds)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(out); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 600)
		}
	}

	return out, nil
}
