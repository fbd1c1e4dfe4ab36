package geolocate

import (
	"context"
	"encoding/json"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/core/ports"
	"github.com/kdeguzman/negosyoplan/internal/pkg/metrics"
)

const (
	ipLocationCacheKey = "ipgeo:self"
	ipLocationCacheTTL = 900
)

// CachedIPLocator wraps an IPLocator with read-through caching. The
// server's public IP moves rarely, so one lookup serves many resolver
// runs and spares the rate-limited upstream.
type CachedIPLocator struct {
	inner ports.IPLocator
	cache ports.CacheService
}

// NewCachedIPLocator wraps inner with cache.
func NewCachedIPLocator(inner ports.IPLocator, cache ports.CacheService) *CachedIPLocator {
	return &CachedIPLocator{inner: inner, cache: cache}
}

// Locate returns the cached IP location when present, refreshing it from
// the wrapped locator otherwise. Lookup failures are never cached.
func (c *CachedIPLocator) Locate(ctx context.Context) (domain.IPLocation, error) {
	if cached, err := c.cache.Get(ctx, ipLocationCacheKey); err == nil {
		var loc domain.IPLocation
		if err := json.Unmarshal(cached, &loc); err == nil {
			metrics.CacheHits.WithLabelValues("ipgeo").Inc()
			return loc, nil
		}
	}
	metrics.CacheMisses.WithLabelValues("ipgeo").Inc()

	loc, err := c.inner.Locate(ctx)
	if err != nil {
		return domain.IPLocation{}, err
	}
	if data, err := json.Marshal(loc); err == nil {
		_ = c.cache.Set(ctx, ipLocationCacheKey, data, ipLocationCacheTTL)
	}
	return loc, nil
}
