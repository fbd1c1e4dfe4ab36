package usecases

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/core/ports"
	"github.com/kdeguzman/negosyoplan/internal/pkg/metrics"
)

const (
	// devicePositionTimeout bounds how long we wait for a device fix.
	devicePositionTimeout = 15 * time.Second

	// devicePositionMaxAge rejects cached device fixes older than this.
	devicePositionMaxAge = 5 * time.Minute

	// unknownAddress is used when reverse geocoding yields nothing.
	unknownAddress = "Unknown location"
)

// LocationService resolves the caller's position through an ordered
// cascade: device position, IP geolocation, then a fixed fallback.
// Resolve never fails; the cascade terminates in a guaranteed default.
type LocationService struct {
	positions ports.PositionProvider // optional
	geocoder  ports.ReverseGeocoder  // optional
	iplocator ports.IPLocator        // optional

	fallbackPoint   domain.GeoPoint
	fallbackAddress string

	now func() time.Time
}

// LocationServiceOption configures a LocationService.
type LocationServiceOption func(*LocationService)

// WithPositionProvider wires a device-position source.
func WithPositionProvider(p ports.PositionProvider) LocationServiceOption {
	return func(s *LocationService) { s.positions = p }
}

// WithReverseGeocoder wires an address lookup for device fixes.
func WithReverseGeocoder(g ports.ReverseGeocoder) LocationServiceOption {
	return func(s *LocationService) { s.geocoder = g }
}

// WithIPLocator wires the IP-geolocation fallback.
func WithIPLocator(l ports.IPLocator) LocationServiceOption {
	return func(s *LocationService) { s.iplocator = l }
}

// WithFallbackLocation overrides the terminal fallback coordinate.
func WithFallbackLocation(p domain.GeoPoint, address string) LocationServiceOption {
	return func(s *LocationService) {
		s.fallbackPoint = p
		s.fallbackAddress = address
	}
}

// NewLocationService creates a resolver. With no options it still works:
// every Resolve returns the Manila fallback record.
func NewLocationService(opts ...LocationServiceOption) *LocationService {
	s := &LocationService{
		fallbackPoint:   domain.GeoPoint{Lat: 14.5995, Lon: 120.9842},
		fallbackAddress: "Manila, Philippines",
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve runs the cascade and always returns a usable record. Strategy
// failures are logged and swallowed; callers never see an error.
func (s *LocationService) Resolve(ctx context.Context) domain.LocationRecord {
	if rec, ok := s.fromDevice(ctx); ok {
		metrics.LocationResolutions.WithLabelValues(string(rec.Source)).Inc()
		return rec
	}

	if rec, ok := s.fromIP(ctx); ok {
		metrics.LocationResolutions.WithLabelValues(string(rec.Source)).Inc()
		return rec
	}

	metrics.LocationResolutions.WithLabelValues(string(domain.SourceManual)).Inc()
	return domain.LocationRecord{
		Lat:       s.fallbackPoint.Lat,
		Lon:       s.fallbackPoint.Lon,
		Address:   s.fallbackAddress,
		Accuracy:  domain.AccuracyLow,
		Source:    domain.SourceManual,
		Timestamp: s.now(),
	}
}

func (s *LocationService) fromDevice(ctx context.Context) (domain.LocationRecord, bool) {
	if s.positions == nil {
		return domain.LocationRecord{}, false
	}

	posCtx, cancel := context.WithTimeout(ctx, devicePositionTimeout)
	defer cancel()

	pos, err := s.positions.CurrentPosition(posCtx)
	if err != nil {
		slog.Warn("device position unavailable, falling through", "error", err)
		return domain.LocationRecord{}, false
	}
	if !pos.Point.Valid() || pos.Point.IsZero() {
		slog.Warn("device position out of range, falling through",
			"lat", pos.Point.Lat, "lon", pos.Point.Lon)
		return domain.LocationRecord{}, false
	}
	if !pos.Time.IsZero() && s.now().Sub(pos.Time) > devicePositionMaxAge {
		slog.Warn("device position stale, falling through", "age", s.now().Sub(pos.Time).String())
		return domain.LocationRecord{}, false
	}

	return domain.LocationRecord{
		Lat:       pos.Point.Lat,
		Lon:       pos.Point.Lon,
		Address:   s.addressFor(ctx, pos.Point),
		Accuracy:  domain.AccuracyFromMeters(pos.AccuracyMeters),
		Source:    domain.SourceGPS,
		Timestamp: s.now(),
	}, true
}

func (s *LocationService) fromIP(ctx context.Context) (domain.LocationRecord, bool) {
	if s.iplocator == nil {
		return domain.LocationRecord{}, false
	}

	loc, err := s.iplocator.Locate(ctx)
	if err != nil {
		slog.Warn("ip geolocation failed, falling through", "error", err)
		return domain.LocationRecord{}, false
	}
	p := domain.GeoPoint{Lat: loc.Lat, Lon: loc.Lon}
	if !p.Valid() || p.IsZero() {
		slog.Warn("ip geolocation returned unusable coordinate, falling through")
		return domain.LocationRecord{}, false
	}

	address := composeAddress(loc.City, loc.Region, loc.Country)
	if address == "" {
		address = unknownAddress
	}

	return domain.LocationRecord{
		Lat:       loc.Lat,
		Lon:       loc.Lon,
		Address:   address,
		Accuracy:  domain.AccuracyMedium,
		Source:    domain.SourceIP,
		Timestamp: s.now(),
	}, true
}

// addressFor reverse-geocodes best-effort; failures degrade to a
// placeholder, never to an error.
func (s *LocationService) addressFor(ctx context.Context, p domain.GeoPoint) string {
	if s.geocoder == nil {
		return unknownAddress
	}
	addr, err := s.geocoder.ReverseGeocode(ctx, p)
	if err != nil || addr == "" {
		if err != nil {
			slog.Warn("reverse geocode failed", "error", err)
		}
		return unknownAddress
	}
	return addr
}

func composeAddress(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
