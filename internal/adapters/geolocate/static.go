package geolocate

import (
	"context"
	"fmt"
	"time"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
)

// StaticProvider reports a fixed position from configuration. Kiosk
// installs inside city hall or a public market wire this so resolutions
// land on the kiosk's actual site instead of the datacenter's IP.
type StaticProvider struct {
	point    domain.GeoPoint
	accuracy float64
}

// NewStaticProvider creates a fixed-position provider.
func NewStaticProvider(lat, lon, accuracyMeters float64) (*StaticProvider, error) {
	p := domain.GeoPoint{Lat: lat, Lon: lon}
	if !p.Valid() || p.IsZero() {
		return nil, fmt.Errorf("static position (%f, %f) out of range", lat, lon)
	}
	return &StaticProvider{point: p, accuracy: accuracyMeters}, nil
}

// CurrentPosition implements ports.PositionProvider. The fix time is
// always now, so staleness checks never reject it.
func (s *StaticProvider) CurrentPosition(ctx context.Context) (domain.DevicePosition, error) {
	return domain.DevicePosition{
		Point:          s.point,
		AccuracyMeters: s.accuracy,
		Time:           time.Now(),
	}, nil
}
