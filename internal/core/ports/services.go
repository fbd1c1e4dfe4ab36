package ports

import (
	"context"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
)

// PositionProvider reports a device-grade position fix. Server
// deployments usually have none; mobile clients submit their own
// coordinates and kiosk installs wire a fixed provider.
type PositionProvider interface {
	CurrentPosition(ctx context.Context) (domain.DevicePosition, error)
}

// ReverseGeocoder turns a coordinate into a human-readable address.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, p domain.GeoPoint) (string, error)
}

// IPLocator estimates the caller's position from its public IP.
type IPLocator interface {
	Locate(ctx context.Context) (domain.IPLocation, error)
}

// ChatCompleter sends one composed prompt to a hosted chat-completion
// API and returns the full response text.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CacheService provides read-through caching.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	PublishAnalysis(ctx context.Context, evt *domain.AnalysisEvent) error
	PublishBroadcast(ctx context.Context, data []byte) error
}
