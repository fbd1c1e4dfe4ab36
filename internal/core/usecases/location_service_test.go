package usecases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/core/usecases"
)

// --- Mock providers ---

type mockPositions struct {
	fn func(ctx context.Context) (domain.DevicePosition, error)
}

func (m *mockPositions) CurrentPosition(ctx context.Context) (domain.DevicePosition, error) {
	return m.fn(ctx)
}

type mockGeocoder struct {
	fn func(ctx context.Context, p domain.GeoPoint) (string, error)
}

func (m *mockGeocoder) ReverseGeocode(ctx context.Context, p domain.GeoPoint) (string, error) {
	return m.fn(ctx, p)
}

type mockIPLocator struct {
	fn func(ctx context.Context) (domain.IPLocation, error)
}

func (m *mockIPLocator) Locate(ctx context.Context) (domain.IPLocation, error) {
	return m.fn(ctx)
}

// --- Tests ---

func TestResolve_NoProvidersFallsBackToManila(t *testing.T) {
	svc := usecases.NewLocationService()

	rec := svc.Resolve(context.Background())
	if rec.Source != domain.SourceManual {
		t.Errorf("expected manual source, got %s", rec.Source)
	}
	if rec.Accuracy != domain.AccuracyLow {
		t.Errorf("expected low accuracy, got %s", rec.Accuracy)
	}
	if rec.Lat != 14.5995 || rec.Lon != 120.9842 {
		t.Errorf("expected Manila fallback, got (%f, %f)", rec.Lat, rec.Lon)
	}
	if rec.Address != "Manila, Philippines" {
		t.Errorf("unexpected address: %s", rec.Address)
	}
	if rec.Timestamp.IsZero() {
		t.Error("expected timestamp set")
	}
}

func TestResolve_AllStrategiesFailStillReturnsFallback(t *testing.T) {
	svc := usecases.NewLocationService(
		usecases.WithPositionProvider(&mockPositions{fn: func(ctx context.Context) (domain.DevicePosition, error) {
			return domain.DevicePosition{}, errors.New("no fix")
		}}),
		usecases.WithIPLocator(&mockIPLocator{fn: func(ctx context.Context) (domain.IPLocation, error) {
			return domain.IPLocation{}, errors.New("upstream down")
		}}),
	)

	rec := svc.Resolve(context.Background())
	if rec.Source != domain.SourceManual || rec.Accuracy != domain.AccuracyLow {
		t.Errorf("expected manual/low terminal fallback, got %s/%s", rec.Source, rec.Accuracy)
	}
}

func TestResolve_DevicePositionWins(t *testing.T) {
	svc := usecases.NewLocationService(
		usecases.WithPositionProvider(&mockPositions{fn: func(ctx context.Context) (domain.DevicePosition, error) {
			return domain.DevicePosition{
				Point:          domain.GeoPoint{Lat: 14.3131, Lon: 121.1139},
				AccuracyMeters: 20,
				Time:           time.Now(),
			}, nil
		}}),
		usecases.WithReverseGeocoder(&mockGeocoder{fn: func(ctx context.Context, p domain.GeoPoint) (string, error) {
			return "City Hall Complex, Santa Rosa, Laguna", nil
		}}),
		usecases.WithIPLocator(&mockIPLocator{fn: func(ctx context.Context) (domain.IPLocation, error) {
			t.Error("ip locator must not be consulted when the device fix succeeds")
			return domain.IPLocation{}, nil
		}}),
	)

	rec := svc.Resolve(context.Background())
	if rec.Source != domain.SourceGPS {
		t.Errorf("expected gps source, got %s", rec.Source)
	}
	if rec.Accuracy != domain.AccuracyHigh {
		t.Errorf("20 m fix should be high accuracy, got %s", rec.Accuracy)
	}
	if rec.Address != "City Hall Complex, Santa Rosa, Laguna" {
		t.Errorf("unexpected address: %s", rec.Address)
	}
}

func TestResolve_AccuracyTiers(t *testing.T) {
	cases := []struct {
		meters float64
		want   domain.Accuracy
	}{
		{50, domain.AccuracyHigh},
		{99.9, domain.AccuracyHigh},
		{100, domain.AccuracyMedium},
		{999, domain.AccuracyMedium},
		{1000, domain.AccuracyLow},
		{5000, domain.AccuracyLow},
	}
	for _, tc := range cases {
		if got := domain.AccuracyFromMeters(tc.meters); got != tc.want {
			t.Errorf("AccuracyFromMeters(%f) = %s, want %s", tc.meters, got, tc.want)
		}
	}
}

func TestResolve_StaleDeviceFixFallsThrough(t *testing.T) {
	svc := usecases.NewLocationService(
		usecases.WithPositionProvider(&mockPositions{fn: func(ctx context.Context) (domain.DevicePosition, error) {
			return domain.DevicePosition{
				Point:          domain.GeoPoint{Lat: 14.3131, Lon: 121.1139},
				AccuracyMeters: 20,
				Time:           time.Now().Add(-10 * time.Minute),
			}, nil
		}}),
		usecases.WithIPLocator(&mockIPLocator{fn: func(ctx context.Context) (domain.IPLocation, error) {
			return domain.IPLocation{Lat: 14.2, Lon: 121.0, City: "Calamba", Region: "Laguna", Country: "Philippines"}, nil
		}}),
	)

	rec := svc.Resolve(context.Background())
	if rec.Source != domain.SourceIP {
		t.Errorf("stale device fix should fall through to ip, got %s", rec.Source)
	}
	if rec.Accuracy != domain.AccuracyMedium {
		t.Errorf("ip resolutions are medium accuracy, got %s", rec.Accuracy)
	}
	if rec.Address != "Calamba, Laguna, Philippines" {
		t.Errorf("unexpected composed address: %s", rec.Address)
	}
}

func TestResolve_NullIslandDeviceFixRejected(t *testing.T) {
	svc := usecases.NewLocationService(
		usecases.WithPositionProvider(&mockPositions{fn: func(ctx context.Context) (domain.DevicePosition, error) {
			return domain.DevicePosition{Point: domain.GeoPoint{}, AccuracyMeters: 10, Time: time.Now()}, nil
		}}),
	)

	rec := svc.Resolve(context.Background())
	if rec.Source != domain.SourceManual {
		t.Errorf("zero coordinate must not win, got source %s", rec.Source)
	}
}

func TestResolve_IPWithPartialAddress(t *testing.T) {
	svc := usecases.NewLocationService(
		usecases.WithIPLocator(&mockIPLocator{fn: func(ctx context.Context) (domain.IPLocation, error) {
			return domain.IPLocation{Lat: 14.55, Lon: 121.03, City: "", Region: "", Country: "Philippines"}, nil
		}}),
	)

	rec := svc.Resolve(context.Background())
	if rec.Source != domain.SourceIP {
		t.Fatalf("expected ip source, got %s", rec.Source)
	}
	if rec.Address != "Philippines" {
		t.Errorf("expected blank parts skipped, got %q", rec.Address)
	}
}

func TestResolve_CustomFallback(t *testing.T) {
	svc := usecases.NewLocationService(
		usecases.WithFallbackLocation(domain.GeoPoint{Lat: 14.3131, Lon: 121.1139}, "Santa Rosa City Hall"),
	)

	rec := svc.Resolve(context.Background())
	if rec.Lat != 14.3131 || rec.Lon != 121.1139 || rec.Address != "Santa Rosa City Hall" {
		t.Errorf("custom fallback not honored: %+v", rec)
	}
}
