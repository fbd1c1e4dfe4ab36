package geolocate_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kdeguzman/negosyoplan/internal/adapters/geolocate"
	"github.com/kdeguzman/negosyoplan/internal/core/domain"
)

func TestIPAPIClient_Locate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"latitude":14.2117,"longitude":121.1653,"city":"Calamba","region":"Calabarzon","country_name":"Philippines"}`))
	}))
	defer srv.Close()

	c := geolocate.NewIPAPIClient(srv.URL, srv.Client())
	loc, err := c.Locate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Lat != 14.2117 || loc.Lon != 121.1653 {
		t.Errorf("unexpected coordinates: %f, %f", loc.Lat, loc.Lon)
	}
	if loc.City != "Calamba" || loc.Country != "Philippines" {
		t.Errorf("unexpected place fields: %+v", loc)
	}
}

func TestIPAPIClient_StringEncodedCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"latitude":"14.2117","longitude":"121.1653","city":"Calamba","country_name":"Philippines"}`))
	}))
	defer srv.Close()

	c := geolocate.NewIPAPIClient(srv.URL, srv.Client())
	loc, err := c.Locate(context.Background())
	if err != nil {
		t.Fatalf("quoted numerics must still parse: %v", err)
	}
	if loc.Lat != 14.2117 || loc.Lon != 121.1653 {
		t.Errorf("unexpected coordinates: %f, %f", loc.Lat, loc.Lon)
	}
	if loc.City != "Calamba" {
		t.Errorf("unexpected city: %s", loc.City)
	}
}

func TestIPAPIClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := geolocate.NewIPAPIClient(srv.URL, srv.Client())
	if _, err := c.Locate(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestGoogleGeocoder_ReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("latlng") == "" {
			t.Error("latlng query parameter missing")
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("unexpected api key: %s", r.URL.Query().Get("key"))
		}
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"Rizal Blvd, Santa Rosa, Laguna, Philippines"}]}`))
	}))
	defer srv.Close()

	g := geolocate.NewGoogleGeocoder(srv.URL, "test-key", srv.Client())
	addr, err := g.ReverseGeocode(context.Background(), domain.GeoPoint{Lat: 14.3131, Lon: 121.1139})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != "Rizal Blvd, Santa Rosa, Laguna, Philippines" {
		t.Errorf("unexpected address: %q", addr)
	}
}

func TestGoogleGeocoder_ZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	g := geolocate.NewGoogleGeocoder(srv.URL, "test-key", srv.Client())
	if _, err := g.ReverseGeocode(context.Background(), domain.GeoPoint{Lat: 0.1, Lon: 0.1}); err == nil {
		t.Fatal("expected error when no address is found")
	}
}

type fakeCache struct {
	store map[string][]byte
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := f.store[key]; ok {
		return v, nil
	}
	return nil, errors.New("miss")
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	if f.store == nil {
		f.store = make(map[string][]byte)
	}
	f.store[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

type fakeLocator struct {
	calls int
	loc   domain.IPLocation
	err   error
}

func (f *fakeLocator) Locate(ctx context.Context) (domain.IPLocation, error) {
	f.calls++
	return f.loc, f.err
}

func TestCachedIPLocator(t *testing.T) {
	inner := &fakeLocator{loc: domain.IPLocation{Lat: 14.2117, Lon: 121.1653, City: "Calamba"}}
	c := geolocate.NewCachedIPLocator(inner, &fakeCache{})

	for i := 0; i < 3; i++ {
		loc, err := c.Locate(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loc.City != "Calamba" {
			t.Errorf("unexpected location: %+v", loc)
		}
	}
	if inner.calls != 1 {
		t.Errorf("expected one upstream lookup, got %d", inner.calls)
	}
}

func TestCachedIPLocator_FailureNotCached(t *testing.T) {
	inner := &fakeLocator{err: errors.New("rate limited")}
	cache := &fakeCache{}
	c := geolocate.NewCachedIPLocator(inner, cache)

	if _, err := c.Locate(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(cache.store) != 0 {
		t.Errorf("failures must not be cached: %v", cache.store)
	}
	if _, err := c.Locate(context.Background()); err == nil {
		t.Fatal("expected error on retry")
	}
	if inner.calls != 2 {
		t.Errorf("expected upstream retried, got %d calls", inner.calls)
	}
}

func TestStaticProvider(t *testing.T) {
	if _, err := geolocate.NewStaticProvider(200, 500, 10); err == nil {
		t.Error("out-of-range static position must be rejected")
	}
	if _, err := geolocate.NewStaticProvider(0, 0, 10); err == nil {
		t.Error("null island static position must be rejected")
	}

	sp, err := geolocate.NewStaticProvider(14.3131, 121.1139, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos, err := sp.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Point.Lat != 14.3131 || pos.Point.Lon != 121.1139 {
		t.Errorf("unexpected position: %+v", pos.Point)
	}
	if time.Since(pos.Time) > time.Minute {
		t.Error("fix time should be fresh")
	}
}
