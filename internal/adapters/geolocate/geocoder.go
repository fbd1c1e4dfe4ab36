package geolocate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
)

const geocodeTimeout = 5 * time.Second

// GoogleGeocoder turns coordinates into formatted addresses via the
// Google Maps Geocoding API. It implements ports.ReverseGeocoder.
type GoogleGeocoder struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewGoogleGeocoder creates a reverse geocoder. baseURL defaults to the
// public Geocoding API when empty.
func NewGoogleGeocoder(baseURL, apiKey string, httpClient *http.Client) *GoogleGeocoder {
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: geocodeTimeout}
	}
	return &GoogleGeocoder{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient}
}

// ReverseGeocode returns the formatted address of the first result.
func (g *GoogleGeocoder) ReverseGeocode(ctx context.Context, p domain.GeoPoint) (string, error) {
	q := url.Values{}
	q.Set("latlng", fmt.Sprintf("%f,%f", p.Lat, p.Lon))
	q.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create geocode request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read geocode response: %w", err)
	}

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("parse geocode response: %w", err)
	}
	if payload.Status != "OK" || len(payload.Results) == 0 {
		return "", fmt.Errorf("reverse geocode found no address (status %s)", payload.Status)
	}
	return payload.Results[0].FormattedAddress, nil
}
