// Package geolocate holds the outbound location adapters: IP
// geolocation, reverse geocoding, and the fixed-position provider used
// by kiosk installs.
package geolocate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
)

const ipapiTimeout = 5 * time.Second

// IPAPIClient resolves the server's public IP to a coarse location via
// an ipapi.co-style JSON endpoint. It implements ports.IPLocator.
type IPAPIClient struct {
	url        string
	httpClient *http.Client
}

// NewIPAPIClient creates an IP geolocation client. url should point at
// the JSON endpoint, e.g. "https://ipapi.co/json/".
func NewIPAPIClient(url string, httpClient *http.Client) *IPAPIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: ipapiTimeout}
	}
	return &IPAPIClient{url: url, httpClient: httpClient}
}

// Locate fetches and parses the caller's IP-derived location.
func (c *IPAPIClient) Locate(ctx context.Context) (domain.IPLocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.IPLocation{}, fmt.Errorf("create geolocation request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.IPLocation{}, fmt.Errorf("ip geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.IPLocation{}, fmt.Errorf("ip geolocation returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.IPLocation{}, fmt.Errorf("read geolocation response: %w", err)
	}

	var loc domain.IPLocation
	if err := json.Unmarshal(body, &loc); err != nil {
		return domain.IPLocation{}, fmt.Errorf("parse geolocation response: %w", err)
	}
	return loc, nil
}
