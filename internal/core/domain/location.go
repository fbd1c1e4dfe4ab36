package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Accuracy is the coarse confidence tier attached to a resolved location.
type Accuracy string

const (
	AccuracyHigh   Accuracy = "high"
	AccuracyMedium Accuracy = "medium"
	AccuracyLow    Accuracy = "low"
)

// LocationSource identifies which resolution strategy produced a record.
type LocationSource string

const (
	SourceGPS     LocationSource = "gps"
	SourceNetwork LocationSource = "network"
	SourceIP      LocationSource = "ip"
	SourceManual  LocationSource = "manual"
)

// LocationRecord is an immutable snapshot of a resolved position.
// Every resolution attempt produces a fresh record; none are mutated.
type LocationRecord struct {
	Lat       float64        `json:"lat"`
	Lon       float64        `json:"lon"`
	Address   string         `json:"address"`
	Accuracy  Accuracy       `json:"accuracy"`
	Source    LocationSource `json:"source"`
	Timestamp time.Time      `json:"timestamp"`
}

// Point returns the record's coordinate.
func (r LocationRecord) Point() GeoPoint {
	return GeoPoint{Lat: r.Lat, Lon: r.Lon}
}

// AccuracyFromMeters maps a device-reported precision radius to a tier.
func AccuracyFromMeters(m float64) Accuracy {
	switch {
	case m < 100:
		return AccuracyHigh
	case m < 1000:
		return AccuracyMedium
	default:
		return AccuracyLow
	}
}

// DevicePosition is a raw position reading from a device provider,
// before it is turned into a LocationRecord. Time is when the fix was
// taken; a zero Time means "now".
type DevicePosition struct {
	Point          GeoPoint
	AccuracyMeters float64
	Time           time.Time
}

// IPLocation is the parsed payload of an IP-geolocation lookup.
type IPLocation struct {
	Lat     float64 `json:"latitude"`
	Lon     float64 `json:"longitude"`
	City    string  `json:"city"`
	Region  string  `json:"region"`
	Country string  `json:"country_name"`
}

// UnmarshalJSON tolerates string-encoded coordinates; some providers
// quote their numerics. A missing or empty coordinate parses as 0 and
// gets rejected downstream by the null-island check.
func (l *IPLocation) UnmarshalJSON(data []byte) error {
	var aux struct {
		Lat     json.Number `json:"latitude"`
		Lon     json.Number `json:"longitude"`
		City    string      `json:"city"`
		Region  string      `json:"region"`
		Country string      `json:"country_name"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	l.City = aux.City
	l.Region = aux.Region
	l.Country = aux.Country
	if aux.Lat != "" {
		v, err := aux.Lat.Float64()
		if err != nil {
			return fmt.Errorf("parse latitude %q: %w", aux.Lat, err)
		}
		l.Lat = v
	}
	if aux.Lon != "" {
		v, err := aux.Lon.Float64()
		if err != nil {
			return fmt.Errorf("parse longitude %q: %w", aux.Lon, err)
		}
		l.Lon = v
	}
	return nil
}
