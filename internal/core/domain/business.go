package domain

import "time"

// Business is a registered establishment in the LGU directory.
type Business struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Barangay   string    `json:"barangay"`
	Address    string    `json:"address,omitempty"`
	Location   GeoPoint  `json:"location"`
	Contact    string    `json:"contact,omitempty"`
	PermitYear int       `json:"permit_year"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// BusinessFilter narrows directory listings.
type BusinessFilter struct {
	Category string
	Barangay string
	Query    string // substring match on name
}
