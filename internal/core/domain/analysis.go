package domain

import "time"

// AnalysisRequest carries one siting submission from the client app.
// Location and Polygon are both optional: a missing location triggers
// the resolver cascade, a polygon with fewer than three vertices is
// treated as absent.
type AnalysisRequest struct {
	Location       *LocationRecord `json:"location,omitempty"`
	Polygon        []GeoPoint      `json:"polygon,omitempty"`
	LotSize        string          `json:"lot_size,omitempty"`
	Capital        string          `json:"capital,omitempty"`
	OperatingHours string          `json:"operating_hours,omitempty"`
}

// HasPolygon reports whether the request carries a usable lot boundary.
func (r AnalysisRequest) HasPolygon() bool {
	return len(r.Polygon) >= 3
}

// AnalysisResult is the outcome of one pipeline run.
type AnalysisResult struct {
	RawText  string `json:"raw_text"`
	HTML     string `json:"html"`
	Fallback bool   `json:"fallback"` // true when the minimal retry prompt produced this
}

// AnalysisEvent is published after a pipeline run completes.
type AnalysisEvent struct {
	Time     time.Time      `json:"time"`
	Source   LocationSource `json:"source,omitempty"`
	Category string         `json:"category,omitempty"`
	Fallback bool           `json:"fallback"`
	Chars    int            `json:"chars"`
}
