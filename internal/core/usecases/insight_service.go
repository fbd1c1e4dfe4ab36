package usecases

import (
	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/core/ports"
)

// InsightService exposes the static city intelligence to the API layer.
type InsightService struct {
	insights ports.InsightProvider
}

// NewInsightService creates a new InsightService.
func NewInsightService(insights ports.InsightProvider) *InsightService {
	return &InsightService{insights: insights}
}

// CityProfile returns the configured city's profile.
func (s *InsightService) CityProfile() domain.CityProfile {
	return s.insights.Profile()
}

// CityContext returns the prompt-ready city context block.
func (s *InsightService) CityContext() string {
	return s.insights.CityContext()
}

// Opportunity returns the viability assessment for a category. Unknown
// categories yield the generic default.
func (s *InsightService) Opportunity(category string) domain.OpportunityScore {
	return s.insights.Opportunity(category)
}
