package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/core/ports"
	"github.com/kdeguzman/negosyoplan/internal/pkg/geospatial"
)

// nearbyRadiusMeters is how far around the effective location the
// composer looks for contextual points of interest.
const nearbyRadiusMeters = 2000

// ComposedPrompt is the output of the composer: the prompt text plus
// the derived facts the orchestrator reports on.
type ComposedPrompt struct {
	Text     string
	Category string
	Location domain.LocationRecord
}

// PromptComposer merges resolved location, lot geometry, city knowledge
// and the user's business parameters into one bounded analysis prompt.
type PromptComposer struct {
	locations *LocationService
	pois      ports.POIRepository
	insights  ports.InsightProvider
}

// NewPromptComposer wires the composer's inputs.
func NewPromptComposer(locations *LocationService, pois ports.POIRepository, insights ports.InsightProvider) *PromptComposer {
	return &PromptComposer{locations: locations, pois: pois, insights: insights}
}

// Compose builds the full analysis prompt. Knowledge-base failures
// degrade individual sections; only a nil composer input is fatal.
func (pc *PromptComposer) Compose(ctx context.Context, req domain.AnalysisRequest) (ComposedPrompt, error) {
	if pc.insights == nil {
		return ComposedPrompt{}, fmt.Errorf("insight provider not set")
	}

	loc := pc.effectiveLocation(ctx, req)
	category := CategoryFromCapital(req.Capital)
	profile := pc.insights.Profile()

	var b strings.Builder
	fmt.Fprintf(&b, "You are advising on a business siting decision in %s, %s, Philippines.\n\n", profile.Name, profile.Province)

	b.WriteString("CITY CONTEXT:\n")
	b.WriteString(pc.insights.CityContext())
	b.WriteString("\n\n")

	b.WriteString("LOCATION:\n")
	fmt.Fprintf(&b, "Address: %s\n", loc.Address)
	fmt.Fprintf(&b, "Coordinates: %.6f, %.6f (accuracy: %s, source: %s)\n\n", loc.Lat, loc.Lon, loc.Accuracy, loc.Source)

	if req.HasPolygon() {
		poly := geospatial.NewPolygon(req.Polygon)
		b.WriteString("LOT BOUNDARY:\n")
		fmt.Fprintf(&b, "Vertices: %d\n", len(poly.Coordinates))
		fmt.Fprintf(&b, "Area: %.1f sq meters\n", poly.AreaSqMeters)
		fmt.Fprintf(&b, "Perimeter: %.1f meters\n", poly.PerimeterMeters)
		fmt.Fprintf(&b, "Approximate center: %.6f, %.6f\n\n", poly.Center.Lat, poly.Center.Lon)
	}

	if section := pc.nearbySection(ctx, loc.Point()); section != "" {
		b.WriteString(section)
	}

	b.WriteString("BUSINESS PARAMETERS:\n")
	writeParam(&b, "Available capital", req.Capital)
	writeParam(&b, "Operating hours", req.OperatingHours)
	writeParam(&b, "Lot size", req.LotSize)
	b.WriteString("\n")

	score := pc.insights.Opportunity(category)
	fmt.Fprintf(&b, "CATEGORY OUTLOOK (%s):\n", category)
	fmt.Fprintf(&b, "Suitability: %d/10\n", score.Suitability)
	fmt.Fprintf(&b, "Competition: %s\n", score.Competition)
	fmt.Fprintf(&b, "Market potential: %s\n", score.MarketPotential)
	for _, rec := range score.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}
	b.WriteString("\n")

	b.WriteString("TASK:\n")
	fmt.Fprintf(&b, "Assess the viability of opening a business at this site. Structure the answer as six numbered sections:\n")
	b.WriteString("1. Location Analysis - strengths and weaknesses of the site itself\n")
	b.WriteString("2. Market Opportunities - unmet demand the parameters could capture\n")
	b.WriteString("3. Investment Recommendations - how to deploy the stated capital\n")
	b.WriteString("4. Operational Considerations - hours, staffing, permits, logistics\n")
	b.WriteString("5. Risk Assessment - competition, traffic, regulatory exposure\n")
	b.WriteString("6. Growth Potential - expansion paths within the city\n")
	fmt.Fprintf(&b, "Frame every recommendation for %s specifically, not for the Philippines in general.", profile.Name)

	return ComposedPrompt{Text: b.String(), Category: category, Location: loc}, nil
}

// Fallback builds the minimal retry prompt from the user parameters
// alone, with no location or knowledge-base enrichment.
func (pc *PromptComposer) Fallback(req domain.AnalysisRequest) string {
	var b strings.Builder
	b.WriteString("Assess the viability of a small business in a Philippine city given these parameters.\n\n")
	writeParam(&b, "Available capital", req.Capital)
	writeParam(&b, "Operating hours", req.OperatingHours)
	writeParam(&b, "Lot size", req.LotSize)
	b.WriteString("\nCover location criteria to look for, market opportunities, investment recommendations, operational considerations, risks, and growth potential, in that order.")
	return b.String()
}

// effectiveLocation prefers a usable request location over the cascade.
func (pc *PromptComposer) effectiveLocation(ctx context.Context, req domain.AnalysisRequest) domain.LocationRecord {
	if req.Location != nil && !req.Location.Point().IsZero() && req.Location.Point().Valid() {
		return *req.Location
	}
	if pc.locations == nil {
		return NewLocationService().Resolve(ctx)
	}
	return pc.locations.Resolve(ctx)
}

func (pc *PromptComposer) nearbySection(ctx context.Context, center domain.GeoPoint) string {
	if pc.pois == nil {
		return ""
	}
	pois, err := pc.pois.FindNearby(ctx, center, nearbyRadiusMeters, nil)
	if err != nil {
		slog.Warn("nearby lookup failed, omitting section", "error", err)
		return ""
	}
	if len(pois) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("NEARBY POINTS OF INTEREST (within 2 km):\n")
	for _, poi := range pois {
		fmt.Fprintf(&b, "- %s (%s, %.0f m away)", poi.Name, poi.Type, poi.Distance)
		if poi.Significance != "" {
			fmt.Fprintf(&b, ": %s", poi.Significance)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// CategoryFromCapital maps a capital amount to a coarse business
// category used only to select opportunity flavor text. Thresholds are
// checked highest first; the first match wins.
func CategoryFromCapital(capital string) string {
	amount := parseAmount(capital)
	switch {
	case amount >= 1_000_000:
		return "restaurant"
	case amount >= 500_000:
		return "retail"
	case amount >= 100_000:
		return "food_truck"
	default:
		return "services"
	}
}

// parseAmount extracts the numeric value from a freeform peso string
// like "₱1,200,000" or "1.2M is my budget". Only digits are kept; a
// string with no digits parses as 0.
func parseAmount(s string) int64 {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func writeParam(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		value = "not specified"
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
