package http

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
)

// AnalyzeHandler runs the full siting pipeline for one submission.
func AnalyzeHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req domain.AnalysisRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		if req.Location != nil && !req.Location.Point().Valid() {
			return errBadRequest(c, "location coordinate out of range")
		}
		for _, p := range req.Polygon {
			if !p.Valid() {
				return errBadRequest(c, "polygon vertex out of range")
			}
		}

		result, err := deps.Analyses.Analyze(c.Context(), req)
		if err != nil {
			slog.Error("analysis pipeline failed", "error", err)
			return errBadGateway(c, "Sorry, we could not complete the analysis right now. Please try again in a moment.")
		}

		return c.JSON(result)
	}
}

// ResolveLocationHandler runs the resolver cascade for the caller.
func ResolveLocationHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec := deps.Locations.Resolve(c.Context())
		return c.JSON(rec)
	}
}

// NearbyPOIsHandler returns points of interest within a radius of a point.
func NearbyPOIsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat := c.QueryFloat("lat", 0)
		lon := c.QueryFloat("lon", 0)
		radius := c.QueryFloat("radius", 2000)

		if lat == 0 && lon == 0 {
			return errBadRequest(c, "lat and lon are required")
		}
		if !(domain.GeoPoint{Lat: lat, Lon: lon}).Valid() {
			return errBadRequest(c, "lat and lon out of range")
		}
		if radius <= 0 || radius > 10000 {
			return errBadRequest(c, "radius must be between 1 and 10000 meters")
		}

		var categories []string
		if raw := c.Query("categories"); raw != "" {
			categories = strings.Split(raw, ",")
		}

		pois, err := deps.POIs.FindNearby(c.Context(), lat, lon, radius, categories)
		if err != nil {
			return errInternal(c, err.Error())
		}

		c.Set("Cache-Control", "public, max-age=300")
		return c.JSON(pois)
	}
}

// CityInsightHandler returns the configured city's profile and the
// prompt-ready context block.
func CityInsightHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"profile": deps.Insights.CityProfile(),
			"context": deps.Insights.CityContext(),
		})
	}
}

// OpportunityHandler returns the viability assessment for a category.
func OpportunityHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category")
		if category == "" {
			return errBadRequest(c, "category query parameter is required")
		}

		score := deps.Insights.Opportunity(category)
		return c.JSON(fiber.Map{
			"category": strings.ToLower(strings.TrimSpace(category)),
			"score":    score,
		})
	}
}

// HeatmapHandler returns per-category POI counts inside a bounding box.
func HeatmapHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bounds := domain.Bounds{
			MinLat: c.QueryFloat("min_lat", 0),
			MinLon: c.QueryFloat("min_lon", 0),
			MaxLat: c.QueryFloat("max_lat", 0),
			MaxLon: c.QueryFloat("max_lon", 0),
		}
		if bounds.MinLat >= bounds.MaxLat || bounds.MinLon >= bounds.MaxLon {
			return errBadRequest(c, "min_lat/min_lon must be less than max_lat/max_lon")
		}

		densities, err := deps.POIs.Density(c.Context(), bounds)
		if err != nil {
			return errInternal(c, err.Error())
		}

		return c.JSON(densities)
	}
}

// ListBusinessesHandler returns a filtered page of the LGU directory.
func ListBusinessesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.Businesses == nil {
			return errUnavailable(c, "business directory not available")
		}

		filter := domain.BusinessFilter{
			Category: c.Query("category"),
			Barangay: c.Query("barangay"),
			Query:    c.Query("q"),
		}
		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", 25)
		if offset < 0 {
			offset = 0
		}
		if limit <= 0 || limit > 100 {
			limit = 25
		}

		businesses, total, err := deps.Businesses.List(c.Context(), filter, offset, limit)
		if err != nil {
			return errInternal(c, err.Error())
		}

		pg := Pagination{Offset: offset, Limit: limit, Total: total}
		SetLinkHeaders(c, pg)
		return c.JSON(PaginatedResponse{Data: businesses, Pagination: pg})
	}
}

// GetBusinessHandler returns a single directory entry by ID.
func GetBusinessHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.Businesses == nil {
			return errUnavailable(c, "business directory not available")
		}

		id := c.Params("id")
		if id == "" {
			return errBadRequest(c, "business id is required")
		}

		b, err := deps.Businesses.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errNotFound(c, "business not found")
			}
			return errInternal(c, err.Error())
		}

		return c.JSON(b)
	}
}

// RegisterBusinessHandler inserts or updates a directory entry.
func RegisterBusinessHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.Businesses == nil {
			return errUnavailable(c, "business directory not available")
		}

		var b domain.Business
		if err := c.BodyParser(&b); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		if err := deps.Businesses.Register(c.Context(), &b); err != nil {
			return errBadRequest(c, err.Error())
		}

		return c.Status(201).JSON(b)
	}
}
