package http

import (
	"github.com/nats-io/nats.go"

	"github.com/kdeguzman/negosyoplan/internal/adapters/postgres"
	"github.com/kdeguzman/negosyoplan/internal/adapters/valkey"
	"github.com/kdeguzman/negosyoplan/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Analyses   *usecases.AnalysisService
	Locations  *usecases.LocationService
	POIs       *usecases.POIService
	Insights   *usecases.InsightService
	Businesses *usecases.BusinessService
	NATS       *nats.Conn
	DB         *postgres.DB
	Cache      *valkey.Cache
}
