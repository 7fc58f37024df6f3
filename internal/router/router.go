// Package router wires HTTP routes to their handlers.  All reporting
// endpoints live under /v1; the health check sits at the root so probes
// do not pass through the rate limiter.
package router

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/swim-insights/internal/handler"
)

// Register mounts every route of the insights API on the provided Echo
// instance.  The optional limit middleware is applied to the /v1 group
// only, keeping /healthz reachable for load balancers under all
// conditions.
func Register(e *echo.Echo, insights *handler.InsightsHandler, catalog *handler.CatalogHandler, ping func(context.Context) error, limit echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health(ping))

	v1 := e.Group("/v1")
	if limit != nil {
		v1.Use(limit)
	}

	// Aggregated reports consumed by the dashboard.
	v1.GET("/insights/snapshot", insights.GetSnapshot)
	v1.GET("/insights/locations/:id", insights.GetLocationInsights)
	v1.GET("/insights/seasons/:id", insights.GetSeasonInsights)
	v1.GET("/insights/lesson-types", insights.GetLessonTypes)

	// Raw listings used by the dashboard's pickers.
	v1.GET("/locations", catalog.GetLocations)
	v1.GET("/locations/:id", catalog.GetLocation)
	v1.GET("/seasons", catalog.GetSeasons)
	v1.GET("/pricing", catalog.GetPricing)
}
