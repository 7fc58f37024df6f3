// Package handler exposes the dashboard-facing JSON API.  Handlers are
// thin callers: they validate parameters, delegate to the insight engine
// and translate sentinel errors into HTTP status codes.  No aggregation
// happens here.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/swim-insights/internal/model"
	"github.com/iliyamo/swim-insights/internal/repository"
	"github.com/iliyamo/swim-insights/internal/service"
)

// InsightsProvider is the slice of the insight engine the handlers
// consume.  *service.Insights satisfies it; tests substitute a mock.
type InsightsProvider interface {
	BusinessSnapshot(ctx context.Context, seasonID string) (*model.BusinessSnapshot, error)
	LocationInsights(ctx context.Context, locationID, seasonID string) (*model.LocationInsights, error)
	SeasonInsights(ctx context.Context, seasonID string) (*model.SeasonInsights, error)
	LessonTypeInsights(ctx context.Context, seasonID string) ([]model.LessonTypeInsights, error)
}

// InsightsHandler serves the aggregated reporting endpoints.
type InsightsHandler struct {
	Service InsightsProvider
}

// NewInsightsHandler constructs an InsightsHandler around the engine.
func NewInsightsHandler(svc InsightsProvider) *InsightsHandler {
	return &InsightsHandler{Service: svc}
}

// insightsError maps the service/repository error taxonomy onto HTTP
// responses: the not-found family becomes 404, malformed store records
// 422, anything else a generic 500.
func insightsError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrLocationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
	case errors.Is(err, repository.ErrSeasonNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "season not found"})
	case errors.Is(err, service.ErrNoActiveSeason):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no active season"})
	case errors.Is(err, repository.ErrPricingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "pricing not found"})
	case errors.Is(err, repository.ErrMalformedRecord):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
	}
}

// GetSnapshot serves GET /v1/insights/snapshot?season_id=...
// An omitted season_id defaults to the first active season.
func (h *InsightsHandler) GetSnapshot(c echo.Context) error {
	snapshot, err := h.Service.BusinessSnapshot(c.Request().Context(), c.QueryParam("season_id"))
	if err != nil {
		return insightsError(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// GetLocationInsights serves GET /v1/insights/locations/:id?season_id=...
// The season_id parameter is required.
func (h *InsightsHandler) GetLocationInsights(c echo.Context) error {
	seasonID := c.QueryParam("season_id")
	if seasonID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "season_id is required"})
	}
	insights, err := h.Service.LocationInsights(c.Request().Context(), c.Param("id"), seasonID)
	if err != nil {
		return insightsError(c, err)
	}
	return c.JSON(http.StatusOK, insights)
}

// GetSeasonInsights serves GET /v1/insights/seasons/:id.
func (h *InsightsHandler) GetSeasonInsights(c echo.Context) error {
	insights, err := h.Service.SeasonInsights(c.Request().Context(), c.Param("id"))
	if err != nil {
		return insightsError(c, err)
	}
	return c.JSON(http.StatusOK, insights)
}

// GetLessonTypes serves GET /v1/insights/lesson-types?season_id=...
// The season_id parameter is required.
func (h *InsightsHandler) GetLessonTypes(c echo.Context) error {
	seasonID := c.QueryParam("season_id")
	if seasonID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "season_id is required"})
	}
	breakdown, err := h.Service.LessonTypeInsights(c.Request().Context(), seasonID)
	if err != nil {
		return insightsError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": breakdown})
}
