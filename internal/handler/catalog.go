package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/swim-insights/internal/model"
)

// The catalog interfaces cover the raw listings the dashboard uses for
// its season and location pickers.  The concrete repositories satisfy
// them.
type LocationCatalog interface {
	List(ctx context.Context, includeInactive bool) ([]model.Location, error)
	Get(ctx context.Context, id string) (*model.Location, error)
}

type SeasonCatalog interface {
	List(ctx context.Context, activeOnly bool) ([]model.Season, error)
}

type PricingCatalog interface {
	Get(ctx context.Context) (*model.Pricing, error)
}

// CatalogHandler serves unaggregated entity listings.
type CatalogHandler struct {
	Locations LocationCatalog
	Seasons   SeasonCatalog
	Pricing   PricingCatalog
}

// NewCatalogHandler constructs a CatalogHandler over the repositories.
func NewCatalogHandler(locations LocationCatalog, seasons SeasonCatalog, pricing PricingCatalog) *CatalogHandler {
	return &CatalogHandler{Locations: locations, Seasons: seasons, Pricing: pricing}
}

// boolParam parses an optional boolean query parameter, falling back to
// def when absent or unparseable.
func boolParam(c echo.Context, name string, def bool) bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// GetLocations serves GET /v1/locations?include_inactive=...
// Inactive locations are excluded unless include_inactive is true.
func (h *CatalogHandler) GetLocations(c echo.Context) error {
	locations, err := h.Locations.List(c.Request().Context(), boolParam(c, "include_inactive", false))
	if err != nil {
		return insightsError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": locations})
}

// GetLocation serves GET /v1/locations/:id.
func (h *CatalogHandler) GetLocation(c echo.Context) error {
	location, err := h.Locations.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return insightsError(c, err)
	}
	return c.JSON(http.StatusOK, location)
}

// GetSeasons serves GET /v1/seasons?active_only=...
// Seasons come back ordered by start date ascending.
func (h *CatalogHandler) GetSeasons(c echo.Context) error {
	seasons, err := h.Seasons.List(c.Request().Context(), boolParam(c, "active_only", false))
	if err != nil {
		return insightsError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": seasons})
}

// GetPricing serves GET /v1/pricing, the business-wide price table.
func (h *CatalogHandler) GetPricing(c echo.Context) error {
	pricing, err := h.Pricing.Get(c.Request().Context())
	if err != nil {
		return insightsError(c, err)
	}
	return c.JSON(http.StatusOK, pricing)
}
