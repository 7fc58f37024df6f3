package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/swim-insights/internal/model"
	"github.com/iliyamo/swim-insights/internal/repository"
	"github.com/iliyamo/swim-insights/internal/service"
)

// mockInsights satisfies InsightsProvider for handler tests.
type mockInsights struct {
	mock.Mock
}

func (m *mockInsights) BusinessSnapshot(ctx context.Context, seasonID string) (*model.BusinessSnapshot, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessSnapshot), args.Error(1)
}

func (m *mockInsights) LocationInsights(ctx context.Context, locationID, seasonID string) (*model.LocationInsights, error) {
	args := m.Called(ctx, locationID, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LocationInsights), args.Error(1)
}

func (m *mockInsights) SeasonInsights(ctx context.Context, seasonID string) (*model.SeasonInsights, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SeasonInsights), args.Error(1)
}

func (m *mockInsights) LessonTypeInsights(ctx context.Context, seasonID string) ([]model.LessonTypeInsights, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LessonTypeInsights), args.Error(1)
}

// request runs one handler against a recorded echo context.
func request(t *testing.T, target string, h echo.HandlerFunc, pathParams map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range pathParams {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	require.NoError(t, h(c))
	return rec
}

func TestGetSnapshotOK(t *testing.T) {
	svc := new(mockInsights)
	snapshot := &model.BusinessSnapshot{
		Timestamp:    time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC),
		ActiveSeason: model.Season{ID: "s-1", Name: "Fall 2025"},
		TotalRevenue: 1200,
	}
	svc.On("BusinessSnapshot", mock.Anything, "s-1").Return(snapshot, nil)

	h := NewInsightsHandler(svc)
	rec := request(t, "/v1/insights/snapshot?season_id=s-1", h.GetSnapshot, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_revenue":1200`)
	svc.AssertExpectations(t)
}

func TestGetSnapshotDefaultsSeason(t *testing.T) {
	svc := new(mockInsights)
	// An omitted season_id is passed through empty; the engine picks the
	// default season itself.
	svc.On("BusinessSnapshot", mock.Anything, "").Return(&model.BusinessSnapshot{}, nil)

	h := NewInsightsHandler(svc)
	rec := request(t, "/v1/insights/snapshot", h.GetSnapshot, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetSnapshotNoActiveSeason(t *testing.T) {
	svc := new(mockInsights)
	svc.On("BusinessSnapshot", mock.Anything, "").Return(nil, service.ErrNoActiveSeason)

	h := NewInsightsHandler(svc)
	rec := request(t, "/v1/insights/snapshot", h.GetSnapshot, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no active season")
}

func TestGetSnapshotSeasonNotFound(t *testing.T) {
	svc := new(mockInsights)
	svc.On("BusinessSnapshot", mock.Anything, "nope").Return(nil, repository.ErrSeasonNotFound)

	h := NewInsightsHandler(svc)
	rec := request(t, "/v1/insights/snapshot?season_id=nope", h.GetSnapshot, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "season not found")
}

func TestGetLocationInsightsRequiresSeasonID(t *testing.T) {
	svc := new(mockInsights)
	h := NewInsightsHandler(svc)
	rec := request(t, "/v1/insights/locations/loc-1", h.GetLocationInsights, map[string]string{"id": "loc-1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "season_id is required")
	svc.AssertNotCalled(t, "LocationInsights", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetLocationInsightsOK(t *testing.T) {
	svc := new(mockInsights)
	insights := &model.LocationInsights{
		Location:    model.Location{ID: "loc-1", Name: "Main Pool"},
		Performance: model.PerformanceGood,
	}
	svc.On("LocationInsights", mock.Anything, "loc-1", "s-1").Return(insights, nil)

	h := NewInsightsHandler(svc)
	rec := request(t, "/v1/insights/locations/loc-1?season_id=s-1", h.GetLocationInsights, map[string]string{"id": "loc-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"performance":"good"`)
	svc.AssertExpectations(t)
}

func TestGetLocationInsightsNotFound(t *testing.T) {
	svc := new(mockInsights)
	svc.On("LocationInsights", mock.Anything, "ghost", "s-1").Return(nil, repository.ErrLocationNotFound)

	h := NewInsightsHandler(svc)
	rec := request(t, "/v1/insights/locations/ghost?season_id=s-1", h.GetLocationInsights, map[string]string{"id": "ghost"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "location not found")
}

func TestGetSeasonInsightsOK(t *testing.T) {
	svc := new(mockInsights)
	insights := &model.SeasonInsights{
		Season:        model.Season{ID: "s-1", Name: "Fall 2025"},
		TotalRevenue:  900,
		TotalBookings: 9,
	}
	svc.On("SeasonInsights", mock.Anything, "s-1").Return(insights, nil)

	h := NewInsightsHandler(svc)
	rec := request(t, "/v1/insights/seasons/s-1", h.GetSeasonInsights, map[string]string{"id": "s-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_bookings":9`)
	svc.AssertExpectations(t)
}

func TestGetLessonTypesRequiresSeasonID(t *testing.T) {
	svc := new(mockInsights)
	h := NewInsightsHandler(svc)
	rec := request(t, "/v1/insights/lesson-types", h.GetLessonTypes, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "LessonTypeInsights", mock.Anything, mock.Anything)
}

func TestGetLessonTypesOK(t *testing.T) {
	svc := new(mockInsights)
	breakdown := []model.LessonTypeInsights{
		{LessonType: "45min", LessonFormat: "private", BookingCount: 3, Revenue: 225, AveragePrice: 75},
	}
	svc.On("LessonTypeInsights", mock.Anything, "s-1").Return(breakdown, nil)

	h := NewInsightsHandler(svc)
	rec := request(t, "/v1/insights/lesson-types?season_id=s-1", h.GetLessonTypes, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items"`)
	assert.Contains(t, rec.Body.String(), `"45min"`)
	svc.AssertExpectations(t)
}

func TestInsightsMalformedRecordIs422(t *testing.T) {
	svc := new(mockInsights)
	svc.On("SeasonInsights", mock.Anything, "s-1").Return(nil, repository.ErrMalformedRecord)

	h := NewInsightsHandler(svc)
	rec := request(t, "/v1/insights/seasons/s-1", h.GetSeasonInsights, map[string]string{"id": "s-1"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestInsightsUnknownErrorIs500(t *testing.T) {
	svc := new(mockInsights)
	svc.On("BusinessSnapshot", mock.Anything, "").Return(nil, errors.New("connection reset"))

	h := NewInsightsHandler(svc)
	rec := request(t, "/v1/insights/snapshot", h.GetSnapshot, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Raw store errors are not leaked to clients.
	assert.NotContains(t, rec.Body.String(), "connection reset")
	assert.Contains(t, rec.Body.String(), "store error")
}

func TestHealthOK(t *testing.T) {
	rec := request(t, "/healthz", Health(nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHealthDegraded(t *testing.T) {
	ping := func(context.Context) error { return errors.New("down") }
	rec := request(t, "/healthz", Health(ping), nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}
