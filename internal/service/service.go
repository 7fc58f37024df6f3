// Package service implements the insight engine: it turns raw
// operational records (locations, seasons, programs, bookings, lessons)
// into utilization and revenue reports for the dashboard.  Everything
// here aggregates locally-owned copies of fetched data; nothing is
// cached or mutated across calls.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/swim-insights/internal/model"
	"github.com/iliyamo/swim-insights/internal/repository"
)

// ErrNoActiveSeason is returned when a snapshot is requested without an
// explicit season and no active season exists to default to.
var ErrNoActiveSeason = errors.New("no active season")

// The reader interfaces below describe exactly the repository surface the
// engine consumes.  The concrete repositories satisfy them, and tests
// substitute in-memory fakes.

// LocationReader lists and resolves locations.
type LocationReader interface {
	List(ctx context.Context, includeInactive bool) ([]model.Location, error)
	Get(ctx context.Context, id string) (*model.Location, error)
}

// SeasonReader lists seasons, optionally only active ones.
type SeasonReader interface {
	List(ctx context.Context, activeOnly bool) ([]model.Season, error)
}

// ProgramReader lists recurring weekly program slots.
type ProgramReader interface {
	List(ctx context.Context, locationID, seasonID string) ([]model.Program, error)
}

// BookingReader lists bookings matching a filter.
type BookingReader interface {
	List(ctx context.Context, f model.BookingFilter) ([]model.Booking, error)
}

// LessonReader lists dated lesson occurrences.
type LessonReader interface {
	List(ctx context.Context, locationID, seasonID string) ([]model.Lesson, error)
}

// Insights computes business reports from repository data.  It holds no
// state beyond its collaborators, so one instance serves all requests.
type Insights struct {
	locations LocationReader
	seasons   SeasonReader
	programs  ProgramReader
	bookings  BookingReader
	lessons   LessonReader
	now       func() time.Time
}

// NewInsights constructs the engine with explicit collaborators.  The
// repositories are injected rather than reached through a process-wide
// singleton so tests can run against in-memory fakes.
func NewInsights(locations LocationReader, seasons SeasonReader, programs ProgramReader, bookings BookingReader, lessons LessonReader) *Insights {
	return &Insights{
		locations: locations,
		seasons:   seasons,
		programs:  programs,
		bookings:  bookings,
		lessons:   lessons,
		now:       time.Now,
	}
}

// findSeason resolves a season id against the full season list, returning
// repository.ErrSeasonNotFound when it does not exist.
func (s *Insights) findSeason(ctx context.Context, seasonID string) (*model.Season, error) {
	seasons, err := s.seasons.List(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range seasons {
		if seasons[i].ID == seasonID {
			return &seasons[i], nil
		}
	}
	return nil, repository.ErrSeasonNotFound
}

// performanceTier maps a utilization rate onto the fixed tier ladder.
// The cases are checked top down; the first match wins.
func performanceTier(rate float64) string {
	switch {
	case rate >= 0.8:
		return model.PerformanceExcellent
	case rate >= 0.6:
		return model.PerformanceGood
	case rate >= 0.4:
		return model.PerformanceFair
	default:
		return model.PerformancePoor
	}
}

// paidRevenue sums what was actually collected: only confirmed bookings
// whose payment cleared contribute.
func paidRevenue(bookings []model.Booking) float64 {
	var total float64
	for _, b := range bookings {
		if b.Status == model.BookingStatusConfirmed && b.PaymentStatus == model.PaymentStatusPaid {
			total += b.AmountPaid
		}
	}
	return total
}
