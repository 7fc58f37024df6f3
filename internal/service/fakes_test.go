package service

import (
	"context"
	"time"

	"github.com/iliyamo/swim-insights/internal/model"
	"github.com/iliyamo/swim-insights/internal/repository"
)

// In-memory repository fakes.  They mimic the store contract: list
// operations return empty slices rather than errors, single lookups miss
// with the not-found sentinels.

type fakeLocations struct {
	items []model.Location
	// ids List still reports but Get no longer resolves, to simulate a
	// location vanishing between the listing and the per-location fetch
	vanished map[string]bool
}

func (f *fakeLocations) List(_ context.Context, includeInactive bool) ([]model.Location, error) {
	out := make([]model.Location, 0, len(f.items))
	for _, l := range f.items {
		if includeInactive || l.IsActive {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLocations) Get(_ context.Context, id string) (*model.Location, error) {
	if f.vanished[id] {
		return nil, repository.ErrLocationNotFound
	}
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, repository.ErrLocationNotFound
}

type fakeSeasons struct {
	items []model.Season
}

func (f *fakeSeasons) List(_ context.Context, activeOnly bool) ([]model.Season, error) {
	out := make([]model.Season, 0, len(f.items))
	for _, s := range f.items {
		if !activeOnly || s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakePrograms struct {
	items []model.Program
}

func (f *fakePrograms) List(_ context.Context, locationID, seasonID string) ([]model.Program, error) {
	out := make([]model.Program, 0, len(f.items))
	for _, p := range f.items {
		if locationID != "" && p.LocationID != locationID {
			continue
		}
		if seasonID != "" && p.SeasonID != seasonID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeBookings struct {
	items []model.Booking
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func (f *fakeBookings) List(_ context.Context, filter model.BookingFilter) ([]model.Booking, error) {
	out := make([]model.Booking, 0, len(f.items))
	for _, b := range f.items {
		if len(filter.LocationIDs) > 0 && !contains(filter.LocationIDs, b.LocationID) {
			continue
		}
		if len(filter.SeasonIDs) > 0 && !contains(filter.SeasonIDs, b.SeasonID) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeLessons struct {
	items []model.Lesson
}

func (f *fakeLessons) List(_ context.Context, locationID, seasonID string) ([]model.Lesson, error) {
	out := make([]model.Lesson, 0, len(f.items))
	for _, l := range f.items {
		if locationID != "" && l.LocationID != locationID {
			continue
		}
		if seasonID != "" && l.SeasonID != seasonID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// testClock is the frozen "now" used by the service under test.
var testClock = time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)

// newTestInsights wires the engine onto the fakes with a frozen clock.
func newTestInsights(loc *fakeLocations, sea *fakeSeasons, prog *fakePrograms, book *fakeBookings, les *fakeLessons) *Insights {
	if loc == nil {
		loc = &fakeLocations{}
	}
	if sea == nil {
		sea = &fakeSeasons{}
	}
	if prog == nil {
		prog = &fakePrograms{}
	}
	if book == nil {
		book = &fakeBookings{}
	}
	if les == nil {
		les = &fakeLessons{}
	}
	s := NewInsights(loc, sea, prog, book, les)
	s.now = func() time.Time { return testClock }
	return s
}

// Fixture shorthands shared by the service tests.

func activeLocation(id, name string) model.Location {
	return model.Location{ID: id, Name: name, IsActive: true, IsVisibleToUser: true, LessonTypes: []string{}}
}

func fallSeason(id string, active bool) model.Season {
	return model.Season{
		ID:        id,
		Name:      "Fall 2025",
		StartDate: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC),
		IsActive:  active,
		Locations: []string{},
	}
}

func weeklyProgram(id, locationID, seasonID, day, start, end string) model.Program {
	return model.Program{
		ID:         id,
		ProgramID:  id,
		LocationID: locationID,
		SeasonID:   seasonID,
		DayOfWeek:  day,
		StartTime:  start,
		EndTime:    end,
		IsActive:   true,
	}
}

func confirmedPaidBooking(id, locationID, seasonID, start, end string, amount float64) model.Booking {
	return model.Booking{
		ID:            id,
		LocationID:    locationID,
		SeasonID:      seasonID,
		StartTime:     start,
		EndTime:       end,
		Status:        model.BookingStatusConfirmed,
		PaymentStatus: model.PaymentStatusPaid,
		AmountPaid:    amount,
		LessonType:    "private",
	}
}
