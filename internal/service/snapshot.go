package service

import (
	"context"
	"sort"
	"sync"

	"github.com/iliyamo/swim-insights/internal/model"
)

// maxTopLocations caps the top-performers list on the snapshot.
const maxTopLocations = 5

// underperformingRate is the utilization rate below which a location is
// flagged on the snapshot.
const underperformingRate = 0.4

// BusinessSnapshot assembles the top-level dashboard report for one
// season across every active location.  With an empty seasonID it
// defaults to the first active season (by start date) and returns
// ErrNoActiveSeason when there is none; an explicit id that does not
// resolve returns repository.ErrSeasonNotFound.
//
// The three season-wide gathers (location insights, lesson-type
// breakdown, season bookings) have no data dependency on one another and
// run concurrently.
func (s *Insights) BusinessSnapshot(ctx context.Context, seasonID string) (*model.BusinessSnapshot, error) {
	if seasonID == "" {
		active, err := s.seasons.List(ctx, true)
		if err != nil {
			return nil, err
		}
		if len(active) == 0 {
			return nil, ErrNoActiveSeason
		}
		seasonID = active[0].ID
	}

	season, err := s.findSeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	var (
		wg        sync.WaitGroup
		locations []model.LocationInsights
		breakdown []model.LessonTypeInsights
		bookings  []model.Booking

		locErr, typeErr, bookErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		locations, locErr = s.AllLocationInsights(ctx, seasonID)
	}()
	go func() {
		defer wg.Done()
		breakdown, typeErr = s.LessonTypeInsights(ctx, seasonID)
	}()
	go func() {
		defer wg.Done()
		bookings, bookErr = s.bookings.List(ctx, model.BookingFilter{SeasonIDs: []string{seasonID}})
	}()
	wg.Wait()
	for _, err := range []error{locErr, typeErr, bookErr} {
		if err != nil {
			return nil, err
		}
	}

	// Overall utilization is hours-weighted: total booked hours over
	// total available hours, NOT an average of per-location rates.
	var totalBooked, totalAvailable float64
	for _, loc := range locations {
		totalBooked += loc.Utilization.BookedHoursPerWeek
		totalAvailable += loc.Utilization.AvailableHoursPerWeek
	}
	overall := 0.0
	if totalAvailable > 0 {
		overall = totalBooked / totalAvailable
	}

	underperforming := make([]model.LocationInsights, 0)
	for _, loc := range locations {
		if loc.Utilization.UtilizationRate < underperformingRate {
			underperforming = append(underperforming, loc)
		}
	}
	sort.Slice(underperforming, func(i, j int) bool {
		if underperforming[i].Utilization.UtilizationRate != underperforming[j].Utilization.UtilizationRate {
			return underperforming[i].Utilization.UtilizationRate < underperforming[j].Utilization.UtilizationRate
		}
		return underperforming[i].Location.ID < underperforming[j].Location.ID
	})

	top := make([]model.LocationInsights, 0)
	for _, loc := range locations {
		if loc.Revenue.TotalRevenue > 0 {
			top = append(top, loc)
		}
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Revenue.TotalRevenue != top[j].Revenue.TotalRevenue {
			return top[i].Revenue.TotalRevenue > top[j].Revenue.TotalRevenue
		}
		return top[i].Location.ID < top[j].Location.ID
	})
	if len(top) > maxTopLocations {
		top = top[:maxTopLocations]
	}

	return &model.BusinessSnapshot{
		Timestamp:                s.now(),
		ActiveSeason:             *season,
		Locations:                locations,
		TotalRevenue:             paidRevenue(bookings),
		TotalBookings:            len(bookings),
		OverallUtilization:       overall,
		UnderperformingLocations: underperforming,
		TopLocations:             top,
		LessonTypeBreakdown:      breakdown,
	}, nil
}
