package service

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/iliyamo/swim-insights/internal/model"
	"github.com/iliyamo/swim-insights/internal/repository"
	"github.com/iliyamo/swim-insights/internal/utils"
)

// LocationInsights builds the full per-location report for one season:
// utilization, revenue, booking and lesson partitions, and the derived
// performance tier.  A miss on either the location or the season surfaces
// as the corresponding not-found sentinel.
func (s *Insights) LocationInsights(ctx context.Context, locationID, seasonID string) (*model.LocationInsights, error) {
	location, err := s.locations.Get(ctx, locationID)
	if err != nil {
		return nil, err
	}
	season, err := s.findSeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	utilization, err := s.WeeklyUtilization(ctx, locationID, seasonID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.List(ctx, model.BookingFilter{
		LocationIDs: []string{locationID},
		SeasonIDs:   []string{seasonID},
	})
	if err != nil {
		return nil, err
	}

	totalRevenue := paidRevenue(bookings)
	// Average over ALL bookings regardless of status, guarded against an
	// empty set.
	averageBookingValue := 0.0
	if len(bookings) > 0 {
		averageBookingValue = totalRevenue / float64(len(bookings))
	}

	bookingCounts := model.BookingCounts{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case model.BookingStatusConfirmed:
			bookingCounts.Confirmed++
		case model.BookingStatusCancelled:
			bookingCounts.Cancelled++
		case model.BookingStatusPending:
			bookingCounts.Pending++
		}
	}

	lessons, err := s.lessons.List(ctx, locationID, seasonID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	lessonCounts := model.LessonCounts{Total: len(lessons)}
	for _, l := range lessons {
		switch {
		case l.Status == model.LessonStatusCompleted:
			lessonCounts.Completed++
		case l.Status == model.LessonStatusCancelled:
			lessonCounts.Cancelled++
		case l.Status == model.LessonStatusConfirmed && l.LessonDate.After(now):
			lessonCounts.Upcoming++
		}
	}

	return &model.LocationInsights{
		Location:    *location,
		Season:      *season,
		Utilization: *utilization,
		Revenue: model.RevenueSummary{
			TotalRevenue:        totalRevenue,
			TotalBookings:       len(bookings),
			AverageBookingValue: averageBookingValue,
		},
		Bookings:    bookingCounts,
		Lessons:     lessonCounts,
		Performance: performanceTier(utilization.UtilizationRate),
	}, nil
}

// AllLocationInsights runs LocationInsights for every active location.
// A location that individually resolves to not-found is skipped rather
// than aborting the batch; store failures still propagate.
func (s *Insights) AllLocationInsights(ctx context.Context, seasonID string) ([]model.LocationInsights, error) {
	locations, err := s.locations.List(ctx, false)
	if err != nil {
		return nil, err
	}

	out := make([]model.LocationInsights, 0, len(locations))
	for _, loc := range locations {
		insight, err := s.LocationInsights(ctx, loc.ID, seasonID)
		if errors.Is(err, repository.ErrLocationNotFound) {
			log.Printf("insights: skipping vanished location %s", loc.ID)
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *insight)
	}
	return out, nil
}

// SeasonInsights aggregates a whole season: revenue and booking/lesson
// totals plus a per-location breakdown sorted descending by revenue.
// Breakdown revenue counts confirmed+paid bookings only while the booking
// count covers every status.
func (s *Insights) SeasonInsights(ctx context.Context, seasonID string) (*model.SeasonInsights, error) {
	season, err := s.findSeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.List(ctx, model.BookingFilter{SeasonIDs: []string{seasonID}})
	if err != nil {
		return nil, err
	}
	lessons, err := s.lessons.List(ctx, "", seasonID)
	if err != nil {
		return nil, err
	}

	totalRevenue := paidRevenue(bookings)
	averageBookingValue := 0.0
	if len(bookings) > 0 {
		averageBookingValue = totalRevenue / float64(len(bookings))
	}

	byLocation := make(map[string]*model.LocationRevenue)
	for _, b := range bookings {
		row, ok := byLocation[b.LocationID]
		if !ok {
			row = &model.LocationRevenue{LocationID: b.LocationID, LocationName: b.LocationName}
			byLocation[b.LocationID] = row
		}
		if b.Status == model.BookingStatusConfirmed && b.PaymentStatus == model.PaymentStatusPaid {
			row.Revenue += b.AmountPaid
		}
		row.Bookings++
	}

	breakdown := make([]model.LocationRevenue, 0, len(byLocation))
	for _, row := range byLocation {
		breakdown = append(breakdown, *row)
	}
	// Revenue descending, location id as tie break so equal-revenue rows
	// come back in a stable order.
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Revenue != breakdown[j].Revenue {
			return breakdown[i].Revenue > breakdown[j].Revenue
		}
		return breakdown[i].LocationID < breakdown[j].LocationID
	})

	return &model.SeasonInsights{
		Season:              *season,
		TotalRevenue:        totalRevenue,
		TotalBookings:       len(bookings),
		TotalLessons:        len(lessons),
		AverageBookingValue: averageBookingValue,
		LocationBreakdown:   breakdown,
	}, nil
}

// durationBucket classifies a booking's computed minutes into the fixed
// duration buckets.  The ladder is monotonic and everything above 45
// minutes lands in the 60min bucket.
func durationBucket(minutes int) string {
	switch {
	case minutes <= 30:
		return model.Duration30Min
	case minutes <= 45:
		return model.Duration45Min
	default:
		return model.Duration60Min
	}
}

// LessonTypeInsights groups a season's bookings by (duration bucket,
// lesson format), accumulating booking counts, confirmed+paid revenue and
// a per-location popularity histogram.  Groups come back sorted by
// booking count descending.
func (s *Insights) LessonTypeInsights(ctx context.Context, seasonID string) ([]model.LessonTypeInsights, error) {
	bookings, err := s.bookings.List(ctx, model.BookingFilter{SeasonIDs: []string{seasonID}})
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		bucket string
		format string
	}
	groups := make(map[groupKey]*model.LessonTypeInsights)
	for _, b := range bookings {
		minutes, err := utils.MinutesBetween(b.StartTime, b.EndTime)
		if err != nil {
			log.Printf("insights: skipping booking %s with window %s-%s", b.ID, b.StartTime, b.EndTime)
			continue
		}
		key := groupKey{bucket: durationBucket(minutes), format: b.LessonType}
		g, ok := groups[key]
		if !ok {
			g = &model.LessonTypeInsights{
				LessonType:           key.bucket,
				LessonFormat:         key.format,
				PopularityByLocation: make(map[string]int),
			}
			groups[key] = g
		}
		g.BookingCount++
		if b.Status == model.BookingStatusConfirmed && b.PaymentStatus == model.PaymentStatusPaid {
			g.Revenue += b.AmountPaid
		}
		g.PopularityByLocation[b.LocationID]++
	}

	out := make([]model.LessonTypeInsights, 0, len(groups))
	for _, g := range groups {
		if g.BookingCount > 0 {
			g.AveragePrice = g.Revenue / float64(g.BookingCount)
		}
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BookingCount != out[j].BookingCount {
			return out[i].BookingCount > out[j].BookingCount
		}
		if out[i].LessonType != out[j].LessonType {
			return out[i].LessonType < out[j].LessonType
		}
		return out[i].LessonFormat < out[j].LessonFormat
	})
	return out, nil
}
