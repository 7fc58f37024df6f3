package service

import (
	"context"
	"log"

	"github.com/iliyamo/swim-insights/internal/model"
	"github.com/iliyamo/swim-insights/internal/utils"
)

// WeeklyUtilization compares the recurring weekly hours a location offers
// against the hours actually booked, for one (location, season) pair.
//
// Available hours come from active programs; booked hours from confirmed
// bookings.  Both are recurring weekly slots, so each record is counted
// once regardless of how many weeks the season runs.  The rate is
// booked/available, 0 when nothing is offered, and never clamped: above
// 1.0 means overbooked.
//
// Records whose time window does not parse or comes out non-positive
// (an end time before the start, i.e. an overnight window) are skipped
// with a log line rather than silently summed as negative hours.
func (s *Insights) WeeklyUtilization(ctx context.Context, locationID, seasonID string) (*model.WeeklyUtilization, error) {
	programs, err := s.programs.List(ctx, locationID, seasonID)
	if err != nil {
		return nil, err
	}

	slots := make([]model.AvailableSlot, 0, len(programs))
	var available float64
	for _, p := range programs {
		if !p.IsActive {
			continue
		}
		hours, err := utils.HoursBetween(p.StartTime, p.EndTime)
		if err != nil || hours <= 0 {
			log.Printf("utilization: skipping program %s with window %s-%s", p.ID, p.StartTime, p.EndTime)
			continue
		}
		slots = append(slots, model.AvailableSlot{
			DayOfWeek: p.DayOfWeek,
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
			Hours:     hours,
		})
		available += hours
	}

	bookings, err := s.bookings.List(ctx, model.BookingFilter{
		LocationIDs: []string{locationID},
		SeasonIDs:   []string{seasonID},
	})
	if err != nil {
		return nil, err
	}

	var booked float64
	for _, b := range bookings {
		if b.Status != model.BookingStatusConfirmed {
			continue
		}
		hours, err := utils.HoursBetween(b.StartTime, b.EndTime)
		if err != nil || hours <= 0 {
			log.Printf("utilization: skipping booking %s with window %s-%s", b.ID, b.StartTime, b.EndTime)
			continue
		}
		booked += hours
	}

	rate := 0.0
	if available > 0 {
		rate = booked / available
	}
	return &model.WeeklyUtilization{
		AvailableHoursPerWeek: available,
		BookedHoursPerWeek:    booked,
		UtilizationRate:       rate,
		AvailableSlots:        slots,
	}, nil
}
