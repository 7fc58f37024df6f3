package model

import "time"

// Performance tiers derived from the weekly utilization rate.  The
// thresholds are fixed: >=0.8 excellent, >=0.6 good, >=0.4 fair,
// everything below poor.
const (
	PerformanceExcellent = "excellent"
	PerformanceGood      = "good"
	PerformanceFair      = "fair"
	PerformancePoor      = "poor"
)

// AvailableSlot is one program's weekly window, kept on the utilization
// result for diagnostics so the dashboard can show where the available
// hours come from.
type AvailableSlot struct {
	DayOfWeek string  `json:"day_of_week"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Hours     float64 `json:"hours"`
}

// WeeklyUtilization compares the hours a location offers per week against
// the hours actually booked.  UtilizationRate is booked/available and is
// deliberately not clamped: a value above 1.0 means the location is
// overbooked, which is a signal callers want to see.
type WeeklyUtilization struct {
	AvailableHoursPerWeek float64         `json:"available_hours_per_week"`
	BookedHoursPerWeek    float64         `json:"booked_hours_per_week"`
	UtilizationRate       float64         `json:"utilization_rate"`
	AvailableSlots        []AvailableSlot `json:"available_slots"`
}

// RevenueSummary totals collected money for one location and season.
// TotalRevenue only counts confirmed bookings whose payment cleared;
// AverageBookingValue divides that revenue by ALL bookings regardless of
// status, and is 0 when there are none.
type RevenueSummary struct {
	TotalRevenue        float64 `json:"total_revenue"`
	TotalBookings       int     `json:"total_bookings"`
	AverageBookingValue float64 `json:"average_booking_value"`
}

// BookingCounts partitions bookings by status.
type BookingCounts struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Pending   int `json:"pending"`
}

// LessonCounts partitions dated lesson occurrences.  Upcoming means the
// lesson is confirmed and its date is still in the future.
type LessonCounts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Upcoming  int `json:"upcoming"`
	Cancelled int `json:"cancelled"`
}

// LocationInsights is the full per-location report for one season:
// utilization, revenue, booking and lesson partitions, and the derived
// performance tier.
type LocationInsights struct {
	Location    Location          `json:"location"`
	Season      Season            `json:"season"`
	Utilization WeeklyUtilization `json:"utilization"`
	Revenue     RevenueSummary    `json:"revenue"`
	Bookings    BookingCounts     `json:"bookings"`
	Lessons     LessonCounts      `json:"lessons"`
	Performance string            `json:"performance"`
}

// LocationRevenue is one row of a season's per-location breakdown.
// Revenue counts confirmed+paid bookings only while Bookings counts every
// booking at the location regardless of status.
type LocationRevenue struct {
	LocationID   string  `json:"location_id"`
	LocationName string  `json:"location_name"`
	Revenue      float64 `json:"revenue"`
	Bookings     int     `json:"bookings"`
}

// SeasonInsights aggregates a whole season across locations, with the
// breakdown sorted descending by revenue.
type SeasonInsights struct {
	Season              Season            `json:"season"`
	TotalRevenue        float64           `json:"total_revenue"`
	TotalBookings       int               `json:"total_bookings"`
	TotalLessons        int               `json:"total_lessons"`
	AverageBookingValue float64           `json:"average_booking_value"`
	LocationBreakdown   []LocationRevenue `json:"location_breakdown"`
}

// LessonTypeInsights groups a season's bookings by duration bucket and
// lesson format.  PopularityByLocation maps location id to how many
// bookings of this group it holds.
type LessonTypeInsights struct {
	LessonType           string         `json:"lesson_type"`
	LessonFormat         string         `json:"lesson_format"`
	BookingCount         int            `json:"booking_count"`
	Revenue              float64        `json:"revenue"`
	AveragePrice         float64        `json:"average_price"`
	PopularityByLocation map[string]int `json:"popularity_by_location"`
}

// BusinessSnapshot is the top-level dashboard report: one season across
// every active location, captured at Timestamp.  OverallUtilization is
// hours-weighted (total booked hours over total available hours), not an
// average of per-location rates.  TopLocations holds at most five
// locations with revenue, descending; UnderperformingLocations holds
// every location below 40% utilization, ascending by rate.
type BusinessSnapshot struct {
	Timestamp                time.Time            `json:"timestamp"`
	ActiveSeason             Season               `json:"active_season"`
	Locations                []LocationInsights   `json:"locations"`
	TotalRevenue             float64              `json:"total_revenue"`
	TotalBookings            int                  `json:"total_bookings"`
	OverallUtilization       float64              `json:"overall_utilization"`
	UnderperformingLocations []LocationInsights   `json:"underperforming_locations"`
	TopLocations             []LocationInsights   `json:"top_locations"`
	LessonTypeBreakdown      []LessonTypeInsights `json:"lesson_type_breakdown"`
}
