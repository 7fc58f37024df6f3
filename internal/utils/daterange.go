// Package utils contains small pure helpers shared across the service.
// This file implements calendar-aligned date ranges and "HH:MM"
// time-of-day arithmetic used by the utilization and insight
// calculations.  All range boundaries are inclusive: a range starts at
// local midnight and ends at 23:59:59.999 local time.
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/swim-insights/internal/model"
)

// DateRange is an inclusive window of time.  Start is the first instant
// inside the range and End the last.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// StartOfDay returns t truncated to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last represented instant of t's day,
// 23:59:59.999 local time.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// CurrentWeek returns the calendar week containing now.  Weeks start on
// Sunday, so the range runs from Sunday 00:00:00 through Saturday
// 23:59:59.999.
func CurrentWeek() DateRange { return weekOf(time.Now()) }

func weekOf(now time.Time) DateRange {
	start := StartOfDay(now.AddDate(0, 0, -int(now.Weekday())))
	return DateRange{Start: start, End: EndOfDay(start.AddDate(0, 0, 6))}
}

// CurrentMonth returns the calendar month containing now.
func CurrentMonth() DateRange { return monthOf(time.Now()) }

func monthOf(now time.Time) DateRange {
	y, m, _ := now.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	// Day 0 of the next month normalizes to the last day of this one.
	end := time.Date(y, m+1, 0, 0, 0, 0, 0, now.Location())
	return DateRange{Start: start, End: EndOfDay(end)}
}

// CurrentQuarter returns the calendar quarter containing now
// (Jan-Mar, Apr-Jun, Jul-Sep, Oct-Dec).
func CurrentQuarter() DateRange { return quarterOf(time.Now()) }

func quarterOf(now time.Time) DateRange {
	y, m, _ := now.Date()
	q := (int(m) - 1) / 3
	start := time.Date(y, time.Month(q*3+1), 1, 0, 0, 0, 0, now.Location())
	end := time.Date(y, time.Month(q*3+4), 0, 0, 0, 0, 0, now.Location())
	return DateRange{Start: start, End: EndOfDay(end)}
}

// CurrentYear returns the calendar year containing now.
func CurrentYear() DateRange { return yearOf(time.Now()) }

func yearOf(now time.Time) DateRange {
	y := now.Year()
	return DateRange{
		Start: time.Date(y, time.January, 1, 0, 0, 0, 0, now.Location()),
		End:   EndOfDay(time.Date(y, time.December, 31, 0, 0, 0, 0, now.Location())),
	}
}

// LastNDays returns the range ending today at end-of-day and starting n
// calendar days earlier at start-of-day.  n=0 yields a single-day range
// covering today; negative n is treated as 0.
func LastNDays(n int) DateRange { return lastNDaysFrom(time.Now(), n) }

func lastNDaysFrom(now time.Time, n int) DateRange {
	if n < 0 {
		n = 0
	}
	return DateRange{Start: StartOfDay(now.AddDate(0, 0, -n)), End: EndOfDay(now)}
}

// IsInRange reports whether t falls inside r, inclusive on both ends.
func IsInRange(t time.Time, r DateRange) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// DayName returns the lowercase weekday name of t, matching how the
// store spells day-of-week fields ("monday", "tuesday", ...).
func DayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// parseClock splits an "HH:MM" time-of-day string into hour and minute
// components.  Minutes must fall in [0,60); hours are only required to be
// non-negative so 24-hour edge values pass through.
func parseClock(s string) (hour, minute int, err error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time of day %q", s)
	}
	hour, err = strconv.Atoi(hh)
	if err != nil || hour < 0 {
		return 0, 0, fmt.Errorf("invalid time of day %q", s)
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || minute < 0 || minute >= 60 {
		return 0, 0, fmt.Errorf("invalid time of day %q", s)
	}
	return hour, minute, nil
}

// HoursBetween returns the signed fractional hours from start to end,
// both "HH:MM" strings.  An end before start yields a negative value;
// overnight wraparound is NOT handled here and callers decide what a
// negative duration means for them.
func HoursBetween(start, end string) (float64, error) {
	sh, sm, err := parseClock(start)
	if err != nil {
		return 0, err
	}
	eh, em, err := parseClock(end)
	if err != nil {
		return 0, err
	}
	return float64(eh) + float64(em)/60 - float64(sh) - float64(sm)/60, nil
}

// MinutesBetween returns the signed whole minutes from start to end,
// both "HH:MM" strings.  Same wraparound caveat as HoursBetween.
func MinutesBetween(start, end string) (int, error) {
	sh, sm, err := parseClock(start)
	if err != nil {
		return 0, err
	}
	eh, em, err := parseClock(end)
	if err != nil {
		return 0, err
	}
	return (eh-sh)*60 + (em - sm), nil
}

// OperatingHoursInRange sums a location's open hours over every day of
// the range.  Days without an operating window and windows that fail to
// parse contribute nothing.
func OperatingHoursInRange(hours map[string]model.OperatingWindow, r DateRange) float64 {
	var total float64
	for d := StartOfDay(r.Start); !d.After(r.End); d = d.AddDate(0, 0, 1) {
		w, ok := hours[DayName(d)]
		if !ok {
			continue
		}
		h, err := HoursBetween(w.Open, w.Close)
		if err != nil {
			continue
		}
		total += h
	}
	return total
}
