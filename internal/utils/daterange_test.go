package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/swim-insights/internal/model"
)

// A Wednesday afternoon; the week containing it runs Sunday March 9
// through Saturday March 15.
var wednesday = time.Date(2025, time.March, 12, 14, 30, 0, 0, time.UTC)

func TestWeekOf(t *testing.T) {
	r := weekOf(wednesday)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2025, time.March, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC), r.End)
}

func TestWeekOfStartsOnSunday(t *testing.T) {
	sunday := time.Date(2025, time.March, 9, 8, 0, 0, 0, time.UTC)
	r := weekOf(sunday)
	assert.Equal(t, time.Sunday, r.Start.Weekday())
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), r.Start)
}

func TestMonthOf(t *testing.T) {
	r := monthOf(time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), r.Start)
	// 2024 is a leap year.
	assert.Equal(t, 29, r.End.Day())
	assert.Equal(t, time.February, r.End.Month())
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		name       string
		now        time.Time
		wantStart  time.Month
		wantEndDay int
		wantEndMon time.Month
	}{
		{"first quarter", time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), time.January, 31, time.March},
		{"second quarter", time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC), time.April, 30, time.June},
		{"fourth quarter", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), time.October, 31, time.December},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := quarterOf(tt.now)
			assert.Equal(t, tt.wantStart, r.Start.Month())
			assert.Equal(t, 1, r.Start.Day())
			assert.Equal(t, tt.wantEndMon, r.End.Month())
			assert.Equal(t, tt.wantEndDay, r.End.Day())
		})
	}
}

func TestYearOf(t *testing.T) {
	r := yearOf(wednesday)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.December, r.End.Month())
	assert.Equal(t, 31, r.End.Day())
}

func TestLastNDaysFrom(t *testing.T) {
	r := lastNDaysFrom(wednesday, 7)
	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, EndOfDay(wednesday), r.End)
}

func TestLastNDaysFromZeroIsSingleDay(t *testing.T) {
	r := lastNDaysFrom(wednesday, 0)
	assert.Equal(t, StartOfDay(wednesday), r.Start)
	assert.Equal(t, EndOfDay(wednesday), r.End)
}

func TestLastNDaysFromNegativeTreatedAsZero(t *testing.T) {
	assert.Equal(t, lastNDaysFrom(wednesday, 0), lastNDaysFrom(wednesday, -3))
}

func TestHoursBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"three hour slot", "15:00", "18:00", 3},
		{"one hour slot", "16:00", "17:00", 1},
		{"forty five minutes", "14:00", "14:45", 0.75},
		{"half hour with offset", "09:15", "09:45", 0.5},
		{"zero duration", "10:00", "10:00", 0},
		{"end before start is negative", "18:00", "15:00", -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HoursBetween(tt.start, tt.end)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestHoursBetweenRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "15", "15:", ":30", "15:60", "ab:cd", "-1:00"} {
		_, err := HoursBetween(bad, "16:00")
		assert.Error(t, err, "start %q", bad)
		_, err = HoursBetween("15:00", bad)
		assert.Error(t, err, "end %q", bad)
	}
}

func TestMinutesBetween(t *testing.T) {
	got, err := MinutesBetween("14:00", "14:45")
	require.NoError(t, err)
	assert.Equal(t, 45, got)

	got, err = MinutesBetween("15:00", "18:30")
	require.NoError(t, err)
	assert.Equal(t, 210, got)
}

func TestIsInRangeInclusiveBounds(t *testing.T) {
	r := DateRange{
		Start: time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.March, 15, 23, 59, 59, 0, time.UTC),
	}
	assert.True(t, IsInRange(r.Start, r))
	assert.True(t, IsInRange(r.End, r))
	assert.True(t, IsInRange(wednesday, r))
	assert.False(t, IsInRange(r.Start.Add(-time.Nanosecond), r))
	assert.False(t, IsInRange(r.End.Add(time.Nanosecond), r))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "wednesday", DayName(wednesday))
	assert.Equal(t, "sunday", DayName(time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)))
}

func TestOperatingHoursInRange(t *testing.T) {
	hours := map[string]model.OperatingWindow{
		"monday":    {Open: "09:00", Close: "17:00"}, // 8h
		"wednesday": {Open: "12:00", Close: "18:30"}, // 6.5h
		"friday":    {Open: "bad", Close: "17:00"},   // unparseable, ignored
	}
	// Full week March 9-15: one monday, one wednesday, one friday.
	r := weekOf(wednesday)
	assert.InDelta(t, 14.5, OperatingHoursInRange(hours, r), 1e-9)

	// Single day with no window contributes nothing.
	saturday := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	assert.Zero(t, OperatingHoursInRange(hours, DateRange{Start: StartOfDay(saturday), End: EndOfDay(saturday)}))
}
