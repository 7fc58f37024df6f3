package model

import "time"

// Program is one recurring weekly availability slot a coach can be booked
// into, not a single dated occurrence.  A Monday 15:00-18:00 program means
// three coachable hours every Monday of its season.
//
// Fields:
//  ProgramID  – business identifier; falls back to the document id when
//               the store record omits it.
//  DayOfWeek  – lowercase weekday name, e.g. "monday".
//  StartTime  – "HH:MM" time-of-day string (required).
//  EndTime    – "HH:MM" time-of-day string (required).
//  NumLessons – how many lessons the slot is expected to host.
//  IsActive   – inactive programs contribute no available hours; missing
//               flag defaults to true.
type Program struct {
	ID           string    `json:"id"`
	ProgramID    string    `json:"program_id"`
	LocationID   string    `json:"location_id"`
	LocationName string    `json:"location_name,omitempty"`
	SeasonID     string    `json:"season_id"`
	SeasonName   string    `json:"season_name,omitempty"`
	Format       string    `json:"format,omitempty"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	DayOfWeek    string    `json:"day_of_week"`
	DaysOfWeek   []string  `json:"days_of_week"`
	CoachIDs     []string  `json:"coach_ids"`
	NumLessons   int       `json:"num_lessons"`
	IsFull       bool      `json:"is_full"`
	IsActive     bool      `json:"is_active"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
