package model

import "time"

// Lesson statuses as recorded in the store.
const (
	LessonStatusConfirmed = "confirmed"
	LessonStatusCompleted = "completed"
	LessonStatusCancelled = "cancelled"
	LessonStatusNoShow    = "no-show"
)

// Lesson is a single dated occurrence belonging to a booking.  Where a
// Booking is the recurring weekly slot, a Lesson is one concrete visit
// to the pool on LessonDate.
type Lesson struct {
	ID           string    `json:"id"`
	BookingID    string    `json:"booking_id"`
	CoachID      string    `json:"coach_id,omitempty"`
	LocationID   string    `json:"location_id"`
	SeasonID     string    `json:"season_id"`
	ParentID     string    `json:"parent_id,omitempty"`
	SwimmerIDs   []string  `json:"swimmer_ids"`
	LessonDate   time.Time `json:"lesson_date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	LessonType   string    `json:"lesson_type,omitempty"`
	LessonFormat string    `json:"lesson_format,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
