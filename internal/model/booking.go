package model

import "time"

// Booking statuses and payment statuses as recorded in the store.  Only
// the values the aggregation logic branches on are named here; the store
// may contain others and they pass through untouched.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"

	PaymentStatusPaid = "paid"
)

// Booking is a confirmed or pending recurring weekly reservation.  One
// booking record represents ONE weekly time slot for the whole season:
// its duration is counted once per week and never multiplied by the
// number of weeks the season runs.
//
// Fields:
//  LessonType    – "private", "group" or "semi-private".
//  LessonFormat  – delivery format, e.g. "swim_set".
//  StartTime     – "HH:MM" time-of-day string (required).
//  EndTime       – "HH:MM" time-of-day string (required).
//  Status        – booking lifecycle state (required).
//  PaymentStatus – "paid", "pending", "failed".
//  AmountPaid    – what was actually collected; revenue figures sum this
//                  over confirmed+paid bookings only.
type Booking struct {
	ID               string    `json:"id"`
	CoachID          string    `json:"coach_id,omitempty"`
	LocationID       string    `json:"location_id"`
	LocationName     string    `json:"location_name,omitempty"`
	SeasonID         string    `json:"season_id"`
	SeasonName       string    `json:"season_name,omitempty"`
	ProgramID        string    `json:"program_id,omitempty"`
	ParentID         string    `json:"parent_id,omitempty"`
	SwimmerIDs       []string  `json:"swimmer_ids"`
	LessonType       string    `json:"lesson_type"`
	LessonFormat     string    `json:"lesson_format,omitempty"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	NumLessons       int       `json:"num_lessons"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	PaymentMethod    string    `json:"payment_method,omitempty"`
	Currency         string    `json:"currency,omitempty"`
	TotalAmount      float64   `json:"total_amount"`
	AmountPaid       float64   `json:"amount_paid"`
	DiscountApplied  float64   `json:"discount_applied"`
	PromoCode        string    `json:"promo_code,omitempty"`
	TransactionRef   string    `json:"transaction_ref,omitempty"`
	PaymentReference string    `json:"payment_reference,omitempty"`
	PaymentDate      string    `json:"payment_date,omitempty"`
	BypassPayment    bool      `json:"bypass_payment"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BookingFilter narrows a booking listing to sets of locations and/or
// seasons.  Empty slices mean "no filter on that dimension".  The store
// only accepts up to 10 ids per membership predicate, so the repository
// shards larger sets into multiple queries and merges the results.
type BookingFilter struct {
	LocationIDs []string
	SeasonIDs   []string
}
