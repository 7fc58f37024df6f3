package model

import "time"

// Season is a block of weeks during which programs run, e.g.
// "Fall #2 2025".  The store guarantees StartDate <= EndDate.
//
// Fields:
//  RegistrationOpen – when parents may start booking.
//  HoldMySpotOpen   – start of the hold-my-spot window.
//  HoldMySpotClose  – end of the hold-my-spot window.
//  IsActive         – missing flag defaults to false; the snapshot
//                     builder picks the first active season by start
//                     date when no explicit season is requested.
//  Locations        – ids of locations participating in the season.
type Season struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	RegistrationOpen time.Time `json:"registration_open"`
	HoldMySpotOpen   time.Time `json:"hold_my_spot_open"`
	HoldMySpotClose  time.Time `json:"hold_my_spot_close"`
	IsActive         bool      `json:"is_active"`
	Locations        []string  `json:"locations"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
