package model

import "time"

// Address holds the postal and geographic details of a swim location.
// Latitude and longitude are kept as strings because that is how the
// store records them; callers that need numbers must parse explicitly.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Latitude   string `json:"latitude"`
	Longitude  string `json:"longitude"`
	MapURL     string `json:"map_url,omitempty"`
}

// OperatingWindow describes the open and close time of a single weekday,
// both as "HH:MM" time-of-day strings.
type OperatingWindow struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Location is a pool where lessons are taught.  Each document in the
// `locations` collection maps onto one Location.
//
// Fields:
//  ID                 – store document id, unique per collection.
//  Name               – internal name (required in the store).
//  DisplayName        – optional user-facing name.
//  Region             – optional region tag, e.g. "alberta".
//  IsActive           – inactive locations are excluded from default
//                       listings; missing flag defaults to true.
//  IsVisibleToUser    – whether the booking UI shows the location;
//                       missing flag defaults to true.
//  LessonTypes        – lesson formats supported here; missing list
//                       defaults to empty.
//  HasPricingOverride – true when the location has its own price table;
//                       missing flag defaults to false.
//  OperatingHours     – weekday name (lowercase) to open/close window.
type Location struct {
	ID                 string                     `json:"id"`
	Name               string                     `json:"name"`
	DisplayName        string                     `json:"display_name,omitempty"`
	Region             string                     `json:"region,omitempty"`
	Address            Address                    `json:"address"`
	Facilities         string                     `json:"facilities,omitempty"`
	PoolType           string                     `json:"pool_type,omitempty"`
	TotalCapacity      int                        `json:"total_capacity"`
	CurrentEnrollment  int                        `json:"current_enrollment"`
	IsActive           bool                       `json:"is_active"`
	IsVisibleToUser    bool                       `json:"is_visible_to_user"`
	LessonTypes        []string                   `json:"lesson_types"`
	HasPricingOverride bool                       `json:"has_pricing_override"`
	OperatingHours     map[string]OperatingWindow `json:"operating_hours,omitempty"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
}
