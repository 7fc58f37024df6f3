package model

// Duration bucket keys used throughout pricing and lesson-type insights.
// Bookings longer than 45 minutes all land in the 60min bucket; there is
// no bucket above it.
const (
	Duration30Min = "30min"
	Duration45Min = "45min"
	Duration60Min = "60min"
)

// PrivateTier prices a private lesson of one duration bucket.  The base
// price covers one swimmer; each additional swimmer up to MaxSwimmers
// adds AddOnPerSwimmer.
type PrivateTier struct {
	BasePrice       float64 `json:"base_price"`
	AddOnPerSwimmer float64 `json:"add_on_per_swimmer"`
	MaxSwimmers     int     `json:"max_swimmers"`
}

// GroupTier prices a small-group lesson of one duration bucket on a
// per-swimmer basis.
type GroupTier struct {
	PricePerSwimmer float64 `json:"price_per_swimmer"`
	MaxSwimmers     int     `json:"max_swimmers"`
}

// Pricing is the business-wide price table, stored as the singleton
// document `pricing/default`.  Maps are keyed by the duration bucket
// constants above.  Overrideable reports whether individual locations may
// carry their own table; missing flag defaults to true.
type Pricing struct {
	PrivateLessons map[string]PrivateTier `json:"private_lessons"`
	SmallGroup     map[string]GroupTier   `json:"small_group"`
	Overrideable   bool                   `json:"overrideable"`
}
