package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/swim-insights/internal/model"
	"github.com/iliyamo/swim-insights/internal/store"
)

// maxInFilterIDs is the largest id set the store accepts in a single
// membership predicate.  Larger sets are sharded into multiple queries
// and merged so callers never see truncated results.
const maxInFilterIDs = 10

// bookingDoc mirrors a raw document in the `bookings` collection.
type bookingDoc struct {
	ID               string    `bson:"_id"`
	CoachID          string    `bson:"coachId"`
	LocationID       string    `bson:"locationId" validate:"required"`
	LocationName     string    `bson:"locationName"`
	SeasonID         string    `bson:"seasonId" validate:"required"`
	SeasonName       string    `bson:"seasonName"`
	ProgramID        string    `bson:"programId"`
	ParentID         string    `bson:"parentId"`
	SwimmerIDs       []string  `bson:"swimmerIds"`
	LessonType       string    `bson:"lessonType"`
	LessonFormat     string    `bson:"lessonFormat"`
	StartDate        time.Time `bson:"startDate"`
	EndDate          time.Time `bson:"endDate"`
	StartTime        string    `bson:"startTime" validate:"required"`
	EndTime          string    `bson:"endTime" validate:"required"`
	NumLessons       int       `bson:"numLessons"`
	Status           string    `bson:"status" validate:"required"`
	PaymentStatus    string    `bson:"paymentStatus"`
	PaymentMethod    string    `bson:"paymentMethod"`
	Currency         string    `bson:"currency"`
	TotalAmount      float64   `bson:"totalAmount"`
	AmountPaid       float64   `bson:"amountPaid"`
	DiscountApplied  float64   `bson:"discountApplied"`
	PromoCode        string    `bson:"promoCode"`
	TransactionRef   string    `bson:"transactionRef"`
	PaymentReference string    `bson:"paymentReference"`
	PaymentDate      string    `bson:"paymentDate"`
	BypassPayment    *bool     `bson:"bypassPayment"`
	CreatedAt        time.Time `bson:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt"`
}

func mapBooking(doc bookingDoc) (*model.Booking, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, malformed(store.CollectionBookings, doc.ID, err)
	}
	return &model.Booking{
		ID:               doc.ID,
		CoachID:          doc.CoachID,
		LocationID:       doc.LocationID,
		LocationName:     doc.LocationName,
		SeasonID:         doc.SeasonID,
		SeasonName:       doc.SeasonName,
		ProgramID:        doc.ProgramID,
		ParentID:         doc.ParentID,
		SwimmerIDs:       orEmpty(doc.SwimmerIDs),
		LessonType:       doc.LessonType,
		LessonFormat:     doc.LessonFormat,
		StartDate:        doc.StartDate,
		EndDate:          doc.EndDate,
		StartTime:        doc.StartTime,
		EndTime:          doc.EndTime,
		NumLessons:       doc.NumLessons,
		Status:           doc.Status,
		PaymentStatus:    doc.PaymentStatus,
		PaymentMethod:    doc.PaymentMethod,
		Currency:         doc.Currency,
		TotalAmount:      doc.TotalAmount,
		AmountPaid:       doc.AmountPaid,
		DiscountApplied:  doc.DiscountApplied,
		PromoCode:        doc.PromoCode,
		TransactionRef:   doc.TransactionRef,
		PaymentReference: doc.PaymentReference,
		PaymentDate:      doc.PaymentDate,
		BypassPayment:    boolOr(doc.BypassPayment, false),
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}, nil
}

// shardIDs splits an id set into chunks of at most size.  An empty set
// yields a single nil chunk so callers can loop once with no filter.
func shardIDs(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return [][]string{nil}
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// BookingRepo encapsulates reads against the `bookings` collection.
type BookingRepo struct {
	db *mongo.Database
}

// NewBookingRepo constructs a BookingRepo with the provided database handle.
func NewBookingRepo(db *mongo.Database) *BookingRepo {
	return &BookingRepo{db: db}
}

// List returns bookings matching the filter.  Id sets larger than the
// store's membership-predicate limit are issued as multiple queries over
// the cross product of shards; the shards are disjoint so the merged
// result contains no duplicates.
func (r *BookingRepo) List(ctx context.Context, f model.BookingFilter) ([]model.Booking, error) {
	out := make([]model.Booking, 0)
	for _, locs := range shardIDs(f.LocationIDs, maxInFilterIDs) {
		for _, seasons := range shardIDs(f.SeasonIDs, maxInFilterIDs) {
			filter := bson.M{}
			if len(locs) > 0 {
				filter["locationId"] = bson.M{"$in": locs}
			}
			if len(seasons) > 0 {
				filter["seasonId"] = bson.M{"$in": seasons}
			}
			batch, err := r.list(ctx, filter)
			if err != nil {
				return nil, err
			}
			out = append(out, batch...)
		}
	}
	return out, nil
}

func (r *BookingRepo) list(ctx context.Context, filter bson.M) ([]model.Booking, error) {
	cur, err := r.db.Collection(store.CollectionBookings).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]model.Booking, 0)
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		b, err := mapBooking(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, cur.Err()
}
