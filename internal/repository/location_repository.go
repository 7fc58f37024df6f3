package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/swim-insights/internal/model"
	"github.com/iliyamo/swim-insights/internal/store"
)

// locationDoc mirrors a raw document in the `locations` collection.
// Optional flags are pointers so a missing value can be told apart from
// an explicit false and defaulted per field.
type locationDoc struct {
	ID                 string                        `bson:"_id"`
	Name               string                        `bson:"name" validate:"required"`
	DisplayName        string                        `bson:"displayName"`
	Region             string                        `bson:"region"`
	Address            addressDoc                    `bson:"address"`
	Facilities         string                        `bson:"facilities"`
	PoolType           string                        `bson:"poolType"`
	TotalCapacity      int                           `bson:"totalCapacity"`
	CurrentEnrollment  int                           `bson:"currentEnrollment"`
	IsActive           *bool                         `bson:"isActive"`
	IsVisibleToUser    *bool                         `bson:"isVisibleToUser"`
	LessonTypes        []string                      `bson:"lessonTypes"`
	HasPricingOverride *bool                         `bson:"hasPricingOverride"`
	OperatingHours     map[string]operatingHoursDoc  `bson:"operatingHours"`
	CreatedAt          time.Time                     `bson:"createdAt"`
	UpdatedAt          time.Time                     `bson:"updatedAt"`
}

type addressDoc struct {
	Street     string `bson:"street"`
	City       string `bson:"city"`
	Province   string `bson:"province"`
	PostalCode string `bson:"postalCode"`
	Latitude   string `bson:"latitude"`
	Longitude  string `bson:"longitude"`
	MapURL     string `bson:"mapUrl"`
}

type operatingHoursDoc struct {
	Open  string `bson:"open"`
	Close string `bson:"close"`
}

// mapLocation validates a raw document and converts it into the typed
// entity, applying the per-field defaults for flags the store omits.
func mapLocation(doc locationDoc) (*model.Location, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, malformed(store.CollectionLocations, doc.ID, err)
	}
	var hours map[string]model.OperatingWindow
	if doc.OperatingHours != nil {
		hours = make(map[string]model.OperatingWindow, len(doc.OperatingHours))
		for day, w := range doc.OperatingHours {
			hours[day] = model.OperatingWindow{Open: w.Open, Close: w.Close}
		}
	}
	return &model.Location{
		ID:          doc.ID,
		Name:        doc.Name,
		DisplayName: doc.DisplayName,
		Region:      doc.Region,
		Address: model.Address{
			Street:     doc.Address.Street,
			City:       doc.Address.City,
			Province:   doc.Address.Province,
			PostalCode: doc.Address.PostalCode,
			Latitude:   doc.Address.Latitude,
			Longitude:  doc.Address.Longitude,
			MapURL:     doc.Address.MapURL,
		},
		Facilities:         doc.Facilities,
		PoolType:           doc.PoolType,
		TotalCapacity:      doc.TotalCapacity,
		CurrentEnrollment:  doc.CurrentEnrollment,
		IsActive:           boolOr(doc.IsActive, true),
		IsVisibleToUser:    boolOr(doc.IsVisibleToUser, true),
		LessonTypes:        orEmpty(doc.LessonTypes),
		HasPricingOverride: boolOr(doc.HasPricingOverride, false),
		OperatingHours:     hours,
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
	}, nil
}

// LocationRepo encapsulates reads against the `locations` collection.
type LocationRepo struct {
	db *mongo.Database
}

// NewLocationRepo constructs a LocationRepo with the provided database
// handle, allowing injection of the store in tests and at startup.
func NewLocationRepo(db *mongo.Database) *LocationRepo {
	return &LocationRepo{db: db}
}

// List returns every location, excluding inactive ones unless
// includeInactive is set.  The active filter is applied after decoding
// because a missing isActive flag counts as active.  An empty collection
// yields an empty slice, not an error.
func (r *LocationRepo) List(ctx context.Context, includeInactive bool) ([]model.Location, error) {
	cur, err := r.db.Collection(store.CollectionLocations).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]model.Location, 0)
	for cur.Next(ctx) {
		var doc locationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		loc, err := mapLocation(doc)
		if err != nil {
			return nil, err
		}
		if includeInactive || loc.IsActive {
			out = append(out, *loc)
		}
	}
	return out, cur.Err()
}

// Get fetches a single location by document id.  It returns
// ErrLocationNotFound when no document matches.
func (r *LocationRepo) Get(ctx context.Context, id string) (*model.Location, error) {
	var doc locationDoc
	err := r.db.Collection(store.CollectionLocations).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapLocation(doc)
}
