package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/swim-insights/internal/model"
	"github.com/iliyamo/swim-insights/internal/store"
)

// seasonDoc mirrors a raw document in the `seasons` collection.  A season
// without a name or date range is unusable for any aggregation, so those
// fields are required.
type seasonDoc struct {
	ID               string    `bson:"_id"`
	Name             string    `bson:"name" validate:"required"`
	StartDate        time.Time `bson:"startDate" validate:"required"`
	EndDate          time.Time `bson:"endDate" validate:"required"`
	RegistrationOpen time.Time `bson:"registrationOpen"`
	HoldMySpotOpen   time.Time `bson:"holdMySpotOpen"`
	HoldMySpotClose  time.Time `bson:"holdMySpotClose"`
	IsActive         *bool     `bson:"isActive"`
	Locations        []string  `bson:"locations"`
	Notes            string    `bson:"notes"`
	CreatedAt        time.Time `bson:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt"`
}

func mapSeason(doc seasonDoc) (*model.Season, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, malformed(store.CollectionSeasons, doc.ID, err)
	}
	return &model.Season{
		ID:               doc.ID,
		Name:             doc.Name,
		StartDate:        doc.StartDate,
		EndDate:          doc.EndDate,
		RegistrationOpen: doc.RegistrationOpen,
		HoldMySpotOpen:   doc.HoldMySpotOpen,
		HoldMySpotClose:  doc.HoldMySpotClose,
		IsActive:         boolOr(doc.IsActive, false),
		Locations:        orEmpty(doc.Locations),
		Notes:            doc.Notes,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}, nil
}

// SeasonRepo encapsulates reads against the `seasons` collection.
type SeasonRepo struct {
	db *mongo.Database
}

// NewSeasonRepo constructs a SeasonRepo with the provided database handle.
func NewSeasonRepo(db *mongo.Database) *SeasonRepo {
	return &SeasonRepo{db: db}
}

// List returns seasons ordered by start date ascending, so "the first
// active season" is a deterministic choice rather than store iteration
// order.  With activeOnly set, only seasons whose isActive flag is
// explicitly true are returned (the flag defaults to false).
func (r *SeasonRepo) List(ctx context.Context, activeOnly bool) ([]model.Season, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cur, err := r.db.Collection(store.CollectionSeasons).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]model.Season, 0)
	for cur.Next(ctx) {
		var doc seasonDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		s, err := mapSeason(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, cur.Err()
}
