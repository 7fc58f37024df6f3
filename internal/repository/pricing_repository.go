package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/swim-insights/internal/model"
	"github.com/iliyamo/swim-insights/internal/store"
)

// pricingDocID is the id of the singleton pricing document.
const pricingDocID = "default"

// pricingDoc mirrors the raw singleton document in the `pricing`
// collection.  Both price tables are required; a pricing document without
// them is useless to every consumer.
type pricingDoc struct {
	ID             string                    `bson:"_id"`
	PrivateLessons map[string]privateTierDoc `bson:"privateLessons" validate:"required"`
	SmallGroup     map[string]groupTierDoc   `bson:"smallGroup" validate:"required"`
	Overrideable   *bool                     `bson:"overrideable"`
}

type privateTierDoc struct {
	BasePrice       float64 `bson:"basePrice"`
	AddOnPerSwimmer float64 `bson:"addOnPerSwimmer"`
	MaxSwimmers     int     `bson:"maxSwimmers"`
}

type groupTierDoc struct {
	PricePerSwimmer float64 `bson:"pricePerSwimmer"`
	MaxSwimmers     int     `bson:"maxSwimmers"`
}

func mapPricing(doc pricingDoc) (*model.Pricing, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, malformed(store.CollectionPricing, doc.ID, err)
	}
	private := make(map[string]model.PrivateTier, len(doc.PrivateLessons))
	for bucket, t := range doc.PrivateLessons {
		private[bucket] = model.PrivateTier{
			BasePrice:       t.BasePrice,
			AddOnPerSwimmer: t.AddOnPerSwimmer,
			MaxSwimmers:     t.MaxSwimmers,
		}
	}
	group := make(map[string]model.GroupTier, len(doc.SmallGroup))
	for bucket, t := range doc.SmallGroup {
		group[bucket] = model.GroupTier{
			PricePerSwimmer: t.PricePerSwimmer,
			MaxSwimmers:     t.MaxSwimmers,
		}
	}
	return &model.Pricing{
		PrivateLessons: private,
		SmallGroup:     group,
		Overrideable:   boolOr(doc.Overrideable, true),
	}, nil
}

// PricingRepo encapsulates reads of the singleton pricing document.
type PricingRepo struct {
	db *mongo.Database
}

// NewPricingRepo constructs a PricingRepo with the provided database handle.
func NewPricingRepo(db *mongo.Database) *PricingRepo {
	return &PricingRepo{db: db}
}

// Get fetches the business-wide price table.  It returns
// ErrPricingNotFound when the singleton document is absent.
func (r *PricingRepo) Get(ctx context.Context) (*model.Pricing, error) {
	var doc pricingDoc
	err := r.db.Collection(store.CollectionPricing).FindOne(ctx, bson.M{"_id": pricingDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPricingNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapPricing(doc)
}
