package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/swim-insights/internal/model"
	"github.com/iliyamo/swim-insights/internal/store"
)

// lessonDoc mirrors a raw document in the `lessons` collection.  The
// date and status drive the upcoming/completed partition, so they are
// required along with the owning location and season.
type lessonDoc struct {
	ID           string    `bson:"_id"`
	BookingID    string    `bson:"bookingId"`
	CoachID      string    `bson:"coachId"`
	LocationID   string    `bson:"locationId" validate:"required"`
	SeasonID     string    `bson:"seasonId" validate:"required"`
	ParentID     string    `bson:"parentId"`
	SwimmerIDs   []string  `bson:"swimmerIds"`
	LessonDate   time.Time `bson:"lessonDate" validate:"required"`
	StartTime    string    `bson:"startTime"`
	EndTime      string    `bson:"endTime"`
	LessonType   string    `bson:"lessonType"`
	LessonFormat string    `bson:"lessonFormat"`
	Status       string    `bson:"status" validate:"required"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func mapLesson(doc lessonDoc) (*model.Lesson, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, malformed(store.CollectionLessons, doc.ID, err)
	}
	return &model.Lesson{
		ID:           doc.ID,
		BookingID:    doc.BookingID,
		CoachID:      doc.CoachID,
		LocationID:   doc.LocationID,
		SeasonID:     doc.SeasonID,
		ParentID:     doc.ParentID,
		SwimmerIDs:   orEmpty(doc.SwimmerIDs),
		LessonDate:   doc.LessonDate,
		StartTime:    doc.StartTime,
		EndTime:      doc.EndTime,
		LessonType:   doc.LessonType,
		LessonFormat: doc.LessonFormat,
		Status:       doc.Status,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

// LessonRepo encapsulates reads against the `lessons` collection.
type LessonRepo struct {
	db *mongo.Database
}

// NewLessonRepo constructs a LessonRepo with the provided database handle.
func NewLessonRepo(db *mongo.Database) *LessonRepo {
	return &LessonRepo{db: db}
}

// List returns lessons, optionally narrowed by location and/or season.
// Empty ids mean no filter on that dimension.
func (r *LessonRepo) List(ctx context.Context, locationID, seasonID string) ([]model.Lesson, error) {
	filter := bson.M{}
	if locationID != "" {
		filter["locationId"] = locationID
	}
	if seasonID != "" {
		filter["seasonId"] = seasonID
	}
	cur, err := r.db.Collection(store.CollectionLessons).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]model.Lesson, 0)
	for cur.Next(ctx) {
		var doc lessonDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		l, err := mapLesson(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, cur.Err()
}
