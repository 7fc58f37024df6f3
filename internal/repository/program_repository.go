package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/swim-insights/internal/model"
	"github.com/iliyamo/swim-insights/internal/store"
)

// programDoc mirrors a raw document in the `programs` collection.  The
// time window and owning location/season are required: a program without
// them cannot contribute available hours.
type programDoc struct {
	ID           string    `bson:"_id"`
	ProgramID    string    `bson:"programId"`
	LocationID   string    `bson:"locationId" validate:"required"`
	LocationName string    `bson:"locationName"`
	SeasonID     string    `bson:"seasonId" validate:"required"`
	SeasonName   string    `bson:"seasonName"`
	Format       string    `bson:"format"`
	StartDate    time.Time `bson:"startDate"`
	EndDate      time.Time `bson:"endDate"`
	StartTime    string    `bson:"startTime" validate:"required"`
	EndTime      string    `bson:"endTime" validate:"required"`
	DayOfWeek    string    `bson:"dayOfWeek"`
	DaysOfWeek   []string  `bson:"daysOfWeek"`
	CoachIDs     []string  `bson:"coachIds"`
	NumLessons   int       `bson:"numLessons"`
	IsFull       *bool     `bson:"isFull"`
	IsActive     *bool     `bson:"isActive"`
	Description  string    `bson:"description"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func mapProgram(doc programDoc) (*model.Program, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, malformed(store.CollectionPrograms, doc.ID, err)
	}
	programID := doc.ProgramID
	if programID == "" {
		programID = doc.ID
	}
	return &model.Program{
		ID:           doc.ID,
		ProgramID:    programID,
		LocationID:   doc.LocationID,
		LocationName: doc.LocationName,
		SeasonID:     doc.SeasonID,
		SeasonName:   doc.SeasonName,
		Format:       doc.Format,
		StartDate:    doc.StartDate,
		EndDate:      doc.EndDate,
		StartTime:    doc.StartTime,
		EndTime:      doc.EndTime,
		DayOfWeek:    doc.DayOfWeek,
		DaysOfWeek:   orEmpty(doc.DaysOfWeek),
		CoachIDs:     orEmpty(doc.CoachIDs),
		NumLessons:   doc.NumLessons,
		IsFull:       boolOr(doc.IsFull, false),
		IsActive:     boolOr(doc.IsActive, true),
		Description:  doc.Description,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

// ProgramRepo encapsulates reads against the `programs` collection.
type ProgramRepo struct {
	db *mongo.Database
}

// NewProgramRepo constructs a ProgramRepo with the provided database handle.
func NewProgramRepo(db *mongo.Database) *ProgramRepo {
	return &ProgramRepo{db: db}
}

// List returns programs, optionally narrowed by location and/or season.
// Empty ids mean no filter on that dimension.
func (r *ProgramRepo) List(ctx context.Context, locationID, seasonID string) ([]model.Program, error) {
	filter := bson.M{}
	if locationID != "" {
		filter["locationId"] = locationID
	}
	if seasonID != "" {
		filter["seasonId"] = seasonID
	}
	cur, err := r.db.Collection(store.CollectionPrograms).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]model.Program, 0)
	for cur.Next(ctx) {
		var doc programDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		p, err := mapProgram(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, cur.Err()
}
