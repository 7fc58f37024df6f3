// Package store owns the connection to the document store holding the
// operational swim data.  The service only ever reads from it; all write
// paths live in other systems.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names read by the repositories.
const (
	CollectionLocations = "locations"
	CollectionSeasons   = "seasons"
	CollectionPrograms  = "programs"
	CollectionBookings  = "bookings"
	CollectionLessons   = "lessons"
	CollectionPricing   = "pricing"
)

// Open connects to the document store and verifies the connection with a
// ping before returning.  The caller owns the client and should Close it
// on shutdown.
func Open(uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(25).
		SetConnectTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	// Ping with timeout so a dead store fails fast at startup.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, client.Database(dbName), nil
}

// Close disconnects the client, bounded so shutdown never hangs on a
// broken connection.
func Close(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
