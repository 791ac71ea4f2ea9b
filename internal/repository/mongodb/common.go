// Package mongodb implements the repositories on MongoDB. Integer ids come
// from a counters collection; multi-document writes run in sessions, so the
// deployment must be a replica set.
package mongodb

import (
	"context"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	mongotx "hotelbooking/pkg/db/mongo"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	HotelsCollection   = "Hotels"
	RoomsCollection    = "Rooms"
	BookingsCollection = "Bookings"
	CountersCollection = "Counters"
)

// NewRepositories wires all three repositories over one database.
func NewRepositories(cfg *config.Config) *repository.Repositories {
	database := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	tx := mongotx.NewTransactionManager(cfg.Client.Mongo)
	return &repository.Repositories{
		Hotels:   newHotelRepository(cfg, database, tx),
		Rooms:    newRoomRepository(cfg, database),
		Bookings: newBookingRepository(cfg, database, tx),
	}
}

// withTimeout wraps the context with a timeout if not already in a transaction.
// A SessionContext cannot be wrapped without losing the session, so it is
// returned unchanged with a no-op cancel.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}
	return context.WithTimeout(ctx, timeout)
}

type counter struct {
	Seq int64 `bson:"seq"`
}

// nextIDs reserves n consecutive ids from the named sequence and returns the first.
func nextIDs(ctx context.Context, database *mongo.Database, sequence string, n int64) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := database.Collection(CountersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": sequence},
		bson.M{"$inc": bson.M{"seq": n}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("failed to reserve %s ids: %w", sequence, err)
	}
	return c.Seq - n + 1, nil
}
