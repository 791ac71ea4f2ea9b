package mongodb

import (
	"context"
	"errors"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/db"
	"hotelbooking/pkg/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoBookingRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
	txManager  db.TransactionManager
}

func newBookingRepository(cfg *config.Config, database *mongo.Database, tx db.TransactionManager) repository.BookingRepository {
	return &mongoBookingRepository{
		cfg:        cfg,
		db:         database,
		collection: database.Collection(BookingsCollection),
		txManager:  tx,
	}
}

func (r *mongoBookingRepository) FindByID(ctx context.Context, id int64) (*model.Booking, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var booking model.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &booking, nil
}

func (r *mongoBookingRepository) FindOverlapping(ctx context.Context, roomID int64, stay model.DateRange) ([]*model.Booking, error) {
	return r.find(ctx, overlapFilter(roomID, stay))
}

func (r *mongoBookingRepository) FindOverlappingForRooms(ctx context.Context, roomIDs []int64, stay model.DateRange) ([]*model.Booking, error) {
	if len(roomIDs) == 0 {
		return []*model.Booking{}, nil
	}
	return r.find(ctx, overlapFilter(bson.M{"$in": roomIDs}, stay))
}

func (r *mongoBookingRepository) find(ctx context.Context, filter bson.M) ([]*model.Booking, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "room_id", Value: 1}, {Key: "arrival_date", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []*model.Booking{}
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// overlapFilter matches stays with arrival < stay.Departure and departure > stay.Arrival.
func overlapFilter(room any, stay model.DateRange) bson.M {
	return bson.M{
		"room_id":        room,
		"arrival_date":   bson.M{"$lt": stay.Departure},
		"departure_date": bson.M{"$gt": stay.Arrival},
	}
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	id, err := nextIDs(ctx, r.db, BookingsCollection, 1)
	if err != nil {
		return err
	}

	booking.ID = id
	booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if _, err := r.collection.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepository) ExecuteTransaction(ctx context.Context, fn db.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
