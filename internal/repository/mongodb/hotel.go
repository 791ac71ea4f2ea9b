package mongodb

import (
	"context"
	"errors"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/db"
	"hotelbooking/pkg/model"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoHotelRepository struct {
	cfg       *config.Config
	db        *mongo.Database
	hotels    *mongo.Collection
	rooms     *mongo.Collection
	bookings  *mongo.Collection
	txManager db.TransactionManager
}

func newHotelRepository(cfg *config.Config, database *mongo.Database, tx db.TransactionManager) repository.HotelRepository {
	return &mongoHotelRepository{
		cfg:       cfg,
		db:        database,
		hotels:    database.Collection(HotelsCollection),
		rooms:     database.Collection(RoomsCollection),
		bookings:  database.Collection(BookingsCollection),
		txManager: tx,
	}
}

func (r *mongoHotelRepository) FindByID(ctx context.Context, id int64) (*model.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var hotel model.Hotel
	err := r.hotels.FindOne(ctx, bson.M{"_id": id}).Decode(&hotel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to find hotel: %w", err)
	}
	return &hotel, nil
}

func (r *mongoHotelRepository) Search(ctx context.Context, nameContains string) ([]*model.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{}
	if nameContains != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(nameContains), Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.hotels.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	defer cursor.Close(ctx)

	hotels := []*model.Hotel{}
	if err = cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, nil
}

func (r *mongoHotelRepository) CreateWithRooms(ctx context.Context, hotel *model.Hotel) error {
	return r.txManager.ExecuteTransaction(ctx, func(ctx context.Context) error {
		hotelID, err := nextIDs(ctx, r.db, HotelsCollection, 1)
		if err != nil {
			return err
		}
		hotel.ID = hotelID

		if _, err := r.hotels.InsertOne(ctx, hotel); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return fmt.Errorf("%w: hotel %d", repository.ErrDuplicate, hotel.ID)
			}
			return fmt.Errorf("failed to create hotel: %w", err)
		}

		if len(hotel.Rooms) == 0 {
			return nil
		}

		firstRoomID, err := nextIDs(ctx, r.db, RoomsCollection, int64(len(hotel.Rooms)))
		if err != nil {
			return err
		}

		docs := make([]any, len(hotel.Rooms))
		for i := range hotel.Rooms {
			hotel.Rooms[i].ID = firstRoomID + int64(i)
			hotel.Rooms[i].HotelID = hotel.ID
			docs[i] = hotel.Rooms[i]
		}

		if _, err := r.rooms.InsertMany(ctx, docs); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return fmt.Errorf("%w: room number in hotel %d", repository.ErrDuplicate, hotel.ID)
			}
			return fmt.Errorf("failed to create rooms: %w", err)
		}
		return nil
	})
}

func (r *mongoHotelRepository) DeleteAll(ctx context.Context) error {
	return r.txManager.ExecuteTransaction(ctx, func(ctx context.Context) error {
		for _, coll := range []*mongo.Collection{r.bookings, r.rooms, r.hotels} {
			if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
				return fmt.Errorf("failed to clear %s: %w", coll.Name(), err)
			}
		}
		return nil
	})
}
