// Package repository declares the storage contracts used by the booking and
// availability workflows. Implementations live in the mongodb, postgres,
// mysql and memory subpackages.
package repository

import (
	"context"
	"hotelbooking/pkg/db"
	"hotelbooking/pkg/model"
)

type HotelRepository interface {
	// FindByID returns ErrHotelNotFound when no hotel has the id.
	FindByID(ctx context.Context, id int64) (*model.Hotel, error)
	// Search matches hotels whose name contains nameContains, ignoring case.
	// An empty filter returns every hotel.
	Search(ctx context.Context, nameContains string) ([]*model.Hotel, error)
	// CreateWithRooms stores the hotel and its rooms, assigning ids to all of them.
	CreateWithRooms(ctx context.Context, hotel *model.Hotel) error
	// DeleteAll removes every hotel together with its rooms and their bookings.
	DeleteAll(ctx context.Context) error
}

type RoomRepository interface {
	// FindByID returns ErrRoomNotFound when no room has the id.
	FindByID(ctx context.Context, id int64) (*model.Room, error)
	FindByHotel(ctx context.Context, hotelID int64) ([]*model.Room, error)
}

type BookingRepository interface {
	// FindByID returns ErrBookingNotFound when no booking has the id.
	FindByID(ctx context.Context, id int64) (*model.Booking, error)
	// FindOverlapping returns bookings of roomID whose stay intersects stay.
	FindOverlapping(ctx context.Context, roomID int64, stay model.DateRange) ([]*model.Booking, error)
	// FindOverlappingForRooms is FindOverlapping over several rooms at once.
	FindOverlappingForRooms(ctx context.Context, roomIDs []int64, stay model.DateRange) ([]*model.Booking, error)
	// Create assigns booking.ID and booking.CreatedAt.
	Create(ctx context.Context, booking *model.Booking) error
	ExecuteTransaction(ctx context.Context, fn db.TransactionFunc) error
}

// Repositories bundles one storage backend's implementations.
type Repositories struct {
	Hotels   HotelRepository
	Rooms    RoomRepository
	Bookings BookingRepository
}
