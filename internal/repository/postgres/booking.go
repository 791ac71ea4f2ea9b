package postgres

import (
	"context"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/db"
	"hotelbooking/pkg/model"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgBookingRepository struct {
	cfg       *config.Config
	pool      *pgxpool.Pool
	txManager db.TransactionManager
}

var bookingColumns = []any{"id", "room_id", "arrival_date", "departure_date", "guests", "created_at"}

func (r *pgBookingRepository) FindByID(ctx context.Context, id int64) (*model.Booking, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	stmt := builder.From(tableBookings).Select(bookingColumns...).Where(goqu.C("id").Eq(id))
	booking, err := queryOne[model.Booking](ctx, r.pool, stmt, repository.ErrBookingNotFound)
	if err != nil && err != repository.ErrBookingNotFound {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return booking, err
}

func (r *pgBookingRepository) FindOverlapping(ctx context.Context, roomID int64, stay model.DateRange) ([]*model.Booking, error) {
	return r.findOverlapping(ctx, goqu.C("room_id").Eq(roomID), stay)
}

func (r *pgBookingRepository) FindOverlappingForRooms(ctx context.Context, roomIDs []int64, stay model.DateRange) ([]*model.Booking, error) {
	if len(roomIDs) == 0 {
		return []*model.Booking{}, nil
	}
	return r.findOverlapping(ctx, goqu.C("room_id").In(roomIDs), stay)
}

// findOverlapping selects stays with arrival < stay.Departure and departure > stay.Arrival.
func (r *pgBookingRepository) findOverlapping(ctx context.Context, room exp.Expression, stay model.DateRange) ([]*model.Booking, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	bookings, err := queryAll[model.Booking](ctx, r.pool, overlapSelect(room, stay))
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	return bookings, nil
}

func overlapSelect(room exp.Expression, stay model.DateRange) *goqu.SelectDataset {
	return builder.From(tableBookings).
		Select(bookingColumns...).
		Where(
			room,
			goqu.C("arrival_date").Lt(stay.Departure),
			goqu.C("departure_date").Gt(stay.Arrival),
		).
		Order(goqu.C("room_id").Asc(), goqu.C("arrival_date").Asc())
}

func (r *pgBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	booking.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	id, err := insertReturningID(ctx, r.pool, builder.Insert(tableBookings).Rows(goqu.Record{
		"room_id":        booking.RoomID,
		"arrival_date":   booking.ArrivalDate,
		"departure_date": booking.DepartureDate,
		"guests":         booking.Guests,
		"created_at":     booking.CreatedAt,
	}))
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	booking.ID = id
	return nil
}

func (r *pgBookingRepository) ExecuteTransaction(ctx context.Context, fn db.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
