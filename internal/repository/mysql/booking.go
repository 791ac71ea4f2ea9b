package mysql

import (
	"context"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/db"
	gormtx "hotelbooking/pkg/db/mysql"
	"hotelbooking/pkg/model"
	"time"

	"gorm.io/gorm"
)

type gormBookingRepository struct {
	cfg       *config.Config
	db        *gorm.DB
	txManager db.TransactionManager
}

func (r *gormBookingRepository) FindByID(ctx context.Context, id int64) (*model.Booking, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var booking model.Booking
	if err := gormtx.Conn(ctx, r.db).First(&booking, id).Error; err != nil {
		err = translateError(err, repository.ErrBookingNotFound)
		if err == repository.ErrBookingNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &booking, nil
}

func (r *gormBookingRepository) FindOverlapping(ctx context.Context, roomID int64, stay model.DateRange) ([]*model.Booking, error) {
	return r.findOverlapping(ctx, "room_id = ?", roomID, stay)
}

func (r *gormBookingRepository) FindOverlappingForRooms(ctx context.Context, roomIDs []int64, stay model.DateRange) ([]*model.Booking, error) {
	if len(roomIDs) == 0 {
		return []*model.Booking{}, nil
	}
	return r.findOverlapping(ctx, "room_id IN ?", roomIDs, stay)
}

// findOverlapping selects stays with arrival < stay.Departure and departure > stay.Arrival.
func (r *gormBookingRepository) findOverlapping(ctx context.Context, roomClause string, roomArg any, stay model.DateRange) ([]*model.Booking, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	bookings := []*model.Booking{}
	err := gormtx.Conn(ctx, r.db).
		Where(roomClause, roomArg).
		Where("arrival_date < ? AND departure_date > ?", stay.Departure, stay.Arrival).
		Order("room_id ASC").Order("arrival_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	return bookings, nil
}

func (r *gormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	booking.CreatedAt = time.Now().UTC().Truncate(time.Second)
	if err := gormtx.Conn(ctx, r.db).Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", translateError(err, nil))
	}
	return nil
}

func (r *gormBookingRepository) ExecuteTransaction(ctx context.Context, fn db.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
