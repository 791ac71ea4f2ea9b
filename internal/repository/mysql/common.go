// Package mysql implements the repositories on MySQL through gorm.
package mysql

import (
	"context"
	"errors"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	gormtx "hotelbooking/pkg/db/mysql"
	"hotelbooking/pkg/model"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const errDuplicateEntry = 1062

func NewRepositories(cfg *config.Config) *repository.Repositories {
	gdb := cfg.Client.MySQL
	tx := gormtx.NewTransactionManager(gdb)
	return &repository.Repositories{
		Hotels:   &gormHotelRepository{cfg: cfg, db: gdb, txManager: tx},
		Rooms:    &gormRoomRepository{cfg: cfg, db: gdb},
		Bookings: &gormBookingRepository{cfg: cfg, db: gdb, txManager: tx},
	}
}

// Models lists the tables managed by AutoMigrate, parents first.
func Models() []any {
	return []any{&model.Hotel{}, &model.Room{}, &model.Booking{}}
}

func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(Models()...)
}

func translateError(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == errDuplicateEntry {
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, myErr.Message)
	}
	return err
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}
	return context.WithTimeout(ctx, timeout)
}
