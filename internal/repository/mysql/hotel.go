package mysql

import (
	"context"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/db"
	gormtx "hotelbooking/pkg/db/mysql"
	"hotelbooking/pkg/model"
	"strings"

	"gorm.io/gorm"
)

type gormHotelRepository struct {
	cfg       *config.Config
	db        *gorm.DB
	txManager db.TransactionManager
}

func (r *gormHotelRepository) FindByID(ctx context.Context, id int64) (*model.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var hotel model.Hotel
	if err := gormtx.Conn(ctx, r.db).First(&hotel, id).Error; err != nil {
		err = translateError(err, repository.ErrHotelNotFound)
		if err == repository.ErrHotelNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find hotel: %w", err)
	}
	return &hotel, nil
}

func (r *gormHotelRepository) Search(ctx context.Context, nameContains string) ([]*model.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	query := gormtx.Conn(ctx, r.db).Order("name ASC").Order("id ASC")
	if nameContains != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+escapeLike(strings.ToLower(nameContains))+"%")
	}

	hotels := []*model.Hotel{}
	if err := query.Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	return hotels, nil
}

// CreateWithRooms relies on gorm's association save to insert Rooms with the new hotel id.
func (r *gormHotelRepository) CreateWithRooms(ctx context.Context, hotel *model.Hotel) error {
	return r.txManager.ExecuteTransaction(ctx, func(ctx context.Context) error {
		if err := gormtx.Conn(ctx, r.db).Create(hotel).Error; err != nil {
			return fmt.Errorf("failed to create hotel: %w", translateError(err, nil))
		}
		return nil
	})
}

func (r *gormHotelRepository) DeleteAll(ctx context.Context) error {
	return r.txManager.ExecuteTransaction(ctx, func(ctx context.Context) error {
		conn := gormtx.Conn(ctx, r.db).Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range []any{&model.Booking{}, &model.Room{}, &model.Hotel{}} {
			if err := conn.Delete(m).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", m, err)
			}
		}
		return nil
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
