package mysql

import (
	"context"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	gormtx "hotelbooking/pkg/db/mysql"
	"hotelbooking/pkg/model"

	"gorm.io/gorm"
)

type gormRoomRepository struct {
	cfg *config.Config
	db  *gorm.DB
}

func (r *gormRoomRepository) FindByID(ctx context.Context, id int64) (*model.Room, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var room model.Room
	if err := gormtx.Conn(ctx, r.db).First(&room, id).Error; err != nil {
		err = translateError(err, repository.ErrRoomNotFound)
		if err == repository.ErrRoomNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	return &room, nil
}

func (r *gormRoomRepository) FindByHotel(ctx context.Context, hotelID int64) ([]*model.Room, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	rooms := []*model.Room{}
	err := gormtx.Conn(ctx, r.db).
		Where("hotel_id = ?", hotelID).
		Order("room_number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	return rooms, nil
}
