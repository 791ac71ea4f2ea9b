package postgres

import (
	"context"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/model"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRoomRepository struct {
	cfg  *config.Config
	pool *pgxpool.Pool
}

var roomColumns = []any{"id", "hotel_id", "room_number", "room_type", "capacity"}

func (r *pgRoomRepository) FindByID(ctx context.Context, id int64) (*model.Room, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	stmt := builder.From(tableRooms).Select(roomColumns...).Where(goqu.C("id").Eq(id))
	room, err := queryOne[model.Room](ctx, r.pool, stmt, repository.ErrRoomNotFound)
	if err != nil && err != repository.ErrRoomNotFound {
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	return room, err
}

func (r *pgRoomRepository) FindByHotel(ctx context.Context, hotelID int64) ([]*model.Room, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	stmt := builder.From(tableRooms).
		Select(roomColumns...).
		Where(goqu.C("hotel_id").Eq(hotelID)).
		Order(goqu.C("room_number").Asc())

	rooms, err := queryAll[model.Room](ctx, r.pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	return rooms, nil
}
