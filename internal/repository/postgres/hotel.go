package postgres

import (
	"context"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/db"
	pgtx "hotelbooking/pkg/db/postgres"
	"hotelbooking/pkg/model"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgHotelRepository struct {
	cfg       *config.Config
	pool      *pgxpool.Pool
	txManager db.TransactionManager
}

var hotelColumns = []any{"id", "name"}

func (r *pgHotelRepository) FindByID(ctx context.Context, id int64) (*model.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	stmt := builder.From(tableHotels).Select(hotelColumns...).Where(goqu.C("id").Eq(id))
	hotel, err := queryOne[model.Hotel](ctx, r.pool, stmt, repository.ErrHotelNotFound)
	if err != nil && err != repository.ErrHotelNotFound {
		return nil, fmt.Errorf("failed to find hotel: %w", err)
	}
	return hotel, err
}

func (r *pgHotelRepository) Search(ctx context.Context, nameContains string) ([]*model.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	stmt := builder.From(tableHotels).Select(hotelColumns...).Order(goqu.C("name").Asc(), goqu.C("id").Asc())
	if nameContains != "" {
		stmt = stmt.Where(goqu.C("name").ILike("%" + escapeLike(nameContains) + "%"))
	}

	hotels, err := queryAll[model.Hotel](ctx, r.pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	return hotels, nil
}

func (r *pgHotelRepository) CreateWithRooms(ctx context.Context, hotel *model.Hotel) error {
	return r.txManager.ExecuteTransaction(ctx, func(ctx context.Context) error {
		id, err := insertReturningID(ctx, r.pool, builder.Insert(tableHotels).Rows(goqu.Record{"name": hotel.Name}))
		if err != nil {
			return fmt.Errorf("failed to create hotel: %w", err)
		}
		hotel.ID = id

		for i := range hotel.Rooms {
			room := &hotel.Rooms[i]
			room.HotelID = hotel.ID
			roomID, err := insertReturningID(ctx, r.pool, builder.Insert(tableRooms).Rows(goqu.Record{
				"hotel_id":    room.HotelID,
				"room_number": room.RoomNumber,
				"room_type":   string(room.RoomType),
				"capacity":    room.Capacity,
			}))
			if err != nil {
				return fmt.Errorf("failed to create room %d: %w", room.RoomNumber, err)
			}
			room.ID = roomID
		}
		return nil
	})
}

func (r *pgHotelRepository) DeleteAll(ctx context.Context) error {
	return r.txManager.ExecuteTransaction(ctx, func(ctx context.Context) error {
		for _, table := range []string{tableBookings, tableRooms, tableHotels} {
			query, args, err := toSQL(builder.Delete(table))
			if err != nil {
				return err
			}
			if _, err := pgtx.Conn(ctx, r.pool).Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
