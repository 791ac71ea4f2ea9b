// Package postgres implements the repositories on PostgreSQL with pgx,
// building statements with goqu.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	pgtx "hotelbooking/pkg/db/postgres"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	dialectPostgres = "postgres"

	tableHotels   = "hotels"
	tableRooms    = "rooms"
	tableBookings = "bookings"

	uniqueViolation = "23505"
)

var builder = goqu.Dialect(dialectPostgres)

func NewRepositories(cfg *config.Config) *repository.Repositories {
	pool := cfg.Client.Postgres
	tx := pgtx.NewTransactionManager(pool)
	return &repository.Repositories{
		Hotels:   &pgHotelRepository{cfg: cfg, pool: pool, txManager: tx},
		Rooms:    &pgRoomRepository{cfg: cfg, pool: pool},
		Bookings: &pgBookingRepository{cfg: cfg, pool: pool, txManager: tx},
	}
}

type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

func toSQL(stmt sqlBuilder) (string, []any, error) {
	query, args, err := stmt.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build query: %w", err)
	}
	return query, args, nil
}

// queryAll runs a select and maps each row onto T by db tag.
func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, stmt *goqu.SelectDataset) ([]*T, error) {
	query, args, err := toSQL(stmt.Prepared(true))
	if err != nil {
		return nil, err
	}

	rows, err := pgtx.Conn(ctx, pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

// queryOne returns notFound when the select yields no row.
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, stmt *goqu.SelectDataset, notFound error) (*T, error) {
	query, args, err := toSQL(stmt.Prepared(true).Limit(1))
	if err != nil {
		return nil, err
	}

	rows, err := pgtx.Conn(ctx, pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, err
	}
	return item, nil
}

// insertReturningID runs an insert built with Returning("id").
func insertReturningID(ctx context.Context, pool *pgxpool.Pool, stmt *goqu.InsertDataset) (int64, error) {
	query, args, err := toSQL(stmt.Prepared(true).Returning("id"))
	if err != nil {
		return 0, err
	}

	var id int64
	if err := pgtx.Conn(ctx, pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, fmt.Errorf("%w: %s", repository.ErrDuplicate, pgErr.ConstraintName)
		}
		return 0, err
	}
	return id, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}
	return context.WithTimeout(ctx, timeout)
}
