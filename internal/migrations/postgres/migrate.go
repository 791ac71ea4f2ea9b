// Package postgres applies the relational schema to a PostgreSQL database.
// Every statement is idempotent, so the job can be rerun on each deploy.
package postgres

import (
	"context"
	"fmt"
	"hotelbooking/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

var Statements = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
		id   BIGSERIAL PRIMARY KEY,
		name VARCHAR(200) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_hotels_name ON hotels (name)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id          BIGSERIAL PRIMARY KEY,
		hotel_id    BIGINT NOT NULL REFERENCES hotels (id) ON DELETE CASCADE,
		room_number INTEGER NOT NULL,
		room_type   VARCHAR(20) NOT NULL CHECK (room_type IN ('Single', 'Double', 'Deluxe')),
		capacity    INTEGER NOT NULL CHECK (capacity > 0),
		CONSTRAINT uq_rooms_hotel_number UNIQUE (hotel_id, room_number)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id             BIGSERIAL PRIMARY KEY,
		room_id        BIGINT NOT NULL REFERENCES rooms (id) ON DELETE CASCADE,
		arrival_date   DATE NOT NULL,
		departure_date DATE NOT NULL,
		guests         INTEGER NOT NULL CHECK (guests > 0),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT chk_bookings_stay CHECK (departure_date > arrival_date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_room_dates ON bookings (room_id, arrival_date, departure_date)`,
}

// RunMigration applies Statements in a single transaction.
func RunMigration(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	log.Info("Running Postgres migrations", "statements", len(Statements))

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, stmt := range Statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("statement %d failed: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}
	log.Info("All Postgres migrations applied")
	return nil
}
