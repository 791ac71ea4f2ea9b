package client

import (
	"context"
	"hotelbooking/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func (c *Client) SetPostgres(log *logger.Logger, url string, maxConns int32, connTimeout time.Duration) {
	poolCfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		log.Fatal("Unable to parse PostgreSQL URL", "error", err)
	}

	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = min(2, maxConns)
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Fatal("Failed to create PostgreSQL pool", "error", err)
	}

	if err := pool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping PostgreSQL", "error", err)
	}

	log.Info("Successfully connected to PostgreSQL", "max_conns", maxConns)
	c.Postgres = pool
}
