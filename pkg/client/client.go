package client

import (
	"context"
	"fmt"
	"hotelbooking/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Client holds the connections opened for the configured storage driver.
// Only one of Mongo, Postgres and MySQL is set, or Memory when data is kept
// in process. Redis is optional.
type Client struct {
	Mongo    *mongo.Client
	Postgres *pgxpool.Pool
	MySQL    *gorm.DB
	Redis    *redis.Client
	Memory   bool
}

func NewClient() *Client {
	return &Client{}
}

// Ping checks the active storage and Redis, when configured.
func (c *Client) Ping(ctx context.Context) error {
	switch {
	case c.Mongo != nil:
		if err := c.Mongo.Ping(ctx, nil); err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
	case c.Postgres != nil:
		if err := c.Postgres.Ping(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
	case c.MySQL != nil:
		sqlDB, err := c.MySQL.DB()
		if err != nil {
			return fmt.Errorf("mysql: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("mysql: %w", err)
		}
	case c.Memory:
	default:
		return fmt.Errorf("no storage client configured")
	}

	if c.Redis != nil {
		if err := c.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

// StorageName names the active storage for logs and readiness output.
func (c *Client) StorageName() string {
	switch {
	case c.Mongo != nil:
		return "mongo"
	case c.Postgres != nil:
		return "postgres"
	case c.MySQL != nil:
		return "mysql"
	case c.Memory:
		return "memory"
	default:
		return "none"
	}
}

// SetMemory marks the process as running without an external store.
func (c *Client) SetMemory(log *logger.Logger) {
	log.Warn("Using in-memory storage, data will not survive a restart")
	c.Memory = true
}

func (c *Client) GracefulShutdown(log *logger.Logger, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if c.Mongo != nil {
		if err := c.Mongo.Disconnect(ctx); err != nil {
			log.Error("Failed to disconnect from MongoDB", "error", err)
		} else {
			log.Info("Disconnected from MongoDB")
		}
	}
	if c.Postgres != nil {
		c.Postgres.Close()
		log.Info("Disconnected from PostgreSQL")
	}
	if c.MySQL != nil {
		if sqlDB, err := c.MySQL.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Error("Failed to close MySQL connection", "error", err)
			} else {
				log.Info("Disconnected from MySQL")
			}
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Error("Failed to close Redis connection", "error", err)
		} else {
			log.Info("Redis connection closed")
		}
	}
}
