package client

import (
	"context"
	"hotelbooking/pkg/logger"
	"time"

	"github.com/redis/go-redis/v9"
)

func (c *Client) SetRedis(log *logger.Logger, redisURL string, connTimeout time.Duration) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Unable to parse Redis URL", "error", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis", "error", err)
	}

	log.Info("Successfully connected to Redis")
	c.Redis = client
}
