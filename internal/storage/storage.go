// Package storage picks the repository implementation for the configured
// STORAGE_DRIVER.
package storage

import (
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/internal/repository/memory"
	"hotelbooking/internal/repository/mongodb"
	"hotelbooking/internal/repository/mysql"
	"hotelbooking/internal/repository/postgres"
	"hotelbooking/pkg/config"
)

// NewRepositories expects cfg.Connect to have opened the driver's client.
func NewRepositories(cfg *config.Config) (*repository.Repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageMongo:
		if cfg.Client.Mongo == nil {
			return nil, fmt.Errorf("mongo client is not connected")
		}
		return mongodb.NewRepositories(cfg), nil
	case config.StoragePostgres:
		if cfg.Client.Postgres == nil {
			return nil, fmt.Errorf("postgres pool is not connected")
		}
		return postgres.NewRepositories(cfg), nil
	case config.StorageMySQL:
		if cfg.Client.MySQL == nil {
			return nil, fmt.Errorf("mysql connection is not open")
		}
		return mysql.NewRepositories(cfg), nil
	case config.StorageMemory:
		return memory.NewRepositories(memory.NewStore()), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
