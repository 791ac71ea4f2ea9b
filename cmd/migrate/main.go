package main

import (
	"context"
	mongoMigration "hotelbooking/internal/migrations/mongo"
	pgMigration "hotelbooking/internal/migrations/postgres"
	"hotelbooking/internal/repository/mysql"
	"hotelbooking/pkg/config"
	"time"
)

const JobName = "hotel-migration"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.Connect()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting migration job", "storage", cfg.StorageDriver)
	if err := migrate(ctx, cfg); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}
	cfg.Log.Info("Migration completed successfully")
}

func migrate(ctx context.Context, cfg *config.Config) error {
	switch cfg.StorageDriver {
	case config.StorageMongo:
		return mongoMigration.RunMigration(ctx, cfg.Client.Mongo.Database(cfg.MongoDatabaseName), cfg.Log)
	case config.StoragePostgres:
		return pgMigration.RunMigration(ctx, cfg.Client.Postgres, cfg.Log)
	case config.StorageMySQL:
		return mysql.AutoMigrate(cfg.Client.MySQL.WithContext(ctx))
	default:
		cfg.Log.Info("Nothing to migrate for storage driver", "storage", cfg.StorageDriver)
		return nil
	}
}
