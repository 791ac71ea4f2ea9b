package config

import "time"

const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
	StorageMySQL    = "mysql"
	StorageMemory   = "memory"
)

const (
	DefaultMongoURI          = "mongodb://localhost:27017/?replicaSet=rs0"
	DefaultMongoDatabaseName = "hotelbooking"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultLogLevel      = "info"
	DefaultLogFormat     = "json"
	DefaultLogMaxSizeMB  = 50
	DefaultLogMaxBackups = 5
	DefaultLogMaxAgeDays = 14

	DefaultEnvFile       = ".env"
	DefaultStorageDriver = StorageMongo
	DefaultDBMaxConns    = 10
	DefaultDBConnTimeout = 10 * time.Second
	DefaultDBHost        = "localhost"
	DefaultMySQLPort     = "3306"

	// Mirrors the upper bound accepted for a single booking or search request.
	DefaultMaxGuestsPerRequest = 25

	DefaultEventsTopic = "booking.created"

	DefaultRateLimit = "100-M"

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
