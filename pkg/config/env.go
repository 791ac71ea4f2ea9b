package config

const (
	EnvPort = "PORT"

	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvLogFile         = "LOG_FILE"
	EnvLogMaxSizeMB    = "LOG_MAX_SIZE_MB"
	EnvLogMaxBackups   = "LOG_MAX_BACKUPS"
	EnvLogMaxAgeDays   = "LOG_MAX_AGE_DAYS"
	EnvEnvFile         = "ENV_FILE"
	EnvStorageDriver   = "STORAGE_DRIVER"
	EnvDBMaxConns      = "DB_MAX_CONNS"
	EnvDBConnTimeout   = "DB_CONN_TIMEOUT"
	EnvPostgresURL     = "POSTGRES_URL"
	EnvMySQLURL        = "MYSQL_URL"
	EnvDBUser          = "DB_USER"
	EnvDBPass          = "DB_PASS"
	EnvDBHost          = "DB_HOST"
	EnvDBPort          = "DB_PORT"
	EnvDBName          = "DB_NAME"
	EnvRedisURL        = "REDIS_URL"
	EnvMaxGuests       = "MAX_GUESTS_PER_REQUEST"
	EnvEventsEnabled   = "BOOKING_EVENTS_ENABLED"
	EnvEventsTopic     = "BOOKING_EVENTS_TOPIC"
	EnvEventsDLQTopic  = "BOOKING_EVENTS_DLQ_TOPIC"
	EnvAdminEnabled    = "ADMIN_ENDPOINTS_ENABLED"
	EnvRateLimit       = "RATE_LIMIT"
	EnvRequestTimeout  = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL  = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize  = "MAX_REQUEST_SIZE"
	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"
)
