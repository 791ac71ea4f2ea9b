package config

import (
	"errors"
	"fmt"
	"hotelbooking/pkg/client"
	"hotelbooking/pkg/logger"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ulule/limiter/v3"
)

type Config struct {
	Port string

	StorageDriver string
	DBMaxConns    int
	DBConnTimeout time.Duration

	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	PostgresURL string
	MySQLDSN    string

	RedisURL string

	RateLimit      string
	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	MaxGuestsPerRequest int
	AdminEnabled        bool

	EventsEnabled  bool
	EventsTopic    string
	EventsDLQTopic string

	Log    *logger.Logger
	Client *client.Client
}

// Load reads the optional env file, then the environment, and exits on
// invalid configuration.
func Load(serviceName string) *Config {
	envFileErr := loadEnvFile(getEnvStr(EnvEnvFile, DefaultEnvFile))

	cfg := FromEnv(serviceName)
	if envFileErr != nil {
		cfg.Log.Warn("Could not load env file, continuing with process environment", "error", envFileErr)
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// FromEnv builds a Config from the process environment without validating it.
func FromEnv(serviceName string) *Config {
	mysqlDSN, _ := resolveMySQLDSN()

	return &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		StorageDriver: strings.ToLower(getEnvStr(EnvStorageDriver, DefaultStorageDriver)),
		DBMaxConns:    getEnvNum(EnvDBMaxConns, DefaultDBMaxConns),
		DBConnTimeout: getEnvDuration(EnvDBConnTimeout, DefaultDBConnTimeout),

		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		PostgresURL: getEnvStr(EnvPostgresURL, ""),
		MySQLDSN:    mysqlDSN,

		RedisURL: getEnvStr(EnvRedisURL, ""),

		RateLimit:      getEnvStr(EnvRateLimit, DefaultRateLimit),
		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		MaxGuestsPerRequest: getEnvNum(EnvMaxGuests, DefaultMaxGuestsPerRequest),
		AdminEnabled:        getEnvBool(EnvAdminEnabled, true),

		EventsEnabled:  getEnvBool(EnvEventsEnabled, false),
		EventsTopic:    getEnvStr(EnvEventsTopic, DefaultEventsTopic),
		EventsDLQTopic: getEnvStr(EnvEventsDLQTopic, ""),

		Log:    newLogger(serviceName),
		Client: client.NewClient(),
	}
}

func newLogger(serviceName string) *logger.Logger {
	var file *logger.FileConfig
	if path := getEnvStr(EnvLogFile, ""); path != "" {
		file = &logger.FileConfig{
			Path:       path,
			MaxSizeMB:  getEnvNum(EnvLogMaxSizeMB, DefaultLogMaxSizeMB),
			MaxBackups: getEnvNum(EnvLogMaxBackups, DefaultLogMaxBackups),
			MaxAgeDays: getEnvNum(EnvLogMaxAgeDays, DefaultLogMaxAgeDays),
			Compress:   true,
		}
	}

	return logger.New(logger.Config{
		Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
		Format:    getEnvStr(EnvLogFormat, DefaultLogFormat),
		AddSource: true,
		Service:   serviceName,
		File:      file,
	})
}

// Connect opens the client for the configured storage driver and, when
// REDIS_URL is set, the shared Redis client.
func (cfg *Config) Connect() {
	switch cfg.StorageDriver {
	case StorageMongo:
		cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
	case StoragePostgres:
		cfg.Client.SetPostgres(cfg.Log, cfg.PostgresURL, int32(cfg.DBMaxConns), cfg.DBConnTimeout)
	case StorageMySQL:
		cfg.Client.SetMySQL(cfg.Log, cfg.MySQLDSN, cfg.DBMaxConns, cfg.DBConnTimeout)
	case StorageMemory:
		cfg.Client.SetMemory(cfg.Log)
	}

	if cfg.RedisURL != "" {
		cfg.Client.SetRedis(cfg.Log, cfg.RedisURL, cfg.DBConnTimeout)
	}
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	switch cfg.StorageDriver {
	case StorageMongo:
		if cfg.MongoURI == "" {
			errors = append(errors, "MongoURI cannot be empty")
		} else if len(cfg.MongoURI) < 10 || !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
			errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactURI(cfg.MongoURI)))
		}
		if cfg.MongoDatabaseName == "" {
			errors = append(errors, "MongoDatabaseName cannot be empty")
		}
		if cfg.MongoConnTimeout <= 0 {
			errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
		}
	case StoragePostgres:
		if !regexp.MustCompile(`^postgres(ql)?://`).MatchString(cfg.PostgresURL) {
			errors = append(errors, fmt.Sprintf("PostgresURL must start with 'postgres://' or 'postgresql://', got: %s", redactURI(cfg.PostgresURL)))
		}
	case StorageMySQL:
		if cfg.MySQLDSN == "" {
			errors = append(errors, "MySQL DSN could not be resolved from MYSQL_URL or DB_* variables")
		}
	case StorageMemory:
	default:
		errors = append(errors, fmt.Sprintf("StorageDriver must be one of [%s, %s, %s, %s], got: %s", StorageMongo, StoragePostgres, StorageMySQL, StorageMemory, cfg.StorageDriver))
	}

	if cfg.RedisURL != "" && !regexp.MustCompile(`^rediss?://`).MatchString(cfg.RedisURL) {
		errors = append(errors, fmt.Sprintf("RedisURL must start with 'redis://' or 'rediss://', got: %s", redactURI(cfg.RedisURL)))
	}

	if cfg.DBMaxConns <= 0 {
		errors = append(errors, fmt.Sprintf("DBMaxConns must be positive, got: %d", cfg.DBMaxConns))
	}
	if cfg.DBConnTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("DBConnTimeout must be positive, got: %s", cfg.DBConnTimeout))
	}
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		errors = append(errors, fmt.Sprintf("RateLimit must look like '100-M', got: %s", cfg.RateLimit))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.MaxGuestsPerRequest < 1 {
		errors = append(errors, fmt.Sprintf("MaxGuestsPerRequest must be at least 1, got: %d", cfg.MaxGuestsPerRequest))
	}
	if cfg.EventsEnabled && cfg.EventsTopic == "" {
		errors = append(errors, "EventsTopic cannot be empty when booking events are enabled")
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"storage_driver", cfg.StorageDriver,
		"mongo_uri", redactURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"postgres_url", redactURI(cfg.PostgresURL),
		"mysql_dsn_set", cfg.MySQLDSN != "",
		"redis_url", redactURI(cfg.RedisURL),
		"db_max_conns", cfg.DBMaxConns,
		"port", cfg.Port,
		"rate_limit", cfg.RateLimit,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"max_guests_per_request", cfg.MaxGuestsPerRequest,
		"admin_enabled", cfg.AdminEnabled,
		"events_enabled", cfg.EventsEnabled,
		"events_topic", cfg.EventsTopic,
	)
}

var credentialRegex = regexp.MustCompile(`^([a-z+]+://)[^:/@]+:[^@]+@`)

func redactURI(uri string) string {
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log, cfg.ShutdownTimeout)
}
