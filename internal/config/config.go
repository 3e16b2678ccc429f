package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root application configuration.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Gateway  GatewayConfig
	Storage  StorageConfig
}

// AppConfig holds HTTP server and logging settings.
type AppConfig struct {
	Host            string        `env:"APP_HOST"             env-default:"localhost"`
	Port            string        `env:"APP_PORT"             env-default:"8080"`
	LogLevel        string        `env:"APP_LOG_LEVEL"        env-default:"info"`
	LogFormat       string        `env:"APP_LOG_FORMAT"       env-default:"json"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// PostgresConfig holds the record store connection settings.
type PostgresConfig struct {
	Host         string `env:"POSTGRES_HOST"           env-default:"localhost"`
	Port         int    `env:"POSTGRES_PORT"           env-default:"5432"`
	User         string `env:"POSTGRES_USER"           env-default:"user"`
	Password     string `env:"POSTGRES_PASSWORD"       env-default:"password"`
	DB           string `env:"POSTGRES_DB"             env-default:"health"`
	SSLMode      string `env:"POSTGRES_SSLMODE"        env-default:"disable"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"8"`
	AutoMigrate  bool   `env:"POSTGRES_AUTO_MIGRATE"   env-default:"true"`
}

// DSN returns the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DB, c.SSLMode)
}

// RedisConfig holds the insight counter store settings. An empty Host disables Redis.
type RedisConfig struct {
	Host         string `env:"REDIS_HOST"           env-default:""`
	Port         int    `env:"REDIS_PORT"           env-default:"6379"`
	DB           int    `env:"REDIS_DB"             env-default:"0"`
	Password     string `env:"REDIS_PASSWORD"       env-default:""`
	PoolSize     int    `env:"REDIS_POOL_SIZE"      env-default:"10"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KafkaConfig holds domain event publishing settings. Empty Brokers disables publishing.
type KafkaConfig struct {
	Brokers string `env:"KAFKA_BROKERS" env-default:""`
	Topic   string `env:"KAFKA_TOPIC"   env-default:"health-records.events"`
}

// BrokerList splits Brokers on commas, dropping blanks.
func (c KafkaConfig) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// JWTConfig holds the settings used to verify access tokens issued by the auth platform.
type JWTConfig struct {
	SecretKey string        `env:"JWT_SECRET_KEY" env-required:"true"`
	Exp       time.Duration `env:"JWT_EXP"        env-default:"1h"`
}

// GatewayConfig holds the language-model gateway settings.
// APIKey is read once at start; when it is empty and APIKeySecretID is set
// the key is resolved from AWS Secrets Manager.
type GatewayConfig struct {
	URL            string `env:"INSIGHT_GATEWAY_URL"                  env-default:"https://ai.gateway.lovable.dev/v1"`
	APIKey         string `env:"INSIGHT_GATEWAY_API_KEY"              env-default:""`
	APIKeySecretID string `env:"INSIGHT_GATEWAY_API_KEY_SECRET_ID"    env-default:""`
}

// StorageConfig holds the object store settings for report uploads.
type StorageConfig struct {
	Bucket         string `env:"STORAGE_BUCKET"           env-default:"medical-reports"`
	Region         string `env:"STORAGE_REGION"           env-default:"us-east-1"`
	Endpoint       string `env:"STORAGE_ENDPOINT"         env-default:""`
	PublicBaseURL  string `env:"STORAGE_PUBLIC_BASE_URL"  env-default:""`
	UsePathStyle   bool   `env:"STORAGE_USE_PATH_STYLE"   env-default:"false"`
	MaxUploadBytes int64  `env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// Load reads the env file at path (if present) into the process environment
// and decodes the environment into a Config. Variables already set in the
// environment take precedence over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that cleanenv cannot express as tags.
func (c *Config) Validate() error {
	var errs []error

	if c.App.Port == "" {
		errs = append(errs, errors.New("APP_PORT must not be empty"))
	}
	if c.Postgres.MaxOpenConns < 1 {
		errs = append(errs, errors.New("POSTGRES_MAX_OPEN_CONNS must be positive"))
	}
	if c.Storage.Bucket == "" {
		errs = append(errs, errors.New("STORAGE_BUCKET must not be empty"))
	}
	if c.Storage.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("STORAGE_MAX_UPLOAD_BYTES must be positive"))
	}
	if c.Gateway.URL == "" {
		errs = append(errs, errors.New("INSIGHT_GATEWAY_URL must not be empty"))
	}

	return errors.Join(errs...)
}

// LoadGateway decodes only the application and gateway sections from the
// environment. It serves entry points that never touch the record store.
func LoadGateway() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg.App); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cleanenv.ReadEnv(&cfg.Gateway); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if cfg.Gateway.URL == "" {
		return nil, errors.New("config: validate: INSIGHT_GATEWAY_URL must not be empty")
	}
	return &cfg, nil
}
