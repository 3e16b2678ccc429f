package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.App.Host)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.True(t, cfg.Postgres.AutoMigrate)
	assert.Equal(t, "", cfg.Redis.Host)
	assert.Empty(t, cfg.Kafka.BrokerList())
	assert.Equal(t, "medical-reports", cfg.Storage.Bucket)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxUploadBytes)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	os.Unsetenv("JWT_SECRET_KEY")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.env")
	content := "JWT_SECRET_KEY=from-file\nAPP_PORT=9090\nKAFKA_BROKERS=a:9092, b:9092,\nINSIGHT_GATEWAY_API_KEY=key-123\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv does not override variables that are already set
	t.Setenv("APP_PORT", "7070")
	t.Cleanup(func() {
		os.Unsetenv("JWT_SECRET_KEY")
		os.Unsetenv("KAFKA_BROKERS")
		os.Unsetenv("INSIGHT_GATEWAY_API_KEY")
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.JWT.SecretKey)
	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.BrokerList())
	assert.Equal(t, "key-123", cfg.Gateway.APIKey)
}

func TestPostgresConfig_DSN(t *testing.T) {
	c := PostgresConfig{Host: "db", Port: 5433, User: "u", Password: "p", DB: "health", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5433/health?sslmode=disable", c.DSN())
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		App:      AppConfig{Port: ""},
		Postgres: PostgresConfig{MaxOpenConns: 0},
		Storage:  StorageConfig{Bucket: "", MaxUploadBytes: 0},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_PORT")
	assert.Contains(t, err.Error(), "STORAGE_BUCKET")
	assert.Contains(t, err.Error(), "INSIGHT_GATEWAY_URL")
}

func TestLoadGateway_WithoutJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	os.Unsetenv("JWT_SECRET_KEY")
	t.Setenv("INSIGHT_GATEWAY_API_KEY", "gw-key")

	cfg, err := LoadGateway()
	require.NoError(t, err)

	assert.Equal(t, "gw-key", cfg.Gateway.APIKey)
	assert.Equal(t, "https://ai.gateway.lovable.dev/v1", cfg.Gateway.URL)
	assert.Equal(t, "info", cfg.App.LogLevel)
}
