package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_ServerConfig(t *testing.T) {
	os.Setenv("SERVER_HOST", "127.0.0.1")
	os.Setenv("SERVER_PORT", "9090")
	defer func() {
		os.Unsetenv("SERVER_HOST")
		os.Unsetenv("SERVER_PORT")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("DB_NAME")
	os.Unsetenv("TYPESENSE_URL")
	os.Unsetenv("APP_ENV")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "school_directory", cfg.Database.Database)
	assert.Equal(t, "http://localhost:8108", cfg.Typesense.URL)
	assert.Equal(t, "development", cfg.Env)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "app",
		Password: "secret",
		Database: "schools",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=schools sslmode=disable", cfg.DatabaseDSN())
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	os.Setenv("REDIS_PORT", "not-a-number")
	defer os.Unsetenv("REDIS_PORT")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 6379, cfg.Redis.Port)
}
