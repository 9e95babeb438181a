package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "demo-project")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverFirestore, cfg.DBDriver)
	assert.Equal(t, int64(86400), cfg.JWTExpiry)
	assert.Equal(t, int64(300), cfg.CacheTTL)
	assert.Equal(t, "dev-secret-change-me", cfg.JWTSecret)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoadMongoFromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "Mongo")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DATABASE", "estates")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "3600")
	t.Setenv("FIREBASE_AUTH_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://estates.example")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DriverMongo, cfg.DBDriver)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "estates", cfg.MongoDatabase)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, int64(3600), cfg.JWTExpiry)
	assert.Equal(t, []string{"http://localhost:3000", "https://estates.example"}, cfg.AllowedOrigins())
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")

	_, err := load(viper.New())
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestLoadRequiresSecretInProduction(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "demo-project")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := load(viper.New())
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadRejectsMemoryDriverInProduction(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "s3cret")

	_, err := load(viper.New())
	assert.ErrorContains(t, err, "cannot be used in production")
}
