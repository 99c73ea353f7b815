package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSNPrefersDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://app:secret@db:5432/shop",
		DBHost:      "ignored",
	}
	assert.Equal(t, "postgres://app:secret@db:5432/shop", cfg.DSN())
}

func TestDSNFromDiscreteVariables(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "shop",
	}
	assert.Equal(t,
		"host=localhost user=app password=secret dbname=shop port=5433 sslmode=disable connect_timeout=5",
		cfg.DSN())
}

func TestDSNOmitsUnsetVariablesAndDefaultsPort(t *testing.T) {
	cfg := &Config{
		DBHost: "localhost",
		DBUser: "app",
		DBName: "shop",
	}

	dsn := cfg.DSN()
	assert.Equal(t,
		"host=localhost user=app dbname=shop port=5432 sslmode=disable connect_timeout=5",
		dsn)
	// A bare "password=" would be rejected by the driver.
	assert.NotContains(t, dsn, "password=")
	assert.NotContains(t, dsn, "port= ")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.Equal(t, "5000", cfg.Port)
}

func TestLoadRequiresSecretAndDatabase(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	_, err = Load()
	assert.Error(t, err)
}
