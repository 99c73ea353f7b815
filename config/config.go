package config

import (
	"errors"
	"os"
	"strings"
)

// Config carries every recognized environment option. It is built once in main
// and handed to the components that need it.
type Config struct {
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	JWTSecret string

	AdminUsername      string
	AdminPassword      string
	AdminResetPassword bool

	FrontendURL string
	Port        string

	SeedProducts bool
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AdminUsername:      os.Getenv("ADMIN_USERNAME"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		AdminResetPassword: os.Getenv("ADMIN_RESET_PASSWORD") == "true",
		FrontendURL:        os.Getenv("FRONTEND_URL"),
		Port:               os.Getenv("PORT"),
		SeedProducts:       os.Getenv("SEED_PRODUCTS") == "true",
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.DatabaseURL == "" && cfg.DBHost == "" {
		return nil, errors.New("DATABASE_URL or DB_HOST is required")
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:3000"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	return cfg, nil
}

// DSN returns the postgres connection string with a bounded connect timeout.
// Unset discrete variables are left out entirely; libpq rejects unquoted empty
// values like a bare "password=".
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	port := c.DBPort
	if port == "" {
		port = "5432"
	}

	var parts []string
	add := func(key, value string) {
		if value != "" {
			parts = append(parts, key+"="+value)
		}
	}
	add("host", c.DBHost)
	add("user", c.DBUser)
	add("password", c.DBPassword)
	add("dbname", c.DBName)
	parts = append(parts, "port="+port, "sslmode=disable", "connect_timeout=5")
	return strings.Join(parts, " ")
}
