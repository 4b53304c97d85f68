package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// DatabaseURL, when set, wins over the discrete DB_* parameters.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	DBHost string `envconfig:"DB_HOST" default:"localhost"`
	DBPort string `envconfig:"DB_PORT" default:"5432"`
	DBUser string `envconfig:"DB_USER" default:"postgres"`
	DBPass string `envconfig:"DB_PASS" default:"postgres"`
	DBName string `envconfig:"DB_NAME" default:"postgres"`

	HTTPPort string `envconfig:"HTTP_PORT" default:":8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment, with an optional .env file.
func Load(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}

	logger.Infof("Configuration loaded: HTTP Port=%s, LogLevel=%s", cfg.HTTPPort, cfg.LogLevel)
	return &cfg, nil
}

// ResolveDatabaseURL applies the documented precedence: an explicit
// DATABASE_URL wins; otherwise the URL is assembled from the DB_* parameters.
func (c *Config) ResolveDatabaseURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		url.QueryEscape(c.DBPass),
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
