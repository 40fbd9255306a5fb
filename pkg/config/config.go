package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig   `envconfig:"SERVER"`
	Upstream UpstreamConfig `envconfig:"UPSTREAM"`
	Session  SessionConfig  `envconfig:"SESSION"`
	Calendar CalendarConfig `envconfig:"CALENDAR"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Port            string   `envconfig:"PORT" default:"8080"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// UpstreamConfig holds the upstream business API configuration
type UpstreamConfig struct {
	BaseURL       string        `envconfig:"BASE_URL" default:"http://localhost:9000/api"`
	APIKey        string        `envconfig:"API_KEY"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"10s"`
	ResyncMaxWait time.Duration `envconfig:"RESYNC_MAX_WAIT" default:"30s"`
}

// SessionConfig holds JWT session configuration
type SessionConfig struct {
	Secret string        `envconfig:"SECRET" default:"change-me-in-production"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"12h"`
}

// CalendarConfig holds calendar view configuration
type CalendarConfig struct {
	// Timezone is the display location used to derive local date keys from
	// meeting instants.
	Timezone string `envconfig:"TIMEZONE" default:"Local"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("incial", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("INCIAL_UPSTREAM_BASE_URL is required")
	}
	if c.Server.Environment == "production" && c.Session.Secret == "change-me-in-production" {
		return fmt.Errorf("INCIAL_SESSION_SECRET must be set in production")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("INCIAL_CALENDAR_TIMEZONE is invalid: %w", err)
	}
	return nil
}

// Location resolves the configured display timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Calendar.Timezone == "" || c.Calendar.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Calendar.Timezone)
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
