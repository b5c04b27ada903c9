package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	defaultAddr         = ":8080"
	defaultBaseURL      = "http://localhost:8080"
	defaultCTARateLimit = 10
)

// Provider exposes read-only access to application configuration.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetCTARateLimit() float64
}

// Config holds all configuration for the application.
type Config struct {
	Addr          string  `validate:"required"`
	AppBaseURL    string  `validate:"required,url"`
	SessionSecret string  `validate:"required,min=16"`
	LogFormat     string  `validate:"omitempty,oneof=text json"`
	LogLevel      string  `validate:"omitempty,oneof=debug info warn error"`
	CTARateLimit  float64 `validate:"gt=0"`
}

// New loads configuration from a .env file (if any) and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds and validates a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("APP_ADDR", defaultAddr),
		AppBaseURL:    getEnv("APP_BASE_URL", defaultBaseURL),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		CTARateLimit:  defaultCTARateLimit,
	}

	if v := os.Getenv("CTA_RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse CTA_RATE_LIMIT: %w", err)
		}
		cfg.CTARateLimit = limit
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAddr() string          { return c.Addr }
func (c *Config) GetAppBaseURL() string    { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetLogFormat() string     { return c.LogFormat }
func (c *Config) GetLogLevel() string      { return c.LogLevel }
func (c *Config) GetCTARateLimit() float64 { return c.CTARateLimit }
