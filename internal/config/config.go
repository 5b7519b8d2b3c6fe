// Package config loads the API configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	LogLevel           slog.Level
	LogFormat          string
	CORSAllowedOrigins []string
	MaxBodyBytes       int64
	RateLimitRPS       float64
	RateLimitBurst     int
	SeedBooks          bool
	ShutdownTimeout    time.Duration
	EnableHSTS         bool
}

// LoadEnvFiles reads .env and .env.local without overriding variables
// already present in the environment.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds a Config from the environment, applying defaults for unset keys.
func Load() (Config, error) {
	cfg := Config{
		Addr:      getEnv("APP_ADDR", ":8080"),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT: unsupported format %q", cfg.LogFormat)
	}

	for _, origin := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	var err error
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if cfg.SeedBooks, err = strconv.ParseBool(getEnv("SEED_BOOKS", "false")); err != nil {
		return Config{}, fmt.Errorf("SEED_BOOKS: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	if cfg.EnableHSTS, err = strconv.ParseBool(getEnv("ENABLE_HSTS", "false")); err != nil {
		return Config{}, fmt.Errorf("ENABLE_HSTS: %w", err)
	}

	return cfg, nil
}

// NewLogger builds the process logger described by cfg.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
