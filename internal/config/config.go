package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration sourced from environment variables.
type Config struct {
	Environment        string
	HTTPPort           string
	DatabasePath       string
	LogDir             string
	Debug              bool
	CORSAllowedOrigins []string
	// StrictLevelFilter rejects unrecognized ?level= values instead of ignoring them.
	StrictLevelFilter bool
}

// IsDevelopment reports whether the service runs in the development environment.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads env vars and falls back to defaults so the server can boot with zero configuration.
// A .env file in the working directory is applied first when present; real env vars win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Environment:        getEnv("RISK_ENV", "development"),
		HTTPPort:           getEnv("RISK_HTTP_PORT", "5000"),
		DatabasePath:       getEnv("RISK_DB_PATH", filepath.Join("data", "risks.db")),
		LogDir:             getEnv("RISK_LOG_DIR", filepath.Join("data", "logs")),
		CORSAllowedOrigins: splitList(getEnv("RISK_CORS_ORIGINS", "http://localhost:5173")),
	}

	var err error
	if cfg.Debug, err = getBool("RISK_DEBUG", cfg.IsDevelopment()); err != nil {
		return Config{}, err
	}
	if cfg.StrictLevelFilter, err = getBool("RISK_STRICT_LEVEL_FILTER", false); err != nil {
		return Config{}, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return Config{}, fmt.Errorf("ensure data directory: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
