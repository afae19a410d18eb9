package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/budjb/things-we-make/internal/domain"
	"github.com/budjb/things-we-make/internal/shell"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port        string
	BaseURL     string
	Environment string // development, staging, production
	LogLevel    slog.Level

	// Content
	ContentIndex string
	DatabaseURL  string // optional; categories come from Postgres when set

	// Session
	SessionSecret string
	SessionMaxAge time.Duration

	// Site chrome
	SiteTitle          string
	SiteVariant        shell.Variant
	SiteRobots         string
	CopyrightStartYear int
	AttributionName    string
	AttributionURL     string
}

// Load reads configuration from environment variables.
// It first loads envFiles (or .env when none are given), ignoring missing files.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		ContentIndex: getEnv("CONTENT_INDEX", "content/recipes.yaml"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionMaxAge: 30 * 24 * time.Hour,

		SiteTitle:       getEnv("SITE_TITLE", "Things We Make"),
		SiteRobots:      getEnv("SITE_ROBOTS", "noindex,nofollow"),
		AttributionName: getEnv("ATTRIBUTION_NAME", "Bud Byrd"),
		AttributionURL:  getEnv("ATTRIBUTION_URL", "https://budjb.dev"),
	}

	// Need 64 bytes for hash key + block key
	if len(cfg.SessionSecret) < 64 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 64 characters, got %d", len(cfg.SessionSecret))
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	variant, err := shell.ParseVariant(getEnv("SITE_VARIANT", string(shell.VariantCurrent)))
	if err != nil {
		return nil, fmt.Errorf("SITE_VARIANT: %w", err)
	}
	cfg.SiteVariant = variant

	year, err := strconv.Atoi(getEnv("COPYRIGHT_START_YEAR", strconv.Itoa(domain.DefaultCopyrightStartYear)))
	if err != nil {
		return nil, fmt.Errorf("COPYRIGHT_START_YEAR: %w", err)
	}
	cfg.CopyrightStartYear = year

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Shell returns the page chrome configuration.
func (c *Config) Shell() shell.Config {
	return shell.Config{
		Variant:            c.SiteVariant,
		SiteTitle:          c.SiteTitle,
		Robots:             c.SiteRobots,
		CopyrightStartYear: c.CopyrightStartYear,
		AttributionName:    c.AttributionName,
		AttributionURL:     c.AttributionURL,
	}
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
