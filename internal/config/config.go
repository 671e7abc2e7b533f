package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// FACEIT API
	APIToken        string
	BaseURL         string
	UpstreamTimeout time.Duration

	// Lookup
	DefaultRegion            string
	GameID                   string
	MatchHistoryLimit        int
	MaxConcurrentExtractions int
	LookupTimeout            time.Duration
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 5000),
		Env:  getEnv("ENV", "development"),

		BaseURL:         getEnv("FACEIT_BASE_URL", "https://open.faceit.com/data/v4"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),

		DefaultRegion:            strings.ToUpper(getEnv("DEFAULT_REGION", "EU")),
		GameID:                   getEnv("GAME_ID", "cs2"),
		MatchHistoryLimit:        getEnvInt("MATCH_HISTORY_LIMIT", 20),
		MaxConcurrentExtractions: getEnvInt("MAX_CONCURRENT_EXTRACTIONS", 0),
		LookupTimeout:            getEnvDuration("LOOKUP_TIMEOUT", 30*time.Second),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing. API_TOKEN is the legacy name.
	cfg.APIToken = getEnv("FACEIT_API_TOKEN", os.Getenv("API_TOKEN"))
	if cfg.APIToken == "" {
		return nil, errors.New("missing required environment variable: FACEIT_API_TOKEN")
	}

	if cfg.MatchHistoryLimit <= 0 || cfg.MatchHistoryLimit > 100 {
		return nil, fmt.Errorf("MATCH_HISTORY_LIMIT must be between 1 and 100, got %d", cfg.MatchHistoryLimit)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production logging.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
