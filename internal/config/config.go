// Package config provides configuration loaded from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Fixture listings
	FixturesDir string
	FirstRound  int
	LastRound   int

	// Lineups API
	BaseURL     string
	HTTPTimeout time.Duration

	// Optional randomized delay between match fetches; both zero disables
	DelayMinMs int
	DelayMaxMs int

	// Output
	OutputPath string

	// Optional sinks; empty disables
	S3Bucket     string
	S3Key        string
	RecordsTable string
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	dir := envOr("FIXTURES_DIR", "")
	if dir == "" {
		return nil, fmt.Errorf("FIXTURES_DIR must be set")
	}
	first := envInt("FIRST_ROUND", 1)
	last := envInt("LAST_ROUND", 26)
	if first < 1 || last < first {
		return nil, fmt.Errorf("invalid round range %d-%d", first, last)
	}

	return &Config{
		FixturesDir: dir,
		FirstRound:  first,
		LastRound:   last,

		BaseURL:     envOr("LINEUPS_BASE_URL", "https://www.sofascore.com/api/v1"),
		HTTPTimeout: time.Duration(envInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,

		DelayMinMs: envInt("FETCH_DELAY_MIN_MS", 0),
		DelayMaxMs: envInt("FETCH_DELAY_MAX_MS", 0),

		OutputPath: envOr("OUTPUT_CSV", "player_stats.csv"),

		S3Bucket:     envOr("S3_BUCKET", ""),
		S3Key:        envOr("S3_KEY", ""),
		RecordsTable: envOr("RECORDS_TABLE_NAME", ""),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
