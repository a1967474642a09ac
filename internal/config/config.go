package config

import (
	"os"
	"runtime"
	"strconv"
)

// Config represents the application configuration. Values come from the
// environment; CLI flags override them.
type Config struct {
	Generator GeneratorConfig
	Database  DatabaseConfig
}

// GeneratorConfig holds dataset generation defaults
type GeneratorConfig struct {
	Rows      int
	ChunkSize int
	Workers   int
	Seed      int64
	Output    string
}

// DatabaseConfig holds the optional Postgres loader settings
type DatabaseConfig struct {
	URL string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Rows:      envInt("HEALTHSYNTH_ROWS", 10000),
			ChunkSize: envInt("HEALTHSYNTH_CHUNK_SIZE", 1000),
			Workers:   envInt("HEALTHSYNTH_WORKERS", runtime.NumCPU()),
			Seed:      envInt64("HEALTHSYNTH_SEED", 42),
			Output:    envString("HEALTHSYNTH_OUTPUT", "health_records.csv"),
		},
		Database: DatabaseConfig{
			URL: envString("DATABASE_URL", ""),
		},
	}
}

func envString(key, fallback string) string {
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

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
