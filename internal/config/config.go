package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                 string
	DBPath               string
	LogLevel             string
	MaintenanceWorkers   int
	MaintenanceQueueSize int
	ReindexAt            string // HH:MM, local time of the nightly leaderboard reindex
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                 envOr("ADDR", ":8080"),
		DBPath:               envOr("DB_PATH", "file:cogniflow.db"),
		LogLevel:             envOr("LOG_LEVEL", "INFO"),
		MaintenanceWorkers:   envIntOr("MAINTENANCE_WORKER_COUNT", 1),
		MaintenanceQueueSize: envIntOr("MAINTENANCE_QUEUE_SIZE", 16),
		ReindexAt:            envOr("REINDEX_AT", "00:05"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
