package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	// Driver selects the document store backend: memory, postgres or sqlite.
	Driver      string
	DatabaseURL string
	SQLitePath  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	Collection   string
	RequireTitle bool

	HTTPAddr string
	LogLevel slog.Level
}

func Load() Config {
	return Config{
		Driver:          strings.ToLower(getenv("DOCSTORE_DRIVER", DriverMemory)),
		DatabaseURL:     getenv("DATABASE_URL", ""),
		SQLitePath:      getenv("SQLITE_PATH", "notes.db"),
		MaxOpenConns:    getenvInt("DB_MAX_OPEN", 20),
		MaxIdleConns:    getenvInt("DB_MAX_IDLE", 10),
		ConnMaxLifetime: getenvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		ConnMaxIdleTime: getenvDuration("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
		Collection:      getenv("NOTES_COLLECTION", "notes"),
		RequireTitle:    getenvBool("NOTES_REQUIRE_TITLE", false),
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		LogLevel:        getenvLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvLevel(key string, def slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return def
	}
	return l
}
