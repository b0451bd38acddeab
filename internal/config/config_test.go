package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Ensure clean env for this test.
	os.Clearenv()

	cfg := Load()
	require.Equal(t, DriverMemory, cfg.Driver)
	require.Equal(t, "", cfg.DatabaseURL)
	require.Equal(t, "notes.db", cfg.SQLitePath)
	require.Equal(t, 20, cfg.MaxOpenConns)
	require.Equal(t, 10, cfg.MaxIdleConns)
	require.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	require.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
	require.Equal(t, "notes", cfg.Collection)
	require.False(t, cfg.RequireTitle)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_OverridesAndInvalidValues(t *testing.T) {
	t.Cleanup(os.Clearenv)

	t.Run("valid overrides", func(t *testing.T) {
		os.Setenv("DOCSTORE_DRIVER", "Postgres")
		os.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db?sslmode=disable")
		os.Setenv("SQLITE_PATH", "/tmp/n.db")
		os.Setenv("DB_MAX_OPEN", "5")
		os.Setenv("DB_MAX_IDLE", "2")
		os.Setenv("DB_CONN_MAX_LIFETIME", "1m")
		os.Setenv("DB_CONN_MAX_IDLE_TIME", "10s")
		os.Setenv("NOTES_COLLECTION", "journal")
		os.Setenv("NOTES_REQUIRE_TITLE", "true")
		os.Setenv("HTTP_ADDR", ":9999")
		os.Setenv("LOG_LEVEL", "debug")

		cfg := Load()
		require.Equal(t, DriverPostgres, cfg.Driver)
		require.Equal(t, "postgres://u:p@localhost:5432/db?sslmode=disable", cfg.DatabaseURL)
		require.Equal(t, "/tmp/n.db", cfg.SQLitePath)
		require.Equal(t, 5, cfg.MaxOpenConns)
		require.Equal(t, 2, cfg.MaxIdleConns)
		require.Equal(t, time.Minute, cfg.ConnMaxLifetime)
		require.Equal(t, 10*time.Second, cfg.ConnMaxIdleTime)
		require.Equal(t, "journal", cfg.Collection)
		require.True(t, cfg.RequireTitle)
		require.Equal(t, ":9999", cfg.HTTPAddr)
		require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("DB_MAX_OPEN", "abc")
		os.Setenv("DB_MAX_IDLE", "xyz")
		os.Setenv("DB_CONN_MAX_LIFETIME", "bad")
		os.Setenv("DB_CONN_MAX_IDLE_TIME", "bad")
		os.Setenv("NOTES_REQUIRE_TITLE", "maybe")
		os.Setenv("LOG_LEVEL", "loud")

		cfg := Load()
		require.Equal(t, 20, cfg.MaxOpenConns)
		require.Equal(t, 10, cfg.MaxIdleConns)
		require.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
		require.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
		require.False(t, cfg.RequireTitle)
		require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	})
}
