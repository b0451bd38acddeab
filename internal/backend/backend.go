// Package backend builds the configured document store.
package backend

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"example.com/notes-app/internal/config"
	"example.com/notes-app/internal/db"
	"example.com/notes-app/internal/docstore"
	"example.com/notes-app/internal/docstore/sqlstore"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type closers []io.Closer

func (cs closers) Close() error {
	var first error
	for _, c := range cs {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open returns the collection selected by cfg.Driver and a closer that
// releases its resources.
func Open(ctx context.Context, cfg config.Config) (docstore.Collection, io.Closer, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		slog.Warn("using in-memory document store; notes are lost on exit")
		return docstore.NewMemory(), nopCloser{}, nil

	case config.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required for driver %q", cfg.Driver)
		}
		conn, err := db.Open(ctx, cfg.DatabaseURL, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime)
		if err != nil {
			return nil, nil, err
		}
		return newSQLStore(ctx, conn, sqlstore.Postgres)

	case config.DriverSQLite:
		conn, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return newSQLStore(ctx, conn, sqlstore.SQLite)

	default:
		return nil, nil, fmt.Errorf("unknown DOCSTORE_DRIVER %q", cfg.Driver)
	}
}

func newSQLStore(ctx context.Context, conn *db.DB, d sqlstore.Dialect) (docstore.Collection, io.Closer, error) {
	s, err := sqlstore.New(ctx, conn.SQL, d)
	if err != nil {
		_ = conn.SQL.Close()
		return nil, nil, err
	}
	slog.Debug("document store ready", "driver", d.Name)
	return s, closers{s, conn.SQL}, nil
}
