package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"example.com/notes-app/internal/backend"
	"example.com/notes-app/internal/config"
	"example.com/notes-app/internal/notes"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	coll, closer, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	ctrl := notes.New(coll, notes.ContextConfirmer{}, notes.LogNotifier{Logger: logger}, notes.Options{
		Collection:   cfg.Collection,
		RequireTitle: cfg.RequireTitle,
		Logger:       logger,
	})
	if err := ctrl.Refresh(ctx); err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           notes.NewHandlers(ctrl).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("notes API listening", "addr", cfg.HTTPAddr, "driver", cfg.Driver)
	log.Fatal(srv.ListenAndServe())
}
