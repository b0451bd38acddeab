package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"example.com/notes-app/internal/backend"
	"example.com/notes-app/internal/config"
	"example.com/notes-app/internal/notes"
)

var (
	verbose bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:           "notes",
	Short:         "Create, view, edit and delete notes",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !alreadyReported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// withController opens the configured store, loads the notes and runs fn.
func withController(cmd *cobra.Command, confirm notes.Confirmer, fn func(ctx context.Context, c *notes.Controller) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	coll, closer, err := backend.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	c := notes.New(coll, confirm, stderrNotifier{w: cmd.ErrOrStderr()}, notes.Options{
		Collection:   cfg.Collection,
		RequireTitle: cfg.RequireTitle,
	})
	if err := c.Refresh(ctx); err != nil {
		return err
	}
	return fn(ctx, c)
}

// alreadyReported reports whether the controller has shown err to the user
// through its notifier.
func alreadyReported(err error) bool {
	var verr *notes.ValidationError
	var rerr *notes.RemoteOperationError
	return errors.As(err, &verr) || errors.As(err, &rerr)
}

type stderrNotifier struct {
	w io.Writer
}

func (n stderrNotifier) Notify(_ context.Context, msg string) {
	fmt.Fprintln(n.w, msg)
}

// promptConfirmer asks a y/N question on in.
type promptConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (p promptConfirmer) Confirm(_ context.Context, prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
