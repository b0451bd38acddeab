package notes

import (
	"context"
	"log/slog"
)

type confirmKey struct{}

// WithConfirmation records the user's answer to a confirmation prompt on ctx.
func WithConfirmation(ctx context.Context, ok bool) context.Context {
	return context.WithValue(ctx, confirmKey{}, ok)
}

// ContextConfirmer answers prompts from the value stored by WithConfirmation.
// A context without an answer declines.
type ContextConfirmer struct{}

func (ContextConfirmer) Confirm(ctx context.Context, _ string) bool {
	ok, _ := ctx.Value(confirmKey{}).(bool)
	return ok
}

// LogNotifier writes user notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, msg string) {
	l := n.Logger
	if l == nil {
		l = slog.Default()
	}
	l.InfoContext(ctx, "notification", "msg", msg)
}
