package logger

import (
	"context"
	"log/slog"
)

type runIDKey struct{}

// ContextWithRunID attaches a validation run identifier to ctx.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run identifier stored by ContextWithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// WithRunIDFromContext logs the context's run identifier under "run_id" on
// every record that carries one.
func WithRunIDFromContext() Option {
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		id, ok := RunIDFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return RunID(id), true
	})
}
