package obs

import (
	"context"

	"github.com/rs/zerolog"
)

// traceKey is the context key storing the evaluation trace logger.
type traceKey struct{}

// WithTrace attaches an evaluation trace logger to the context. The engine
// emits debug events through it; evaluation output never depends on whether
// a trace is attached.
func WithTrace(ctx context.Context, logger zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, traceKey{}, logger)
}

// Trace extracts the evaluation trace logger from context, or a disabled
// logger when none is attached.
func Trace(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return zerolog.Nop()
	}
	if logger, ok := ctx.Value(traceKey{}).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}
