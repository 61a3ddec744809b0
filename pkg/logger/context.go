package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var loggerKey ctxKey

// With stores a child logger carrying extra attributes in the context.
// The request id middleware uses this to stamp the trace id onto every
// log line written downstream of it.
func With(ctx context.Context, attrs ...any) context.Context {
	l := From(ctx).With(attrs...)
	return context.WithValue(ctx, loggerKey, l)
}

// From returns the request-scoped logger, falling back to the process
// logger outside a request.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
