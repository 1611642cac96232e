package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

func WithRequestID(ctx context.Context, reqID string) context.Context {
	return WithContext(ctx, FromContext(ctx).With("req_id", reqID))
}

type metaKey struct{}

// requestMeta is shared by pointer between HTTPMiddleware and the handlers
// below it, so values learned deep in the chain reach the access log.
type requestMeta struct {
	userID string
}

// WithUserID tags every later log line of the request with the caller.
func WithUserID(ctx context.Context, userID string) context.Context {
	if m, ok := ctx.Value(metaKey{}).(*requestMeta); ok {
		m.userID = userID
	}
	return WithContext(ctx, FromContext(ctx).With("user_id", userID))
}
