package logger

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is a type for context keys used by the logger package
type contextKey string

const (
	// LoggerKey is the context key for the logger
	LoggerKey contextKey = "logger"
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
	// UserEmailKey is the context key for the authenticated user's email
	UserEmailKey contextKey = "user_email"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext retrieves the logger from context, returns a no-op
// logger if not found
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID adds request ID to context and returns an enriched logger
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	enriched := logger.With(zap.String("request_id", requestID))
	return WithContext(ctx, enriched), enriched
}

// WithUserEmail adds the authenticated user's email to context and
// returns an enriched logger
func WithUserEmail(ctx context.Context, logger *zap.Logger, email string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, UserEmailKey, email)
	enriched := logger.With(zap.String("user_email", email))
	return WithContext(ctx, enriched), enriched
}

// GetRequestID retrieves request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetUserEmail retrieves the authenticated user's email from context
func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

// L returns a logger from the context enriched with request-scoped
// fields. Usage: logger.L(ctx).Info("message", zap.String("k", "v"))
func L(ctx context.Context) *zap.Logger {
	l := FromContext(ctx)
	if requestID := GetRequestID(ctx); requestID != "" {
		l = l.With(zap.String("request_id", requestID))
	}
	if email := GetUserEmail(ctx); email != "" {
		l = l.With(zap.String("user_email", email))
	}
	return l
}
