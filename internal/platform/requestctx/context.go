package requestctx

import (
	"context"

	"go.uber.org/zap"

	"github.com/svitanok-centre/site/internal/domain"
)

type contextKey string

const (
	loggerContextKey contextKey = "github.com/svitanok-centre/site/internal/platform/requestctx/logger"
	langContextKey   contextKey = "github.com/svitanok-centre/site/internal/platform/requestctx/lang"
)

var noopLogger = zap.NewNop()

// WithLogger stores the logger in context for downstream consumers.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = noopLogger
	}
	return context.WithValue(ctx, loggerContextKey, logger)
}

// Logger retrieves the zap logger from context or returns a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return noopLogger
	}
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return noopLogger
}

// NoopLogger exposes the shared noop logger instance used across the package.
func NoopLogger() *zap.Logger { return noopLogger }

// WithLang stores the resolved content language on the request context.
func WithLang(ctx context.Context, lang domain.Lang) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, langContextKey, lang)
}

// Lang retrieves the content language resolved for the request, defaulting
// to Ukrainian.
func Lang(ctx context.Context) domain.Lang {
	if ctx == nil {
		return domain.LangUA
	}
	if lang, ok := ctx.Value(langContextKey).(domain.Lang); ok && lang != "" {
		return lang
	}
	return domain.LangUA
}
