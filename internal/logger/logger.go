// Package logger provides context-aware structured logging backed by zap.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment names recognised by Setup.
const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)

var defaultLogger = zap.NewNop()

// Setup initializes the default logger for the given environment.
// Production gets JSON output, everything else the development console format.
func Setup(environment string) {
	if environment == ProductionEnvironment {
		defaultLogger, _ = zap.NewProduction()
		return
	}
	defaultLogger, _ = zap.NewDevelopment()
}

type key struct{}

// Get retrieves the logger stored in ctx, falling back to the default.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}
	return defaultLogger
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields returns a context whose logger includes the given fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Debug logs at debug level using the context logger.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs at info level using the context logger.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs at warn level using the context logger.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs at error level using the context logger.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs at fatal level using the context logger and exits.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
