// Package observability provides the structured-logging seam used across the
// pockeat services and providers. Components accept a [Logger] and stay
// silent by default; callers that want output plug in the slog-backed
// implementation from [NewSlog].
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Logger provides structured logging capabilities.
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	Info(ctx context.Context, msg string, attrs ...Attribute)
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	Error(ctx context.Context, msg string, attrs ...Attribute)
}

// Attribute represents a key-value pair of log metadata.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 creates a float64 attribute
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error creates an error attribute
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: "error", Value: ""}
	}
	return Attribute{Key: "error", Value: err.Error()}
}

// Common attribute keys shared by the services and providers.
const (
	AttrProvider = "llm.provider"
	AttrModel    = "llm.model"
	AttrEndpoint = "llm.endpoint"
	AttrPreview  = "preview"
)

// --- slog-backed implementation ---

// SlogLogger implements [Logger] on top of Go's standard library slog.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlog creates a slog-backed Logger. A nil argument falls back to
// slog.Default().
func NewSlog(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

var _ Logger = (*SlogLogger)(nil)

func (l *SlogLogger) Debug(ctx context.Context, msg string, attrs ...Attribute) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

func (l *SlogLogger) Info(ctx context.Context, msg string, attrs ...Attribute) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

func (l *SlogLogger) Warn(ctx context.Context, msg string, attrs ...Attribute) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

func (l *SlogLogger) Error(ctx context.Context, msg string, attrs ...Attribute) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

func (l *SlogLogger) log(ctx context.Context, level slog.Level, msg string, attrs []Attribute) {
	logAttrs := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	l.logger.LogAttrs(ctx, level, msg, logAttrs...)
}

// --- no-op implementation ---

// NopLogger is a [Logger] that discards everything. It is the default for
// components constructed without an explicit logger.
type NopLogger struct{}

var _ Logger = NopLogger{}

func (NopLogger) Debug(context.Context, string, ...Attribute) {}
func (NopLogger) Info(context.Context, string, ...Attribute)  {}
func (NopLogger) Warn(context.Context, string, ...Attribute)  {}
func (NopLogger) Error(context.Context, string, ...Attribute) {}
