// Package logging builds the service's slog logger and carries the
// request-scoped child logger through context.
//
// Services log failures through the context logger so the request and
// correlation IDs added by the HTTP middleware come along:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "listing history failed",
//	    slog.String("operation", "History"),
//	    slog.String("listing_key", key),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"github.com/jsamuelsen11/listing-search-service/internal/platform/config"
)

// Output formats accepted in log.format.
const (
	FormatJSON   = "json"
	FormatText   = "text"
	FormatPretty = "pretty"
)

type loggerKey struct{}

// New returns a logger writing to w at cfg.Level in cfg.Format. An unknown
// level falls back to info and an unknown format to JSON. Debug output
// carries the source location. Every handler redacts credentials.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)
	debug := level <= slog.LevelDebug
	redact := newRedactAttr()

	switch cfg.Format {
	case FormatPretty:
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:       level,
			AddSource:   debug,
			ReplaceAttr: redact,
			TimeFormat:  time.TimeOnly,
		}))
	case FormatText:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level, AddSource: debug, ReplaceAttr: redact,
		}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level, AddSource: debug, ReplaceAttr: redact,
		}))
	}
}

// ParseLevel maps a level name (any case) to a slog.Level, defaulting to
// info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
