// Package logger builds the zerolog logger used for diagnostics. Log output
// goes to stderr so the report on stdout stays clean.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey struct{}

// New creates a console logger on stderr. Verbose enables debug output;
// otherwise only warnings and errors are shown.
func New(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return NewWithWriter(output, verbose)
}

// NewWithWriter creates a logger writing to w, tagged with a fresh run ID.
func NewWithWriter(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

// WithContext adds the logger to ctx.
func WithContext(ctx context.Context, log zerolog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContext retrieves the logger from ctx, or a disabled logger.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(contextKey{}).(zerolog.Logger); ok {
			return log
		}
	}
	return zerolog.Nop()
}
