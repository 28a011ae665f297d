// Package logging provides a thin wrapper around zerolog.Logger used by every
// component of the validator.
//
// Diagnostics always go to stderr (or a caller-supplied writer) so that they
// never interleave with the drift report written to stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// Options configures a Logger
type Options struct {
	Level   string
	Console bool // human-readable output instead of JSON
	NoColor bool
	Writer  io.Writer
}

// New constructs a *Logger for the given role label (e.g. "cli").
func New(role string, opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.Console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: opts.NoColor, TimeFormat: time.TimeOnly}
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}, nil
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a logger tagged with a component name.
func (l *Logger) Child(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

// ParseLevel converts a textual level. An empty level means "warn".
func ParseLevel(level string) (zerolog.Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if normalized == "" {
		return zerolog.WarnLevel, nil
	}
	parsed, err := zerolog.ParseLevel(normalized)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %s", level)
	}
	return parsed, nil
}
