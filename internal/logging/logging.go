// Package logging builds the zerolog logger used by the command line and
// the pipeline facade.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tsawler/ocrsift/config"
)

// New creates a logger writing to w (stderr when nil) at the configured
// level and format. Every entry carries a run_id unique to the logger.
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	var zl zerolog.Logger
	if strings.EqualFold(cfg.Format, "json") {
		zl = zerolog.New(w)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		})
	}

	return zl.Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

// ParseLevel converts a level name, defaulting to info for unknown or
// empty names.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
