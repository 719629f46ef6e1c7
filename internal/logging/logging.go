// Package logging builds the zerolog logger used for diagnostics.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/roboco-io/docxseq/internal/config"
)

// New returns a logger writing to w at the given level. Format is
// config.LogFormatConsole or config.LogFormatJSON.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var out io.Writer
	switch format {
	case config.LogFormatConsole, "":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	case config.LogFormatJSON:
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// FromConfig returns a logger configured by cfg.Log.
func FromConfig(w io.Writer, cfg *config.Config) (zerolog.Logger, error) {
	return New(w, cfg.Log.Level, cfg.Log.Format)
}
