package main

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/sametrica/plugs"
)

// newLogger returns the CLI logger. Call events are logged at debug level,
// so they only show with --verbose.
func newLogger(w io.Writer, cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	var zl zerolog.Logger
	if cfg.LogFormat == logFormatJSON {
		zl = zerolog.New(w)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor})
	}
	return zl.Level(level).With().Timestamp().Str("service", "plugs").Logger()
}

func logCall(logger zerolog.Logger, e plugs.PipeEvent) {
	event := logger.Debug()
	if !e.Success {
		event = logger.Warn()
	}
	event.
		Str("call_id", e.CallID).
		Str("pipe", e.Name).
		Int("stages", e.Stages).
		Bool("success", e.Success).
		Stringer("kind", e.Kind).
		Dur("duration", e.Duration).
		Err(e.Error).
		Msg("pipe call completed")
}
