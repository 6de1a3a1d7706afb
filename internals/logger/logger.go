package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the application logger: human readable console output in
// development, JSON lines everywhere else. It also replaces zerolog's global
// logger so packages using zerolog/log share the same sink.
func New(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer = os.Stdout
	level := zerolog.InfoLevel
	if env == "development" || env == "dev" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
		level = zerolog.DebugLevel
	}

	l := zerolog.New(w).With().Timestamp().Logger().Level(level)
	log.Logger = l
	return l
}

// Nop is used by tests that do not care about log output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
