// Package log provides the console logger shared by gotbb commands.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	Logger zerolog.Logger
	level  = zerolog.InfoLevel
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput rebuilds the logger on w, keeping the current level
func SetOutput(w io.Writer) {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    w != os.Stderr,
	}

	Logger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	log.Logger = Logger
}

// SetLevel parses a level name ("debug", "info", "warn", ...) and applies it
func SetLevel(name string) error {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return err
	}
	if l == zerolog.NoLevel {
		l = zerolog.InfoLevel
	}
	apply(l)
	return nil
}

// SetDebugMode switches the logger to debug level.
func SetDebugMode() {
	apply(zerolog.DebugLevel)
}

func apply(l zerolog.Level) {
	level = l
	Logger = Logger.Level(l)
	log.Logger = Logger
}

// Info logs an info message.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error logs an error message.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return Logger.Debug()
}
