// Package logging sets the process-wide slog default to a colored tint
// handler. Output stays structured key-value while being readable on a
// terminal during development.
//
// The level comes from the LOG_LEVEL environment variable (debug, info,
// warn, error; default info), or can be forced with SetupWithLevel.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default logger at the level named by LOG_LEVEL.
func Setup() {
	SetupWithLevel(parseLevel(os.Getenv("LOG_LEVEL")))
}

// SetupWithLevel installs the default logger at an explicit level,
// bypassing the environment.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	))
}

// parseLevel maps a level name to its slog level; unknown names fall back
// to info rather than failing startup.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
