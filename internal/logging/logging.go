// Package logging configures the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// EnvVar is the environment variable consulted for the log level.
const EnvVar = "APPFORGE_LOG_LEVEL"

// ParseLevel maps a DEBUG/INFO/WARN/ERROR string to a slog level. Unknown or
// empty values fall back to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text-handler logger writing to stderr at the level named by
// the APPFORGE_LOG_LEVEL environment variable.
func New() *slog.Logger {
	level := ParseLevel(os.Getenv(EnvVar))
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
