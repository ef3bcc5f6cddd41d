package config

import (
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel overrides the log level derived from CLI flags.
const EnvLogLevel = "SPEC_PARSER_LOG_LEVEL"

// ParseLogLevel maps the verbose/debug flags and the SPEC_PARSER_LOG_LEVEL
// environment variable to a slog level. The environment variable wins so
// wrapper scripts can silence or amplify a run without touching its flags.
func ParseLogLevel(verbose, debug bool) slog.Level {
	if raw := os.Getenv(EnvLogLevel); raw != "" {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "debug":
			return slog.LevelDebug
		case "info":
			return slog.LevelInfo
		case "warn", "warning":
			return slog.LevelWarn
		case "error":
			return slog.LevelError
		}
		// Unknown values fall through to flag handling.
	}
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}
