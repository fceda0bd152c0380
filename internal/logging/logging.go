// Package logging configures the process-wide structured logger.
//
// Output goes to stderr so that command output on stdout stays clean for
// piping. The level comes from the --log-level flag or, when unset, the
// KINELAB_LOG_LEVEL environment variable. Valid levels: debug, info, warn,
// error. Defaults to warn.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const EnvLevel = "KINELAB_LOG_LEVEL"

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level: %s", name)
	}
}

// New builds a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs the default logger. An empty name falls back to the
// environment.
func Setup(name string) (*slog.Logger, error) {
	if name == "" {
		name = os.Getenv(EnvLevel)
	}
	level, err := ParseLevel(name)
	if err != nil {
		return nil, err
	}
	logger := New(os.Stderr, level)
	slog.SetDefault(logger)
	return logger, nil
}
