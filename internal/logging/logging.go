// Package logging builds the charmbracelet loggers used across the arcade.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultFile is where local play logs go, so the alternate screen stays clean.
const DefaultFile = "~/.arcade/arcade.log"

// ParseLevel converts a flag value to a log level. Unknown values are an error.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
	}
}

// New creates a timestamped logger writing to w.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger
}

// OpenFile creates a logger appending to path. The returned closer must be
// called on exit. When the file cannot be opened the logger discards output.
func OpenFile(path, prefix string, level log.Level) (*log.Logger, io.Closer, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return New(io.Discard, prefix, level), io.NopCloser(nil), err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return New(io.Discard, prefix, level), io.NopCloser(nil), fmt.Errorf("logging: create log directory: %w", err)
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return New(io.Discard, prefix, level), io.NopCloser(nil), fmt.Errorf("logging: open %s: %w", expanded, err)
	}
	return New(f, prefix, level), f, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
