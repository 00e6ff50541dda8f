// Package log provides a leveled, category-tagged logger for beanthere.
//
// The CLI keeps stdout reserved for command output, so log lines go to a
// file under the data directory when logging is enabled, and are discarded
// otherwise. Call Init once from the root command before any other package
// logs.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Category tags a log line with the subsystem it came from.
type Category string

const (
	CatDB     Category = "db"
	CatCmd    Category = "cmd"
	CatCoffee Category = "coffee"
	CatExport Category = "export"
	CatConfig Category = "config"
)

var (
	mu      sync.Mutex
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile *os.File
)

// Init directs log output to a file at path, creating parent directories as
// needed. Level accepts "debug", "info", "warn", or "error"; anything else
// falls back to info.
func Init(path, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // G304: path comes from config
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return nil
}

// Close flushes and closes the log file if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return err
}

// Debug logs a debug-level message with the given category and key-value pairs.
func Debug(cat Category, msg string, args ...any) {
	logger.Debug(msg, append([]any{"cat", string(cat)}, args...)...)
}

// Info logs an info-level message with the given category and key-value pairs.
func Info(cat Category, msg string, args ...any) {
	logger.Info(msg, append([]any{"cat", string(cat)}, args...)...)
}

// Warn logs a warn-level message with the given category and key-value pairs.
func Warn(cat Category, msg string, args ...any) {
	logger.Warn(msg, append([]any{"cat", string(cat)}, args...)...)
}

// ErrorErr logs an error-level message with the error attached as an attribute.
func ErrorErr(cat Category, msg string, err error, args ...any) {
	logger.Error(msg, append([]any{"cat", string(cat), "error", err}, args...)...)
}
