package infrastructure

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"weatherreminder.app/internal/ports"
)

// FileLoggerAdapter appends JSON log lines to a dedicated file.
// It backs the provider request log, kept apart from the process log.
type FileLoggerAdapter struct {
	file   *os.File
	logger *slog.Logger
	once   sync.Once
}

// NewFileLoggerAdapter opens (or creates) logPath for appending
func NewFileLoggerAdapter(logPath string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &FileLoggerAdapter{
		file:   file,
		logger: slog.New(handler),
	}, nil
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.logger.Debug(msg, toArgs(fields)...)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.logger.Info(msg, toArgs(fields)...)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.logger.Warn(msg, toArgs(fields)...)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.logger.Error(msg, toArgs(fields)...)
}

// Close flushes and closes the underlying file; later calls are no-ops
func (f *FileLoggerAdapter) Close() error {
	var err error
	f.once.Do(func() {
		if syncErr := f.file.Sync(); syncErr != nil {
			err = syncErr
		}
		if closeErr := f.file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	})
	return err
}
