package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Open builds the logger for a run. When path is empty the logger writes to
// fallback (which may be nil to discard). Otherwise the file is created or
// appended to and returned as the closer the caller must release.
func Open(path, level string, fallback io.Writer) (*ConsoleLogger, io.Closer, error) {
	if path == "" {
		return NewConsoleLogger(fallback, level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewConsoleLogger(f, level), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
