// Package logging builds the loggers used by the long-running td binaries.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings for file logs
const (
	MaxSizeMB  = 10
	MaxBackups = 3
	MaxAgeDays = 28
)

// NewFileLogger returns a logger that appends to path, rotating it by size.
// The returned closer releases the file.
func NewFileLogger(path, prefix string) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
	}
	return log.New(w, prefix, log.LstdFlags|log.Lmsgprefix), w, nil
}

// NewStderrLogger returns a logger for warnings of short-lived commands
func NewStderrLogger(prefix string) *log.Logger {
	return log.New(os.Stderr, prefix, 0)
}
