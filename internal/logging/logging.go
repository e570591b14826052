package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", level, err)
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "qpaks",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}), nil
}

// OpenFile returns a logger appending to path, creating parent directories.
// The returned closer must be closed by the caller.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		l, err := New(io.Discard, level)
		return l, io.NopCloser(nil), err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	l, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, f, nil
}

// Discard is a logger that drops everything; handy in tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
