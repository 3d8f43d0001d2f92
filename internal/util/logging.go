// Package util provides common utilities including logging helpers,
// file system paths, and small generic helpers.
package util

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ConfigureLogging points the standard logger at path. The terminal belongs
// to the UI, so an empty path discards log output entirely.
func ConfigureLogging(path, prefix string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	resolved, err := ResolveLogPath(path)
	if err != nil {
		log.SetOutput(io.Discard)
		return nopCloser{}, err
	}
	f, err := tea.LogToFile(resolved, prefix)
	if err != nil {
		log.SetOutput(io.Discard)
		return nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
