package files

import (
	"log/slog"
	"os"
)

// Manager provides file management operations for output artifacts
type Manager struct{}

// NewManager creates a new file manager instance
func NewManager() *Manager {
	return &Manager{}
}

// FileExists checks if a file exists at the given path
func (m *Manager) FileExists(path string) bool {
	_, err := os.Stat(path)
	exists := err == nil

	slog.Debug("FileExists check",
		slog.String("path", path),
		slog.Bool("exists", exists))

	return exists
}

// CreateDirectory creates a directory with all parent directories
func (m *Manager) CreateDirectory(path string) error {
	slog.Debug("Creating directory", slog.String("path", path))
	return os.MkdirAll(path, 0755)
}
