// Package wailsapp provides filesystem Wails bindings.
package wailsapp

import (
	"github.com/wolffia-app/wolffia/internal/storage"
)

// GetDataDir returns the platform-specific application data directory.
// Resolution failures surface to the frontend as the underlying error
// text, with no added prefix.
func (a *App) GetDataDir() (string, error) {
	dir, err := storage.DataDir()
	if err != nil {
		a.logError("fs", "Failed to resolve data directory: "+err.Error())
		return "", err
	}
	return dir, nil
}

// ReadFile returns the contents of path as text.
// Failures reject with the "Failed to read file: " prefix the frontend
// matches on.
func (a *App) ReadFile(path string) (string, error) {
	contents, err := storage.ReadFileString(path)
	if err != nil {
		a.logError("fs", err.Error())
		return "", err
	}
	return contents, nil
}

// WriteFile writes content to path, creating missing parent directories.
// Failures reject with the "Failed to create directory: " or
// "Failed to write file: " prefix, matching the read-side contract.
func (a *App) WriteFile(path string, content string) error {
	if err := storage.WriteFileString(path, content); err != nil {
		a.logError("fs", err.Error())
		return err
	}
	return nil
}

// IsDesktop reports whether the frontend is running inside the desktop
// shell. Always true here; the browser deployment has its own stub that
// answers false.
func (a *App) IsDesktop() bool {
	return true
}
