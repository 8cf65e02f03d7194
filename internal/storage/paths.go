// Package storage resolves application data paths and performs the local
// filesystem operations exposed to the front end.
package storage

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/wolffia-app/wolffia/internal/constants"
)

// DataDir returns the directory where the application persists user data.
// Mirrors common desktop app conventions:
//   - Linux: $XDG_DATA_HOME/wolffia or ~/.local/share/wolffia
//   - macOS: ~/Library/Application Support/Wolffia
//   - Windows: %APPDATA%\Wolffia (falls back to os.UserConfigDir)
//
// Resolution errors are returned as-is; callers surface them to the front
// end unmodified.
func DataDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", constants.AppName), nil
	case "windows":
		base := os.Getenv("APPDATA")
		if base == "" {
			var err error
			base, err = os.UserConfigDir()
			if err != nil {
				return "", err
			}
		}
		return filepath.Join(base, constants.AppName), nil
	default:
		base := os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, ".local", "share")
		}
		return filepath.Join(base, constants.DataDirName), nil
	}
}

// EnsureDataDir resolves the data directory and creates it if missing.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// LogDirectory returns the log directory inside the application data
// directory. Falls back to a temp location when the data directory cannot
// be resolved, so logging never blocks startup.
func LogDirectory() string {
	dir, err := DataDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "wolffia-logs")
	}
	return filepath.Join(dir, "logs")
}

// EnsureLogDirectory creates the log directory if it doesn't exist.
// Uses 0700 permissions to restrict log access to the owner.
func EnsureLogDirectory() error {
	return os.MkdirAll(LogDirectory(), 0700)
}

// SettingsPath returns the location of the persisted shell settings file.
func SettingsPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.SettingsFileName), nil
}
