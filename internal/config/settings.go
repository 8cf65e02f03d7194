// Package config provides configuration management for Wolffia.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/wolffia-app/wolffia/internal/constants"
	"github.com/wolffia-app/wolffia/internal/storage"
)

// Settings holds the persisted shell preferences. The front end owns its
// own application state; only shell-level knobs live here.
//
// Settings file location: <data dir>/settings.ini
//
// INI format:
//
//	[wolffia.window]
//	width = 1100
//	height = 720
//	open_devtools = false
//
//	[wolffia.notifications]
//	enabled = true
//	show_update_available = true
//
//	[wolffia.updates]
//	check_enabled = true
type Settings struct {
	// Window settings
	Window WindowConfig

	// Notification settings
	Notifications NotificationConfig

	// Update check settings
	Updates UpdateConfig
}

// WindowConfig contains persisted window geometry and devtools preference.
type WindowConfig struct {
	// Width is the persisted window width in logical pixels.
	Width int `ini:"width"`

	// Height is the persisted window height in logical pixels.
	Height int `ini:"height"`

	// OpenDevtools opens the web inspector on startup.
	// Default: false (always on in dev builds regardless of this flag)
	OpenDevtools bool `ini:"open_devtools"`
}

// NotificationConfig contains settings for desktop notifications.
type NotificationConfig struct {
	// Enabled indicates whether notifications are shown.
	// Default: true
	Enabled bool `ini:"enabled"`

	// ShowUpdateAvailable shows a notification when a newer release is found.
	// Default: true
	ShowUpdateAvailable bool `ini:"show_update_available"`
}

// UpdateConfig contains settings for the background update check.
type UpdateConfig struct {
	// CheckEnabled indicates whether the shell polls for new releases.
	// Default: true
	CheckEnabled bool `ini:"check_enabled"`
}

// Validation errors
var (
	ErrInvalidWindowWidth  = errors.New("window width must be between 800 and 7680")
	ErrInvalidWindowHeight = errors.New("window height must be between 600 and 4320")
)

// DefaultSettingsPath returns the default path for the settings file,
// inside the application data directory.
func DefaultSettingsPath() (string, error) {
	return storage.SettingsPath()
}

// NewSettings creates a Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Window: WindowConfig{
			Width:        constants.DefaultWindowWidth,
			Height:       constants.DefaultWindowHeight,
			OpenDevtools: false,
		},
		Notifications: NotificationConfig{
			Enabled:             true,
			ShowUpdateAvailable: true,
		},
		Updates: UpdateConfig{
			CheckEnabled: true,
		},
	}
}

// LoadSettings loads settings from an INI file.
// If the file doesn't exist, returns defaults and no error. Out-of-range
// window geometry is normalized rather than rejected, so a corrupt file
// never prevents the shell from starting.
func LoadSettings(path string) (*Settings, error) {
	cfg := NewSettings()

	// If no path provided, use default
	if path == "" {
		var err error
		path, err = DefaultSettingsPath()
		if err != nil {
			return cfg, nil // Return defaults if we can't determine path
		}
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // Return defaults if settings don't exist
	}

	// Load INI file
	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	// Parse [wolffia.window] section
	windowSection := iniFile.Section("wolffia.window")
	cfg.Window.Width = windowSection.Key("width").MustInt(constants.DefaultWindowWidth)
	cfg.Window.Height = windowSection.Key("height").MustInt(constants.DefaultWindowHeight)
	cfg.Window.OpenDevtools = windowSection.Key("open_devtools").MustBool(false)

	// Parse [wolffia.notifications] section
	notifySection := iniFile.Section("wolffia.notifications")
	cfg.Notifications.Enabled = notifySection.Key("enabled").MustBool(true)
	cfg.Notifications.ShowUpdateAvailable = notifySection.Key("show_update_available").MustBool(true)

	// Parse [wolffia.updates] section
	updateSection := iniFile.Section("wolffia.updates")
	cfg.Updates.CheckEnabled = updateSection.Key("check_enabled").MustBool(true)

	cfg.Normalize()
	return cfg, nil
}

// SaveSettings saves settings to an INI file.
// Creates parent directories if they don't exist. Uses a temporary file
// plus rename so a crash mid-write never leaves a truncated file behind.
func SaveSettings(cfg *Settings, path string) error {
	// If no path provided, use default
	if path == "" {
		var err error
		path, err = DefaultSettingsPath()
		if err != nil {
			return fmt.Errorf("failed to determine settings path: %w", err)
		}
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	// Create INI file
	iniFile := ini.Empty()

	// Write [wolffia.window] section
	windowSection, err := iniFile.NewSection("wolffia.window")
	if err != nil {
		return fmt.Errorf("failed to create window section: %w", err)
	}
	windowSection.Key("width").SetValue(fmt.Sprintf("%d", cfg.Window.Width))
	windowSection.Key("height").SetValue(fmt.Sprintf("%d", cfg.Window.Height))
	windowSection.Key("open_devtools").SetValue(fmt.Sprintf("%t", cfg.Window.OpenDevtools))

	// Write [wolffia.notifications] section
	notifySection, err := iniFile.NewSection("wolffia.notifications")
	if err != nil {
		return fmt.Errorf("failed to create notifications section: %w", err)
	}
	notifySection.Key("enabled").SetValue(fmt.Sprintf("%t", cfg.Notifications.Enabled))
	notifySection.Key("show_update_available").SetValue(fmt.Sprintf("%t", cfg.Notifications.ShowUpdateAvailable))

	// Write [wolffia.updates] section
	updateSection, err := iniFile.NewSection("wolffia.updates")
	if err != nil {
		return fmt.Errorf("failed to create updates section: %w", err)
	}
	updateSection.Key("check_enabled").SetValue(fmt.Sprintf("%t", cfg.Updates.CheckEnabled))

	// Temporary file + rename for atomicity
	tmpPath := path + ".tmp"
	if err := iniFile.SaveTo(tmpPath); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// Validate checks if the settings are acceptable as-is.
// Returns nil if valid, or an error describing what's wrong.
func (cfg *Settings) Validate() error {
	if cfg.Window.Width < constants.MinWindowWidth || cfg.Window.Width > constants.MaxWindowWidth {
		return ErrInvalidWindowWidth
	}
	if cfg.Window.Height < constants.MinWindowHeight || cfg.Window.Height > constants.MaxWindowHeight {
		return ErrInvalidWindowHeight
	}
	return nil
}

// Normalize clamps out-of-range window geometry back to defaults.
// Used on load so hand-edited or corrupt files degrade gracefully.
func (cfg *Settings) Normalize() {
	if cfg.Window.Width < constants.MinWindowWidth || cfg.Window.Width > constants.MaxWindowWidth {
		cfg.Window.Width = constants.DefaultWindowWidth
	}
	if cfg.Window.Height < constants.MinWindowHeight || cfg.Window.Height > constants.MaxWindowHeight {
		cfg.Window.Height = constants.DefaultWindowHeight
	}
}
