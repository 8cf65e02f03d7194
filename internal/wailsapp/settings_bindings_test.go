// Package wailsapp provides tests for settings bindings.
package wailsapp

import (
	"errors"
	"testing"

	"github.com/wolffia-app/wolffia/internal/config"
)

// TestGetSettingsNoSettings verifies the zero DTO comes back when settings
// were never loaded.
func TestGetSettingsNoSettings(t *testing.T) {
	app := &App{} // settings is nil

	got := app.GetSettings()
	if got != (SettingsDTO{}) {
		t.Errorf("expected zero DTO, got %+v", got)
	}
}

// TestGetSettingsDefaults verifies defaults map through to the DTO.
func TestGetSettingsDefaults(t *testing.T) {
	app := &App{settings: config.NewSettings()}

	got := app.GetSettings()
	if got.WindowWidth != 1100 || got.WindowHeight != 720 {
		t.Errorf("unexpected default geometry: %dx%d", got.WindowWidth, got.WindowHeight)
	}
	if !got.NotificationsEnabled || !got.ShowUpdateAvailable || !got.UpdateCheckEnabled {
		t.Errorf("expected notification and update defaults on, got %+v", got)
	}
	if got.OpenDevtools {
		t.Error("expected devtools off by default")
	}
}

// TestUpdateSettingsNoSettings verifies the guard against unloaded settings.
func TestUpdateSettingsNoSettings(t *testing.T) {
	app := &App{}

	err := app.UpdateSettings(SettingsDTO{WindowWidth: 1280, WindowHeight: 800})
	if !errors.Is(err, ErrNoSettings) {
		t.Errorf("expected ErrNoSettings, got %v", err)
	}
}

// TestUpdateSettingsApplies verifies a valid update lands in the settings.
func TestUpdateSettingsApplies(t *testing.T) {
	app := &App{settings: config.NewSettings()}

	err := app.UpdateSettings(SettingsDTO{
		WindowWidth:          1280,
		WindowHeight:         800,
		OpenDevtools:         true,
		NotificationsEnabled: false,
		ShowUpdateAvailable:  false,
		UpdateCheckEnabled:   false,
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	if app.settings.Window.Width != 1280 || app.settings.Window.Height != 800 {
		t.Errorf("geometry not applied: %dx%d", app.settings.Window.Width, app.settings.Window.Height)
	}
	if !app.settings.Window.OpenDevtools {
		t.Error("devtools flag not applied")
	}
	if app.settings.Notifications.Enabled || app.settings.Updates.CheckEnabled {
		t.Error("toggles not applied")
	}
}

// TestUpdateSettingsRejectsInvalid verifies a failed update leaves the
// running settings untouched.
func TestUpdateSettingsRejectsInvalid(t *testing.T) {
	app := &App{settings: config.NewSettings()}

	err := app.UpdateSettings(SettingsDTO{WindowWidth: 100, WindowHeight: 800})
	if !errors.Is(err, config.ErrInvalidWindowWidth) {
		t.Fatalf("expected ErrInvalidWindowWidth, got %v", err)
	}

	if app.settings.Window.Width != 1100 {
		t.Errorf("settings mutated by rejected update: width = %d", app.settings.Window.Width)
	}
}

// TestSaveSettingsNoSettings verifies the guard against unloaded settings.
func TestSaveSettingsNoSettings(t *testing.T) {
	app := &App{}

	if err := app.SaveSettings(); !errors.Is(err, ErrNoSettings) {
		t.Errorf("expected ErrNoSettings, got %v", err)
	}
}
