// Package wailsapp provides settings-related Wails bindings.
package wailsapp

import (
	"github.com/wolffia-app/wolffia/internal/config"
)

// SettingsDTO is the JSON-safe settings structure.
type SettingsDTO struct {
	WindowWidth          int  `json:"windowWidth"`
	WindowHeight         int  `json:"windowHeight"`
	OpenDevtools         bool `json:"openDevtools"`
	NotificationsEnabled bool `json:"notificationsEnabled"`
	ShowUpdateAvailable  bool `json:"showUpdateAvailable"`
	UpdateCheckEnabled   bool `json:"updateCheckEnabled"`
}

// GetSettings returns the current settings.
func (a *App) GetSettings() SettingsDTO {
	if a.settings == nil {
		return SettingsDTO{}
	}
	return SettingsDTO{
		WindowWidth:          a.settings.Window.Width,
		WindowHeight:         a.settings.Window.Height,
		OpenDevtools:         a.settings.Window.OpenDevtools,
		NotificationsEnabled: a.settings.Notifications.Enabled,
		ShowUpdateAvailable:  a.settings.Notifications.ShowUpdateAvailable,
		UpdateCheckEnabled:   a.settings.Updates.CheckEnabled,
	}
}

// UpdateSettings applies a complete settings update. Invalid values are
// rejected before anything is applied, so a failed update leaves the
// running settings untouched.
func (a *App) UpdateSettings(dto SettingsDTO) error {
	if a.settings == nil {
		return ErrNoSettings
	}

	next := *a.settings
	next.Window.Width = dto.WindowWidth
	next.Window.Height = dto.WindowHeight
	next.Window.OpenDevtools = dto.OpenDevtools
	next.Notifications.Enabled = dto.NotificationsEnabled
	next.Notifications.ShowUpdateAvailable = dto.ShowUpdateAvailable
	next.Updates.CheckEnabled = dto.UpdateCheckEnabled
	if err := next.Validate(); err != nil {
		return err
	}

	notificationsChanged := a.settings.Notifications.Enabled != dto.NotificationsEnabled
	*a.settings = next

	if notificationsChanged && a.notifier != nil {
		a.notifier.SetEnabled(dto.NotificationsEnabled)
	}

	a.logInfo("settings", "Settings updated")
	return nil
}

// SaveSettings persists the current settings to the default location.
func (a *App) SaveSettings() error {
	if a.settings == nil {
		return ErrNoSettings
	}
	if err := config.SaveSettings(a.settings, ""); err != nil {
		a.logError("settings", "Failed to save settings: "+err.Error())
		return err
	}
	return nil
}
