// Package wailsapp provides application info Wails bindings.
package wailsapp

import (
	"runtime"

	"github.com/wolffia-app/wolffia/internal/version"
)

// AppInfoDTO contains application version and session information.
type AppInfoDTO struct {
	Version   string `json:"version"`
	BuildTime string `json:"buildTime"`
	SessionID string `json:"sessionId"`
	DevMode   bool   `json:"devMode"`
	Platform  string `json:"platform"`
}

// GetAppInfo returns version, build time, and session details.
func (a *App) GetAppInfo() AppInfoDTO {
	return AppInfoDTO{
		Version:   version.Version,
		BuildTime: version.BuildTime,
		SessionID: a.sessionID,
		DevMode:   a.devMode,
		Platform:  runtime.GOOS,
	}
}

// GetLogFilePath returns the rotating log file path, or an empty string
// when file logging is disabled.
func (a *App) GetLogFilePath() string {
	return GetLogFilePath()
}
