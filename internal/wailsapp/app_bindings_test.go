// Package wailsapp provides tests for application info bindings.
package wailsapp

import (
	"runtime"
	"testing"

	"github.com/wolffia-app/wolffia/internal/version"
)

// TestGetAppInfo verifies the info DTO reflects the running build.
func TestGetAppInfo(t *testing.T) {
	app := NewApp()
	app.devMode = true

	info := app.GetAppInfo()

	if info.Version != version.Version {
		t.Errorf("Version = %q, want %q", info.Version, version.Version)
	}
	if info.BuildTime != version.BuildTime {
		t.Errorf("BuildTime = %q, want %q", info.BuildTime, version.BuildTime)
	}
	if info.Platform != runtime.GOOS {
		t.Errorf("Platform = %q, want %q", info.Platform, runtime.GOOS)
	}
	if info.SessionID == "" {
		t.Error("SessionID is empty")
	}
	if !info.DevMode {
		t.Error("DevMode flag not carried into DTO")
	}
}

// TestNewAppUniqueSessions verifies each app run gets its own session ID.
func TestNewAppUniqueSessions(t *testing.T) {
	a := NewApp()
	b := NewApp()

	if a.sessionID == b.sessionID {
		t.Errorf("session IDs collide: %q", a.sessionID)
	}
}
