// Package wailsapp provides tests for update checking.
package wailsapp

import (
	"testing"
	"time"

	"github.com/wolffia-app/wolffia/internal/version"
)

// TestCheckForUpdatesUsesCache verifies a fresh cache entry is returned
// without touching the network.
func TestCheckForUpdatesUsesCache(t *testing.T) {
	updateCheckCache.mu.Lock()
	savedResult := updateCheckCache.result
	savedLastCheck := updateCheckCache.lastCheck
	savedValid := updateCheckCache.cacheValid
	updateCheckCache.result = VersionCheckDTO{
		HasUpdate:      true,
		LatestVersion:  "v9.9.9",
		CurrentVersion: version.Version,
		CheckedAt:      "cached",
	}
	updateCheckCache.lastCheck = time.Now()
	updateCheckCache.cacheValid = true
	updateCheckCache.mu.Unlock()

	defer func() {
		updateCheckCache.mu.Lock()
		updateCheckCache.result = savedResult
		updateCheckCache.lastCheck = savedLastCheck
		updateCheckCache.cacheValid = savedValid
		updateCheckCache.mu.Unlock()
	}()

	app := &App{}
	got := app.CheckForUpdates()

	if got.CheckedAt != "cached" {
		t.Errorf("CheckedAt = %q, want cached entry", got.CheckedAt)
	}
	if !got.HasUpdate || got.LatestVersion != "v9.9.9" {
		t.Errorf("unexpected cached result: %+v", got)
	}
}
