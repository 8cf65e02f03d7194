// Package wailsapp provides update checking Wails bindings.
package wailsapp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/wolffia-app/wolffia/internal/constants"
	"github.com/wolffia-app/wolffia/internal/update"
	"github.com/wolffia-app/wolffia/internal/version"
)

// VersionCheckDTO contains version update information
type VersionCheckDTO struct {
	HasUpdate      bool   `json:"hasUpdate"`
	LatestVersion  string `json:"latestVersion,omitempty"`
	CurrentVersion string `json:"currentVersion"`
	ReleaseURL     string `json:"releaseUrl,omitempty"`
	CheckedAt      string `json:"checkedAt"`       // ISO timestamp
	Error          string `json:"error,omitempty"` // If check failed
}

// updateCache holds the cached update check result
type updateCache struct {
	mu         sync.RWMutex
	result     VersionCheckDTO
	lastCheck  time.Time
	cacheValid bool
}

var updateCheckCache = &updateCache{}

// CheckForUpdates checks GitHub for newer releases.
// Returns a cached result if checked within the last 24 hours, and never
// blocks the frontend longer than the check timeout plus one second.
func (a *App) CheckForUpdates() VersionCheckDTO {
	a.logInfo("updates", "Checking for updates...")

	updateCheckCache.mu.RLock()
	if updateCheckCache.cacheValid && time.Since(updateCheckCache.lastCheck) < constants.UpdateCheckCacheDuration {
		a.logInfo("updates", "Using cached update check result")
		result := updateCheckCache.result
		updateCheckCache.mu.RUnlock()
		return result
	}
	updateCheckCache.mu.RUnlock()

	result := VersionCheckDTO{
		HasUpdate:      false,
		CurrentVersion: version.Version,
		CheckedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	resultChan := make(chan VersionCheckDTO, 1)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.UpdateCheckTimeout)
		defer cancel()

		release, err := update.FetchLatest(ctx, constants.UpdateCheckURL)
		if err != nil {
			a.logError("updates", "Update check failed: "+err.Error())
			result.Error = err.Error()
			resultChan <- result
			return
		}

		result.LatestVersion = release.TagName
		result.ReleaseURL = release.HTMLURL

		if update.CompareVersions(version.Version, release.TagName) < 0 {
			result.HasUpdate = true
			a.logInfo("updates", fmt.Sprintf("Update available: %s -> %s", version.Version, release.TagName))
		} else {
			a.logInfo("updates", fmt.Sprintf("Current version %s is up to date", version.Version))
		}

		resultChan <- result
	}()

	select {
	case result = <-resultChan:
		// Success or handled error
	case <-time.After(constants.UpdateCheckTimeout + time.Second):
		a.logError("updates", "Update check timed out")
		result.Error = "Request timed out"
	}

	updateCheckCache.mu.Lock()
	updateCheckCache.result = result
	updateCheckCache.lastCheck = time.Now()
	updateCheckCache.cacheValid = true
	updateCheckCache.mu.Unlock()

	return result
}

// notifyIfUpdateAvailable runs the startup update check and surfaces a
// newer release through a frontend event and, when enabled, a desktop
// notification.
func (a *App) notifyIfUpdateAvailable() {
	result := a.CheckForUpdates()
	if result.Error != "" || !result.HasUpdate {
		return
	}

	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "wolffia:update_available", result)
	}
	if a.notifier != nil && a.settings != nil && a.settings.Notifications.ShowUpdateAvailable {
		a.notifier.UpdateAvailable(result.LatestVersion)
	}
}
