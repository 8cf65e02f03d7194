// Package wailsapp provides shell and notification Wails bindings.
package wailsapp

import (
	"net/url"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/wolffia-app/wolffia/internal/platform"
)

// OpenExternal opens rawURL in the user's default browser. Only http and
// https URLs are accepted; everything else is rejected before it reaches
// the OS.
func (a *App) OpenExternal(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		a.logError("shell", "Rejected malformed URL: "+rawURL)
		return ErrInvalidURL
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		a.logError("shell", "Rejected URL scheme: "+parsed.Scheme)
		return ErrInvalidURL
	}
	runtime.BrowserOpenURL(a.ctx, rawURL)
	return nil
}

// OpenPath opens a file or directory with the default OS handler.
func (a *App) OpenPath(path string) error {
	if err := platform.OpenPath(path); err != nil {
		a.logError("shell", "Failed to open path: "+err.Error())
		return err
	}
	return nil
}

// RevealPath shows a file or directory in the OS file manager.
func (a *App) RevealPath(path string) error {
	if err := platform.RevealPath(path); err != nil {
		a.logError("shell", "Failed to reveal path: "+err.Error())
		return err
	}
	return nil
}

// Notify shows a desktop notification with the given title and message.
// Honors the notifications.enabled setting; disabled or unconfigured
// notifiers drop the message silently.
func (a *App) Notify(title string, message string) error {
	if a.notifier == nil {
		return nil
	}
	return a.notifier.Send(title, message)
}
