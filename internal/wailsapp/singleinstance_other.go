//go:build !windows

// Package wailsapp provides a no-op implementation of single-instance
// checking for non-Windows platforms (macOS, Linux).
package wailsapp

// EnsureSingleInstance on non-Windows platforms always returns true.
// macOS handles this naturally via app bundles, and Linux users
// typically manage window focus themselves.
func EnsureSingleInstance() bool {
	return true
}
