// Package wailsapp provides common error definitions.
package wailsapp

import "errors"

var (
	// ErrNoSettings is returned when settings are not loaded.
	ErrNoSettings = errors.New("settings not loaded")

	// ErrInvalidURL is returned when a URL with a non-web scheme is passed
	// to OpenExternal.
	ErrInvalidURL = errors.New("only http and https URLs can be opened")
)
