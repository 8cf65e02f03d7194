//go:build windows

// Package wailsapp implements single-instance enforcement on Windows
// using named mutexes.
package wailsapp

import (
	"syscall"
	"unsafe"
)

var (
	kernel32      = syscall.NewLazyDLL("kernel32.dll")
	user32        = syscall.NewLazyDLL("user32.dll")
	createMutex   = kernel32.NewProc("CreateMutexW")
	findWindow    = user32.NewProc("FindWindowW")
	setForeground = user32.NewProc("SetForegroundWindow")
	showWindow    = user32.NewProc("ShowWindow")
	isIconic      = user32.NewProc("IsIconic")
)

const (
	// Mutex name for single-instance enforcement
	mutexName = "WolffiaDesktop_SingleInstance_v1"

	// Error code when mutex already exists
	ERROR_ALREADY_EXISTS = 183

	// ShowWindow commands
	SW_RESTORE = 9
)

// singleInstanceMutex holds the mutex handle (kept alive for process lifetime)
var singleInstanceMutex uintptr

// EnsureSingleInstance checks if another instance is already running.
// Returns true if this is the first instance, false if another instance
// exists. When another instance exists it is brought to the foreground.
func EnsureSingleInstance() bool {
	mutexNamePtr, _ := syscall.UTF16PtrFromString(mutexName)

	handle, _, err := createMutex.Call(
		0, // lpMutexAttributes
		0, // bInitialOwner
		uintptr(unsafe.Pointer(mutexNamePtr)),
	)

	if handle == 0 {
		return false // Failed to create mutex
	}

	if err == syscall.Errno(ERROR_ALREADY_EXISTS) {
		bringExistingToForeground()
		return false
	}

	// Keep the mutex handle alive for the process lifetime
	singleInstanceMutex = handle
	return true
}

// bringExistingToForeground attempts to find and activate the existing
// window. FindWindowW matches titles exactly, so this relies on both
// instances being the same build with the same windowTitle().
func bringExistingToForeground() {
	titlePtr, _ := syscall.UTF16PtrFromString(windowTitle())
	hwnd, _, _ := findWindow.Call(0, uintptr(unsafe.Pointer(titlePtr)))

	if hwnd != 0 {
		iconic, _, _ := isIconic.Call(hwnd)
		if iconic != 0 {
			showWindow.Call(hwnd, SW_RESTORE)
		}
		setForeground.Call(hwnd)
	}
}
