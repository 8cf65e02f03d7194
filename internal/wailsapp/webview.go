package wailsapp

import (
	"os"
	"path/filepath"
	"runtime"
)

// getWebView2BrowserPath returns the path to a bundled WebView2 Fixed Version
// Runtime. Returns empty string to use system-installed WebView2, or path to
// the bundled runtime.
//
// The portable Windows distribution ships a webview2/ folder next to the
// executable so installs without the Evergreen runtime still work.
func getWebView2BrowserPath() string {
	if runtime.GOOS != "windows" {
		return "" // Only relevant for Windows
	}

	// Get the directory of the current executable
	exePath, err := os.Executable()
	if err != nil {
		return "" // Fall back to system WebView2
	}

	exeDir := filepath.Dir(exePath)

	// Check for bundled WebView2 runtime in webview2/ folder
	webview2Dir := filepath.Join(exeDir, "webview2")
	if info, err := os.Stat(webview2Dir); err == nil && info.IsDir() {
		// The Fixed Version Runtime contains msedgewebview2.exe
		runtimeExe := filepath.Join(webview2Dir, "msedgewebview2.exe")
		if _, err := os.Stat(runtimeExe); err == nil {
			return webview2Dir // Use bundled runtime
		}
	}

	return "" // Use system WebView2
}
