// Wolffia - desktop shell for the Wolffia web application
//
// v1.3.0: Persisted window geometry, update-check toggle, shell open/reveal bindings.
// v1.2.0: Rotating file log, desktop notifications, background update check.
// - No args + display available → GUI mode
// - No args + no display → CLI help
// - --gui → GUI mode
// - --cli → CLI mode (force)
// - CLI subcommands/flags → CLI mode
//
// Build with: wails build (for all platforms)
package main

import (
	"embed"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/wolffia-app/wolffia/internal/cli"
	"github.com/wolffia-app/wolffia/internal/wailsapp"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Smart CLI vs GUI mode detection
	if isCLIMode() {
		// CLI mode - use the proper CLI root command with all persistent flags
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	// GUI mode - launch Wails GUI
	// Suppress GTK ibus input method warnings on Linux.
	// Wails uses its own webview input handling; ibus is unnecessary.
	if runtime.GOOS == "linux" && os.Getenv("GTK_IM_MODULE") == "" {
		os.Setenv("GTK_IM_MODULE", "none")
	}
	wailsapp.Assets = assets
	if err := wailsapp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isCLIMode determines whether to run in CLI mode based on arguments and
// environment.
//
// CLI mode when:
// - --cli flag is present (force CLI mode)
// - CLI subcommands are present (version, data-dir, settings, doctor, check-update)
// - CLI flags are present (--help, --version, -h, -v)
// - No display available (DISPLAY/WAYLAND_DISPLAY not set on Linux)
//
// GUI mode when:
// - --gui flag is present (force GUI mode)
// - No arguments and display is available
func isCLIMode() bool {
	// Explicit flags
	if slices.Contains(os.Args, "--cli") {
		return true
	}
	if slices.Contains(os.Args, "--gui") {
		return false
	}

	// CLI subcommands and flags that indicate CLI mode
	cliPatterns := []string{
		// Subcommands
		"version", "data-dir", "settings", "doctor", "check-update", "completion",
		// Flags
		"--help", "-h", "--version", "-v",
	}

	for _, arg := range os.Args[1:] {
		for _, pattern := range cliPatterns {
			if arg == pattern || strings.HasPrefix(arg, pattern+" ") {
				return true
			}
		}
	}

	// No explicit mode or commands - check for display
	if len(os.Args) == 1 {
		// No arguments: default to GUI if display available, CLI otherwise
		if runtime.GOOS == "linux" {
			if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
				return true // No display, default to CLI
			}
		}
		// On macOS/Windows or Linux with display: default to GUI
		return false
	}

	// Unknown arguments - let CLI handle (might be typos or new commands)
	// This ensures launching with a stray argument shows CLI help rather
	// than opening the GUI
	return true
}
