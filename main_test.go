package main

import (
	"os"
	"runtime"
	"testing"
)

// TestIsCLIMode verifies argument-driven mode detection.
func TestIsCLIMode(t *testing.T) {
	saved := os.Args
	defer func() { os.Args = saved }()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"force cli", []string{"wolffia", "--cli"}, true},
		{"force gui", []string{"wolffia", "--gui"}, false},
		{"version subcommand", []string{"wolffia", "version"}, true},
		{"data-dir subcommand", []string{"wolffia", "data-dir"}, true},
		{"settings subcommand", []string{"wolffia", "settings", "show"}, true},
		{"doctor subcommand", []string{"wolffia", "doctor"}, true},
		{"check-update subcommand", []string{"wolffia", "check-update"}, true},
		{"completion subcommand", []string{"wolffia", "completion", "bash"}, true},
		{"help flag", []string{"wolffia", "--help"}, true},
		{"short help flag", []string{"wolffia", "-h"}, true},
		{"version flag", []string{"wolffia", "--version"}, true},
		{"unknown argument", []string{"wolffia", "frobnicate"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			if got := isCLIMode(); got != tt.want {
				t.Errorf("isCLIMode(%v) = %v, want %v", tt.args[1:], got, tt.want)
			}
		})
	}
}

// TestIsCLIModeNoArgs verifies the display-based default with no arguments.
func TestIsCLIModeNoArgs(t *testing.T) {
	saved := os.Args
	defer func() { os.Args = saved }()
	os.Args = []string{"wolffia"}

	if runtime.GOOS == "linux" {
		t.Setenv("DISPLAY", "")
		t.Setenv("WAYLAND_DISPLAY", "")
		if !isCLIMode() {
			t.Error("expected CLI mode with no args and no display")
		}

		t.Setenv("DISPLAY", ":0")
		if isCLIMode() {
			t.Error("expected GUI mode with no args and a display")
		}
	} else {
		// macOS and Windows always have a display
		if isCLIMode() {
			t.Error("expected GUI mode with no args")
		}
	}
}
