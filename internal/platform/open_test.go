package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenPathEmptyPath(t *testing.T) {
	if err := OpenPath(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestOpenPathMissingPath(t *testing.T) {
	tmpDir := t.TempDir()

	err := OpenPath(filepath.Join(tmpDir, "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	if !strings.Contains(err.Error(), "path does not exist") {
		t.Errorf("expected missing-path error, got: %v", err)
	}
}

func TestRevealPathMissingPath(t *testing.T) {
	tmpDir := t.TempDir()

	err := RevealPath(filepath.Join(tmpDir, "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	if !strings.Contains(err.Error(), "path does not exist") {
		t.Errorf("expected missing-path error, got: %v", err)
	}
}

func TestCheckedAbsReturnsAbsolutePath(t *testing.T) {
	tmpDir := t.TempDir()

	got, err := checkedAbs(tmpDir)
	if err != nil {
		t.Fatalf("checkedAbs failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
}

func TestCheckedAbsExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // windows

	got, err := checkedAbs("~")
	if err != nil {
		t.Fatalf("checkedAbs(~) failed: %v", err)
	}
	if got != home {
		t.Errorf("checkedAbs(~) = %q, want %q", got, home)
	}
}
