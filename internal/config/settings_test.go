package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSettings(t *testing.T) {
	cfg := NewSettings()

	// Check defaults
	if cfg.Window.Width != 1100 {
		t.Errorf("expected default width to be 1100, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected default height to be 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.OpenDevtools != false {
		t.Error("expected OpenDevtools to default to false")
	}
	if cfg.Notifications.Enabled != true {
		t.Error("expected Notifications.Enabled to default to true")
	}
	if cfg.Updates.CheckEnabled != true {
		t.Error("expected Updates.CheckEnabled to default to true")
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	tmpDir := t.TempDir()
	settingsPath := filepath.Join(tmpDir, "settings.ini")

	cfg := &Settings{
		Window: WindowConfig{
			Width:        1440,
			Height:       900,
			OpenDevtools: true,
		},
		Notifications: NotificationConfig{
			Enabled:             false,
			ShowUpdateAvailable: false,
		},
		Updates: UpdateConfig{
			CheckEnabled: false,
		},
	}

	if err := SaveSettings(cfg, settingsPath); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		t.Fatal("settings file was not created")
	}

	loaded, err := LoadSettings(settingsPath)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if loaded.Window.Width != 1440 {
		t.Errorf("expected width 1440, got %d", loaded.Window.Width)
	}
	if loaded.Window.Height != 900 {
		t.Errorf("expected height 900, got %d", loaded.Window.Height)
	}
	if !loaded.Window.OpenDevtools {
		t.Error("expected OpenDevtools to persist as true")
	}
	if loaded.Notifications.Enabled {
		t.Error("expected Notifications.Enabled to persist as false")
	}
	if loaded.Notifications.ShowUpdateAvailable {
		t.Error("expected ShowUpdateAvailable to persist as false")
	}
	if loaded.Updates.CheckEnabled {
		t.Error("expected Updates.CheckEnabled to persist as false")
	}
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadSettings(filepath.Join(tmpDir, "does-not-exist.ini"))
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if cfg.Window.Width != 1100 || cfg.Window.Height != 720 {
		t.Errorf("expected default geometry, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Updates.CheckEnabled {
		t.Error("expected default CheckEnabled true")
	}
}

func TestLoadSettingsNormalizesBadGeometry(t *testing.T) {
	tmpDir := t.TempDir()
	settingsPath := filepath.Join(tmpDir, "settings.ini")

	content := "[wolffia.window]\nwidth = 12\nheight = -5\n"
	if err := os.WriteFile(settingsPath, []byte(content), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	cfg, err := LoadSettings(settingsPath)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if cfg.Window.Width != 1100 {
		t.Errorf("expected clamped width 1100, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected clamped height 720, got %d", cfg.Window.Height)
	}
}

func TestLoadSettingsPartialFileKeepsOtherDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	settingsPath := filepath.Join(tmpDir, "settings.ini")

	content := "[wolffia.updates]\ncheck_enabled = false\n"
	if err := os.WriteFile(settingsPath, []byte(content), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	cfg, err := LoadSettings(settingsPath)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if cfg.Updates.CheckEnabled {
		t.Error("expected CheckEnabled false from file")
	}
	if cfg.Window.Width != 1100 {
		t.Errorf("expected default width for missing section, got %d", cfg.Window.Width)
	}
	if !cfg.Notifications.Enabled {
		t.Error("expected default Notifications.Enabled true")
	}
}

func TestValidateWindowBounds(t *testing.T) {
	cfg := NewSettings()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got: %v", err)
	}

	cfg.Window.Width = 100
	if err := cfg.Validate(); err != ErrInvalidWindowWidth {
		t.Errorf("expected ErrInvalidWindowWidth, got: %v", err)
	}

	cfg.Window.Width = 1100
	cfg.Window.Height = 100000
	if err := cfg.Validate(); err != ErrInvalidWindowHeight {
		t.Errorf("expected ErrInvalidWindowHeight, got: %v", err)
	}
}

func TestSaveSettingsNoTempFileLeftBehind(t *testing.T) {
	tmpDir := t.TempDir()
	settingsPath := filepath.Join(tmpDir, "settings.ini")

	if err := SaveSettings(NewSettings(), settingsPath); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	if _, err := os.Stat(settingsPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file was left behind after save")
	}
}
