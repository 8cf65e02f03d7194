// Package wailsapp provides the Wails-based desktop shell for Wolffia.
// The web front end runs inside the webview; every public method on App
// is exposed to it as a callable bridge function.
package wailsapp

import (
	"context"
	"embed"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
	wruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/wolffia-app/wolffia/internal/config"
	"github.com/wolffia-app/wolffia/internal/constants"
	"github.com/wolffia-app/wolffia/internal/logging"
	"github.com/wolffia-app/wolffia/internal/notify"
	"github.com/wolffia-app/wolffia/internal/version"
)

// Assets holds the embedded frontend files, passed in from main package.
var Assets embed.FS

var (
	// wailsLogger is the package-level logger for GUI mode
	wailsLogger *logging.Logger
)

// App is the main Wails application struct.
// All public methods are exposed to the frontend as callable functions.
type App struct {
	ctx      context.Context
	settings *config.Settings
	notifier *notify.Notifier

	// sessionID ties log lines and frontend reports to one app run
	sessionID string

	// devMode is true for -dev builds and when WOLFFIA_DEBUG is set
	devMode bool
}

// NewApp creates a new Wails application instance.
func NewApp() *App {
	return &App{
		sessionID: uuid.NewString(),
	}
}

// startup is called when the app starts. The context is saved
// so we can call the Wails runtime methods.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	// The window starts hidden and is shown only once the webview is up,
	// so users never see an uninitialized black surface.
	wruntime.WindowShow(ctx)

	a.logInfo("shell", fmt.Sprintf("Wolffia %s started (session %s)", version.Version, a.sessionID))

	// Update check runs in the background and must never delay startup.
	if a.settings != nil && a.settings.Updates.CheckEnabled {
		go a.notifyIfUpdateAvailable()
	}
}

// domReady is called after the frontend DOM is ready.
func (a *App) domReady(ctx context.Context) {
	wailsLogger.Debug().Msg("Frontend DOM ready")
}

// beforeClose is called when the window close is requested.
// Return true to prevent closing.
func (a *App) beforeClose(ctx context.Context) bool {
	// Capture window geometry so the next launch restores it.
	if a.settings != nil {
		width, height := wruntime.WindowGetSize(ctx)
		if width > 0 && height > 0 {
			a.settings.Window.Width = width
			a.settings.Window.Height = height
		}
	}
	return false
}

// shutdown is called at application termination.
func (a *App) shutdown(ctx context.Context) {
	a.logInfo("shell", "Wolffia shutting down")

	if a.settings != nil {
		a.settings.Normalize()
		if err := config.SaveSettings(a.settings, ""); err != nil {
			wailsLogger.Warn().Err(err).Msg("Failed to persist settings")
		}
	}

	CloseFileLogger()
}

// Run launches the Wails GUI application.
func Run(args []string) error {
	// Check for display on Linux
	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return fmt.Errorf("GUI mode requires a display. No display detected.\n" +
				"DISPLAY and WAYLAND_DISPLAY are not set.\n" +
				"Use 'wolffia --cli' for CLI mode")
		}
	}

	// Refuse to start a second copy; the existing window is focused instead.
	if !EnsureSingleInstance() {
		return fmt.Errorf("another instance of Wolffia is already running")
	}

	// File logging starts before the console logger so its writer can be teed.
	if err := InitFileLogger(); err != nil {
		// Console logging still works; continue without file logs.
		fmt.Fprintf(os.Stderr, "warning: file logging unavailable: %v\n", err)
	}

	wailsLogger = logging.NewLogger("gui", GetFileLogWriter())

	devMode := strings.HasSuffix(version.Version, "-dev") ||
		os.Getenv("WOLFFIA_DEBUG") != "" ||
		slices.Contains(args, "--debug")
	if devMode {
		logging.SetGlobalLevel(zerolog.DebugLevel)
		wailsLogger.Info().Msg("Debug logging enabled")
	} else {
		logging.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Load persisted settings; a broken file degrades to defaults.
	cfg, err := config.LoadSettings("")
	if err != nil {
		wailsLogger.Warn().Err(err).Msg("Failed to load settings, using defaults")
		cfg = config.NewSettings()
	}

	app := NewApp()
	app.settings = cfg
	app.devMode = devMode
	app.notifier = notify.NewNotifier(&notify.Config{
		Enabled:             cfg.Notifications.Enabled,
		ShowUpdateAvailable: cfg.Notifications.ShowUpdateAvailable,
	}, wailsLogger)

	err = wails.Run(&options.App{
		Title:     windowTitle(),
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		MinWidth:  constants.MinWindowWidth,
		MinHeight: constants.MinWindowHeight,
		AssetServer: &assetserver.Options{
			Assets: Assets,
		},
		BackgroundColour: &options.RGBA{R: 250, G: 250, B: 249, A: 1}, // stone-50
		OnStartup:        app.startup,
		OnDomReady:       app.domReady,
		OnBeforeClose:    app.beforeClose,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
		// Hidden until the startup hook shows it, avoiding a black flash
		// while the webview initializes.
		StartHidden: true,
		Logger:      logging.NewWailsLogger(wailsLogger),
		LogLevel:    logger.INFO,
		Debug: options.Debug{
			OpenInspectorOnStartup: devMode || cfg.Window.OpenDevtools,
		},
		// Platform-specific options
		Mac: &mac.Options{
			TitleBar: &mac.TitleBar{
				TitlebarAppearsTransparent: false,
				HideTitle:                  false,
				HideTitleBar:               false,
				FullSizeContent:            false,
				UseToolbar:                 false,
			},
			About: &mac.AboutInfo{
				Title:   constants.AppName,
				Message: fmt.Sprintf("Version %s\n\nDesktop shell for the Wolffia web application.", version.Version),
			},
		},
		Windows: &windows.Options{
			WebviewIsTransparent:              false,
			WindowIsTranslucent:               false,
			DisableWindowIcon:                 false,
			DisableFramelessWindowDecorations: false,
			WebviewUserDataPath:               "",
			// Use a bundled WebView2 Fixed Version Runtime if present, so the
			// portable distribution runs without a system-wide install.
			WebviewBrowserPath: getWebView2BrowserPath(),
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			ProgramName:         constants.DataDirName,
		},
	})

	if err != nil {
		return fmt.Errorf("wails application error: %w", err)
	}

	return nil
}

// windowTitle is the exact main window title. The Windows single-instance
// check locates an already-running instance by this string, so anything
// that changes it has to stay deterministic per build.
func windowTitle() string {
	return fmt.Sprintf("%s %s", constants.AppName, version.Version)
}

// logInfo logs to the console logger and mirrors the line to the rotating
// file log. Safe to call before Run wires the logger.
func (a *App) logInfo(stage, message string) {
	if wailsLogger != nil {
		wailsLogger.Info().Str("stage", stage).Msg(message)
	}
	WriteToLogFile("INFO", stage, message)
}

// logError logs to the console logger and mirrors the line to the rotating
// file log. Safe to call before Run wires the logger.
func (a *App) logError(stage, message string) {
	if wailsLogger != nil {
		wailsLogger.Error().Str("stage", stage).Msg(message)
	}
	WriteToLogFile("ERROR", stage, message)
}
