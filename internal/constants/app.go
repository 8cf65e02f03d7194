package constants

import (
	"time"
)

// Application identity
const (
	// AppName - user-visible application name, used in window titles,
	// notifications, and platform data directory paths
	AppName = "Wolffia"

	// AppID - reverse-DNS identifier used for the single-instance lock
	// and platform integration
	AppID = "app.wolffia.desktop"

	// DataDirName - directory name under Linux XDG data homes.
	// Windows and macOS use AppName directly (their conventions keep
	// the capitalized product name).
	DataDirName = "wolffia"
)

// Window geometry
const (
	// DefaultWindowWidth - initial window width when no settings exist
	DefaultWindowWidth = 1100

	// DefaultWindowHeight - initial window height when no settings exist
	DefaultWindowHeight = 720

	// MinWindowWidth - minimum window width enforced by the shell
	MinWindowWidth = 800

	// MinWindowHeight - minimum window height enforced by the shell
	MinWindowHeight = 600

	// MaxWindowWidth - upper clamp for persisted window width.
	// Guards against corrupt settings producing an off-screen window.
	MaxWindowWidth = 7680

	// MaxWindowHeight - upper clamp for persisted window height
	MaxWindowHeight = 4320
)

// Update check
const (
	// UpdateCheckURL - GitHub latest-release endpoint polled for new versions
	UpdateCheckURL = "https://api.github.com/repos/wolffia-app/wolffia/releases/latest"

	// UpdateCheckTimeout - overall deadline for one update check (5 seconds)
	// The check runs in the background and must never delay startup.
	UpdateCheckTimeout = 5 * time.Second

	// UpdateCheckCacheDuration - how long a completed check result is reused (24 hours)
	UpdateCheckCacheDuration = 24 * time.Hour

	// UpdateCheckMaxRetries - transport-level retries for the release request
	UpdateCheckMaxRetries = 2
)

// File log rotation
const (
	// LogFileName - rotating log file name inside the data directory's logs folder
	LogFileName = "wolffia.log"

	// LogMaxSizeMB - size in megabytes before the log file is rotated
	LogMaxSizeMB = 10

	// LogMaxBackups - number of rotated log files to keep
	LogMaxBackups = 5

	// LogMaxAgeDays - days to retain rotated log files
	LogMaxAgeDays = 30
)

// Settings persistence
const (
	// SettingsFileName - INI settings file name inside the data directory
	SettingsFileName = "settings.ini"
)
