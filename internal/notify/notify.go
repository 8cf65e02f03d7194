// Package notify provides cross-platform desktop notifications for Wolffia.
// It uses github.com/gen2brain/beeep for cross-platform notification support.
package notify

import (
	"fmt"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/wolffia-app/wolffia/internal/logging"
)

// Notifier handles desktop notifications.
type Notifier struct {
	logger  *logging.Logger
	enabled bool
	mu      sync.RWMutex
}

// Config holds notification configuration.
type Config struct {
	// Enabled determines if notifications are sent.
	Enabled bool

	// ShowUpdateAvailable shows a notification when a newer release is found.
	ShowUpdateAvailable bool
}

// DefaultConfig returns the default notification configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:             true,
		ShowUpdateAvailable: true,
	}
}

// NewNotifier creates a new notifier with the given configuration.
func NewNotifier(cfg *Config, logger *logging.Logger) *Notifier {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Notifier{
		logger:  logger,
		enabled: cfg.Enabled,
	}
}

// SetEnabled enables or disables notifications.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// IsEnabled returns whether notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.enabled
}

// Send shows a notification with the given title and message.
// Long values are truncated so platform balloons stay readable.
func (n *Notifier) Send(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	if err := n.send(truncate(title, 60), truncate(message, 200)); err != nil {
		if n.logger != nil {
			n.logger.Warn().Err(err).Str("title", title).Msg("Failed to send notification")
		}
		return err
	}
	return nil
}

// UpdateAvailable sends a notification that a newer release exists.
func (n *Notifier) UpdateAvailable(version string) {
	if !n.IsEnabled() {
		return
	}

	title := "Wolffia"
	message := fmt.Sprintf("Version %s is available for download.", truncate(version, 40))

	if err := n.send(title, message); err != nil && n.logger != nil {
		n.logger.Warn().Err(err).Str("version", version).Msg("Failed to send update notification")
	}
}

// send is the internal method that actually sends the notification.
func (n *Notifier) send(title, message string) error {
	// beeep.Notify is cross-platform:
	// - Windows: Uses toast notifications
	// - macOS: Uses NSUserNotificationCenter
	// - Linux: Uses D-Bus notifications
	return beeep.Notify(title, message, "")
}

// Alert sends an alert notification (error level).
// This is for critical issues that require user attention.
func (n *Notifier) Alert(message string) {
	if !n.IsEnabled() {
		return
	}

	title := "Wolffia Alert"

	// Use beeep.Alert which shows a more prominent notification on some platforms
	if err := beeep.Alert(title, message, ""); err != nil {
		// Fall back to regular notify
		if err := n.send(title, message); err != nil && n.logger != nil {
			n.logger.Error().Err(err).Str("message", message).Msg("Failed to send alert notification")
		}
	}
}

// Beep sends an audible beep notification.
// Useful for drawing attention without a visual notification.
func (n *Notifier) Beep() {
	if !n.IsEnabled() {
		return
	}

	_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
