// Package cli provides settings inspection commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wolffia-app/wolffia/internal/config"
)

// newSettingsCmd creates the 'settings' command group.
func newSettingsCmd() *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect persisted shell settings",
		Long: `Inspect the persisted shell settings.

Commands:
  show  - Display current settings
  path  - Show settings file path`,
	}

	settingsCmd.AddCommand(newSettingsShowCmd())
	settingsCmd.AddCommand(newSettingsPathCmd())

	return settingsCmd
}

// newSettingsShowCmd creates the 'settings show' command.
func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current settings",
		Long: `Display the persisted shell settings.

Missing or unreadable settings files fall back to defaults, the same way
the desktop shell behaves at startup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSettings("")
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			fmt.Println("Current Settings")
			fmt.Println("================")
			fmt.Println()

			fmt.Println("Window:")
			fmt.Printf("  Geometry:      %dx%d\n", cfg.Window.Width, cfg.Window.Height)
			fmt.Printf("  Open devtools: %t\n", cfg.Window.OpenDevtools)
			fmt.Println()

			fmt.Println("Notifications:")
			fmt.Printf("  Enabled:               %t\n", cfg.Notifications.Enabled)
			fmt.Printf("  Show update available: %t\n", cfg.Notifications.ShowUpdateAvailable)
			fmt.Println()

			fmt.Println("Updates:")
			fmt.Printf("  Check enabled: %t\n", cfg.Updates.CheckEnabled)

			return nil
		},
	}
}

// newSettingsPathCmd creates the 'settings path' command.
func newSettingsPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show settings file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultSettingsPath()
			if err != nil {
				return fmt.Errorf("failed to resolve settings path: %w", err)
			}

			fmt.Println(path)

			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Fprintln(os.Stderr, "(file does not exist yet; defaults are in effect)")
			}
			return nil
		},
	}
}
