// Package cli provides the data-dir command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wolffia-app/wolffia/internal/storage"
)

// newDataDirCmd creates the 'data-dir' command.
func newDataDirCmd() *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "data-dir",
		Short: "Print the application data directory",
		Long: `Print the platform-specific directory where Wolffia stores its data.

Locations:
  macOS:   ~/Library/Application Support/Wolffia
  Windows: %APPDATA%\Wolffia
  Linux:   $XDG_DATA_HOME/wolffia (or ~/.local/share/wolffia)

Use --create to create the directory if it does not exist yet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if create {
				dir, err := storage.EnsureDataDir()
				if err != nil {
					return fmt.Errorf("failed to create data directory: %w", err)
				}
				fmt.Println(dir)
				return nil
			}

			dir, err := storage.DataDir()
			if err != nil {
				return fmt.Errorf("failed to resolve data directory: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "Create the directory if missing")

	return cmd
}
