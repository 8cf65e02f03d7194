// Package cli provides the check-update command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wolffia-app/wolffia/internal/constants"
	"github.com/wolffia-app/wolffia/internal/update"
	"github.com/wolffia-app/wolffia/internal/version"
)

// newCheckUpdateCmd creates the 'check-update' command.
func newCheckUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-update",
		Short: "Check GitHub for a newer Wolffia release",
		Long: `Query the GitHub releases API for the latest published Wolffia version
and compare it against this build. Exits non-zero if the check itself
fails; an available update is reported but is not an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetLogger()
			logger.Debugf("Checking %s", constants.UpdateCheckURL)

			// Ctrl+C cancels the request through the signal context.
			ctx, cancel := context.WithTimeout(GetContext(), constants.UpdateCheckTimeout)
			defer cancel()

			release, err := update.FetchLatest(ctx, constants.UpdateCheckURL)
			if err != nil {
				return fmt.Errorf("update check failed: %v", err)
			}

			fmt.Printf("Current version: %s\n", version.Version)
			fmt.Printf("Latest release:  %s\n", release.TagName)

			if update.CompareVersions(version.Version, release.TagName) < 0 {
				fmt.Println()
				fmt.Printf("Update available. Download: %s\n", release.HTMLURL)
			} else {
				fmt.Println()
				fmt.Println("You are running the latest version.")
			}
			return nil
		},
	}
}
