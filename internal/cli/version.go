// Package cli provides the version command.
package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wolffia-app/wolffia/internal/version"
)

// newVersionCmd creates the 'version' command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Wolffia %s\n", version.Version)
			fmt.Printf("  Built:    %s\n", version.BuildTime)
			fmt.Printf("  Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
