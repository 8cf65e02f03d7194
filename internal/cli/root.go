// Package cli provides the command-line interface for wolffia.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wolffia-app/wolffia/internal/logging"
	"github.com/wolffia-app/wolffia/internal/version"
)

var (
	// Global flags
	verbose bool
	debug   bool

	// Global logger
	logger *logging.Logger

	// Global context for signal handling
	rootContext context.Context
	cancelFunc  context.CancelFunc
)

// NewRootCmd creates the root command for CLI mode.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wolffia",
		Short: "Wolffia - desktop shell for the Wolffia web application",
		Long: `Wolffia ` + version.Version + ` - Built: ` + version.BuildTime + `
Desktop shell that hosts the Wolffia web application in a native window.

GUI Mode (default):
  Launches the desktop window. Requires a display.

CLI Mode:
  Diagnostic commands for inspecting the installation without a display.
  Useful over SSH and in support scripts.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize logger
			logger = logging.NewDefaultCLILogger()
			if verbose || debug {
				logging.SetGlobalLevel(-1) // Debug level (zerolog.DebugLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	// Customize completion command description
	completionCmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Enable tab-completion for wolffia commands",
		Long: `Generate shell completion scripts to enable tab-completion for wolffia.

QUICK START:

  macOS with zsh (default on modern Macs):
    mkdir -p ~/.zsh/completions
    wolffia completion zsh > ~/.zsh/completions/_wolffia
    # Then add to ~/.zshrc: fpath=(~/.zsh/completions $fpath)

  Linux with bash:
    wolffia completion bash | sudo tee /etc/bash_completion.d/wolffia

For detailed instructions, use: wolffia completion [shell] --help`,
	}
	rootCmd.AddCommand(completionCmd)

	completionCmd.AddCommand(&cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate the autocompletion script for bash.

Linux:
  wolffia completion bash | sudo tee /etc/bash_completion.d/wolffia

macOS (with bash-completion@2 installed):
  wolffia completion bash > $(brew --prefix)/etc/bash_completion.d/wolffia

QUICK TEST (temporary, current session only):
  source <(wolffia completion bash)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "zsh",
		Short: "Generate zsh completion script",
		Long: `Generate the autocompletion script for zsh.

  mkdir -p ~/.zsh/completions
  wolffia completion zsh > ~/.zsh/completions/_wolffia
  # Add to ~/.zshrc: fpath=(~/.zsh/completions $fpath)
  # Then: autoload -Uz compinit && compinit

QUICK TEST (temporary, current session only):
  source <(wolffia completion zsh)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.Root().GenZshCompletion(cmd.OutOrStdout())
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate the autocompletion script for fish.

  wolffia completion fish > ~/.config/fish/completions/wolffia.fish

QUICK TEST (temporary, current session only):
  wolffia completion fish | source`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "powershell",
		Short: "Generate PowerShell completion script",
		Long: `Generate the autocompletion script for PowerShell.

  wolffia completion powershell >> $PROFILE

QUICK TEST (temporary, current session only):
  wolffia completion powershell | Out-String | Invoke-Expression`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.Root().GenPowerShellCompletion(cmd.OutOrStdout())
		},
	})

	// Disable default completion command (we're adding our own above)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	// Create a context that can be cancelled by signals
	rootContext, cancelFunc = context.WithCancel(context.Background())

	// Set up signal handling for graceful cancellation
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Loop to handle multiple signals (e.g., user pressing Ctrl+C repeatedly)
	go func() {
		for sig := range sigChan {
			// When the channel is closed sig is nil and the loop exits
			if sig != nil {
				fmt.Fprintf(os.Stderr, "\nReceived signal %v, cancelling...\n", sig)
				cancelFunc()
			}
		}
	}()

	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	err := rootCmd.Execute()

	// Clean up signal handler
	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// AddCommands adds all subcommands to the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDataDirCmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newCheckUpdateCmd())
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}

// GetContext returns the global CLI context with signal handling.
// This context will be cancelled when the user presses Ctrl+C.
func GetContext() context.Context {
	if rootContext == nil {
		// Fallback to background context if called before Execute()
		return context.Background()
	}
	return rootContext
}
