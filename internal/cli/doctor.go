// Package cli provides the doctor diagnostics command.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wolffia-app/wolffia/internal/config"
	"github.com/wolffia-app/wolffia/internal/diskspace"
	"github.com/wolffia-app/wolffia/internal/storage"
)

// minFreeBytes is the free space floor below which settings and log
// writes are likely to start failing.
const minFreeBytes = 50 * 1024 * 1024

// newDoctorCmd creates the 'doctor' command.
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the installation for common problems",
		Long: `Run local diagnostics on the Wolffia installation.

Checks the data directory, settings file, and log directory, and verifies
a display is available for GUI mode. No network access is performed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetLogger()

			fmt.Println("Wolffia Doctor")
			fmt.Println("==============")
			fmt.Println()

			failed := 0

			// Data directory resolution
			dataDir, err := storage.DataDir()
			if err != nil {
				fmt.Printf("✗ Data directory: %v\n", err)
				failed++
			} else {
				fmt.Printf("✓ Data directory: %s\n", dataDir)
			}

			// Data directory writability
			if err == nil {
				if werr := checkWritable(dataDir); werr != nil {
					fmt.Printf("✗ Data directory writable: %v\n", werr)
					failed++
				} else {
					fmt.Println("✓ Data directory writable")
				}
			}

			// Disk space for settings and logs
			if err == nil {
				free := diskspace.GetAvailableSpace(filepath.Join(dataDir, "probe"))
				switch {
				case free == 0:
					fmt.Println("✓ Disk space: could not be determined (skipped)")
				case free < minFreeBytes:
					fmt.Printf("✗ Disk space: only %.1f MB free in data directory\n", float64(free)/(1024*1024))
					failed++
				default:
					fmt.Printf("✓ Disk space: %.1f GB free\n", float64(free)/(1024*1024*1024))
				}
			}

			// Settings file
			settingsPath, err := config.DefaultSettingsPath()
			if err != nil {
				fmt.Printf("✗ Settings path: %v\n", err)
				failed++
			} else if _, serr := os.Stat(settingsPath); os.IsNotExist(serr) {
				fmt.Printf("✓ Settings: not created yet, defaults in effect (%s)\n", settingsPath)
			} else if _, lerr := config.LoadSettings(settingsPath); lerr != nil {
				fmt.Printf("✗ Settings: %v\n", lerr)
				failed++
			} else {
				fmt.Printf("✓ Settings: %s\n", settingsPath)
			}

			// Log directory
			logDir := storage.LogDirectory()
			if werr := checkWritable(logDir); werr != nil {
				fmt.Printf("✗ Log directory writable: %v\n", werr)
				failed++
			} else {
				fmt.Printf("✓ Log directory: %s\n", logDir)
			}

			// Display availability for GUI mode
			if runtime.GOOS == "linux" {
				display := os.Getenv("DISPLAY")
				wayland := os.Getenv("WAYLAND_DISPLAY")
				switch {
				case wayland != "":
					fmt.Printf("✓ Display: wayland (%s)\n", wayland)
				case display != "":
					fmt.Printf("✓ Display: x11 (%s)\n", display)
				default:
					fmt.Println("✗ Display: DISPLAY and WAYLAND_DISPLAY are not set; GUI mode will not start")
					failed++
				}
			} else {
				fmt.Println("✓ Display: managed by the OS")
			}

			fmt.Println()
			if failed > 0 {
				logger.Error().Int("failed", failed).Msg("Doctor found problems")
				return fmt.Errorf("%d check(s) failed", failed)
			}

			logger.Info().Msg("Doctor checks passed")
			fmt.Println("All checks passed.")
			return nil
		},
	}
}

// checkWritable creates dir if needed and verifies a file can be written
// in it. The probe file is removed afterwards.
func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("probe"), 0600); err != nil {
		return err
	}
	return os.Remove(probe)
}
