package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Error prefixes are part of the bridge contract: the front end matches on
// them, so they must not change between releases.

// ReadFileString returns the contents of path decoded as text.
func ReadFileString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("Failed to read file: %w", err)
	}
	return string(data), nil
}

// WriteFileString writes content to path, creating any missing parent
// directories first.
func WriteFileString(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("Failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("Failed to write file: %w", err)
	}
	return nil
}
