//go:build !windows

package diskspace

import (
	"path/filepath"
	"syscall"
)

// CheckAvailableSpace verifies the filesystem holding targetPath has room
// for requiredBytes. The target itself may not exist yet; its parent
// directory is probed. safetyMargin scales the requirement, e.g. 1.1 for
// a 10% buffer.
//
// Returns an InsufficientSpaceError when space is short. Paths whose
// filesystem cannot be probed (network mounts, virtual filesystems) pass
// the check; the write then fails naturally if space really is short.
func CheckAvailableSpace(targetPath string, requiredBytes int64, safetyMargin float64) error {
	dir := filepath.Dir(targetPath)

	var stat syscall.Statfs_t
	if err := syscall.Statfs(dir, &stat); err != nil {
		return nil
	}

	// Bavail counts blocks available to unprivileged users
	availableBytes := int64(stat.Bavail) * int64(stat.Bsize)

	requiredWithMargin := int64(float64(requiredBytes) * safetyMargin)

	if availableBytes < requiredWithMargin {
		return &InsufficientSpaceError{
			Path:           targetPath,
			RequiredBytes:  requiredWithMargin,
			AvailableBytes: availableBytes,
		}
	}

	return nil
}

// GetAvailableSpace returns the available space in bytes for the filesystem
// containing the given path. Returns 0 if unable to determine.
func GetAvailableSpace(path string) int64 {
	dir := filepath.Dir(path)

	var stat syscall.Statfs_t
	if err := syscall.Statfs(dir, &stat); err != nil {
		return 0
	}

	return int64(stat.Bavail) * int64(stat.Bsize)
}
