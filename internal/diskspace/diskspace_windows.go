//go:build windows

package diskspace

import (
	"path/filepath"
	"syscall"
	"unsafe"
)

var (
	kernel32            = syscall.NewLazyDLL("kernel32.dll")
	getDiskFreeSpaceExW = kernel32.NewProc("GetDiskFreeSpaceExW")
)

// CheckAvailableSpace verifies the filesystem holding targetPath has room
// for requiredBytes. The target itself may not exist yet; its parent
// directory is probed. safetyMargin scales the requirement, e.g. 1.1 for
// a 10% buffer.
//
// Returns an InsufficientSpaceError when space is short. Paths whose
// free space cannot be queried pass the check; the write then fails
// naturally if space really is short.
func CheckAvailableSpace(targetPath string, requiredBytes int64, safetyMargin float64) error {
	dir := filepath.Dir(targetPath)

	availableBytes := availableSpaceWindows(dir)
	if availableBytes == 0 {
		return nil
	}

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
	return availableSpaceWindows(filepath.Dir(path))
}

// availableSpaceWindows queries GetDiskFreeSpaceExW for the bytes
// available to the calling user.
func availableSpaceWindows(path string) int64 {
	var freeBytesAvailable, totalBytes, totalFreeBytes uint64

	pathPtr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return 0
	}

	ret, _, _ := getDiskFreeSpaceExW.Call(
		uintptr(unsafe.Pointer(pathPtr)),
		uintptr(unsafe.Pointer(&freeBytesAvailable)),
		uintptr(unsafe.Pointer(&totalBytes)),
		uintptr(unsafe.Pointer(&totalFreeBytes)),
	)

	if ret == 0 {
		return 0
	}

	return int64(freeBytesAvailable)
}
