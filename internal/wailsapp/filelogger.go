// Package wailsapp provides rotating file logging for the GUI.
package wailsapp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/wolffia-app/wolffia/internal/constants"
	"github.com/wolffia-app/wolffia/internal/storage"
)

var (
	// fileLogger is the rotating file logger
	fileLogger *lumberjack.Logger
	// fileLoggerMu protects fileLogger
	fileLoggerMu sync.RWMutex
	// fileLoggingEnabled tracks if file logging is enabled
	fileLoggingEnabled bool
)

// InitFileLogger initializes file-based logging with rotation under the
// application log directory. Safe to call more than once.
func InitFileLogger() error {
	return initFileLoggerAt(storage.LogDirectory())
}

func initFileLoggerAt(logDir string) error {
	fileLoggerMu.Lock()

	if fileLogger != nil {
		fileLoggerMu.Unlock()
		return nil // Already initialized
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fileLoggerMu.Unlock()
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, constants.LogFileName)
	fileLogger = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   true,
	}

	fileLoggingEnabled = true
	fileLoggerMu.Unlock()

	// Log startup message (outside lock since WriteToLogFile acquires lock)
	WriteToLogFile("INFO", "Wolffia", fmt.Sprintf("File logging started at %s", logPath))
	WriteToLogFile("INFO", "Wolffia", fmt.Sprintf("Startup time: %s", time.Now().Format(time.RFC3339)))

	return nil
}

// IsFileLoggingEnabled returns whether file logging is currently enabled.
func IsFileLoggingEnabled() bool {
	fileLoggerMu.RLock()
	defer fileLoggerMu.RUnlock()
	return fileLoggingEnabled && fileLogger != nil
}

// WriteToLogFile writes a message to the rotating log file.
// Additive to the zerolog console output, never a replacement for it.
func WriteToLogFile(level, stage, message string) {
	fileLoggerMu.RLock()
	defer fileLoggerMu.RUnlock()

	if fileLogger == nil || !fileLoggingEnabled {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	logLine := fmt.Sprintf("[%s] [%s] %s: %s\n", timestamp, level, stage, message)
	fileLogger.Write([]byte(logLine))
}

// CloseFileLogger closes the file logger (call on shutdown).
func CloseFileLogger() {
	fileLoggerMu.Lock()
	defer fileLoggerMu.Unlock()

	if fileLogger != nil {
		writeToLogFileUnsafe("INFO", "Wolffia", "Shutting down")
		fileLogger.Close()
		fileLogger = nil
		fileLoggingEnabled = false
	}
}

// writeToLogFileUnsafe writes without locking (caller must hold lock).
func writeToLogFileUnsafe(level, stage, message string) {
	if fileLogger == nil {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	logLine := fmt.Sprintf("[%s] [%s] %s: %s\n", timestamp, level, stage, message)
	fileLogger.Write([]byte(logLine))
}

// GetLogFilePath returns the current log file path.
func GetLogFilePath() string {
	fileLoggerMu.RLock()
	defer fileLoggerMu.RUnlock()

	if fileLogger != nil {
		return fileLogger.Filename
	}
	return ""
}

// GetFileLogWriter returns an io.Writer for zerolog integration.
func GetFileLogWriter() io.Writer {
	fileLoggerMu.RLock()
	defer fileLoggerMu.RUnlock()

	if fileLogger == nil || !fileLoggingEnabled {
		return io.Discard
	}
	return fileLogger
}
