package logging

// WailsLogger adapts Logger to the toolkit's logger interface
// (github.com/wailsapp/wails/v2/pkg/logger.Logger) so webview and
// asset-server messages land in the same stream as application logs.
type WailsLogger struct {
	l *Logger
}

// NewWailsLogger wraps an existing Logger for use as the toolkit logger.
func NewWailsLogger(l *Logger) *WailsLogger {
	return &WailsLogger{l: l}
}

// Print logs a message at no particular level.
func (w *WailsLogger) Print(message string) {
	w.l.zlog.Log().Msg(message)
}

// Trace logs at trace level.
func (w *WailsLogger) Trace(message string) {
	w.l.zlog.Trace().Msg(message)
}

// Debug logs at debug level.
func (w *WailsLogger) Debug(message string) {
	w.l.zlog.Debug().Msg(message)
}

// Info logs at info level.
func (w *WailsLogger) Info(message string) {
	w.l.zlog.Info().Msg(message)
}

// Warning logs at warn level.
func (w *WailsLogger) Warning(message string) {
	w.l.zlog.Warn().Msg(message)
}

// Error logs at error level.
func (w *WailsLogger) Error(message string) {
	w.l.zlog.Error().Msg(message)
}

// Fatal logs at fatal level and exits.
func (w *WailsLogger) Fatal(message string) {
	w.l.zlog.Fatal().Msg(message)
}
