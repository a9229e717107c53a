package core

// LogLevel represents logging severity levels
type LogLevel int

const (
	// LogLevelDebug for detailed debug information
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for general operational information
	LogLevelInfo
	// LogLevelWarn for warnings
	LogLevelWarn
	// LogLevelError for errors
	LogLevelError
)

// Logger defines the logging operations the pipeline depends on.
// Field maps keep call sites free of any concrete logging library.
type Logger interface {
	// SetLevel sets the minimum log level to output
	SetLevel(level LogLevel)
	// Debug logs detailed per-stage information
	Debug(message string, fields map[string]any)
	// Info logs run progress
	Info(message string, fields map[string]any)
	// Warn logs recoverable anomalies
	Warn(message string, fields map[string]any)
	// Error logs failures
	Error(message string, fields map[string]any)
	// Flush ensures all buffered logs are written before the process exits
	Flush() error
}
