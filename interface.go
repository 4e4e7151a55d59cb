package execlogger

// defaultRegistry backs the package-level logging functions.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the
// package-level functions, e.g. to redirect its diagnostics sink.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Initialize builds a logger from the configuration and installs it as the
// process-wide logger. Calling it again replaces the active logger with a
// fresh run folder; it is never rejected because a logger already exists.
func Initialize(config *Config) error {
	return defaultRegistry.Initialize(config)
}

// Info logs a message at INFO level through the process-wide logger.
func Info(message string) {
	defaultRegistry.Log(message, LevelInfo)
}

// Error logs a message at ERROR level through the process-wide logger.
func Error(message string) {
	defaultRegistry.Log(message, LevelError)
}

// Warn logs a message at WARN level through the process-wide logger.
func Warn(message string) {
	defaultRegistry.Log(message, LevelWarn)
}

// Debug logs a message at DEBUG level through the process-wide logger.
func Debug(message string) {
	defaultRegistry.Log(message, LevelDebug)
}

// Trace logs a message at TRACE level through the process-wide logger.
func Trace(message string) {
	defaultRegistry.Log(message, LevelTrace)
}

// Custom logs a message at a caller-supplied level through the process-wide
// logger.
func Custom(message string, level LogLevel) {
	defaultRegistry.Log(message, level)
}

// GetLogFilePath returns the current run's log file path, and false if the
// logger was never initialized.
func GetLogFilePath() (string, bool) {
	return defaultRegistry.LogFilePath()
}

// CreateCustomLevel creates a custom log level. It is a pure constructor
// with no registry interaction, provided here to mirror the logging facade.
func CreateCustomLevel(name string, severity int) LogLevel {
	return NewCustomLevel(name, severity)
}
