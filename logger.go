package execlogger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger binds one configuration to one run folder and its log file. It is
// created once per initialization and is immutable for its lifetime;
// re-initialization produces an entirely new Logger. A Logger held across a
// re-initialization stays valid and keeps appending to its own run folder.
type Logger struct {
	config      Config
	logFilePath string

	stdout io.Writer
	diag   io.Writer
}

// NewLogger creates a logger for a new run. It first prunes old run folders
// per the retention policies, then creates the timestamp-named run folder
// under the log root and computes the log file path (the file itself is
// created on first write). It finishes by emitting an INFO startup message
// through its own write path. Folder creation and retention enumeration
// errors abort construction; retention deletion failures do not.
func NewLogger(config *Config) (*Logger, error) {
	return newLogger(config, os.Stdout, os.Stderr)
}

func newLogger(config *Config, stdout, diag io.Writer) (*Logger, error) {
	l := &Logger{
		config: *config, // snapshot, later setter calls do not affect this run
		stdout: stdout,
		diag:   diag,
	}

	if err := pruneRunFolders(&l.config, l.diag); err != nil {
		return nil, err
	}

	runDir, err := createRunFolder(l.config.LogDir(), time.Now())
	if err != nil {
		return nil, err
	}
	l.logFilePath = runLogFilePath(runDir, l.config.FileExtension())

	l.Info("Logger initialized")
	return l, nil
}

// LogFilePath returns the path of this run's log file.
func (l *Logger) LogFilePath() string {
	return l.logFilePath
}

// Log writes one message at the given level to standard output and to the
// run's log file. A message below the configured filter level is a silent
// no-op, not even formatted. The file is opened in append mode per call and
// created if absent; open or write failures are reported to the diagnostics
// sink and never surface to the caller, console output has already
// succeeded independently.
func (l *Logger) Log(message string, level LogLevel) {
	if filter, ok := l.config.FilterLevel(); ok && level.Severity() < filter.Severity() {
		return
	}

	formatted := l.formatMessage(message, level)

	io.WriteString(l.stdout, formatted)

	file, err := os.OpenFile(l.logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(l.diag, "Unable to open log file: %v\n", err)
		return
	}
	defer file.Close()

	if _, err := io.WriteString(file, formatted); err != nil {
		fmt.Fprintf(l.diag, "Unable to write log message to log file: %v\n", err)
	}
}

// Info logs a message at INFO level.
func (l *Logger) Info(message string) {
	l.Log(message, LevelInfo)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(message string) {
	l.Log(message, LevelError)
}

// Warn logs a message at WARN level.
func (l *Logger) Warn(message string) {
	l.Log(message, LevelWarn)
}

// Debug logs a message at DEBUG level.
func (l *Logger) Debug(message string) {
	l.Log(message, LevelDebug)
}

// Trace logs a message at TRACE level.
func (l *Logger) Trace(message string) {
	l.Log(message, LevelTrace)
}

// Custom logs a message at a caller-supplied level.
func (l *Logger) Custom(message string, level LogLevel) {
	l.Log(message, level)
}
