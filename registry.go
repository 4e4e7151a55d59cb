package execlogger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// Registry is a slot holding the currently active Logger. Reads are
// lock-free; Initialize atomically replaces the slot without blocking
// readers, and a reader that obtained a Logger before a replacement keeps a
// consistent, fully usable instance. The package-level functions operate on
// a process-wide Registry; independent registries can be created for tests
// or embedding.
type Registry struct {
	current atomic.Pointer[Logger]
	diag    atomic.Value // stores diagWriter
}

// diagWriter wraps the diagnostics writer so diag always holds the same
// concrete type, as atomic.Value requires.
type diagWriter struct{ w io.Writer }

// NewRegistry creates an empty registry reporting diagnostics to stderr.
func NewRegistry() *Registry {
	r := &Registry{}
	r.diag.Store(diagWriter{os.Stderr})
	return r
}

// SetDiagnostics replaces the writer receiving best-effort error reports:
// retention deletion failures, file write failures and uninitialized use.
func (r *Registry) SetDiagnostics(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	r.diag.Store(diagWriter{w})
}

// diagnostics returns the current diagnostics sink.
func (r *Registry) diagnostics() io.Writer {
	if d, ok := r.diag.Load().(diagWriter); ok && d.w != nil {
		return d.w
	}
	return os.Stderr
}

// Initialize builds a new Logger from config and installs it as the current
// logger. Re-initialization is always allowed; long-running processes call
// it to start a fresh run folder. On failure no logger is installed or
// replaced, and the previous logger, if any, stays active.
func (r *Registry) Initialize(config *Config) error {
	logger, err := newLogger(config, os.Stdout, r.diagnostics())
	if err != nil {
		return err
	}
	r.current.Store(logger)
	return nil
}

// Current returns a snapshot of the active logger, or nil if Initialize has
// never succeeded.
func (r *Registry) Current() *Logger {
	return r.current.Load()
}

// Log forwards one message to the active logger. Before a successful
// Initialize it reports "Logger not initialized" to the diagnostics sink
// and performs no further action.
func (r *Registry) Log(message string, level LogLevel) {
	logger := r.Current()
	if logger == nil {
		fmt.Fprintln(r.diagnostics(), "Logger not initialized")
		return
	}
	logger.Log(message, level)
}

// LogFilePath returns the active logger's log file path, and false before a
// successful Initialize (reported to the diagnostics sink).
func (r *Registry) LogFilePath() (string, bool) {
	logger := r.Current()
	if logger == nil {
		fmt.Fprintln(r.diagnostics(), "Logger not initialized")
		return "", false
	}
	return logger.LogFilePath(), true
}
