package execlogger

import (
	"fmt"
	"strings"
)

// LogLevel is a totally ordered severity tag. Higher severity values represent
// more important messages. Ordering and filtering compare severity only, so
// two custom levels sharing a severity are equal even with different names.
type LogLevel struct {
	severity int
	name     string
}

// Built-in levels. The severity values match the original numeric ranking
// used by the run-folder log format.
var (
	LevelError = LogLevel{severity: 50, name: "ERROR"}
	LevelWarn  = LogLevel{severity: 40, name: "WARN"}
	LevelInfo  = LogLevel{severity: 30, name: "INFO"}
	LevelDebug = LogLevel{severity: 20, name: "DEBUG"}
	LevelTrace = LogLevel{severity: 10, name: "TRACE"}
)

// NewCustomLevel creates a level with a caller-supplied display name and
// severity. It is a pure constructor with no registration side effects.
func NewCustomLevel(name string, severity int) LogLevel {
	return LogLevel{severity: severity, name: name}
}

// Severity returns the numeric rank of the level.
func (l LogLevel) Severity() int {
	return l.severity
}

// String returns the display name: the fixed uppercase name for built-in
// levels, the user-supplied name for custom levels.
func (l LogLevel) String() string {
	return l.name
}

// Compare orders levels by severity. It returns a negative value when l is
// less severe than other, zero when equal, and a positive value otherwise.
func (l LogLevel) Compare(other LogLevel) int {
	switch {
	case l.severity < other.severity:
		return -1
	case l.severity > other.severity:
		return 1
	default:
		return 0
	}
}

// AllLevels returns the built-in levels ordered from least to most severe.
func AllLevels() []LogLevel {
	return []LogLevel{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// ParseLevel converts a built-in level name to its LogLevel. Matching is
// case-insensitive and ignores surrounding whitespace. On failure it returns
// LevelInfo along with an error.
func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid level: %s", level)
	}
}
