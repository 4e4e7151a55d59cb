package execlogger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lestrrat-go/strftime"
)

// Built-in formats used when the corresponding template is not configured.
const (
	DefaultMessageFormat   = "{TIMESTAMP} | {EXE_NAME} | {SYSTEM_NAME} | {USER_NAME} | {LEVEL} | {MESSAGE}"
	DefaultTimestampFormat = "%Y-%m-%d %H:%M:%S%z"
)

// ErrInvalidFormat is reported by the format setters when a template is
// rejected. The previous template is always retained on rejection.
var ErrInvalidFormat = errors.New("invalid format")

// defaultTimestamp is the compiled form of DefaultTimestampFormat. The
// pattern is known valid, so the compile error is discarded.
var defaultTimestamp, _ = strftime.New(DefaultTimestampFormat)

// Config bundles the retention limits, format templates and identity fields
// of a logger. Identity is resolved once at construction. Construction never
// touches the filesystem; the log root is only used when a Logger is created.
type Config struct {
	logDir           string
	fileExtension    string
	daysStored       int // 0 keeps folders forever
	executionsStored int // 0 keeps folders forever
	filterLevel      *LogLevel

	exeName    string
	systemName string
	userName   string

	messageFormat   string // empty means DefaultMessageFormat
	timestampFormat string // empty means DefaultTimestampFormat
	timestampPat    *strftime.Strftime
}

// NewConfig creates a configuration with identity resolved from the running
// process and operating system. daysStored and executionsStored limit the
// retention of old run folders; zero (or negative) disables the respective
// policy. A nil filterLevel shows all messages.
func NewConfig(logDir, fileExtension string, daysStored, executionsStored int, filterLevel *LogLevel) *Config {
	return NewConfigWithIdentity(logDir, fileExtension, daysStored, executionsStored, filterLevel, systemIdentity{})
}

// NewConfigWithIdentity is NewConfig with an explicit identity source.
func NewConfigWithIdentity(logDir, fileExtension string, daysStored, executionsStored int, filterLevel *LogLevel, src IdentitySource) *Config {
	if daysStored < 0 {
		daysStored = 0
	}
	if executionsStored < 0 {
		executionsStored = 0
	}

	exeName, systemName, userName := resolveIdentity(src)

	cfg := &Config{
		logDir:           logDir,
		fileExtension:    fileExtension,
		daysStored:       daysStored,
		executionsStored: executionsStored,
		exeName:          exeName,
		systemName:       systemName,
		userName:         userName,
	}
	if filterLevel != nil {
		level := *filterLevel
		cfg.filterLevel = &level
	}
	return cfg
}

// DefaultConfig returns a configuration logging to ./logs with a txt
// extension, no retention limits and no level filter.
func DefaultConfig() *Config {
	return NewConfig("./logs", "txt", 0, 0, nil)
}

// SetFilterLevel replaces the minimum severity required for a message to be
// emitted. Any level is acceptable, no validation is needed.
func (c *Config) SetFilterLevel(level LogLevel) {
	c.filterLevel = &level
}

// SetMessageFormat replaces the message template. The template must contain
// both the {MESSAGE} and {LEVEL} placeholders; otherwise the previous
// template is retained and an ErrInvalidFormat error is returned.
func (c *Config) SetMessageFormat(format string) error {
	if !strings.Contains(format, placeholderMessage) {
		return fmt.Errorf("%w: message format must contain %s", ErrInvalidFormat, placeholderMessage)
	}
	if !strings.Contains(format, placeholderLevel) {
		return fmt.Errorf("%w: message format must contain %s", ErrInvalidFormat, placeholderLevel)
	}
	c.messageFormat = format
	return nil
}

// SetTimestampFormat replaces the strftime pattern used for the {TIMESTAMP}
// placeholder. A pattern that fails to compile is rejected with
// ErrInvalidFormat and the previous pattern is retained.
func (c *Config) SetTimestampFormat(format string) error {
	pat, err := strftime.New(format)
	if err != nil {
		return fmt.Errorf("%w: invalid timestamp format: %v", ErrInvalidFormat, err)
	}
	c.timestampFormat = format
	c.timestampPat = pat
	return nil
}

// LogDir returns the root directory holding the run folders.
func (c *Config) LogDir() string {
	return c.logDir
}

// FileExtension returns the extension of the per-run log file.
func (c *Config) FileExtension() string {
	return c.fileExtension
}

// DaysStored returns the age limit in days for old run folders, 0 when the
// age policy is disabled.
func (c *Config) DaysStored() int {
	return c.daysStored
}

// ExecutionsStored returns the maximum number of run folders to keep, 0 when
// the count policy is disabled.
func (c *Config) ExecutionsStored() int {
	return c.executionsStored
}

// FilterLevel returns the configured filter level, and false when no filter
// is set.
func (c *Config) FilterLevel() (LogLevel, bool) {
	if c.filterLevel == nil {
		return LogLevel{}, false
	}
	return *c.filterLevel, true
}

// ExeName returns the executable name resolved at construction.
func (c *Config) ExeName() string {
	return c.exeName
}

// SystemName returns the host name resolved at construction.
func (c *Config) SystemName() string {
	return c.systemName
}

// UserName returns the user name resolved at construction, prefixed with the
// domain when USERDOMAIN was set.
func (c *Config) UserName() string {
	return c.userName
}

// MessageFormat returns the configured message template, or the built-in
// default when unset.
func (c *Config) MessageFormat() string {
	if c.messageFormat != "" {
		return c.messageFormat
	}
	return DefaultMessageFormat
}

// TimestampFormat returns the configured timestamp pattern, or the built-in
// default when unset.
func (c *Config) TimestampFormat() string {
	if c.timestampFormat != "" {
		return c.timestampFormat
	}
	return DefaultTimestampFormat
}

// timestampPattern returns the compiled strftime pattern for {TIMESTAMP}.
func (c *Config) timestampPattern() *strftime.Strftime {
	if c.timestampPat != nil {
		return c.timestampPat
	}
	return defaultTimestamp
}

// getConfigValue returns defaultVal if cfgVal equals the zero value for type
// T, otherwise returns cfgVal. It is used for merging configuration values
// with their defaults.
func getConfigValue[T comparable](defaultVal, cfgVal T) T {
	var zero T
	if cfgVal == zero {
		return defaultVal
	}
	return cfgVal
}
