package execlogger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"
)

// Settings is the file representation of a logger configuration. All fields
// are optional; zero values fall back to the defaults used by DefaultConfig.
type Settings struct {
	Directory        string `toml:"directory" yaml:"directory" json:"directory"`
	Extension        string `toml:"extension" yaml:"extension" json:"extension"`
	DaysStored       int    `toml:"days_stored" yaml:"days_stored" json:"days_stored"`
	ExecutionsStored int    `toml:"executions_stored" yaml:"executions_stored" json:"executions_stored"`
	FilterLevel      string `toml:"filter_level" yaml:"filter_level" json:"filter_level"`
	MessageFormat    string `toml:"message_format" yaml:"message_format" json:"message_format"`
	TimestampFormat  string `toml:"timestamp_format" yaml:"timestamp_format" json:"timestamp_format"`
}

// LoadSettings reads a settings file, detecting the format from the file
// extension: .toml, .yaml/.yml, or .json (parsed leniently as JSON5).
func LoadSettings(path string) (*Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := &Settings{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(content, settings); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, settings); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json", ".json5":
		if err := json5.Unmarshal(content, settings); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	return settings, nil
}

// Config converts the settings into a Config, applying defaults for unset
// fields and the validated format setters for the templates. Identity is
// resolved from the running process.
func (s *Settings) Config() (*Config, error) {
	return s.configWithIdentity(systemIdentity{})
}

func (s *Settings) configWithIdentity(src IdentitySource) (*Config, error) {
	var filter *LogLevel
	if s.FilterLevel != "" {
		level, err := ParseLevel(s.FilterLevel)
		if err != nil {
			return nil, err
		}
		filter = &level
	}

	cfg := NewConfigWithIdentity(
		getConfigValue("./logs", s.Directory),
		getConfigValue("txt", s.Extension),
		s.DaysStored,
		s.ExecutionsStored,
		filter,
		src,
	)

	if s.MessageFormat != "" {
		if err := cfg.SetMessageFormat(s.MessageFormat); err != nil {
			return nil, err
		}
	}
	if s.TimestampFormat != "" {
		if err := cfg.SetTimestampFormat(s.TimestampFormat); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
