package quick

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	execlogger "github.com/VBenevides/exec-logger"
)

// config parses configuration strings into Settings.
// Each argument should be in "key=value" format where key matches the
// Settings field tags (directory, extension, days_stored, executions_stored,
// filter_level, message_format, timestamp_format).
func config(args ...string) (*execlogger.Settings, error) {
	settings := &execlogger.Settings{}
	for _, arg := range args {
		key, value, err := parseKeyValue(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid config format: %s", arg)
		}

		if err := setValue(settings, key, value); err != nil {
			return nil, fmt.Errorf("config error: %s", err)
		}
	}
	return settings, nil
}

// parseKeyValue splits a configuration string into key and value parts.
// Input format must be "key=value". Leading and trailing spaces are removed
// from both parts.
func parseKeyValue(arg string) (string, string, error) {
	key, value, found := strings.Cut(strings.TrimSpace(arg), "=")
	if !found {
		return "", "", fmt.Errorf("invalid format")
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), nil
}

// setValue updates a Settings field using reflection. Field matching is
// case-insensitive against the toml tags. Values are converted to the field
// type. Returns error if the field is unknown or the value cannot be
// converted.
func setValue(settings *execlogger.Settings, key, value string) error {
	key = strings.ToLower(key)

	v := reflect.ValueOf(settings).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("toml"); tag != key {
			continue
		}

		f := v.Field(i)
		switch f.Kind() {
		case reflect.Int:
			val, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer value for %s: %s", key, value)
			}
			f.SetInt(int64(val))

		case reflect.String:
			f.SetString(value)

		default:
			return fmt.Errorf("unsupported config type for %s", key)
		}

		return nil
	}
	return fmt.Errorf("unknown config key: %s", key)
}
