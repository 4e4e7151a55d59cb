package execlogger

import (
	"fmt"
	"strings"
	"time"
)

// Placeholders recognized in the message template. Unrecognized tokens are
// left verbatim.
const (
	placeholderTimestamp  = "{TIMESTAMP}"
	placeholderExeName    = "{EXE_NAME}"
	placeholderSystemName = "{SYSTEM_NAME}"
	placeholderUserName   = "{USER_NAME}"
	placeholderLevel      = "{LEVEL}"
	placeholderMessage    = "{MESSAGE}"
)

// levelFieldWidth is the minimum width of the {LEVEL} substitution. Shorter
// names are left-justified and padded, longer names are never truncated.
const levelFieldWidth = 7

// formatMessage renders one log line from the configured message template.
// Placeholder values are substituted only when the placeholder occurs in the
// template; the timestamp in particular is rendered lazily because it is the
// costly substitution. The result always ends with exactly one newline.
func (l *Logger) formatMessage(message string, level LogLevel) string {
	msg := l.config.MessageFormat()

	if strings.Contains(msg, placeholderTimestamp) {
		now := l.config.timestampPattern().FormatString(time.Now())
		msg = strings.ReplaceAll(msg, placeholderTimestamp, now)
	}

	if strings.Contains(msg, placeholderExeName) {
		msg = strings.ReplaceAll(msg, placeholderExeName, l.config.ExeName())
	}

	if strings.Contains(msg, placeholderSystemName) {
		msg = strings.ReplaceAll(msg, placeholderSystemName, l.config.SystemName())
	}

	if strings.Contains(msg, placeholderUserName) {
		msg = strings.ReplaceAll(msg, placeholderUserName, l.config.UserName())
	}

	if strings.Contains(msg, placeholderLevel) {
		msg = strings.ReplaceAll(msg, placeholderLevel, fmt.Sprintf("%-*s", levelFieldWidth, level.String()))
	}

	if strings.Contains(msg, placeholderMessage) {
		msg = strings.ReplaceAll(msg, placeholderMessage, message)
	}

	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}

	return msg
}
