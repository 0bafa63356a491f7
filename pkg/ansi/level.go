package ansi

import (
	"strings"

	"github.com/rs/zerolog"
)

// Level is a numeric logging severity on the conventional 10-step scale.
type Level int

const (
	LevelDebug    Level = 10
	LevelInfo     Level = 20
	LevelWarning  Level = 30
	LevelError    Level = 40
	LevelCritical Level = 50
)

// LevelLabelWidth is the field width log level labels are padded to.
const LevelLabelWidth = 8

var levelNames = map[string]Level{
	"DEBUG":    LevelDebug,
	"TRACE":    LevelDebug,
	"INFO":     LevelInfo,
	"WARN":     LevelWarning,
	"WARNING":  LevelWarning,
	"ERROR":    LevelError,
	"CRITICAL": LevelCritical,
	"FATAL":    LevelCritical,
	"PANIC":    LevelCritical,
}

// LevelByName returns the severity conventionally used for a level name,
// matched case-insensitively.
func LevelByName(name string) (Level, bool) {
	l, ok := levelNames[strings.ToUpper(strings.TrimSpace(name))]
	return l, ok
}

// levelStyle returns the style table key for n, or "" below the info tier.
func levelStyle(n Level) string {
	switch {
	case n >= LevelError:
		return "logging.level.error"
	case n >= LevelWarning:
		return "logging.level.warning"
	case n >= LevelInfo:
		return "logging.level.info"
	default:
		return ""
	}
}

// LevelFromZerolog maps a zerolog level onto the numeric scale. Levels
// without a counterpart, such as NoLevel and Disabled, map to 0.
func LevelFromZerolog(l zerolog.Level) Level {
	switch l {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return LevelDebug
	case zerolog.InfoLevel:
		return LevelInfo
	case zerolog.WarnLevel:
		return LevelWarning
	case zerolog.ErrorLevel:
		return LevelError
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return LevelCritical
	default:
		return 0
	}
}
