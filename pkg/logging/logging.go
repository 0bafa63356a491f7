package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/ansiout/pkg/ansi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logFileRelPath is the log file location relative to XDG_STATE_HOME.
const logFileRelPath = "ansiout/ansiout.log"

// SetupLogger configures the global logger based on verbosity level.
// Console output goes to stderr with level labels rendered by out; a log
// file under XDG_STATE_HOME receives the same events as JSON. A nil out
// uses ansi.Default().
func SetupLogger(verbosity int, out *ansi.Output) {
	zerolog.SetGlobalLevel(LevelForVerbosity(verbosity))

	if out == nil {
		out = ansi.Default()
	}

	writers := []io.Writer{NewConsoleWriter(os.Stderr, out)}

	logFile, err := getLogFilePath()
	var logFileHandle *os.File
	if err == nil {
		logFileHandle, err = openLogFile(logFile)
	}
	if err == nil {
		writers = append(writers, logFileHandle)
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().
		Int("verbosity", verbosity).
		Str("logFile", logFile).
		Bool("markup", out.MarkupEnabled()).
		Msg("Logger initialized")
}

// LevelForVerbosity maps the -v count to a zerolog level.
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// NewConsoleWriter returns a human readable zerolog writer whose level
// column is rendered by out.FormatLogLevel.
func NewConsoleWriter(w io.Writer, out *ansi.Output) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         w,
		TimeFormat:  time.Kitchen,
		NoColor:     !out.MarkupEnabled(),
		FormatLevel: levelFormatter(out),
	}
}

func levelFormatter(out *ansi.Output) zerolog.Formatter {
	return func(i interface{}) string {
		name, ok := i.(string)
		if !ok || name == "" {
			return out.FormatLogLevel("???", 0)
		}
		level, err := zerolog.ParseLevel(name)
		if err != nil {
			return out.FormatLogLevel(strings.ToUpper(name), 0)
		}
		return out.FormatLogLevel(strings.ToUpper(name), ansi.LevelFromZerolog(level))
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath returns the log file path, creating its parent directories.
func getLogFilePath() (string, error) {
	path, err := xdg.StateFile(logFileRelPath)
	if err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return path, nil
}

func openLogFile(logPath string) (*os.File, error) {
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
