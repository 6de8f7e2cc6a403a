// Package logging builds the diagnostic logger for one invocation.
//
// Diagnostics always go to stderr so stdout stays reserved for helper
// output; `volfs ls -V data | sort` must see listings only.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/volfs/volfs/internal/constants"
	"github.com/volfs/volfs/internal/operation"
	"github.com/volfs/volfs/internal/terminal"
)

// New returns the logger for the given verbosity, writing to stderr with
// color when stderr is a terminal.
func New(verbosity operation.Verbosity) zerolog.Logger {
	return NewWithWriter(verbosity, os.Stderr, !terminal.IsTerminal(os.Stderr))
}

// NewWithWriter is New with the output stream and color choice pinned.
func NewWithWriter(verbosity operation.Verbosity, w io.Writer, noColor bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(out).Level(level(verbosity)).With().Timestamp().Logger()
}

// level maps verbosity to a zerolog level. An explicit -v or -q always
// wins; VOLFS_LOG_LEVEL only fills in when neither flag was given.
func level(v operation.Verbosity) zerolog.Level {
	switch v {
	case operation.Quiet:
		return zerolog.ErrorLevel
	case operation.Verbose:
		return zerolog.DebugLevel
	}
	if env, ok := parseLevel(os.Getenv(constants.EnvLogLevel)); ok {
		return env
	}
	return zerolog.InfoLevel
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off":
		return zerolog.Disabled, true
	default:
		return zerolog.NoLevel, false
	}
}
