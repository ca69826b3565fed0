// Package logger configures the global zerolog logger used for user-facing
// output. The CLI talks to a console writer on stderr; per-row progress is
// logged at debug level so normal runs stay quiet while -v shows the sweep.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	// global stays a no-op until Init runs, so library-style callers and
	// tests can use the package without configuring output.
	global = zerolog.Nop()
	once   sync.Once
)

// Init configures the global logger. Level is a zerolog level name such as
// "info" or "debug"; unknown names fall back to info.
func Init(level string) {
	once.Do(func() {
		global = newLogger(os.Stderr, level)
	})
}

func newLogger(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	console := zerolog.ConsoleWriter{Out: out, PartsExclude: []string{zerolog.TimestampFieldName}}
	return zerolog.New(console).Level(lvl)
}

// L returns the global logger for callers that need structured fields.
func L() *zerolog.Logger {
	return &global
}

// Debug logs a debug level message.
func Debug(msg string, args ...interface{}) {
	global.Debug().Msgf(msg, args...)
}

// Info logs an info level message.
func Info(msg string, args ...interface{}) {
	global.Info().Msgf(msg, args...)
}

// Warn logs a warning level message.
func Warn(msg string, args ...interface{}) {
	global.Warn().Msgf(msg, args...)
}

// Error logs an error level message. When the first argument is an error it
// is attached as a structured field instead of formatted into the message.
func Error(msg string, args ...interface{}) {
	if len(args) > 0 {
		if err, ok := args[0].(error); ok && len(args) == 1 {
			global.Error().Err(err).Msg(msg)
			return
		}
	}
	global.Error().Msgf(msg, args...)
}
