// Package logger holds the process-wide zerolog logger.
//
// Initialise once at startup with Init, then retrieve anywhere with Get or
// Component. Every line carries the service name given to Init.
//
// Levels, lowest first: trace, debug, info, warn, error.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Defaults to "info" when empty or unrecognised.
	Level string
	// Pretty enables human-friendly console output (coloured, text-based).
	// Use false in production to emit pure JSON.
	Pretty bool
	// Output is the writer logs are sent to. Defaults to os.Stdout.
	Output io.Writer
	// Service is stamped on every line as "service". Defaults to DefaultService.
	Service string
}

// DefaultService is the service name used when Options.Service is empty.
const DefaultService = "user-manager"

var (
	instance    zerolog.Logger
	once        sync.Once
	initialized bool
)

// Init initialises the singleton logger. Safe to call multiple times – only
// the first call has any effect (singleton guarantee via sync.Once).
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		service := opts.Service
		if service == "" {
			service = DefaultService
		}

		lvl := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(lvl)

		instance = zerolog.New(out).
			Level(lvl).
			With().
			Timestamp().
			Str("service", service).
			Caller().
			Logger()

		initialized = true
	})
	return instance
}

// Get returns the singleton logger. Panics if Init has not been called yet.
func Get() zerolog.Logger {
	if !initialized {
		panic("logger: Get() called before Init()")
	}
	return instance
}

// Component returns the singleton logger tagged with a "component" field,
// e.g. Component("auth") for everything the login flow writes.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset tears down the singleton so that the next Init call rebuilds it.
// Intended for use in tests only.
func Reset() {
	once = sync.Once{}
	instance = zerolog.Logger{}
	initialized = false
}

// parseLevel maps a LOG_LEVEL value to a zerolog level. "warning" is
// accepted as an alias for "warn"; empty, unknown and disabling values
// ("", "bogus", "disabled", "panic") fall back to info.
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl < zerolog.TraceLevel || lvl > zerolog.ErrorLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
