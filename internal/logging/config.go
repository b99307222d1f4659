// Package logging configures the module's structured logger. It wraps
// github.com/rs/zerolog the way the teacher project's observability
// package does — a single console-writer-backed zerolog.Logger built
// once and installed as the global logger — but builds the zerolog
// logger directly here rather than through a separate façade module,
// since a bespoke logging indirection only earns its keep when it wraps
// more than one backend, and this module only ever wraps zerolog.
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "WIRECALL_LOG_LEVEL"
	EnvLogTimestamp = "WIRECALL_LOG_TIMESTAMP"
	EnvLogNoColor   = "WIRECALL_LOG_NOCOLOR"
)

// Profile selects a default logging posture; Configure applies
// environment overrides on top of it.
type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

var (
	configureOnce sync.Once
	logger        zerolog.Logger
)

// ConfigureRuntime configures the global logger for interactive/service
// use: info level, timestamps on.
func ConfigureRuntime() { Configure(ProfileRuntime) }

// ConfigureTests configures the global logger for test runs: debug
// level, no timestamps (keeps `go test -v` output diffable).
func ConfigureTests() { Configure(ProfileTest) }

// Configure installs the global logger exactly once per process; later
// calls are no-ops, matching the teacher's sync.Once-guarded pattern.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		level, timestamp, noColor := defaults(profile)
		applyEnvOverrides(&level, &timestamp, &noColor)

		writer := zerolog.ConsoleWriter{Out: os.Stdout, NoColor: noColor}
		if timestamp {
			writer.TimeFormat = time.RFC3339
		} else {
			writer.PartsExclude = []string{zerolog.TimestampFieldName}
		}

		builder := zerolog.New(writer).Level(level).With()
		if timestamp {
			builder = builder.Timestamp()
		}
		logger = builder.Str("component", "wirecall").Logger()
		log.Logger = logger
	})
}

// Logger returns the process-wide logger, configuring it with
// ProfileRuntime defaults if nothing has configured it yet.
func Logger() zerolog.Logger {
	ConfigureRuntime()
	return logger
}

func defaults(profile Profile) (level zerolog.Level, timestamp, noColor bool) {
	if profile == ProfileTest {
		return zerolog.DebugLevel, false, false
	}
	return zerolog.InfoLevel, true, false
}

func applyEnvOverrides(level *zerolog.Level, timestamp, noColor *bool) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		*level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		*timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		*noColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
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
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
