package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base zerolog.Logger
)

// Init configures the global JSON logger writing to stdout.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	Setup(os.Stdout, getenv("LOG_LEVEL", "info"), strings.EqualFold(getenv("LOG_PRETTY", "false"), "true"))
}

// Setup replaces the global logger. Tests use it to capture output.
func Setup(out io.Writer, level string, pretty bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	w := out
	if pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(w).With().Timestamp().Str("service", "etfpulse").Logger().Level(parseLevel(level))

	mu.Lock()
	base = l
	mu.Unlock()
}

// L returns the global logger. Call Init() once on startup.
func L() *zerolog.Logger {
	mu.RLock()
	initialized := base.GetLevel() != zerolog.NoLevel
	mu.RUnlock()
	if !initialized {
		Init()
	}

	mu.RLock()
	defer mu.RUnlock()
	l := base
	return &l
}

// Component returns a child logger tagged with a component field for filtering.
func Component(name string) *zerolog.Logger {
	l := L().With().Str("component", name).Logger()
	return &l
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
