// Package logging configures the process-wide zerolog logger used for
// diagnostics. Command results are printed to stdout, not logged.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Console bool      // human-readable output instead of JSON lines
}

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stderr).Level(zerolog.WarnLevel)
)

// Configure replaces the global logger.
// Unparseable levels fall back to warn so diagnostics stay quiet by default.
func Configure(cfg Config) {
	level := zerolog.WarnLevel
	name := cfg.Level
	if name == "" {
		name = os.Getenv("TWCONFIG_LOG_LEVEL")
	}
	if name != "" {
		if parsed, err := zerolog.ParseLevel(name); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if cfg.Console {
		writer = zerolog.ConsoleWriter{Out: writer, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	}

	logger := zerolog.New(writer).Level(level).With().
		Str("service", "twconfig").
		Logger()

	mu.Lock()
	base = logger
	mu.Unlock()
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
