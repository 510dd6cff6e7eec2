// Package logging configures the zerolog logger shared by the shell.
//
// Logging is off unless a log file (or an explicit writer) is configured: the
// shell's stderr belongs to the prompt and to its children.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/chenasraf/penn-shredder/utils"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level  string    // optional log level ("debug", "info", etc.)
	File   string    // optional path; rotated with lumberjack
	Output io.Writer // optional writer, takes precedence over File
}

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger for cfg. The returned closer releases the log file.
func New(cfg Config) (zerolog.Logger, io.Closer) {
	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch {
	case cfg.Output != nil:
		w = cfg.Output
	case cfg.File != "":
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w, closer = lj, lj
	default:
		return zerolog.Nop(), closer
	}

	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(w).Level(parseLevel(cfg.Level)).With().
		Timestamp().
		Int("pid", os.Getpid()).
		Str("service", utils.APP_NAME).
		Logger()
	return l, closer
}

// Configure replaces the global logger.
func Configure(cfg Config) io.Closer {
	l, closer := New(cfg)
	mu.Lock()
	base = l
	mu.Unlock()
	return closer
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

func parseLevel(s string) zerolog.Level {
	if s == "" {
		s = os.Getenv(utils.LOG_LEVEL_ENV)
	}
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
