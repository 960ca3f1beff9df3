// Package logger provides structured logging for adboard on top of
// charmbracelet/log. Logs are written to stderr so command output on stdout
// stays machine-readable.
package logger

import (
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Level names accepted by --log-level and config.yaml.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Logger is the structured logging surface used across adboard.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// charmLogger adapts *charmlog.Logger, whose methods take msg as any.
type charmLogger struct {
	l *charmlog.Logger
}

func (c *charmLogger) Debug(msg string, keyvals ...any) { c.l.Debug(msg, keyvals...) }
func (c *charmLogger) Info(msg string, keyvals ...any)  { c.l.Info(msg, keyvals...) }
func (c *charmLogger) Warn(msg string, keyvals ...any)  { c.l.Warn(msg, keyvals...) }
func (c *charmLogger) Error(msg string, keyvals ...any) { c.l.Error(msg, keyvals...) }

// Config selects level, format, and destination.
type Config struct {
	Level      string
	Output     io.Writer
	JSON       bool
	TimeFormat string
}

// DefaultConfig logs at info level, as text, to stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:      InfoLevel,
		Output:     os.Stderr,
		TimeFormat: "15:04:05",
	}
}

// ParseLevel maps a level name to a charm level. Unknown names fall back to info.
func ParseLevel(name string) charmlog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DebugLevel:
		return charmlog.DebugLevel
	case WarnLevel:
		return charmlog.WarnLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// New builds a Logger. A nil cfg uses DefaultConfig.
func New(cfg *Config) Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	l := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           ParseLevel(cfg.Level),
		Prefix:          "adboard",
	})
	if cfg.JSON {
		l.SetFormatter(charmlog.JSONFormatter)
	} else {
		l.SetFormatter(charmlog.TextFormatter)
	}
	return &charmLogger{l: l}
}

var defaultLogger = New(nil)

// Setup replaces the package default logger.
func Setup(level string, json bool) {
	cfg := DefaultConfig()
	cfg.Level = level
	cfg.JSON = json
	defaultLogger = New(cfg)
}

// Default returns the package default logger.
func Default() Logger {
	return defaultLogger
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return &charmLogger{l: charmlog.New(io.Discard)}
}
