package utils

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the service-wide leveled logger. Handlers derive
// request-scoped loggers from it with With.
type Logger struct {
	l *log.Logger
}

func NewLogger(level string) *Logger {
	return &Logger{
		l: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Level:           parseLogLevel(level),
		}),
	}
}

// NewDiscardLogger returns a logger that drops everything, for tests.
func NewDiscardLogger() *Logger {
	return &Logger{l: log.New(io.Discard)}
}

func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// With returns a logger carrying additional key-value context.
func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{l: l.l.With(keyvals...)}
}

func (l *Logger) Debug(msg string, keyvals ...any) {
	l.l.Debug(msg, keyvals...)
}

func (l *Logger) Info(msg string, keyvals ...any) {
	l.l.Info(msg, keyvals...)
}

func (l *Logger) Warn(msg string, keyvals ...any) {
	l.l.Warn(msg, keyvals...)
}

func (l *Logger) Error(msg string, keyvals ...any) {
	l.l.Error(msg, keyvals...)
}

func (l *Logger) Fatal(msg string, keyvals ...any) {
	l.l.Fatal(msg, keyvals...)
}
