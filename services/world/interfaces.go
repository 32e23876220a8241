package world

import (
	"github.com/charmbracelet/log"

	"github.com/VoidMesh/tileworld/internal/logging"
)

// LoggerInterface abstracts logging operations for dependency injection.
type LoggerInterface interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	With(keysAndValues ...interface{}) LoggerInterface
}

// DefaultLoggerWrapper wraps the internal logging package.
type DefaultLoggerWrapper struct {
	logger *log.Logger
}

// NewDefaultLoggerWrapper creates a new default logger wrapper.
func NewDefaultLoggerWrapper() LoggerInterface {
	return &DefaultLoggerWrapper{}
}

func (l *DefaultLoggerWrapper) get() *log.Logger {
	if l.logger != nil {
		return l.logger
	}
	return logging.GetLogger()
}

func (l *DefaultLoggerWrapper) Debug(msg string, keysAndValues ...interface{}) {
	l.get().Debug(msg, keysAndValues...)
}

func (l *DefaultLoggerWrapper) Info(msg string, keysAndValues ...interface{}) {
	l.get().Info(msg, keysAndValues...)
}

func (l *DefaultLoggerWrapper) Warn(msg string, keysAndValues ...interface{}) {
	l.get().Warn(msg, keysAndValues...)
}

func (l *DefaultLoggerWrapper) With(keysAndValues ...interface{}) LoggerInterface {
	return &DefaultLoggerWrapper{logger: l.get().With(keysAndValues...)}
}
