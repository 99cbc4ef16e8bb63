// Package logging provides a small logging abstraction that decouples the
// application from the underlying logging framework.
package logging

import "github.com/sirupsen/logrus"

// Logger is the structured logging interface used throughout the
// application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// GetLogger returns a Logger backed by the default logrus configuration.
func GetLogger() Logger {
	return NewLogrusAdapterFromLogger(logrus.StandardLogger())
}

// SetAllLogLevels sets the global logrus level, affecting every logger
// created from the standard configuration.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
}
