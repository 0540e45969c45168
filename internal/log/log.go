// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package log // import "github.com/cadets/dparse/internal/log"

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel

	// time.RFC3339Nano removes trailing zeros from the seconds field.
	// The following format doesn't (fixed-width output).
	timeStampFormat = "2006-01-02T15:04:05.000000000Z07:00"
)

// logger is the process-wide logger. It is shared, never copied.
var logger = StandardLogger()

// StandardLogger returns the shared logger with the dparse defaults applied:
// key/value text output on stderr, always-quoted empty fields and
// nanosecond timestamps.
func StandardLogger() Logger {
	l := logrus.StandardLogger()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:          true,
		FullTimestamp:          true,
		TimestampFormat:        timeStampFormat,
		DisableSorting:         true,
		DisableLevelTruncation: true,
		QuoteEmptyFields:       true,
	})
	l.SetLevel(InfoLevel)
	l.SetReportCaller(false)
	return l
}

// Logger is the structured logging interface of the underlying library.
type Logger interface {
	logrus.FieldLogger
}

// Labels are key/value pairs attached to a message.
type Labels map[string]any

// With returns a logger that adds labels to every message. Label values
// should come from a small set, e.g. file names of a batch, not specifier
// text.
func With(labels Labels) Logger {
	return logger.WithFields(logrus.Fields(labels))
}

// Fatalf mirrors the library function, using the global logger.
func Fatalf(format string, args ...any) {
	logger.Fatalf(format, args...)
}

// Errorf mirrors the library function, using the global logger.
func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

// Warnf mirrors the library function, using the global logger.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Infof mirrors the library function, using the global logger.
func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

// Debugf mirrors the library function, using the global logger.
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// SetLevel of the global logger.
func SetLevel(level logrus.Level) {
	logger.(*logrus.Logger).SetLevel(level)
}

// SetOutput redirects the global logger.
func SetOutput(w io.Writer) {
	logger.(*logrus.Logger).SetOutput(w)
}
