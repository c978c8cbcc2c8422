/*
File    : minipar/internal/logging/logging.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package logging wraps go.uber.org/zap for Minipar's verbose-mode
// interpreter trace (par task start/finish, channel accept/close).
// This is deliberately separate from the CLI's fatih/color-based
// diagnostic output: the CLI talks to the user, this talks to whoever
// passed -v for implementation-level tracing.
package logging

import "go.uber.org/zap"

// Logger is a thin handle around a *zap.SugaredLogger so callers don't
// need to import zap directly.
type Logger struct {
	z *zap.SugaredLogger
}

// New builds a Logger at DebugLevel when verbose is true, or one that
// discards everything below PanicLevel otherwise.
func New(verbose bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.PanicLevel)
	}
	z, err := cfg.Build()
	if err != nil {
		// Falls back to a no-op core; logging must never abort the
		// interpreter it's observing.
		return Noop()
	}
	return &Logger{z: z.Sugar()}
}

// Noop returns a Logger that discards everything it's given.
func Noop() *Logger {
	return &Logger{z: zap.NewNop().Sugar()}
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.z.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.z.Infof(format, args...) }
func (l *Logger) Sync()                                      { _ = l.z.Sync() }
