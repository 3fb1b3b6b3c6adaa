// SPDX-License-Identifier: MIT

// Package lvlog is the logging seam of lvgeom. Library packages that do
// I/O accept a Logger and default to Nop; applications plug in log/slog
// through NewSlog.
package lvlog

import (
	"context"
	"log/slog"
)

// Logger is a leveled, key/value logger.
type Logger interface {
	Info(msg string, keyValues ...any)
	Error(msg string, keyValues ...any)
	Debug(msg string, keyValues ...any)
	Warn(msg string, keyValues ...any)
}

type nop struct{}

func (nop) Info(string, ...any)  {}
func (nop) Error(string, ...any) {}
func (nop) Debug(string, ...any) {}
func (nop) Warn(string, ...any)  {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }

// SlogAdapter forwards to a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlog wraps logger; a nil logger falls back to slog.Default().
func NewSlog(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogAdapter{logger: logger}
}

func (a *SlogAdapter) Info(msg string, keyValues ...any) {
	a.logger.Info(msg, keyValues...)
}

func (a *SlogAdapter) Error(msg string, keyValues ...any) {
	a.logger.Error(msg, keyValues...)
}

func (a *SlogAdapter) Debug(msg string, keyValues ...any) {
	a.logger.Debug(msg, keyValues...)
}

func (a *SlogAdapter) Warn(msg string, keyValues ...any) {
	a.logger.Warn(msg, keyValues...)
}

// Enabled reports whether the underlying handler emits records at level.
func (a *SlogAdapter) Enabled(level slog.Level) bool {
	return a.logger.Enabled(context.Background(), level)
}
