// SPDX-License-Identifier: MIT

package surface

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards every record. Enabled returns
// false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// NopLogger returns a logger that discards all output. Other packages of
// this module use it as their default.
func NopLogger() *slog.Logger { return newNopLogger() }

// loggerPtr is set in its initializer so package-level synthesizers built
// during variable initialization already see a usable logger.
var loggerPtr = func() *atomic.Pointer[slog.Logger] {
	p := new(atomic.Pointer[slog.Logger])
	p.Store(newNopLogger())
	return p
}()

// SetLogger sets the package default logger used by synthesizers built
// without WithLogger. Pass nil to restore silent behavior.
// Safe for concurrent use.
//
// Levels used:
//   - Debug: per-stage timings, max residual.
//   - Warn:  rejected results (numerical instability).
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package default logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
