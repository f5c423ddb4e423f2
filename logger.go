package msdfgen

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every log record; it is the default so that
// generation has zero logging overhead until a caller opts in with
// SetLogger.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler       { return h }
func (h nopHandler) WithGroup(string) slog.Handler            { return h }

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(slog.New(nopHandler{}))
}

// SetLogger installs the package-level logger returned by Logger. No
// function in this package writes to it. Passing nil restores the no-op
// default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	pkgLogger.Store(l)
}

// Logger returns the currently installed logger.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
