package xd2d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so callers skip
// building attributes.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

var (
	silent  = slog.New(discardHandler{})
	current atomic.Pointer[slog.Logger]
)

func init() { current.Store(silent) }

// SetLogger sets the logger shared by xd2d, its backends, windows and the
// app package. xd2d is silent until SetLogger is called; nil silences it
// again. It may be called while frames are being rendered.
//
// Messages are prefixed with the emitting package:
//   - [slog.LevelDebug]: painter resized ("xd2d: painter size changed"),
//     per-frame encoding and buffer growth in backend/hal, target resizes
//     in backend/soft, terminal resizes in window/term
//   - [slog.LevelInfo]: NewDevice, LoadSettings, window.Open, hal device
//     initialization, headless frame saves and every app.Run exit
//   - [slog.LevelWarn]: a failed WaitIdle while destroying the hal device
//
// The demo command installs a text handler:
//
//	xd2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger { return current.Load() }
