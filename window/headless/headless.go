// Package headless provides a window without a display. It runs a bounded
// number of frames and can save the last one as a PNG file, which makes it
// the window of choice for tests, CI and batch rendering.
//
// The window is registered as "headless" on import.
package headless

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/xd2d"
	"github.com/gogpu/xd2d/window"
	"golang.org/x/image/draw"
)

// Name is the registered window name.
const Name = "headless"

// ErrClosed is returned by Present after Close.
var ErrClosed = errors.New("headless: window closed")

func init() {
	window.Register(Name, func(cfg xd2d.WindowSettings) (window.Window, error) {
		return New(cfg)
	})
}

// Window is a headless window. The zero value is not usable; use New.
type Window struct {
	gpucontext.NullWindowProvider

	cfg      xd2d.WindowSettings
	onResize func(width, height int)
	resized  bool

	frames int
	last   *image.RGBA
	closed bool
}

// New creates a headless window of cfg.Width x cfg.Height, clamped to the
// configured size limits.
func New(cfg xd2d.WindowSettings) (*Window, error) {
	w, h := cfg.ClampSize(cfg.Width, cfg.Height)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("headless: invalid size %dx%d", w, h)
	}
	return &Window{
		NullWindowProvider: gpucontext.NullWindowProvider{W: w, H: h, SF: 1},
		cfg:                cfg,
	}, nil
}

// Resize changes the window size. The resize callback runs on the next
// PollEvents. Non-resizable windows ignore Resize.
func (w *Window) Resize(width, height int) {
	if !w.cfg.Resizable {
		return
	}
	width, height = w.cfg.ClampSize(width, height)
	if width == w.W && height == w.H {
		return
	}
	w.W, w.H = width, height
	w.resized = true
}

// OnResize implements window.Window.
func (w *Window) OnResize(fn func(width, height int)) { w.onResize = fn }

// PollEvents reports a pending resize and requests close once the frame
// limit is reached.
func (w *Window) PollEvents() bool {
	if w.closed {
		return true
	}
	if w.resized {
		w.resized = false
		if w.onResize != nil {
			w.onResize(w.W, w.H)
		}
	}
	return w.cfg.Frames > 0 && w.frames >= w.cfg.Frames
}

// Present counts a frame and keeps a copy of img unless skipSwap is set.
func (w *Window) Present(img image.Image, skipSwap bool) error {
	if w.closed {
		return ErrClosed
	}
	w.frames++
	if skipSwap || img == nil {
		return nil
	}
	b := img.Bounds()
	if w.last == nil || w.last.Bounds() != b {
		w.last = image.NewRGBA(b)
	}
	draw.Draw(w.last, b, img, b.Min, draw.Src)
	return nil
}

// Frames returns the number of Present calls.
func (w *Window) Frames() int { return w.frames }

// Last returns a copy of the last presented frame, or nil.
func (w *Window) Last() *image.RGBA { return w.last }

// Close writes the last frame to cfg.Output when set.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.cfg.Output == "" || w.last == nil {
		return nil
	}
	if err := savePNG(w.cfg.Output, w.last); err != nil {
		return fmt.Errorf("headless: save %s: %w", w.cfg.Output, err)
	}
	xd2d.Logger().Info("headless: frame saved", "path", w.cfg.Output, "frames", w.frames)
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
