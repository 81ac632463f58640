// Package term provides a window that presents frames in a terminal.
//
// Every terminal cell shows two vertically stacked pixels using the upper
// half block rune: the foreground color is the top pixel and the background
// color the bottom one. A terminal of 80x25 cells therefore renders an 80x50
// frame. Frames of a different size are scaled to fit.
//
// Esc, Ctrl-C and 'q' request close. The window is registered as "term" on
// import.
package term

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/xd2d"
	"github.com/gogpu/xd2d/window"
	"golang.org/x/image/draw"
)

// Name is the registered window name.
const Name = "term"

// halfBlock is the upper half block; its foreground paints the top pixel.
const halfBlock = '▀'

// ErrClosed is returned by Present after Close.
var ErrClosed = errors.New("term: window closed")

func init() {
	window.Register(Name, func(cfg xd2d.WindowSettings) (window.Window, error) {
		return New(cfg)
	})
}

// Window is a terminal window.
type Window struct {
	screen tcell.Screen
	cfg    xd2d.WindowSettings

	cols, rows int
	onResize   func(width, height int)
	closed     bool

	// scaled holds frames resized to the terminal
	scaled *image.RGBA
}

// New opens the controlling terminal.
func New(cfg xd2d.WindowSettings) (*Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	return NewWithScreen(screen, cfg)
}

// NewWithScreen initializes screen and wraps it. Tests pass a
// tcell.SimulationScreen.
func NewWithScreen(screen tcell.Screen, cfg xd2d.WindowSettings) (*Window, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	screen.SetTitle(cfg.Title)
	screen.HideCursor()
	screen.Clear()

	w := &Window{screen: screen, cfg: cfg}
	w.cols, w.rows = screen.Size()
	xd2d.Logger().Debug("term: screen initialized", "cols", w.cols, "rows", w.rows)
	return w, nil
}

// Size returns the framebuffer size in pixels: one column and half a row
// per pixel.
func (w *Window) Size() (int, int) { return w.cols, w.rows * 2 }

// ScaleFactor implements gpucontext.WindowProvider. Terminal pixels are
// not scaled.
func (w *Window) ScaleFactor() float64 { return 1 }

// RequestRedraw is a no-op; the run loop renders continuously.
func (w *Window) RequestRedraw() {}

// OnResize implements window.Window.
func (w *Window) OnResize(fn func(width, height int)) { w.onResize = fn }

// PollEvents drains pending terminal events without blocking.
func (w *Window) PollEvents() bool {
	if w.closed {
		return true
	}
	closeRequested := false
	for w.screen.HasPendingEvent() {
		switch ev := w.screen.PollEvent().(type) {
		case nil:
			return true
		case *tcell.EventKey:
			if isQuitKey(ev) {
				closeRequested = true
			}
		case *tcell.EventResize:
			w.screen.Sync()
			cols, rows := ev.Size()
			if cols == w.cols && rows == w.rows {
				continue
			}
			w.cols, w.rows = cols, rows
			xd2d.Logger().Debug("term: resized", "cols", cols, "rows", rows)
			if w.onResize != nil {
				w.onResize(w.Size())
			}
		}
	}
	return closeRequested
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Present draws img with half blocks and shows it. Images that do not
// match Size are scaled with bilinear filtering.
func (w *Window) Present(img image.Image, skipSwap bool) error {
	if w.closed {
		return ErrClosed
	}
	if skipSwap || img == nil {
		return nil
	}
	pw, ph := w.Size()
	if pw == 0 || ph == 0 {
		return nil
	}

	src := img
	if b := img.Bounds(); b.Dx() != pw || b.Dy() != ph {
		if w.scaled == nil || w.scaled.Bounds().Dx() != pw || w.scaled.Bounds().Dy() != ph {
			w.scaled = image.NewRGBA(image.Rect(0, 0, pw, ph))
		}
		draw.ApproxBiLinear.Scale(w.scaled, w.scaled.Bounds(), img, b, draw.Src, nil)
		src = w.scaled
	}

	o := src.Bounds().Min
	for y := 0; y < w.rows; y++ {
		for x := 0; x < w.cols; x++ {
			top := cellColor(src, o.X+x, o.Y+2*y)
			bottom := cellColor(src, o.X+x, o.Y+2*y+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			w.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	w.screen.Show()
	return nil
}

func cellColor(img image.Image, x, y int) tcell.Color {
	var c color.RGBA
	if rgba, ok := img.(*image.RGBA); ok {
		c = rgba.RGBAAt(x, y)
	} else {
		c = color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Close restores the terminal.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.screen.Fini()
	return nil
}
