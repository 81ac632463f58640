// Package app hosts an App: it opens a window and a device, records one
// frame per iteration with an xd2d.Painter and presents the result.
//
// Basic usage:
//
//	import (
//	    _ "github.com/gogpu/xd2d/backend/soft"
//	    _ "github.com/gogpu/xd2d/window/headless"
//	)
//
//	err := app.Run(ctx, myApp{}, app.Config{Settings: xd2d.DefaultSettings()})
package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/xd2d"
	"github.com/gogpu/xd2d/window"
)

// App is the application driven by Run.
//
// Init runs once before the first frame. Update and Draw run once per
// frame, in that order, after the painter has begun the frame and cleared
// it to the configured clear color.
type App interface {
	Init(c *Context)
	Update(c *Context)
	Draw(c *Context)
}

// Context is the per-frame state handed to App callbacks.
type Context struct {
	// Painter records the current frame. It is Recording during Update
	// and Draw.
	Painter *xd2d.Painter

	// Width and Height are the frame size in pixels. They are zero during
	// Init.
	Width, Height int

	// Frame counts presented frames, starting at zero.
	Frame uint64

	// SkipSwap drops the current frame at present time, leaving the
	// previous one visible. It is reset before every Update.
	SkipSwap bool

	// Settings is the configuration Run was started with.
	Settings xd2d.Settings

	quit bool
}

// Quit stops the run loop after the current frame.
func (c *Context) Quit() { c.quit = true }

// Config configures Run.
type Config struct {
	Settings xd2d.Settings

	// Window overrides the window selected by Settings.Window.Provider.
	Window window.Window

	// Device overrides the device selected by Settings.Device.Name. It must
	// not be initialized yet.
	Device xd2d.Device
}

// Run opens the window and device, then renders frames until the window
// asks to close, the app calls Quit or ctx is canceled. Those three are
// normal exits and return nil.
//
// Run closes the window and destroys the device on return, including ones
// passed in cfg.
func Run(ctx context.Context, a App, cfg Config) (err error) {
	s := cfg.Settings
	clearColor, err := s.Clear()
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	win := cfg.Window
	if win == nil {
		win, err = window.Open(s.Window.Provider, s.Window)
		if err != nil {
			return fmt.Errorf("app: %w", err)
		}
	}
	defer func() {
		if cerr := win.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("app: close window: %w", cerr)
		}
	}()

	dev := cfg.Device
	if dev == nil {
		dev, err = newDevice(s, win)
		if err != nil {
			return err
		}
	}
	defer dev.Destroy()

	if err := dev.Init(ctx); err != nil {
		return fmt.Errorf("app: init device %s: %w", dev.Name(), err)
	}

	l := &loop{
		app:   a,
		win:   win,
		dev:   dev,
		clear: clearColor,
		state: xd2d.DefaultRenderState(),
		c: &Context{
			Painter:  xd2d.NewPainter(s.Painter.Options()...),
			Settings: s,
		},
	}
	win.OnResize(func(width, height int) {
		xd2d.Logger().Debug("app: window resized", "width", width, "height", height)
	})
	return l.run(ctx)
}

func newDevice(s xd2d.Settings, win window.Window) (xd2d.Device, error) {
	dc, err := s.DeviceConfig()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	if w, h := win.Size(); w > 0 && h > 0 {
		dc.Width, dc.Height = w, h
	}
	dev, err := xd2d.NewDevice(s.Device.Name, dc)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return dev, nil
}

// zeroSizeWait is how long the loop sleeps between polls while the window
// has no pixels.
const zeroSizeWait = 10 * time.Millisecond

type loop struct {
	app   App
	win   window.Window
	dev   xd2d.Device
	clear xd2d.Color
	state xd2d.RenderState
	c     *Context
}

func (l *loop) run(ctx context.Context) error {
	c := l.c
	l.app.Init(c)

	for !c.quit {
		if ctx.Err() != nil {
			xd2d.Logger().Info("app: context canceled", "frames", c.Frame)
			return nil
		}
		if l.win.PollEvents() {
			xd2d.Logger().Info("app: window closed", "frames", c.Frame)
			return nil
		}

		w, h := l.win.Size()
		if w <= 0 || h <= 0 {
			// Minimized; keep polling slowly until the window has pixels.
			select {
			case <-ctx.Done():
			case <-time.After(zeroSizeWait):
			}
			continue
		}
		if err := l.frame(ctx, w, h); err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				continue
			}
			return err
		}
	}
	xd2d.Logger().Info("app: quit", "frames", c.Frame)
	return nil
}

func (l *loop) frame(ctx context.Context, w, h int) error {
	c := l.c
	c.Width, c.Height = w, h
	c.SkipSwap = false

	p := c.Painter
	p.Begin(w, h)
	p.Clear(l.clear)
	l.app.Update(c)
	l.app.Draw(c)

	if err := l.dev.ConfigureRenderState(l.state); err != nil {
		return fmt.Errorf("app: configure render state: %w", err)
	}
	if err := l.dev.Submit(ctx, p.View()); err != nil {
		return fmt.Errorf("app: submit frame %d: %w", c.Frame, err)
	}

	var img image.Image
	if id, ok := l.dev.(xd2d.ImageDevice); ok {
		img = id.Image()
	}
	if err := l.win.Present(img, c.SkipSwap); err != nil {
		return fmt.Errorf("app: present frame %d: %w", c.Frame, err)
	}
	c.Frame++
	return nil
}
