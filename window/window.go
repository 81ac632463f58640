// Package window defines the event source a host presents frames to and a
// registry of its implementations.
//
// Implementations register themselves on import, mirroring xd2d devices:
//
//	import _ "github.com/gogpu/xd2d/window/term"
//
//	w, err := window.Open("term", xd2d.DefaultWindowSettings())
//
// Open with an empty name (or "best") picks the highest-priority
// registered implementation: "term", then "headless".
package window

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/xd2d"
)

// Priority lists the window implementations from most to least preferred.
var Priority = []string{"term", "headless"}

// ErrUnknownWindow is returned by Open for an unregistered name.
var ErrUnknownWindow = errors.New("window: unknown window")

// Window supplies frame sizes and close requests to the run loop and
// presents the rendered frames.
type Window interface {
	gpucontext.WindowProvider

	// OnResize registers fn to be called from PollEvents with the new size
	// in physical pixels. A later call replaces the callback.
	OnResize(fn func(width, height int))

	// PollEvents processes pending events without blocking and reports
	// whether the window was asked to close.
	PollEvents() (closeRequested bool)

	// Present shows img. When skipSwap is set the frame is dropped and the
	// previous one stays visible.
	Present(img image.Image, skipSwap bool) error

	// Close releases the window. Close is safe to call more than once.
	Close() error
}

// Opener creates a window from settings.
type Opener func(cfg xd2d.WindowSettings) (Window, error)

var registry = gpucontext.NewRegistry[Opener](gpucontext.WithPriority(Priority...))

// Register makes a window implementation available under name.
// Register panics if open is nil.
func Register(name string, open Opener) {
	if open == nil {
		panic("window: Register opener is nil")
	}
	registry.Register(name, func() Opener { return open })
}

// Unregister removes a window implementation.
// This is primarily useful for testing.
func Unregister(name string) {
	registry.Unregister(name)
}

// Available returns the sorted names of all registered windows.
func Available() []string {
	names := registry.Available()
	sort.Strings(names)
	return names
}

// Best returns the name Open selects for "" or "best", or "" when nothing
// is registered.
func Best() string {
	return registry.BestName()
}

// Open creates the window registered as name.
func Open(name string, cfg xd2d.WindowSettings) (Window, error) {
	if name == "" || name == "best" {
		name = registry.BestName()
	}
	if name == "" || !registry.Has(name) {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownWindow, name)
	}
	w, err := registry.Get(name)(cfg)
	if err != nil {
		return nil, fmt.Errorf("window: open %q: %w", name, err)
	}
	xd2d.Logger().Info("window: opened", "window", name, "title", cfg.Title)
	return w, nil
}
