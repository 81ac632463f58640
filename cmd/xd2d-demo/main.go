// Command xd2d-demo draws a grid of animated rectangles whose hues cycle
// over time.
//
// It renders with any registered device into any registered window:
//
//	xd2d-demo                                    # terminal, soft device
//	xd2d-demo -window headless -frames 60 -output demo.png
//	xd2d-demo -device hal -backend software -window headless -frames 1
//	xd2d-demo -config demo.yaml -v
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/xd2d"
	"github.com/gogpu/xd2d/app"
	_ "github.com/gogpu/xd2d/backend/hal"  // Register "hal" device
	_ "github.com/gogpu/xd2d/backend/soft" // Register "soft" device
	"github.com/gogpu/xd2d/window"
	_ "github.com/gogpu/xd2d/window/headless" // Register "headless" window
	_ "github.com/gogpu/xd2d/window/term"     // Register "term" window
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "xd2d-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		config  = flag.String("config", "", "YAML settings file")
		device  = flag.String("device", "", "device name (overrides settings)")
		backend = flag.String("backend", "", "GPU backend for the hal device")
		win     = flag.String("window", "", "window name (overrides settings)")
		frames  = flag.Int("frames", -1, "stop after this many frames (0 runs until closed)")
		output  = flag.String("output", "", "PNG file for the last frame (headless window)")
		cols    = flag.Int("cols", 8, "rectangles per row")
		verbose = flag.Bool("v", false, "debug logging")
		list    = flag.Bool("list", false, "list devices and windows and exit")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	xd2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *list {
		fmt.Println("devices:", xd2d.Devices())
		fmt.Println("windows:", window.Available(), "best:", window.Best())
		return nil
	}

	s := xd2d.DefaultSettings()
	if *config != "" {
		var err error
		if s, err = xd2d.LoadSettings(*config); err != nil {
			return err
		}
	}
	if *device != "" {
		s.Device.Name = *device
	}
	if *backend != "" {
		s.Device.Backend = *backend
	}
	if *win != "" {
		s.Window.Provider = *win
	}
	if *frames >= 0 {
		s.Window.Frames = *frames
	}
	if *output != "" {
		s.Window.Output = *output
	}
	if err := s.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return app.Run(ctx, &demo{cols: max(*cols, 1)}, app.Config{Settings: s})
}
