package main

import (
	"context"
	"testing"

	"github.com/gogpu/xd2d"
	"github.com/gogpu/xd2d/app"
	"github.com/gogpu/xd2d/window/headless"
)

func TestDemoRendersHeadless(t *testing.T) {
	for _, device := range []string{"soft", "hal"} {
		t.Run(device, func(t *testing.T) {
			s := xd2d.DefaultSettings()
			s.Window.Width, s.Window.Height, s.Window.Frames = 64, 32, 3
			s.Device.Name = device

			win, err := headless.New(s.Window)
			if err != nil {
				t.Fatal(err)
			}
			d := &demo{cols: 4}
			if err := app.Run(context.Background(), d, app.Config{Settings: s, Window: win}); err != nil {
				t.Fatalf("Run() = %v", err)
			}
			if win.Frames() != 3 {
				t.Errorf("Frames() = %d, want 3", win.Frames())
			}
			if len(d.rects) != 8 || len(d.cells) != 8 {
				t.Errorf("layout = %d rects in %d cells, want 8 and 8", len(d.rects), len(d.cells))
			}
			for i, r := range d.rects {
				if !r.IsPositive() || r.W > d.cells[i].W {
					t.Errorf("rect %d = %v, want a positive rect inside %v", i, r, d.cells[i])
				}
			}
		})
	}
}
