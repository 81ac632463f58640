package soft

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/xd2d"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func newDevice(t *testing.T, w, h int, fill xd2d.Color) *Device {
	t.Helper()
	d, err := New(xd2d.DeviceConfig{Width: w, Height: h, Fill: fill})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if err := d.Init(context.Background()); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	t.Cleanup(d.Destroy)
	return d
}

// render records one frame with draw and submits it to d.
func render(t *testing.T, d *Device, w, h int, draw func(p *xd2d.Painter)) {
	t.Helper()
	p := xd2d.NewPainter(xd2d.WithCommandCapacity(16), xd2d.WithVertexCapacity(64))
	p.Begin(w, h)
	p.Clear(xd2d.Black)
	draw(p)
	if err := d.Submit(context.Background(), p.View()); err != nil {
		t.Fatalf("Submit() = %v", err)
	}
}

func near(a, b color.RGBA, tol uint8) bool {
	diff := func(x, y uint8) bool {
		if x > y {
			return x-y <= tol
		}
		return y-x <= tol
	}
	return diff(a.R, b.R) && diff(a.G, b.G) && diff(a.B, b.B) && diff(a.A, b.A)
}

func checkPixels(t *testing.T, d *Device, want map[[2]int]color.RGBA) {
	t.Helper()
	for xy, c := range want {
		if got := d.RGBA().RGBAAt(xy[0], xy[1]); !near(got, c, 2) {
			t.Errorf("pixel (%d, %d) = %v, want %v", xy[0], xy[1], got, c)
		}
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	for _, cfg := range []xd2d.DeviceConfig{{Width: 0, Height: 10}, {Width: 10, Height: -1}} {
		if _, err := New(cfg); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%dx%d) = %v, want ErrInvalidDimensions", cfg.Width, cfg.Height, err)
		}
	}
}

func TestRegistered(t *testing.T) {
	if !xd2d.IsDeviceRegistered(Name) {
		t.Fatal("soft device not registered")
	}
	dev, err := xd2d.NewDevice(Name, xd2d.DefaultDeviceConfig())
	if err != nil {
		t.Fatalf("NewDevice() = %v", err)
	}
	if dev.Name() != Name {
		t.Errorf("Name() = %q", dev.Name())
	}
	if _, ok := dev.(xd2d.ImageDevice); !ok {
		t.Error("soft device does not implement ImageDevice")
	}
}

func TestNotInitialized(t *testing.T) {
	d, err := New(xd2d.DefaultDeviceConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Submit(context.Background(), &xd2d.Frame{}); !errors.Is(err, xd2d.ErrDeviceNotInitialized) {
		t.Errorf("Submit() = %v, want ErrDeviceNotInitialized", err)
	}
	if err := d.ConfigureRenderState(xd2d.DefaultRenderState()); !errors.Is(err, xd2d.ErrDeviceNotInitialized) {
		t.Errorf("ConfigureRenderState() = %v, want ErrDeviceNotInitialized", err)
	}
	if d.Image() != nil {
		t.Error("Image() before Init should be nil")
	}
}

func TestConfigureRenderState(t *testing.T) {
	d := newDevice(t, 8, 8, xd2d.White)
	if err := d.ConfigureRenderState(xd2d.DefaultRenderState()); err != nil {
		t.Errorf("default state rejected: %v", err)
	}

	tests := []struct {
		name   string
		modify func(*xd2d.RenderState)
	}{
		{"depth test", func(rs *xd2d.RenderState) { rs.DepthTest = true }},
		{"stencil test", func(rs *xd2d.RenderState) { rs.StencilTest = true }},
		{"cull back", func(rs *xd2d.RenderState) { rs.CullMode = gputypes.CullModeBack }},
		{"premultiplied blend", func(rs *xd2d.RenderState) { rs.Blend = gputypes.BlendStatePremultiplied() }},
		{"scissor disabled", func(rs *xd2d.RenderState) { rs.ScissorTest = false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := xd2d.DefaultRenderState()
			tt.modify(&rs)
			if err := d.ConfigureRenderState(rs); !errors.Is(err, ErrUnsupportedState) {
				t.Errorf("ConfigureRenderState() = %v, want ErrUnsupportedState", err)
			}
		})
	}
}

func TestFilledRect(t *testing.T) {
	d := newDevice(t, 100, 100, xd2d.White)
	render(t, d, 100, 100, func(p *xd2d.Painter) {
		p.FilledRect(xd2d.R(10, 10, 20, 20))
	})

	checkPixels(t, d, map[[2]int]color.RGBA{
		{15, 15}: white,
		{10, 10}: white,
		{29, 29}: white,
		{5, 5}:   black,
		{35, 35}: black,
		{15, 50}: black,
		{99, 99}: black,
	})
}

func TestFilledRectsBatch(t *testing.T) {
	d := newDevice(t, 64, 64, xd2d.White)
	render(t, d, 64, 64, func(p *xd2d.Painter) {
		p.FilledRects([]xd2d.Rect{
			xd2d.R(0, 0, 8, 8),
			xd2d.R(4, 4, 8, 8), // overlaps the first
			xd2d.R(40, 40, 8, 8),
		})
	})

	checkPixels(t, d, map[[2]int]color.RGBA{
		{2, 2}:   white,
		{6, 6}:   white,
		{10, 10}: white,
		{44, 44}: white,
		{20, 20}: black,
	})
}

func TestClipScopesDrawsAndClear(t *testing.T) {
	d := newDevice(t, 100, 100, xd2d.White)
	render(t, d, 100, 100, func(p *xd2d.Painter) {
		p.Clip(xd2d.R(0, 0, 50, 100))
		p.FilledRect(xd2d.R(0, 0, 100, 100))
		p.Clip(xd2d.R(80, 80, 10, 10))
		p.Clear(xd2d.Red)
	})

	checkPixels(t, d, map[[2]int]color.RGBA{
		{25, 50}: white,
		{49, 0}:  white,
		{50, 50}: black,
		{75, 50}: black,
		{85, 85}: red,
		{95, 95}: black,
	})
}

func TestEmptyClipDrawsNothing(t *testing.T) {
	d := newDevice(t, 20, 20, xd2d.White)
	render(t, d, 20, 20, func(p *xd2d.Painter) {
		p.Clip(xd2d.R(5, 5, 0, 10))
		p.FilledRect(xd2d.R(0, 0, 20, 20))
		p.Clear(xd2d.Red)
	})
	checkPixels(t, d, map[[2]int]color.RGBA{{10, 10}: black})
}

func TestScissorResetsEachFrame(t *testing.T) {
	d := newDevice(t, 20, 20, xd2d.White)
	render(t, d, 20, 20, func(p *xd2d.Painter) {
		p.Clip(xd2d.R(0, 0, 1, 1))
	})
	render(t, d, 20, 20, func(p *xd2d.Painter) {
		p.FilledRect(xd2d.R(0, 0, 20, 20))
	})
	checkPixels(t, d, map[[2]int]color.RGBA{{15, 15}: white})
}

func TestPrimitives(t *testing.T) {
	quad := func(x0, y0, x1, y1 float32) []xd2d.Vertex {
		// top-left, top-right, bottom-left, bottom-right: a strip quad
		return []xd2d.Vertex{
			{Position: xd2d.V2(x0, y0)},
			{Position: xd2d.V2(x1, y0)},
			{Position: xd2d.V2(x0, y1)},
			{Position: xd2d.V2(x1, y1)},
		}
	}

	tests := []struct {
		name string
		prim xd2d.PrimitiveType
		vs   []xd2d.Vertex
		on   [][2]int
		off  [][2]int
	}{
		{
			name: "triangle strip",
			prim: xd2d.TriangleStrip,
			vs:   quad(40, 40, 60, 60),
			on:   [][2]int{{45, 45}, {55, 55}, {42, 57}, {57, 42}},
			off:  [][2]int{{35, 50}, {65, 50}},
		},
		{
			name: "points",
			prim: xd2d.Points,
			vs:   []xd2d.Vertex{{Position: xd2d.V2(10.5, 10.5)}, {Position: xd2d.V2(80.5, 20.5)}},
			on:   [][2]int{{10, 10}, {80, 20}},
			off:  [][2]int{{12, 10}, {10, 12}},
		},
		{
			name: "lines",
			prim: xd2d.Lines,
			vs: []xd2d.Vertex{
				{Position: xd2d.V2(10, 20.5)}, {Position: xd2d.V2(30, 20.5)},
				{Position: xd2d.V2(70.5, 10)}, {Position: xd2d.V2(70.5, 30)},
			},
			on:  [][2]int{{20, 20}, {70, 20}},
			off: [][2]int{{20, 23}, {40, 20}, {73, 20}},
		},
		{
			name: "line strip",
			prim: xd2d.LineStrip,
			vs: []xd2d.Vertex{
				{Position: xd2d.V2(10, 90.5)}, {Position: xd2d.V2(50, 90.5)}, {Position: xd2d.V2(50, 95)},
			},
			on:  [][2]int{{30, 90}, {49, 90}},
			off: [][2]int{{30, 93}, {60, 90}},
		},
		{
			name: "incomplete triangle",
			prim: xd2d.Triangles,
			vs:   []xd2d.Vertex{{Position: xd2d.V2(0, 0)}, {Position: xd2d.V2(100, 100)}},
			off:  [][2]int{{50, 50}, {1, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDevice(t, 100, 100, xd2d.White)
			render(t, d, 100, 100, func(p *xd2d.Painter) {
				p.PushVertices(tt.prim, tt.vs)
			})
			want := make(map[[2]int]color.RGBA)
			for _, xy := range tt.on {
				want[xy] = white
			}
			for _, xy := range tt.off {
				want[xy] = black
			}
			checkPixels(t, d, want)
		})
	}
}

func TestTranslucentFillBlends(t *testing.T) {
	d := newDevice(t, 10, 10, xd2d.RGBA(255, 0, 0, 128))
	render(t, d, 10, 10, func(p *xd2d.Painter) {
		p.FilledRect(xd2d.R(0, 0, 10, 10))
	})
	checkPixels(t, d, map[[2]int]color.RGBA{{5, 5}: {128, 0, 0, 255}})
}

func TestHugeGeometryIsClipped(t *testing.T) {
	d := newDevice(t, 32, 32, xd2d.White)
	render(t, d, 32, 32, func(p *xd2d.Painter) {
		p.FilledRect(xd2d.R(-1e9, -1e9, 2e9, 2e9))
	})
	checkPixels(t, d, map[[2]int]color.RGBA{
		{0, 0}:   white,
		{31, 31}: white,
		{16, 7}:  white,
	})
}

func TestNonFiniteGeometryIsSkipped(t *testing.T) {
	d := newDevice(t, 16, 16, xd2d.White)
	// positions overflow float32 after projection
	render(t, d, 16, 16, func(p *xd2d.Painter) {
		p.SetTransform(xd2d.Scale(1e30, 1e30))
		p.FilledRect(xd2d.R(0, 0, 1e10, 1e10))
	})
	checkPixels(t, d, map[[2]int]color.RGBA{{8, 8}: black})
}

func TestSubmitResizesTarget(t *testing.T) {
	d := newDevice(t, 16, 16, xd2d.White)
	render(t, d, 50, 40, func(p *xd2d.Painter) {
		p.FilledRect(xd2d.R(40, 30, 10, 10))
	})
	if b := d.Image().Bounds(); b.Dx() != 50 || b.Dy() != 40 {
		t.Fatalf("image bounds = %v, want 50x40", b)
	}
	checkPixels(t, d, map[[2]int]color.RGBA{{45, 35}: white, {35, 35}: black})
}

func TestSubmitInvalidFramePanics(t *testing.T) {
	d := newDevice(t, 8, 8, xd2d.White)
	f := &xd2d.Frame{
		Width:    8,
		Height:   8,
		Commands: []xd2d.Command{xd2d.DrawCommand{Primitive: xd2d.Triangles, VertexCount: 3}},
	}
	defer func() {
		if recover() == nil {
			t.Error("Submit of out-of-range draw did not panic")
		}
	}()
	_ = d.Submit(context.Background(), f)
}

func TestSubmitCanceledContext(t *testing.T) {
	d := newDevice(t, 8, 8, xd2d.White)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Submit(ctx, &xd2d.Frame{Width: 8, Height: 8}); !errors.Is(err, context.Canceled) {
		t.Errorf("Submit() = %v, want context.Canceled", err)
	}
}

func BenchmarkSubmitRects(b *testing.B) {
	d, _ := New(xd2d.DeviceConfig{Width: 800, Height: 600, Fill: xd2d.White})
	if err := d.Init(context.Background()); err != nil {
		b.Fatal(err)
	}
	rects := make([]xd2d.Rect, 500)
	for i := range rects {
		rects[i] = xd2d.R(float32(i%25)*32, float32(i/25)*30, 28, 26)
	}
	p := xd2d.NewPainter()
	ctx := context.Background()
	b.ReportAllocs()
	for b.Loop() {
		p.Begin(800, 600)
		p.Clear(xd2d.Black)
		p.FilledRects(rects)
		if err := d.Submit(ctx, p.View()); err != nil {
			b.Fatal(err)
		}
	}
}
