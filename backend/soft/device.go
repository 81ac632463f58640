package soft

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/xd2d"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Name is the registered device name.
const Name = "soft"

// Package errors for the soft device.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("soft: invalid dimensions")

	// ErrUnsupportedState is returned by ConfigureRenderState for state the
	// rasterizer cannot honor.
	ErrUnsupportedState = errors.New("soft: unsupported render state")
)

func init() {
	xd2d.RegisterDevice(Name, func(cfg xd2d.DeviceConfig) (xd2d.Device, error) {
		return New(cfg)
	})
}

// Device rasterizes frames on the CPU.
type Device struct {
	cfg         xd2d.DeviceConfig
	initialized bool

	img     *image.RGBA
	fill    *image.Uniform
	ras     *vector.Rasterizer
	scissor image.Rectangle
	state   xd2d.RenderState

	// scratch polygons for clipping
	poly, tmp []pt
}

// New creates a soft device. The render target is allocated by Init.
func New(cfg xd2d.DeviceConfig) (*Device, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	return &Device{cfg: cfg}, nil
}

// Name implements xd2d.Device.
func (d *Device) Name() string { return Name }

// Init allocates the render target and the rasterizer.
func (d *Device) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.img = image.NewRGBA(image.Rect(0, 0, d.cfg.Width, d.cfg.Height))
	d.fill = image.NewUniform(d.cfg.Fill)
	d.ras = vector.NewRasterizer(d.cfg.Width, d.cfg.Height)
	d.scissor = d.img.Bounds()
	d.state = xd2d.DefaultRenderState()
	d.initialized = true
	xd2d.Logger().Debug("soft: device initialized", "width", d.cfg.Width, "height", d.cfg.Height)
	return nil
}

// ConfigureRenderState accepts the default state only: source-over alpha
// blending, no culling, no depth or stencil test and scissor testing on.
// Clip always scissors, so a disabled scissor test is rejected.
func (d *Device) ConfigureRenderState(rs xd2d.RenderState) error {
	if !d.initialized {
		return xd2d.ErrDeviceNotInitialized
	}
	switch {
	case rs.Blend != gputypes.BlendStateAlpha():
		return fmt.Errorf("%w: blend %+v", ErrUnsupportedState, rs.Blend)
	case rs.CullMode != gputypes.CullModeNone:
		return fmt.Errorf("%w: cull mode %v", ErrUnsupportedState, rs.CullMode)
	case rs.DepthTest || rs.StencilTest:
		return fmt.Errorf("%w: depth or stencil test", ErrUnsupportedState)
	case !rs.ScissorTest:
		return fmt.Errorf("%w: scissor test disabled", ErrUnsupportedState)
	}
	d.state = rs
	return nil
}

// Submit rasterizes f into the render target, resizing it to the frame's
// size first when needed. Submit panics if f fails Validate.
func (d *Device) Submit(ctx context.Context, f *xd2d.Frame) error {
	if !d.initialized {
		return xd2d.ErrDeviceNotInitialized
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.Playback(target{d})
}

// Image returns the render target. It is overwritten by the next Submit.
func (d *Device) Image() image.Image {
	if d.img == nil {
		return nil
	}
	return d.img
}

// RGBA returns the render target with its concrete type.
func (d *Device) RGBA() *image.RGBA { return d.img }

// Destroy releases the render target.
func (d *Device) Destroy() {
	d.img = nil
	d.ras = nil
	d.fill = nil
	d.initialized = false
}

// target adapts Device to xd2d.Target so frame playback stays off the
// public method set.
type target struct{ d *Device }

func (t target) Begin(width, height int) error {
	d := t.d
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: frame %dx%d", ErrInvalidDimensions, width, height)
	}
	if b := d.img.Bounds(); b.Dx() != width || b.Dy() != height {
		d.img = image.NewRGBA(image.Rect(0, 0, width, height))
		xd2d.Logger().Debug("soft: render target resized", "width", width, "height", height)
	}
	d.scissor = d.img.Bounds()
	return nil
}

func (t target) Clear(c xd2d.Color) {
	d := t.d
	if d.scissor.Empty() {
		return
	}
	draw.Draw(d.img, d.scissor, image.NewUniform(c), image.Point{}, draw.Src)
}

func (t target) Clip(r xd2d.Rect) {
	t.d.scissor = r.Pixels(t.d.img.Bounds())
}

func (t target) Draw(cmd xd2d.DrawCommand, vs []xd2d.Vertex) {
	d := t.d
	if d.scissor.Empty() || len(vs) == 0 {
		return
	}
	b := d.img.Bounds()
	d.ras.Reset(d.scissor.Dx(), d.scissor.Dy())
	p := pather{
		d:      d,
		w:      float32(b.Dx()),
		h:      float32(b.Dy()),
		origin: pt{float32(d.scissor.Min.X), float32(d.scissor.Min.Y)},
		size:   pt{float32(d.scissor.Dx()), float32(d.scissor.Dy())},
	}
	if p.addPrimitives(cmd.Primitive, vs) == 0 {
		return
	}
	d.ras.Draw(d.img, d.scissor, d.fill, image.Point{})
}

func (t target) End() error { return nil }
