package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	"github.com/gogpu/wgpu/hal/software"
	"github.com/gogpu/xd2d"
)

// Name is the registered device name.
const Name = "hal"

// Backend variant names accepted in DeviceConfig.Backend besides the
// registered GPU backends ("vulkan", "metal", "dx12", "gl").
const (
	BackendNoop     = "noop"
	BackendSoftware = "software"
)

// Render target formats. Readback converts both to RGBA. The software
// backend only composites draws correctly into RGBA targets.
const (
	targetFormat         = gputypes.TextureFormatBGRA8Unorm
	softwareTargetFormat = gputypes.TextureFormatRGBA8Unorm
)

// Package errors for the hal device.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("hal: invalid dimensions")

	// ErrUnsupportedState is returned by ConfigureRenderState for depth or
	// stencil testing, which the render target has no attachment for, and
	// for a disabled scissor test, since Clip always scissors.
	ErrUnsupportedState = errors.New("hal: unsupported render state")

	// ErrNoBackend is returned by Init when the configured backend is not
	// available.
	ErrNoBackend = errors.New("hal: backend not available")

	// ErrNoAdapter is returned by Init when the backend exposes no adapter.
	ErrNoAdapter = errors.New("hal: no adapter found")
)

func init() {
	xd2d.RegisterDevice(Name, func(cfg xd2d.DeviceConfig) (xd2d.Device, error) {
		return New(cfg)
	})
}

// Device executes frames through a wgpu HAL backend into an offscreen
// texture and reads the result back after every Submit.
type Device struct {
	cfg         xd2d.DeviceConfig
	initialized bool

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	info     gputypes.AdapterInfo

	// tightRows is set for backends that copy textures to buffers without
	// honoring BytesPerRow.
	tightRows bool
	format    gputypes.TextureFormat

	pipes     pipelines
	resources frameResources
	state     xd2d.RenderState

	img *image.RGBA
}

// New creates a hal device. The backend is opened by Init.
func New(cfg xd2d.DeviceConfig) (*Device, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	return &Device{cfg: cfg}, nil
}

// Name implements xd2d.Device.
func (d *Device) Name() string { return Name }

// AdapterInfo returns the opened adapter. It is zero before Init.
func (d *Device) AdapterInfo() gputypes.AdapterInfo { return d.info }

// Init opens the configured backend, compiles the fill shader and creates
// the pipelines for the default render state.
func (d *Device) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.initialized {
		return nil
	}

	backend, err := lookupBackend(d.cfg.Backend)
	if err != nil {
		return err
	}
	d.format = targetFormat
	if _, ok := backend.(software.API); ok {
		d.tightRows = true
		d.format = softwareTargetFormat
	}

	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})
	if err != nil {
		return fmt.Errorf("hal: create instance: %w", err)
	}
	d.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		d.release()
		return ErrNoAdapter
	}
	exposed := adapters[0]
	open, err := exposed.Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		d.release()
		return fmt.Errorf("hal: open device: %w", err)
	}
	d.device, d.queue, d.info = open.Device, open.Queue, exposed.Info

	d.pipes = pipelines{device: d.device, format: d.format}
	d.resources = frameResources{device: d.device, queue: d.queue, format: d.format}
	if err := d.pipes.createLayouts(); err != nil {
		d.release()
		return fmt.Errorf("hal: %w", err)
	}
	d.state = xd2d.DefaultRenderState()
	if err := d.pipes.build(d.state); err != nil {
		d.release()
		return fmt.Errorf("hal: %w", err)
	}

	d.initialized = true
	xd2d.Logger().Info("hal: device initialized",
		"adapter", d.info.Name, "backend", backendName(d.cfg.Backend),
		"width", d.cfg.Width, "height", d.cfg.Height)
	return nil
}

// ConfigureRenderState rebuilds the draw pipelines when rs differs from the
// current state. Depth and stencil testing are rejected, and so is turning
// scissor testing off.
func (d *Device) ConfigureRenderState(rs xd2d.RenderState) error {
	if !d.initialized {
		return xd2d.ErrDeviceNotInitialized
	}
	switch {
	case rs.DepthTest || rs.StencilTest:
		return fmt.Errorf("%w: depth or stencil test", ErrUnsupportedState)
	case !rs.ScissorTest:
		return fmt.Errorf("%w: scissor test disabled", ErrUnsupportedState)
	}
	if err := d.pipes.build(rs); err != nil {
		return fmt.Errorf("hal: %w", err)
	}
	d.state = rs
	return nil
}

// Submit uploads the frame's vertices, encodes its commands into render
// passes, submits them and reads the target back. Submit panics if f fails
// Validate.
func (d *Device) Submit(ctx context.Context, f *xd2d.Frame) error {
	if !d.initialized {
		return xd2d.ErrDeviceNotInitialized
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	t := &target{d: d, f: f}
	if err := f.Playback(t); err != nil {
		t.discard()
		return fmt.Errorf("hal: submit frame: %w", err)
	}
	return nil
}

// Image returns the last frame read back from the GPU, or nil before the
// first Submit.
func (d *Device) Image() image.Image {
	if d.img == nil {
		return nil
	}
	return d.img
}

// RGBA returns the read back frame with its concrete type.
func (d *Device) RGBA() *image.RGBA { return d.img }

// Destroy waits for the GPU and releases every resource.
func (d *Device) Destroy() {
	if d.device != nil {
		if err := d.device.WaitIdle(); err != nil {
			xd2d.Logger().Warn("hal: wait idle failed", "err", err)
		}
	}
	d.release()
	d.img = nil
	d.initialized = false
}

// release destroys resources in reverse creation order.
func (d *Device) release() {
	d.resources.destroy()
	d.pipes.destroy()
	if d.device != nil {
		d.device.Destroy()
		d.device = nil
		d.queue = nil
	}
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
}

// lookupBackend resolves a backend variant name. The noop backend is the
// default; "software" selects the CPU reference backend; other names match
// registered HAL backends case-insensitively.
func lookupBackend(name string) (hal.Backend, error) {
	switch strings.ToLower(name) {
	case "", BackendNoop:
		return noop.API{}, nil
	case BackendSoftware:
		return software.API{}, nil
	}
	for _, variant := range hal.AvailableBackends() {
		if !strings.EqualFold(variant.String(), name) {
			continue
		}
		if b, ok := hal.GetBackend(variant); ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoBackend, name)
}

func backendName(name string) string {
	if name == "" {
		return BackendNoop
	}
	return strings.ToLower(name)
}
