package xd2d

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/gogpu/gputypes"
)

// Common device errors.
var (
	// ErrDeviceNotInitialized is returned when Submit or
	// ConfigureRenderState is called before Init.
	ErrDeviceNotInitialized = errors.New("xd2d: device not initialized")

	// ErrUnknownDevice is returned by NewDevice for an unregistered name.
	ErrUnknownDevice = errors.New("xd2d: unknown device")
)

// Device executes recorded frames. It is the boundary between the frame
// recorder and a graphics backend.
//
// Devices report resource failures (context creation, shader compilation,
// buffer allocation) as errors. Submitting an invalid frame is a
// programming error and panics.
type Device interface {
	// Name returns the registered device identifier (e.g., "soft", "hal").
	Name() string

	// Init allocates the vertex buffer and compiles the shader programs.
	// It must succeed before any other method is used.
	Init(ctx context.Context) error

	// ConfigureRenderState asserts the fixed render state. The run loop
	// calls it once per frame before Submit; it is not re-checked per draw.
	ConfigureRenderState(rs RenderState) error

	// Submit uploads the frame's vertices and executes its commands in
	// order.
	Submit(ctx context.Context, f *Frame) error

	// Destroy releases all device resources. The device must not be used
	// afterwards.
	Destroy()
}

// ImageDevice is implemented by devices whose output can be read back as an
// image after Submit, which lets CPU-side windows present it.
type ImageDevice interface {
	Device
	Image() image.Image
}

// RenderState is the fixed pipeline state every frame is drawn with.
type RenderState struct {
	Blend       gputypes.BlendState
	CullMode    gputypes.CullMode
	DepthTest   bool
	StencilTest bool

	// ScissorTest must stay enabled on the built-in devices: Clip commands
	// always scissor.
	ScissorTest bool
}

// DefaultRenderState returns source-over alpha blending
// (src*srcAlpha + dst*(1-srcAlpha), additive), no face culling, no depth or
// stencil testing and scissor testing enabled.
func DefaultRenderState() RenderState {
	return RenderState{
		Blend:       gputypes.BlendStateAlpha(),
		CullMode:    gputypes.CullModeNone,
		DepthTest:   false,
		StencilTest: false,
		ScissorTest: true,
	}
}

// PrimitiveState returns the GPU primitive state for drawing prim under rs.
func (rs RenderState) PrimitiveState(prim PrimitiveType) gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology:  prim.Topology(),
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  rs.CullMode,
	}
}

// DeviceConfig configures a device at construction.
type DeviceConfig struct {
	// Width and Height size the initial render target in pixels.
	Width, Height int

	// Fill is the color geometry is drawn with. Vertices carry no color.
	Fill Color

	// Backend selects the GPU backend variant for GPU devices
	// (e.g., "noop", "vulkan"). Empty selects the device's default.
	Backend string
}

// DefaultDeviceConfig returns a 1280x720 configuration drawing in white.
func DefaultDeviceConfig() DeviceConfig {
	return DeviceConfig{Width: 1280, Height: 720, Fill: White}
}

// DeviceFactory creates a device from cfg.
// Factories are registered via RegisterDevice() and called by NewDevice().
type DeviceFactory func(cfg DeviceConfig) (Device, error)

// Registry state - protected by mutex for thread-safe access.
var (
	devicesMu sync.RWMutex
	devices   = make(map[string]DeviceFactory)
)

// RegisterDevice registers a device factory with the given name.
// This function is typically called from init() in backend packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    xd2d.RegisterDevice("soft", func(cfg xd2d.DeviceConfig) (xd2d.Device, error) {
//	        return New(cfg), nil
//	    })
//	}
//
// RegisterDevice panics if factory is nil or the name is already taken.
func RegisterDevice(name string, factory DeviceFactory) {
	devicesMu.Lock()
	defer devicesMu.Unlock()

	if factory == nil {
		panic("xd2d: RegisterDevice factory is nil")
	}
	if _, dup := devices[name]; dup {
		panic("xd2d: RegisterDevice called twice for " + name)
	}
	devices[name] = factory
}

// UnregisterDevice removes a device from the registry.
// This is primarily useful for testing to clean up between tests.
func UnregisterDevice(name string) {
	devicesMu.Lock()
	defer devicesMu.Unlock()
	delete(devices, name)
}

// NewDevice creates a device by registered name.
//
// Example:
//
//	import _ "github.com/gogpu/xd2d/backend/soft" // Register software device
//
//	dev, err := xd2d.NewDevice("soft", xd2d.DefaultDeviceConfig())
func NewDevice(name string, cfg DeviceConfig) (Device, error) {
	devicesMu.RLock()
	factory, ok := devices[name]
	devicesMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownDevice, name)
	}
	dev, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("xd2d: create device %q: %w", name, err)
	}
	Logger().Info("xd2d: device created", "device", name, "width", cfg.Width, "height", cfg.Height)
	return dev, nil
}

// Devices returns the sorted names of all registered devices.
func Devices() []string {
	devicesMu.RLock()
	defer devicesMu.RUnlock()

	names := make([]string, 0, len(devices))
	for name := range devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsDeviceRegistered checks if a device with the given name is registered.
func IsDeviceRegistered(name string) bool {
	devicesMu.RLock()
	defer devicesMu.RUnlock()
	_, ok := devices[name]
	return ok
}
