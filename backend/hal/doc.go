// Package hal provides a GPU device that executes xd2d frames through the
// gogpu/wgpu hardware abstraction layer.
//
// The device is registered as "hal" on import:
//
//	import _ "github.com/gogpu/xd2d/backend/hal"
//
//	cfg := xd2d.DefaultDeviceConfig()
//	cfg.Backend = "vulkan"
//	dev, err := xd2d.NewDevice("hal", cfg)
//
// # Backends
//
// DeviceConfig.Backend selects the HAL backend. The default "noop" backend
// accepts every call and renders nothing, which makes it suitable for tests
// and for measuring recording overhead. "software" selects the CPU
// reference backend. Any other name is matched against the registered HAL
// backends (for example "vulkan" once the Vulkan backend is imported).
//
// # Rendering
//
// Each frame's vertex buffer is uploaded once. A WGSL fill shader, compiled
// to SPIR-V with naga, passes device-space positions through and writes
// DeviceConfig.Fill. There is one render pipeline per primitive type built
// from the configured xd2d.RenderState. Clip commands set the scissor rect.
// A Clear covering the whole target starts a render pass with a clear load
// op; a scissored Clear draws a full-target quad without blending.
// Every color lives in its own uniform buffer bound at offset zero.
//
// The target is BGRA8Unorm, except on the software backend which only
// composites draws correctly into RGBA8Unorm.
//
// After every Submit the target texture is copied back and is available as
// an image through Image.
package hal
