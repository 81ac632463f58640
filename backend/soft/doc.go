// Package soft provides a CPU device that rasterizes xd2d frames into an
// *image.RGBA.
//
// The device is registered as "soft" on import:
//
//	import _ "github.com/gogpu/xd2d/backend/soft"
//
//	dev, err := xd2d.NewDevice("soft", xd2d.DefaultDeviceConfig())
//
// Geometry is filled with DeviceConfig.Fill using source-over blending, the
// only blend mode the device supports. Triangles are rasterized with
// golang.org/x/image/vector; points and lines are widened to one pixel.
// Clip commands are honored as a pixel scissor and Clear fills the current
// scissor region.
//
// The rendered image is available through Image after every Submit and is
// what the headless and terminal windows present.
package soft
