// Package xd2d is an immediate-mode 2D rendering core.
//
// # Overview
//
// An application records draw calls every frame into a Painter. The Painter
// turns them into a compact command list (clear, clip, draw) plus a single
// interleaved vertex buffer already transformed into device space. A Device
// then executes the frame: the software device in backend/soft rasterizes
// it into an image, the GPU device in backend/hal drives gogpu/wgpu.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/xd2d"
//	    _ "github.com/gogpu/xd2d/backend/soft"
//	)
//
//	dev, _ := xd2d.NewDevice("soft", xd2d.DefaultDeviceConfig())
//	_ = dev.Init(ctx)
//
//	p := xd2d.NewPainter()
//	p.Begin(800, 600)
//	p.Clear(xd2d.Black)
//	p.FilledRect(xd2d.R(10, 10, 100, 50))
//
//	_ = dev.ConfigureRenderState(xd2d.DefaultRenderState())
//	_ = dev.Submit(ctx, p.View())
//
// The app package wraps this loop together with a window.
//
// # Coordinate System
//
// Geometry is given in logical pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Begin installs a projection that maps [0,width]x[0,height] onto device
// space [-1,1]x[1,-1], with Y flipped. SetTransform inserts a caller
// transform before the projection.
//
// # Frames
//
// There is no explicit end of frame. A frame is complete when the caller
// hands it to a device; the next Begin discards it. Draw commands address
// vertices by offset and count only, so every range must be in bounds when
// the frame is submitted (see Frame.Validate).
package xd2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
