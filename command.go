package xd2d

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// PrimitiveType selects how a draw command assembles its vertex range.
// The set is closed: only the constants below are valid.
type PrimitiveType uint8

const (
	Triangles     PrimitiveType = iota // every 3 vertices form a triangle
	Points                             // every vertex is a point
	Lines                              // every 2 vertices form a segment
	TriangleStrip                      // each vertex after the second closes a triangle
	LineStrip                          // consecutive vertices are joined by segments

	numPrimitiveTypes
)

var primitiveTypeNames = [...]string{
	Triangles:     "Triangles",
	Points:        "Points",
	Lines:         "Lines",
	TriangleStrip: "TriangleStrip",
	LineStrip:     "LineStrip",
}

// String returns the string representation of a PrimitiveType.
func (p PrimitiveType) String() string {
	if p.Valid() {
		return primitiveTypeNames[p]
	}
	return fmt.Sprintf("PrimitiveType(%d)", uint8(p))
}

// Valid reports whether p is one of the defined primitive types.
func (p PrimitiveType) Valid() bool {
	return p < numPrimitiveTypes
}

// Topology returns the GPU primitive topology for p.
func (p PrimitiveType) Topology() gputypes.PrimitiveTopology {
	switch p {
	case Points:
		return gputypes.PrimitiveTopologyPointList
	case Lines:
		return gputypes.PrimitiveTopologyLineList
	case TriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip
	case LineStrip:
		return gputypes.PrimitiveTopologyLineStrip
	}
	return gputypes.PrimitiveTopologyTriangleList
}

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear CommandType = iota // Clear the viewport to a color
	CmdClip                     // Scissor subsequent draws to a rectangle
	CmdDraw                     // Draw a contiguous vertex range
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear: "Clear",
	CmdClip:  "Clip",
	CmdDraw:  "Draw",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded rendering operation. The set of commands is
// closed: ClearCommand, ClipCommand and DrawCommand.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	command()
}

// ClearCommand fills the current scissor region with Color.
type ClearCommand struct {
	Color Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }
func (ClearCommand) command()          {}

// ClipCommand scopes subsequent draws to Rect, in logical pixels, until the
// next ClipCommand or the end of the frame.
type ClipCommand struct {
	Rect Rect
}

// Type implements Command.
func (ClipCommand) Type() CommandType { return CmdClip }
func (ClipCommand) command()          {}

// DrawCommand draws VertexCount vertices starting at VertexOffset in the
// frame's vertex buffer.
type DrawCommand struct {
	Primitive    PrimitiveType
	VertexOffset uint32
	VertexCount  uint32
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDraw }
func (DrawCommand) command()          {}

// End returns the index one past the last vertex referenced by d.
func (d DrawCommand) End() uint64 {
	return uint64(d.VertexOffset) + uint64(d.VertexCount)
}
