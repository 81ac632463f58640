package xd2d

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexSize is the size in bytes of one packed Vertex: position (2x float32)
// followed by texcoord (2x float32), no padding.
const VertexSize = 16

// Vertex is one entry of a frame's interleaved vertex buffer.
// Position is in device space; Texcoord is the unit-square coordinate of the
// corner the vertex was generated from.
type Vertex struct {
	Position Vec2
	Texcoord Vec2
}

// VertexBufferLayout describes Vertex to a GPU pipeline:
// location 0 is the position, location 1 the texcoord.
func VertexBufferLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexSize,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // texcoord
		},
	}
}

// AppendVertexBytes appends the little-endian packed form of vs to dst.
func AppendVertexBytes(dst []byte, vs []Vertex) []byte {
	for _, v := range vs {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.Position.X))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.Position.Y))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.Texcoord.X))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.Texcoord.Y))
	}
	return dst
}
