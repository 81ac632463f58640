package xd2d

import (
	"fmt"
	"math"
	"slices"
)

// Painter records one frame at a time into a command list and a single
// interleaved vertex buffer.
//
// A Painter is Idle until the first Begin and Recording afterwards; there is
// no explicit end. Every drawing method panics while Idle. A Painter must not
// be used from more than one goroutine at a time; hand a finished frame to
// another goroutine with Frame.
type Painter struct {
	recording     bool
	width, height int

	proj      Mat2x3
	transform Mat2x3
	mvp       Mat2x3

	commands []Command
	vertices []Vertex
}

// NewPainter creates an Idle painter.
func NewPainter(opts ...PainterOption) *Painter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Painter{
		proj:      Identity(),
		transform: Identity(),
		mvp:       Identity(),
		commands:  make([]Command, 0, o.commands),
		vertices:  make([]Vertex, 0, o.vertices),
	}
}

// Begin starts a new frame of width x height device pixels.
//
// It empties the command list and vertex buffer (keeping their capacity),
// recomputes the projection, resets the caller transform to identity and
// puts the painter in the Recording state. Begin panics if width or height
// is not positive.
func (p *Painter) Begin(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("xd2d: Painter.Begin requires positive size, got %dx%d", width, height))
	}
	if width != p.width || height != p.height {
		Logger().Debug("xd2d: painter size changed", "width", width, "height", height)
	}

	p.recording = true
	p.width, p.height = width, height
	p.commands = p.commands[:0]
	p.vertices = p.vertices[:0]

	p.proj = DefaultProj(float32(width), float32(height))
	p.transform = Identity()
	p.mvp = p.proj.MulTransform(p.transform)
}

// Recording reports whether Begin has been called.
func (p *Painter) Recording() bool { return p.recording }

// Size returns the dimensions passed to the last Begin.
func (p *Painter) Size() (width, height int) { return p.width, p.height }

// Projection returns the logical-to-device projection of the current frame.
func (p *Painter) Projection() Mat2x3 { return p.proj }

// Transform returns the caller transform.
func (p *Painter) Transform() Mat2x3 { return p.transform }

// MVP returns the combined transform applied to recorded geometry:
// the projection composed with the caller transform.
func (p *Painter) MVP() Mat2x3 { return p.mvp }

// SetTransform replaces the caller transform. Geometry recorded afterwards
// is transformed by t, then projected; geometry already recorded is not
// affected.
func (p *Painter) SetTransform(t Mat2x3) {
	p.mustRecord("SetTransform")
	p.transform = t
	p.mvp = p.proj.MulTransform(t)
}

// Clear appends a command that fills the current scissor region with c.
func (p *Painter) Clear(c Color) {
	p.mustRecord("Clear")
	p.commands = append(p.commands, ClearCommand{Color: c})
}

// Clip appends a command that restricts subsequent draws to r, given in
// logical pixels, until the next Clip.
func (p *Painter) Clip(r Rect) {
	p.mustRecord("Clip")
	p.commands = append(p.commands, ClipCommand{Rect: r})
}

// QueueDraw appends a draw command for count vertices starting at offset.
//
// The range is not checked against the vertex buffer here, since vertices
// may be allocated after the command is queued; Frame.Validate checks it at
// submission. QueueDraw panics on an undefined primitive type or a negative
// or oversized range.
func (p *Painter) QueueDraw(prim PrimitiveType, offset, count int) {
	p.mustRecord("QueueDraw")
	if !prim.Valid() {
		panic(fmt.Sprintf("xd2d: QueueDraw: %v", prim))
	}
	if offset < 0 || count < 0 || uint64(offset) > math.MaxUint32 || uint64(count) > math.MaxUint32 {
		panic(fmt.Sprintf("xd2d: QueueDraw: invalid vertex range offset=%d count=%d", offset, count))
	}
	p.commands = append(p.commands, DrawCommand{
		Primitive:    prim,
		VertexOffset: uint32(offset),
		VertexCount:  uint32(count),
	})
}

// AllocateVertices appends n zeroed vertices and returns them for the caller
// to fill. The returned slice aliases the vertex buffer and is only valid
// until the next call that appends vertices.
func (p *Painter) AllocateVertices(n int) []Vertex {
	p.mustRecord("AllocateVertices")
	if n < 0 {
		panic(fmt.Sprintf("xd2d: AllocateVertices: negative count %d", n))
	}
	start := len(p.vertices)
	p.vertices = slices.Grow(p.vertices, n)[:start+n]
	vs := p.vertices[start : start+n : start+n]
	clear(vs)
	return vs
}

// PushVertices appends vs with positions given in logical pixels,
// transforms them by the current MVP and queues one draw command covering
// them. An empty vs records nothing.
func (p *Painter) PushVertices(prim PrimitiveType, vs []Vertex) {
	p.mustRecord("PushVertices")
	if len(vs) == 0 {
		return
	}
	base := len(p.vertices)
	dst := p.AllocateVertices(len(vs))
	for i, v := range vs {
		dst[i] = Vertex{Position: p.mvp.MulVec2(v.Position), Texcoord: v.Texcoord}
	}
	p.QueueDraw(prim, base, len(vs))
}

// unit-square texture coordinates per quad corner
var (
	texBL = Vec2{X: 0, Y: 1}
	texBR = Vec2{X: 1, Y: 1}
	texTR = Vec2{X: 1, Y: 0}
	texTL = Vec2{X: 0, Y: 0}
)

// FilledRects records every rectangle as two triangles and queues a single
// Triangles draw spanning all of them.
//
// Rectangle i occupies vertices base+6i to base+6i+5 in the order
// bottom-left, bottom-right, top-right, top-left, bottom-left, top-right,
// where bottom is the larger logical Y. An empty rects records nothing.
func (p *Painter) FilledRects(rects []Rect) {
	p.mustRecord("FilledRects")
	if len(rects) == 0 {
		return
	}

	base := len(p.vertices)
	vs := p.AllocateVertices(6 * len(rects))
	m := p.mvp
	for i, r := range rects {
		x0, y0 := r.X, r.Y
		x1, y1 := r.X+r.W, r.Y+r.H

		bl := Vertex{Position: m.MulVec2(Vec2{X: x0, Y: y1}), Texcoord: texBL}
		br := Vertex{Position: m.MulVec2(Vec2{X: x1, Y: y1}), Texcoord: texBR}
		tr := Vertex{Position: m.MulVec2(Vec2{X: x1, Y: y0}), Texcoord: texTR}
		tl := Vertex{Position: m.MulVec2(Vec2{X: x0, Y: y0}), Texcoord: texTL}

		q := vs[6*i : 6*i+6]
		q[0], q[1], q[2] = bl, br, tr
		q[3], q[4], q[5] = tl, bl, tr
	}
	p.QueueDraw(Triangles, base, 6*len(rects))
}

// FilledRect records a single rectangle. It is FilledRects with one element.
func (p *Painter) FilledRect(r Rect) {
	p.FilledRects([]Rect{r})
}

// Commands returns the commands recorded so far. The slice is owned by the
// painter and is reused by the next Begin.
func (p *Painter) Commands() []Command { return p.commands }

// Vertices returns the vertices recorded so far. The slice is owned by the
// painter and is reused by the next Begin.
func (p *Painter) Vertices() []Vertex { return p.vertices }

// View returns the current frame without copying. It shares the painter's
// buffers and is only valid until the next Begin.
func (p *Painter) View() *Frame {
	return &Frame{
		Width:    p.width,
		Height:   p.height,
		Commands: p.commands,
		Vertices: p.vertices,
	}
}

// Frame returns a copy of the current frame that the caller owns.
func (p *Painter) Frame() *Frame {
	f := &Frame{
		Width:    p.width,
		Height:   p.height,
		Commands: make([]Command, len(p.commands)),
		Vertices: make([]Vertex, len(p.vertices)),
	}
	copy(f.Commands, p.commands)
	copy(f.Vertices, p.vertices)
	return f
}

// Validate checks the current frame. See Frame.Validate.
func (p *Painter) Validate() error {
	return p.View().Validate()
}

func (p *Painter) mustRecord(op string) {
	if !p.recording {
		panic("xd2d: Painter." + op + " called before Begin")
	}
}
