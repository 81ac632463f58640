package xd2d

import (
	"errors"
	"fmt"
)

var (
	// ErrVertexRange is reported when a draw command references vertices
	// beyond the end of the frame's vertex buffer.
	ErrVertexRange = errors.New("xd2d: draw command vertex range out of bounds")

	// ErrInvalidPrimitive is reported when a draw command carries a
	// primitive type outside the defined set.
	ErrInvalidPrimitive = errors.New("xd2d: invalid primitive type")
)

// Frame is a fully recorded frame: the ordered command list and the vertex
// buffer every draw command indexes into. A Frame returned by
// Painter.Frame owns its slices and may be handed to another goroutine.
type Frame struct {
	Width, Height int
	Commands      []Command
	Vertices      []Vertex
}

// Validate checks that every draw command references an in-bounds vertex
// range with a valid primitive type. It returns the first violation found.
func (f *Frame) Validate() error {
	n := uint64(len(f.Vertices))
	for i, cmd := range f.Commands {
		d, ok := cmd.(DrawCommand)
		if !ok {
			continue
		}
		if !d.Primitive.Valid() {
			return fmt.Errorf("command %d: %w: %v", i, ErrInvalidPrimitive, d.Primitive)
		}
		if d.End() > n {
			return fmt.Errorf("command %d: %w: [%d, %d) with %d vertices",
				i, ErrVertexRange, d.VertexOffset, d.End(), n)
		}
	}
	return nil
}

// MustValidate panics if Validate reports an error. Devices call it before
// executing a frame: an out-of-bounds draw is a programming error.
func (f *Frame) MustValidate() {
	if err := f.Validate(); err != nil {
		panic(err)
	}
}

// DrawVertices returns the vertices referenced by d. d must be in bounds.
func (f *Frame) DrawVertices(d DrawCommand) []Vertex {
	return f.Vertices[d.VertexOffset:d.End()]
}

// Target receives a frame's commands in recording order.
type Target interface {
	// Begin is called once before the first command.
	Begin(width, height int) error

	// Clear fills the current scissor region.
	Clear(c Color)

	// Clip replaces the scissor rectangle.
	Clip(r Rect)

	// Draw draws the vertex range of d. vertices is f.DrawVertices(d).
	Draw(d DrawCommand, vertices []Vertex)

	// End is called once after the last command.
	End() error
}

// Playback validates the frame, then replays its commands to t in order.
// It panics on an invalid frame.
func (f *Frame) Playback(t Target) error {
	f.MustValidate()

	if err := t.Begin(f.Width, f.Height); err != nil {
		return err
	}

	for _, cmd := range f.Commands {
		switch c := cmd.(type) {
		case ClearCommand:
			t.Clear(c.Color)
		case ClipCommand:
			t.Clip(c.Rect)
		case DrawCommand:
			t.Draw(c, f.DrawVertices(c))
		}
	}

	return t.End()
}
