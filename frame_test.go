package xd2d

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// recordingTarget logs every playback call.
type recordingTarget struct {
	calls    []string
	beginErr error
}

func (r *recordingTarget) Begin(w, h int) error {
	r.calls = append(r.calls, fmt.Sprintf("begin %dx%d", w, h))
	return r.beginErr
}

func (r *recordingTarget) Clear(c Color) {
	r.calls = append(r.calls, "clear "+c.String())
}

func (r *recordingTarget) Clip(rect Rect) {
	r.calls = append(r.calls, "clip "+rect.String())
}

func (r *recordingTarget) Draw(d DrawCommand, vs []Vertex) {
	r.calls = append(r.calls, fmt.Sprintf("draw %v %d", d.Primitive, len(vs)))
}

func (r *recordingTarget) End() error {
	r.calls = append(r.calls, "end")
	return nil
}

func TestFrame_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmds    []Command
		verts   int
		wantErr error
	}{
		{"empty", nil, 0, nil},
		{"clear only", []Command{ClearCommand{}}, 0, nil},
		{"in bounds", []Command{DrawCommand{Primitive: Triangles, VertexOffset: 0, VertexCount: 6}}, 6, nil},
		{"zero count at end", []Command{DrawCommand{Primitive: Points, VertexOffset: 6, VertexCount: 0}}, 6, nil},
		{"past end", []Command{DrawCommand{Primitive: Triangles, VertexOffset: 3, VertexCount: 6}}, 6, ErrVertexRange},
		{"offset past end", []Command{DrawCommand{Primitive: Points, VertexOffset: 7, VertexCount: 0}}, 6, ErrVertexRange},
		{"bad primitive", []Command{DrawCommand{Primitive: PrimitiveType(42), VertexCount: 1}}, 6, ErrInvalidPrimitive},
		{"overflow", []Command{DrawCommand{Primitive: Lines, VertexOffset: ^uint32(0), VertexCount: 2}}, 6, ErrVertexRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Frame{Width: 10, Height: 10, Commands: tt.cmds, Vertices: make([]Vertex, tt.verts)}
			err := f.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFrame_MustValidatePanics(t *testing.T) {
	f := &Frame{Commands: []Command{DrawCommand{VertexCount: 3}}}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrVertexRange) {
			t.Errorf("MustValidate() panicked with %v, want ErrVertexRange", r)
		}
	}()
	f.MustValidate()
}

func TestFrame_Playback(t *testing.T) {
	p := NewPainter()
	p.Begin(64, 32)
	p.Clear(Black)
	p.Clip(R(0, 0, 16, 16))
	p.FilledRects([]Rect{R(0, 0, 4, 4), R(8, 8, 4, 4)})
	p.PushVertices(LineStrip, make([]Vertex, 3))

	var target recordingTarget
	if err := p.View().Playback(&target); err != nil {
		t.Fatalf("Playback() = %v", err)
	}

	want := []string{
		"begin 64x32",
		"clear #000000ff",
		"clip " + R(0, 0, 16, 16).String(),
		"draw Triangles 12",
		"draw LineStrip 3",
		"end",
	}
	if !reflect.DeepEqual(target.calls, want) {
		t.Errorf("Playback calls = %q, want %q", target.calls, want)
	}
}

func TestFrame_PlaybackBeginError(t *testing.T) {
	errBegin := errors.New("no surface")
	target := recordingTarget{beginErr: errBegin}
	f := &Frame{Width: 1, Height: 1, Commands: []Command{ClearCommand{}}}

	if err := f.Playback(&target); !errors.Is(err, errBegin) {
		t.Errorf("Playback() = %v, want %v", err, errBegin)
	}
	if len(target.calls) != 1 {
		t.Errorf("commands replayed after Begin failed: %q", target.calls)
	}
}

func TestFrame_DrawVertices(t *testing.T) {
	vs := make([]Vertex, 10)
	for i := range vs {
		vs[i].Position = V2(float32(i), 0)
	}
	f := &Frame{Vertices: vs}
	got := f.DrawVertices(DrawCommand{VertexOffset: 4, VertexCount: 3})
	if len(got) != 3 || got[0].Position.X != 4 || got[2].Position.X != 6 {
		t.Errorf("DrawVertices() = %v", got)
	}
}
