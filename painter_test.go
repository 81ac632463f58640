package xd2d

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestPainter_IdlePanics(t *testing.T) {
	ops := []struct {
		name string
		fn   func(p *Painter)
	}{
		{"Clear", func(p *Painter) { p.Clear(Black) }},
		{"Clip", func(p *Painter) { p.Clip(R(0, 0, 1, 1)) }},
		{"QueueDraw", func(p *Painter) { p.QueueDraw(Triangles, 0, 0) }},
		{"AllocateVertices", func(p *Painter) { p.AllocateVertices(3) }},
		{"PushVertices", func(p *Painter) { p.PushVertices(Points, []Vertex{{}}) }},
		{"FilledRect", func(p *Painter) { p.FilledRect(R(0, 0, 1, 1)) }},
		{"FilledRects", func(p *Painter) { p.FilledRects(nil) }},
		{"SetTransform", func(p *Painter) { p.SetTransform(Identity()) }},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			p := NewPainter()
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("%s on idle painter did not panic", op.name)
				}
				if msg, _ := r.(string); !strings.Contains(msg, "before Begin") {
					t.Errorf("panic = %v, want message about Begin", r)
				}
			}()
			op.fn(p)
		})
	}
}

func TestPainter_BeginPanicsOnEmptySize(t *testing.T) {
	for _, s := range [][2]int{{0, 600}, {800, 0}, {-1, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Begin(%d, %d) did not panic", s[0], s[1])
				}
			}()
			NewPainter().Begin(s[0], s[1])
		}()
	}
}

func TestPainter_BeginResets(t *testing.T) {
	p := NewPainter(WithCommandCapacity(4), WithVertexCapacity(12))
	if p.Recording() {
		t.Fatal("new painter reports Recording")
	}

	p.Begin(800, 600)
	if !p.Recording() {
		t.Fatal("Recording() = false after Begin")
	}
	p.SetTransform(Translate(5, 5))
	p.Clear(Black)
	p.FilledRects(make([]Rect, 10))
	vcap := cap(p.Vertices())
	ccap := cap(p.Commands())

	p.Begin(1024, 768)
	if len(p.Commands()) != 0 || len(p.Vertices()) != 0 {
		t.Errorf("Begin left %d commands, %d vertices", len(p.Commands()), len(p.Vertices()))
	}
	if cap(p.Vertices()) != vcap || cap(p.Commands()) != ccap {
		t.Errorf("Begin changed capacity: vertices %d -> %d, commands %d -> %d",
			vcap, cap(p.Vertices()), ccap, cap(p.Commands()))
	}
	if !p.Transform().IsIdentity() {
		t.Errorf("Begin kept transform %v", p.Transform())
	}
	if w, h := p.Size(); w != 1024 || h != 768 {
		t.Errorf("Size() = %dx%d", w, h)
	}
	if p.Projection() != DefaultProj(1024, 768) {
		t.Errorf("Projection() = %v", p.Projection())
	}
	if p.MVP() != p.Projection() {
		t.Errorf("MVP() = %v, want projection %v", p.MVP(), p.Projection())
	}
}

func TestPainter_FilledRectEndToEnd(t *testing.T) {
	p := NewPainter()
	p.Begin(800, 600)
	p.FilledRect(R(10, 10, 100, 50))

	vs := p.Vertices()
	if len(vs) != 6 {
		t.Fatalf("len(Vertices()) = %d, want 6", len(vs))
	}
	for i, v := range vs {
		if v.Position.X < -1 || v.Position.X > 1 || v.Position.Y < -1 || v.Position.Y > 1 {
			t.Errorf("vertex %d = %v outside device space", i, v.Position)
		}
	}

	want := []Command{DrawCommand{Primitive: Triangles, VertexOffset: 0, VertexCount: 6}}
	if !reflect.DeepEqual(p.Commands(), want) {
		t.Errorf("Commands() = %v, want %v", p.Commands(), want)
	}

	proj := DefaultProj(800, 600)
	bl := proj.MulVec2(V2(10, 60))
	br := proj.MulVec2(V2(110, 60))
	tr := proj.MulVec2(V2(110, 10))
	tl := proj.MulVec2(V2(10, 10))
	wantPos := []Vec2{bl, br, tr, tl, bl, tr}
	wantTex := []Vec2{V2(0, 1), V2(1, 1), V2(1, 0), V2(0, 0), V2(0, 1), V2(1, 0)}
	for i := range vs {
		if !vs[i].Position.Approx(wantPos[i], 1e-6) {
			t.Errorf("vertex %d position = %v, want %v", i, vs[i].Position, wantPos[i])
		}
		if vs[i].Texcoord != wantTex[i] {
			t.Errorf("vertex %d texcoord = %v, want %v", i, vs[i].Texcoord, wantTex[i])
		}
	}

	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestPainter_FilledRectsEmpty(t *testing.T) {
	p := NewPainter()
	p.Begin(100, 100)
	p.FilledRects(nil)
	p.FilledRects([]Rect{})
	if len(p.Commands()) != 0 || len(p.Vertices()) != 0 {
		t.Errorf("empty FilledRects recorded %d commands, %d vertices", len(p.Commands()), len(p.Vertices()))
	}
}

func TestPainter_FilledRectsMatchesFilledRect(t *testing.T) {
	r := R(3, 4, 5, 6)

	a := NewPainter()
	a.Begin(64, 64)
	a.FilledRect(r)

	b := NewPainter()
	b.Begin(64, 64)
	b.FilledRects([]Rect{r})

	if !reflect.DeepEqual(a.Frame(), b.Frame()) {
		t.Errorf("FilledRect and FilledRects differ:\n%+v\n%+v", a.Frame(), b.Frame())
	}
}

func TestPainter_FilledRectsBatch(t *testing.T) {
	p := NewPainter()
	p.Begin(200, 200)

	// existing vertices move the base of the batch
	p.PushVertices(Points, []Vertex{{Position: V2(1, 1)}, {Position: V2(2, 2)}})

	rects := []Rect{R(0, 0, 10, 10), R(20, 20, 10, 10), R(40, 0, 5, 5)}
	p.FilledRects(rects)

	cmds := p.Commands()
	if len(cmds) != 2 {
		t.Fatalf("len(Commands()) = %d, want 2", len(cmds))
	}
	d, ok := cmds[1].(DrawCommand)
	if !ok {
		t.Fatalf("Commands()[1] = %T, want DrawCommand", cmds[1])
	}
	if d != (DrawCommand{Primitive: Triangles, VertexOffset: 2, VertexCount: 18}) {
		t.Errorf("batch draw = %+v", d)
	}

	// rect i occupies base+6i .. base+6i+5
	for i, r := range rects {
		single := NewPainter()
		single.Begin(200, 200)
		single.FilledRect(r)
		got := p.Vertices()[2+6*i : 2+6*i+6]
		if !reflect.DeepEqual(got, single.Vertices()) {
			t.Errorf("rect %d vertices = %v, want %v", i, got, single.Vertices())
		}
	}
}

func TestPainter_SetTransformAffectsLaterGeometry(t *testing.T) {
	p := NewPainter()
	p.Begin(100, 100)

	p.FilledRect(R(0, 0, 10, 10))
	before := append([]Vertex(nil), p.Vertices()...)

	p.SetTransform(Translate(50, 50))
	p.FilledRect(R(0, 0, 10, 10))

	if !reflect.DeepEqual(p.Vertices()[:6], before) {
		t.Error("SetTransform changed already recorded vertices")
	}

	// (0,0) translated to (50,50) is the center of a 100x100 frame
	tl := p.Vertices()[6+3].Position
	if !tl.Approx(V2(0, 0), 1e-6) {
		t.Errorf("translated top-left = %v, want [0 0]", tl)
	}
	if got := p.MVP().MulVec2(V2(50, 50)); !got.Approx(V2(1, -1), 1e-6) {
		t.Errorf("MVP() maps (50, 50) to %v, want [1 -1]", got)
	}
}

func TestPainter_CommandOrder(t *testing.T) {
	p := NewPainter()
	p.Begin(100, 100)
	p.Clear(Black)
	p.Clip(R(10, 10, 20, 20))
	p.FilledRect(R(0, 0, 5, 5))
	p.Clear(Red)

	var got []CommandType
	for _, c := range p.Commands() {
		got = append(got, c.Type())
	}
	want := []CommandType{CmdClear, CmdClip, CmdDraw, CmdClear}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("command types = %v, want %v", got, want)
	}
	if c := p.Commands()[1].(ClipCommand); c.Rect != R(10, 10, 20, 20) {
		t.Errorf("clip rect = %v", c.Rect)
	}
}

func TestPainter_QueueDrawBeforeVertices(t *testing.T) {
	p := NewPainter()
	p.Begin(100, 100)

	p.QueueDraw(TriangleStrip, 0, 4)
	if err := p.Validate(); !errors.Is(err, ErrVertexRange) {
		t.Fatalf("Validate() = %v, want ErrVertexRange", err)
	}

	vs := p.AllocateVertices(4)
	for i := range vs {
		vs[i].Position = V2(float32(i%2), float32(i/2))
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() after allocation = %v", err)
	}
}

func TestPainter_QueueDrawPanics(t *testing.T) {
	tests := []struct {
		name          string
		prim          PrimitiveType
		offset, count int
	}{
		{"invalid primitive", PrimitiveType(9), 0, 3},
		{"negative offset", Triangles, -1, 3},
		{"negative count", Triangles, 0, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPainter()
			p.Begin(10, 10)
			defer func() {
				if recover() == nil {
					t.Error("QueueDraw did not panic")
				}
			}()
			p.QueueDraw(tt.prim, tt.offset, tt.count)
		})
	}
}

func TestPainter_AllocateVertices(t *testing.T) {
	p := NewPainter(WithVertexCapacity(0))
	p.Begin(10, 10)

	a := p.AllocateVertices(3)
	if len(a) != 3 || cap(a) != 3 {
		t.Fatalf("AllocateVertices(3) len=%d cap=%d", len(a), cap(a))
	}
	a[0].Position = V2(1, 2)

	b := p.AllocateVertices(2)
	for i, v := range b {
		if v != (Vertex{}) {
			t.Errorf("vertex %d not zeroed: %v", i, v)
		}
	}
	if len(p.Vertices()) != 5 {
		t.Errorf("len(Vertices()) = %d, want 5", len(p.Vertices()))
	}
	if p.Vertices()[0].Position != V2(1, 2) {
		t.Errorf("first vertex = %v", p.Vertices()[0])
	}
	if got := p.AllocateVertices(0); len(got) != 0 {
		t.Errorf("AllocateVertices(0) returned %d vertices", len(got))
	}
}

func TestPainter_PushVertices(t *testing.T) {
	p := NewPainter()
	p.Begin(100, 100)
	p.PushVertices(LineStrip, nil)
	if len(p.Commands()) != 0 {
		t.Fatalf("empty PushVertices recorded %d commands", len(p.Commands()))
	}

	in := []Vertex{
		{Position: V2(0, 0), Texcoord: V2(0, 0)},
		{Position: V2(100, 100), Texcoord: V2(1, 1)},
	}
	p.PushVertices(Lines, in)

	want := []Command{DrawCommand{Primitive: Lines, VertexOffset: 0, VertexCount: 2}}
	if !reflect.DeepEqual(p.Commands(), want) {
		t.Errorf("Commands() = %v, want %v", p.Commands(), want)
	}
	if got := p.Vertices()[0].Position; !got.Approx(V2(-1, 1), 1e-6) {
		t.Errorf("first vertex = %v, want [-1 1]", got)
	}
	if got := p.Vertices()[1]; !got.Position.Approx(V2(1, -1), 1e-6) || got.Texcoord != V2(1, 1) {
		t.Errorf("second vertex = %v", got)
	}
	if in[1].Position != V2(100, 100) {
		t.Error("PushVertices modified its input")
	}
}

func TestPainter_FrameIsCopy(t *testing.T) {
	p := NewPainter()
	p.Begin(100, 50)
	p.Clear(Blue)
	p.FilledRect(R(0, 0, 10, 10))

	f := p.Frame()
	view := p.View()
	if f.Width != 100 || f.Height != 50 {
		t.Errorf("Frame size = %dx%d", f.Width, f.Height)
	}
	if !reflect.DeepEqual(f, view) {
		t.Errorf("Frame() = %+v, View() = %+v", f, view)
	}

	p.Begin(100, 50)
	p.FilledRect(R(50, 20, 10, 10))

	if len(f.Commands) != 2 || len(f.Vertices) != 6 {
		t.Fatalf("Frame() changed after Begin: %d commands, %d vertices", len(f.Commands), len(f.Vertices))
	}
	if f.Commands[0] != (ClearCommand{Color: Blue}) {
		t.Errorf("Frame().Commands[0] = %v", f.Commands[0])
	}
	if f.Vertices[0] == p.Vertices()[0] {
		t.Error("Frame() shares vertex storage with the painter")
	}
}

func BenchmarkPainter_FilledRects(b *testing.B) {
	rects := make([]Rect, 1000)
	for i := range rects {
		rects[i] = R(float32(i%40)*20, float32(i/40)*20, 18, 18)
	}
	p := NewPainter()
	b.ReportAllocs()
	for b.Loop() {
		p.Begin(800, 600)
		p.FilledRects(rects)
	}
}
