package soft

import (
	"math"

	"github.com/gogpu/xd2d"
)

// pt is a point in scissor-local pixel space.
type pt struct{ x, y float32 }

// halfWidth is half the pixel footprint of points and lines.
const halfWidth = 0.5

// guard is how far outside the scissor geometry is kept after clipping.
const guard = 1

// pather converts device-space vertices into rasterizer paths local to the
// current scissor rectangle.
type pather struct {
	d      *Device
	w, h   float32 // render target size in pixels
	origin pt      // scissor min in target pixels
	size   pt      // scissor size in pixels
}

// toLocal maps a device-space position to scissor-local pixels.
// Device Y points up; pixel Y points down.
func (p *pather) toLocal(v xd2d.Vec2) pt {
	return pt{
		x: (v.X+1)*0.5*p.w - p.origin.x,
		y: (1-v.Y)*0.5*p.h - p.origin.y,
	}
}

// addPrimitives adds every primitive of prim assembled from vs and returns
// the number of polygons that reached the rasterizer.
func (p *pather) addPrimitives(prim xd2d.PrimitiveType, vs []xd2d.Vertex) int {
	n := 0
	switch prim {
	case xd2d.Triangles:
		for i := 0; i+2 < len(vs); i += 3 {
			n += p.triangle(vs[i].Position, vs[i+1].Position, vs[i+2].Position)
		}
	case xd2d.TriangleStrip:
		for i := 0; i+2 < len(vs); i++ {
			n += p.triangle(vs[i].Position, vs[i+1].Position, vs[i+2].Position)
		}
	case xd2d.Points:
		for _, v := range vs {
			n += p.point(v.Position)
		}
	case xd2d.Lines:
		for i := 0; i+1 < len(vs); i += 2 {
			n += p.line(vs[i].Position, vs[i+1].Position)
		}
	case xd2d.LineStrip:
		for i := 0; i+1 < len(vs); i++ {
			n += p.line(vs[i].Position, vs[i+1].Position)
		}
	}
	return n
}

func (p *pather) triangle(a, b, c xd2d.Vec2) int {
	return p.polygon(p.toLocal(a), p.toLocal(b), p.toLocal(c))
}

func (p *pather) point(v xd2d.Vec2) int {
	c := p.toLocal(v)
	return p.polygon(
		pt{c.x - halfWidth, c.y - halfWidth},
		pt{c.x + halfWidth, c.y - halfWidth},
		pt{c.x + halfWidth, c.y + halfWidth},
		pt{c.x - halfWidth, c.y + halfWidth},
	)
}

// line widens the segment ab to a one pixel wide quad. A zero-length
// segment draws nothing.
func (p *pather) line(a, b xd2d.Vec2) int {
	s, e := p.toLocal(a), p.toLocal(b)
	dx, dy := e.x-s.x, e.y-s.y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if !(l > 0) || math.IsInf(float64(l), 0) {
		return 0
	}
	nx, ny := -dy/l*halfWidth, dx/l*halfWidth
	return p.polygon(
		pt{s.x + nx, s.y + ny},
		pt{e.x + nx, e.y + ny},
		pt{e.x - nx, e.y - ny},
		pt{s.x - nx, s.y - ny},
	)
}

// polygon clips a convex polygon to the scissor (plus a guard band), orients
// it consistently and adds it to the rasterizer. Overlapping polygons of one
// draw therefore accumulate instead of cancelling. It returns 1 if anything
// was added.
func (p *pather) polygon(vs ...pt) int {
	for _, v := range vs {
		if !finite(v.x) || !finite(v.y) {
			return 0
		}
	}

	d := p.d
	d.poly = append(d.poly[:0], vs...)
	d.poly, d.tmp = clipPolygon(d.poly, d.tmp,
		pt{-guard, -guard}, pt{p.size.x + guard, p.size.y + guard})
	poly := d.poly
	if len(poly) < 3 {
		return 0
	}

	area := signedArea(poly)
	if area == 0 {
		return 0
	}

	ras := d.ras
	if area > 0 {
		ras.MoveTo(poly[0].x, poly[0].y)
		for _, v := range poly[1:] {
			ras.LineTo(v.x, v.y)
		}
	} else {
		last := len(poly) - 1
		ras.MoveTo(poly[last].x, poly[last].y)
		for i := last - 1; i >= 0; i-- {
			ras.LineTo(poly[i].x, poly[i].y)
		}
	}
	ras.ClosePath()
	return 1
}

func signedArea(poly []pt) float32 {
	var a float32
	for i, v := range poly {
		w := poly[(i+1)%len(poly)]
		a += v.x*w.y - w.x*v.y
	}
	return a / 2
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// clipPolygon clips poly against the axis-aligned box [lo, hi] one edge at a
// time (Sutherland-Hodgman). It returns the clipped polygon and the scratch
// buffer, both reusable by the next call.
func clipPolygon(poly, scratch []pt, lo, hi pt) ([]pt, []pt) {
	edges := [4]struct {
		inside func(pt) bool
		cross  func(a, b pt) pt
	}{
		{
			func(v pt) bool { return v.x >= lo.x },
			func(a, b pt) pt { return lerpX(a, b, lo.x) },
		},
		{
			func(v pt) bool { return v.x <= hi.x },
			func(a, b pt) pt { return lerpX(a, b, hi.x) },
		},
		{
			func(v pt) bool { return v.y >= lo.y },
			func(a, b pt) pt { return lerpY(a, b, lo.y) },
		},
		{
			func(v pt) bool { return v.y <= hi.y },
			func(a, b pt) pt { return lerpY(a, b, hi.y) },
		},
	}

	for _, e := range edges {
		if len(poly) == 0 {
			break
		}
		out := scratch[:0]
		prev := poly[len(poly)-1]
		prevIn := e.inside(prev)
		for _, cur := range poly {
			curIn := e.inside(cur)
			switch {
			case curIn && !prevIn:
				out = append(out, e.cross(prev, cur), cur)
			case curIn:
				out = append(out, cur)
			case prevIn:
				out = append(out, e.cross(prev, cur))
			}
			prev, prevIn = cur, curIn
		}
		poly, scratch = out, poly
	}
	return poly, scratch
}

// lerpX returns the point of segment ab with the given x.
func lerpX(a, b pt, x float32) pt {
	t := (x - a.x) / (b.x - a.x)
	return pt{x, a.y + t*(b.y-a.y)}
}

// lerpY returns the point of segment ab with the given y.
func lerpY(a, b pt, y float32) pt {
	t := (y - a.y) / (b.y - a.y)
	return pt{a.x + t*(b.x-a.x), y}
}
