package xd2d

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned rectangle anchored at (X, Y) with size (W, H).
//
// W and H may be negative. A negative rectangle is degenerate and should be
// treated as empty; no operation normalizes it implicitly.
type Rect struct {
	X, Y, W, H float32
}

// RectZero is the empty rectangle at the origin.
var RectZero = Rect{}

// R is a convenience function to create a Rect.
func R(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromMinMax creates the rectangle spanning min to max.
func RectFromMinMax(lo, hi Pos2) Rect {
	return Rect{X: lo.X, Y: lo.Y, W: hi.X - lo.X, H: hi.Y - lo.Y}
}

// RectFromMinSize creates a rectangle anchored at lo with the given size.
func RectFromMinSize(lo Pos2, size Vec2) Rect {
	return Rect{X: lo.X, Y: lo.Y, W: size.X, H: size.Y}
}

// RectFromCenterSize creates a rectangle of the given size centered on c.
func RectFromCenterSize(c Pos2, size Vec2) Rect {
	return Rect{X: c.X - size.X*0.5, Y: c.Y - size.Y*0.5, W: size.X, H: size.Y}
}

// Min returns the anchor corner (X, Y).
func (r Rect) Min() Pos2 { return Pos2{X: r.X, Y: r.Y} }

// Max returns the corner opposite the anchor (X+W, Y+H).
func (r Rect) Max() Pos2 { return Pos2{X: r.X + r.W, Y: r.Y + r.H} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Pos2 { return Pos2{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Size returns (W, H).
func (r Rect) Size() Vec2 { return Vec2{X: r.W, Y: r.H} }

// Area returns W*H. It is negative when exactly one dimension is negative.
func (r Rect) Area() float32 { return r.W * r.H }

// WithX returns a copy of r with X replaced.
func (r Rect) WithX(x float32) Rect { r.X = x; return r }

// WithY returns a copy of r with Y replaced.
func (r Rect) WithY(y float32) Rect { r.Y = y; return r }

// WithW returns a copy of r with W replaced.
func (r Rect) WithW(w float32) Rect { r.W = w; return r }

// WithH returns a copy of r with H replaced.
func (r Rect) WithH(h float32) Rect { r.H = h; return r }

// Contains reports whether p lies inside r. All four edges are inclusive.
func (r Rect) Contains(p Pos2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Intersects reports whether r and o overlap with a non-zero area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Expand grows the rectangle by amount on every side.
func (r Rect) Expand(amount float32) Rect {
	return r.Expand2(Splat(amount))
}

// Expand2 grows the rectangle by amount.X horizontally and amount.Y
// vertically on each side.
func (r Rect) Expand2(amount Vec2) Rect {
	return Rect{
		X: r.X - amount.X,
		Y: r.Y - amount.Y,
		W: r.W + amount.X*2,
		H: r.H + amount.Y*2,
	}
}

// ExpandToInclude returns the smallest rectangle containing both r and p.
func (r Rect) ExpandToInclude(p Pos2) Rect {
	return RectFromMinMax(r.Min().Min(p), r.Max().Max(p))
}

// Translate moves the rectangle by offset.
func (r Rect) Translate(offset Vec2) Rect {
	return Rect{X: r.X + offset.X, Y: r.Y + offset.Y, W: r.W, H: r.H}
}

// Round rounds every field to the nearest integer.
func (r Rect) Round() Rect {
	return Rect{X: round32(r.X), Y: round32(r.Y), W: round32(r.W), H: round32(r.H)}
}

// Ceil rounds every field up.
func (r Rect) Ceil() Rect {
	return Rect{X: ceil32(r.X), Y: ceil32(r.Y), W: ceil32(r.W), H: ceil32(r.H)}
}

// Floor rounds every field down.
func (r Rect) Floor() Rect {
	return Rect{X: floor32(r.X), Y: floor32(r.Y), W: floor32(r.W), H: floor32(r.H)}
}

// DistanceToPos returns the distance from the rectangle to p, zero when p is
// inside.
func (r Rect) DistanceToPos(p Pos2) float32 {
	return sqrt32(r.DistanceSqToPos(p))
}

// DistanceSqToPos returns the squared distance from the rectangle to p, zero
// when p is inside.
func (r Rect) DistanceSqToPos(p Pos2) float32 {
	dx := axisGap(p.X, r.X, r.X+r.W)
	dy := axisGap(p.Y, r.Y, r.Y+r.H)
	return dx*dx + dy*dy
}

func axisGap(v, lo, hi float32) float32 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	}
	return 0
}

// SignedDistanceToPos returns the distance from p to the rectangle's edge,
// negative when p is inside.
func (r Rect) SignedDistanceToPos(p Pos2) float32 {
	edge := p.Sub(r.Center()).Abs().Sub(r.Size().Mul(0.5))
	inside := min32(edge.MaxElem(), 0)
	outside := edge.Max(Vec2Zero).Length()
	return inside + outside
}

// LerpInside maps t in [0,1]² onto the rectangle, (0,0) being Min and (1,1)
// being Max.
func (r Rect) LerpInside(t Vec2) Pos2 {
	lo, hi := r.Min(), r.Max()
	return Pos2{X: Lerp(lo.X, hi.X, t.X), Y: Lerp(lo.Y, hi.Y, t.Y)}
}

// LerpTowards interpolates every field of r towards o.
func (r Rect) LerpTowards(o Rect, t float32) Rect {
	return Rect{
		X: Lerp(r.X, o.X, t),
		Y: Lerp(r.Y, o.Y, t),
		W: Lerp(r.W, o.W, t),
		H: Lerp(r.H, o.H, t),
	}
}

// IsNegative reports whether either dimension is negative.
func (r Rect) IsNegative() bool {
	return r.W < 0 || r.H < 0
}

// IsPositive reports whether both dimensions are strictly positive.
func (r Rect) IsPositive() bool {
	return r.W > 0 && r.H > 0
}

// IsFinite reports whether all four fields are finite.
func (r Rect) IsFinite() bool {
	return isFinite32(r.X) && isFinite32(r.Y) && isFinite32(r.W) && isFinite32(r.H)
}

// AnyNaN reports whether any field is NaN.
func (r Rect) AnyNaN() bool {
	return r.Min().AnyNaN() || r.Size().AnyNaN()
}

// Pixels returns the pixels r covers, limited to bounds. The minimum corner
// is floored and the maximum corner ceiled. Non-positive or non-finite
// rectangles cover nothing.
func (r Rect) Pixels(bounds image.Rectangle) image.Rectangle {
	if !r.IsFinite() || !r.IsPositive() {
		return image.Rectangle{}
	}
	// Clamp before converting so huge rectangles cannot overflow int.
	lo := P2(float32(bounds.Min.X), float32(bounds.Min.Y))
	hi := P2(float32(bounds.Max.X), float32(bounds.Max.Y))
	minP := r.Min().Clamp(lo, hi).Floor()
	maxP := r.Max().Clamp(lo, hi).Ceil()
	return image.Rect(int(minP.X), int(minP.Y), int(maxP.X), int(maxP.Y)).Intersect(bounds)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.X, r.Y, r.W, r.H)
}
