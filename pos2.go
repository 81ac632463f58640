package xd2d

import (
	"fmt"
	"math"
)

// Pos2 represents a point in a 2D coordinate space, logical pixels unless
// stated otherwise.
//
// Positions and vectors are distinct types: Pos2.Sub(Pos2) yields a Vec2 and
// Pos2.Add(Vec2) yields a Pos2, but two positions cannot be added.
type Pos2 struct {
	X, Y float32
}

// P2 is a convenience function to create a Pos2.
func P2(x, y float32) Pos2 {
	return Pos2{X: x, Y: y}
}

// Add returns the position displaced by v.
func (p Pos2) Add(v Vec2) Pos2 {
	return Pos2{X: p.X + v.X, Y: p.Y + v.Y}
}

// SubVec returns the position displaced by -v.
func (p Pos2) SubVec(v Vec2) Pos2 {
	return Pos2{X: p.X - v.X, Y: p.Y - v.Y}
}

// Sub returns the vector from q to p.
func (p Pos2) Sub(q Pos2) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the position with both coordinates scaled by s.
func (p Pos2) Mul(s float32) Pos2 {
	return Pos2{X: p.X * s, Y: p.Y * s}
}

// Div returns the position with both coordinates divided by s.
func (p Pos2) Div(s float32) Pos2 {
	return Pos2{X: p.X / s, Y: p.Y / s}
}

// ToVec2 returns the displacement of p from the origin.
func (p Pos2) ToVec2() Vec2 {
	return Vec2(p)
}

// Distance returns the distance between two points.
func (p Pos2) Distance(q Pos2) float32 {
	return p.Sub(q).Length()
}

// DistanceSq returns the squared distance between two points.
func (p Pos2) DistanceSq(q Pos2) float32 {
	return p.Sub(q).LengthSq()
}

// Floor rounds both coordinates down.
func (p Pos2) Floor() Pos2 {
	return Pos2{X: floor32(p.X), Y: floor32(p.Y)}
}

// Round rounds both coordinates to the nearest integer, half away from zero.
func (p Pos2) Round() Pos2 {
	return Pos2{X: round32(p.X), Y: round32(p.Y)}
}

// Ceil rounds both coordinates up.
func (p Pos2) Ceil() Pos2 {
	return Pos2{X: ceil32(p.X), Y: ceil32(p.Y)}
}

// IsFinite reports whether both coordinates are neither Inf nor NaN.
func (p Pos2) IsFinite() bool {
	return isFinite32(p.X) && isFinite32(p.Y)
}

// AnyNaN reports whether either coordinate is NaN.
func (p Pos2) AnyNaN() bool {
	return math.IsNaN(float64(p.X)) || math.IsNaN(float64(p.Y))
}

// Min returns the componentwise minimum of two points.
func (p Pos2) Min(q Pos2) Pos2 {
	return Pos2{X: min32(p.X, q.X), Y: min32(p.Y, q.Y)}
}

// Max returns the componentwise maximum of two points.
func (p Pos2) Max(q Pos2) Pos2 {
	return Pos2{X: max32(p.X, q.X), Y: max32(p.Y, q.Y)}
}

// Clamp restricts the point to the box spanned by lo and hi.
func (p Pos2) Clamp(lo, hi Pos2) Pos2 {
	return Pos2{X: clamp32(p.X, lo.X, hi.X), Y: clamp32(p.Y, lo.Y, hi.Y)}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Pos2) Lerp(q Pos2, t float32) Pos2 {
	return Pos2{X: Lerp(p.X, q.X, t), Y: Lerp(p.Y, q.Y, t)}
}

// At returns coordinate i (0 is X, 1 is Y). It panics for any other index.
func (p Pos2) At(i int) float32 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	}
	panic(fmt.Sprintf("xd2d: Pos2 index out of range: %d", i))
}

// SetAt sets coordinate i (0 is X, 1 is Y). It panics for any other index.
func (p *Pos2) SetAt(i int, value float32) {
	switch i {
	case 0:
		p.X = value
	case 1:
		p.Y = value
	default:
		panic(fmt.Sprintf("xd2d: Pos2 index out of range: %d", i))
	}
}

func (p Pos2) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Pos2) Approx(q Pos2, epsilon float32) bool {
	return p.Sub(q).Approx(Vec2Zero, epsilon)
}
