package xd2d

import (
	"fmt"
	"math"
)

// Vec2 represents a 2D displacement, direction or size.
// Unlike Pos2 which represents a position, Vec2 has no anchor; adding two
// vectors is meaningful, adding two positions is not.
type Vec2 struct {
	X, Y float32
}

// Vec2Zero is the zero vector.
var Vec2Zero = Vec2{}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns a vector with both components set to v.
func Splat(v float32) Vec2 {
	return Vec2{X: v, Y: v}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
// Division by zero follows IEEE-754 and yields Inf or NaN components.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// MulVec returns the componentwise product of two vectors.
func (v Vec2) MulVec(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// DivVec returns the componentwise quotient of two vectors.
func (v Vec2) DivVec(w Vec2) Vec2 {
	return Vec2{X: v.X / w.X, Y: v.Y / w.Y}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Min returns the componentwise minimum of two vectors.
func (v Vec2) Min(w Vec2) Vec2 {
	return Vec2{X: min32(v.X, w.X), Y: min32(v.Y, w.Y)}
}

// Max returns the componentwise maximum of two vectors.
func (v Vec2) Max(w Vec2) Vec2 {
	return Vec2{X: max32(v.X, w.X), Y: max32(v.Y, w.Y)}
}

// Abs returns the vector with the absolute value of each component.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: abs32(v.X), Y: abs32(v.Y)}
}

// MaxElem returns the larger of the two components.
func (v Vec2) MaxElem() float32 {
	return max32(v.X, v.Y)
}

// MinElem returns the smaller of the two components.
func (v Vec2) MinElem() float32 {
	return min32(v.X, v.Y)
}

// Clamp restricts each component to the matching [lo, hi] component range.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{X: clamp32(v.X, lo.X, hi.X), Y: clamp32(v.Y, lo.Y, hi.Y)}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{X: Lerp(v.X, w.X, t), Y: Lerp(v.Y, w.Y, t)}
}

// IsFinite reports whether both components are neither Inf nor NaN.
func (v Vec2) IsFinite() bool {
	return isFinite32(v.X) && isFinite32(v.Y)
}

// AnyNaN reports whether either component is NaN.
func (v Vec2) AnyNaN() bool {
	return math.IsNaN(float64(v.X)) || math.IsNaN(float64(v.Y))
}

// At returns component i (0 is X, 1 is Y). It panics for any other index.
func (v Vec2) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("xd2d: Vec2 index out of range: %d", i))
}

// SetAt sets component i (0 is X, 1 is Y). It panics for any other index.
func (v *Vec2) SetAt(i int, value float32) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		panic(fmt.Sprintf("xd2d: Vec2 index out of range: %d", i))
	}
}

// ToPos2 converts Vec2 to Pos2, treating the displacement as a position
// relative to the origin.
func (v Vec2) ToPos2() Pos2 {
	return Pos2(v)
}

// String returns a string representation of the vector.
func (v Vec2) String() string {
	return fmt.Sprintf("[%g %g]", v.X, v.Y)
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float32) bool {
	return abs32(v.X-w.X) < epsilon && abs32(v.Y-w.Y) < epsilon
}
