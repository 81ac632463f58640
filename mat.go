package xd2d

import (
	"fmt"
	"math"
)

// Mat2x3 represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// B and D are the shear terms. A matrix with B == D == 0 is axis aligned.
type Mat2x3 struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transformation matrix.
func Identity() Mat2x3 {
	return Mat2x3{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// DefaultProj returns the projection from logical pixel space
// [0,width]x[0,height] to device space [-1,1]x[1,-1], Y flipped.
// (0,0) maps to (-1,1) and (width,height) maps to (1,-1).
//
// It panics if width or height is not positive.
func DefaultProj(width, height float32) Mat2x3 {
	if !(width > 0) || !(height > 0) {
		panic(fmt.Sprintf("xd2d: projection requires positive size, got %gx%g", width, height))
	}
	return Mat2x3{
		A: 2 / width, B: 0, C: -1,
		D: 0, E: -2 / height, F: 1,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float32) Mat2x3 {
	return Mat2x3{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float32) Mat2x3 {
	return Mat2x3{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float32) Mat2x3 {
	sin, cos := math.Sincos(float64(angle))
	return Mat2x3{
		A: float32(cos), B: float32(-sin), C: 0,
		D: float32(sin), E: float32(cos), F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// Applying the result equals applying other, then m.
func (m Mat2x3) Multiply(other Mat2x3) Mat2x3 {
	return Mat2x3{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// MulTransform composes m with inner so that applying the result equals
// applying inner, then m.
//
// When m is axis aligned (every projection built by DefaultProj is) the
// product reduces to scaling inner's rows and offsetting its translation.
// Otherwise the full product is computed.
func (m Mat2x3) MulTransform(inner Mat2x3) Mat2x3 {
	if !m.IsAxisAligned() {
		return m.Multiply(inner)
	}
	x, y := m.A, m.E
	return Mat2x3{
		A: x * inner.A, B: x * inner.B, C: x*inner.C + m.C,
		D: y * inner.D, E: y * inner.E, F: y*inner.F + m.F,
	}
}

// IsAxisAligned reports whether the shear terms are zero.
func (m Mat2x3) IsAxisAligned() bool {
	return m.B == 0 && m.D == 0
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat2x3) IsIdentity() bool {
	return m == Identity()
}

// MulVec2 applies the transformation, translation included, to v.
func (m Mat2x3) MulVec2(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.B*v.Y + m.C,
		Y: m.D*v.X + m.E*v.Y + m.F,
	}
}

// MulPos2 applies the transformation to a point.
func (m Mat2x3) MulPos2(p Pos2) Pos2 {
	return Pos2(m.MulVec2(Vec2(p)))
}

// TransformVec2s writes m applied to every element of src into dst and
// returns dst[:len(src)]. dst may alias src. It does not allocate and panics
// if dst is shorter than src.
func (m Mat2x3) TransformVec2s(dst, src []Vec2) []Vec2 {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = m.MulVec2(v)
	}
	return dst
}

// Invert returns the inverse matrix and true, or the zero matrix and false
// when m is singular.
func (m Mat2x3) Invert() (Mat2x3, bool) {
	det := m.A*m.E - m.B*m.D
	if det == 0 || !isFinite32(det) {
		return Mat2x3{}, false
	}
	inv := 1 / det
	return Mat2x3{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.E*m.C) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.D*m.C - m.A*m.F) * inv,
	}, true
}

func (m Mat2x3) String() string {
	return fmt.Sprintf("[[%g %g %g] [%g %g %g]]", m.A, m.B, m.C, m.D, m.E, m.F)
}
