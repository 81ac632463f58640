package xd2d

import "math"

// Float is the set of floating point types accepted by Lerp.
type Float interface {
	~float32 | ~float64
}

// Lerp interpolates linearly between a and b as (1-t)*a + t*b.
// t is not clamped, so values outside [0, 1] extrapolate.
func Lerp[T Float](a, b, t T) T {
	return (1-t)*a + t*b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func abs32(a float32) float32 {
	return math.Float32frombits(math.Float32bits(a) &^ (1 << 31))
}

func clamp32(v, lo, hi float32) float32 {
	return min32(max32(v, lo), hi)
}

func isFinite32(a float32) bool {
	return !math.IsInf(float64(a), 0) && !math.IsNaN(float64(a))
}

func floor32(a float32) float32 { return float32(math.Floor(float64(a))) }
func ceil32(a float32) float32  { return float32(math.Ceil(float64(a))) }
func round32(a float32) float32 { return float32(math.Round(float64(a))) }
func sqrt32(a float32) float32  { return float32(math.Sqrt(float64(a))) }
