package xd2d

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
)

// Color is an 8-bit per channel, non-premultiplied RGBA color.
// 255 is full intensity for R, G and B, and fully opaque for A.
//
// Color implements image/color.Color.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a color from red, green, blue and alpha channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from red, green and blue channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ARGB creates a color from alpha, red, green and blue channel values.
func ARGB(a, r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// BGRA creates a color from blue, green, red and alpha channel values.
func BGRA(b, g, r, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromU32 unpacks a color packed as R<<24 | G<<16 | B<<8 | A.
func ColorFromU32(packed uint32) Color {
	return Color{
		R: uint8(packed >> 24),
		G: uint8(packed >> 16),
		B: uint8(packed >> 8),
		A: uint8(packed),
	}
}

// U32 packs the color as R<<24 | G<<16 | B<<8 | A.
// ColorFromU32 is its exact inverse.
func (c Color) U32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// ColorFromRGBAFloat creates a color from channels in [0, 1].
// Each channel is rounded to the nearest byte; out-of-range values saturate
// and NaN becomes 0.
func ColorFromRGBAFloat(r, g, b, a float32) Color {
	return Color{R: unitToByte(r), G: unitToByte(g), B: unitToByte(b), A: unitToByte(a)}
}

// ColorFromRGBFloat creates an opaque color from channels in [0, 1].
func ColorFromRGBFloat(r, g, b float32) Color {
	return ColorFromRGBAFloat(r, g, b, 1)
}

// ColorFromARGBFloat creates a color from alpha, red, green and blue in [0, 1].
func ColorFromARGBFloat(a, r, g, b float32) Color {
	return ColorFromRGBAFloat(r, g, b, a)
}

// ColorFromBGRAFloat creates a color from blue, green, red and alpha in [0, 1].
func ColorFromBGRAFloat(b, g, r, a float32) Color {
	return ColorFromRGBAFloat(r, g, b, a)
}

func unitToByte(v float32) uint8 {
	x := math.Round(float64(v) * 255)
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x)
}

// ColorFromHSL creates an opaque color from hue in degrees [0, 360),
// saturation and luminosity in [0, 1].
// Zero saturation yields the gray level l regardless of hue.
func ColorFromHSL(h, s, l float32) Color {
	if s == 0 {
		v := unitToByte(l)
		return Color{R: v, G: v, B: v, A: 255}
	}

	h /= 360

	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Color{
		R: unitToByte(hueToRGB(p, q, h+1.0/3)),
		G: unitToByte(hueToRGB(p, q, h)),
		B: unitToByte(hueToRGB(p, q, h-1.0/3)),
		A: 255,
	}
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	} else if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// HSL returns hue in degrees (rounded to two decimals), saturation and
// luminosity of the color. Alpha is ignored. Grays report hue and
// saturation 0.
func (c Color) HSL() (h, s, l float32) {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255

	hi := float32(max(c.R, c.G, c.B)) / 255
	lo := float32(min(c.R, c.G, c.B)) / 255

	l = (hi + lo) / 2

	delta := hi - lo
	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (hi + lo)
	} else {
		s = delta / (2 - hi - lo)
	}

	r2 := ((hi-r)/6 + delta/2) / delta
	g2 := ((hi-g)/6 + delta/2) / delta
	b2 := ((hi-b)/6 + delta/2) / delta

	switch hi {
	case r:
		h = b2 - g2
	case g:
		h = 1.0/3 + r2 - b2
	default:
		h = 2.0/3 + g2 - r2
	}

	if h < 0 {
		h++
	} else if h > 1 {
		h--
	}

	return round32(h*360*100) / 100, s, l
}

// At returns channel i (0 R, 1 G, 2 B, 3 A). It panics for any other index.
func (c Color) At(i int) uint8 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	case 3:
		return c.A
	}
	panic(fmt.Sprintf("xd2d: Color index out of range: %d", i))
}

// SetAt sets channel i (0 R, 1 G, 2 B, 3 A). It panics for any other index.
func (c *Color) SetAt(i int, v uint8) {
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	case 3:
		c.A = v
	default:
		panic(fmt.Sprintf("xd2d: Color index out of range: %d", i))
	}
}

// WithR returns a copy of c with red replaced.
func (c Color) WithR(r uint8) Color { c.R = r; return c }

// WithG returns a copy of c with green replaced.
func (c Color) WithG(g uint8) Color { c.G = g; return c }

// WithB returns a copy of c with blue replaced.
func (c Color) WithB(b uint8) Color { c.B = b; return c }

// WithA returns a copy of c with alpha replaced.
func (c Color) WithA(a uint8) Color { c.A = a; return c }

// Float32s returns the channels scaled to [0, 1].
func (c Color) Float32s() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// GPU converts the color to a gputypes clear value.
func (c Color) GPU() gputypes.Color {
	f := c.Float32s()
	return gputypes.Color{R: float64(f[0]), G: float64(f[1]), B: float64(f[2]), A: float64(f[3])}
}

// RGBA implements image/color.Color. The result is alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return r, g, b, a
}

// ParseColor parses "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" or a color
// keyword understood by NamedColor.
func ParseColor(s string) (Color, error) {
	if c, ok := NamedColor(s); ok {
		return c, nil
	}
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	digits := make([]uint8, len(hex))
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, fmt.Errorf("xd2d: invalid color %q", s)
		}
		digits[i] = d
	}

	switch len(digits) {
	case 3: // RGB
		return RGB(digits[0]*17, digits[1]*17, digits[2]*17), nil
	case 4: // RGBA
		return RGBA(digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17), nil
	case 6: // RRGGBB
		return RGB(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]), nil
	case 8: // RRGGBBAA
		return RGBA(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5], digits[6]<<4|digits[7]), nil
	}
	return Color{}, fmt.Errorf("xd2d: invalid color %q", s)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
