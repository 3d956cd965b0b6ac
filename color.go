package imdraw

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Colors are mgl32.Vec4 values (r, g, b, a) with components in [0, 1].
// The helpers below are the only conversions the context accepts; each
// returns the same canonical form.

// Gray returns an opaque gray of brightness b.
func Gray(b float32) mgl32.Vec4 {
	return mgl32.Vec4{b, b, b, 1}
}

// GrayAlpha returns a gray of brightness b with alpha a.
func GrayAlpha(b, a float32) mgl32.Vec4 {
	return mgl32.Vec4{b, b, b, a}
}

// RGB returns an opaque color.
func RGB(r, g, b float32) mgl32.Vec4 {
	return mgl32.Vec4{r, g, b, 1}
}

// RGBA returns a color with alpha stored verbatim.
func RGBA(r, g, b, a float32) mgl32.Vec4 {
	return mgl32.Vec4{r, g, b, a}
}

// Vec3 returns an opaque color from an (r, g, b) vector.
func Vec3(v mgl32.Vec3) mgl32.Vec4 {
	return v.Vec4(1)
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) mgl32.Vec4 {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return mgl32.Vec4{}
	}
	// color.Color is premultiplied.
	return mgl32.Vec4{
		float32(r) / float32(a),
		float32(g) / float32(a),
		float32(b) / float32(a),
		float32(a) / 65535,
	}
}

// ToColor converts c to a standard color.NRGBA.
func ToColor(c mgl32.Vec4) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c[0] * 255)),
		G: uint8(clamp255(c[1] * 255)),
		B: uint8(clamp255(c[2] * 255)),
		A: uint8(clamp255(c[3] * 255)),
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or
// without a leading '#'. Malformed strings yield opaque black.
func Hex(hex string) mgl32.Vec4 {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return mgl32.Vec4{
		float32(r) / 255,
		float32(g) / 255,
		float32(b) / 255,
		float32(a) / 255,
	}
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// HSL creates an opaque color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float32) mgl32.Vec4 {
	hh := math.Mod(float64(h), 360)
	if hh < 0 {
		hh += 360
	}
	hh /= 360

	c := (1 - math.Abs(2*float64(l)-1)) * float64(s)
	x := c * (1 - math.Abs(math.Mod(hh*6, 2)-1))
	m := float64(l) - c/2

	var r, g, b float64
	switch {
	case hh < 1.0/6:
		r, g, b = c, x, 0
	case hh < 2.0/6:
		r, g, b = x, c, 0
	case hh < 3.0/6:
		r, g, b = 0, c, x
	case hh < 4.0/6:
		r, g, b = 0, x, c
	case hh < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(float32(r+m), float32(g+m), float32(b+m))
}

// Lerp interpolates between two colors.
func Lerp(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}

func clamp255(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)
