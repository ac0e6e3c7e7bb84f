package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FromHex unpacks an 0xRRGGBB color code into an RGBA vector with
// components in [0, 1].
func FromHex(code uint32, alpha float64) mgl64.Vec4 {
	r := float64((code>>16)&0xFF) / 255.0
	g := float64((code>>8)&0xFF) / 255.0
	b := float64(code&0xFF) / 255.0
	return mgl64.Vec4{r, g, b, alpha}
}

// Palette evaluates the cosine color palette
//
//	a + b * cos(2*pi * (c*t + d))
//
// component-wise. Sweeping t through [0, 1] walks a smooth closed loop
// through color space.
func Palette(t float64, a, b, c, d mgl64.Vec3) mgl64.Vec3 {
	var out mgl64.Vec3
	for i := 0; i < 3; i++ {
		out[i] = a[i] + b[i]*math.Cos(2*math.Pi*(c[i]*t+d[i]))
	}
	return out
}

// CellColor assigns cell i of cells a color from the standard rainbow
// cosine palette, so adjacent cells of a sliced polychoron stay visually
// distinct.
func CellColor(i uint32, cells int) mgl64.Vec3 {
	t := 0.0
	if cells > 0 {
		t = float64(i) / float64(cells)
	}
	return Palette(
		t,
		mgl64.Vec3{0.5, 0.5, 0.5},
		mgl64.Vec3{0.5, 0.5, 0.5},
		mgl64.Vec3{1.0, 1.0, 1.0},
		mgl64.Vec3{0.00, 0.33, 0.67},
	)
}

// RGBA converts a [0, 1] color vector to an 8-bit color, clamping
// components the cosine palette pushes slightly out of range.
func RGBA(c mgl64.Vec3, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(mgl64.Clamp(c[0], 0, 1) * 255),
		G: uint8(mgl64.Clamp(c[1], 0, 1) * 255),
		B: uint8(mgl64.Clamp(c[2], 0, 1) * 255),
		A: uint8(mgl64.Clamp(alpha, 0, 1) * 255),
	}
}
