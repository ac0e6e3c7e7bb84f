package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotationPlane names one of the six coordinate planes a 4D rotation can
// act in. Unlike 3D, rotations in 4-space fix a plane rather than an axis.
type RotationPlane int

const (
	PlaneXY RotationPlane = iota
	PlaneYZ
	PlaneZX
	PlaneXW
	PlaneYW
	PlaneZW
)

// SimpleRotation returns the matrix of a rotation by angle radians in a
// single coordinate plane, leaving the complementary plane fixed.
func SimpleRotation(plane RotationPlane, angle float64) mgl64.Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	switch plane {
	case PlaneXY:
		return mgl64.Mat4FromRows(
			mgl64.Vec4{c, -s, 0, 0},
			mgl64.Vec4{s, c, 0, 0},
			mgl64.Vec4{0, 0, 1, 0},
			mgl64.Vec4{0, 0, 0, 1},
		)
	case PlaneYZ:
		return mgl64.Mat4FromRows(
			mgl64.Vec4{1, 0, 0, 0},
			mgl64.Vec4{0, c, -s, 0},
			mgl64.Vec4{0, s, c, 0},
			mgl64.Vec4{0, 0, 0, 1},
		)
	case PlaneZX:
		return mgl64.Mat4FromRows(
			mgl64.Vec4{c, 0, s, 0},
			mgl64.Vec4{0, 1, 0, 0},
			mgl64.Vec4{-s, 0, c, 0},
			mgl64.Vec4{0, 0, 0, 1},
		)
	case PlaneXW:
		return mgl64.Mat4FromRows(
			mgl64.Vec4{c, 0, 0, -s},
			mgl64.Vec4{0, 1, 0, 0},
			mgl64.Vec4{0, 0, 1, 0},
			mgl64.Vec4{s, 0, 0, c},
		)
	case PlaneYW:
		return mgl64.Mat4FromRows(
			mgl64.Vec4{1, 0, 0, 0},
			mgl64.Vec4{0, c, 0, -s},
			mgl64.Vec4{0, 0, 1, 0},
			mgl64.Vec4{0, s, 0, c},
		)
	case PlaneZW:
		return mgl64.Mat4FromRows(
			mgl64.Vec4{1, 0, 0, 0},
			mgl64.Vec4{0, 1, 0, 0},
			mgl64.Vec4{0, 0, c, -s},
			mgl64.Vec4{0, 0, s, c},
		)
	}
	return mgl64.Ident4()
}

// DoubleRotation returns a rotation by alpha in the XY plane combined with a
// rotation by beta in the ZW plane. Its only fixed point is the origin; with
// alpha == beta it is an isoclinic rotation.
func DoubleRotation(alpha, beta float64) mgl64.Mat4 {
	ca, sa := math.Cos(alpha), math.Sin(alpha)
	cb, sb := math.Cos(beta), math.Sin(beta)
	return mgl64.Mat4FromRows(
		mgl64.Vec4{ca, -sa, 0, 0},
		mgl64.Vec4{sa, ca, 0, 0},
		mgl64.Vec4{0, 0, cb, -sb},
		mgl64.Vec4{0, 0, sb, cb},
	)
}
