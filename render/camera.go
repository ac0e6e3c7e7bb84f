package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera projects the 3D cross section to screen coordinates: a look-at
// view from From toward To followed by a perspective projection.
type Camera struct {
	From, To, Up mgl64.Vec3

	lookAt     mgl64.Mat4
	projection mgl64.Mat4
}

// NewCamera builds a camera with a 90 degree vertical field of view at the
// given aspect ratio.
func NewCamera(from, to, up mgl64.Vec3, aspect float64) *Camera {
	cam := &Camera{From: from, To: to, Up: up}
	cam.lookAt = mgl64.LookAtV(from, to, up)
	cam.projection = mgl64.Perspective(math.Pi/2, aspect, 0.1, 1000)
	return cam
}

// DefaultCamera looks at the origin from (0, 0, 3) down the z axis, which
// frames every built-in shape's cross section.
func DefaultCamera(aspect float64) *Camera {
	return NewCamera(
		mgl64.Vec3{0, 0, 3}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, aspect,
	)
}

// Project maps a world-space point to pixel coordinates on a width by
// height screen. Points at or behind the eye report ok = false.
func (cam *Camera) Project(p mgl64.Vec3, width, height int) (x, y float64, ok bool) {
	clip := cam.projection.Mul4(cam.lookAt).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}

	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX + 1) / 2 * float64(width)
	y = (1 - ndcY) / 2 * float64(height)
	return x, y, true
}
