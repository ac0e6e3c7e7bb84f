package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CoincidenceEpsilon is the tolerance used by Hyperplane.Inside to decide
// whether a point lies on the hyperplane. It is sized for polychora with
// coordinates of order unity (circumradius a few units at most).
const CoincidenceEpsilon = 1e-3

// Hyperplane is an oriented half-space boundary in 4-space, the point set
// {x : Normal·x + Displacement = 0}. Normal is always unit length, so
// SignedDistance returns true Euclidean distances.
type Hyperplane struct {
	Normal       mgl64.Vec4
	Displacement float64
}

// NewHyperplane builds a hyperplane from a normal of any non-zero length.
// The normal is normalized and the displacement rescaled by the same factor,
// so the represented point set is unchanged.
func NewHyperplane(normal mgl64.Vec4, displacement float64) Hyperplane {
	l := normal.Len()
	if l > 0 {
		normal = normal.Mul(1 / l)
		displacement /= l
	}
	return Hyperplane{Normal: normal, Displacement: displacement}
}

// SignedDistance returns the Euclidean distance from p to the hyperplane,
// positive on the side the normal points toward.
func (h Hyperplane) SignedDistance(p mgl64.Vec4) float64 {
	return h.Normal.Dot(p) + h.Displacement
}

// Side is an alias for SignedDistance kept for call sites that only care
// about the sign.
func (h Hyperplane) Side(p mgl64.Vec4) float64 {
	return h.SignedDistance(p)
}

// Project3D maps a point lying on the hyperplane into 3-space by deleting
// the coordinate of the normal's dominant axis. Distances are distorted but
// never collapsed, so angular order and polygon shape survive; all points
// of one plane must be projected with the same call to line up.
func (h Hyperplane) Project3D(p mgl64.Vec4) mgl64.Vec3 {
	return dropAxis(p, dominantAxis(h.Normal))
}

// Inside reports whether p lies on the hyperplane, within
// CoincidenceEpsilon. Note that this is a coincidence test, not a half-space
// test: it is what cell reconstruction uses to ask "is this vertex on the
// bounding hyperplane of a cell".
func (h Hyperplane) Inside(p mgl64.Vec4) bool {
	return math.Abs(h.SignedDistance(p)) <= CoincidenceEpsilon
}
