package geom

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// degenerateCross is the squared cross-product length below which a triple
// of projected points is treated as collinear.
const degenerateCross = 1e-18

// SortPointsOnPlane returns the given coplanar 4D points reordered into a
// consistent cyclic order, so that a triangle fan over the result draws a
// simple polygon. The supporting hyperplane supplies the plane normal.
//
// The points are projected to 3D by dropping the coordinate with the
// largest-magnitude normal component, which keeps the projection
// non-degenerate for any plane orientation. Each projected point is then
// keyed by its signed angle around the projected centroid, measured from the
// first point, and the original 4D points are returned sorted by that key.
// The projection is only ever used for ordering; the returned points are the
// inputs themselves.
//
// Panics if fewer than 3 points are supplied.
func SortPointsOnPlane(points []mgl64.Vec4, plane Hyperplane) []mgl64.Vec4 {
	if len(points) < 3 {
		panic(fmt.Sprintf("cannot order %d points on a plane", len(points)))
	}

	axis := dominantAxis(plane.Normal)
	projected := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		projected[i] = dropAxis(p, axis)
	}

	var centroid mgl64.Vec3
	for _, p := range projected {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float64(len(projected)))

	polygonNormal := projectedNormal(projected)

	firstEdge := projected[0].Sub(centroid).Normalize()

	type keyed struct {
		index int
		angle float64
	}
	keys := make([]keyed, len(projected))
	keys[0] = keyed{0, 0}
	for i := 1; i < len(projected); i++ {
		edge := projected[i].Sub(centroid).Normalize()
		dot := mgl64.Clamp(firstEdge.Dot(edge), -1, 1)
		angle := math.Acos(dot)
		if polygonNormal.Dot(firstEdge.Cross(edge)) < 0 {
			angle = -angle
		}
		keys[i] = keyed{i, angle}
	}

	sort.SliceStable(keys, func(a, b int) bool {
		return keys[a].angle < keys[b].angle
	})

	sorted := make([]mgl64.Vec4, len(points))
	for i, k := range keys {
		sorted[i] = points[k.index]
	}
	return sorted
}

// projectedNormal finds a reference normal for the projected polygon from
// the cross product of two of its edges. The first triple of points whose
// edges are not collinear is used, so a collinear leading triple does not
// produce a zero normal.
func projectedNormal(projected []mgl64.Vec3) mgl64.Vec3 {
	a := projected[0]
	for i := 1; i < len(projected)-1; i++ {
		for j := i + 1; j < len(projected); j++ {
			ab := projected[i].Sub(a)
			bc := projected[j].Sub(projected[i])
			cross := bc.Cross(ab)
			if cross.LenSqr() > degenerateCross {
				return cross.Normalize()
			}
		}
	}
	// All points collinear. Any normal gives an arbitrary but consistent
	// order.
	return mgl64.Vec3{0, 0, 1}
}
