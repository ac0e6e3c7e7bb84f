/*package geom contains the 4-dimensional geometric primitives used to cut
polychora into renderable cross-sections: hyperplanes, plane rotations, the
coplanar point-ordering primitive, and tetrahedra embedded in 4-space.

All positions and directions are mgl64.Vec4 values. A point is just a Vec4
whose meaning is positional; no separate point type is used.
*/
package geom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Centroid returns the arithmetic mean of the given points.
func Centroid(points []mgl64.Vec4) mgl64.Vec4 {
	var sum mgl64.Vec4
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// dominantAxis returns the index of the largest-magnitude component of v.
func dominantAxis(v mgl64.Vec4) int {
	axis, max := 0, v[0]
	if max < 0 {
		max = -max
	}
	for i := 1; i < 4; i++ {
		c := v[i]
		if c < 0 {
			c = -c
		}
		if c > max {
			axis, max = i, c
		}
	}
	return axis
}

// dropAxis projects a 4D point to 3D by deleting the given coordinate.
func dropAxis(v mgl64.Vec4, axis int) mgl64.Vec3 {
	var out mgl64.Vec3
	j := 0
	for i := 0; i < 4; i++ {
		if i == axis {
			continue
		}
		out[j] = v[i]
		j++
	}
	return out
}
