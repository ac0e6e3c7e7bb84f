package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Tetrahedron is a 3-simplex embedded in 4-space. It is the unit that
// per-frame slicing operates on: tetrahedralization copies corner positions
// out of the source topology, so a mesh can be rigidly transformed without
// touching the topology's rest-pose vertices.
type Tetrahedron struct {
	Corners [4]mgl64.Vec4

	// Cell is the index of the polychoron cell this tetrahedron came from,
	// and CellCentroid that cell's centroid.
	Cell         uint32
	CellCentroid mgl64.Vec4
}

// The raw ordering of tetrahedron edges is {0-1, 0-2, 0-3, 1-2, 1-3, 2-3}.
var tetraEdges = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// PolygonKind tags the three possible outcomes of slicing a tetrahedron
// with a hyperplane.
type PolygonKind uint8

const (
	EmptyPolygon PolygonKind = iota
	TrianglePolygon
	QuadPolygon
)

// Polygon is the cross-section of one tetrahedron: nothing, a triangle, or
// a quadrilateral. Points[:Len()] are in cyclic order, so a fan over them
// draws a simple polygon.
type Polygon struct {
	Kind   PolygonKind
	Points [4]mgl64.Vec4
}

// Len returns the number of valid points in the polygon.
func (p *Polygon) Len() int {
	switch p.Kind {
	case TrianglePolygon:
		return 3
	case QuadPolygon:
		return 4
	}
	return 0
}

// QuadIndices returns the corner indices that split an ordered
// quadrilateral into two triangles.
func QuadIndices() [2][3]uint32 {
	return [2][3]uint32{{0, 1, 2}, {0, 2, 3}}
}

// Slice intersects the tetrahedron, transformed by transform, with the given
// hyperplane. A plane cuts a tetrahedron in 0, 3, or 4 points: each of the
// four triangular faces contributes at most one crossing segment, and the
// cross-section is convex. Quadrilateral results are returned in cyclic
// order via SortPointsOnPlane; triangles are trivially simple.
//
// Any other point count means corrupt corner data (NaNs, coincident
// vertices) and is returned as an error with an empty polygon.
func (t *Tetrahedron) Slice(plane Hyperplane, transform mgl64.Mat4) (Polygon, error) {
	var moved [4]mgl64.Vec4
	var side [4]float64
	for i, c := range t.Corners {
		moved[i] = transform.Mul4x1(c)
		side[i] = plane.Side(moved[i])
	}

	var pts [6]mgl64.Vec4
	n := 0
	for _, e := range tetraEdges {
		a, b := moved[e[0]], moved[e[1]]
		// Solve side(a + f*(b-a)) = 0 for the crossing fraction f. A zero
		// denominator yields Inf or NaN, which fails the range check below.
		f := -side[e[0]] / (side[e[1]] - side[e[0]])
		if f >= 0 && f <= 1 {
			pts[n] = a.Add(b.Sub(a).Mul(f))
			n++
		}
	}

	switch n {
	case 0:
		return Polygon{}, nil
	case 3:
		return Polygon{
			Kind:   TrianglePolygon,
			Points: [4]mgl64.Vec4{pts[0], pts[1], pts[2]},
		}, nil
	case 4:
		sorted := SortPointsOnPlane(pts[:4], plane)
		return Polygon{
			Kind:   QuadPolygon,
			Points: [4]mgl64.Vec4{sorted[0], sorted[1], sorted[2], sorted[3]},
		}, nil
	}
	return Polygon{}, fmt.Errorf(
		"slicing produced %d intersection points, expected 0, 3, or 4", n)
}

// Volume computes the 3-volume of the tetrahedron from the Gram determinant
// of its edge vectors. This works for any embedding dimension, unlike the
// usual scalar triple product.
func (t *Tetrahedron) Volume() float64 {
	u := t.Corners[1].Sub(t.Corners[0])
	v := t.Corners[2].Sub(t.Corners[0])
	w := t.Corners[3].Sub(t.Corners[0])

	uu, uv, uw := u.Dot(u), u.Dot(v), u.Dot(w)
	vv, vw := v.Dot(v), v.Dot(w)
	ww := w.Dot(w)

	det := uu*(vv*ww-vw*vw) - uv*(uv*ww-vw*uw) + uw*(uv*vw-vv*uw)
	if det <= 0 {
		// Degenerate (flat) tetrahedron; det can drift slightly negative.
		return 0
	}
	return math.Sqrt(det) / 6
}
