package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var allPlanes = []RotationPlane{
	PlaneXY, PlaneYZ, PlaneZX, PlaneXW, PlaneYW, PlaneZW,
}

func mat4AlmostEq(a, b mgl64.Mat4, eps float64) bool {
	for i := 0; i < 16; i++ {
		if !almostEq(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func TestSimpleRotationIsOrthogonal(t *testing.T) {
	for _, plane := range allPlanes {
		m := SimpleRotation(plane, 0.83)
		if !mat4AlmostEq(m.Mul4(m.Transpose()), mgl64.Ident4(), testEps) {
			t.Errorf("plane %d: R * R^T != I", plane)
		}
	}
}

func TestSimpleRotationPreservesLength(t *testing.T) {
	p := mgl64.Vec4{0.3, -1.2, 2.1, 0.7}
	for _, plane := range allPlanes {
		q := SimpleRotation(plane, 1.9).Mul4x1(p)
		if !almostEq(q.Len(), p.Len(), testEps) {
			t.Errorf("plane %d: length %g, want %g", plane, q.Len(), p.Len())
		}
	}
}

func TestSimpleRotationFullTurn(t *testing.T) {
	for _, plane := range allPlanes {
		m := SimpleRotation(plane, 2*math.Pi)
		if !mat4AlmostEq(m, mgl64.Ident4(), 1e-9) {
			t.Errorf("plane %d: full turn is not the identity", plane)
		}
	}
}

func TestSimpleRotationXWMixesOnlyXW(t *testing.T) {
	m := SimpleRotation(PlaneXW, math.Pi/2)
	got := m.Mul4x1(mgl64.Vec4{1, 2, 3, 0})
	want := mgl64.Vec4{0, 2, 3, 1}
	if !vec4AlmostEq(got, want, testEps) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDoubleRotation(t *testing.T) {
	alpha, beta := 0.4, 1.1
	m := DoubleRotation(alpha, beta)

	if !mat4AlmostEq(m.Mul4(m.Transpose()), mgl64.Ident4(), testEps) {
		t.Errorf("double rotation is not orthogonal")
	}

	// The XY block rotates by alpha, the ZW block by beta.
	gotX := m.Mul4x1(mgl64.Vec4{1, 0, 0, 0})
	wantX := mgl64.Vec4{math.Cos(alpha), math.Sin(alpha), 0, 0}
	if !vec4AlmostEq(gotX, wantX, testEps) {
		t.Errorf("X image %v, want %v", gotX, wantX)
	}
	gotZ := m.Mul4x1(mgl64.Vec4{0, 0, 1, 0})
	wantZ := mgl64.Vec4{0, 0, math.Cos(beta), math.Sin(beta)}
	if !vec4AlmostEq(gotZ, wantZ, testEps) {
		t.Errorf("Z image %v, want %v", gotZ, wantZ)
	}
}
