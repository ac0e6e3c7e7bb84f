package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const testEps = 1e-9

func almostEq(x, y, eps float64) bool {
	return math.Abs(x-y) <= eps
}

func vec4AlmostEq(a, b mgl64.Vec4, eps float64) bool {
	for i := 0; i < 4; i++ {
		if !almostEq(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func TestNewHyperplaneNormalizes(t *testing.T) {
	h := NewHyperplane(mgl64.Vec4{2, 0, 0, 0}, -2)

	if !almostEq(h.Normal.Len(), 1, testEps) {
		t.Errorf("normal length %g, want 1", h.Normal.Len())
	}
	// The plane x = 1 must be unchanged by the rescaling.
	if d := h.SignedDistance(mgl64.Vec4{1, 5, -3, 2}); !almostEq(d, 0, testEps) {
		t.Errorf("point on plane has signed distance %g", d)
	}
	if d := h.SignedDistance(mgl64.Vec4{3, 0, 0, 0}); !almostEq(d, 2, testEps) {
		t.Errorf("signed distance %g, want 2", d)
	}
}

func TestSignedDistanceSign(t *testing.T) {
	h := NewHyperplane(mgl64.Vec4{0, 0, 0, 1}, -0.5)

	if d := h.SignedDistance(mgl64.Vec4{0, 0, 0, 1}); d <= 0 {
		t.Errorf("point past the plane: signed distance %g, want > 0", d)
	}
	if d := h.SignedDistance(mgl64.Vec4{0, 0, 0, 0}); d >= 0 {
		t.Errorf("point before the plane: signed distance %g, want < 0", d)
	}
	if h.Side(mgl64.Vec4{1, 2, 3, 4}) != h.SignedDistance(mgl64.Vec4{1, 2, 3, 4}) {
		t.Errorf("Side and SignedDistance disagree")
	}
}

func TestInsideIsCoincidenceTest(t *testing.T) {
	h := NewHyperplane(mgl64.Vec4{1, 0, 0, 0}, -1)

	on := mgl64.Vec4{1, 0.3, -0.7, 0.2}
	near := mgl64.Vec4{1 + CoincidenceEpsilon/2, 0, 0, 0}
	off := mgl64.Vec4{1.5, 0, 0, 0}
	deepInside := mgl64.Vec4{0, 0, 0, 0}

	if !h.Inside(on) {
		t.Errorf("point on the plane not recognized")
	}
	if !h.Inside(near) {
		t.Errorf("point within tolerance not recognized")
	}
	if h.Inside(off) {
		t.Errorf("point off the plane recognized as on it")
	}
	// A point well inside the half-space is NOT "inside" the hyperplane:
	// this is a coincidence test, not a half-space test.
	if h.Inside(deepInside) {
		t.Errorf("interior point recognized as on the plane")
	}
}
