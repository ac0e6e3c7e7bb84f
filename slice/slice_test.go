package slice

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polychora/geom"
	"polychora/mesh"
)

func hypercubeTets(t testing.TB) []geom.Tetrahedron {
	topo, err := mesh.Cell8.Topology()
	require.NoError(t, err)
	cells := mesh.ReconstructCells(topo, mesh.Cell8.HRepresentation())
	return mesh.Tetrahedralize(topo, cells)
}

func midCutParams() Params {
	return Params{
		Plane:     geom.NewHyperplane(mgl64.Vec4{0, 0, 0, 1}, -0.5),
		Transform: mgl64.Ident4(),
	}
}

func TestSlicerOutputLengthMustMatch(t *testing.T) {
	sl := NewSlicer(hypercubeTets(t), 1)

	err := sl.Slice(midCutParams(), make([]geom.Polygon, 3))
	assert.Error(t, err)

	err = sl.Slice(midCutParams(), make([]geom.Polygon, sl.NumTetrahedra()))
	assert.NoError(t, err)
}

func TestSlicerStableIndexing(t *testing.T) {
	tets := hypercubeTets(t)
	sl := NewSlicer(tets, 4)
	out := make([]geom.Polygon, sl.NumTetrahedra())
	require.NoError(t, sl.Slice(midCutParams(), out))

	// Output slot i holds exactly the polygon tetrahedron i produces on
	// its own.
	for i := range tets {
		want, err := tets[i].Slice(midCutParams().Plane, mgl64.Ident4())
		require.NoError(t, err)
		assert.Equal(t, want, out[i], "tetrahedron %d", i)
	}
}

func TestSlicerParallelMatchesSerial(t *testing.T) {
	tets := hypercubeTets(t)
	serial := NewSlicer(tets, 1)
	parallel := NewSlicer(tets, 7)

	p := Params{
		Plane:     geom.NewHyperplane(mgl64.Vec4{1, 1, 1, 1}, -0.3),
		Transform: geom.SimpleRotation(geom.PlaneXW, 0.4),
	}

	outSerial := make([]geom.Polygon, len(tets))
	outParallel := make([]geom.Polygon, len(tets))
	require.NoError(t, serial.Slice(p, outSerial))
	require.NoError(t, parallel.Slice(p, outParallel))

	assert.Equal(t, outSerial, outParallel)
}

func TestSlicerMissedPlaneGivesEmptyPolygons(t *testing.T) {
	sl := NewSlicer(hypercubeTets(t), 0)
	out := make([]geom.Polygon, sl.NumTetrahedra())

	p := Params{
		Plane:     geom.NewHyperplane(mgl64.Vec4{0, 0, 0, 1}, -10),
		Transform: mgl64.Ident4(),
	}
	require.NoError(t, sl.Slice(p, out))

	for i, poly := range out {
		assert.Equal(t, geom.EmptyPolygon, poly.Kind, "tetrahedron %d", i)
	}
}

func TestSlicerDegenerateTetrahedronDegradesToEmpty(t *testing.T) {
	// The cutting plane passes exactly through one corner of this
	// tetrahedron, producing 5 intersection points. The pass must log the
	// failure and still fill every other slot.
	bad := geom.Tetrahedron{Corners: [4]mgl64.Vec4{
		{0, 0, 0, 0}, {1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 0.5},
	}}
	tets := append(hypercubeTets(t), bad)

	sl := NewSlicer(tets, 2)
	out := make([]geom.Polygon, sl.NumTetrahedra())
	require.NoError(t, sl.Slice(midCutParams(), out))

	assert.Equal(t, geom.EmptyPolygon, out[len(out)-1].Kind)

	nonEmpty := 0
	for _, poly := range out[:len(out)-1] {
		if poly.Kind != geom.EmptyPolygon {
			nonEmpty++
		}
	}
	assert.Greater(t, nonEmpty, 0)
}

func TestNewSlicerEmptyList(t *testing.T) {
	sl := NewSlicer(nil, 0)
	assert.Equal(t, 0, sl.NumTetrahedra())
	assert.NoError(t, sl.Slice(midCutParams(), nil))
}

func BenchmarkSlicerHypercube(b *testing.B) {
	tets := hypercubeTets(b)
	sl := NewSlicer(tets, 0)
	out := make([]geom.Polygon, len(tets))
	p := midCutParams()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := sl.Slice(p, out); err != nil {
			b.Fatal(err)
		}
	}
}
