package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func squareTopology(t *testing.T) *Topology {
	t.Helper()
	topo, err := NewTopology(
		[]mgl64.Vec4{
			{-1, -1, 0, 0}, {1, -1, 0, 0}, {1, 1, 0, 0}, {-1, 1, 0, 0},
		},
		[]uint32{0, 1, 1, 2, 2, 3, 3, 0},
		[]uint32{0, 1, 2, 3},
		Definition{VerticesPerEdge: 2, VerticesPerFace: 4, FacesPerCell: 1, Cells: 1},
	)
	if err != nil {
		t.Fatalf("NewTopology failed: %v", err)
	}
	return topo
}

func TestTopologyAccessors(t *testing.T) {
	topo := squareTopology(t)

	assert.Equal(t, 4, topo.NumVertices())
	assert.Equal(t, 4, topo.NumEdges())
	assert.Equal(t, 1, topo.NumFaces())

	a, b := topo.EdgeVertices(1)
	assert.Equal(t, mgl64.Vec4{1, -1, 0, 0}, a)
	assert.Equal(t, mgl64.Vec4{1, 1, 0, 0}, b)

	assert.Equal(t, []uint32{0, 1, 2, 3}, topo.FaceVertexIndices(0))
	assert.Len(t, topo.FaceVertices(0), 4)
	assert.Equal(t, topo.Vertex(2), topo.FaceVertices(0)[2])
}

func TestNewTopologyRejectsBadInput(t *testing.T) {
	vertices := []mgl64.Vec4{{0, 0, 0, 0}, {1, 0, 0, 0}}
	def := Definition{VerticesPerEdge: 2, VerticesPerFace: 3, FacesPerCell: 1, Cells: 1}

	_, err := NewTopology(nil, nil, nil, def)
	assert.Error(t, err, "empty vertex list")

	_, err = NewTopology(vertices, []uint32{0}, nil, def)
	assert.Error(t, err, "edge array not a multiple of the edge arity")

	_, err = NewTopology(vertices, []uint32{0, 1}, []uint32{0, 1}, def)
	assert.Error(t, err, "face array not a multiple of the face arity")

	_, err = NewTopology(vertices, []uint32{0, 7}, nil, def)
	assert.Error(t, err, "edge index out of range")

	_, err = NewTopology(vertices, nil, []uint32{0, 1, 9}, def)
	assert.Error(t, err, "face index out of range")

	_, err = NewTopology(vertices, []uint32{0, 1}, nil,
		Definition{VerticesPerEdge: 0, VerticesPerFace: 3})
	assert.Error(t, err, "zero arity")
}
