/*package mesh describes 4D polytopes combinatorially and decomposes them
into tetrahedra.

A polychoron is held as a Topology: vertex positions plus flat index arrays
for edges and faces, with a Definition fixing the per-element arities. Cell
reconstruction matches faces to the polytope's bounding hyperplanes (its
H-representation), and tetrahedralization turns the reconstructed cells into
the flat tetrahedron list that per-frame slicing consumes. Both run once at
load time.
*/
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Definition fixes the layout constants of a polychoron's flat index
// arrays: how many vertex indices make one edge, one face, and how many
// faces bound one cell.
type Definition struct {
	VerticesPerEdge uint32
	VerticesPerFace uint32
	FacesPerCell    uint32
	Cells           uint32
}

// Topology is the immutable combinatorial description of a polychoron.
// Edges and Faces are flat index arrays into Vertices, grouped by the
// arities in Def. Construct through NewTopology, which validates the
// invariants; the fields are read-only afterward.
type Topology struct {
	Vertices []mgl64.Vec4
	Edges    []uint32
	Faces    []uint32
	Def      Definition
}

// NewTopology validates and wraps a polychoron description. Array lengths
// that are not multiples of the declared arities and indices out of range
// are data errors that reject the shape.
func NewTopology(
	vertices []mgl64.Vec4, edges, faces []uint32, def Definition,
) (*Topology, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("topology has no vertices")
	}
	if def.VerticesPerEdge == 0 || def.VerticesPerFace == 0 {
		return nil, fmt.Errorf("definition arities must be non-zero: %+v", def)
	}
	if len(edges)%int(def.VerticesPerEdge) != 0 {
		return nil, fmt.Errorf(
			"edge array length %d is not a multiple of %d",
			len(edges), def.VerticesPerEdge,
		)
	}
	if len(faces)%int(def.VerticesPerFace) != 0 {
		return nil, fmt.Errorf(
			"face array length %d is not a multiple of %d",
			len(faces), def.VerticesPerFace,
		)
	}
	for i, idx := range edges {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf(
				"edge array entry %d references vertex %d of %d",
				i, idx, len(vertices),
			)
		}
	}
	for i, idx := range faces {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf(
				"face array entry %d references vertex %d of %d",
				i, idx, len(vertices),
			)
		}
	}

	return &Topology{Vertices: vertices, Edges: edges, Faces: faces, Def: def}, nil
}

// NumVertices returns the number of unique vertices in the polytope.
func (t *Topology) NumVertices() int { return len(t.Vertices) }

// NumEdges returns the number of unique edges in the polytope.
func (t *Topology) NumEdges() int {
	return len(t.Edges) / int(t.Def.VerticesPerEdge)
}

// NumFaces returns the number of unique faces in the polytope.
func (t *Topology) NumFaces() int {
	return len(t.Faces) / int(t.Def.VerticesPerFace)
}

// Vertex returns the position of the ith vertex.
func (t *Topology) Vertex(i uint32) mgl64.Vec4 { return t.Vertices[i] }

// EdgeVertices returns the unordered pair of vertex positions making up the
// ith edge.
func (t *Topology) EdgeVertices(i int) (mgl64.Vec4, mgl64.Vec4) {
	s := i * int(t.Def.VerticesPerEdge)
	return t.Vertex(t.Edges[s]), t.Vertex(t.Edges[s+1])
}

// FaceVertexIndices returns the unordered vertex indices of the ith face.
// The returned slice aliases the topology's face array.
func (t *Topology) FaceVertexIndices(i int) []uint32 {
	s := i * int(t.Def.VerticesPerFace)
	return t.Faces[s : s+int(t.Def.VerticesPerFace)]
}

// FaceVertices returns the unordered vertex positions of the ith face.
func (t *Topology) FaceVertices(i int) []mgl64.Vec4 {
	idxs := t.FaceVertexIndices(i)
	vertices := make([]mgl64.Vec4, len(idxs))
	for j, idx := range idxs {
		vertices[j] = t.Vertex(idx)
	}
	return vertices
}
