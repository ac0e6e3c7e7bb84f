package mesh

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"polychora/geom"
)

// Tetrahedralize decomposes every reconstructed cell into tetrahedra and
// returns them as one flat list, the only structure per-frame slicing
// consumes.
//
// Each cell is fanned from a fixed apex vertex: the first vertex of the
// cell's first face. Faces touching the apex would produce zero-volume
// tetrahedra and are skipped; every other face is put into cyclic order on
// the cell's bounding hyperplane, triangulated as a fan, and each fan
// triangle joined to the apex. Apex selection is an arbitrary but
// deterministic tie-break, so repeated runs produce identical output.
func Tetrahedralize(topo *Topology, cells []Cell) []geom.Tetrahedron {
	var tetrahedra []geom.Tetrahedron

	for ci, cell := range cells {
		if len(cell.Faces) == 0 {
			log.Printf("mesh: cell %d has no faces, skipping", ci)
			continue
		}

		centroid := cellCentroid(topo, cell)
		apex := topo.FaceVertexIndices(int(cell.Faces[0]))[0]
		apexPos := topo.Vertex(apex)

		for _, fi := range cell.Faces {
			if faceContains(topo, int(fi), apex) {
				continue
			}

			sorted := geom.SortPointsOnPlane(topo.FaceVertices(int(fi)), cell.Plane)
			for i := 1; i < len(sorted)-1; i++ {
				tetrahedra = append(tetrahedra, geom.Tetrahedron{
					Corners: [4]mgl64.Vec4{
						sorted[0], sorted[i], sorted[i+1], apexPos,
					},
					Cell:         uint32(ci),
					CellCentroid: centroid,
				})
			}
		}
	}

	return tetrahedra
}

// cellCentroid averages the centroids of the cell's faces, which for equal
// face arities is the average of all face-vertex positions.
func cellCentroid(topo *Topology, cell Cell) mgl64.Vec4 {
	var sum mgl64.Vec4
	n := 0
	for _, fi := range cell.Faces {
		for _, v := range topo.FaceVertices(int(fi)) {
			sum = sum.Add(v)
			n++
		}
	}
	return sum.Mul(1 / float64(n))
}

func faceContains(topo *Topology, face int, vertex uint32) bool {
	for _, idx := range topo.FaceVertexIndices(face) {
		if idx == vertex {
			return true
		}
	}
	return false
}
