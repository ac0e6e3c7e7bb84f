package mesh

import (
	"log"

	"polychora/geom"
)

// Cell pairs one bounding hyperplane of the polytope with the indices of
// the faces lying on it. Cells only exist between load and
// tetrahedralization; nothing downstream keeps them.
type Cell struct {
	Plane geom.Hyperplane
	Faces []uint32
}

// ReconstructCells classifies every face of the polytope into the cells
// bounded by the given H-representation. A face belongs to a hyperplane's
// cell iff all of its vertices lie on that hyperplane (the tolerance-based
// coincidence test).
//
// Faces claimed by no hyperplane and cells with an unexpected face count
// indicate a bad H-representation table or a degenerate tolerance. They are
// logged loudly but the cells are still returned as found, so a
// partially-wrong shape stays inspectable.
//
// Cost is O(hyperplanes × faces × vertices per face), paid once at load.
func ReconstructCells(topo *Topology, planes []geom.Hyperplane) []Cell {
	cells := make([]Cell, 0, len(planes))
	claimed := make([]int, topo.NumFaces())

	for _, plane := range planes {
		var faces []uint32

		for fi := 0; fi < topo.NumFaces(); fi++ {
			inside := true
			for _, idx := range topo.FaceVertexIndices(fi) {
				if !plane.Inside(topo.Vertex(idx)) {
					inside = false
					break
				}
			}
			if inside {
				faces = append(faces, uint32(fi))
				claimed[fi]++
			}
		}

		if uint32(len(faces)) != topo.Def.FacesPerCell {
			log.Printf(
				"mesh: hyperplane with normal %v claims %d faces, expected %d",
				plane.Normal, len(faces), topo.Def.FacesPerCell,
			)
		}
		cells = append(cells, Cell{Plane: plane, Faces: faces})
	}

	orphans := 0
	for _, n := range claimed {
		if n == 0 {
			orphans++
		}
	}
	if orphans > 0 {
		log.Printf(
			"mesh: %d of %d faces claimed by no hyperplane; "+
				"H-representation is inconsistent with the topology",
			orphans, topo.NumFaces(),
		)
	}

	return cells
}
