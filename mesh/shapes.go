package mesh

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"polychora/geom"
)

// Shape names a polychoron with a built-in description.
type Shape int

const (
	// Cell5 is the 4-simplex: 5 vertices, 10 edges, 10 triangles,
	// 5 tetrahedral cells.
	Cell5 Shape = iota
	// Cell8 is the hypercube (tesseract): 16 vertices, 32 edges, 24 squares,
	// 8 cubic cells.
	Cell8
	// Cell16 is the cross-polytope: 8 vertices, 24 edges, 32 triangles,
	// 16 tetrahedral cells.
	Cell16
	// Cell24 is the 24-cell: 24 vertices, 96 edges, 96 triangles,
	// 24 octahedral cells.
	Cell24
	// Cell120 is the 120-cell: 600 vertices, 1200 edges, 720 pentagons,
	// 120 dodecahedral cells. Only its H-representation is built in; the
	// topology is loaded from a shape file.
	Cell120
)

var shapeNames = map[Shape]string{
	Cell5:   "cell5",
	Cell8:   "cell8",
	Cell16:  "cell16",
	Cell24:  "cell24",
	Cell120: "cell120",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape maps a shape name from a config file or flag to a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cell5", "5-cell", "simplex":
		return Cell5, nil
	case "cell8", "8-cell", "hypercube", "tesseract":
		return Cell8, nil
	case "cell16", "16-cell", "cross-polytope":
		return Cell16, nil
	case "cell24", "24-cell":
		return Cell24, nil
	case "cell120", "120-cell":
		return Cell120, nil
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Definition returns the flat-array layout constants for the shape.
func (s Shape) Definition() Definition {
	switch s {
	case Cell5:
		return Definition{VerticesPerEdge: 2, VerticesPerFace: 3, FacesPerCell: 4, Cells: 5}
	case Cell8:
		return Definition{VerticesPerEdge: 2, VerticesPerFace: 4, FacesPerCell: 6, Cells: 8}
	case Cell16:
		return Definition{VerticesPerEdge: 2, VerticesPerFace: 3, FacesPerCell: 4, Cells: 16}
	case Cell24:
		return Definition{VerticesPerEdge: 2, VerticesPerFace: 3, FacesPerCell: 8, Cells: 24}
	case Cell120:
		return Definition{VerticesPerEdge: 2, VerticesPerFace: 5, FacesPerCell: 12, Cells: 120}
	}
	return Definition{}
}

// Topology constructs the shape's combinatorial description. The returned
// error is non-nil for shapes too large to build in code (the 120-cell),
// whose topology comes from a shape file instead.
func (s Shape) Topology() (*Topology, error) {
	switch s {
	case Cell5:
		return cell5Topology()
	case Cell8:
		return cell8Topology()
	case Cell16:
		return cell16Topology()
	case Cell24:
		return cell24Topology()
	case Cell120:
		return nil, fmt.Errorf(
			"cell120 has no built-in topology; load it with LoadShapeFile")
	}
	return nil, fmt.Errorf("unknown shape %d", int(s))
}

// HRepresentation returns the shape's bounding hyperplanes, one per cell.
// Normals point outward and displacements are negative, so every vertex v
// satisfies SignedDistance(v) <= 0.
func (s Shape) HRepresentation() []geom.Hyperplane {
	switch s {
	case Cell5:
		return cell5HRep()
	case Cell8:
		return cell8HRep()
	case Cell16:
		return cell16HRep()
	case Cell24:
		return cell24HRep()
	case Cell120:
		return cell120HRep()
	}
	return nil
}

func axis(d int, sign float64) mgl64.Vec4 {
	var v mgl64.Vec4
	v[d] = sign
	return v
}

// 5-cell: a regular simplex centered on the origin with circumradius 4/√5.
// Every pair of vertices is an edge and every triple is a face.
func cell5Topology() (*Topology, error) {
	r5 := math.Sqrt(5)
	vertices := []mgl64.Vec4{
		{1, 1, 1, -1 / r5},
		{1, -1, -1, -1 / r5},
		{-1, 1, -1, -1 / r5},
		{-1, -1, 1, -1 / r5},
		{0, 0, 0, 4 / r5},
	}

	var edges, faces []uint32
	for i := uint32(0); i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, i, j)
			for k := j + 1; k < 5; k++ {
				faces = append(faces, i, j, k)
			}
		}
	}
	return NewTopology(vertices, edges, faces, Cell5.Definition())
}

func cell5HRep() []geom.Hyperplane {
	topo, err := cell5Topology()
	if err != nil {
		panic(err)
	}
	// The cell opposite vertex v lies on the hyperplane with outward normal
	// -v; every other vertex u has v·u = -4/5.
	planes := make([]geom.Hyperplane, 0, 5)
	for _, v := range topo.Vertices {
		planes = append(planes, geom.NewHyperplane(v.Mul(-1), -4.0/5))
	}
	return planes
}

// Hypercube: vertex k has coordinate d equal to +1 when bit d of k is set.
func cell8Topology() (*Topology, error) {
	vertices := make([]mgl64.Vec4, 16)
	for k := 0; k < 16; k++ {
		for d := 0; d < 4; d++ {
			if k&(1<<d) != 0 {
				vertices[k][d] = 1
			} else {
				vertices[k][d] = -1
			}
		}
	}

	var edges []uint32
	for k := uint32(0); k < 16; k++ {
		for d := uint32(0); d < 4; d++ {
			if k&(1<<d) == 0 {
				edges = append(edges, k, k|1<<d)
			}
		}
	}

	var faces []uint32
	for d1 := uint32(0); d1 < 4; d1++ {
		for d2 := d1 + 1; d2 < 4; d2++ {
			a, b := uint32(1)<<d1, uint32(1)<<d2
			for k := uint32(0); k < 16; k++ {
				if k&a == 0 && k&b == 0 {
					faces = append(faces, k, k|a, k|a|b, k|b)
				}
			}
		}
	}
	return NewTopology(vertices, edges, faces, Cell8.Definition())
}

func cell8HRep() []geom.Hyperplane {
	planes := make([]geom.Hyperplane, 0, 8)
	for d := 0; d < 4; d++ {
		planes = append(planes,
			geom.NewHyperplane(axis(d, 1), -1),
			geom.NewHyperplane(axis(d, -1), -1),
		)
	}
	return planes
}

// 16-cell: vertices ±e_d; any set of vertices with no antipodal pair spans
// a simplex face.
func cell16Topology() (*Topology, error) {
	vertices := make([]mgl64.Vec4, 8)
	for d := 0; d < 4; d++ {
		vertices[2*d] = axis(d, 1)
		vertices[2*d+1] = axis(d, -1)
	}

	var edges, faces []uint32
	for i := uint32(0); i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			if i/2 == j/2 {
				continue
			}
			edges = append(edges, i, j)
			for k := j + 1; k < 8; k++ {
				if k/2 == i/2 || k/2 == j/2 {
					continue
				}
				faces = append(faces, i, j, k)
			}
		}
	}
	return NewTopology(vertices, edges, faces, Cell16.Definition())
}

func cell16HRep() []geom.Hyperplane {
	planes := make([]geom.Hyperplane, 0, 16)
	for s := 0; s < 16; s++ {
		var n mgl64.Vec4
		for d := 0; d < 4; d++ {
			if s&(1<<d) != 0 {
				n[d] = 1
			} else {
				n[d] = -1
			}
		}
		planes = append(planes, geom.NewHyperplane(n, -1))
	}
	return planes
}

// 24-cell: vertices are the permutations of (±1, ±1, 0, 0); two vertices
// are adjacent iff their dot product is 1, and every mutually-adjacent
// triple is a face.
func cell24Topology() (*Topology, error) {
	var vertices []mgl64.Vec4
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			for _, sa := range []float64{1, -1} {
				for _, sb := range []float64{1, -1} {
					var v mgl64.Vec4
					v[a], v[b] = sa, sb
					vertices = append(vertices, v)
				}
			}
		}
	}

	adjacent := func(i, j uint32) bool {
		return math.Abs(vertices[i].Dot(vertices[j])-1) < 1e-9
	}

	var edges, faces []uint32
	n := uint32(len(vertices))
	for i := uint32(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !adjacent(i, j) {
				continue
			}
			edges = append(edges, i, j)
			for k := j + 1; k < n; k++ {
				if adjacent(i, k) && adjacent(j, k) {
					faces = append(faces, i, j, k)
				}
			}
		}
	}
	return NewTopology(vertices, edges, faces, Cell24.Definition())
}

func cell24HRep() []geom.Hyperplane {
	planes := make([]geom.Hyperplane, 0, 24)
	for d := 0; d < 4; d++ {
		planes = append(planes,
			geom.NewHyperplane(axis(d, 1), -1),
			geom.NewHyperplane(axis(d, -1), -1),
		)
	}
	for s := 0; s < 16; s++ {
		var n mgl64.Vec4
		for d := 0; d < 4; d++ {
			if s&(1<<d) != 0 {
				n[d] = 0.5
			} else {
				n[d] = -0.5
			}
		}
		planes = append(planes, geom.NewHyperplane(n, -1))
	}
	return planes
}

// evenPerms4 lists the 12 even permutations of (0, 1, 2, 3).
var evenPerms4 = [12][4]int{
	{0, 1, 2, 3}, {0, 2, 3, 1}, {0, 3, 1, 2},
	{1, 0, 3, 2}, {1, 2, 0, 3}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 1, 3, 0}, {2, 3, 0, 1},
	{3, 0, 2, 1}, {3, 1, 0, 2}, {3, 2, 1, 0},
}

// cell120HRep returns the 120 bounding hyperplanes of the 120-cell with
// inradius φ². Their unit normals are the vertex directions of the dual
// 600-cell: 8 axis vectors, 16 half-diagonals, and 96 even permutations of
// (0, ±1/2, ±φ/2, ±1/(2φ)).
func cell120HRep() []geom.Hyperplane {
	phi := (1 + math.Sqrt(5)) / 2
	inradius := phi * phi

	planes := make([]geom.Hyperplane, 0, 120)
	for d := 0; d < 4; d++ {
		planes = append(planes,
			geom.NewHyperplane(axis(d, 1), -inradius),
			geom.NewHyperplane(axis(d, -1), -inradius),
		)
	}
	for s := 0; s < 16; s++ {
		var n mgl64.Vec4
		for d := 0; d < 4; d++ {
			if s&(1<<d) != 0 {
				n[d] = 0.5
			} else {
				n[d] = -0.5
			}
		}
		planes = append(planes, geom.NewHyperplane(n, -inradius))
	}

	base := [4]float64{0, 0.5, phi / 2, 1 / (2 * phi)}
	for _, p := range evenPerms4 {
		v := mgl64.Vec4{base[p[0]], base[p[1]], base[p[2]], base[p[3]]}
		for s := 0; s < 8; s++ {
			n := v
			bit := 0
			for d := 0; d < 4; d++ {
				if n[d] == 0 {
					continue
				}
				if s&(1<<bit) != 0 {
					n[d] = -n[d]
				}
				bit++
			}
			planes = append(planes, geom.NewHyperplane(n, -inradius))
		}
	}
	return planes
}
