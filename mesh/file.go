package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// LoadShapeFile reads a polychoron topology from the plain-text shape
// format:
//
//	number_of_vertices
//	x0 y0 z0 w0
//	...
//	number_of_edges
//	v0 v1
//	...
//	number_of_faces
//	v0 v1 ... (vertices-per-face indices)
//	...
//
// Whitespace and blank lines are interchangeable. The definition supplies
// the face arity, since the file does not carry it. The loaded arrays go
// through the same validation as built-in shapes.
func LoadShapeFile(path string, def Definition) (*Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	topo, err := ReadShape(f, def)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return topo, nil
}

// ReadShape parses the shape format from r. See LoadShapeFile.
func ReadShape(r io.Reader, def Definition) (*Topology, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1<<16), 1<<24)
	sc.Split(bufio.ScanWords)

	nextFloat := func() (float64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("unexpected end of file")
		}
		return strconv.ParseFloat(sc.Text(), 64)
	}
	nextCount := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("missing %s count", what)
		}
		n, err := strconv.Atoi(sc.Text())
		if err != nil || n < 0 {
			return 0, fmt.Errorf("bad %s count %q", what, sc.Text())
		}
		return n, nil
	}
	nextIndex := func() (uint32, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("unexpected end of file")
		}
		n, err := strconv.ParseUint(sc.Text(), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("bad vertex index %q", sc.Text())
		}
		return uint32(n), nil
	}

	nVerts, err := nextCount("vertex")
	if err != nil {
		return nil, err
	}
	verts := make([]mgl64.Vec4, 0, nVerts)
	for i := 0; i < nVerts; i++ {
		var v mgl64.Vec4
		for d := 0; d < 4; d++ {
			if v[d], err = nextFloat(); err != nil {
				return nil, fmt.Errorf("vertex %d: %v", i, err)
			}
		}
		verts = append(verts, v)
	}

	nEdges, err := nextCount("edge")
	if err != nil {
		return nil, err
	}
	edges := make([]uint32, 0, nEdges*int(def.VerticesPerEdge))
	for i := 0; i < nEdges*int(def.VerticesPerEdge); i++ {
		idx, err := nextIndex()
		if err != nil {
			return nil, fmt.Errorf("edge %d: %v", i/int(def.VerticesPerEdge), err)
		}
		edges = append(edges, idx)
	}

	nFaces, err := nextCount("face")
	if err != nil {
		return nil, err
	}
	faces := make([]uint32, 0, nFaces*int(def.VerticesPerFace))
	for i := 0; i < nFaces*int(def.VerticesPerFace); i++ {
		idx, err := nextIndex()
		if err != nil {
			return nil, fmt.Errorf("face %d: %v", i/int(def.VerticesPerFace), err)
		}
		faces = append(faces, idx)
	}

	return NewTopology(verts, edges, faces, def)
}
