package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"polychora/geom"
)

// WriteOBJ writes the polygons of one slice pass as a Wavefront OBJ mesh.
// Every polygon is projected to 3-space through the slicing hyperplane and
// emitted as a triangle fan; empty polygons are skipped. Vertices are not
// deduplicated across polygons.
func WriteOBJ(w io.Writer, polys []geom.Polygon, plane geom.Hyperplane) error {
	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, "# polychora cross section: %d polygons\n", len(polys))

	// OBJ vertex indices are 1-based.
	next := 1
	for _, poly := range polys {
		n := poly.Len()
		if n == 0 {
			continue
		}

		for _, p := range poly.Points[:n] {
			v := plane.Project3D(p)
			fmt.Fprintf(buf, "v %g %g %g\n", v.X(), v.Y(), v.Z())
		}
		for i := 2; i < n; i++ {
			fmt.Fprintf(buf, "f %d %d %d\n", next, next+i-1, next+i)
		}
		next += n
	}

	return buf.Flush()
}

// DumpOBJ writes one slice pass to the named file. See WriteOBJ.
func DumpOBJ(path string, polys []geom.Polygon, plane geom.Hyperplane) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteOBJ(f, polys, plane); err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}
	return nil
}
