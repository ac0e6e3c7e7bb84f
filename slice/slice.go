/*package slice computes per-frame cross sections of a tetrahedron list.

A Slicer is bound to one tetrahedron list at creation and reused every
frame: Slice cuts all tetrahedra against a hyperplane under a rigid 4D
transform and writes one polygon per tetrahedron into a caller-owned
output slice. Output index i always corresponds to tetrahedron i, so a
caller can map polygons back to their source cell without bookkeeping.
*/
package slice

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"

	"polychora/geom"
)

// Params selects the cut made by a single Slice pass: the slicing
// hyperplane and the rigid transform applied to every tetrahedron corner
// before the side tests.
type Params struct {
	Plane     geom.Hyperplane
	Transform mgl64.Mat4
}

// Slicer slices a fixed tetrahedron list against per-frame parameters.
// The tetrahedron list is shared, not copied, and must not change while
// the Slicer is in use. A Slicer is safe for repeated Slice calls but not
// for concurrent ones.
type Slicer struct {
	tets    []geom.Tetrahedron
	workers int
}

// NewSlicer binds a Slicer to tets. If workers is not positive, one worker
// per CPU is used.
func NewSlicer(tets []geom.Tetrahedron, workers int) *Slicer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(tets) && len(tets) > 0 {
		workers = len(tets)
	}
	return &Slicer{tets: tets, workers: workers}
}

// NumTetrahedra returns the length of the bound tetrahedron list, which is
// also the required output length for Slice.
func (sl *Slicer) NumTetrahedra() int { return len(sl.tets) }

// Slice cuts every bound tetrahedron against p and writes the resulting
// polygon to out[i] for tetrahedron i. Tetrahedra the hyperplane misses
// produce empty polygons. Degenerate cuts are counted, logged, and written
// as empty polygons rather than aborting the pass, since a single bad
// tetrahedron should not blank an entire frame.
func (sl *Slicer) Slice(p Params, out []geom.Polygon) error {
	if len(out) != len(sl.tets) {
		return fmt.Errorf(
			"output length %d does not match tetrahedron count %d",
			len(out), len(sl.tets),
		)
	}
	if len(sl.tets) == 0 {
		return nil
	}

	errCounts := make(chan int, sl.workers)

	for id := 0; id < sl.workers-1; id++ {
		go sl.chanSlice(id, p, out, errCounts)
	}
	sl.chanSlice(sl.workers-1, p, out, errCounts)

	failed := 0
	for i := 0; i < sl.workers; i++ {
		failed += <-errCounts
	}
	if failed > 0 {
		log.Printf("Dropped %d degenerate cross sections", failed)
	}
	return nil
}

// chanSlice cuts the strided subset id, id+workers, id+2*workers, ... and
// reports its degenerate-cut count on errCounts.
func (sl *Slicer) chanSlice(id int, p Params, out []geom.Polygon, errCounts chan<- int) {
	failed := 0
	for i := id; i < len(sl.tets); i += sl.workers {
		poly, err := sl.tets[i].Slice(p.Plane, p.Transform)
		if err != nil {
			out[i] = geom.Polygon{}
			failed++
			continue
		}
		out[i] = poly
	}
	errCounts <- failed
}
