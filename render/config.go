/*package render turns slice output into something a person can look at.

It holds the viewer configuration, the cosine color palette, a 3D camera
that projects sliced polygons to screen space, a Wavefront OBJ dump for
headless use, and an interactive ebiten viewer.
*/
package render

import (
	"gopkg.in/gcfg.v1"

	"polychora/mesh"
)

const ExampleViewerFile = `[Viewer]

#######################
# Required Parameters #
#######################

# The polychoron to slice. One of:
# [ cell5 | cell8 | cell16 | cell24 | cell120 ]
# Most shapes also answer to their common names (e.g. "tesseract" and
# "hypercube" both mean cell8).
Shape = cell8

#######################
# Optional Parameters #
#######################

# Vertex, edge and face data for the shape, in the plain-text shape format.
# Required for cell120, which has no built-in vertex table; ignored for the
# other shapes unless set.
# ShapeFile = path/to/cell120.txt

# Window size in pixels.
# Width  = 600
# Height = 600

# Initial displacement of the slicing hyperplane along the w axis, and the
# range the arrow keys can push it through.
# Displacement    = 0.1
# MinDisplacement = -3
# MaxDisplacement = 3

# Radians the 4D rotation advances per frame while not paused.
# RotationSpeed = 0.005

# Worker goroutines for the slice pass. Defaults to the number of CPUs.
# Workers = 0

# Output file which is useful for debugging. Generally, there isn't a
# reason to use this unless something goes wrong.
# LogFile = log.out`

const ExampleDumpFile = `[Dump]

#######################
# Required Parameters #
#######################

# The polychoron to slice. Accepts the same names as the [Viewer] Shape
# parameter.
Shape = cell8

# The Wavefront OBJ file the cross-section will be written to.
Output = slice.obj

#######################
# Optional Parameters #
#######################

# Vertex, edge and face data for the shape, in the plain-text shape format.
# Required for cell120.
# ShapeFile = path/to/cell120.txt

# Displacement of the slicing hyperplane along the w axis.
# Displacement = 0.1

# Worker goroutines for the slice pass. Defaults to the number of CPUs.
# Workers = 0

# Output file which is useful for debugging. Generally, there isn't a
# reason to use this unless something goes wrong.
# LogFile = log.out`

type ViewerConfig struct {
	// Required
	Shape string

	// Optional
	ShapeFile                        string
	Width, Height                    int
	Displacement                     float64
	MinDisplacement, MaxDisplacement float64
	RotationSpeed                    float64
	Workers                          int
	LogFile                          string
}

type ViewerWrapper struct {
	Viewer ViewerConfig
}

func DefaultViewerWrapper() *ViewerWrapper {
	vc := ViewerConfig{}
	vc.Width, vc.Height = 600, 600
	vc.Displacement = 0.1
	vc.MinDisplacement, vc.MaxDisplacement = -3, 3
	vc.RotationSpeed = 0.005
	return &ViewerWrapper{vc}
}

// ReadViewerConfig reads file over the defaults and returns the embedded
// config. Validation stays with the caller, matching the flag handling in
// main.
func ReadViewerConfig(file string) (*ViewerConfig, error) {
	wrap := DefaultViewerWrapper()
	if err := gcfg.ReadFileInto(wrap, file); err != nil {
		return nil, err
	}
	return &wrap.Viewer, nil
}

type DumpConfig struct {
	// Required
	Shape  string
	Output string

	// Optional
	ShapeFile    string
	Displacement float64
	Workers      int
	LogFile      string
}

type DumpWrapper struct {
	Dump DumpConfig
}

func DefaultDumpWrapper() *DumpWrapper {
	dc := DumpConfig{}
	dc.Displacement = 0.1
	return &DumpWrapper{dc}
}

// ReadDumpConfig reads file over the defaults and returns the embedded
// config.
func ReadDumpConfig(file string) (*DumpConfig, error) {
	wrap := DefaultDumpWrapper()
	if err := gcfg.ReadFileInto(wrap, file); err != nil {
		return nil, err
	}
	return &wrap.Dump, nil
}

func (con *DumpConfig) ValidShape() bool {
	_, err := mesh.ParseShape(con.Shape)
	return err == nil
}

func (con *DumpConfig) ValidOutput() bool {
	return con.Output != ""
}

func (con *ViewerConfig) ValidShape() bool {
	_, err := mesh.ParseShape(con.Shape)
	return err == nil
}

func (con *ViewerConfig) ValidWindow() bool {
	return con.Width > 0 && con.Height > 0
}

func (con *ViewerConfig) ValidDisplacementRange() bool {
	return con.MinDisplacement < con.MaxDisplacement &&
		con.Displacement >= con.MinDisplacement &&
		con.Displacement <= con.MaxDisplacement
}
