package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"polychora/geom"
	"polychora/mesh"
	"polychora/render"
	"polychora/slice"
)

func main() {
	var (
		view, dump    string
		exampleConfig string
	)
	vars := map[string]*string{
		"View":          &view,
		"Dump":          &dump,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&view, "View", "",
		"Configuration file for [Viewer] mode.",
	)
	flag.StringVar(
		&dump, "Dump", "",
		"Configuration file for [Dump] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'View' "+
			"and 'Dump'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "View":
		con, err := render.ReadViewerConfig(view)
		if err != nil { log.Fatal(err.Error()) }

		if !con.ValidShape() {
			log.Fatal("Invalid/non-existent 'Shape' value.")
		} else if !con.ValidWindow() {
			log.Fatal("Invalid 'Width'/'Height' values.")
		} else if !con.ValidDisplacementRange() {
			log.Fatal("Invalid 'Displacement' range.")
		}

		fg := setupLog(con.LogFile)
		defer fg.Close()

		tets, cells := loadShape(con.Shape, con.ShapeFile)
		viewer := render.NewViewer(tets, cells, *con)
		if err := viewer.Run(); err != nil { log.Fatal(err.Error()) }

	case "Dump":
		con, err := render.ReadDumpConfig(dump)
		if err != nil { log.Fatal(err.Error()) }

		if !con.ValidShape() {
			log.Fatal("Invalid/non-existent 'Shape' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		}

		fg := setupLog(con.LogFile)
		defer fg.Close()

		dumpMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "View":
			fmt.Println(render.ExampleViewerFile)
		case "Dump":
			fmt.Println(render.ExampleDumpFile)
		default:
			log.Fatalf(
				"Unrecognized 'ExampleConfig' argument %q. Accepted "+
					"arguments are 'View' and 'Dump'.", exampleConfig,
			)
		}
	}
}

func dumpMain(con *render.DumpConfig) {
	tets, _ := loadShape(con.Shape, con.ShapeFile)

	sl := slice.NewSlicer(tets, con.Workers)
	plane := geom.NewHyperplane(mgl64.Vec4{0, 0, 0, 1}, -con.Displacement)
	polys := make([]geom.Polygon, sl.NumTetrahedra())

	err := sl.Slice(slice.Params{Plane: plane, Transform: mgl64.Ident4()}, polys)
	if err != nil { log.Fatal(err.Error()) }

	err = render.DumpOBJ(con.Output, polys, plane)
	if err != nil { log.Fatal(err.Error()) }

	log.Printf("Wrote cross-section to %s", con.Output)
}

// loadShape builds the tetrahedron list for a named shape, reading the
// topology from file when one is given (cell120 requires one). Returns the
// tetrahedra and the shape's cell count.
func loadShape(name, file string) ([]geom.Tetrahedron, int) {
	shape, err := mesh.ParseShape(name)
	if err != nil { log.Fatal(err.Error()) }

	var topo *mesh.Topology
	if file != "" {
		topo, err = mesh.LoadShapeFile(file, shape.Definition())
	} else {
		topo, err = shape.Topology()
	}
	if err != nil { log.Fatal(err.Error()) }

	cells := mesh.ReconstructCells(topo, shape.HRepresentation())
	tets := mesh.Tetrahedralize(topo, cells)
	log.Printf(
		"Loaded %v: %d vertices, %d cells, %d tetrahedra",
		shape, topo.NumVertices(), len(cells), len(tets),
	)
	return tets, len(cells)
}

type FileGroup struct {
	log *os.File
}

func setupLog(path string) *FileGroup {
	fg := &FileGroup{}
	if path == "" { return fg }

	var err error
	fg.log, err = os.Create(path)
	if err != nil { log.Fatal(err.Error()) }
	log.SetOutput(fg.log)
	return fg
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but polychora "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}
