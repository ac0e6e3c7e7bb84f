package render

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"polychora/geom"
	"polychora/slice"
)

// Keys: up/down move the slicing hyperplane, space pauses the rotation,
// R resets displacement and rotation to their initial state.
const (
	displacementStep = 0.01
	// A hyperplane passing exactly through the origin cuts a centered
	// polychoron through its vertices, which degenerates the slice. The
	// displacement is pushed off zero by this much.
	displacementNudge = 1e-3
)

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// Viewer is an interactive ebiten app that re-slices one polychoron every
// frame: a hyperplane normal to the w axis sweeps the shape while the shape
// itself tumbles through a 4D double rotation.
type Viewer struct {
	cfg    ViewerConfig
	slicer *slice.Slicer
	cam    *Camera

	polys  []geom.Polygon
	colors []color.RGBA

	displacement float64
	alpha, beta  float64
	paused       bool

	sliceErr error
}

// NewViewer binds a viewer to a tetrahedron list. cells is the cell count
// of the source polychoron and fixes the per-cell coloring.
func NewViewer(tets []geom.Tetrahedron, cells int, cfg ViewerConfig) *Viewer {
	v := &Viewer{
		cfg:          cfg,
		slicer:       slice.NewSlicer(tets, cfg.Workers),
		cam:          DefaultCamera(float64(cfg.Width) / float64(cfg.Height)),
		polys:        make([]geom.Polygon, len(tets)),
		colors:       make([]color.RGBA, len(tets)),
		displacement: cfg.Displacement,
	}
	for i, tet := range tets {
		v.colors[i] = RGBA(CellColor(tet.Cell, cells), 1)
	}
	return v
}

// Run opens the viewer window and blocks until it is closed.
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.cfg.Width, v.cfg.Height)
	ebiten.SetWindowTitle("polychora")
	return ebiten.RunGame(v)
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.displacement = v.cfg.Displacement
		v.alpha, v.beta = 0, 0
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.displacement += displacementStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.displacement -= displacementStep
	}
	v.displacement = mgl64.Clamp(
		v.displacement, v.cfg.MinDisplacement, v.cfg.MaxDisplacement,
	)
	if v.displacement == 0 {
		v.displacement = displacementNudge
	}

	if !v.paused {
		v.alpha += v.cfg.RotationSpeed
		v.beta += v.cfg.RotationSpeed * 0.5
	}

	params := slice.Params{
		Plane:     v.slicePlane(),
		Transform: geom.DoubleRotation(v.alpha, v.beta),
	}
	v.sliceErr = v.slicer.Slice(params, v.polys)
	return v.sliceErr
}

// slicePlane is the sweep hyperplane w = displacement.
func (v *Viewer) slicePlane() geom.Hyperplane {
	return geom.NewHyperplane(mgl64.Vec4{0, 0, 0, 1}, -v.displacement)
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	plane := v.slicePlane()
	src := whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillAll

	var vertices []ebiten.Vertex
	var indices []uint16

	for pi, poly := range v.polys {
		n := poly.Len()
		if n == 0 {
			continue
		}

		clr := v.colors[pi]
		cr := float32(clr.R) / 255
		cg := float32(clr.G) / 255
		cb := float32(clr.B) / 255

		base := uint16(len(vertices))
		visible := true
		for _, p := range poly.Points[:n] {
			x, y, ok := v.cam.Project(plane.Project3D(p), v.cfg.Width, v.cfg.Height)
			if !ok {
				visible = false
				break
			}
			vertices = append(vertices, ebiten.Vertex{
				DstX: float32(x), DstY: float32(y),
				SrcX: 1, SrcY: 1,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
			})
		}
		if !visible {
			vertices = vertices[:base]
			continue
		}
		for i := 2; i < n; i++ {
			indices = append(indices, base, base+uint16(i-1), base+uint16(i))
		}
	}

	if len(indices) > 0 {
		screen.DrawTriangles(vertices, indices, src, op)
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}
