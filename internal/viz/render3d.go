package viz

import (
	"sort"

	"github.com/san-kum/spaceengine/internal/camera"
	"github.com/san-kum/spaceengine/internal/vmath"
)

type Edge struct {
	Start, End vmath.Vec3
	Ink        string
}

// Wireframe is a set of scene-space edges drawn behind the bodies.
type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe                           { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e vmath.Vec3, ink string) { w.Edges = append(w.Edges, Edge{s, e, ink}) }
func (w *Wireframe) Clear()                              { w.Edges = w.Edges[:0] }

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
	ink            string
}

// Render3D projects the wireframe through cam onto the canvas, far edges
// first. An edge is drawn when either end is in view.
func Render3D(c *Canvas, w *Wireframe, cam *camera.OrbitCamera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	pw, ph := c.PixelWidth(), c.PixelHeight()
	eye := cam.Eye()
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, v1 := cam.Project(e.Start, pw, ph)
		x2, y2, v2 := cam.Project(e.End, pw, ph)
		if !v1 && !v2 {
			continue
		}
		if !finiteScreen(x1, y1) || !finiteScreen(x2, y2) {
			continue
		}
		depth := (eye.Distance(e.Start) + eye.Distance(e.End)) / 2
		proj = append(proj, projectedEdge{int(x1), int(y1), int(x2), int(y2), depth, e.Ink})
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth > proj[j].depth })
	for _, e := range proj {
		c.DrawLine(e.x1, e.y1, e.x2, e.y2, e.ink)
	}
}

// CreateGridWireframe is a square grid of slices×slices cells of the given
// spacing in the y=0 plane, centred on the origin.
func CreateGridWireframe(slices int, spacing float64, ink string) *Wireframe {
	w := NewWireframe()
	half := float64(slices) / 2 * spacing
	for i := 0; i <= slices; i++ {
		o := -half + float64(i)*spacing
		w.AddEdge(vmath.New(o, 0, -half), vmath.New(o, 0, half), ink)
		w.AddEdge(vmath.New(-half, 0, o), vmath.New(half, 0, o), ink)
	}
	return w
}

// finiteScreen guards the int conversion for points projected far outside
// the viewport.
func finiteScreen(x, y float64) bool {
	const limit = 1 << 20
	return x > -limit && x < limit && y > -limit && y < limit
}
