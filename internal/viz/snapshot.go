package viz

import (
	"math"
	"sort"

	"github.com/san-kum/spaceengine/internal/camera"
	"github.com/san-kum/spaceengine/internal/physics"
)

type drawable struct {
	x, y  float64
	r     int
	depth float64
	ink   string
}

// DrawBodies paints each visible body as a disc in its own colour, far
// bodies first so near ones cover them.
func DrawBodies(c *Canvas, bodies []*physics.Body, cam *camera.OrbitCamera, scale float64) {
	pw, ph := c.PixelWidth(), c.PixelHeight()
	eye := cam.Eye()

	visible := make([]drawable, 0, len(bodies))
	for _, b := range bodies {
		p := b.RenderPosition(scale)
		x, y, ok := cam.Project(p, pw, ph)
		if !ok {
			continue
		}
		r := cam.ProjectRadius(p, b.RenderRadius(scale), ph)
		visible = append(visible, drawable{x, y, int(math.Min(r, float64(ph))), eye.Distance(p), Ink(b.Color())})
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].depth > visible[j].depth })
	for _, d := range visible {
		c.FillDisc(int(d.x), int(d.y), d.r, d.ink)
	}
}

// Snapshot draws a single w x h cell frame of bodies over a ground grid
// sized to extent.
func Snapshot(bodies []*physics.Body, cam *camera.OrbitCamera, scale, extent float64, w, h int) *Canvas {
	c := NewCanvas(w, h)
	Render3D(c, CreateGridWireframe(10, math.Max(1, extent/5), gridInk), cam)
	DrawBodies(c, bodies, cam, scale)
	return c
}
