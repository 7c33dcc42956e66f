package sim

import (
	"fmt"

	"github.com/san-kum/spaceengine/internal/config"
	"github.com/san-kum/spaceengine/internal/physics"
)

// FromScene builds the named scene's bodies and a solver configured from
// cfg.Physics.
func FromScene(cfg *config.Constants, name string, opts ...Option) (*Simulator, config.Scene, error) {
	scene, err := config.GetScene(name)
	if err != nil {
		return nil, config.Scene{}, err
	}
	bodies, err := physics.BuildScene(scene, cfg.Physics.AU)
	if err != nil {
		return nil, config.Scene{}, fmt.Errorf("scene %s: %w", name, err)
	}
	solver := physics.NewGravitySolver(cfg.Physics.G, physics.WithWorkers(cfg.Physics.Workers))
	return New(bodies, solver, opts...), scene, nil
}

// LargestRenderRadius is the biggest body radius in scene units.
func (s *Simulator) LargestRenderRadius(scale float64) float64 {
	r := 0.0
	for _, b := range s.bodies {
		r = max(r, b.RenderRadius(scale))
	}
	return r
}

// RenderExtent is the farthest body's distance from the origin in scene
// units.
func (s *Simulator) RenderExtent(scale float64) float64 {
	r := 0.0
	for _, b := range s.bodies {
		r = max(r, b.RenderPosition(scale).Length())
	}
	return r
}
