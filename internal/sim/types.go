package sim

import (
	"github.com/san-kum/spaceengine/internal/physics"
	"github.com/san-kum/spaceengine/internal/vmath"
)

// StepInfo describes a completed step.
type StepInfo struct {
	Step int
	Time float64
	Dt   float64
}

// Metric accumulates a scalar over a run. Observe sees the bodies after
// every integrated step.
type Metric interface {
	Name() string
	Observe(bodies []*physics.Body, info StepInfo)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(bodies []*physics.Body, info StepInfo)
}

type RunConfig struct {
	Dt            float64
	Steps         int
	SampleEvery   int
	ValidateState bool
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		Dt:            1000,
		Steps:         10000,
		SampleEvery:   100,
		ValidateState: true,
	}
}

// Result holds sampled trajectories. Samples[k][i] is body i's physical
// position at Times[k].
type Result struct {
	Names       []string
	Times       []float64
	Samples     [][]vmath.Vec3
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Errors      []error
}

// Track returns the sampled positions of the named body, or nil.
func (r *Result) Track(name string) []vmath.Vec3 {
	idx := -1
	for i, n := range r.Names {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	track := make([]vmath.Vec3, len(r.Samples))
	for k, s := range r.Samples {
		track[k] = s[idx]
	}
	return track
}
