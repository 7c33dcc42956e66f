package metrics

import (
	"math"

	"github.com/san-kum/spaceengine/internal/physics"
	"github.com/san-kum/spaceengine/internal/sim"
	"github.com/san-kum/spaceengine/internal/vmath"
)

// MomentumDrift reports the largest change in total linear momentum,
// relative to the sum of the bodies' momentum magnitudes at the first
// observed step. Pairwise forces cancel exactly, so anything above
// round-off means a pair was counted once on one side only.
type MomentumDrift struct {
	name     string
	initial  vmath.Vec3
	scale    float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{name: "momentum_drift"}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(bodies []*physics.Body, _ sim.StepInfo) {
	p := physics.Momentum(bodies)
	if m.samples == 0 {
		m.initial = p
		for _, b := range bodies {
			m.scale += b.Momentum().Length()
		}
	}
	m.samples++

	if m.scale > 0 {
		drift := p.Sub(m.initial).Length() / m.scale
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = vmath.Zero
	m.scale = 0
	m.maxDrift = 0
	m.samples = 0
}
