package metrics

import (
	"math"

	"github.com/san-kum/spaceengine/internal/physics"
	"github.com/san-kum/spaceengine/internal/sim"
)

// Separation tracks the distance between two named bodies. Value is the
// closest approach; Max and Last are kept alongside.
type Separation struct {
	a, b    string
	min     float64
	max     float64
	last    float64
	samples int
}

func NewSeparation(a, b string) *Separation {
	s := &Separation{a: a, b: b}
	s.Reset()
	return s
}

func (s *Separation) Name() string { return "separation_" + s.a + "_" + s.b }

func (s *Separation) Observe(bodies []*physics.Body, _ sim.StepInfo) {
	var ba, bb *physics.Body
	for _, body := range bodies {
		switch body.Name() {
		case s.a:
			ba = body
		case s.b:
			bb = body
		}
	}
	if ba == nil || bb == nil {
		return
	}

	d := ba.Position().Distance(bb.Position())
	s.last = d
	s.min = math.Min(s.min, d)
	s.max = math.Max(s.max, d)
	s.samples++
}

func (s *Separation) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.min
}

func (s *Separation) Max() float64  { return s.max }
func (s *Separation) Last() float64 { return s.last }

func (s *Separation) Reset() {
	s.min = math.Inf(1)
	s.max = 0
	s.last = 0
	s.samples = 0
}
