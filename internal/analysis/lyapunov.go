package analysis

import (
	"math"

	"github.com/san-kum/spaceengine/internal/physics"
	"github.com/san-kum/spaceengine/internal/vmath"
)

// renormThreshold is the growth factor at which the perturbed copy is
// pulled back to the initial separation.
const renormThreshold = 1e3

// LyapunovExponent estimates the largest Lyapunov exponent of an N-body
// configuration, in 1/s. A positive value well above 1/(steps*dt)
// indicates chaos.
//
// Algorithm (Benettin):
// 1. Run the bodies and a copy with the first body shifted by perturbation metres
// 2. Whenever the separation grows past renormThreshold*d0, add ln(sep/d0)
//    and rescale the copy back to d0 along the same direction
// 3. Add ln(sep/d0) once more at the end; λ ≈ sum / (steps*dt)
//
// The input bodies are not modified.
func LyapunovExponent(
	bodies []*physics.Body,
	solver *physics.GravitySolver,
	dt float64,
	steps int,
	perturbation float64,
) float64 {
	if len(bodies) == 0 || steps <= 0 || !(dt > 0) || perturbation <= 0 {
		return 0
	}

	x := clone(bodies)
	xp := clone(bodies)
	p := xp[0].Params()
	p.Position = p.Position.Add(vmath.New(perturbation, 0, 0))
	if b, err := physics.NewBody(p); err == nil {
		xp[0] = b
	}

	d0 := perturbation
	sumLog := 0.0
	taken := 0

	for i := 0; i < steps; i++ {
		step(solver, x, dt)
		step(solver, xp, dt)
		taken++

		sep := separation(x, xp)
		if math.IsNaN(sep) || math.IsInf(sep, 0) {
			break
		}
		if sep > renormThreshold*d0 {
			sumLog += math.Log(sep / d0)
			renormalize(x, xp, d0/sep)
		}
	}

	if sep := separation(x, xp); sep > 0 && !math.IsInf(sep, 0) {
		sumLog += math.Log(sep / d0)
	}

	return sumLog / (float64(taken) * dt)
}

func step(solver *physics.GravitySolver, bodies []*physics.Body, dt float64) {
	for _, b := range bodies {
		b.ResetForce()
	}
	_ = solver.Accumulate(bodies)
	for _, b := range bodies {
		b.Integrate(dt)
	}
}

func separation(x, xp []*physics.Body) float64 {
	sep := 0.0
	for i := range x {
		d := xp[i].Position().Sub(x[i].Position())
		sep += d.Dot(d)
	}
	return math.Sqrt(sep)
}

func renormalize(x, xp []*physics.Body, scale float64) {
	for i := range xp {
		p := xp[i].Params()
		p.Position = x[i].Position().Add(xp[i].Position().Sub(x[i].Position()).Scale(scale))
		p.Velocity = x[i].Velocity().Add(xp[i].Velocity().Sub(x[i].Velocity()).Scale(scale))
		if b, err := physics.NewBody(p); err == nil {
			xp[i] = b
		}
	}
}

func clone(bodies []*physics.Body) []*physics.Body {
	out := make([]*physics.Body, len(bodies))
	for i, b := range bodies {
		out[i] = b.Clone()
	}
	return out
}
