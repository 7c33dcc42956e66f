// Package physics implements the gravitational N-body core.
//
//   - [Body]: point mass with position, velocity, accumulated force and an
//     explicit-Euler [Body.Integrate]
//   - [GravitySolver]: pairwise Newtonian attraction, each pair applied once,
//     equal and opposite
//   - [TotalEnergy], [Momentum], [AngularMomentum]: conserved quantities used
//     to watch the integrator drift
//
// One simulation step is always
//
//	for _, b := range bodies {
//	    b.ResetForce()
//	}
//	err := solver.Accumulate(bodies) // non-fatal, see dynamo.ErrDegenerateSeparation
//	for _, b := range bodies {
//	    b.Integrate(dt)
//	}
//
// Positions, velocities and forces are SI units. Scene units only appear in
// [Body.RenderPosition] and [Body.RenderRadius].
package physics
