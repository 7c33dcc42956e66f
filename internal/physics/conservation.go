package physics

import "github.com/san-kum/spaceengine/internal/vmath"

// TotalEnergy is kinetic plus pairwise gravitational potential energy.
// Coinciding pairs are left out of the potential term.
func TotalEnergy(bodies []*Body, g float64) float64 {
	ke, pe := 0.0, 0.0
	for i, a := range bodies {
		ke += a.KineticEnergy()
		for _, b := range bodies[i+1:] {
			r := a.pos.Distance(b.pos)
			if r == 0 {
				continue
			}
			pe -= g * a.mass * b.mass / r
		}
	}
	return ke + pe
}

// Momentum is the total linear momentum.
func Momentum(bodies []*Body) vmath.Vec3 {
	p := vmath.Zero
	for _, b := range bodies {
		p = p.Add(b.Momentum())
	}
	return p
}

// AngularMomentum is the total angular momentum about the origin.
func AngularMomentum(bodies []*Body) vmath.Vec3 {
	l := vmath.Zero
	for _, b := range bodies {
		l = l.Add(b.pos.Cross(b.Momentum()))
	}
	return l
}

// CenterOfMass returns the mass-weighted mean position.
func CenterOfMass(bodies []*Body) vmath.Vec3 {
	c, m := vmath.Zero, 0.0
	for _, b := range bodies {
		c = c.Add(b.pos.Scale(b.mass))
		m += b.mass
	}
	if m == 0 {
		return vmath.Zero
	}
	return c.Scale(1 / m)
}
