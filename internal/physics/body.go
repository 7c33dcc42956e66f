package physics

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/spaceengine/internal/config"
	"github.com/san-kum/spaceengine/internal/dynamo"
	"github.com/san-kum/spaceengine/internal/vmath"
)

// Body is a point mass with a display radius and colour.
// Mass, radius, name and colour are fixed at construction.
type Body struct {
	name   string
	mass   float64
	radius float64
	color  colorful.Color

	pos   vmath.Vec3
	vel   vmath.Vec3
	force vmath.Vec3
}

// BodyParams describes a body in physical units.
type BodyParams struct {
	Name     string
	Mass     float64 // kg
	Radius   float64 // m
	Position vmath.Vec3
	Velocity vmath.Vec3
	Color    colorful.Color
}

// NewBody validates p and returns the body. Mass and radius must be finite
// and strictly positive.
func NewBody(p BodyParams) (*Body, error) {
	if !positiveFinite(p.Mass) || !positiveFinite(p.Radius) {
		return nil, &dynamo.BodyError{Name: p.Name, Mass: p.Mass, Radius: p.Radius}
	}
	return &Body{
		name:   p.Name,
		mass:   p.Mass,
		radius: p.Radius,
		color:  p.Color,
		pos:    p.Position,
		vel:    p.Velocity,
	}, nil
}

// FromSpec places a scene body: Distance AU along +x, Speed m/s along +z.
// An unparsable colour falls back to white.
func FromSpec(s config.BodySpec, au float64) (*Body, error) {
	c, err := colorful.Hex(s.Color)
	if err != nil {
		c = colorful.Color{R: 1, G: 1, B: 1}
	}
	return NewBody(BodyParams{
		Name:     s.Name,
		Mass:     s.Mass,
		Radius:   s.Radius,
		Position: vmath.New(s.Distance*au, 0, 0),
		Velocity: vmath.New(0, 0, s.Speed),
		Color:    c,
	})
}

// BuildScene creates the scene's bodies in declaration order.
func BuildScene(s config.Scene, au float64) ([]*Body, error) {
	bodies := make([]*Body, 0, len(s.Bodies))
	for _, spec := range s.Bodies {
		b, err := FromSpec(spec, au)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

func (b *Body) Name() string           { return b.name }
func (b *Body) Mass() float64          { return b.mass }
func (b *Body) Radius() float64        { return b.radius }
func (b *Body) Color() colorful.Color  { return b.color }
func (b *Body) Position() vmath.Vec3   { return b.pos }
func (b *Body) Velocity() vmath.Vec3   { return b.vel }
func (b *Body) Force() vmath.Vec3      { return b.force }
func (b *Body) Momentum() vmath.Vec3   { return b.vel.Scale(b.mass) }
func (b *Body) IsFinite() bool         { return b.pos.IsFinite() && b.vel.IsFinite() }
func (b *Body) KineticEnergy() float64 { return 0.5 * b.mass * b.vel.Dot(b.vel) }

// Params returns the parameters that would rebuild b in its current state.
func (b *Body) Params() BodyParams {
	return BodyParams{Name: b.name, Mass: b.mass, Radius: b.radius, Position: b.pos, Velocity: b.vel, Color: b.color}
}

// Clone returns an independent copy of b.
func (b *Body) Clone() *Body {
	c := *b
	return &c
}

// ResetForce zeroes the accumulated force. Every step starts with it.
func (b *Body) ResetForce() { b.force = vmath.Zero }

// ApplyForce adds f to the accumulated force.
func (b *Body) ApplyForce(f vmath.Vec3) { b.force = b.force.Add(f) }

// Integrate advances the body by dt seconds with explicit Euler: the
// velocity update uses this step's force, the position update uses the new
// velocity. There is no sub-stepping; large dt or close passes diverge.
func (b *Body) Integrate(dt float64) {
	acc := b.force.Scale(1 / b.mass)
	b.vel = b.vel.Add(acc.Scale(dt))
	b.pos = b.pos.Add(b.vel.Scale(dt))
}

// RenderPosition maps the physical position to scene units.
func (b *Body) RenderPosition(scale float64) vmath.Vec3 { return b.pos.Scale(1 / scale) }

// RenderRadius maps the physical radius to scene units.
func (b *Body) RenderRadius(scale float64) float64 { return b.radius / scale }

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
