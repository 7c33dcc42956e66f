// Package camera implements the orbit camera: an eye that sits on a sphere
// around a look-at target and is steered by zoom, pan and rotate commands.
package camera

import (
	"math"

	"github.com/san-kum/spaceengine/internal/config"
	"github.com/san-kum/spaceengine/internal/dynamo"
	"github.com/san-kum/spaceengine/internal/vmath"
)

// ElevationMargin keeps the eye away from the poles, where the look-at
// basis degenerates.
const ElevationMargin = 0.05

const (
	MaxElevation = math.Pi/2 - ElevationMargin
	MinElevation = -math.Pi/2 + ElevationMargin
)

// Up is the fixed world up vector.
var Up = vmath.New(0, 1, 0)

type OrbitCamera struct {
	target    vmath.Vec3
	eye       vmath.Vec3
	azimuth   float64
	elevation float64
	distance  float64

	minDistance float64
	angleSpeed  float64
	fovy        float64

	speed        float64
	baseSpeed    float64
	acceleration float64
	slowdown     float64
	mode         SpeedMode
}

// New derives the spherical offset from eye relative to target. The
// elevation is clamped into range.
func New(eye, target vmath.Vec3, cfg config.CameraConfig) (*OrbitCamera, error) {
	offset := eye.Sub(target)
	dist := offset.Length()
	if dist == 0 {
		return nil, &dynamo.CameraError{Requested: 0, Applied: 0}
	}

	c := &OrbitCamera{
		target:       target,
		azimuth:      math.Atan2(offset.Z, offset.X),
		elevation:    clampElevation(math.Asin(offset.Y / dist)),
		distance:     math.Max(dist, cfg.MinDistance),
		minDistance:  cfg.MinDistance,
		angleSpeed:   cfg.AngleSpeed,
		fovy:         cfg.Fovy,
		speed:        cfg.Speed,
		baseSpeed:    cfg.Speed,
		acceleration: cfg.Acceleration,
		slowdown:     cfg.Slowdown,
	}
	c.updateEye()
	return c, nil
}

func (c *OrbitCamera) Eye() vmath.Vec3      { return c.eye }
func (c *OrbitCamera) Target() vmath.Vec3   { return c.target }
func (c *OrbitCamera) Up() vmath.Vec3       { return Up }
func (c *OrbitCamera) Azimuth() float64     { return c.azimuth }
func (c *OrbitCamera) Elevation() float64   { return c.elevation }
func (c *OrbitCamera) Distance() float64    { return c.distance }
func (c *OrbitCamera) MinDistance() float64 { return c.minDistance }
func (c *OrbitCamera) AngleSpeed() float64  { return c.angleSpeed }
func (c *OrbitCamera) Fovy() float64        { return c.fovy }

// SetMinDistance raises or lowers the zoom floor, pushing the eye out if it
// is already closer. Non-positive values are ignored.
func (c *OrbitCamera) SetMinDistance(d float64) {
	if d <= 0 {
		return
	}
	c.minDistance = d
	if c.distance < d {
		c.distance = d
		c.updateEye()
	}
}

// Zoom moves the eye delta units toward the target. The distance never goes
// below the floor; a clamped zoom returns a CameraError so the caller can
// log it, and the camera stays usable.
func (c *OrbitCamera) Zoom(delta float64) error {
	want := c.distance - delta
	if want < c.minDistance {
		c.distance = c.minDistance
		c.updateEye()
		return &dynamo.CameraError{Requested: want, Applied: c.minDistance}
	}
	c.distance = want
	c.updateEye()
	return nil
}

// Pan translates target and eye together: dx along the horizontal heading
// (the azimuth, or the azimuth turned a quarter when sideways) and dy
// straight up.
func (c *OrbitCamera) Pan(dx, dy float64, sideways bool) {
	heading := c.azimuth
	if sideways {
		heading += math.Pi / 2
	}
	delta := vmath.New(dx*math.Cos(heading), dy, dx*math.Sin(heading))
	c.target = c.target.Add(delta)
	c.eye = c.eye.Add(delta)
}

// Rotate turns the eye around the target. The azimuth always changes; an
// elevation change that would leave the allowed band pins the elevation to
// the band edge instead.
func (c *OrbitCamera) Rotate(dAzimuth, dElevation float64) {
	c.azimuth += dAzimuth

	switch e := c.elevation + dElevation; {
	case e >= MaxElevation:
		c.elevation = MaxElevation
	case e <= MinElevation:
		c.elevation = MinElevation
	default:
		c.elevation = e
	}

	c.updateEye()
}

func (c *OrbitCamera) updateEye() {
	cosEl := math.Cos(c.elevation)
	c.eye = c.target.Add(vmath.New(
		c.distance*cosEl*math.Cos(c.azimuth),
		c.distance*math.Sin(c.elevation),
		c.distance*cosEl*math.Sin(c.azimuth),
	))
}

func clampElevation(e float64) float64 {
	return math.Max(MinElevation, math.Min(MaxElevation, e))
}
