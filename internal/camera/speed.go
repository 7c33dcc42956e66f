package camera

// SpeedMode selects the pan speed modifier. Boost and Slow exclude each other.
type SpeedMode int

const (
	Normal SpeedMode = iota
	Boost
	Slow
)

func (m SpeedMode) String() string {
	switch m {
	case Boost:
		return "boost"
	case Slow:
		return "slow"
	default:
		return "normal"
	}
}

func (c *OrbitCamera) Speed() float64  { return c.speed }
func (c *OrbitCamera) Mode() SpeedMode { return c.mode }

// SetSpeedMode switches the pan speed. Leaving Boost or Slow undoes its
// adjustment. Entering one only applies when the camera is in Normal mode
// at exactly its base speed, so a request to jump straight from Boost to
// Slow (or back) is ignored until Normal is restored.
func (c *OrbitCamera) SetSpeedMode(m SpeedMode) {
	if m == c.mode {
		return
	}

	if m == Normal {
		c.speed = c.baseSpeed
		c.mode = Normal
		return
	}

	if c.mode != Normal || c.speed != c.baseSpeed {
		return
	}

	switch m {
	case Boost:
		c.speed += c.acceleration
	case Slow:
		c.speed -= c.slowdown
	}
	c.mode = m
}

// ApplyModifiers maps held modifier keys onto SetSpeedMode for a frame:
// a released key drops its mode first, then a held key engages. When both
// are held the one engaged first wins.
func (c *OrbitCamera) ApplyModifiers(boostHeld, slowHeld bool) {
	if (c.mode == Boost && !boostHeld) || (c.mode == Slow && !slowHeld) {
		c.SetSpeedMode(Normal)
	}
	if boostHeld {
		c.SetSpeedMode(Boost)
	}
	if slowHeld {
		c.SetSpeedMode(Slow)
	}
}
