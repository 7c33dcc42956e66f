package camera

// Direction is one of the six pan moves bound to the movement keys.
type Direction int

const (
	Forward Direction = iota
	Back
	Left
	Right
	Rise
	Sink
)

// Move pans one step of the current Speed in direction d. Forward moves
// toward the target along the heading; Rise and Sink are vertical.
func (c *OrbitCamera) Move(d Direction) {
	s := c.speed
	switch d {
	case Forward:
		c.Pan(-s, 0, false)
	case Back:
		c.Pan(s, 0, false)
	case Left:
		c.Pan(s, 0, true)
	case Right:
		c.Pan(-s, 0, true)
	case Rise:
		c.Pan(0, s, true)
	case Sink:
		c.Pan(0, -s, true)
	}
}
