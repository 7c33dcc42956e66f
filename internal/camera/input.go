package camera

// MouseSensitivity divides raw mouse deltas, in pixels, into radians.
const MouseSensitivity = 100.0

// Input is one frame of held controls as read by a window driver.
type Input struct {
	Wheel            float64
	MouseDX, MouseDY float64

	Forward, Back bool
	Left, Right   bool
	Rise, Sink    bool

	Boost, Slow bool
}

// Apply runs one frame of input in a fixed order: speed modifiers, zoom,
// rotate, then moves at the resulting speed. A clamped zoom does not stop
// the rest of the frame; its error is returned at the end.
func (c *OrbitCamera) Apply(in Input) error {
	c.ApplyModifiers(in.Boost, in.Slow)

	var err error
	if in.Wheel != 0 {
		err = c.Zoom(in.Wheel)
	}

	if in.MouseDX != 0 || in.MouseDY != 0 {
		c.Rotate(in.MouseDX/MouseSensitivity, in.MouseDY/MouseSensitivity)
	}

	moves := []struct {
		held bool
		dir  Direction
	}{
		{in.Forward, Forward},
		{in.Back, Back},
		{in.Left, Left},
		{in.Right, Right},
		{in.Rise, Rise},
		{in.Sink, Sink},
	}
	for _, m := range moves {
		if m.held {
			c.Move(m.dir)
		}
	}

	return err
}
