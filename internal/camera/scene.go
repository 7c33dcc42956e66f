package camera

import "github.com/san-kum/spaceengine/internal/config"

// ForScene places the camera at the configured eye (or the scene's own)
// looking at the configured target. floor raises the zoom floor, typically
// to the largest body's render radius, so the eye cannot end up inside it.
func ForScene(cfg *config.Constants, scene config.Scene, floor float64) (*OrbitCamera, error) {
	c, err := New(cfg.EyeFor(scene), cfg.TargetVec(), cfg.Camera)
	if err != nil {
		return nil, err
	}
	if floor > c.minDistance {
		c.SetMinDistance(floor)
	}
	return c, nil
}
