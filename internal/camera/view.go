package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/spaceengine/internal/vmath"
)

const (
	nearPlane = 0.01
	farPlane  = 1e6
)

func toMgl(v vmath.Vec3) mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

// View is the look-at matrix for the current eye, target and up.
func (c *OrbitCamera) View() mgl64.Mat4 {
	return mgl64.LookAtV(toMgl(c.eye), toMgl(c.target), toMgl(Up))
}

// Projection is a perspective matrix using the configured vertical field
// of view in degrees.
func (c *OrbitCamera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.fovy), aspect, nearPlane, farPlane)
}

// Project maps a scene-space point to pixel coordinates on a width×height
// viewport with y growing downward. ok is false for points behind the eye
// or outside the viewport.
func (c *OrbitCamera) Project(p vmath.Vec3, width, height int) (x, y float64, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	mvp := c.Projection(float64(width) / float64(height)).Mul4(c.View())
	clip := mvp.Mul4x1(toMgl(p).Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) * 0.5 * float64(width)
	y = (1 - ndc.Y()) * 0.5 * float64(height)
	ok = ndc.X() >= -1 && ndc.X() <= 1 && ndc.Y() >= -1 && ndc.Y() <= 1
	return x, y, ok
}

// ProjectRadius returns the approximate on-screen radius in pixels of a
// sphere of radius r at p.
func (c *OrbitCamera) ProjectRadius(p vmath.Vec3, r float64, height int) float64 {
	d := c.eye.Distance(p)
	if d <= r || height <= 0 {
		return float64(height)
	}
	focal := float64(height) / 2 / math.Tan(mgl64.DegToRad(c.fovy)/2)
	return r / d * focal
}
