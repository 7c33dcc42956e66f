// Package gui is the raylib window driver. Each frame it reads the mouse
// and keyboard into a camera.Input, steps the simulation and draws the
// bodies as spheres over a reference grid with an FPS counter and the eye
// coordinates.
package gui
