// Package viz is the terminal driver for the orbit viewer.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: one running scene drawn through the orbit camera
//   - [Canvas]: Braille-based pixel canvas with per-cell colour
//   - [Recorder]: GIF capture of the canvas
//
// # Key Bindings
//
//	W/S, A/D, E/Q - Move forward/back, sideways, up/down
//	Arrows        - Orbit around the target
//	+/-           - Zoom
//	B/N           - Toggle boost/slow camera speed
//	Space         - Pause/Resume simulation
//	R             - Reset to initial state
//	G             - Toggle GIF recording
//	?             - Show help overlay
//
// Terminals report key presses, not held keys, so B and N latch the speed
// modes that the window driver applies only while a modifier is held.
package viz
