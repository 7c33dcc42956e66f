package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrDegenerateSeparation indicates two bodies occupy the same point, so
	// the pair has no defined direction and 1/r² diverges.
	ErrDegenerateSeparation = errors.New("dynamo: degenerate separation (bodies coincide)")

	// ErrNonPositiveDistance indicates the camera distance was driven to or
	// below its floor.
	ErrNonPositiveDistance = errors.New("dynamo: camera distance not positive")

	// ErrInvalidBody indicates a body with non-positive or non-finite mass or radius.
	ErrInvalidBody = errors.New("dynamo: invalid body (mass and radius must be positive)")

	// ErrUnstable indicates the simulation became numerically unstable.
	ErrUnstable = errors.New("dynamo: simulation unstable (state diverged)")

	// ErrInvalidConfig indicates a constant or run parameter outside its valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrUnknownScene indicates a scene name with no built-in definition.
	ErrUnknownScene = errors.New("dynamo: unknown scene")
)

// SeparationError identifies the pair that was skipped.
type SeparationError struct {
	I, J         int
	NameI, NameJ string
}

func (e *SeparationError) Error() string {
	return fmt.Sprintf("%s: bodies %d (%s) and %d (%s)", ErrDegenerateSeparation, e.I, e.NameI, e.J, e.NameJ)
}

func (e *SeparationError) Unwrap() error { return ErrDegenerateSeparation }

// CameraError records a zoom that had to be clamped.
type CameraError struct {
	Requested float64
	Applied   float64
}

func (e *CameraError) Error() string {
	return fmt.Sprintf("%s: requested %.4f, clamped to %.4f", ErrNonPositiveDistance, e.Requested, e.Applied)
}

func (e *CameraError) Unwrap() error { return ErrNonPositiveDistance }

// BodyError carries the rejected construction parameters.
type BodyError struct {
	Name   string
	Mass   float64
	Radius float64
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("%s: %q mass=%g radius=%g", ErrInvalidBody, e.Name, e.Mass, e.Radius)
}

func (e *BodyError) Unwrap() error { return ErrInvalidBody }

// SimError marks the step at which a headless run stopped.
type SimError struct {
	Time    float64
	Step    int
	Message string
	Wrapped error
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.1fs): %s", e.Step, e.Time, e.Message)
}

func (e SimError) Unwrap() error { return e.Wrapped }
