// Package dynamo provides the shared primitives of the orbital simulation.
//
// The package defines the pieces every other layer agrees on:
//
//   - domain errors ([ErrDegenerateSeparation], [ErrNonPositiveDistance],
//     [ErrInvalidBody]) and their typed carriers
//   - [ParallelFor]: chunked fan-out used by the parallel force solver
//
// # Error Policy
//
// Recoverable conditions (two bodies at the same point, a camera zoomed
// through its target, a body built with a non-positive mass) are reported as
// errors that wrap one of the sentinels above. They never panic; drivers log
// them and keep the frame loop alive.
//
//	if errors.Is(err, dynamo.ErrDegenerateSeparation) {
//	    logger.Warn("pair skipped", "err", err)
//	}
//
// # Thread Safety
//
// Nothing in this package holds state. [ParallelFor] returns only after all
// chunks finished, which is what lets the solver keep the
// reset → accumulate → integrate step boundary intact.
package dynamo
