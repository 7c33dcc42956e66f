package physics

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/san-kum/spaceengine/internal/dynamo"
	"github.com/san-kum/spaceengine/internal/vmath"
)

const defaultParallelThreshold = 64

// GravitySolver accumulates pairwise Newtonian attraction into a body set.
// G is fixed for the solver's lifetime.
type GravitySolver struct {
	g         float64
	workers   int
	threshold int
}

type SolverOption func(*GravitySolver)

// WithWorkers enables the parallel path with n workers (0 = NumCPU).
// A value of 1 keeps everything on the calling goroutine.
func WithWorkers(n int) SolverOption {
	return func(s *GravitySolver) { s.workers = n }
}

// WithParallelThreshold sets the body count at which the parallel path
// takes over.
func WithParallelThreshold(n int) SolverOption {
	return func(s *GravitySolver) { s.threshold = n }
}

func NewGravitySolver(g float64, opts ...SolverOption) *GravitySolver {
	s := &GravitySolver{
		g:         g,
		workers:   1,
		threshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GravitySolver) G() float64 { return s.g }

// pull returns the force exerted on a by b and whether the pair contributes.
// Coinciding bodies report ErrDegenerateSeparation; touching or overlapping
// ones are skipped without error.
func (s *GravitySolver) pull(a, b *Body) (vmath.Vec3, bool, error) {
	d := b.pos.Sub(a.pos)
	dist := d.Length()
	if dist == 0 {
		return vmath.Zero, false, dynamo.ErrDegenerateSeparation
	}
	if dist <= a.radius+b.radius {
		return vmath.Zero, false, nil
	}
	f := s.g * a.mass * b.mass / (dist * dist)
	return d.Scale(f / dist), true, nil
}

// PairForce returns the gravitational force on a due to b.
func (s *GravitySolver) PairForce(a, b *Body) (vmath.Vec3, error) {
	f, _, err := s.pull(a, b)
	if err != nil {
		return vmath.Zero, &dynamo.SeparationError{NameI: a.name, NameJ: b.name}
	}
	return f, nil
}

// Accumulate adds every pair's attraction to the bodies' force accumulators.
// Forces must have been reset beforehand. Each unordered pair contributes
// exactly once, equal and opposite. Skipped degenerate pairs are returned
// joined; the remaining pairs are still applied.
func (s *GravitySolver) Accumulate(bodies []*Body) error {
	if s.workers != 1 && len(bodies) >= s.threshold {
		return s.accumulateParallel(bodies)
	}

	var errs []error
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			f, ok, err := s.pull(bodies[i], bodies[j])
			if err != nil {
				errs = append(errs, &dynamo.SeparationError{I: i, J: j, NameI: bodies[i].name, NameJ: bodies[j].name})
				continue
			}
			if !ok {
				continue
			}
			bodies[i].ApplyForce(f)
			bodies[j].ApplyForce(f.Neg())
		}
	}
	return errors.Join(errs...)
}

// accumulateParallel gathers, for each body, the pulls of all others into
// that body alone, so chunks never write to the same accumulator.
func (s *GravitySolver) accumulateParallel(bodies []*Body) error {
	var (
		mu    sync.Mutex
		pairs []*dynamo.SeparationError
	)

	_ = dynamo.ParallelFor(context.Background(), len(bodies), 8, s.workers, func(_ context.Context, start, end int) error {
		for i := start; i < end; i++ {
			total := vmath.Zero
			for j := range bodies {
				if i == j {
					continue
				}
				f, ok, err := s.pull(bodies[i], bodies[j])
				if err != nil {
					if i < j {
						mu.Lock()
						pairs = append(pairs, &dynamo.SeparationError{I: i, J: j, NameI: bodies[i].name, NameJ: bodies[j].name})
						mu.Unlock()
					}
					continue
				}
				if ok {
					total = total.Add(f)
				}
			}
			bodies[i].ApplyForce(total)
		}
		return nil
	})

	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].I != pairs[b].I {
			return pairs[a].I < pairs[b].I
		}
		return pairs[a].J < pairs[b].J
	})
	errs := make([]error, len(pairs))
	for i, p := range pairs {
		errs[i] = p
	}
	return errors.Join(errs...)
}
