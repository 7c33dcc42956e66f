package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/san-kum/spaceengine/internal/dynamo"
	"github.com/san-kum/spaceengine/internal/physics"
	"github.com/san-kum/spaceengine/internal/vmath"
)

// Simulator owns the ordered body set and runs one
// reset → accumulate → integrate step at a time. It is not safe for
// concurrent use; drivers call it from their frame loop only.
type Simulator struct {
	bodies    []*physics.Body
	initial   []*physics.Body
	solver    *physics.GravitySolver
	metrics   []Metric
	observers []Observer
	logger    *log.Logger

	t      float64
	steps  int
	warned bool
}

type Option func(*Simulator)

func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(bodies []*physics.Body, solver *physics.GravitySolver, opts ...Option) *Simulator {
	s := &Simulator{
		bodies:    bodies,
		initial:   cloneBodies(bodies),
		solver:    solver,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Bodies() []*physics.Body        { return s.bodies }
func (s *Simulator) Solver() *physics.GravitySolver { return s.solver }
func (s *Simulator) Time() float64                  { return s.t }
func (s *Simulator) Steps() int                     { return s.steps }

// Body looks a body up by name.
func (s *Simulator) Body(name string) (*physics.Body, bool) {
	for _, b := range s.bodies {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

// Step advances every body by dt seconds. Forces are reset before the
// solver runs and every pair is accumulated before any body integrates.
// A returned error is non-fatal: the step was still taken.
func (s *Simulator) Step(dt float64) error {
	for _, b := range s.bodies {
		b.ResetForce()
	}

	err := s.solver.Accumulate(s.bodies)
	if err != nil {
		if !s.warned {
			s.logger.Warn("skipping coincident bodies", "t", s.t, "err", err)
			s.warned = true
		} else {
			s.logger.Debug("skipping coincident bodies", "t", s.t, "err", err)
		}
	}

	for _, b := range s.bodies {
		b.Integrate(dt)
	}

	s.t += dt
	s.steps++

	info := StepInfo{Step: s.steps, Time: s.t, Dt: dt}
	for _, m := range s.metrics {
		m.Observe(s.bodies, info)
	}
	for _, o := range s.observers {
		o.OnStep(s.bodies, info)
	}

	return err
}

// Reset restores the bodies' initial state and rewinds time.
func (s *Simulator) Reset() {
	fresh := cloneBodies(s.initial)
	for i := range s.bodies {
		s.bodies[i] = fresh[i]
	}
	s.t = 0
	s.steps = 0
	s.warned = false
	for _, m := range s.metrics {
		m.Reset()
	}
}

// Finite reports whether every body still has finite position and velocity.
func (s *Simulator) Finite() bool {
	for _, b := range s.bodies {
		if !b.IsFinite() {
			return false
		}
	}
	return true
}

// Run steps the simulation headlessly. Cancelling ctx stops between steps
// and returns the partial result with ctx.Err().
func (s *Simulator) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if err := validateRunConfig(cfg); err != nil {
		return nil, err
	}
	every := cfg.SampleEvery
	if every <= 0 {
		every = 1
	}

	result := &Result{
		Names:   make([]string, len(s.bodies)),
		Times:   make([]float64, 0, cfg.Steps/every+2),
		Samples: make([][]vmath.Vec3, 0, cfg.Steps/every+2),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}
	for i, b := range s.bodies {
		result.Names[i] = b.Name()
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	g := s.solver.G()
	initialEnergy := physics.TotalEnergy(s.bodies, g)
	s.sample(result)

	s.logger.Debug("run started", "bodies", len(s.bodies), "steps", cfg.Steps, "dt", cfg.Dt)

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := s.Step(cfg.Dt); err != nil {
			result.Errors = append(result.Errors, err)
		}
		result.StepsTaken++

		if cfg.ValidateState && !s.Finite() {
			serr := dynamo.SimError{Time: s.t, Step: s.steps, Message: "non-finite body state", Wrapped: dynamo.ErrUnstable}
			s.logger.Warn("run stopped", "err", serr)
			result.Errors = append(result.Errors, serr)
			break
		}

		if result.StepsTaken%every == 0 {
			s.sample(result)
		}
	}

	if result.StepsTaken%every != 0 {
		s.sample(result)
	}

	finalEnergy := physics.TotalEnergy(s.bodies, g)
	if initialEnergy != 0 && isFinite(initialEnergy) && isFinite(finalEnergy) {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.logger.Debug("run finished", "steps", result.StepsTaken, "energy_drift", result.EnergyDrift, "errors", len(result.Errors))
	return result, nil
}

func (s *Simulator) sample(r *Result) {
	pos := make([]vmath.Vec3, len(s.bodies))
	for i, b := range s.bodies {
		pos[i] = b.Position()
	}
	r.Times = append(r.Times, s.t)
	r.Samples = append(r.Samples, pos)
}

func validateRunConfig(cfg RunConfig) error {
	if !(cfg.Dt > 0) {
		return fmt.Errorf("%w: dt must be positive, got %f", dynamo.ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", dynamo.ErrInvalidConfig, cfg.Steps)
	}
	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func cloneBodies(bodies []*physics.Body) []*physics.Body {
	out := make([]*physics.Body, len(bodies))
	for i, b := range bodies {
		out[i] = b.Clone()
	}
	return out
}

// Unstable reports whether a run result ended on a diverged state.
func (r *Result) Unstable() bool {
	for _, err := range r.Errors {
		if errors.Is(err, dynamo.ErrUnstable) {
			return true
		}
	}
	return false
}
