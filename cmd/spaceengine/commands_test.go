package main

import (
	"context"
	"testing"

	"github.com/san-kum/spaceengine/internal/config"
	"github.com/san-kum/spaceengine/internal/physics"
	"github.com/san-kum/spaceengine/internal/sim"
)

func TestAddRunMetrics(t *testing.T) {
	c := config.Default()
	s, _, err := sim.FromScene(c, "earth")
	if err != nil {
		t.Fatal(err)
	}
	initial := physics.TotalEnergy(s.Bodies(), c.Physics.G)

	sep := addRunMetrics(s, c, "Sun", "Earth")
	result, err := s.Run(context.Background(), sim.RunConfig{Dt: c.Physics.Dt, Steps: 50, SampleEvery: 10})
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"energy", "energy_drift", "momentum_drift", "stability", sep.Name()} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("metric %q not reported", name)
		}
	}

	mean := result.Metrics["energy"]
	if mean >= 0 {
		t.Errorf("bound orbit should have negative mean energy, got %v", mean)
	}
	if rel := (mean - initial) / initial; rel > 0.01 || rel < -0.01 {
		t.Errorf("mean energy %v far from initial %v", mean, initial)
	}
	if sep.Value() <= 0 {
		t.Errorf("separation not tracked: %v", sep.Value())
	}
}
