package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/spaceengine/internal/config"
	"github.com/san-kum/spaceengine/internal/physics"
	"github.com/san-kum/spaceengine/internal/vmath"
)

func TestFFTImpulse(t *testing.T) {
	data := []float64{1, 0, 0, 0, 0, 0, 0, 0}
	for k, c := range FFT(data) {
		if math.Abs(real(c)-1) > 1e-12 || math.Abs(imag(c)) > 1e-12 {
			t.Errorf("bin %d: expected 1, got %v", k, c)
		}
	}
}

func TestZeroPad(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{1, 1},
		{5, 8},
		{64, 64},
		{65, 128},
	}
	for _, tt := range tests {
		if got := len(ZeroPad(make([]float64, tt.in))); got != tt.want {
			t.Errorf("ZeroPad(%d) length = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDominantPeriod(t *testing.T) {
	samples := make([]float64, 512)
	for i := range samples {
		samples[i] = 3 + math.Sin(2*math.Pi*float64(i)/64)
	}

	period, err := DominantPeriod(samples, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(period-32) > 0.01 {
		t.Errorf("expected period 32, got %v", period)
	}
}

// A few orbits that do not fill a whole number of cycles, like a year
// sampled over 3.2 years.
func TestDominantPeriodFractionalCycles(t *testing.T) {
	tests := []struct {
		name   string
		cycles float64
	}{
		{"two", 2},
		{"three and a fifth", 3.2},
		{"eight", 8},
		{"twenty", 20.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := 1000
			want := float64(n) / tt.cycles
			samples := make([]float64, n)
			for i := range samples {
				samples[i] = math.Cos(2*math.Pi*float64(i)/want + 0.7)
			}

			got, err := DominantPeriod(samples, 1)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-want)/want > 0.005 {
				t.Errorf("expected period %.2f, got %.2f", want, got)
			}
		})
	}
}

func TestDominantPeriodShort(t *testing.T) {
	if _, err := DominantPeriod([]float64{1, 2, 3}, 1); !errors.Is(err, ErrShortSignal) {
		t.Errorf("expected ErrShortSignal, got %v", err)
	}
	if _, err := DominantPeriod(make([]float64, 16), 1); !errors.Is(err, ErrShortSignal) {
		t.Errorf("flat signal should have no period, got %v", err)
	}
	if _, err := DominantPeriod(make([]float64, 16), 0); !errors.Is(err, ErrShortSignal) {
		t.Errorf("zero interval should fail, got %v", err)
	}
}

func TestEccentricity(t *testing.T) {
	a := []vmath.Vec3{vmath.Zero, vmath.Zero, vmath.Zero}
	b := []vmath.Vec3{vmath.New(1, 0, 0), vmath.New(0, 2, 0), vmath.New(-3, 0, 0)}

	dist := Distances(a, b)
	if len(dist) != 3 || dist[2] != 3 {
		t.Fatalf("unexpected distances %v", dist)
	}
	if e := Eccentricity(dist); math.Abs(e-0.5) > 1e-12 {
		t.Errorf("expected 0.5, got %v", e)
	}
	if e := Eccentricity([]float64{2, 2, 2}); e != 0 {
		t.Errorf("circle should have e=0, got %v", e)
	}
}

func TestLyapunovLeavesInputUntouched(t *testing.T) {
	scene, _ := config.GetScene("binary")
	bodies, err := physics.BuildScene(scene, config.DefaultAU)
	if err != nil {
		t.Fatal(err)
	}
	before := bodies[0].Position()

	lambda := LyapunovExponent(bodies, physics.NewGravitySolver(config.DefaultG), 3600, 200, 1e3)
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		t.Errorf("expected finite exponent, got %v", lambda)
	}
	if bodies[0].Position() != before {
		t.Error("input bodies were advanced")
	}
}

func TestLyapunovIndependentOfStep(t *testing.T) {
	scene, _ := config.GetScene("earth")
	bodies, err := physics.BuildScene(scene, config.DefaultAU)
	if err != nil {
		t.Fatal(err)
	}
	solver := physics.NewGravitySolver(config.DefaultG)

	const span = 1e7
	coarse := LyapunovExponent(bodies, solver, 2000, span/2000, 1e3)
	fine := LyapunovExponent(bodies, solver, 1000, span/1000, 1e3)

	if coarse <= 0 || fine <= 0 {
		t.Fatalf("expected positive finite-time exponents, got %v and %v", coarse, fine)
	}
	if math.Abs(coarse-fine)/fine > 0.05 {
		t.Errorf("exponent depends on dt: %v at dt=2000, %v at dt=1000", coarse, fine)
	}
	// A regular two-body orbit only shears apart linearly.
	if fine > 1e-6 {
		t.Errorf("Sun-Earth orbit reported as chaotic: %v 1/s", fine)
	}
}

func TestLyapunovDegenerateInput(t *testing.T) {
	solver := physics.NewGravitySolver(config.DefaultG)
	if l := LyapunovExponent(nil, solver, 1, 10, 1); l != 0 {
		t.Errorf("expected 0 for no bodies, got %v", l)
	}
	bodies, _ := physics.BuildScene(config.Scenes["earth"], config.DefaultAU)
	if l := LyapunovExponent(bodies, solver, 0, 10, 1); l != 0 {
		t.Errorf("expected 0 for zero dt, got %v", l)
	}
}
