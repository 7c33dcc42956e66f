package analysis

import (
	"errors"
	"math"

	"github.com/san-kum/spaceengine/internal/vmath"
)

var ErrShortSignal = errors.New("analysis: signal too short")

// padFactor oversamples the spectrum beyond the next power of two.
const padFactor = 4

// DominantPeriod returns the period, in the units of interval, of the
// strongest non-DC component of samples, refined between frequency bins.
// The mean is removed and a Hann window applied before padding, and the
// peak is located by a parabola through the log magnitudes. At least four
// samples and a positive interval are needed.
func DominantPeriod(samples []float64, interval float64) (float64, error) {
	if len(samples) < 4 || !(interval > 0) {
		return 0, ErrShortSignal
	}

	n := len(samples)
	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(n)

	padded := make([]float64, padFactor*NextPow2(n))
	for i, v := range samples {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
		padded[i] = (v - mean) * w
	}
	ps := PowerSpectrum(padded)

	best, bestPower := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestPower {
			best, bestPower = k, ps[k]
		}
	}
	if best == 0 {
		return 0, ErrShortSignal
	}

	k := float64(best)
	if best+1 < len(ps) && ps[best-1] > 0 && ps[best+1] > 0 {
		a, b, c := math.Log(ps[best-1]), math.Log(ps[best]), math.Log(ps[best+1])
		if den := a - 2*b + c; den != 0 {
			k += 0.5 * (a - c) / den
		}
	}

	return float64(len(padded)) * interval / k, nil
}

// Distances returns |a[k]-b[k]| for each sample of two equal-length tracks.
func Distances(a, b []vmath.Vec3) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = a[k].Distance(b[k])
	}
	return out
}

// Eccentricity estimates e = (rmax-rmin)/(rmax+rmin) from sampled
// separations covering at least one full orbit.
func Eccentricity(dist []float64) float64 {
	if len(dist) == 0 {
		return 0
	}
	lo, hi := math.Inf(1), 0.0
	for _, d := range dist {
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	if hi+lo == 0 {
		return 0
	}
	return (hi - lo) / (hi + lo)
}
