// Package analysis inspects recorded trajectories.
//
//   - [PowerSpectrum] and [DominantPeriod]: spectral view of a sampled signal
//   - [Distances] and [Eccentricity]: shape of a relative orbit
//   - [LyapunovExponent]: divergence rate of two nearby N-body runs
//
// # Orbital period
//
// Sample the distance between two bodies at a fixed interval and read off
// the strongest frequency:
//
//	dist := analysis.Distances(result.Track("Sun"), result.Track("Earth"))
//	period, err := analysis.DominantPeriod(dist, interval)
package analysis
