package profile

import "geoprofile/pkg/core"

// Sample pairs a scatter point with its synthesized scalar value.
type Sample struct {
	X, Z  float64
	Value float64

	// deep records which side of the boundary curve the sample fell on.
	// Pocket overrides only apply below the boundary.
	deep bool
}

// SamplePoints draws n independent points uniformly over the domain. Each
// sample consumes two draws, x before z, so the point sequence is fully
// determined by the RNG seed.
func SamplePoints(rng *core.RNG, d Domain, n int) []Sample {
	samples := make([]Sample, n)
	for i := range samples {
		samples[i].X = rng.Uniform(d.XMin, d.XMax)
		samples[i].Z = rng.Uniform(d.ZMin, d.ZMax)
	}
	return samples
}
