// Package profile synthesizes the scattered earth-depth hardness field: a
// seeded uniform point cloud classified by an ordered chain of zone rules.
package profile

import "geoprofile/pkg/core"

// Generate runs the full synthesis for one configuration: a fresh
// deterministic RNG, the uniform point cloud, and the zone rule chain. The
// same config always yields the same samples.
func Generate(cfg Config) []Sample {
	rng := core.NewRNG(cfg.Seed)
	samples := SamplePoints(rng, cfg.Domain, cfg.Points)
	applyRules(rng, samples, zoneRules)
	return samples
}

// applyRules evaluates a rule chain in order. Later rules override earlier
// assignments for the samples they match.
func applyRules(rng *core.RNG, samples []Sample, rules []rule) {
	for _, r := range rules {
		r.apply(rng, samples)
	}
}
