package profile

import (
	"math"

	"geoprofile/pkg/core"
)

// Value bounds for the rendered field. Raw sample values may fall outside;
// the gridder clamps after interpolation.
const (
	ValueMin = 55
	ValueMax = 1000
)

const (
	// pocketRetentionThreshold keeps roughly 60% of the samples a pocket
	// predicate matches (retention draw must exceed it).
	pocketRetentionThreshold = 0.4

	// deepestLayerTop is the depth at which the deepest-layer override
	// supersedes every earlier assignment.
	deepestLayerTop = 75
)

// rule reassigns the values of the samples it matches. Rules run in slice
// order and later rules overwrite earlier ones, so precedence is the position
// in the chain, not the shape of any single predicate.
type rule struct {
	name  string
	apply func(rng *core.RNG, samples []Sample)
}

// zoneRules is the fixed assignment chain. The RNG draws happen in chain
// order, then in sample order within each rule, which pins down the whole
// value sequence for a given seed.
var zoneRules = []rule{
	{name: "boundary split", apply: splitBoundary},
	{name: "water pocket west", apply: pocketRule(1.5, 3.5, 50, 70, 50, 70)},
	{name: "water pocket east", apply: pocketRule(4.5, 6.0, 55, 75, 100, 100)},
	{name: "deepest layer", apply: overrideDeepest},
	{name: "global noise", apply: addGlobalNoise},
}

// upperBoundary evaluates the noisy curve separating the hard-rock regime
// from the deep regime at surface position x.
func upperBoundary(x, noise float64) float64 {
	z := 40 + 15*math.Sin(x*math.Pi/2.5) + noise
	return clamp(z, 25, 50)
}

// splitBoundary classifies every sample against the boundary curve and
// assigns its zone base value. One boundary-noise draw and one value draw per
// sample, in sample order.
func splitBoundary(rng *core.RNG, samples []Sample) {
	for i := range samples {
		s := &samples[i]
		bound := upperBoundary(s.X, 5*rng.NormFloat64())
		if s.Z < bound {
			s.deep = false
			s.Value = 800 + 350*rng.Float64()
		} else {
			s.deep = true
			s.Value = 450 + 250*rng.Float64()
		}
	}
}

// pocketRule builds an override for a bounded deep-zone sub-region modeling a
// localized water anomaly. Each qualifying sample costs one retention draw,
// plus one value draw when kept.
func pocketRule(xMin, xMax, zMin, zMax, base, span float64) func(*core.RNG, []Sample) {
	return func(rng *core.RNG, samples []Sample) {
		for i := range samples {
			s := &samples[i]
			if !s.deep {
				continue
			}
			if s.X <= xMin || s.X >= xMax || s.Z <= zMin || s.Z >= zMax {
				continue
			}
			if rng.Float64() > pocketRetentionThreshold {
				s.Value = base + span*rng.Float64()
			}
		}
	}
}

// overrideDeepest reassigns every sample at or below the deepest-layer depth,
// regardless of zone or pocket membership.
func overrideDeepest(rng *core.RNG, samples []Sample) {
	for i := range samples {
		if samples[i].Z >= deepestLayerTop {
			samples[i].Value = 600 + 300*rng.Float64()
		}
	}
}

// addGlobalNoise perturbs every value with zero-mean Gaussian noise.
func addGlobalNoise(rng *core.RNG, samples []Sample) {
	for i := range samples {
		samples[i].Value += 100 * rng.NormFloat64()
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
