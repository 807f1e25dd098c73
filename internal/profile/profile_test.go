package profile

import (
	"math"
	"slices"
	"testing"

	"geoprofile/pkg/core"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()

	first := Generate(cfg)
	second := Generate(cfg)

	if len(first) != cfg.Points {
		t.Fatalf("generated %d samples, want %d", len(first), cfg.Points)
	}
	if !slices.Equal(first, second) {
		t.Fatal("Generate with equal configs not deterministic")
	}

	cfg.Seed = 679
	other := Generate(cfg)
	if slices.Equal(first, other) {
		t.Fatal("Generate with a different seed reproduced the same samples")
	}
}

func TestSamplePointsWithinDomain(t *testing.T) {
	d := DefaultConfig().Domain
	rng := core.NewRNG(42)

	samples := SamplePoints(rng, d, 500)
	for i, s := range samples {
		if s.X < d.XMin || s.X >= d.XMax {
			t.Fatalf("sample %d x=%v outside [%v,%v)", i, s.X, d.XMin, d.XMax)
		}
		if s.Z < d.ZMin || s.Z >= d.ZMax {
			t.Fatalf("sample %d z=%v outside [%v,%v)", i, s.Z, d.ZMin, d.ZMax)
		}
	}

	again := SamplePoints(core.NewRNG(42), d, 500)
	if !slices.Equal(samples, again) {
		t.Fatal("SamplePoints with equal seeds not deterministic")
	}
}

func TestUpperBoundaryClamped(t *testing.T) {
	if got := upperBoundary(3, 1000); got != 50 {
		t.Fatalf("upperBoundary with large positive noise = %v, want 50", got)
	}
	if got := upperBoundary(3, -1000); got != 25 {
		t.Fatalf("upperBoundary with large negative noise = %v, want 25", got)
	}
	// sin(1.25*pi/2.5) = 1, so the noiseless curve peaks at 55 and clamps.
	if got := upperBoundary(1.25, 0); got != 50 {
		t.Fatalf("upperBoundary at curve peak = %v, want 50", got)
	}
	if got := upperBoundary(0, 0); math.Abs(got-40) > 1e-12 {
		t.Fatalf("upperBoundary at x=0 = %v, want 40", got)
	}
}

func TestBoundarySplitBaseRanges(t *testing.T) {
	rng := core.NewRNG(7)
	samples := make([]Sample, 400)
	for i := range samples {
		samples[i].X = 1 + 5*float64(i)/float64(len(samples))
		if i%2 == 0 {
			samples[i].Z = 5 // above every possible boundary (>= 25)
		} else {
			samples[i].Z = 60 // below every possible boundary (<= 50)
		}
	}

	splitBoundary(rng, samples)

	for i, s := range samples {
		if s.Z == 5 {
			if s.deep {
				t.Fatalf("sample %d at z=5 classified deep", i)
			}
			if s.Value < 800 || s.Value >= 1150 {
				t.Fatalf("hard-rock sample %d value %v outside [800,1150)", i, s.Value)
			}
			continue
		}
		if !s.deep {
			t.Fatalf("sample %d at z=60 classified hard rock", i)
		}
		if s.Value < 450 || s.Value >= 700 {
			t.Fatalf("deep sample %d value %v outside [450,700)", i, s.Value)
		}
	}
}

func TestDeepestLayerPrecedence(t *testing.T) {
	for _, seed := range []int64{1, 678, 9001} {
		rng := core.NewRNG(seed)
		samples := make([]Sample, 300)
		for i := range samples {
			samples[i].X = 1 + 5*float64(i)/float64(len(samples))
			samples[i].Z = 75 + 5*float64(i%6)/6
		}

		// Every rule except the additive noise, so the raw base value of the
		// deepest layer is observable.
		applyRules(rng, samples, zoneRules[:len(zoneRules)-1])

		for i, s := range samples {
			if s.Value < 600 || s.Value >= 900 {
				t.Fatalf("seed %d: deepest sample %d value %v outside [600,900)",
					seed, i, s.Value)
			}
		}
	}
}

func TestPocketRetentionRate(t *testing.T) {
	rng := core.NewRNG(123)
	const n = 2000
	samples := make([]Sample, n)
	for i := range samples {
		// All inside the western pocket box and below every boundary value.
		samples[i].X = 1.6 + 1.8*float64(i)/float64(n)
		samples[i].Z = 51 + 18*float64(i%10)/10
	}

	// Boundary split then the western pocket rule only.
	applyRules(rng, samples, zoneRules[:2])

	overridden := 0
	for _, s := range samples {
		// Pocket values top out at 120; untouched deep values start at 450
		// (the boundary rule never applies pocket 2 or noise here).
		if s.Value < 450 {
			overridden++
		}
	}
	rate := float64(overridden) / n
	if rate < 0.55 || rate > 0.65 {
		t.Fatalf("pocket retention rate %v, want about 0.6", rate)
	}
}

func TestRuleChainOrder(t *testing.T) {
	want := []string{
		"boundary split",
		"water pocket west",
		"water pocket east",
		"deepest layer",
		"global noise",
	}
	if len(zoneRules) != len(want) {
		t.Fatalf("rule chain has %d rules, want %d", len(zoneRules), len(want))
	}
	for i, r := range zoneRules {
		if r.name != want[i] {
			t.Fatalf("rule %d is %q, want %q", i, r.name, want[i])
		}
	}
}
