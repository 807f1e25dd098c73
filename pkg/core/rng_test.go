package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(678)
	b := NewRNG(678)

	for i := 0; i < 1000; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("draw %d: %v != %v", i, av, bv)
		}
		if av, bv := a.NormFloat64(), b.NormFloat64(); av != bv {
			t.Fatalf("normal draw %d: %v != %v", i, av, bv)
		}
	}
}

func TestRNGSeedsDiverge(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 100 {
		t.Fatal("different seeds produced identical streams")
	}
}

func TestUniformRange(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := rng.Uniform(1, 6)
		if v < 1 || v >= 6 {
			t.Fatalf("draw %d: %v outside [1,6)", i, v)
		}
	}
}
