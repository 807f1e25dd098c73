package core

import (
	"math"
	"testing"
)

func TestNewGridStartsUndefined(t *testing.T) {
	g := NewGrid(4, 3)
	if g.W != 4 || g.H != 3 {
		t.Fatalf("grid is %dx%d, want 4x3", g.W, g.H)
	}
	for i, v := range g.Values() {
		if !math.IsNaN(v) {
			t.Fatalf("node %d initialized to %v, want NaN", i, v)
		}
	}
}

func TestGridSetAndDefined(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(2, 1, 123.5)

	if !g.Defined(2, 1) {
		t.Fatal("node (2,1) should be defined after Set")
	}
	if g.Defined(0, 0) {
		t.Fatal("untouched node reported as defined")
	}
	if got := g.At(2, 1); got != 123.5 {
		t.Fatalf("At(2,1) = %v, want 123.5", got)
	}
	if g.Index(2, 1) != 1*4+2 {
		t.Fatalf("Index(2,1) = %d, want %d", g.Index(2, 1), 1*4+2)
	}
}

func TestGridClampSkipsUndefined(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, 10)
	g.Set(1, 0, 500)
	g.Set(0, 1, 2000)

	g.Clamp(55, 1000)

	if got := g.At(0, 0); got != 55 {
		t.Fatalf("low node clamped to %v, want 55", got)
	}
	if got := g.At(1, 0); got != 500 {
		t.Fatalf("in-range node changed to %v", got)
	}
	if got := g.At(0, 1); got != 1000 {
		t.Fatalf("high node clamped to %v, want 1000", got)
	}
	if g.Defined(1, 1) {
		t.Fatal("Clamp defined an undefined node")
	}
}
