package core

import "math"

// Grid stores a 2D lattice of float64 node values in row-major order. Nodes
// that carry no value hold NaN.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a grid with the given dimensions. Every node starts
// undefined.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{W: w, H: h, data: make([]float64, w*h)}
	for i := range g.data {
		g.data[i] = math.NaN()
	}
	return g
}

// Values exposes the backing slice so callers can read/write nodes directly.
func (g *Grid) Values() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, z).
func (g *Grid) Index(x, z int) int { return z*g.W + x }

// At returns the node value at (x, z).
func (g *Grid) At(x, z int) float64 { return g.data[g.Index(x, z)] }

// Set stores a node value at (x, z).
func (g *Grid) Set(x, z int, v float64) { g.data[g.Index(x, z)] = v }

// Defined reports whether the node at (x, z) carries a value.
func (g *Grid) Defined(x, z int) bool { return !math.IsNaN(g.At(x, z)) }

// Clamp bounds every defined node value into [lo, hi]. Undefined nodes are
// left untouched.
func (g *Grid) Clamp(lo, hi float64) {
	for i, v := range g.data {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			g.data[i] = lo
		} else if v > hi {
			g.data[i] = hi
		}
	}
}
