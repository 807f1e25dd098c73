// Package interp resamples the scattered profile onto a regular lattice
// using piecewise-linear interpolation over a Delaunay triangulation.
package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/fogleman/delaunay"

	"geoprofile/internal/core"
	"geoprofile/internal/profile"
)

// ErrDegenerateInput indicates the sample set cannot be triangulated, e.g.
// fewer than three distinct points or an all-collinear scatter.
var ErrDegenerateInput = errors.New("sample set cannot be triangulated")

// baryEpsilon tolerates floating point error when testing whether a lattice
// node sits inside a triangle.
const baryEpsilon = 1e-9

// Field is an interpolated grid together with the domain it spans. Columns
// run along surface position, rows along depth. Nodes outside the convex
// hull of the scatter are NaN.
type Field struct {
	Grid   *core.Grid
	Domain profile.Domain
}

// X returns the surface position of lattice column i.
func (f *Field) X(i int) float64 {
	return linspace(f.Domain.XMin, f.Domain.XMax, i, f.Grid.W)
}

// Depth returns the depth of lattice row j.
func (f *Field) Depth(j int) float64 {
	return linspace(f.Domain.ZMin, f.Domain.ZMax, j, f.Grid.H)
}

// Value returns the node value at column i, row j. Undefined nodes are NaN.
func (f *Field) Value(i, j int) float64 { return f.Grid.At(i, j) }

// Interpolate builds a resolution-by-resolution lattice over the domain and
// linearly interpolates the scattered samples onto it. Lattice endpoints
// coincide with the domain bounds. Nodes outside the convex hull of the
// scatter stay undefined, and defined nodes are clamped into
// [profile.ValueMin, profile.ValueMax].
func Interpolate(samples []profile.Sample, d profile.Domain, resolution int) (*Field, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("grid resolution must be at least 2, got %d", resolution)
	}

	pts := make([]delaunay.Point, len(samples))
	for i, s := range samples {
		pts[i] = delaunay.Point{X: s.X, Y: s.Z}
	}
	if distinctPoints(pts) < 3 {
		return nil, ErrDegenerateInput
	}

	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateInput, err)
	}
	tris := collectTriangles(tri)
	if len(tris) == 0 {
		// A triangulation with no triangles means the scatter is collinear.
		return nil, ErrDegenerateInput
	}

	field := &Field{Grid: core.NewGrid(resolution, resolution), Domain: d}
	for j := 0; j < resolution; j++ {
		z := field.Depth(j)
		for i := 0; i < resolution; i++ {
			x := field.X(i)
			if v, ok := interpolateAt(tris, samples, x, z); ok {
				field.Grid.Set(i, j, v)
			}
		}
	}
	field.Grid.Clamp(profile.ValueMin, profile.ValueMax)
	return field, nil
}

// triangle caches one Delaunay triangle: vertex indices into the sample
// slice, a bounding box for cheap rejection, and the doubled signed area.
type triangle struct {
	a, b, c    int
	minX, maxX float64
	minZ, maxZ float64
	det        float64
}

func collectTriangles(t *delaunay.Triangulation) []triangle {
	tris := make([]triangle, 0, len(t.Triangles)/3)
	for i := 0; i+2 < len(t.Triangles); i += 3 {
		a, b, c := t.Triangles[i], t.Triangles[i+1], t.Triangles[i+2]
		pa, pb, pc := t.Points[a], t.Points[b], t.Points[c]
		det := (pb.Y-pc.Y)*(pa.X-pc.X) + (pc.X-pb.X)*(pa.Y-pc.Y)
		if det == 0 {
			continue
		}
		tris = append(tris, triangle{
			a: a, b: b, c: c,
			minX: math.Min(pa.X, math.Min(pb.X, pc.X)),
			maxX: math.Max(pa.X, math.Max(pb.X, pc.X)),
			minZ: math.Min(pa.Y, math.Min(pb.Y, pc.Y)),
			maxZ: math.Max(pa.Y, math.Max(pb.Y, pc.Y)),
			det:  det,
		})
	}
	return tris
}

// interpolateAt locates the triangle containing (x, z) and blends its vertex
// values by barycentric weight. The second return is false outside the hull.
func interpolateAt(tris []triangle, samples []profile.Sample, x, z float64) (float64, bool) {
	for _, t := range tris {
		if x < t.minX-baryEpsilon || x > t.maxX+baryEpsilon {
			continue
		}
		if z < t.minZ-baryEpsilon || z > t.maxZ+baryEpsilon {
			continue
		}
		sa, sb, sc := samples[t.a], samples[t.b], samples[t.c]
		wa := ((sb.Z-sc.Z)*(x-sc.X) + (sc.X-sb.X)*(z-sc.Z)) / t.det
		wb := ((sc.Z-sa.Z)*(x-sc.X) + (sa.X-sc.X)*(z-sc.Z)) / t.det
		wc := 1 - wa - wb
		if wa < -baryEpsilon || wb < -baryEpsilon || wc < -baryEpsilon {
			continue
		}
		return wa*sa.Value + wb*sb.Value + wc*sc.Value, true
	}
	return 0, false
}

// distinctPoints counts unique scatter positions, stopping once three are
// found.
func distinctPoints(pts []delaunay.Point) int {
	seen := make(map[delaunay.Point]struct{}, 3)
	for _, p := range pts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		if len(seen) == 3 {
			break
		}
	}
	return len(seen)
}

func linspace(lo, hi float64, i, n int) float64 {
	if n < 2 {
		return lo
	}
	return lo + (hi-lo)*float64(i)/float64(n-1)
}
