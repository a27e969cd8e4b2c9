package lattice

import (
	"fmt"

	"github.com/san-kum/planar/internal/plane"
)

// Grid is an ordered sequence of 2D sample points.
type Grid []plane.Point

func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	copy(c, g)
	return c
}

// Bounds returns the axis-aligned extent of the grid. Degenerate grids
// (all points coincident on an axis) report a zero-width extent on that
// axis; callers that need a viewport pad it themselves.
func (g Grid) Bounds() (minX, minY, maxX, maxY float64) {
	if len(g) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = g[0].X, g[0].X
	minY, maxY = g[0].Y, g[0].Y
	for _, p := range g[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}

// Linspace returns n evenly spaced values from min to max inclusive.
// n == 1 yields just {min}.
func Linspace(min, max float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: linspace needs at least 1 sample, got %d", plane.ErrInvalidDimensions, n)
	}
	if n == 1 {
		return []float64{min}, nil
	}
	vals := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range vals {
		vals[i] = min + float64(i)*step
	}
	return vals, nil
}

// Build produces the Cartesian product of xs and ys as a Grid, outer
// loop over xs, inner loop over ys.
func Build(xs, ys []float64) (Grid, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return nil, fmt.Errorf("%w: empty range (|xs|=%d, |ys|=%d)", plane.ErrInvalidDimensions, len(xs), len(ys))
	}
	g := make(Grid, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			g = append(g, plane.Point{X: x, Y: y})
		}
	}
	return g, nil
}

// Apply maps every point of g through m. The input grid is left intact;
// NaN and Inf coordinates propagate per IEEE semantics.
func Apply(m plane.Mat, g Grid) Grid {
	out := make(Grid, len(g))
	for i, p := range g {
		out[i] = m.MulVec(p)
	}
	return out
}
