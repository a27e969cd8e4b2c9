package lattice

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/planar/internal/plane"
)

// RGB is a color triple with components nominally in [0, 1]. Components
// are not clamped; out-of-range values are the caller's concern.
type RGB struct {
	R, G, B float64
}

// ColorFunc maps a point to a color. The same function is applied to
// both the original and the transformed grid so corresponding points
// keep the same color.
type ColorFunc func(p plane.Point) RGB

// Colorize maps every point of g through fn, positionally aligned with
// the grid.
func Colorize(g Grid, fn ColorFunc) ([]RGB, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil color function", plane.ErrInvalidDimensions)
	}
	out := make([]RGB, len(g))
	for i, p := range g {
		out[i] = fn(p)
	}
	return out, nil
}

// HueWheel colors points by their angle around the origin, with
// lightness growing with radius up to maxRadius.
func HueWheel(maxRadius float64) ColorFunc {
	if maxRadius <= 0 {
		maxRadius = 1
	}
	return func(p plane.Point) RGB {
		deg := math.Atan2(p.Y, p.X) * 180 / math.Pi
		if deg < 0 {
			deg += 360
		}
		r := math.Hypot(p.X, p.Y) / maxRadius
		if r > 1 {
			r = 1
		}
		c := colorful.Hsl(deg, 0.9, 0.35+0.4*r)
		return RGB{c.R, c.G, c.B}
	}
}

// Flat returns the same color for every point.
func Flat(r, g, b float64) ColorFunc {
	return func(plane.Point) RGB { return RGB{r, g, b} }
}
