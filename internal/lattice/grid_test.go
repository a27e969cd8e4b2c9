package lattice

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/planar/internal/plane"
)

func TestLinspace(t *testing.T) {
	vals, err := Linspace(-1, 1, 5)
	if err != nil {
		t.Fatalf("linspace failed: %v", err)
	}
	want := []float64{-1, -0.5, 0, 0.5, 1}
	if len(vals) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(vals))
	}
	for i := range want {
		if math.Abs(vals[i]-want[i]) > 1e-12 {
			t.Errorf("vals[%d]: expected %v, got %v", i, want[i], vals[i])
		}
	}
}

func TestLinspaceSingle(t *testing.T) {
	vals, err := Linspace(3, 7, 1)
	if err != nil {
		t.Fatalf("linspace failed: %v", err)
	}
	if len(vals) != 1 || vals[0] != 3 {
		t.Errorf("expected {3}, got %v", vals)
	}
}

func TestLinspaceInvalid(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Linspace(0, 1, n)
		if !errors.Is(err, plane.ErrInvalidDimensions) {
			t.Errorf("n=%d: expected ErrInvalidDimensions, got %v", n, err)
		}
	}
}

func TestBuildOrdering(t *testing.T) {
	xs := []float64{-1, 0, 1}
	ys := []float64{2, 3}

	g, err := Build(xs, ys)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(g) != len(xs)*len(ys) {
		t.Fatalf("expected %d points, got %d", len(xs)*len(ys), len(g))
	}

	for i, x := range xs {
		for j, y := range ys {
			got := g[i*len(ys)+j]
			if got != (plane.Point{X: x, Y: y}) {
				t.Errorf("index %d: expected (%v,%v), got %v", i*len(ys)+j, x, y, got)
			}
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	if _, err := Build(nil, []float64{1}); !errors.Is(err, plane.ErrInvalidDimensions) {
		t.Errorf("empty xs: expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := Build([]float64{1}, nil); !errors.Is(err, plane.ErrInvalidDimensions) {
		t.Errorf("empty ys: expected ErrInvalidDimensions, got %v", err)
	}
}

func TestApplyIdentity(t *testing.T) {
	g, _ := Build([]float64{-1, 0, 1}, []float64{-1, 0, 1})
	out := Apply(plane.Identity(), g)
	for i := range g {
		if out[i] != g[i] {
			t.Errorf("identity moved point %d: %v -> %v", i, g[i], out[i])
		}
	}
}

// The worked example from the docs: the 3x3 lattice on {-1,0,1} under
// [[2,-1],[1,1]], checked against the product computed by hand.
func TestApplyReference(t *testing.T) {
	g, _ := Build([]float64{-1, 0, 1}, []float64{-1, 0, 1})
	m := plane.Mat{A: 2, B: -1, C: 1, D: 1}
	out := Apply(m, g)

	for i, p := range g {
		want := plane.Point{X: 2*p.X - p.Y, Y: p.X + p.Y}
		if out[i] != want {
			t.Errorf("point %v: expected %v, got %v", p, want, out[i])
		}
	}

	// Spot check (1,1) -> (1,2).
	last := out[len(out)-1]
	if last != (plane.Point{X: 1, Y: 2}) {
		t.Errorf("(1,1): expected (1,2), got %v", last)
	}
}

func TestApplyComposition(t *testing.T) {
	g, _ := Build([]float64{-1, 0.5, 2}, []float64{-3, 0, 1})
	a := plane.Rotation(0.4)
	b := plane.Mat{A: 2, B: -1, C: 1, D: 1}

	sequential := Apply(a, Apply(b, g))
	composed := Apply(a.Mul(b), g)

	for i := range g {
		if math.Abs(sequential[i].X-composed[i].X) > 1e-12 ||
			math.Abs(sequential[i].Y-composed[i].Y) > 1e-12 {
			t.Errorf("point %d: %v vs %v", i, sequential[i], composed[i])
		}
	}
}

func TestBounds(t *testing.T) {
	g := Grid{{X: -2, Y: 1}, {X: 3, Y: -4}, {X: 0, Y: 0}}
	minX, minY, maxX, maxY := g.Bounds()
	if minX != -2 || maxX != 3 || minY != -4 || maxY != 1 {
		t.Errorf("bounds: got (%v,%v)-(%v,%v)", minX, minY, maxX, maxY)
	}
}

func TestColorize(t *testing.T) {
	g, _ := Build([]float64{0, 1}, []float64{0, 1})
	colors, err := Colorize(g, Flat(0.2, 0.4, 0.6))
	if err != nil {
		t.Fatalf("colorize failed: %v", err)
	}
	if len(colors) != len(g) {
		t.Fatalf("expected %d colors, got %d", len(g), len(colors))
	}
	for i, c := range colors {
		if c != (RGB{0.2, 0.4, 0.6}) {
			t.Errorf("color %d: got %v", i, c)
		}
	}
}

func TestColorizeNilFunc(t *testing.T) {
	g, _ := Build([]float64{0}, []float64{0})
	if _, err := Colorize(g, nil); !errors.Is(err, plane.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestHueWheelStableAcrossTransform(t *testing.T) {
	fn := HueWheel(2)
	p := plane.Point{X: 1, Y: 0.5}
	a, b := fn(p), fn(p)
	if a != b {
		t.Errorf("color function not deterministic: %v vs %v", a, b)
	}
	for _, v := range []float64{a.R, a.G, a.B} {
		if v < 0 || v > 1 {
			t.Errorf("component out of [0,1]: %v", v)
		}
	}
}
