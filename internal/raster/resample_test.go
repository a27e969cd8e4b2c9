package raster

import (
	"errors"
	"testing"

	"github.com/san-kum/planar/internal/plane"
)

// ramp fills a single-channel buffer with its own flat index so fetch
// positions are directly observable in the output.
func ramp(w, h int) *Buffer {
	b, _ := NewBuffer(w, h, 1)
	for i := range b.Pix {
		b.Pix[i] = float64(i)
	}
	return b
}

func TestResampleIdentity(t *testing.T) {
	src := ramp(8, 6)
	dst, err := Resample(src, plane.Identity())
	if err != nil {
		t.Fatalf("resample failed: %v", err)
	}
	if dst.W != src.W || dst.H != src.H || dst.C != src.C {
		t.Fatalf("shape changed: %dx%dx%d -> %dx%dx%d", src.W, src.H, src.C, dst.W, dst.H, dst.C)
	}
	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("pixel %d: expected %v, got %v", i, src.Pix[i], dst.Pix[i])
		}
	}
}

func TestResampleSingular(t *testing.T) {
	src := ramp(4, 4)
	_, err := Resample(src, plane.Mat{A: 1, B: 2, C: 2, D: 4})
	if !errors.Is(err, plane.ErrSingular) {
		t.Errorf("expected ErrSingular, got %v", err)
	}
}

func TestResampleEmpty(t *testing.T) {
	if _, err := Resample(nil, plane.Identity()); !errors.Is(err, plane.ErrInvalidDimensions) {
		t.Errorf("nil source: expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := Resample(&Buffer{}, plane.Identity()); !errors.Is(err, plane.ErrInvalidDimensions) {
		t.Errorf("empty source: expected ErrInvalidDimensions, got %v", err)
	}
}

// A forward scale of 0.5 inverse-maps destination (x, y) to source
// (2x, 2y). Past the halfway line that lands outside the extent and
// must wrap modulo the flat buffer length.
func TestResampleWrapAround(t *testing.T) {
	w, h := 4, 4
	src := ramp(w, h)
	dst, err := Resample(src, plane.Scale(0.5, 0.5))
	if err != nil {
		t.Fatalf("resample failed: %v", err)
	}

	n := w * h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			k := 2*x + w*(2*y)
			want := src.Pix[((k%n)+n)%n]
			got := dst.At(x, y, 0)
			if got != want {
				t.Errorf("dest (%d,%d): expected %v (flat %d mod %d), got %v", x, y, want, k, n, got)
			}
		}
	}
}

// Scaling up and back down reconstructs the interior exactly: with
// A = scale(2,2), the inverse pass lands on even coordinates that the
// forward pass produced without rounding loss.
func TestResampleRoundTrip(t *testing.T) {
	w, h := 8, 8
	src := ramp(w, h)

	up, err := Resample(src, plane.Scale(2, 2))
	if err != nil {
		t.Fatalf("forward resample failed: %v", err)
	}
	down, err := Resample(up, plane.Scale(0.5, 0.5))
	if err != nil {
		t.Fatalf("inverse resample failed: %v", err)
	}

	for y := 0; y < h/2; y++ {
		for x := 0; x < w/2; x++ {
			if got, want := down.At(x, y, 0), src.At(x, y, 0); got != want {
				t.Errorf("(%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestResampleMultiChannel(t *testing.T) {
	b, _ := NewBuffer(3, 3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			b.Set(x, y, 0, float64(x))
			b.Set(x, y, 1, float64(y))
			b.Set(x, y, 2, float64(x+y))
		}
	}

	dst, err := Resample(b, plane.Identity())
	if err != nil {
		t.Fatalf("resample failed: %v", err)
	}
	for i := range b.Pix {
		if dst.Pix[i] != b.Pix[i] {
			t.Fatalf("channel data not carried: pixel %d", i)
		}
	}
}

func TestNewBufferInvalid(t *testing.T) {
	tests := []struct {
		name    string
		w, h, c int
	}{
		{"zero width", 0, 4, 1},
		{"zero height", 4, 0, 1},
		{"zero channels", 4, 4, 0},
		{"negative", -1, 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBuffer(tt.w, tt.h, tt.c); !errors.Is(err, plane.ErrInvalidDimensions) {
				t.Errorf("expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}
