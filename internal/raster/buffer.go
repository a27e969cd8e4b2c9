package raster

import (
	"fmt"

	"github.com/san-kum/planar/internal/plane"
)

// Buffer is a flat pixel buffer of shape H rows by W columns with C
// interleaved channels. The sample at (column x, row y, channel c)
// lives at index (y*W+x)*C + c. Intensities are kept as float64 in
// [0, 255].
type Buffer struct {
	W, H, C int
	Pix     []float64
}

// NewBuffer allocates a zeroed buffer of the given shape.
func NewBuffer(w, h, c int) (*Buffer, error) {
	if w < 1 || h < 1 || c < 1 {
		return nil, fmt.Errorf("%w: buffer shape %dx%dx%d", plane.ErrInvalidDimensions, w, h, c)
	}
	return &Buffer{W: w, H: h, C: c, Pix: make([]float64, w*h*c)}, nil
}

func (b *Buffer) Clone() *Buffer {
	c := &Buffer{W: b.W, H: b.H, C: b.C, Pix: make([]float64, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

// At returns the sample at (x, y, c). Callers keep indices in range;
// this is the hot path and does not bounds-check beyond the slice.
func (b *Buffer) At(x, y, c int) float64 {
	return b.Pix[(y*b.W+x)*b.C+c]
}

func (b *Buffer) Set(x, y, c int, v float64) {
	b.Pix[(y*b.W+x)*b.C+c] = v
}
