package raster

import (
	"fmt"
	"math"

	"github.com/san-kum/planar/internal/plane"
)

// Resample builds the image of src under the forward transform m by
// inverse mapping: every destination coordinate (x, y) is pulled
// through m⁻¹, rounded to the nearest integer with math.Round (halves
// round away from zero), and converted to the flat pixel index
// x + W*y. Indices outside [0, W*H) wrap modulo the buffer length, so
// every destination pixel is populated and the result has the shape of
// src.
//
// Singular matrices are rejected with plane.ErrSingular before any
// pixel work happens; a failed call produces no partial result.
func Resample(src *Buffer, m plane.Mat) (*Buffer, error) {
	if src == nil || len(src.Pix) == 0 {
		return nil, fmt.Errorf("%w: empty source image", plane.ErrInvalidDimensions)
	}
	inv, err := m.Inverse()
	if err != nil {
		return nil, err
	}

	dst := &Buffer{W: src.W, H: src.H, C: src.C, Pix: make([]float64, len(src.Pix))}
	n := src.W * src.H

	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			sp := inv.MulVec(plane.Point{X: float64(x), Y: float64(y)})
			sx := int(math.Round(sp.X))
			sy := int(math.Round(sp.Y))

			idx := (sx + src.W*sy) % n
			if idx < 0 {
				idx += n
			}

			di := (y*src.W + x) * src.C
			si := idx * src.C
			for c := 0; c < src.C; c++ {
				dst.Pix[di+c] = src.Pix[si+c]
			}
		}
	}
	return dst, nil
}
