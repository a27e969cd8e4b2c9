package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/san-kum/planar/internal/lattice"
	"github.com/san-kum/planar/internal/plane"
)

// Rasterizer converts grids into paletted images suitable for GIF
// frames. The palette and per-point color indices are fixed at
// construction from the base grid, so a point keeps its color as it
// moves through an animation.
type Rasterizer struct {
	W, H    int
	Dot     int
	palette color.Palette
	indices []uint8
}

// NewRasterizer builds a rasterizer for grids positionally aligned with
// base. A nil color function draws every point white on black.
func NewRasterizer(w, h int, base lattice.Grid, fn lattice.ColorFunc) *Rasterizer {
	r := &Rasterizer{
		W:       w,
		H:       h,
		Dot:     2,
		palette: color.Palette{color.Black},
		indices: make([]uint8, len(base)),
	}

	if fn == nil {
		r.palette = append(r.palette, color.White)
		for i := range r.indices {
			r.indices[i] = 1
		}
		return r
	}

	seen := make(map[color.RGBA]uint8)
	for i, p := range base {
		c := fn(p)
		rgba := color.RGBA{
			R: clampComponent(c.R),
			G: clampComponent(c.G),
			B: clampComponent(c.B),
			A: 255,
		}
		id, ok := seen[rgba]
		if !ok {
			if len(r.palette) < 256 {
				r.palette = append(r.palette, rgba)
				id = uint8(len(r.palette) - 1)
				seen[rgba] = id
			} else {
				// Palette full: fall back to the nearest existing entry.
				id = uint8(r.palette.Index(rgba))
			}
		}
		r.indices[i] = id
	}
	return r
}

// Frame draws g through the viewport as a paletted image. The grid must
// have the same length as the base grid the rasterizer was built for.
func (r *Rasterizer) Frame(g lattice.Grid, v Viewport) (*image.Paletted, error) {
	if len(g) != len(r.indices) {
		return nil, fmt.Errorf("%w: frame has %d points, rasterizer built for %d",
			plane.ErrInvalidDimensions, len(g), len(r.indices))
	}

	img := image.NewPaletted(image.Rect(0, 0, r.W, r.H), r.palette)
	for i, p := range g {
		px, py := v.Project(p, r.W, r.H)
		r.dot(img, px, py, r.indices[i])
	}
	return img, nil
}

func (r *Rasterizer) dot(img *image.Paletted, cx, cy int, idx uint8) {
	for dy := -r.Dot; dy <= r.Dot; dy++ {
		for dx := -r.Dot; dx <= r.Dot; dx++ {
			if dx*dx+dy*dy > r.Dot*r.Dot {
				continue
			}
			x, y := cx+dx, cy+dy
			if x >= 0 && x < r.W && y >= 0 && y < r.H {
				img.SetColorIndex(x, y, idx)
			}
		}
	}
}

func clampComponent(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(v * 255)
}
