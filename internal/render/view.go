package render

import (
	"github.com/san-kum/planar/internal/lattice"
	"github.com/san-kum/planar/internal/plane"
)

// Viewport is the world-coordinate window mapped onto an output raster.
type Viewport struct {
	MinX, MinY, MaxX, MaxY float64
}

// FitGrids returns a viewport covering every grid passed in, padded by
// 10% on each side. Degenerate extents are widened to unit size so the
// projection never divides by zero.
func FitGrids(grids ...lattice.Grid) Viewport {
	v := Viewport{}
	first := true
	for _, g := range grids {
		if len(g) == 0 {
			continue
		}
		minX, minY, maxX, maxY := g.Bounds()
		if first {
			v = Viewport{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
			first = false
			continue
		}
		if minX < v.MinX {
			v.MinX = minX
		}
		if minY < v.MinY {
			v.MinY = minY
		}
		if maxX > v.MaxX {
			v.MaxX = maxX
		}
		if maxY > v.MaxY {
			v.MaxY = maxY
		}
	}

	rangeX := v.MaxX - v.MinX
	rangeY := v.MaxY - v.MinY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	v.MinX -= rangeX * 0.1
	v.MaxX += rangeX * 0.1
	v.MinY -= rangeY * 0.1
	v.MaxY += rangeY * 0.1
	return v
}

// Project maps a world point to raster coordinates on a w-by-h output,
// flipping y so world-up is raster-up.
func (v Viewport) Project(p plane.Point, w, h int) (int, int) {
	px := int((p.X - v.MinX) / (v.MaxX - v.MinX) * float64(w-1))
	py := (h - 1) - int((p.Y-v.MinY)/(v.MaxY-v.MinY)*float64(h-1))
	return px, py
}
