package render

import (
	"strings"

	"github.com/san-kum/planar/internal/lattice"
)

// Braille Patterns: 2x4 dots per character cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille terminal canvas. Width and Height are in character
// cells; the drawable raster is (Width*2) x (Height*4) sub-pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y). Out-of-range coordinates are
// dropped silently.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// PlotGrid projects every point of g through the viewport onto the
// sub-pixel raster, drawing each as a small cross so isolated lattice
// points stay visible.
func (c *Canvas) PlotGrid(g lattice.Grid, v Viewport) {
	w, h := c.Width*2, c.Height*4
	for _, p := range g {
		px, py := v.Project(p, w, h)
		c.Set(px, py)
		c.Set(px+1, py)
		c.Set(px, py+1)
	}
}

// DrawAxes draws the world x and y axes if they cross the viewport.
func (c *Canvas) DrawAxes(v Viewport) {
	w, h := c.Width*2, c.Height*4
	if v.MinY < 0 && v.MaxY > 0 {
		y := (h - 1) - int((0-v.MinY)/(v.MaxY-v.MinY)*float64(h-1))
		c.line(0, y, w-1, y)
	}
	if v.MinX < 0 && v.MaxX > 0 {
		x := int((0 - v.MinX) / (v.MaxX - v.MinX) * float64(w-1))
		c.line(x, 0, x, h-1)
	}
}

// line draws with Bresenham's algorithm.
func (c *Canvas) line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
