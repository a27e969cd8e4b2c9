package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/planar/internal/lattice"
)

// GridSVG renders a colored point grid as an SVG document. Colors are
// positionally aligned with the grid; a nil or short color slice falls
// back to white points on the dark background.
func GridSVG(g lattice.Grid, colors []lattice.RGB, v Viewport, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, p := range g {
		px, py := v.Project(p, width, height)
		fill := "#ffffff"
		if i < len(colors) {
			c := colors[i]
			fill = fmt.Sprintf("#%02x%02x%02x",
				clampComponent(c.R), clampComponent(c.G), clampComponent(c.B))
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="3" fill="%s"/>
`, px, py, fill))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteGridSVG renders g and writes the document to path.
func WriteGridSVG(path string, g lattice.Grid, colors []lattice.RGB, v Viewport, width, height int) error {
	return os.WriteFile(path, []byte(GridSVG(g, colors, v, width, height)), 0644)
}
