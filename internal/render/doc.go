// Package render draws point grids for terminal, image, and SVG output.
//
// Three collaborators live here:
//
//   - [Canvas]: Braille-based terminal canvas, 2x4 sub-pixels per cell
//   - [Rasterizer]: converts grids into paletted images for GIF/PNG frames
//   - [GridSVG]: vector export of a colored point grid
//
// All of them project world coordinates through a shared [Viewport] so
// a frame sequence keeps a stable framing while the points move.
package render
