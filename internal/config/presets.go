package config

import (
	"math"
	"sort"

	"github.com/san-kum/planar/internal/plane"
)

// MatrixPreset is a named transform from the teaching catalogue.
type MatrixPreset struct {
	Mat  plane.Mat
	Desc string
}

var Presets = map[string]MatrixPreset{
	"identity": {plane.Identity(), "leaves every point in place"},
	"rotate45": {plane.Rotation(math.Pi / 4), "counter-clockwise rotation by 45 degrees"},
	"rotate90": {plane.Rotation(math.Pi / 2), "counter-clockwise quarter turn"},
	"scale2":   {plane.Scale(2, 2), "uniform scaling by 2"},
	"squash":   {plane.Scale(2, 0.5), "stretch along x, compress along y"},
	"shear-x":  {plane.ShearX(1), "horizontal shear, x' = x + y"},
	"shear-y":  {plane.ShearY(1), "vertical shear, y' = y + x"},
	"flip-x":   {plane.ReflectX(), "reflection across the x-axis"},
	"flip-y":   {plane.ReflectY(), "reflection across the y-axis"},
	"classic":  {plane.Mat{A: 2, B: -1, C: 1, D: 1}, "the worked example [[2,-1],[1,1]]"},
	"collapse": {plane.Mat{A: 1, B: 2, C: 2, D: 4}, "singular map, flattens the plane onto a line"},
}

func GetPreset(name string) (MatrixPreset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
