package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/planar/internal/anim"
	"github.com/san-kum/planar/internal/config"
	"github.com/san-kum/planar/internal/lattice"
	"github.com/san-kum/planar/internal/plane"
	"github.com/san-kum/planar/internal/raster"
	"github.com/san-kum/planar/internal/render"
	"github.com/san-kum/planar/internal/tui"
)

var (
	matA, matB float64
	matC, matD float64
	preset     string
	configFile string
	// Grid ranges
	xMin, xMax float64
	yMin, yMax float64
	xCount     int
	yCount     int
	// Animation
	steps    int
	delayCS  int
	outPath  string
	frameDir string
	chart    bool
	// Rendering
	size     int
	colormap string
	svgPath  string
	// Image resampling
	maxSize int
)

// main registers the commands and flags; without a subcommand the
// interactive view is launched. Exits with status 1 on command failure.
func main() {
	rootCmd := &cobra.Command{
		Use:   "planar",
		Short: "2d linear transformation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive view when no command is given.
			xs, err := lattice.Linspace(config.DefaultRangeMin, config.DefaultRangeMax, config.DefaultCount)
			if err != nil {
				return err
			}
			ys, err := lattice.Linspace(config.DefaultRangeMin, config.DefaultRangeMax, config.DefaultCount)
			if err != nil {
				return err
			}
			g, err := lattice.Build(xs, ys)
			if err != nil {
				return err
			}
			return tui.Run(g, lattice.HueWheel(math.Sqrt2), "classic", config.DefaultSteps)
		},
	}

	addMatrixFlags := func(cmd *cobra.Command) {
		cmd.Flags().Float64Var(&matA, "a", 1, "matrix entry a (row 1, col 1)")
		cmd.Flags().Float64Var(&matB, "b", 0, "matrix entry b (row 1, col 2)")
		cmd.Flags().Float64Var(&matC, "c", 0, "matrix entry c (row 2, col 1)")
		cmd.Flags().Float64Var(&matD, "d", 1, "matrix entry d (row 2, col 2)")
		cmd.Flags().StringVar(&preset, "preset", "", "use a named transform preset")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	}

	addGridFlags := func(cmd *cobra.Command) {
		cmd.Flags().Float64Var(&xMin, "x-min", config.DefaultRangeMin, "grid x range start")
		cmd.Flags().Float64Var(&xMax, "x-max", config.DefaultRangeMax, "grid x range end")
		cmd.Flags().IntVar(&xCount, "x-count", config.DefaultCount, "samples along x")
		cmd.Flags().Float64Var(&yMin, "y-min", config.DefaultRangeMin, "grid y range start")
		cmd.Flags().Float64Var(&yMax, "y-max", config.DefaultRangeMax, "grid y range end")
		cmd.Flags().IntVar(&yCount, "y-count", config.DefaultCount, "samples along y")
		cmd.Flags().StringVar(&colormap, "colormap", "hue", "point color mapping (hue, none)")
	}

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "transform a point grid and show before/after",
		RunE:  runGrid,
	}
	addMatrixFlags(gridCmd)
	addGridFlags(gridCmd)
	gridCmd.Flags().StringVar(&svgPath, "svg", "", "write the transformed grid as SVG")

	imageCmd := &cobra.Command{
		Use:   "image [input] [output]",
		Short: "resample an image through the transform",
		Args:  cobra.ExactArgs(2),
		RunE:  runImage,
	}
	addMatrixFlags(imageCmd)
	imageCmd.Flags().IntVar(&maxSize, "max-size", 0, "cap the working size before resampling (0 = off)")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "interpolate identity to target and encode frames",
		RunE:  runAnimate,
	}
	addMatrixFlags(animateCmd)
	addGridFlags(animateCmd)
	animateCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "interpolation steps (frames = steps + 1)")
	animateCmd.Flags().IntVar(&delayCS, "delay", config.DefaultDelayCS, "per-frame delay in 1/100 s (gif)")
	animateCmd.Flags().StringVar(&outPath, "out", "planar.gif", "animated gif output path")
	animateCmd.Flags().StringVar(&frameDir, "frames", "", "write a png frame sequence into this directory instead")
	animateCmd.Flags().IntVar(&size, "size", config.DefaultSize, "frame size in pixels")
	animateCmd.Flags().BoolVar(&chart, "chart", false, "print the determinant profile")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive animation in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&preset, "preset", "classic", "starting transform preset")
	liveCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "interpolation steps")
	addGridFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the transform catalogue",
		RunE:  listPresets,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export the transformed grid to CSV",
		RunE:  exportCSV,
	}
	addMatrixFlags(exportCSVCmd)
	addGridFlags(exportCSVCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export the transformed grid to JSON",
		RunE:  exportJSON,
	}
	addMatrixFlags(exportJSONCmd)
	addGridFlags(exportJSONCmd)

	rootCmd.AddCommand(gridCmd, imageCmd, animateCmd, liveCmd, presetsCmd, exportCSVCmd, exportJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveMatrix merges preset, config file, and flags into the working
// transform. Precedence, lowest to highest: defaults, config file,
// preset, individual matrix flags.
func resolveMatrix(cmd *cobra.Command) (plane.Mat, error) {
	m := plane.Identity()

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return plane.Mat{}, fmt.Errorf("failed to load config: %w", err)
		}
		m = cfg.Mat()
	}

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return plane.Mat{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.PresetNames())
		}
		m = p.Mat
	}

	if cmd.Flags().Changed("a") {
		m.A = matA
	}
	if cmd.Flags().Changed("b") {
		m.B = matB
	}
	if cmd.Flags().Changed("c") {
		m.C = matC
	}
	if cmd.Flags().Changed("d") {
		m.D = matD
	}
	return m, nil
}

func buildGrid(cmd *cobra.Command) (lattice.Grid, error) {
	// Config file values apply to any grid flag the user did not set.
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		if !cmd.Flags().Changed("x-min") {
			xMin = cfg.Grid.XMin
		}
		if !cmd.Flags().Changed("x-max") {
			xMax = cfg.Grid.XMax
		}
		if !cmd.Flags().Changed("x-count") {
			xCount = cfg.Grid.XCount
		}
		if !cmd.Flags().Changed("y-min") {
			yMin = cfg.Grid.YMin
		}
		if !cmd.Flags().Changed("y-max") {
			yMax = cfg.Grid.YMax
		}
		if !cmd.Flags().Changed("y-count") {
			yCount = cfg.Grid.YCount
		}
	}

	xs, err := lattice.Linspace(xMin, xMax, xCount)
	if err != nil {
		return nil, err
	}
	ys, err := lattice.Linspace(yMin, yMax, yCount)
	if err != nil {
		return nil, err
	}
	return lattice.Build(xs, ys)
}

func colorFunc(g lattice.Grid) lattice.ColorFunc {
	switch colormap {
	case "none":
		return nil
	default:
		minX, minY, maxX, maxY := g.Bounds()
		r := math.Hypot(math.Max(math.Abs(minX), math.Abs(maxX)), math.Max(math.Abs(minY), math.Abs(maxY)))
		return lattice.HueWheel(r)
	}
}

func runGrid(cmd *cobra.Command, args []string) error {
	m, err := resolveMatrix(cmd)
	if err != nil {
		return err
	}
	g, err := buildGrid(cmd)
	if err != nil {
		return err
	}

	out := lattice.Apply(m, g)
	view := render.FitGrids(g, out)

	before := render.NewCanvas(36, 12)
	before.DrawAxes(view)
	before.PlotGrid(g, view)

	after := render.NewCanvas(36, 12)
	after.DrawAxes(view)
	after.PlotGrid(out, view)

	fmt.Printf("matrix: [%.3f %.3f; %.3f %.3f]  det: %.3f\n\n", m.A, m.B, m.C, m.D, m.Det())
	fmt.Println("original:")
	fmt.Println(before.String())
	fmt.Println("transformed:")
	fmt.Println(after.String())

	if svgPath != "" {
		colors, err := lattice.Colorize(out, colorFuncOrFlat(g))
		if err != nil {
			return err
		}
		if err := render.WriteGridSVG(svgPath, out, colors, view, 600, 600); err != nil {
			return err
		}
		fmt.Printf("svg written to %s\n", svgPath)
	}
	return nil
}

// colorFuncOrFlat is colorFunc with a white fallback so SVG output
// always carries explicit fills.
func colorFuncOrFlat(g lattice.Grid) lattice.ColorFunc {
	if fn := colorFunc(g); fn != nil {
		return fn
	}
	return lattice.Flat(1, 1, 1)
}

func runImage(cmd *cobra.Command, args []string) error {
	m, err := resolveMatrix(cmd)
	if err != nil {
		return err
	}

	src, err := raster.Decode(args[0])
	if err != nil {
		return err
	}
	src = raster.Prescale(src, maxSize)

	dst, err := raster.Resample(src, m)
	if err != nil {
		return err
	}

	if err := raster.Encode(args[1], dst); err != nil {
		return err
	}
	fmt.Printf("resampled %dx%d image (det %.3f) -> %s\n", src.W, src.H, m.Det(), args[1])
	return nil
}

func runAnimate(cmd *cobra.Command, args []string) error {
	m, err := resolveMatrix(cmd)
	if err != nil {
		return err
	}
	g, err := buildGrid(cmd)
	if err != nil {
		return err
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("delay") {
			delayCS = cfg.DelayCS
		}
		if !cmd.Flags().Changed("size") {
			size = cfg.Size
		}
	}

	seq, err := anim.Frames(m, g, steps)
	if err != nil {
		return err
	}

	if chart {
		graph := asciigraph.Plot(seq.DetProfile(),
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("determinant along the blend"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	rast := render.NewRasterizer(size, size, g, colorFunc(g))

	var enc anim.FrameEncoder
	if frameDir != "" {
		enc = &anim.PNGSequenceEncoder{Dir: frameDir, Rasterizer: rast}
	} else {
		enc = &anim.GIFEncoder{Path: outPath, DelayCS: delayCS, Rasterizer: rast}
	}
	if err := enc.Encode(seq); err != nil {
		return err
	}

	if frameDir != "" {
		fmt.Printf("%d frames written to %s\n", len(seq.Grids), frameDir)
	} else {
		fmt.Printf("%d frames written to %s\n", len(seq.Grids), outPath)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	g, err := buildGrid(cmd)
	if err != nil {
		return err
	}
	if preset == "" {
		preset = "classic"
	}
	if steps < 1 {
		steps = config.DefaultSteps
	}
	return tui.Run(g, colorFunc(g), preset, steps)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMATRIX\tDET\tDESCRIPTION")
	for _, name := range config.PresetNames() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t[%.2f %.2f; %.2f %.2f]\t%.2f\t%s\n",
			name, p.Mat.A, p.Mat.B, p.Mat.C, p.Mat.D, p.Mat.Det(), p.Desc)
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	m, err := resolveMatrix(cmd)
	if err != nil {
		return err
	}
	g, err := buildGrid(cmd)
	if err != nil {
		return err
	}

	out := lattice.Apply(m, g)
	colors, err := lattice.Colorize(g, colorFuncOrFlat(g))
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "tx", "ty", "r", "g", "b"}); err != nil {
		return err
	}
	for i := range g {
		row := []string{
			strconv.FormatFloat(g[i].X, 'f', 6, 64),
			strconv.FormatFloat(g[i].Y, 'f', 6, 64),
			strconv.FormatFloat(out[i].X, 'f', 6, 64),
			strconv.FormatFloat(out[i].Y, 'f', 6, 64),
			strconv.FormatFloat(colors[i].R, 'f', 4, 64),
			strconv.FormatFloat(colors[i].G, 'f', 4, 64),
			strconv.FormatFloat(colors[i].B, 'f', 4, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

type gridExport struct {
	Matrix [4]float64    `json:"matrix"`
	Det    float64       `json:"det"`
	Points []pointExport `json:"points"`
}

type pointExport struct {
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
	TX    float64    `json:"tx"`
	TY    float64    `json:"ty"`
	Color [3]float64 `json:"color"`
}

func exportJSON(cmd *cobra.Command, args []string) error {
	m, err := resolveMatrix(cmd)
	if err != nil {
		return err
	}
	g, err := buildGrid(cmd)
	if err != nil {
		return err
	}

	out := lattice.Apply(m, g)
	colors, err := lattice.Colorize(g, colorFuncOrFlat(g))
	if err != nil {
		return err
	}

	export := gridExport{
		Matrix: [4]float64{m.A, m.B, m.C, m.D},
		Det:    m.Det(),
		Points: make([]pointExport, len(g)),
	}
	for i := range g {
		export.Points[i] = pointExport{
			X: g[i].X, Y: g[i].Y,
			TX: out[i].X, TY: out[i].Y,
			Color: [3]float64{colors[i].R, colors[i].G, colors[i].B},
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(export)
}
