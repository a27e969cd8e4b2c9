package tui

import (
	"fmt"
	"image"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/planar/internal/anim"
	"github.com/san-kum/planar/internal/config"
	"github.com/san-kum/planar/internal/lattice"
	"github.com/san-kum/planar/internal/render"
)

const (
	canvasWidth  = 60
	canvasHeight = 22
	frameW       = 480
	frameH       = 480
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model holds the animation state and visualization buffers for the
// interactive view.
type Model struct {
	base     lattice.Grid
	colorFn  lattice.ColorFunc
	presets  []string
	selected int
	steps    int

	seq    *anim.Sequence
	view   render.Viewport
	frame  int
	canvas *render.Canvas

	playing   bool
	recording bool
	frames    []*image.Paletted
	raster    *render.Rasterizer
	showHelp  bool
}

// NewModel initializes the interactive session on the given base grid.
// startPreset selects the initial transform; unknown names fall back to
// the first catalogue entry.
func NewModel(base lattice.Grid, colorFn lattice.ColorFunc, startPreset string, steps int) Model {
	names := config.PresetNames()
	selected := 0
	for i, n := range names {
		if n == startPreset {
			selected = i
			break
		}
	}

	m := Model{
		base:     base,
		colorFn:  colorFn,
		presets:  names,
		selected: selected,
		steps:    steps,
		canvas:   render.NewCanvas(canvasWidth, canvasHeight),
		playing:  true,
		raster:   render.NewRasterizer(frameW, frameH, base, colorFn),
	}
	m.rebuild()
	return m
}

// rebuild regenerates the frame sequence for the selected preset and
// resets playback.
func (m *Model) rebuild() {
	preset, _ := config.GetPreset(m.presets[m.selected])
	seq, err := anim.Frames(preset.Mat, m.base, m.steps)
	if err != nil {
		return
	}
	m.seq = seq
	m.view = render.FitGrids(seq.Grids...)
	m.frame = 0
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances playback.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.frame = 0
		case "tab":
			m.selected = (m.selected + 1) % len(m.presets)
			m.rebuild()
		case "shift+tab":
			m.selected = (m.selected - 1 + len(m.presets)) % len(m.presets)
			m.rebuild()
		case "[":
			m.playing = false
			m.scrub(-1)
		case "]":
			m.playing = false
			m.scrub(1)
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.playing && m.seq != nil {
			m.frame = (m.frame + 1) % len(m.seq.Grids)
		}
		if m.recording && m.seq != nil {
			if img, err := m.raster.Frame(m.seq.Grids[m.frame], m.view); err == nil {
				m.frames = append(m.frames, img)
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) scrub(dir int) {
	if m.seq == nil {
		return
	}
	m.frame += dir
	if m.frame < 0 {
		m.frame = 0
	}
	if m.frame >= len(m.seq.Grids) {
		m.frame = len(m.seq.Grids) - 1
	}
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	out := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, 3)
	}
	f, err := os.Create("planar.gif")
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &out)
}

// View renders the TUI interface.
func (m Model) View() string {
	if m.seq == nil {
		return "no animation"
	}

	m.canvas.Clear()
	m.canvas.DrawAxes(m.view)
	m.canvas.PlotGrid(m.seq.Grids[m.frame], m.view)
	canvasView := canvasStyle.Render(m.canvas.String())

	name := m.presets[m.selected]
	preset, _ := config.GetPreset(name)
	mat := m.seq.Mats[m.frame]

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(name)) + "\n")
	s.WriteString(preset.Desc + "\n\n")

	status := "PLAYING"
	if !m.playing {
		status = "PAUSED"
	}
	if m.recording {
		status += " ● REC"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d / %d", m.frame, m.seq.Steps)) + "\n")
	s.WriteString(labelStyle.Render("Matrix") + valueStyle.Render(fmt.Sprintf("[%6.2f %6.2f]", mat.A, mat.B)) + "\n")
	s.WriteString(labelStyle.Render("") + valueStyle.Render(fmt.Sprintf("[%6.2f %6.2f]", mat.C, mat.D)) + "\n")
	s.WriteString(labelStyle.Render("Det") + activeStyle.Render(fmt.Sprintf("%.3f", mat.Det())) + "\n")

	dets := m.seq.DetProfile()
	if len(dets) > 1 {
		chart := asciigraph.Plot(dets, asciigraph.Height(4), asciigraph.Width(26), asciigraph.Caption("determinant"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Restart Q:Quit\nTab:Preset G:Record ?:Help\n[ ]:Step"))
	statsView := statsStyle.Render(s.String())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Restart animation        ║
║  Q        - Quit                     ║
║  Tab      - Next transform preset    ║
║  Shift+Tab- Previous preset          ║
║  [        - Step backward            ║
║  ]        - Step forward             ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the interactive session and blocks until the user quits.
func Run(base lattice.Grid, colorFn lattice.ColorFunc, startPreset string, steps int) error {
	p := tea.NewProgram(NewModel(base, colorFn, startPreset, steps))
	_, err := p.Run()
	return err
}
