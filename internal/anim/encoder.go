package anim

import (
	"fmt"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"

	"github.com/san-kum/planar/internal/plane"
	"github.com/san-kum/planar/internal/render"
)

// A FrameEncoder turns a frame sequence into an external artifact.
// Implementations own file naming and container format; the sequence
// only guarantees frame order.
type FrameEncoder interface {
	Encode(seq *Sequence) error
}

// GIFEncoder rasterizes each frame and writes a looping animated GIF.
type GIFEncoder struct {
	Path       string
	DelayCS    int // per-frame delay in hundredths of a second
	Rasterizer *render.Rasterizer
}

func (e *GIFEncoder) Encode(seq *Sequence) error {
	if len(seq.Grids) == 0 {
		return fmt.Errorf("%w: empty frame sequence", plane.ErrInvalidDimensions)
	}
	delay := e.DelayCS
	if delay < 1 {
		delay = 4
	}

	// Fixed framing across the whole run so the motion reads.
	view := render.FitGrids(seq.Grids...)

	out := gif.GIF{LoopCount: 0}
	for _, g := range seq.Grids {
		img, err := e.Rasterizer.Frame(g, view)
		if err != nil {
			return err
		}
		out.Image = append(out.Image, img)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(e.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &out)
}

// PNGSequenceEncoder writes one PNG per frame into Dir with strictly
// increasing zero-padded indices (frame_000.png, frame_001.png, ...),
// ready for an external tool to stitch.
type PNGSequenceEncoder struct {
	Dir        string
	Rasterizer *render.Rasterizer
}

func (e *PNGSequenceEncoder) Encode(seq *Sequence) error {
	if len(seq.Grids) == 0 {
		return fmt.Errorf("%w: empty frame sequence", plane.ErrInvalidDimensions)
	}
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return err
	}

	pad := len(fmt.Sprintf("%d", len(seq.Grids)-1))
	if pad < 3 {
		pad = 3
	}

	view := render.FitGrids(seq.Grids...)
	for i, g := range seq.Grids {
		img, err := e.Rasterizer.Frame(g, view)
		if err != nil {
			return err
		}
		path := filepath.Join(e.Dir, fmt.Sprintf("frame_%0*d.png", pad, i))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
