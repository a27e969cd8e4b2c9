package anim

import (
	"fmt"

	"github.com/san-kum/planar/internal/lattice"
	"github.com/san-kum/planar/internal/plane"
)

// Interpolate returns the steps+1 matrices blending the identity into
// target: element j is I + (j/steps)·(target − I). Element 0 is exactly
// the identity and element steps exactly target, since j/steps is
// exactly 1 at the endpoint.
//
// steps must be at least 1; zero means "no animation" and is rejected
// with ErrStepCount — callers wanting a single still frame apply the
// target directly.
func Interpolate(target plane.Mat, steps int) ([]plane.Mat, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", plane.ErrStepCount, steps)
	}
	id := plane.Identity()
	mats := make([]plane.Mat, steps+1)
	for j := 0; j <= steps; j++ {
		mats[j] = id.Lerp(target, float64(j)/float64(steps))
	}
	return mats, nil
}

// Sequence is an ordered run of animation frames: one grid per
// interpolation step plus the matrix that produced it.
type Sequence struct {
	Mats  []plane.Mat
	Grids []lattice.Grid
	Steps int
}

// Frames applies each interpolated matrix to the fixed input grid.
// Frame 0 is the untransformed grid and frame steps the image of g
// under target.
func Frames(target plane.Mat, g lattice.Grid, steps int) (*Sequence, error) {
	if len(g) == 0 {
		return nil, fmt.Errorf("%w: empty grid", plane.ErrInvalidDimensions)
	}
	mats, err := Interpolate(target, steps)
	if err != nil {
		return nil, err
	}
	grids := make([]lattice.Grid, len(mats))
	for i, m := range mats {
		grids[i] = lattice.Apply(m, g)
	}
	return &Sequence{Mats: mats, Grids: grids, Steps: steps}, nil
}

// DetProfile returns the determinant of each frame's matrix in order,
// handy for charting how area scaling evolves along the blend.
func (s *Sequence) DetProfile() []float64 {
	dets := make([]float64, len(s.Mats))
	for i, m := range s.Mats {
		dets[i] = m.Det()
	}
	return dets
}
