// Package anim generates stepwise animation frames for a linear
// transform.
//
// [Interpolate] blends the identity matrix into a target across a fixed
// number of steps; [Frames] evaluates the blend against a grid, giving
// the ordered [Sequence] a [FrameEncoder] turns into an artifact (an
// animated GIF, a numbered PNG sequence). The core contract ends at the
// sequence: frame 0 is the untransformed grid, the last frame the fully
// transformed one, and encoders own file naming and container formats.
package anim
