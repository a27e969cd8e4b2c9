// Package plane provides the geometric primitives for 2D linear maps.
//
// The package defines the two value types everything else is built on:
//
//   - [Point]: a pair of real coordinates
//   - [Mat]: a 2x2 matrix representing a linear transformation
//
// All operations are pure functions of their inputs. A [Mat] fixes the
// origin and preserves parallelism; its determinant may be zero, in which
// case [Mat.Inverse] reports [ErrSingular] instead of dividing by zero.
//
// # Example
//
//	m := plane.Rotation(math.Pi / 4)
//	p := m.MulVec(plane.Point{X: 1, Y: 0})
package plane
