package plane

import "math"

// SingularEps is the determinant magnitude below which a matrix is
// treated as non-invertible.
const SingularEps = 1e-12

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Mat is a 2x2 matrix in row-major order:
//
//	| A B |
//	| C D |
type Mat struct {
	A, B, C, D float64
}

// Identity returns the identity transform.
func Identity() Mat { return Mat{1, 0, 0, 1} }

// Rotation returns a counter-clockwise rotation by rad radians.
func Rotation(rad float64) Mat {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat{c, -s, s, c}
}

// Scale returns a scaling by sx along x and sy along y.
func Scale(sx, sy float64) Mat { return Mat{sx, 0, 0, sy} }

// ShearX returns a horizontal shear: x' = x + k*y.
func ShearX(k float64) Mat { return Mat{1, k, 0, 1} }

// ShearY returns a vertical shear: y' = y + k*x.
func ShearY(k float64) Mat { return Mat{1, 0, k, 1} }

// ReflectX returns a reflection across the x-axis.
func ReflectX() Mat { return Mat{1, 0, 0, -1} }

// ReflectY returns a reflection across the y-axis.
func ReflectY() Mat { return Mat{-1, 0, 0, 1} }

// MulVec applies the transform to a point.
func (m Mat) MulVec(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.C*p.X + m.D*p.Y,
	}
}

// Mul returns the matrix product m·n, the transform that applies n first
// and then m.
func (m Mat) Mul(n Mat) Mat {
	return Mat{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Det returns the determinant.
func (m Mat) Det() float64 { return m.A*m.D - m.B*m.C }

// Inverse returns the inverse transform. Matrices with |det| below
// SingularEps are rejected with ErrSingular rather than letting the
// division blow up downstream.
func (m Mat) Inverse() (Mat, error) {
	det := m.Det()
	if math.Abs(det) < SingularEps {
		return Mat{}, ErrSingular
	}
	inv := 1 / det
	return Mat{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
	}, nil
}

// Lerp blends elementwise from m toward target: m + t*(target - m).
// t == 0 yields m and t == 1 yields target exactly.
func (m Mat) Lerp(target Mat, t float64) Mat {
	return Mat{
		A: m.A + t*(target.A-m.A),
		B: m.B + t*(target.B-m.B),
		C: m.C + t*(target.C-m.C),
		D: m.D + t*(target.D-m.D),
	}
}

// IsValid reports whether all entries are finite.
func (m Mat) IsValid() bool {
	for _, v := range [4]float64{m.A, m.B, m.C, m.D} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
