package plane

import "errors"

// Domain errors for transform operations.
var (
	// ErrSingular indicates a non-invertible matrix where an inverse is required.
	ErrSingular = errors.New("planar: singular transform (determinant is zero)")

	// ErrInvalidDimensions indicates an empty range, empty buffer, or mismatched lengths.
	ErrInvalidDimensions = errors.New("planar: invalid dimensions")

	// ErrStepCount indicates an animation step count below one.
	ErrStepCount = errors.New("planar: step count must be at least 1")
)
