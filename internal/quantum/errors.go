package quantum

import "errors"

// Domain errors for parameter and grid construction.
var (
	// ErrInvalidParams indicates a zero or non-finite physical constant.
	ErrInvalidParams = errors.New("quantum: invalid physical parameters")

	// ErrDegenerateEnvelope indicates the envelope wavelength cannot bound a grid (dp = 0).
	ErrDegenerateEnvelope = errors.New("quantum: envelope wavelength is not finite")

	// ErrGridSize indicates a grid with fewer than two points.
	ErrGridSize = errors.New("quantum: grid needs at least two points")
)
