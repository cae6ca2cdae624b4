package analysis

import (
	"github.com/san-kum/wavebeat/internal/quantum"
	"gonum.org/v1/gonum/floats"
)

// minimumDepth is how far below the peak of |psi| a local minimum must
// lie, relative to that peak, to count as an envelope node. Shallower
// dips are rounding noise on a flat modulus.
const minimumDepth = 1e-9

// EnvelopeMinima returns the indices of interior local minima of |psi|.
// For two equal-amplitude eigenstates these are the nodes of the beat
// envelope. A constant modulus, as for a single eigenstate, has none.
func EnvelopeMinima(psi []complex128) []int {
	if len(psi) < 3 {
		return nil
	}
	mod := quantum.Modulus(psi)
	peak := floats.Max(mod)
	tol := minimumDepth * peak

	var idx []int
	for i := 1; i < len(mod)-1; i++ {
		a, b, c := mod[i-1], mod[i], mod[i+1]
		if b < a && b <= c && peak-b > tol {
			idx = append(idx, i)
		}
	}
	return idx
}

// MeasuredEnvelope estimates the envelope wavelength as the mean distance
// between consecutive minima of |psi|. ok is false with fewer than two minima.
func MeasuredEnvelope(x []float64, psi []complex128) (wavelength float64, ok bool) {
	minima := EnvelopeMinima(psi)
	if len(minima) < 2 {
		return 0, false
	}
	first, last := x[minima[0]], x[minima[len(minima)-1]]
	return (last - first) / float64(len(minima)-1), true
}
