package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Params holds the physical constants of the two-state superposition.
// Dp is expected to be much smaller than P in magnitude; this is not enforced.
type Params struct {
	P    float64
	Dp   float64
	Hbar float64
	M    float64
	A, B complex128
}

// DefaultParams returns p = 1, dp = 0.1 p, hbar = m = 1 and unit amplitudes.
func DefaultParams() Params {
	return Params{P: 1, Dp: 0.1, Hbar: 1, M: 1, A: 1, B: 1}
}

// Validate rejects constants that would divide by zero or are not finite.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"p", p.P}, {"dp", p.Dp}, {"hbar", p.Hbar}, {"m", p.M}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s=%v is not finite", ErrInvalidParams, f.name, f.v)
		}
	}
	switch {
	case p.Hbar == 0:
		return fmt.Errorf("%w: hbar must be nonzero", ErrInvalidParams)
	case p.M == 0:
		return fmt.Errorf("%w: m must be nonzero", ErrInvalidParams)
	case p.P == 0:
		return fmt.Errorf("%w: p must be nonzero", ErrInvalidParams)
	}
	if cmplx.IsNaN(p.A) || cmplx.IsInf(p.A) || cmplx.IsNaN(p.B) || cmplx.IsInf(p.B) {
		return fmt.Errorf("%w: amplitudes must be finite", ErrInvalidParams)
	}
	return nil
}

// Scaled returns a copy with both amplitudes multiplied by k.
func (p Params) Scaled(k complex128) Params {
	p.A *= k
	p.B *= k
	return p
}

// MaxModulus is the largest value |psi| can reach, |A| + |B|.
func (p Params) MaxModulus() float64 {
	return cmplx.Abs(p.A) + cmplx.Abs(p.B)
}

// Omega returns the angular frequencies (p^2/2m)/hbar and ((p+dp)^2/2m)/hbar.
func (p Params) Omega() (float64, float64) {
	q := p.P + p.Dp
	return (p.P * p.P / 2 / p.M) / p.Hbar, (q * q / 2 / p.M) / p.Hbar
}

// Wavenumbers returns the spatial frequencies p/hbar^2 and (p+dp)/hbar^2
// appearing in the position exponent.
func (p Params) Wavenumbers() (float64, float64) {
	return 1 / p.Hbar * (p.P / p.Hbar), 1 / p.Hbar * ((p.P + p.Dp) / p.Hbar)
}
