package quantum

import "math/cmplx"

// Sampler evaluates the two-eigenstate wavefunction for fixed Params.
// It holds no state besides its copy of the parameters, so a Sampler can
// be shared freely.
type Sampler struct {
	params Params
}

func NewSampler(p Params) *Sampler {
	return &Sampler{params: p}
}

func (s *Sampler) Params() Params { return s.params }

// Psi returns psi(x_i, t) for every position in x. The input is not modified.
func (s *Sampler) Psi(x []float64, t float64) []complex128 {
	out := make([]complex128, len(x))
	s.PsiInto(out, x, t)
	return out
}

// PsiInto writes psi(x_i, t) into dst, which must be at least as long as x.
func (s *Sampler) PsiInto(dst []complex128, x []float64, t float64) {
	p := s.params
	q := p.P + p.Dp

	// time phases are shared by every grid point
	a := p.A * cmplx.Exp(complex(0, -1/p.Hbar*(p.P*p.P/2/p.M)*t))
	b := p.B * cmplx.Exp(complex(0, -1/p.Hbar*(q*q/2/p.M)*t))
	k1, k2 := p.Wavenumbers()

	dst = dst[:len(x)]
	for i, xi := range x {
		dst[i] = a*cmplx.Exp(complex(0, k1*xi)) + b*cmplx.Exp(complex(0, k2*xi))
	}
}

// At evaluates psi at a single position.
func (s *Sampler) At(x, t float64) complex128 {
	var out [1]complex128
	s.PsiInto(out[:], []float64{x}, t)
	return out[0]
}

// Split returns the real and imaginary parts of psi as separate slices.
func Split(psi []complex128) (re, im []float64) {
	re = make([]float64, len(psi))
	im = make([]float64, len(psi))
	for i, v := range psi {
		re[i], im[i] = real(v), imag(v)
	}
	return re, im
}

// Modulus returns |psi| elementwise.
func Modulus(psi []complex128) []float64 {
	out := make([]float64, len(psi))
	for i, v := range psi {
		out[i] = cmplx.Abs(v)
	}
	return out
}
