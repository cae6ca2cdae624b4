package quantum

import (
	"math"
	"math/cmplx"
	"testing"
)

func closeTo(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}

func TestPsiSingleEigenstate(t *testing.T) {
	p := Params{P: 1.7, Dp: 0.2, Hbar: 0.9, M: 2.5, A: 1, B: 0}
	s := NewSampler(p)
	x := Linspace(-20, 40, 101)

	for _, tm := range []float64{-3.5, 0, 1, 12.25} {
		psi := s.Psi(x, tm)
		for i, xi := range x {
			want := cmplx.Exp(complex(0, -1/p.Hbar*(p.P*p.P/2/p.M)*tm)) *
				cmplx.Exp(complex(0, 1/p.Hbar*(p.P/p.Hbar)*xi))
			if !closeTo(psi[i], want, 1e-12) {
				t.Fatalf("t=%v x=%v: got %v, want %v", tm, xi, psi[i], want)
			}
		}
	}
}

func TestPsiInitialPhase(t *testing.T) {
	p := Params{P: 2, Dp: 0.15, Hbar: 1.3, M: 0.7, A: complex(0.5, 0.25), B: complex(-1, 2)}
	s := NewSampler(p)
	x := Linspace(0, 30, 64)
	psi := s.Psi(x, 0)

	for i, xi := range x {
		want := p.A*cmplx.Exp(complex(0, p.P/(p.Hbar*p.Hbar)*xi)) +
			p.B*cmplx.Exp(complex(0, (p.P+p.Dp)/(p.Hbar*p.Hbar)*xi))
		if !closeTo(psi[i], want, 1e-12) {
			t.Errorf("x=%v: got %v, want %v", xi, psi[i], want)
		}
	}
}

func TestPsiCarrierPeriodicity(t *testing.T) {
	p := Params{P: 1.3, Dp: 0, Hbar: 1, M: 1, A: complex(0.6, 0.8), B: 0.4}
	s := NewSampler(p)
	lambda := NewScales(p, 1).CarrierWavelength

	x := Linspace(0, 25, 50)
	shifted := make([]float64, len(x))
	for i := range x {
		shifted[i] = x[i] + lambda
	}

	for _, tm := range []float64{0, 3, 17} {
		a, b := s.Psi(x, tm), s.Psi(shifted, tm)
		for i := range a {
			if !closeTo(a[i], b[i], 1e-9) {
				t.Fatalf("t=%v x=%v: psi(x)=%v psi(x+lambda)=%v", tm, x[i], a[i], b[i])
			}
		}
	}
}

func TestPsiBeatBreaksCarrierPeriodicity(t *testing.T) {
	p := DefaultParams()
	s := NewSampler(p)
	lambda := NewScales(p, 1).CarrierWavelength

	x := Linspace(0, 50, 200)
	maxDiff := 0.0
	for _, xi := range x {
		maxDiff = math.Max(maxDiff, cmplx.Abs(s.At(xi, 0)-s.At(xi+lambda, 0)))
	}
	if maxDiff < 1e-3 {
		t.Errorf("expected carrier shift to change psi, max diff %v", maxDiff)
	}
}

func TestPsiDeterministic(t *testing.T) {
	s := NewSampler(Params{P: 1, Dp: 0.1, Hbar: 1, M: 1, A: complex(1, -0.5), B: 1})
	x := Linspace(0, 157, 333)

	a, b := s.Psi(x, 42), s.Psi(x, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestPsiLinearInAmplitudes(t *testing.T) {
	p := Params{P: 1, Dp: 0.1, Hbar: 1, M: 1, A: complex(1, 0.3), B: complex(-0.2, 1)}
	x := Linspace(0, 100, 80)

	for _, k := range []complex128{2, -0.5, complex(3, -4), 0} {
		base := NewSampler(p).Psi(x, 7.5)
		scaled := NewSampler(p.Scaled(k)).Psi(x, 7.5)
		for i := range base {
			if !closeTo(scaled[i], k*base[i], 1e-12*(1+cmplx.Abs(k))) {
				t.Fatalf("k=%v x=%v: got %v, want %v", k, x[i], scaled[i], k*base[i])
			}
		}
	}
}

func TestPsiDoesNotMutateInput(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	NewSampler(DefaultParams()).Psi(x, 5)
	for i, want := range []float64{0, 1, 2, 3} {
		if x[i] != want {
			t.Errorf("x[%d] changed to %v", i, x[i])
		}
	}
}

func TestPsiEmptyInput(t *testing.T) {
	if psi := NewSampler(DefaultParams()).Psi(nil, 1); len(psi) != 0 {
		t.Errorf("expected empty result, got %d values", len(psi))
	}
}

func TestPsiEndToEnd(t *testing.T) {
	p := Params{P: 1, Dp: 0.1, Hbar: 1, M: 1, A: 1, B: 1}
	grid, err := NewGrid(p, 5, DefaultEnvelopeMultiple)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if math.Abs(grid.XMax()-157.08) > 0.01 {
		t.Fatalf("expected xmax ~157.08, got %v", grid.XMax())
	}

	x := grid.Positions()
	psi := NewSampler(p).Psi(x, 0)
	if len(psi) != 5 {
		t.Fatalf("expected 5 values, got %d", len(psi))
	}
	for i, xk := range x {
		want := cmplx.Exp(complex(0, xk)) + cmplx.Exp(complex(0, 1.1*xk))
		if !closeTo(psi[i], want, 1e-9) {
			t.Errorf("x=%v: got %v, want %v", xk, psi[i], want)
		}
	}
}

func TestSplit(t *testing.T) {
	re, im := Split([]complex128{complex(1, 2), complex(-3, 0.5)})
	if re[0] != 1 || re[1] != -3 || im[0] != 2 || im[1] != 0.5 {
		t.Errorf("unexpected split: re=%v im=%v", re, im)
	}
}

func TestModulusBoundedByAmplitudes(t *testing.T) {
	p := Params{P: 1, Dp: 0.1, Hbar: 1, M: 1, A: complex(0, 2), B: 0.5}
	mod := Modulus(NewSampler(p).Psi(Linspace(0, 200, 500), 9))
	for i, v := range mod {
		if v > p.MaxModulus()+1e-12 {
			t.Fatalf("index %d: |psi|=%v exceeds %v", i, v, p.MaxModulus())
		}
	}
}
