package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/wavebeat/internal/quantum"
)

func TestMeasuredEnvelope(t *testing.T) {
	p := quantum.DefaultParams()
	grid, err := quantum.NewGrid(p, 1000, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	x := grid.Positions()

	for _, tm := range []float64{0, 13, 250} {
		got, ok := MeasuredEnvelope(x, quantum.NewSampler(p).Psi(x, tm))
		if !ok {
			t.Fatalf("t=%v: expected envelope minima", tm)
		}
		want := grid.Scales().EnvelopeWavelength
		if math.Abs(got-want) > 2*grid.Spacing() {
			t.Errorf("t=%v: expected envelope ~%v, got %v", tm, want, got)
		}
	}
}

func TestMeasuredEnvelopeSingleEigenstate(t *testing.T) {
	p := quantum.Params{P: 1, Dp: 0.1, Hbar: 1, M: 1, A: 1, B: 0}
	x := quantum.Linspace(0, 100, 500)
	if _, ok := MeasuredEnvelope(x, quantum.NewSampler(p).Psi(x, 3)); ok {
		t.Error("a single eigenstate has no envelope")
	}
}

func TestMeasuredEnvelopeSingleEigenstateOnDefaultGrid(t *testing.T) {
	p := quantum.DefaultParams()
	p.B = 0
	grid, err := quantum.NewGrid(p, 1000, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	x := grid.Positions()

	for _, tm := range []float64{0, 42, 999} {
		psi := quantum.NewSampler(p).Psi(x, tm)
		if idx := EnvelopeMinima(psi); len(idx) != 0 {
			t.Errorf("t=%v: expected no minima on a flat modulus, got %d", tm, len(idx))
		}
		if w, ok := MeasuredEnvelope(x, psi); ok {
			t.Errorf("t=%v: expected no envelope, got wavelength %v", tm, w)
		}
	}
}

func TestEnvelopeMinimaIgnoresRoundingNoise(t *testing.T) {
	psi := []complex128{1, 1 - 1e-15, 1, 1 - 2e-16, 1, 1}
	if idx := EnvelopeMinima(psi); len(idx) != 0 {
		t.Errorf("expected noise to be ignored, got %v", idx)
	}
}

func TestEnvelopeMinima(t *testing.T) {
	psi := []complex128{3, 1, 2, 2, 0.5, 0.5, 4}
	got := EnvelopeMinima(psi)
	want := []int{1, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}
