package quantum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultEnvelopeMultiple is the number of envelope wavelengths spanned by a grid.
const DefaultEnvelopeMultiple = 2.5

// Scales are the characteristic lengths of the superposition.
type Scales struct {
	CarrierWavelength  float64
	EnvelopeWavelength float64
	XMax               float64
}

// NewScales derives the wavelengths from p and sets XMax to multiple
// envelope wavelengths.
func NewScales(p Params, multiple float64) Scales {
	carrier := 2 * math.Pi / (p.P / p.Hbar)
	envelope := 2 * math.Pi / (p.Dp / p.Hbar)
	return Scales{
		CarrierWavelength:  carrier,
		EnvelopeWavelength: envelope,
		XMax:               envelope * multiple,
	}
}

// BeatPeriod is the time period of the interference between the two
// eigenstates, 2*pi/|omega2-omega1|.
func BeatPeriod(p Params) float64 {
	w1, w2 := p.Omega()
	return 2 * math.Pi / math.Abs(w2-w1)
}

// Grid is an immutable set of evenly spaced positions from 0 to XMax.
type Grid struct {
	x      []float64
	scales Scales
}

// NewGrid builds n positions spanning multiple envelope wavelengths,
// both endpoints included. The extent must be positive and finite, which
// rules out dp = 0, a negative dp and a non-positive multiple.
func NewGrid(p Params, n int, multiple float64) (*Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGridSize, n)
	}
	sc := NewScales(p, multiple)
	if !(sc.XMax > 0) || math.IsInf(sc.XMax, 0) {
		return nil, fmt.Errorf("%w: xmax=%v (dp=%v, multiple=%v)", ErrDegenerateEnvelope, sc.XMax, p.Dp, multiple)
	}
	return &Grid{x: Linspace(0, sc.XMax, n), scales: sc}, nil
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace(start, end float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, end)
}

// Positions returns a copy of the grid positions.
func (g *Grid) Positions() []float64 {
	out := make([]float64, len(g.x))
	copy(out, g.x)
	return out
}

func (g *Grid) Len() int         { return len(g.x) }
func (g *Grid) XMax() float64    { return g.scales.XMax }
func (g *Grid) Scales() Scales   { return g.scales }
func (g *Grid) Spacing() float64 { return g.scales.XMax / float64(len(g.x)-1) }
