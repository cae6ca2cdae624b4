package analysis

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
)

// Bin is one spatial-frequency component of a sampled wavefunction.
type Bin struct {
	Wavenumber float64
	Magnitude  float64
}

// Spectrum transforms psi, sampled with spacing dx, into wavenumber space.
// Magnitudes are normalized by the sample count so a unit plane wave that
// fits the window exactly has magnitude 1.
func Spectrum(psi []complex128, dx float64) []Bin {
	n := len(psi)
	if n == 0 || dx == 0 {
		return nil
	}
	coeffs := fft.FFT(psi)
	bins := make([]Bin, n)
	for j, c := range coeffs {
		f := j
		if j > n/2 {
			f = j - n
		}
		bins[j] = Bin{
			Wavenumber: 2 * math.Pi * float64(f) / (float64(n) * dx),
			Magnitude:  cmplx.Abs(c) / float64(n),
		}
	}
	return bins
}

// Peaks returns the n strongest bins ordered by wavenumber. A negative n
// yields no bins.
func Peaks(bins []Bin, n int) []Bin {
	sorted := make([]Bin, len(bins))
	copy(sorted, bins)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Magnitude > sorted[j].Magnitude
	})
	switch {
	case n < 0:
		n = 0
	case n > len(sorted):
		n = len(sorted)
	}
	peaks := sorted[:n]
	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].Wavenumber < peaks[j].Wavenumber
	})
	return peaks
}

// Resolution is the wavenumber spacing between adjacent bins.
func Resolution(n int, dx float64) float64 {
	return 2 * math.Pi / (float64(n) * dx)
}
