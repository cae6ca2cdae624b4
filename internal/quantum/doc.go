// Package quantum evaluates a superposition of two momentum eigenstates
// on a one-dimensional position grid.
//
// The wavefunction is the closed form
//
//	psi(x,t) = A exp(-i/hbar (p^2/2m) t) exp(i/hbar (p/hbar) x)
//	         + B exp(-i/hbar ((p+dp)^2/2m) t) exp(i/hbar ((p+dp)/hbar) x)
//
// and needs no integrator: every time step is evaluated independently.
//
//   - [Params]: immutable physical constants
//   - [Sampler]: pure evaluation of psi over a position slice
//   - [Scales]: carrier/envelope wavelengths and the spatial extent
//   - [Grid]: evenly spaced positions from 0 to the spatial extent
//
// # Beating
//
// Two waves with close wavenumbers produce a slow envelope whose period
// is the envelope wavelength 2*pi*hbar/dp:
//
//	p := quantum.Params{P: 1, Dp: 0.1, Hbar: 1, M: 1, A: 1, B: 1}
//	grid, _ := quantum.NewGrid(p, 1000, 2.5)
//	psi := quantum.NewSampler(p).Psi(grid.Positions(), 0)
package quantum
