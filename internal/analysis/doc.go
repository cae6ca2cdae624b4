// Package analysis inspects sampled wavefunctions: the spatial spectrum
// (two peaks at p/hbar^2 and (p+dp)/hbar^2) and the measured beat
// envelope.
package analysis
