// Package gui draws the two wavefunction panels in a raylib window.
package gui
