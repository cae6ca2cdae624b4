// Package viz renders animation frames in the terminal.
//
//   - [Model]: bubbletea program with two braille panels (real part on
//     top, imaginary part below) and a |psi|^2 history chart
//   - [LiveRenderer]: plain ANSI renderer for [animate.Driver.Run]
//   - [Snapshot]: a single frame as two asciigraph charts
//   - [Canvas]: braille pixel canvas shared by the renderers
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from the first frame
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
