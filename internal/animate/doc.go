// Package animate drives the frame loop of the wave-packet animation.
//
// A [Driver] steps through floor(tmax/dt) frames. For each step it
// samples the wavefunction on the grid, splits it into real and
// imaginary parts and hands the [Frame] to a [Renderer]. It then waits
// for the next tick and, if the renderer implements [Clearer], clears
// it before the following frame:
//
//	d := animate.New(sampler, grid, animate.Options{TMax: 100, Dt: 0.1, Interval: 50 * time.Millisecond})
//	err := d.Run(ctx, renderer)
//
// The loop is sequential. It stops when the steps are exhausted, when
// the renderer fails, or when ctx is canceled.
package animate
