package animate

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/wavebeat/internal/logger"
	"github.com/san-kum/wavebeat/internal/quantum"
	"go.uber.org/zap"
)

// Frame is one rendered time step. X is shared by every frame of a
// Driver and must not be modified.
type Frame struct {
	Step  int
	Time  float64
	X     []float64
	Re    []float64
	Im    []float64
	Title string
	// Bound is the largest possible |psi|, useful as a fixed plot range.
	Bound float64
}

type Renderer interface {
	Render(ctx context.Context, f Frame) error
}

// Clearer is implemented by renderers that need an explicit clear
// between frames.
type Clearer interface {
	Clear() error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, f Frame) error

func (fn RendererFunc) Render(ctx context.Context, f Frame) error { return fn(ctx, f) }

// FrameError reports a renderer failure at a given step.
type FrameError struct {
	Step int
	Err  error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Step, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

type Options struct {
	TMax     float64
	Dt       float64
	Interval time.Duration
	// PhysicalTime passes step*Dt to the sampler instead of the raw step index.
	PhysicalTime bool
	Title        string
}

type Driver struct {
	sampler *quantum.Sampler
	x       []float64
	bound   float64
	opts    Options
}

func New(s *quantum.Sampler, g *quantum.Grid, opts Options) *Driver {
	return &Driver{
		sampler: s,
		x:       g.Positions(),
		bound:   s.Params().MaxModulus(),
		opts:    opts,
	}
}

// MaxSteps caps the frame count so floor(TMax/Dt) always fits in an int.
const MaxSteps = math.MaxInt32

// Steps is the number of frames, floor(TMax/Dt). It is zero when the
// ratio is negative, not a number or above MaxSteps.
func (d *Driver) Steps() int {
	if d.opts.Dt <= 0 {
		return 0
	}
	n := d.opts.TMax / d.opts.Dt
	if !(n >= 0 && n <= MaxSteps) {
		return 0
	}
	return int(n)
}

// TimeAt is the time argument used for step k.
func (d *Driver) TimeAt(k int) float64 {
	if d.opts.PhysicalTime {
		return float64(k) * d.opts.Dt
	}
	return float64(k)
}

func (d *Driver) Interval() time.Duration { return d.opts.Interval }

// Frame computes step k without waiting.
func (d *Driver) Frame(k int) Frame {
	f := d.FrameAt(d.TimeAt(k))
	f.Step = k
	return f
}

// FrameAt computes a frame for an arbitrary time argument.
func (d *Driver) FrameAt(t float64) Frame {
	re, im := quantum.Split(d.sampler.Psi(d.x, t))
	return Frame{
		Time:  t,
		X:     d.x,
		Re:    re,
		Im:    im,
		Title: d.opts.Title,
		Bound: d.bound,
	}
}

// Run renders every step in order, pausing Interval after each frame.
func (d *Driver) Run(ctx context.Context, r Renderer) error {
	steps := d.Steps()
	ctx = logger.WithFields(ctx, zap.Int("steps", steps))
	logger.Debug(ctx, "animation started", zap.Duration("interval", d.opts.Interval), zap.Bool("physical_time", d.opts.PhysicalTime))

	var tick <-chan time.Time
	if d.opts.Interval > 0 {
		ticker := time.NewTicker(d.opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	clearer, _ := r.(Clearer)

	for k := 0; k < steps; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Render(ctx, d.Frame(k)); err != nil {
			return &FrameError{Step: k, Err: err}
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		if clearer != nil {
			if err := clearer.Clear(); err != nil {
				return &FrameError{Step: k, Err: err}
			}
		}
	}

	logger.Debug(ctx, "animation finished")
	return nil
}
