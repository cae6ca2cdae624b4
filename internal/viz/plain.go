package viz

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/wavebeat/internal/animate"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer draws frames with raw ANSI escapes, without taking over
// the terminal the way the bubbletea Model does. It implements
// animate.Renderer and animate.Clearer.
type LiveRenderer struct {
	out    io.Writer
	re, im *Canvas
	steps  int
	opened bool
}

func NewLiveRenderer(out io.Writer, width, height, steps int) *LiveRenderer {
	return &LiveRenderer{
		out:   out,
		re:    NewCanvas(width, height),
		im:    NewCanvas(width, height),
		steps: steps,
	}
}

func (r *LiveRenderer) Render(_ context.Context, f animate.Frame) error {
	if !r.opened {
		if _, err := io.WriteString(r.out, hideCursor+clearScreen); err != nil {
			return err
		}
		r.opened = true
	}

	lo, hi := panelRange(f)
	for _, p := range []struct {
		c  *Canvas
		ys []float64
	}{{r.re, f.Re}, {r.im, f.Im}} {
		p.c.Clear()
		p.c.DashedHLine(p.c.RowOf(0, lo, hi))
		p.c.Plot(p.ys, lo, hi)
	}

	var b strings.Builder
	b.WriteString(f.Title + "\n\n")
	b.WriteString("Re[psi(x,t)]\n" + r.re.String() + "\n\n")
	b.WriteString("Im[psi(x,t)]\n" + r.im.String() + "\n")
	xmax := 0.0
	if n := len(f.X); n > 0 {
		xmax = f.X[n-1]
	}
	b.WriteString(fmt.Sprintf("x: 0 .. %.4g\n", xmax))
	b.WriteString(fmt.Sprintf("step %d/%d  t=%.3f  range ±%.3g\n", f.Step+1, r.steps, f.Time, hi))

	_, err := io.WriteString(r.out, b.String())
	return err
}

// Clear wipes the screen before the next frame.
func (r *LiveRenderer) Clear() error {
	_, err := io.WriteString(r.out, clearScreen)
	return err
}

// Close restores the cursor.
func (r *LiveRenderer) Close() error {
	if !r.opened {
		return nil
	}
	_, err := io.WriteString(r.out, showCursor)
	return err
}
