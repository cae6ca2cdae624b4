package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/wavebeat/internal/animate"
)

// Snapshot renders a single frame as two asciigraph panels sharing one
// y range.
func Snapshot(f animate.Frame, width, height int) string {
	lo, hi := panelRange(f)
	opts := func(caption string) []asciigraph.Option {
		return []asciigraph.Option{
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.LowerBound(lo),
			asciigraph.UpperBound(hi),
			asciigraph.Precision(2),
			asciigraph.Caption(caption),
		}
	}

	var b strings.Builder
	b.WriteString(f.Title + "\n\n")
	if len(f.Re) == 0 {
		b.WriteString("(no samples)\n")
		return b.String()
	}
	b.WriteString(asciigraph.Plot(f.Re, opts(fmt.Sprintf("Re[psi(x,t)]  t=%g", f.Time))...))
	b.WriteString("\n\n")
	b.WriteString(asciigraph.Plot(f.Im, opts(fmt.Sprintf("Im[psi(x,t)]  t=%g", f.Time))...))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("x: %.4g .. %.4g (%d points)\n", f.X[0], f.X[len(f.X)-1], len(f.X)))
	return b.String()
}
