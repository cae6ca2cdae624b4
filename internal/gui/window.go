package gui

import (
	"context"
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/wavebeat/internal/animate"
)

// ErrWindowClosed is returned by Render once the user closes the window.
var ErrWindowClosed = errors.New("window closed")

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColReal    = rl.NewColor(31, 119, 180, 255)
	ColImag    = rl.NewColor(255, 127, 14, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
)

const (
	margin     = 60
	titleSize  = 20
	labelSize  = 16
	footerSize = 14
)

// Window is an animate.Renderer backed by a raylib window.
// Space toggles pause while a frame is shown.
type Window struct {
	width  int32
	height int32
	paused bool
}

// Open creates the window. Only one Window may be open at a time and it
// must be used from the goroutine that opened it.
func Open(width, height int, title string) *Window {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
	return &Window{width: int32(width), height: int32(height)}
}

func (w *Window) Render(ctx context.Context, f animate.Frame) error {
	for {
		if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ) {
			return ErrWindowClosed
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			w.paused = !w.paused
		}
		w.draw(f)
		if !w.paused {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

func (w *Window) draw(f animate.Frame) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(ColBg)

	rl.DrawText(f.Title, margin, 20, titleSize, ColText)

	top := int32(margin)
	panelH := (w.height - 2*margin - 40) / 2
	panelW := w.width - 2*margin
	lo, hi := -f.Bound, f.Bound
	if f.Bound == 0 {
		lo, hi = -1, 1
	}

	w.drawPanel("Re[psi(x,t)]", f.Re, top, panelW, panelH, lo, hi, ColReal)
	w.drawPanel("Im[psi(x,t)]", f.Im, top+panelH+40, panelW, panelH, lo, hi, ColImag)

	status := fmt.Sprintf("step %d   t = %.3g", f.Step, f.Time)
	if w.paused {
		status += "   PAUSED"
	}
	rl.DrawText(status, margin, w.height-30, footerSize, ColTextDim)
	if len(f.X) > 0 {
		xr := fmt.Sprintf("x: %.4g .. %.4g", f.X[0], f.X[len(f.X)-1])
		rl.DrawText(xr, w.width-margin-rl.MeasureText(xr, footerSize), w.height-30, footerSize, ColTextDim)
	}
}

func (w *Window) drawPanel(label string, ys []float64, top, width, height int32, lo, hi float64, col rl.Color) {
	rl.DrawRectangleLines(margin, top, width, height, ColGrid)
	mid := float32(top) + float32(height)/2
	rl.DrawLineV(rl.NewVector2(margin, mid), rl.NewVector2(float32(margin+width), mid), ColGrid)
	rl.DrawText(label, margin+8, top+6, labelSize, col)

	if len(ys) < 2 {
		return
	}
	points := make([]rl.Vector2, len(ys))
	for i, v := range ys {
		px := float32(margin) + float32(i)/float32(len(ys)-1)*float32(width)
		norm := (v - lo) / (hi - lo)
		py := float32(top+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, col)
}
