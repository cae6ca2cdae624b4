package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a grid of braille cells. Each cell holds 2x4 sub-pixels, so a
// canvas of Width x Height cells addresses (Width*2) x (Height*4) pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Pixels returns the sub-pixel resolution of the canvas.
func (c *Canvas) Pixels() (int, int) {
	return c.Width * 2, c.Height * 4
}

// Set turns on the sub-pixel (x, y). Out of range pixels are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether sub-pixel (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DashedHLine marks every fourth pixel of row y.
func (c *Canvas) DashedHLine(y int) {
	cw, _ := c.Pixels()
	for x := 0; x < cw; x += 4 {
		c.Set(x, y)
	}
}

// Plot draws ys as a polyline across the full width, mapping the value
// range [lo, hi] onto the full height. Values outside the range are clipped.
func (c *Canvas) Plot(ys []float64, lo, hi float64) {
	if len(ys) == 0 || !(hi > lo) {
		return
	}
	cw, ch := c.Pixels()

	px := func(i int) int {
		if len(ys) == 1 {
			return 0
		}
		return i * (cw - 1) / (len(ys) - 1)
	}
	py := func(v float64) int {
		if math.IsNaN(v) {
			v = (lo + hi) / 2
		}
		v = math.Max(lo, math.Min(hi, v))
		return int(math.Round((hi - v) / (hi - lo) * float64(ch-1)))
	}

	prevX, prevY := px(0), py(ys[0])
	c.Set(prevX, prevY)
	for i := 1; i < len(ys); i++ {
		x, y := px(i), py(ys[i])
		c.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}
}

// RowOf returns the pixel row that value v maps to for the range [lo, hi].
func (c *Canvas) RowOf(v, lo, hi float64) int {
	_, ch := c.Pixels()
	return int(math.Round((hi - v) / (hi - lo) * float64(ch-1)))
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		b.WriteString(string(row))
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
