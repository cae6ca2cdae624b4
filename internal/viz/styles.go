package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	statsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(40)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	statusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	statusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	statusDone    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#888899"))
)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Accent).MarginBottom(1)
}

func axisStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
}

// panel renders a canvas with its y label above it in the given color.
func panel(label string, c *Canvas, color lipgloss.Color) string {
	body := panelStyle.BorderForeground(CurrentTheme.Muted).Foreground(color).Render(c.String())
	return lipgloss.JoinVertical(lipgloss.Left, axisStyle().Render(label), body)
}

// xAxis renders "x" with the range end labels under a panel of the given width.
func xAxis(width int, xmin, xmax float64) string {
	left := fmt.Sprintf("%.4g", xmin)
	right := fmt.Sprintf("%.4g", xmax)
	mid := "x"
	gap := width - len(left) - len(right) - len(mid)
	if gap < 2 {
		gap = 2
	}
	pad := strings.Repeat(" ", gap/2)
	return axisStyle().Render(left + pad + mid + pad + strings.Repeat(" ", gap%2) + right)
}
