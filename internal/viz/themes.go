package viz

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Theme defines the colors of the two panels and the surrounding chrome.
type Theme struct {
	Name   string
	Real   lipgloss.Color
	Imag   lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemePhosphor = Theme{
		Name:   "phosphor",
		Real:   lipgloss.Color("#00ff88"),
		Imag:   lipgloss.Color("#88ff00"),
		Accent: lipgloss.Color("#ccffcc"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Real:   lipgloss.Color("#00a8cc"),
		Imag:   lipgloss.Color("#ffd700"),
		Accent: lipgloss.Color("#0077be"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Real:   lipgloss.Color("#ff6b6b"),
		Imag:   lipgloss.Color("#feca57"),
		Accent: lipgloss.Color("#ff9ff3"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
	}

	// ThemeMatplotlib mimics the default blue line color of a pyplot figure.
	ThemeMatplotlib = Theme{
		Name:   "matplotlib",
		Real:   lipgloss.Color("#1f77b4"),
		Imag:   lipgloss.Color("#1f77b4"),
		Accent: lipgloss.Color("#ffffff"),
		Text:   lipgloss.Color("#dddddd"),
		Muted:  lipgloss.Color("#777777"),
	}

	CurrentTheme = ThemeOcean

	Themes = []Theme{
		ThemeOcean,
		ThemePhosphor,
		ThemeSunset,
		ThemeMatplotlib,
	}
)

// GetTheme returns a theme by name, falling back to ocean.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeOcean
}

// SetTheme switches to the named theme. Unknown names leave the current
// theme in place.
func SetTheme(name string) error {
	for _, t := range Themes {
		if t.Name == name {
			CurrentTheme = t
			return nil
		}
	}
	return fmt.Errorf("%w: %q (available: %v)", ErrUnknownTheme, name, ThemeNames())
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
