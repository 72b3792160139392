package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Dark       bool
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Panel      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
}

// Available themes
var (
	ThemeDark = Theme{
		Name:       "dark",
		Dark:       true,
		Primary:    lipgloss.Color("#c084fc"), // violet
		Secondary:  lipgloss.Color("#818cf8"),
		Accent:     lipgloss.Color("#f472b6"),
		Background: lipgloss.Color("#111827"),
		Panel:      lipgloss.Color("#1f2937"),
		Text:       lipgloss.Color("#f3f4f6"),
		Muted:      lipgloss.Color("#9ca3af"),
		Border:     lipgloss.Color("#6b21a8"),
	}

	ThemeLight = Theme{
		Name:       "light",
		Dark:       false,
		Primary:    lipgloss.Color("#7e22ce"),
		Secondary:  lipgloss.Color("#4f46e5"),
		Accent:     lipgloss.Color("#db2777"),
		Background: lipgloss.Color("#f9fafb"),
		Panel:      lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#6b7280"),
		Border:     lipgloss.Color("#d8b4fe"),
	}
)

// GetTheme returns a theme by name; "auto" asks the terminal.
func GetTheme(name string) Theme {
	switch name {
	case "dark":
		return ThemeDark
	case "light":
		return ThemeLight
	}
	return ThemeFor(lipgloss.HasDarkBackground())
}

func ThemeFor(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// InkRamp returns n styles whose foreground runs from faint (ink barely
// mixed into the background) to full ink.
func (t Theme) InkRamp(ink color.RGBA, n int) []lipgloss.Style {
	bg, err := colorful.Hex(string(t.Background))
	if err != nil {
		bg = colorful.Color{}
	}
	fg, _ := colorful.MakeColor(ink)

	ramp := make([]lipgloss.Style, n)
	for i := range ramp {
		// keep the faintest step visible against the background
		mix := 0.25 + 0.75*float64(i+1)/float64(n)
		ramp[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(bg.BlendRgb(fg, mix).Clamped().Hex()))
	}
	return ramp
}
