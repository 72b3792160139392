package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type styles struct {
	navItem  lipgloss.Style
	navOn    lipgloss.Style
	navHover lipgloss.Style
	title    lipgloss.Style
	subtitle lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	card     lipgloss.Style
	tag      lipgloss.Style
	chip     lipgloss.Style
	chipOn   lipgloss.Style
	link     lipgloss.Style
	help     lipgloss.Style
	status   lipgloss.Style
}

func newStyles(th Theme) styles {
	return styles{
		navItem:  lipgloss.NewStyle().Foreground(th.Muted).Padding(0, 1),
		navOn:    lipgloss.NewStyle().Foreground(th.Primary).Bold(true).Underline(true).Padding(0, 1),
		navHover: lipgloss.NewStyle().Foreground(th.Text).Padding(0, 1),
		title:    lipgloss.NewStyle().Foreground(th.Primary).Bold(true).MarginBottom(1),
		subtitle: lipgloss.NewStyle().Foreground(th.Secondary).Bold(true),
		text:     lipgloss.NewStyle().Foreground(th.Text),
		muted:    lipgloss.NewStyle().Foreground(th.Muted),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Border).
			Padding(0, 1),
		tag:    lipgloss.NewStyle().Foreground(th.Accent),
		chip:   lipgloss.NewStyle().Foreground(th.Muted).Padding(0, 1),
		chipOn: lipgloss.NewStyle().Foreground(th.Panel).Background(th.Primary).Bold(true).Padding(0, 1),
		link:   lipgloss.NewStyle().Foreground(th.Secondary).Underline(true),
		help:   lipgloss.NewStyle().Foreground(th.Muted).Italic(true),
		status: lipgloss.NewStyle().Foreground(th.Accent),
	}
}

// GradientText colours each rune of text along a blend from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	a, errA := colorful.Hex(string(start))
	b, errB := colorful.Hex(string(end))
	if errA != nil || errB != nil {
		return lipgloss.NewStyle().Foreground(start).Render(text)
	}

	var result strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
		result.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(string(r)))
	}
	return result.String()
}

// SparklineChart renders a mini sparkline from values
func SparklineChart(values []float64, width int, style lipgloss.Style) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	// keep the most recent samples when there are more than fit
	if len(values) > width {
		values = values[len(values)-width:]
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / rng * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))
		b.WriteRune(chars[idx])
	}
	return style.Render(b.String())
}

// Separator renders a decorative rule.
func Separator(width int, style lipgloss.Style) string {
	if width < 8 {
		return style.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-1)
	right := strings.Repeat("─", width-mid-2)
	return style.Render(left + " ◆ " + right)
}
