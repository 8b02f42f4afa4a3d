package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Styles derived from a theme.
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Panel    lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Value    lipgloss.Style
	Bar      lipgloss.Style
	BarEmpty lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Subtle: lipgloss.NewStyle().Foreground(t.Muted),
		// Glass panel effect with subtle border
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Label:    lipgloss.NewStyle().Foreground(t.Text),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Value:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Bar:      lipgloss.NewStyle().Foreground(t.Secondary),
		BarEmpty: lipgloss.NewStyle().Foreground(t.Border),
	}
}

// GradientText blends each rune from start to end in HCL space.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	from, err1 := colorful.Hex(string(start))
	to, err2 := colorful.Hex(string(end))
	if err1 != nil || err2 != nil {
		return lipgloss.NewStyle().Bold(true).Render(text)
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := from.BlendHcl(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// SliderBar renders the position of fraction in [0, 1] on a track.
func (s Styles) SliderBar(fraction float64, width int) string {
	if width < 1 {
		return ""
	}
	pos := int(fraction*float64(width-1) + 0.5)
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}
	return s.Bar.Render(strings.Repeat("━", pos)) +
		s.Value.Render("●") +
		s.BarEmpty.Render(strings.Repeat("─", width-1-pos))
}

// Sparkline renders values in [0, 1] with block characters and highlights
// the sample at index mark.
func (s Styles) Sparkline(values []float64, mark int) string {
	if len(values) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder
	for i, v := range values {
		idx := int(v * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		c := string(chars[idx])
		if i == mark {
			b.WriteString(s.Value.Render(c))
		} else {
			b.WriteString(s.Bar.Render(c))
		}
	}
	return b.String()
}

// Separator is a decorative divider.
func (s Styles) Separator(width int) string {
	if width < 7 {
		return s.Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Subtle.Render(left + " ◆ " + right)
}
