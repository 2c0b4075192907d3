package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fraudsim/internal/render"
)

// styles is the per-theme style set; rebuilt whenever the theme changes.
type styles struct {
	title       lipgloss.Style
	subtitle    lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	panel       lipgloss.Style
	card        lipgloss.Style
	cardFocus   lipgloss.Style
	cardTitle   lipgloss.Style
	button      lipgloss.Style
	buttonBusy  lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	text        lipgloss.Style
	muted       lipgloss.Style
	success     lipgloss.Style
	warning     lipgloss.Style
	danger      lipgloss.Style
	accent      lipgloss.Style
	log         lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		subtitle:    lipgloss.NewStyle().Foreground(t.Muted),
		tabActive:   lipgloss.NewStyle().Bold(true).Foreground(t.Background).Background(t.Primary).Padding(0, 2),
		tabInactive: lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 2),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		cardFocus: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(t.Secondary).
			Padding(0, 1),
		cardTitle:  lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		button:     lipgloss.NewStyle().Bold(true).Foreground(t.Text).Background(lipgloss.Color("#1f2937")).Padding(0, 1),
		buttonBusy: lipgloss.NewStyle().Foreground(t.Muted).Background(lipgloss.Color("#374151")).Padding(0, 1),
		label:      lipgloss.NewStyle().Foreground(t.Muted),
		value:      lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		text:       lipgloss.NewStyle().Foreground(t.Text),
		muted:      lipgloss.NewStyle().Foreground(t.Muted),
		success:    lipgloss.NewStyle().Foreground(t.Success),
		warning:    lipgloss.NewStyle().Foreground(t.Warning),
		danger:     lipgloss.NewStyle().Foreground(t.Error),
		accent:     lipgloss.NewStyle().Foreground(t.Accent),
		log:        lipgloss.NewStyle().Foreground(t.Success),
	}
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var result strings.Builder
	n := len(runes)

	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		color := lipgloss.Color(render.Lerp(string(startColor), string(endColor), t))
		result.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(c)))
	}

	return result.String()
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%len(spinners)]
}

// SparklineChart renders a mini sparkline from values
func SparklineChart(values []float64, width int, st styles) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		v := values[i*step]
		norm := (v - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}

		c := chars[idx]
		if norm > 0.7 {
			result.WriteString(st.danger.Render(string(c)))
		} else if norm > 0.3 {
			result.WriteString(st.warning.Render(string(c)))
		} else {
			result.WriteString(st.success.Render(string(c)))
		}
	}

	return result.String()
}

// HorizontalBar renders value in [0,max] as a filled bar of width cells.
func HorizontalBar(value, max float64, width int, style lipgloss.Style) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return style.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

// Separator renders a decorative rule.
func Separator(width int, st styles) string {
	if width <= 0 {
		return ""
	}
	if width < 8 {
		return st.muted.Render(strings.Repeat("─", width))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return st.muted.Render(left + " ◆ " + right)
}
