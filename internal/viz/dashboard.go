package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/san-kum/fraudsim/internal/analytics"
)

const statCardWidth = 24

var printer = message.NewPrinter(language.English)

// riskColor colors the heatmap: red high, yellow suspicious, green safe.
func (t Theme) riskColor(level analytics.RiskLevel) lipgloss.Color {
	switch level {
	case analytics.RiskCritical:
		return t.Error
	case analytics.RiskHigh:
		return t.Warning
	case analytics.RiskModerate:
		return t.Success
	default:
		return t.Muted
	}
}

// FormatCount renders n with thousands separators.
func FormatCount(n int) string { return printer.Sprintf("%d", n) }

func (a App) viewDashboard() string {
	s := a.snapshot
	cards := []string{
		a.statCard("Total Transactions", FormatCount(s.TotalTx), a.st.value),
		a.statCard("Fraudulent Cases", FormatCount(s.FraudTx), a.st.danger.Bold(true)),
		a.statCard("Detection Accuracy", fmt.Sprintf("%.1f%%", s.Accuracy()), a.st.success.Bold(true)),
		a.statCard("Avg. Latency", strconv.FormatFloat(s.AvgLatency, 'f', -1, 64)+" ms", a.st.accent.Bold(true)),
	}

	subtitle := "Live aggregate counters from the scoring service."
	if a.fetching {
		subtitle = AnimatedSpinner(a.insights.Index()) + " fetching stats..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.st.title.Render("Fraud Intelligence Dashboard"),
		a.st.subtitle.Render(subtitle),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, a.viewRiskGrid(), "  ", a.viewEngines()),
		"",
		a.st.accent.Render("💡 ")+a.st.text.Render(a.insights.Current()),
	)
}

func (a App) statCard(label, value string, vs lipgloss.Style) string {
	return a.st.card.Width(statCardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		a.st.label.Render(label),
		vs.Render(value),
	))
}

func (a App) viewRiskGrid() string {
	rows := make([]string, 0, len(a.grid))
	for _, row := range a.grid {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(lipgloss.NewStyle().Foreground(a.theme.riskColor(c.Level)).Render("███ "))
		}
		rows = append(rows, b.String(), "")
	}

	return a.st.panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.st.cardTitle.Render("Transaction Risk Distribution"),
		"",
		strings.Join(rows, "\n"),
		a.st.muted.Render("Red = High Risk | Green = Safe | Yellow = Suspicious"),
	))
}

func (a App) viewEngines() string {
	engines := analytics.Engines()
	cards := make([]string, 0, len(engines))
	for _, e := range engines {
		cards = append(cards, a.st.card.Width(48).Render(lipgloss.JoinVertical(lipgloss.Left,
			a.st.cardTitle.Render(e.Title),
			a.st.muted.Width(44).Render(e.Description),
			a.st.warning.Render(e.Ratings),
		)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
