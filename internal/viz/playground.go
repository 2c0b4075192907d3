package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fraudsim/internal/analytics"
	"github.com/san-kum/fraudsim/internal/clock"
	"github.com/san-kum/fraudsim/internal/sampler"
	"github.com/san-kum/fraudsim/internal/variant"
)

const (
	cardsPerRow = 3
	cardWidth   = 30
	arenaRadius = 4
)

func (t Theme) bandInk(b sampler.Band) string {
	switch b {
	case sampler.Fraudulent:
		return string(t.Error)
	case sampler.Borderline:
		return string(t.Warning)
	default:
		return string(t.Success)
	}
}

func (a App) viewPlayground() string {
	sections := []string{
		a.st.title.Render("Model Playground"),
		a.st.subtitle.Render("Pick a model and watch a simulated training run."),
		"",
		a.viewCards(),
	}

	if a.clock.Variant().Valid() {
		sections = append(sections, "", a.viewActive())
		if a.clock.Progress() >= analytics.ShowAt {
			sections = append(sections, "", a.viewAnalytics())
		}
		if a.clock.Phase() == clock.Complete && len(a.points) > 0 {
			sections = append(sections, "", a.viewArena())
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a App) viewCards() string {
	all := variant.All()
	rows := make([]string, 0, (len(all)+cardsPerRow-1)/cardsPerRow)
	for start := 0; start < len(all); start += cardsPerRow {
		end := start + cardsPerRow
		if end > len(all) {
			end = len(all)
		}
		cards := make([]string, 0, cardsPerRow)
		for i := start; i < end; i++ {
			cards = append(cards, a.viewCard(all[i], i == a.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a App) viewCard(v variant.Variant, focused bool) string {
	info := v.Info()
	name := a.st.cardTitle.Foreground(lipgloss.Color(info.Accent)).Render(info.Name)
	desc := a.st.muted.Width(cardWidth - 4).Render(info.Description)

	button := a.st.button.Render("Run Simulation")
	if a.clock.Running() && a.clock.Variant() == v {
		button = a.st.buttonBusy.Render("Running...")
	}

	style := a.st.card
	if focused {
		style = a.st.cardFocus
	}
	return style.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, name, desc, "", button))
}

func (a App) viewActive() string {
	v := a.clock.Variant()
	ceiling := a.cfg.Simulation.Ceiling
	progress := a.clock.Progress()

	status := AnimatedSpinner(a.frame) + " training"
	if a.clock.Phase() == clock.Complete {
		status = a.st.success.Render("✓ complete")
	}

	header := fmt.Sprintf("%s — Live Training Simulation", v.Name())
	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		a.bar.ViewAs(a.clock.State().Fraction(ceiling)),
		" ",
		a.st.value.Render(fmt.Sprintf("%3d%%", progress*100/ceiling)),
	)

	return a.st.panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			a.st.title.Foreground(lipgloss.Color(v.Info().Accent)).Render(header),
			"  ",
			a.st.muted.Render(status),
		),
		strings.TrimRight(a.canvas.String(), "\n"),
		bar,
		a.st.label.Render("Training log"),
		a.logView.View(),
	))
}

func (a App) viewAnalytics() string {
	width := a.canvas.Width - 12
	if width < 20 {
		width = 20
	}
	chart := asciigraph.Plot(analytics.LossSeries(a.loss),
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Cyan),
		asciigraph.Caption("epoch"),
	)

	features := analytics.FeatureImportances()
	top := features[0].Importance
	lines := make([]string, 0, len(features))
	for _, f := range features {
		lines = append(lines, fmt.Sprintf("%-12s %s %5.1f%%",
			f.Name,
			HorizontalBar(f.Importance, top, 24, a.st.accent),
			f.Importance*100,
		))
	}

	return a.st.panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.st.cardTitle.Render("Loss Convergence"),
		chart,
		"",
		a.st.cardTitle.Render("Feature Importance"),
		strings.Join(lines, "\n"),
	))
}

// drawArena plots the sampled points, one disc per point inked by band.
func (a *App) drawArena() {
	a.arena.Clear()
	for _, p := range a.points {
		a.arena.Disc(p.X, p.Y, arenaRadius, a.theme.bandInk(p.Band()))
	}
}

func (a App) viewArena() string {
	sum := sampler.Summarize(a.points)
	dot := func(b sampler.Band) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(a.theme.bandInk(b))).Render("●")
	}
	legend := fmt.Sprintf("%s legitimate %d   %s borderline %d   %s fraudulent %d",
		dot(sampler.Legitimate), sum.Legitimate,
		dot(sampler.Borderline), sum.Borderline,
		dot(sampler.Fraudulent), sum.Fraudulent,
	)

	stream := fmt.Sprintf("⚑ live stream: %d of %d transactions flagged",
		sampler.CountFraud(a.flags), len(a.flags))

	return a.st.panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.st.title.Render("Fraud Detection Arena — "+a.clock.Variant().Name()),
		strings.TrimRight(a.arena.String(), "\n"),
		legend,
		a.st.danger.Render(stream),
	))
}
