package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fraudsim/internal/analytics"
	"github.com/san-kum/fraudsim/internal/variant"
)

const modelCardWidth = 34

var familyColor = map[variant.Family]asciigraph.AnsiColor{
	variant.Classical: asciigraph.Cyan,
	variant.Deep:      asciigraph.Magenta,
	variant.Quantum:   asciigraph.Yellow,
}

func (a App) viewCompare() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.st.title.Render("Model Comparison"),
		a.st.subtitle.Render("Classical, deep and quantum-hybrid detectors side by side."),
		"",
		a.viewModelCards(),
		"",
		a.viewBenchmarks(),
		"",
		a.viewTrend(),
		"",
		a.viewTraining(),
		"",
		a.viewPipeline(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, a.viewAutoencoder(), "  ", a.viewAUC()),
	)
}

func (a App) viewModelCards() string {
	cards := analytics.ModelCards()
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		metrics := fmt.Sprintf("Accuracy %.1f%%  F1 %.0f%%\nLatency %d ms  AUC %.2f",
			c.Accuracy, c.F1, c.LatencyMS, c.AUC)
		out = append(out, a.st.card.Width(modelCardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			a.st.cardTitle.Render(c.Name),
			a.st.muted.Width(modelCardWidth-4).Render(c.Description),
			"",
			a.st.value.Render(metrics),
		)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func (a App) viewBenchmarks() string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(a.st.muted).
		Headers("Model", "AUC", "Accuracy", "Precision", "Recall", "Latency").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return a.st.cardTitle.Padding(0, 1)
			}
			return a.st.text.Padding(0, 1)
		})
	for _, b := range analytics.Benchmarks() {
		t.Row(
			b.Model,
			fmt.Sprintf("%.3f", b.AUC),
			fmt.Sprintf("%.1f%%", b.Accuracy),
			fmt.Sprintf("%.0f%%", b.Precision),
			fmt.Sprintf("%.0f%%", b.Recall),
			fmt.Sprintf("%d ms", b.LatencyMS),
		)
	}
	return t.Render()
}

func (a App) viewTrend() string {
	series := analytics.TrendSeries(analytics.Trend())
	chart := asciigraph.PlotMany(series,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.SeriesColors(
			familyColor[variant.Classical],
			familyColor[variant.Deep],
			familyColor[variant.Quantum],
		),
		asciigraph.SeriesLegends("Classical", "Deep", "Quantum"),
	)

	sparks := []string{
		fmt.Sprintf("%-10s %s", "Classical", SparklineChart(series[0], len(series[0]), a.st)),
		fmt.Sprintf("%-10s %s", "Deep", SparklineChart(series[1], len(series[1]), a.st)),
		fmt.Sprintf("%-10s %s", "Quantum", SparklineChart(series[2], len(series[2]), a.st)),
	}

	return a.st.panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.st.cardTitle.Render("Model Simulation Lab"),
		a.st.muted.Render("Simulated fraud probability per step"),
		chart,
		"",
		strings.Join(sparks, "\n"),
	))
}

// viewTraining plots loss against accuracy for the model under the cursor.
func (a App) viewTraining() string {
	loss := make([]float64, len(a.training))
	acc := make([]float64, len(a.training))
	for i, p := range a.training {
		loss[i] = p.Loss
		acc[i] = p.Accuracy
	}
	title := "Training Metrics — " + variant.All()[a.cursor].Name()
	if len(a.training) == 0 {
		return a.st.panel.Render(a.st.cardTitle.Render(title))
	}
	chart := asciigraph.PlotMany([][]float64{loss, acc},
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.LowerBound(0),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green),
		asciigraph.SeriesLegends("Loss", "Accuracy"),
		asciigraph.Caption("step"),
	)
	return a.st.panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.st.cardTitle.Render(title),
		chart,
	))
}

func (a App) viewPipeline() string {
	stages := analytics.Pipeline()
	parts := make([]string, 0, 2*len(stages))
	for i, s := range stages {
		if i > 0 {
			parts = append(parts, a.st.accent.Render("  ➜  "))
		}
		parts = append(parts, a.st.card.Width(28).Render(lipgloss.JoinVertical(lipgloss.Left,
			a.st.cardTitle.Render(fmt.Sprintf("%d. %s", i+1, s.Name)),
			a.st.muted.Width(24).Render(s.Detail),
		)))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.st.cardTitle.Render("Hybrid Detection Pipeline"),
		lipgloss.JoinHorizontal(lipgloss.Center, parts...),
	)
}

func (a App) viewAutoencoder() string {
	pts := analytics.AnomalyTrend()
	ae := make([]float64, len(pts))
	xgb := make([]float64, len(pts))
	for i, p := range pts {
		ae[i] = p.Autoencoder
		xgb[i] = p.XGBoost
	}
	chart := asciigraph.PlotMany([][]float64{ae, xgb},
		asciigraph.Height(8),
		asciigraph.Width(40),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Cyan),
		asciigraph.SeriesLegends("Autoencoder", "XGBoost"),
	)

	scores := fmt.Sprintf("AUC %.3f | F1 %.3f", analytics.AutoencoderScores.AUC, analytics.AutoencoderScores.F1)
	return a.st.panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.st.cardTitle.Render("Unsupervised Anomaly Layer"),
		a.st.muted.Render("Reconstruction error vs supervised fraud probability"),
		chart,
		a.st.value.Render(scores),
	))
}

func (a App) viewAUC() string {
	bars := analytics.AUCBars()
	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		lines = append(lines, fmt.Sprintf("%-15s %s %.3f",
			b.Model, HorizontalBar(b.AUC, 1, 20, a.st.success), b.AUC))
	}
	return a.st.panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.st.cardTitle.Render("ROC-AUC"),
		strings.Join(lines, "\n"),
	))
}
