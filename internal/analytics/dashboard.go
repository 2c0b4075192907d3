package analytics

import "math/rand"

const GridSize = 6

type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskModerate
	RiskHigh
	RiskCritical
)

func (r RiskLevel) String() string {
	switch r {
	case RiskCritical:
		return "critical"
	case RiskHigh:
		return "high"
	case RiskModerate:
		return "moderate"
	default:
		return "low"
	}
}

func ClassifyRisk(intensity float64) RiskLevel {
	switch {
	case intensity > 0.75:
		return RiskCritical
	case intensity > 0.5:
		return RiskHigh
	case intensity > 0.25:
		return RiskModerate
	default:
		return RiskLow
	}
}

type RiskCell struct {
	Intensity float64
	Level     RiskLevel
}

// RiskGrid draws a size×size heatmap of uniform intensities.
func RiskGrid(rng *rand.Rand, size int) [][]RiskCell {
	if size <= 0 {
		return nil
	}
	grid := make([][]RiskCell, size)
	for r := range grid {
		grid[r] = make([]RiskCell, size)
		for c := range grid[r] {
			v := rng.Float64()
			grid[r][c] = RiskCell{Intensity: v, Level: ClassifyRisk(v)}
		}
	}
	return grid
}

type EngineCard struct {
	Title       string
	Description string
	Ratings     string
}

var engines = []EngineCard{
	{
		Title:       "Classical Engine",
		Description: "Fastest at detecting bulk fraudulent transfers using decision-tree ensembles.",
		Ratings:     "Speed: ★★★★★ | Adaptability: ★★★★☆",
	},
	{
		Title:       "Deep Learning Model",
		Description: "Captures hidden dependencies and sequential fraud sequences from large datasets.",
		Ratings:     "Accuracy: ★★★★★ | Interpretability: ★★★☆☆",
	},
	{
		Title:       "Quantum Hybrid Core",
		Description: "Enhances sensitivity for rare transactions using quantum optimization techniques.",
		Ratings:     "Innovation: ★★★★★ | Latency: ★★★☆☆",
	},
}

func Engines() []EngineCard {
	out := make([]EngineCard, len(engines))
	copy(out, engines)
	return out
}
