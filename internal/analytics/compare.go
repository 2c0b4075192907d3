package analytics

import "github.com/san-kum/fraudsim/internal/variant"

type ModelCard struct {
	Name        string
	Description string
	Family      variant.Family
	Accuracy    float64 // percent
	F1          float64 // percent
	LatencyMS   int
	AUC         float64
}

var modelCards = []ModelCard{
	{
		Name:        "Classical ML (XGBoost)",
		Description: "Trained on tabular financial data for real-time detection with low latency and high interpretability.",
		Family:      variant.Classical,
		Accuracy:    98.5,
		F1:          91.0,
		LatencyMS:   30,
		AUC:         0.98,
	},
	{
		Name:        "Deep Learning (MLP)",
		Description: "Learns deeper relationships and sequential fraud patterns through dense multi-layer neural networks.",
		Family:      variant.Deep,
		Accuracy:    99.2,
		F1:          94.0,
		LatencyMS:   80,
		AUC:         0.99,
	},
	{
		Name:        "Quantum Hybrid",
		Description: "Combines quantum circuits with deep learning embeddings for faster convergence on imbalanced fraud data.",
		Family:      variant.Quantum,
		Accuracy:    97.6,
		F1:          88.0,
		LatencyMS:   120,
		AUC:         0.94,
	},
}

func ModelCards() []ModelCard {
	out := make([]ModelCard, len(modelCards))
	copy(out, modelCards)
	return out
}

type Benchmark struct {
	Model     string
	AUC       float64
	Accuracy  float64
	Precision float64
	Recall    float64
	LatencyMS int
}

var benchmarks = []Benchmark{
	{"XGBoost", 0.982, 98.5, 92, 90, 30},
	{"Deep Learning", 0.992, 99.2, 95, 93, 80},
	{"Quantum Hybrid", 0.945, 97.6, 88, 86, 120},
}

func Benchmarks() []Benchmark {
	out := make([]Benchmark, len(benchmarks))
	copy(out, benchmarks)
	return out
}

// TrendPoint is the simulated fraud probability per family at one step.
type TrendPoint struct {
	Step      int
	Classical float64
	Deep      float64
	Quantum   float64
}

var trend = []TrendPoint{
	{1, 0.12, 0.10, 0.08},
	{2, 0.20, 0.25, 0.18},
	{3, 0.55, 0.70, 0.60},
	{4, 0.65, 0.80, 0.78},
	{5, 0.40, 0.55, 0.70},
	{6, 0.30, 0.45, 0.55},
	{7, 0.10, 0.20, 0.25},
}

func Trend() []TrendPoint {
	out := make([]TrendPoint, len(trend))
	copy(out, trend)
	return out
}

// TrendSeries splits the trend into one series per family, in
// classical, deep, quantum order.
func TrendSeries(pts []TrendPoint) [][]float64 {
	out := [][]float64{make([]float64, len(pts)), make([]float64, len(pts)), make([]float64, len(pts))}
	for i, p := range pts {
		out[0][i] = p.Classical
		out[1][i] = p.Deep
		out[2][i] = p.Quantum
	}
	return out
}

// AnomalyPoint compares autoencoder reconstruction error with a supervised
// fraud probability.
type AnomalyPoint struct {
	Step        int
	Autoencoder float64
	XGBoost     float64
}

var anomaly = []AnomalyPoint{
	{1, 0.05, 0.08},
	{2, 0.15, 0.10},
	{3, 0.35, 0.32},
	{4, 0.70, 0.65},
	{5, 0.90, 0.85},
	{6, 0.45, 0.55},
	{7, 0.20, 0.30},
}

func AnomalyTrend() []AnomalyPoint {
	out := make([]AnomalyPoint, len(anomaly))
	copy(out, anomaly)
	return out
}

// AutoencoderScores are the headline figures of the unsupervised layer.
var AutoencoderScores = struct {
	AUC float64
	F1  float64
}{AUC: 0.983, F1: 0.901}

type AUCBar struct {
	Model string
	AUC   float64
}

var aucBars = []AUCBar{
	{"XGBoost", 0.999},
	{"Deep Learning", 0.996},
	{"Autoencoder", 0.993},
	{"Quantum Hybrid", 0.735},
}

func AUCBars() []AUCBar {
	out := make([]AUCBar, len(aucBars))
	copy(out, aucBars)
	return out
}

type Stage struct {
	Name   string
	Detail string
}

var pipeline = []Stage{
	{"Classical Filtering", "Quick heuristic check for anomalies."},
	{"Deep Pattern Learning", "Detects subtle non-linear fraud patterns."},
	{"Quantum Optimization", "Final stage: Quantum model minimizes false negatives."},
}

// Pipeline is the hybrid workflow, in order.
func Pipeline() []Stage {
	out := make([]Stage, len(pipeline))
	copy(out, pipeline)
	return out
}
