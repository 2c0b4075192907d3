package analytics

import (
	"math"
	"math/rand"
)

const (
	// ShowAt is the progress from which run analytics are displayed.
	ShowAt = 10

	DefaultEpochs = 20
	TrainingSteps = 20
)

type LossPoint struct {
	Epoch int
	Loss  float64
}

// LossCurve returns 1.5·e^(-i/5) plus up to 0.05 noise for each epoch.
func LossCurve(rng *rand.Rand, epochs int) []LossPoint {
	if epochs <= 0 {
		return nil
	}
	out := make([]LossPoint, epochs)
	for i := range out {
		out[i] = LossPoint{
			Epoch: i + 1,
			Loss:  1.5*math.Exp(-float64(i)/5) + rng.Float64()*0.05,
		}
	}
	return out
}

func LossSeries(pts []LossPoint) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Loss
	}
	return out
}

type TrainingPoint struct {
	Step     int
	Loss     float64
	Accuracy float64
}

// TrainingCurve returns paired loss and accuracy traces for n steps.
func TrainingCurve(rng *rand.Rand, n int) []TrainingPoint {
	if n <= 0 {
		return nil
	}
	out := make([]TrainingPoint, n)
	for i := range out {
		out[i] = TrainingPoint{
			Step:     i,
			Loss:     math.Exp(-float64(i)/5) + rng.Float64()*0.1,
			Accuracy: float64(i)/float64(n) + rng.Float64()*0.1,
		}
	}
	return out
}

type Feature struct {
	Name       string
	Importance float64
}

var featureImportances = []Feature{
	{"Amount", 0.35},
	{"OldBalanceOrg", 0.25},
	{"NewBalanceDest", 0.18},
	{"Type_Transfer", 0.15},
	{"IsFlaggedFraud", 0.07},
}

// FeatureImportances returns the importances in descending order.
func FeatureImportances() []Feature {
	out := make([]Feature, len(featureImportances))
	copy(out, featureImportances)
	return out
}
