package analytics

import (
	"math"
	"math/rand"
	"testing"
)

func TestLossCurve(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pts := LossCurve(rng, DefaultEpochs)
	if len(pts) != DefaultEpochs {
		t.Fatalf("expected %d points, got %d", DefaultEpochs, len(pts))
	}
	for i, p := range pts {
		if p.Epoch != i+1 {
			t.Errorf("point %d: epoch %d", i, p.Epoch)
		}
		base := 1.5 * math.Exp(-float64(i)/5)
		if p.Loss < base || p.Loss >= base+0.05 {
			t.Errorf("epoch %d: loss %v outside [%v, %v)", p.Epoch, p.Loss, base, base+0.05)
		}
	}
	if pts[0].Loss <= pts[len(pts)-1].Loss {
		t.Error("loss should converge downward")
	}
	if LossCurve(rng, 0) != nil {
		t.Error("zero epochs should yield nil")
	}
	if got := LossSeries(pts); len(got) != len(pts) || got[3] != pts[3].Loss {
		t.Error("series should mirror the curve")
	}
}

func TestTrainingCurve(t *testing.T) {
	pts := TrainingCurve(rand.New(rand.NewSource(2)), 20)
	if len(pts) != 20 {
		t.Fatalf("expected 20 points, got %d", len(pts))
	}
	if pts[0].Step != 0 {
		t.Errorf("steps should start at 0, got %d", pts[0].Step)
	}
	last := pts[len(pts)-1]
	if last.Accuracy < 0.95 || last.Accuracy > 1.05 {
		t.Errorf("final accuracy %v out of range", last.Accuracy)
	}
}

func TestFeatureImportances(t *testing.T) {
	fs := FeatureImportances()
	if len(fs) != 5 {
		t.Fatalf("expected 5 features, got %d", len(fs))
	}
	sum := 0.0
	for i, f := range fs {
		sum += f.Importance
		if i > 0 && f.Importance > fs[i-1].Importance {
			t.Errorf("%s out of order", f.Name)
		}
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("importances should sum to 1, got %v", sum)
	}
	fs[0].Name = "changed"
	if FeatureImportances()[0].Name != "Amount" {
		t.Error("FeatureImportances should return a copy")
	}
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		v    float64
		want RiskLevel
	}{
		{0.1, RiskLow},
		{0.25, RiskLow},
		{0.3, RiskModerate},
		{0.51, RiskHigh},
		{0.75, RiskHigh},
		{0.76, RiskCritical},
	}
	for _, tt := range tests {
		if got := ClassifyRisk(tt.v); got != tt.want {
			t.Errorf("ClassifyRisk(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRiskGrid(t *testing.T) {
	grid := RiskGrid(rand.New(rand.NewSource(3)), GridSize)
	if len(grid) != GridSize {
		t.Fatalf("expected %d rows, got %d", GridSize, len(grid))
	}
	for _, row := range grid {
		if len(row) != GridSize {
			t.Fatalf("expected %d cols, got %d", GridSize, len(row))
		}
		for _, c := range row {
			if c.Level != ClassifyRisk(c.Intensity) {
				t.Errorf("cell %v has level %v", c.Intensity, c.Level)
			}
		}
	}
}

func TestCompareData(t *testing.T) {
	if n := len(ModelCards()); n != 3 {
		t.Errorf("expected 3 model cards, got %d", n)
	}
	if n := len(Benchmarks()); n != 3 {
		t.Errorf("expected 3 benchmark rows, got %d", n)
	}
	if n := len(Engines()); n != 3 {
		t.Errorf("expected 3 engines, got %d", n)
	}

	tr := Trend()
	series := TrendSeries(tr)
	if len(series) != 3 || len(series[0]) != 7 {
		t.Fatalf("unexpected trend shape %d×%d", len(series), len(series[0]))
	}
	if series[1][3] != 0.80 {
		t.Errorf("expected deep peak 0.80 at step 4, got %v", series[1][3])
	}

	bars := AUCBars()
	if bars[len(bars)-1].Model != "Quantum Hybrid" || bars[len(bars)-1].AUC != 0.735 {
		t.Errorf("unexpected last AUC bar %+v", bars[len(bars)-1])
	}
	if len(AnomalyTrend()) != 7 || len(Pipeline()) != 3 {
		t.Error("unexpected anomaly trend or pipeline length")
	}
}
