package render

import (
	"math/rand"
	"testing"

	"github.com/san-kum/fraudsim/internal/variant"
)

type op struct {
	kind string
	ink  string
}

type recorder struct {
	w, h   float64
	clears int
	ops    []op
}

func newRecorder() *recorder {
	return &recorder{w: DefaultLogicalWidth, h: DefaultLogicalHeight}
}

func (r *recorder) Size() (float64, float64) { return r.w, r.h }
func (r *recorder) Clear()                   { r.clears++; r.ops = nil }
func (r *recorder) Plot(x, y float64, ink string) {
	r.ops = append(r.ops, op{"plot", ink})
}
func (r *recorder) Line(x0, y0, x1, y1 float64, ink string) {
	r.ops = append(r.ops, op{"line", ink})
}
func (r *recorder) Disc(cx, cy, rad float64, ink string) {
	r.ops = append(r.ops, op{"disc", ink})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func TestEveryVariantHasRoutine(t *testing.T) {
	for _, v := range variant.All() {
		if _, ok := Routine(v); !ok {
			t.Errorf("no routine for %s", v)
		}
	}
	if _, ok := Routine(variant.None); ok {
		t.Error("None should have no routine")
	}
}

func TestRenderClearsFirst(t *testing.T) {
	r := NewRenderer(rand.New(rand.NewSource(1)))
	for _, v := range variant.All() {
		s := newRecorder()
		r.Render(s, v, 7)
		if s.clears != 1 {
			t.Errorf("%s: expected one clear, got %d", v, s.clears)
		}
		if len(s.ops) == 0 {
			t.Errorf("%s: drew nothing", v)
		}
	}
}

func TestRenderNoneLeavesBlank(t *testing.T) {
	s := newRecorder()
	NewRenderer(nil).Render(s, variant.None, 3)
	if s.clears != 1 || len(s.ops) != 0 {
		t.Errorf("expected clear only, got %d clears %d ops", s.clears, len(s.ops))
	}
}

func TestRoutineShapes(t *testing.T) {
	tests := []struct {
		v     variant.Variant
		discs int
		lines int
	}{
		{variant.LogisticRegression, 80, 1},
		{variant.RandomForest, 0, 25},
		{variant.XGBoost, 0, 250},
		{variant.DeepMLP, 14, 4*6 + 6*4},
		{variant.Autoencoder, 0, 250},
	}

	r := NewRenderer(rand.New(rand.NewSource(42)))
	for _, tt := range tests {
		s := newRecorder()
		r.Render(s, tt.v, 12)
		if got := s.count("disc"); got != tt.discs {
			t.Errorf("%s: expected %d discs, got %d", tt.v, tt.discs, got)
		}
		if got := s.count("line"); got != tt.lines {
			t.Errorf("%s: expected %d lines, got %d", tt.v, tt.lines, got)
		}
	}
}

func TestQuantumWires(t *testing.T) {
	r := NewRenderer(rand.New(rand.NewSource(3)))
	s := newRecorder()
	r.Render(s, variant.QuantumSVM, 0)

	wires := 0
	for _, o := range s.ops {
		if o.kind == "line" && o.ink == inkIndigo {
			wires++
		}
	}
	if wires != quantumWires {
		t.Errorf("expected %d wires, got %d", quantumWires, wires)
	}
	if s.count("disc") != quantumWires {
		t.Errorf("expected one qubit per wire, got %d", s.count("disc"))
	}
}

func TestLogisticColorsBySide(t *testing.T) {
	r := NewRenderer(rand.New(rand.NewSource(9)))
	s := newRecorder()
	r.Render(s, variant.LogisticRegression, 0)

	cyan, red := 0, 0
	for _, o := range s.ops {
		switch {
		case o.kind == "disc" && o.ink == inkCyan:
			cyan++
		case o.kind == "disc" && o.ink == inkRed:
			red++
		}
	}
	if cyan+red != logisticPoints {
		t.Errorf("expected %d colored points, got %d", logisticPoints, cyan+red)
	}
	if cyan == 0 || red == 0 {
		t.Errorf("expected both classes, got cyan=%d red=%d", cyan, red)
	}
}

func TestRenderDeterministicWithSeed(t *testing.T) {
	for _, v := range variant.All() {
		a := NewCanvas(60, 18)
		b := NewCanvas(60, 18)
		NewRenderer(rand.New(rand.NewSource(5))).Render(a, v, 33)
		NewRenderer(rand.New(rand.NewSource(5))).Render(b, v, 33)
		if a.Plain() != b.Plain() {
			t.Errorf("%s: same seed and frame should draw the same frame", v)
		}
	}
}

func TestBoostingScrolls(t *testing.T) {
	r := NewRenderer(nil)
	a := NewCanvas(60, 18)
	b := NewCanvas(60, 18)
	r.Render(a, variant.XGBoost, 0)
	r.Render(b, variant.XGBoost, 10)
	if a.Plain() == b.Plain() {
		t.Error("curve should move with frame")
	}
}
