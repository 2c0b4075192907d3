package clock

import (
	"strings"
	"testing"
	"time"

	"github.com/san-kum/fraudsim/internal/variant"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestClock_Idle(t *testing.T) {
	c := New(DefaultConfig(), WithNow(fixedNow))
	if c.Phase() != Idle {
		t.Errorf("expected idle, got %v", c.Phase())
	}
	if ev := c.Tick(); ev.Advanced || ev.Completed {
		t.Error("tick before start should do nothing")
	}
	if c.Progress() != 0 || len(c.LogLines()) != 0 {
		t.Error("idle clock must not change state on tick")
	}
}

func TestClock_XGBoostScenario(t *testing.T) {
	c := New(DefaultConfig(), WithNow(fixedNow))
	c.Start(variant.XGBoost)

	for i := 0; i < 25; i++ {
		c.Tick()
	}
	s := c.State()
	if s.Progress != 50 || !s.Running || len(s.Log) != 25 {
		t.Fatalf("after 25 ticks: progress=%d running=%v log=%d", s.Progress, s.Running, len(s.Log))
	}

	var completions int
	for i := 0; i < 25; i++ {
		if c.Tick().Completed {
			completions++
		}
	}
	s = c.State()
	if s.Progress != 100 || s.Running {
		t.Fatalf("after 50 ticks: progress=%d running=%v", s.Progress, s.Running)
	}
	// 50 step lines plus the completion triplet.
	if len(s.Log) != 53 {
		t.Errorf("expected 53 log lines, got %d", len(s.Log))
	}
	if completions != 1 {
		t.Errorf("expected exactly one completion edge, got %d", completions)
	}
	if c.Phase() != Complete {
		t.Errorf("expected complete, got %v", c.Phase())
	}
}

func TestClock_CompletionOnce(t *testing.T) {
	c := New(DefaultConfig(), WithNow(fixedNow))
	c.Start(variant.RandomForest)
	for i := 0; i < 80; i++ {
		c.Tick()
	}

	lines := c.LogLines()
	count := 0
	for _, l := range lines {
		if l == CompletionLines[0] {
			count++
		}
	}
	if count != 1 {
		t.Errorf("completion line appended %d times", count)
	}
	tail := lines[len(lines)-3:]
	for i, want := range CompletionLines {
		if tail[i] != want {
			t.Errorf("completion line %d = %q, want %q", i, tail[i], want)
		}
	}
}

func TestClock_LogLineFormat(t *testing.T) {
	c := New(DefaultConfig(), WithNow(fixedNow))
	c.Start(variant.DeepMLP)
	c.Tick()
	c.Tick()

	lines := c.LogLines()
	if lines[0] != "[09:26:53] Training step 0 — model optimizing weights..." {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "Training step 1 ") {
		t.Errorf("second line should carry step 1: %q", lines[1])
	}
}

func TestClock_StartResets(t *testing.T) {
	for _, v := range variant.All() {
		c := New(DefaultConfig(), WithNow(fixedNow))
		c.Start(variant.Autoencoder)
		for i := 0; i < 10; i++ {
			c.Tick()
		}
		firstRun := c.RunID()

		c.Start(v)
		s := c.State()
		if s.Progress != 0 || len(s.Log) != 0 || !s.Running {
			t.Errorf("%v: start did not reset: %+v", v, s)
		}
		if s.Variant != v {
			t.Errorf("expected variant %v, got %v", v, s.Variant)
		}
		if s.RunID == firstRun {
			t.Error("restart must issue a new run id")
		}
	}
}

func TestClock_RestartAfterComplete(t *testing.T) {
	c := New(DefaultConfig(), WithNow(fixedNow))
	c.Start(variant.QuantumSVM)
	for i := 0; i < c.TicksToComplete(); i++ {
		c.Tick()
	}
	if c.Phase() != Complete {
		t.Fatal("expected complete")
	}

	c.Start(variant.QuantumSVM)
	if c.Phase() != Running || c.Progress() != 0 {
		t.Errorf("same-variant restart must fully reset, got phase=%v progress=%d", c.Phase(), c.Progress())
	}
}

func TestClock_ClampsToCeiling(t *testing.T) {
	c := New(Config{Step: 3, Ceiling: 100}, WithNow(fixedNow))
	c.Start(variant.XGBoost)
	if c.TicksToComplete() != 34 {
		t.Fatalf("expected 34 ticks, got %d", c.TicksToComplete())
	}
	prev := 0
	for i := 0; i < 40; i++ {
		c.Tick()
		if c.Progress() < prev {
			t.Fatalf("progress decreased from %d to %d", prev, c.Progress())
		}
		prev = c.Progress()
	}
	if c.Progress() != 100 {
		t.Errorf("expected progress clamped to 100, got %d", c.Progress())
	}
}

func TestClock_StateIsCopy(t *testing.T) {
	c := New(DefaultConfig(), WithNow(fixedNow))
	c.Start(variant.XGBoost)
	c.Tick()

	s := c.State()
	s.Log[0] = "mutated"
	if c.LogLines()[0] == "mutated" {
		t.Error("State must return a copy of the log")
	}
}

func TestDefaultConfigFallback(t *testing.T) {
	c := New(Config{})
	cfg := c.Config()
	if cfg.Step != DefaultStep || cfg.Ceiling != DefaultCeiling || cfg.Period != DefaultPeriod {
		t.Errorf("zero config should fall back to defaults, got %+v", cfg)
	}
}
