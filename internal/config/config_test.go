package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Simulation.Step != 2 {
		t.Errorf("expected step 2, got %d", cfg.Simulation.Step)
	}
	if cfg.Simulation.Ceiling != 100 {
		t.Errorf("expected ceiling 100, got %d", cfg.Simulation.Ceiling)
	}
	if cfg.Simulation.Period != 100*time.Millisecond {
		t.Errorf("expected period 100ms, got %s", cfg.Simulation.Period)
	}
	if cfg.Insight.Interval != 5*time.Second {
		t.Errorf("expected insight interval 5s, got %s", cfg.Insight.Interval)
	}
	if cfg.Stats.BaseURL != "http://127.0.0.1:8000" {
		t.Errorf("unexpected stats url %s", cfg.Stats.BaseURL)
	}
	if cfg.Stats.Timeout != 0 {
		t.Error("stats fetch should have no timeout by default")
	}
	if cfg.Arena.FraudProbability != 0.15 {
		t.Errorf("expected fraud probability 0.15, got %v", cfg.Arena.FraudProbability)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected info log level, got %s", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvStatsURL, "")
	path := filepath.Join(t.TempDir(), "fraudsim.yaml")
	data := `
theme: ocean
simulation:
  step: 4
  period: 250ms
stats:
  timeout: 3s
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "ocean" {
		t.Errorf("expected theme ocean, got %s", cfg.Theme)
	}
	if cfg.Simulation.Step != 4 || cfg.Simulation.Period != 250*time.Millisecond {
		t.Errorf("unexpected simulation %+v", cfg.Simulation)
	}
	if cfg.Simulation.Ceiling != 100 {
		t.Errorf("unset fields should keep defaults, got ceiling %d", cfg.Simulation.Ceiling)
	}
	if cfg.Stats.Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.Stats.Timeout)
	}
}

func TestLoad_ExplicitZeros(t *testing.T) {
	t.Setenv(EnvStatsURL, "")
	path := filepath.Join(t.TempDir(), "zeros.yaml")
	data := "arena:\n  points: 0\n  flag_points: 0\n  fraud_probability: 0\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Arena.Points != 0 || cfg.Arena.FlagPoints != 0 || cfg.Arena.FraudProbability != 0 {
		t.Errorf("explicit zeros should survive load, got %+v", cfg.Arena)
	}
	if cfg.Arena.Width != 460 {
		t.Errorf("absent keys should keep defaults, got width %v", cfg.Arena.Width)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(EnvStatsURL, "http://stats.internal:9100")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Stats.BaseURL != "http://stats.internal:9100" {
		t.Errorf("env should override base url, got %s", cfg.Stats.BaseURL)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvStatsURL, "")
	tests := []struct {
		name string
		data string
	}{
		{"bad theme", "theme: plaid\n"},
		{"bad probability", "arena:\n  fraud_probability: 1.5\n"},
		{"bad log level", "log:\n  level: loud\n"},
		{"bad url", "stats:\n  base_url: not a url\n"},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvStatsURL, "")
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "retro"
	cfg.Arena.Points = 12

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Theme != "retro" || got.Arena.Points != 12 {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("fast")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Simulation.Step != 5 {
		t.Errorf("expected step 5, got %d", p.Simulation.Step)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	want := []string{"demo", "fast", "slow"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("slow"); err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.Period != 250*time.Millisecond {
		t.Errorf("expected 250ms period, got %s", cfg.Simulation.Period)
	}
	if err := cfg.ApplyPreset("warp"); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	for _, name := range ListPresets() {
		cfg := DefaultConfig()
		_ = cfg.ApplyPreset(name)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s should validate: %v", name, err)
		}
	}
}
