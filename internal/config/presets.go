package config

import (
	"fmt"
	"sort"
	"time"
)

type Preset struct {
	Description string
	Simulation  SimulationConfig
	Insight     InsightConfig
}

var Presets = map[string]Preset{
	"demo": {
		Description: "default pacing, a run completes in five seconds",
		Simulation:  SimulationConfig{Step: 2, Ceiling: 100, Period: 100 * time.Millisecond, FPS: 30},
		Insight:     InsightConfig{Interval: 5 * time.Second},
	},
	"fast": {
		Description: "quick runs for demos and smoke checks",
		Simulation:  SimulationConfig{Step: 5, Ceiling: 100, Period: 50 * time.Millisecond, FPS: 60},
		Insight:     InsightConfig{Interval: 2 * time.Second},
	},
	"slow": {
		Description: "slow runs for presentations",
		Simulation:  SimulationConfig{Step: 1, Ceiling: 100, Period: 250 * time.Millisecond, FPS: 20},
		Insight:     InsightConfig{Interval: 8 * time.Second},
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset overrides pacing with the named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: unknown preset %q", ErrInvalid, name)
	}
	c.Simulation = p.Simulation
	c.Insight = p.Insight
	return nil
}
