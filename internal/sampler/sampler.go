// Package sampler generates the synthetic transaction points shown in the
// fraud arena once a training run completes.
package sampler

import (
	"math/rand"

	"github.com/google/uuid"
)

const (
	DefaultPoints     = 80
	DefaultFlagPoints = 40

	DefaultWidth      = 460
	DefaultHeight     = 260
	DefaultFlagWidth  = 450
	DefaultFlagHeight = 250

	DefaultFraudProbability = 0.15

	FraudThreshold      = 0.85
	BorderlineThreshold = 0.65
)

type Band int

const (
	Legitimate Band = iota
	Borderline
	Fraudulent
)

func (b Band) String() string {
	switch b {
	case Fraudulent:
		return "fraudulent"
	case Borderline:
		return "borderline"
	default:
		return "legitimate"
	}
}

// Classify maps a risk score to its band.
func Classify(score float64) Band {
	switch {
	case score > FraudThreshold:
		return Fraudulent
	case score > BorderlineThreshold:
		return Borderline
	default:
		return Legitimate
	}
}

type Point struct {
	ID   string
	X, Y float64
	Risk float64
}

func (p Point) Band() Band { return Classify(p.Risk) }

// FlagPoint is the simpler arena point with a drawn fraud flag.
type FlagPoint struct {
	X, Y  float64
	Fraud bool
}

type Config struct {
	Width, Height         float64
	FlagWidth, FlagHeight float64
	FraudProbability      float64
}

func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		FlagWidth:        DefaultFlagWidth,
		FlagHeight:       DefaultFlagHeight,
		FraudProbability: DefaultFraudProbability,
	}
}

type Sampler struct {
	cfg Config
	rng *rand.Rand
}

// New returns a sampler drawing from rng. Zero config fields take defaults;
// a nil rng is seeded from the global source.
func New(cfg Config, rng *rand.Rand) *Sampler {
	def := DefaultConfig()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.FlagWidth <= 0 || cfg.FlagHeight <= 0 {
		cfg.FlagWidth, cfg.FlagHeight = def.FlagWidth, def.FlagHeight
	}
	if cfg.FraudProbability < 0 || cfg.FraudProbability > 1 {
		cfg.FraudProbability = def.FraudProbability
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Sampler{cfg: cfg, rng: rng}
}

func (s *Sampler) Config() Config { return s.cfg }

// Sample returns exactly n scored points. n <= 0 yields an empty batch.
func (s *Sampler) Sample(n int) []Point {
	if n <= 0 {
		return []Point{}
	}
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{
			ID:   s.shortID(),
			X:    s.rng.Float64() * s.cfg.Width,
			Y:    s.rng.Float64() * s.cfg.Height,
			Risk: s.rng.Float64(),
		}
	}
	return pts
}

// SampleFlags returns exactly n flagged points.
func (s *Sampler) SampleFlags(n int) []FlagPoint {
	if n <= 0 {
		return []FlagPoint{}
	}
	pts := make([]FlagPoint, n)
	for i := range pts {
		pts[i] = FlagPoint{
			X:     s.rng.Float64() * s.cfg.FlagWidth,
			Y:     s.rng.Float64() * s.cfg.FlagHeight,
			Fraud: s.rng.Float64() < s.cfg.FraudProbability,
		}
	}
	return pts
}

func (s *Sampler) shortID() string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		id = uuid.New()
	}
	return id.String()[:8]
}

// Summary counts points per band.
type Summary struct {
	Legitimate int
	Borderline int
	Fraudulent int
}

func (s Summary) Total() int { return s.Legitimate + s.Borderline + s.Fraudulent }

func Summarize(pts []Point) Summary {
	var sum Summary
	for _, p := range pts {
		switch p.Band() {
		case Fraudulent:
			sum.Fraudulent++
		case Borderline:
			sum.Borderline++
		default:
			sum.Legitimate++
		}
	}
	return sum
}

// CountFraud counts flagged points.
func CountFraud(pts []FlagPoint) int {
	n := 0
	for _, p := range pts {
		if p.Fraud {
			n++
		}
	}
	return n
}
