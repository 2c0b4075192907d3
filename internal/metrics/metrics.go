// Package metrics measures simulation pacing for the headless runner and
// records Prometheus series for the mock stats server.
package metrics

import "time"

// Metric observes one sample per simulation tick.
type Metric interface {
	Name() string
	Observe(progress int, at time.Duration)
	Value() float64
	Reset()
}

// Jitter is the mean absolute deviation of tick intervals from the nominal
// period, in milliseconds.
type Jitter struct {
	name    string
	period  time.Duration
	last    time.Duration
	sum     float64
	samples int
	started bool
}

func NewJitter(period time.Duration) *Jitter {
	return &Jitter{
		name:   "tick_jitter_ms",
		period: period,
	}
}

func (j *Jitter) Name() string {
	return j.name
}

func (j *Jitter) Observe(_ int, at time.Duration) {
	if !j.started {
		j.started = true
		j.last = at
		return
	}
	dev := at - j.last - j.period
	if dev < 0 {
		dev = -dev
	}
	j.sum += float64(dev) / float64(time.Millisecond)
	j.samples++
	j.last = at
}

func (j *Jitter) Value() float64 {
	if j.samples == 0 {
		return 0
	}
	return j.sum / float64(j.samples)
}

func (j *Jitter) Reset() {
	j.sum = 0
	j.samples = 0
	j.started = false
}

// Throughput is progress points gained per second of wall time.
type Throughput struct {
	name     string
	progress int
	at       time.Duration
}

func NewThroughput() *Throughput {
	return &Throughput{name: "progress_per_sec"}
}

func (t *Throughput) Name() string { return t.name }

func (t *Throughput) Observe(progress int, at time.Duration) {
	t.progress = progress
	t.at = at
}

func (t *Throughput) Value() float64 {
	if t.at <= 0 {
		return 0
	}
	return float64(t.progress) / t.at.Seconds()
}

func (t *Throughput) Reset() {
	t.progress = 0
	t.at = 0
}

// Steadiness is the share of tick intervals within tolerance of the period.
type Steadiness struct {
	name       string
	period     time.Duration
	tolerance  time.Duration
	last       time.Duration
	violations int
	samples    int
	started    bool
}

func NewSteadiness(period, tolerance time.Duration) *Steadiness {
	return &Steadiness{
		name:      "steadiness",
		period:    period,
		tolerance: tolerance,
	}
}

func (s *Steadiness) Name() string {
	return s.name
}

func (s *Steadiness) Observe(_ int, at time.Duration) {
	if !s.started {
		s.started = true
		s.last = at
		return
	}
	s.samples++
	dev := at - s.last - s.period
	if dev < -s.tolerance || dev > s.tolerance {
		s.violations++
	}
	s.last = at
}

func (s *Steadiness) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Steadiness) Reset() {
	s.violations = 0
	s.samples = 0
	s.started = false
}

// Pacing returns the default set observed by the headless runner.
func Pacing(period time.Duration) []Metric {
	return []Metric{
		NewJitter(period),
		NewThroughput(),
		NewSteadiness(period, period/4),
	}
}
