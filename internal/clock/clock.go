package clock

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/fraudsim/internal/logger"
	"github.com/san-kum/fraudsim/internal/variant"
)

const (
	DefaultStep    = 2
	DefaultCeiling = 100
	DefaultPeriod  = 100 * time.Millisecond
)

// CompletionLines are appended once when a run reaches the ceiling.
var CompletionLines = [3]string{
	"[✓] Training complete — Model stabilized.",
	"[✓] Fraud clusters identified — inference layer active.",
	"[✓] System ready for real-time scoring.",
}

type Phase int

const (
	Idle Phase = iota
	Running
	Complete
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Complete:
		return "complete"
	default:
		return "idle"
	}
}

type Config struct {
	Step    int
	Ceiling int
	Period  time.Duration
}

func DefaultConfig() Config {
	return Config{Step: DefaultStep, Ceiling: DefaultCeiling, Period: DefaultPeriod}
}

// State is a snapshot of one run. Log is a copy and safe to keep.
type State struct {
	RunID    string
	Variant  variant.Variant
	Progress int
	Running  bool
	Log      []string
}

// Active reports whether a variant has been selected.
func (s State) Active() bool { return s.Variant.Valid() }

// Fraction is progress as a value in [0,1].
func (s State) Fraction(ceiling int) float64 {
	if ceiling <= 0 {
		return 0
	}
	return float64(s.Progress) / float64(ceiling)
}

// Event describes what a tick did.
type Event struct {
	Advanced  bool
	Completed bool
	Line      string
}

type Option func(*Clock)

// WithNow replaces the wall clock used for log timestamps.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) { c.now = now }
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Clock) { c.log = l }
}

type Clock struct {
	cfg   Config
	now   func() time.Time
	log   *logger.Logger
	state State
}

func New(cfg Config, opts ...Option) *Clock {
	if cfg.Step <= 0 {
		cfg.Step = DefaultStep
	}
	if cfg.Ceiling <= 0 {
		cfg.Ceiling = DefaultCeiling
	}
	if cfg.Period <= 0 {
		cfg.Period = DefaultPeriod
	}
	c := &Clock{
		cfg: cfg,
		now: time.Now,
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Clock) Config() Config { return c.cfg }

// Start abandons any current run and begins a fresh one for v.
func (c *Clock) Start(v variant.Variant) string {
	prev := c.state
	c.state = State{
		RunID:    uuid.NewString(),
		Variant:  v,
		Progress: 0,
		Running:  true,
		Log:      make([]string, 0, c.cfg.Ceiling/c.cfg.Step+len(CompletionLines)),
	}
	fields := []logger.Field{
		logger.String("run_id", c.state.RunID),
		logger.String("variant", v.String()),
	}
	if prev.Running {
		fields = append(fields, logger.String("abandoned_run", prev.RunID), logger.Int("abandoned_at", prev.Progress))
	}
	c.log.Debug("simulation started", fields...)
	return c.state.RunID
}

// Tick advances a running simulation by one step. It is a no-op once the run
// has completed or before any Start.
func (c *Clock) Tick() Event {
	if !c.state.Running {
		return Event{}
	}

	line := fmt.Sprintf("[%s] Training step %d — model optimizing weights...",
		c.now().Format("15:04:05"), c.state.Progress/c.cfg.Step)
	c.state.Log = append(c.state.Log, line)
	c.state.Progress += c.cfg.Step

	ev := Event{Advanced: true, Line: line}
	if c.state.Progress >= c.cfg.Ceiling {
		c.state.Progress = c.cfg.Ceiling
		c.state.Running = false
		c.state.Log = append(c.state.Log, CompletionLines[:]...)
		ev.Completed = true
		c.log.Debug("simulation complete",
			logger.String("run_id", c.state.RunID),
			logger.String("variant", c.state.Variant.String()),
			logger.Int("log_lines", len(c.state.Log)),
		)
	}
	return ev
}

func (c *Clock) Phase() Phase {
	switch {
	case c.state.Running:
		return Running
	case c.state.Active():
		return Complete
	default:
		return Idle
	}
}

// State returns a copy of the current run.
func (c *Clock) State() State {
	s := c.state
	s.Log = append([]string(nil), c.state.Log...)
	return s
}

// Progress, Running and Variant avoid copying the log on hot paths.
func (c *Clock) Progress() int            { return c.state.Progress }
func (c *Clock) Running() bool            { return c.state.Running }
func (c *Clock) Variant() variant.Variant { return c.state.Variant }
func (c *Clock) RunID() string            { return c.state.RunID }

// LogLines returns the log without copying. Callers must not modify it.
func (c *Clock) LogLines() []string { return c.state.Log }

// TicksToComplete is the number of ticks a fresh run needs to finish.
func (c *Clock) TicksToComplete() int {
	return (c.cfg.Ceiling + c.cfg.Step - 1) / c.cfg.Step
}

// Reset returns the clock to Idle, dropping any run.
func (c *Clock) Reset() {
	c.state = State{}
}
