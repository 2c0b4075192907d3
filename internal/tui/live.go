// Package tui is the plain ANSI runner used when no interactive terminal is
// wanted: it drives one simulated training run and streams it to a writer.
package tui

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fraudsim/internal/analytics"
	"github.com/san-kum/fraudsim/internal/clock"
	"github.com/san-kum/fraudsim/internal/logger"
	"github.com/san-kum/fraudsim/internal/metrics"
	"github.com/san-kum/fraudsim/internal/render"
	"github.com/san-kum/fraudsim/internal/sampler"
	"github.com/san-kum/fraudsim/internal/variant"
)

const (
	width       = 70
	height      = 18
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

type Config struct {
	Variant variant.Variant
	Clock   clock.Config
	FPS     int
	Points  int
	Flags   int
	Arena   sampler.Config
	// Live redraws the canvas in place on every frame instead of streaming
	// log lines.
	Live bool
}

// Result is what a finished (or interrupted) run produced.
type Result struct {
	RunID     string
	Variant   variant.Variant
	Completed bool
	Log       []string
	Points    []sampler.Point
	Flags     []sampler.FlagPoint
	Summary   sampler.Summary
	Loss      []analytics.LossPoint
	Frames    int
	Elapsed   time.Duration
	Metrics   map[string]float64
}

type Option func(*Runner)

func WithLogger(l *logger.Logger) Option {
	return func(r *Runner) { r.log = l }
}

func WithRand(rng *rand.Rand) Option {
	return func(r *Runner) { r.rng = rng }
}

// WithMetrics replaces the default pacing metrics.
func WithMetrics(ms ...metrics.Metric) Option {
	return func(r *Runner) { r.metrics = ms }
}

type Runner struct {
	cfg      Config
	out      io.Writer
	log      *logger.Logger
	rng      *rand.Rand
	clock    *clock.Clock
	renderer *render.Renderer
	sampler  *sampler.Sampler
	canvas   *render.Canvas
	metrics  []metrics.Metric
	frame    int

	stop     chan struct{}
	stopOnce sync.Once
}

func NewRunner(cfg Config, out io.Writer, opts ...Option) *Runner {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	if cfg.Points < 0 {
		cfg.Points = 0
	}
	if cfg.Flags < 0 {
		cfg.Flags = 0
	}
	r := &Runner{
		cfg:  cfg,
		out:  out,
		log:  logger.Nop(),
		stop: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r.log = r.log.With(logger.String("component", "runner"))
	r.clock = clock.New(cfg.Clock, clock.WithLogger(r.log))
	r.renderer = render.NewRenderer(r.rng)
	r.sampler = sampler.New(cfg.Arena, r.rng)
	r.canvas = render.NewCanvas(width, height)
	if r.metrics == nil {
		r.metrics = metrics.Pacing(r.clock.Config().Period)
	}
	return r
}

// Stop ends Run early. It is safe to call more than once and from any
// goroutine.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// Run drives the clock until the run completes, ctx is done or Stop is
// called. Both tickers are released before it returns.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	v := r.cfg.Variant
	if !v.Valid() {
		return Result{}, fmt.Errorf("run: %w", variant.ErrUnknown)
	}

	r.clock.Start(v)
	r.frame = 0
	for _, m := range r.metrics {
		m.Reset()
	}
	loss := analytics.LossCurve(r.rng, analytics.DefaultEpochs)
	start := time.Now()

	simTicker := time.NewTicker(r.clock.Config().Period)
	defer simTicker.Stop()

	var frames <-chan time.Time
	if r.cfg.Live {
		frameTicker := time.NewTicker(time.Second / time.Duration(r.cfg.FPS))
		defer frameTicker.Stop()
		frames = frameTicker.C
		fmt.Fprint(r.out, hideCursor)
		defer fmt.Fprint(r.out, showCursor)
		r.draw()
	} else {
		fmt.Fprintf(r.out, "%s: %s\n", v.Name(), v.Info().Description)
	}

	r.log.Info("headless run started",
		logger.String("run_id", r.clock.RunID()),
		logger.String("variant", v.String()),
		logger.Bool("live", r.cfg.Live),
	)

	for {
		select {
		case <-ctx.Done():
			res := r.result(loss, start)
			r.log.Info("headless run interrupted",
				logger.String("run_id", res.RunID),
				logger.Int("progress", r.clock.Progress()),
			)
			return res, ctx.Err()

		case <-r.stop:
			return r.result(loss, start), nil

		case <-frames:
			r.frame++
			r.draw()

		case <-simTicker.C:
			ev := r.clock.Tick()
			at := time.Since(start)
			for _, m := range r.metrics {
				m.Observe(r.clock.Progress(), at)
			}
			if !r.cfg.Live {
				fmt.Fprintln(r.out, ev.Line)
			}
			if !ev.Completed {
				continue
			}
			if !r.cfg.Live {
				for _, line := range clock.CompletionLines {
					fmt.Fprintln(r.out, line)
				}
			}
			res := r.result(loss, start)
			res.Points = r.sampler.Sample(r.cfg.Points)
			res.Flags = r.sampler.SampleFlags(r.cfg.Flags)
			res.Summary = sampler.Summarize(res.Points)
			if r.cfg.Live {
				r.draw()
			}
			r.log.Info("headless run complete",
				logger.String("run_id", res.RunID),
				logger.Duration("elapsed", res.Elapsed),
				logger.Int("fraudulent", res.Summary.Fraudulent),
			)
			return res, nil
		}
	}
}

func (r *Runner) result(loss []analytics.LossPoint, start time.Time) Result {
	st := r.clock.State()
	res := Result{
		RunID:     st.RunID,
		Variant:   st.Variant,
		Completed: !st.Running && st.Progress >= r.clock.Config().Ceiling,
		Log:       st.Log,
		Loss:      loss,
		Frames:    r.frame,
		Elapsed:   time.Since(start),
		Metrics:   make(map[string]float64, len(r.metrics)),
	}
	for _, m := range r.metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res
}

func (r *Runner) draw() {
	r.renderer.Render(r.canvas, r.clock.Variant(), r.frame)

	ceiling := r.clock.Config().Ceiling
	progress := r.clock.Progress()
	filled := progress * width / ceiling

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  %3d%%\n", r.clock.Variant().Name(), progress*100/ceiling))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	for _, row := range strings.Split(strings.TrimRight(r.canvas.String(), "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString("  " + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "\n")
	if lines := r.clock.LogLines(); len(lines) > 0 {
		b.WriteString("  " + lines[len(lines)-1] + "\n")
	}

	fmt.Fprint(r.out, b.String())
}

// WriteSummary prints the arena counts, the loss chart and pacing metrics
// of a finished run.
func WriteSummary(w io.Writer, res Result) {
	fmt.Fprintf(w, "\nFraud Detection Arena — %s\n", res.Variant.Name())
	fmt.Fprintf(w, "  legitimate %d | borderline %d | fraudulent %d (of %d)\n",
		res.Summary.Legitimate, res.Summary.Borderline, res.Summary.Fraudulent, res.Summary.Total())
	if len(res.Flags) > 0 {
		fmt.Fprintf(w, "  live stream: %d of %d transactions flagged\n", sampler.CountFraud(res.Flags), len(res.Flags))
	}

	if len(res.Loss) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, asciigraph.Plot(analytics.LossSeries(res.Loss),
			asciigraph.Height(8),
			asciigraph.Width(width-10),
			asciigraph.Precision(2),
			asciigraph.Caption("Loss Convergence"),
		))
	}

	if len(res.Metrics) > 0 {
		fmt.Fprintln(w)
		for _, name := range []string{"tick_jitter_ms", "progress_per_sec", "steadiness"} {
			if v, ok := res.Metrics[name]; ok {
				fmt.Fprintf(w, "  %-18s %.3f\n", name, v)
			}
		}
	}
	fmt.Fprintf(w, "  %-18s %s\n", "elapsed", res.Elapsed.Round(time.Millisecond))
}
