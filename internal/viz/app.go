package viz

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fraudsim/internal/analytics"
	"github.com/san-kum/fraudsim/internal/clock"
	"github.com/san-kum/fraudsim/internal/config"
	"github.com/san-kum/fraudsim/internal/insight"
	"github.com/san-kum/fraudsim/internal/logger"
	"github.com/san-kum/fraudsim/internal/render"
	"github.com/san-kum/fraudsim/internal/sampler"
	"github.com/san-kum/fraudsim/internal/stats"
	"github.com/san-kum/fraudsim/internal/variant"
)

type View int

const (
	Playground View = iota
	Dashboard
	Compare
	viewCount
)

func (v View) String() string {
	switch v {
	case Dashboard:
		return "Dashboard"
	case Compare:
		return "Compare"
	default:
		return "Playground"
	}
}

// StatsFetcher is satisfied by *stats.Source.
type StatsFetcher interface {
	Fetch(ctx context.Context) stats.Snapshot
}

type Options struct {
	Config       *config.Config
	Stats        StatsFetcher
	Logger       *logger.Logger
	StartView    View
	StartVariant variant.Variant
	Rand         *rand.Rand
}

// tick messages carry the generation of the loop that scheduled them.
type (
	frameMsg   struct{ gen int }
	simTickMsg struct{ gen int }
	insightMsg struct{ gen int }
	statsMsg   struct{ snap stats.Snapshot }
)

const (
	minCanvasCols = 40
	maxCanvasCols = 96
	canvasRows    = 14
	arenaRows     = 12
	logRows       = 6
)

type App struct {
	cfg   *config.Config
	log   *logger.Logger
	keys  keyMap
	help  help.Model
	theme Theme
	st    styles

	width, height int
	view          View
	initCmd       tea.Cmd

	// playground
	clock    *clock.Clock
	renderer *render.Renderer
	sampler  *sampler.Sampler
	rng      *rand.Rand
	canvas   *render.Canvas
	arena    *render.Canvas
	bar      progress.Model
	logView  viewport.Model
	cursor   int
	frame    int
	frameGen int
	simGen   int
	loss     []analytics.LossPoint
	points   []sampler.Point
	flags    []sampler.FlagPoint

	// dashboard
	source     StatsFetcher
	snapshot   stats.Snapshot
	fetching   bool
	fetches    int
	insights   *insight.Rotator
	insightGen int
	grid       [][]analytics.RiskCell

	// compare
	training []analytics.TrainingPoint
}

func New(opts Options) App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	theme := GetTheme(cfg.Theme)
	a := App{
		cfg:   cfg,
		log:   log,
		keys:  defaultKeyMap(),
		help:  help.New(),
		theme: theme,
		st:    newStyles(theme),
		view:  Playground,
		clock: clock.New(clock.Config{
			Step:    cfg.Simulation.Step,
			Ceiling: cfg.Simulation.Ceiling,
			Period:  cfg.Simulation.Period,
		}, clock.WithLogger(log)),
		renderer: render.NewRenderer(rng),
		sampler: sampler.New(sampler.Config{
			Width:            cfg.Arena.Width,
			Height:           cfg.Arena.Height,
			FraudProbability: cfg.Arena.FraudProbability,
		}, rng),
		rng:      rng,
		source:   opts.Stats,
		insights: insight.New(nil),
	}
	a.resize(100, 40)

	var cmds []tea.Cmd
	if opts.StartView != Playground {
		cmds = append(cmds, a.switchView(opts.StartView))
	}
	if opts.StartVariant.Valid() {
		if a.view != Playground {
			cmds = append(cmds, a.switchView(Playground))
		}
		cmds = append(cmds, a.startRun(opts.StartVariant))
	}
	a.initCmd = tea.Batch(cmds...)
	return a
}

func (a App) Init() tea.Cmd { return a.initCmd }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case frameMsg:
		if msg.gen != a.frameGen || a.view != Playground || !a.clock.Variant().Valid() {
			return a, nil
		}
		a.frame++
		a.renderer.Render(a.canvas, a.clock.Variant(), a.frame)
		return a, a.frameTick()

	case simTickMsg:
		if msg.gen != a.simGen || a.view != Playground {
			return a, nil
		}
		ev := a.clock.Tick()
		if !ev.Advanced {
			return a, nil
		}
		a.syncLog()
		if ev.Completed {
			a.points = a.sampler.Sample(a.cfg.Arena.Points)
			a.flags = a.sampler.SampleFlags(a.cfg.Arena.FlagPoints)
			a.drawArena()
			sum := sampler.Summarize(a.points)
			a.log.Info("arena sampled",
				logger.String("run_id", a.clock.RunID()),
				logger.Int("points", sum.Total()),
				logger.Int("fraudulent", sum.Fraudulent),
				logger.Int("flagged", sampler.CountFraud(a.flags)),
			)
			return a, nil
		}
		return a, a.simTick()

	case insightMsg:
		if msg.gen != a.insightGen || a.view != Dashboard {
			return a, nil
		}
		a.insights.Advance()
		a.grid = analytics.RiskGrid(a.rng, analytics.GridSize)
		return a, a.insightTick()

	case statsMsg:
		a.snapshot = msg.snap
		a.fetching = false
		return a, nil
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case key.Matches(msg, a.keys.Theme):
		a.theme = NextTheme(a.theme.Name)
		a.st = newStyles(a.theme)
		a.bar = a.newBar(a.bar.Width)
		if len(a.points) > 0 {
			a.drawArena()
		}
		a.syncLog()
		return a, nil
	case key.Matches(msg, a.keys.NextView):
		return a, a.switchView((a.view + 1) % viewCount)
	case key.Matches(msg, a.keys.PrevView):
		return a, a.switchView((a.view + viewCount - 1) % viewCount)
	case key.Matches(msg, a.keys.Playground):
		return a, a.switchView(Playground)
	case key.Matches(msg, a.keys.Dashboard):
		return a, a.switchView(Dashboard)
	case key.Matches(msg, a.keys.Compare):
		return a, a.switchView(Compare)
	}

	if a.view != Playground {
		return a, nil
	}
	all := variant.All()
	switch {
	case key.Matches(msg, a.keys.Left):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Right):
		if a.cursor < len(all)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Run):
		return a, a.startRun(all[a.cursor])
	case key.Matches(msg, a.keys.ScrollUp):
		a.logView.LineUp(1)
	case key.Matches(msg, a.keys.ScrollDown):
		a.logView.LineDown(1)
	}
	return a, nil
}

// switchView unmounts the current view and mounts target.
func (a *App) switchView(target View) tea.Cmd {
	if target == a.view {
		return nil
	}
	a.unmount()
	a.view = target
	return a.mount()
}

func (a *App) unmount() {
	switch a.view {
	case Playground:
		a.frameGen++
		a.simGen++
		a.clock.Reset()
		a.frame = 0
		a.loss = nil
		a.points = nil
		a.flags = nil
		a.canvas.Clear()
		a.arena.Clear()
		a.logView.SetContent("")
	case Dashboard:
		a.insightGen++
	}
}

func (a *App) mount() tea.Cmd {
	if a.view == Compare {
		a.training = analytics.TrainingCurve(a.rng, analytics.TrainingSteps)
		return nil
	}
	if a.view != Dashboard {
		return nil
	}
	a.snapshot = stats.Snapshot{}
	a.insights.Reset()
	a.grid = analytics.RiskGrid(a.rng, analytics.GridSize)
	a.insightGen++
	cmds := []tea.Cmd{a.insightTick()}
	if !a.fetching && a.source != nil {
		a.fetching = true
		a.fetches++
		cmds = append(cmds, fetchStats(a.source))
	}
	return tea.Batch(cmds...)
}

// startRun begins a run of v. Re-selecting the variant that is already
// running is ignored; any other selection abandons the current run.
func (a *App) startRun(v variant.Variant) tea.Cmd {
	if !v.Valid() {
		return nil
	}
	if a.clock.Running() && a.clock.Variant() == v {
		return nil
	}
	for i, w := range variant.All() {
		if w == v {
			a.cursor = i
		}
	}
	a.clock.Start(v)
	a.frame = 0
	a.points = nil
	a.flags = nil
	a.arena.Clear()
	a.loss = analytics.LossCurve(a.rng, analytics.DefaultEpochs)
	a.syncLog()
	a.renderer.Render(a.canvas, v, a.frame)
	a.frameGen++
	a.simGen++
	return tea.Batch(a.frameTick(), a.simTick())
}

func (a *App) syncLog() {
	a.logView.SetContent(a.st.log.Render(strings.Join(a.clock.LogLines(), "\n")))
	a.logView.GotoBottom()
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	a.help.Width = w

	cols := w - 8
	if cols > maxCanvasCols {
		cols = maxCanvasCols
	}
	if cols < minCanvasCols {
		cols = minCanvasCols
	}
	if a.canvas != nil && a.canvas.Width == cols {
		return
	}

	a.canvas = render.NewCanvas(cols, canvasRows)
	a.arena = render.NewCanvas(cols, arenaRows)
	a.arena.SetLogicalSize(a.cfg.Arena.Width, a.cfg.Arena.Height)
	a.bar = a.newBar(cols)
	a.logView = viewport.New(cols, logRows)

	if v := a.clock.Variant(); v.Valid() {
		a.renderer.Render(a.canvas, v, a.frame)
		a.syncLog()
	}
	if len(a.points) > 0 {
		a.drawArena()
	}
}

func (a *App) newBar(width int) progress.Model {
	return progress.New(
		progress.WithGradient(string(a.theme.Primary), string(a.theme.Secondary)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
}

func (a App) frameTick() tea.Cmd {
	gen := a.frameGen
	return tea.Tick(a.cfg.FrameInterval(), func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

func (a App) simTick() tea.Cmd {
	gen := a.simGen
	return tea.Tick(a.cfg.Simulation.Period, func(time.Time) tea.Msg { return simTickMsg{gen: gen} })
}

func (a App) insightTick() tea.Cmd {
	gen := a.insightGen
	return tea.Tick(a.cfg.Insight.Interval, func(time.Time) tea.Msg { return insightMsg{gen: gen} })
}

// fetchStats has no deadline of its own; the source's client timeout bounds it.
func fetchStats(src StatsFetcher) tea.Cmd {
	return func() tea.Msg {
		return statsMsg{snap: src.Fetch(context.Background())}
	}
}

func (a App) View() string {
	var body string
	switch a.view {
	case Dashboard:
		body = a.viewDashboard()
	case Compare:
		body = a.viewCompare()
	default:
		body = a.viewPlayground()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.viewHeader(),
		body,
		"",
		a.help.View(a.keys),
	)
}

func (a App) viewHeader() string {
	title := GradientText("◆ FRAUDSIM", a.theme.Primary, a.theme.Accent)

	tabs := make([]string, 0, int(viewCount))
	for v := Playground; v < viewCount; v++ {
		label := v.String()
		if v == a.view {
			tabs = append(tabs, a.st.tabActive.Render(label))
		} else {
			tabs = append(tabs, a.st.tabInactive.Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, title, "   ", lipgloss.JoinHorizontal(lipgloss.Top, tabs...)),
		Separator(a.width-2, a.st),
	)
}

// Run starts the interactive dashboard and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
