package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/fraudsim/internal/analytics"
	"github.com/san-kum/fraudsim/internal/clock"
	"github.com/san-kum/fraudsim/internal/config"
	"github.com/san-kum/fraudsim/internal/export"
	"github.com/san-kum/fraudsim/internal/logger"
	"github.com/san-kum/fraudsim/internal/metrics"
	"github.com/san-kum/fraudsim/internal/render"
	"github.com/san-kum/fraudsim/internal/sampler"
	"github.com/san-kum/fraudsim/internal/server"
	"github.com/san-kum/fraudsim/internal/stats"
	"github.com/san-kum/fraudsim/internal/tui"
	"github.com/san-kum/fraudsim/internal/variant"
	"github.com/san-kum/fraudsim/internal/viz"
)

var (
	// global
	configFile string
	statsURL   string
	logLevel   string
	logFormat  string
	logOutput  string
	theme      string
	preset     string
	seed       int64

	// run
	live      bool
	exportDir string

	// render
	frame     int
	svgFile   string
	svgScale  float64
	renderCol int
	renderRow int

	// stats
	asJSON bool

	// serve
	addr string
	fail bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "fraudsim",
		Short:        "simulated fraud-detection dashboard",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, viz.Playground, nil)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&statsURL, "stats-url", stats.DefaultBaseURL, "base url of the stats endpoint")
	pf.StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "console", "log format (json, console)")
	pf.StringVar(&logOutput, "log-output", "stderr", "log output (stdout, stderr, discard or a file path)")
	pf.StringVar(&theme, "theme", viz.ThemeNeon.Name, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.StringVar(&preset, "preset", "", "pacing preset ("+strings.Join(config.ListPresets(), ", ")+")")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")

	playCmd := &cobra.Command{
		Use:   "play [variant]",
		Short: "open the playground and start a run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{""}
			}
			return runInteractive(cmd, viz.Playground, args)
		},
	}

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "open the stats dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, viz.Dashboard, nil)
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "open the model comparison view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, viz.Compare, nil)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [variant]",
		Short: "run one simulation without the interactive ui",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&live, "live", false, "redraw the canvas in place")
	runCmd.Flags().StringVar(&exportDir, "export", "", "write arena.svg and loss.svg to this directory")

	renderCmd := &cobra.Command{
		Use:   "render [variant]",
		Short: "render a single animation frame",
		Args:  cobra.ExactArgs(1),
		RunE:  renderFrame,
	}
	renderCmd.Flags().IntVar(&frame, "frame", 0, "frame number")
	renderCmd.Flags().StringVar(&svgFile, "svg", "", "write the frame as svg instead of printing it")
	renderCmd.Flags().Float64Var(&svgScale, "scale", 4, "svg pixels per dot")
	renderCmd.Flags().IntVar(&renderCol, "width", 70, "canvas width in cells")
	renderCmd.Flags().IntVar(&renderRow, "height", 18, "canvas height in cells")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "fetch the stats snapshot once",
		Args:  cobra.NoArgs,
		RunE:  fetchStats,
	}
	statsCmd.Flags().BoolVar(&asJSON, "json", false, "print json")

	variantsCmd := &cobra.Command{
		Use:   "variants",
		Short: "list model variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TAG\tNAME\tFAMILY\tDESCRIPTION")
			for _, v := range variant.All() {
				info := v.Info()
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Tag, info.Name, info.Family, info.Description)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list pacing presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTEP\tPERIOD\tFPS\tINSIGHT\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\t%s\n",
					name,
					p.Simulation.Step,
					p.Simulation.Period,
					p.Simulation.FPS,
					p.Insight.Interval,
					p.Description,
				)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "print the effective config, or save it to path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := config.Save(args[0], cfg); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", args[0])
				return nil
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "start the mock stats server",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8000", "listen address")
	serveCmd.Flags().BoolVar(&fail, "fail", false, "answer /stats with an error payload")

	rootCmd.AddCommand(playCmd, dashboardCmd, compareCmd, runCmd, renderCmd, statsCmd, variantsCmd, presetsCmd, configCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers the config file, the preset and changed flags over the
// defaults, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
	}

	flags := cmd.Flags()
	if flags.Changed("stats-url") {
		cfg.Stats.BaseURL = statsURL
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Changed("log-output") {
		cfg.Log.Output = logOutput
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = addr
	}
	if flags.Changed("fail") {
		cfg.Server.Fail = fail
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

func newRand(cfg *config.Config) *rand.Rand {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func newSource(cfg *config.Config, log *logger.Logger) *stats.Source {
	return stats.NewSource(cfg.Stats.BaseURL,
		stats.WithClient(stats.NewClient(stats.WithTimeout(cfg.Stats.Timeout))),
		stats.WithLogger(log.With(logger.String("component", "stats"))),
	)
}

func pickVariant(cfg *config.Config, args []string) (variant.Variant, error) {
	name := cfg.Variant
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return variant.LogisticRegression, nil
	}
	v, err := variant.Parse(name)
	if err != nil {
		return variant.None, fmt.Errorf("%w (available: %s)", err, strings.Join(variant.Names(), ", "))
	}
	return v, nil
}

// runInteractive opens the dashboard on view. A non-nil args starts a run
// at once; an empty name falls back to the configured variant.
func runInteractive(cmd *cobra.Command, view viz.View, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	start := variant.None
	if args != nil {
		if args[0] == "" {
			args = nil
		}
		if start, err = pickVariant(cfg, args); err != nil {
			return err
		}
	}
	// the alt screen owns the terminal; only a log file survives
	switch cfg.Log.Output {
	case "", "stdout", "stderr":
		cfg.Log.Output = "discard"
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	return viz.Run(viz.Options{
		Config:       cfg,
		Stats:        newSource(cfg, log),
		Logger:       log,
		StartView:    view,
		StartVariant: start,
		Rand:         newRand(cfg),
	})
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	v, err := pickVariant(cfg, args)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	runner := tui.NewRunner(tui.Config{
		Variant: v,
		Clock: clock.Config{
			Step:    cfg.Simulation.Step,
			Ceiling: cfg.Simulation.Ceiling,
			Period:  cfg.Simulation.Period,
		},
		FPS:    cfg.Simulation.FPS,
		Points: cfg.Arena.Points,
		Flags:  cfg.Arena.FlagPoints,
		Arena: sampler.Config{
			Width:            cfg.Arena.Width,
			Height:           cfg.Arena.Height,
			FraudProbability: cfg.Arena.FraudProbability,
		},
		Live: live,
	}, out, tui.WithLogger(log), tui.WithRand(newRand(cfg)))

	res, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("run %s: %w", v, err)
	}
	tui.WriteSummary(out, res)

	if exportDir != "" {
		if err := os.MkdirAll(exportDir, 0755); err != nil {
			return err
		}
		files := map[string]string{
			"arena.svg": export.ArenaToSVG(res.Points, cfg.Arena.Width, cfg.Arena.Height),
			"loss.svg":  export.SeriesToSVG(analytics.LossSeries(res.Loss), 600, 300, v.Info().Accent),
		}
		for name, svg := range files {
			path := filepath.Join(exportDir, name)
			if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
				return err
			}
			fmt.Fprintf(out, "exported to %s\n", path)
		}
	}
	return nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	v, err := variant.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(variant.Names(), ", "))
	}
	if renderCol <= 0 || renderRow <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", renderCol, renderRow)
	}

	canvas := render.NewCanvas(renderCol, renderRow)
	render.NewRenderer(newRand(cfg)).Render(canvas, v, frame)

	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(export.CanvasToSVG(canvas, svgScale)), 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", svgFile)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s  frame %d\n", v.Name(), frame)
	fmt.Fprint(cmd.OutOrStdout(), canvas.String())
	return nil
}

func fetchStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := newSource(cfg, log)
	snap := src.Fetch(ctx)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Endpoint\t%s\n", src.Endpoint())
	fmt.Fprintf(w, "Total Transactions\t%s\n", viz.FormatCount(snap.TotalTx))
	fmt.Fprintf(w, "Fraudulent Cases\t%s\n", viz.FormatCount(snap.FraudTx))
	fmt.Fprintf(w, "Detection Accuracy\t%.1f%%\n", snap.Accuracy())
	fmt.Fprintf(w, "Avg. Latency\t%v ms\n", snap.AvgLatency)
	return w.Flush()
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Addr:            cfg.Server.Addr,
		Fail:            cfg.Server.Fail,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Seed:            cfg.Seed,
	}, server.WithLogger(log), server.WithRecorder(metrics.NewRecorder()))

	fmt.Fprintf(cmd.OutOrStdout(), "%s\nlistening on %s (Ctrl+C to stop)\n", server.Banner, srv.Addr())
	return srv.ListenAndServe(ctx)
}
