// Package server is a local stand-in for the stats endpoint the dashboard
// reads. It serves a growing pseudo-random snapshot plus health and
// Prometheus routes.
package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/san-kum/fraudsim/internal/logger"
	"github.com/san-kum/fraudsim/internal/metrics"
	"github.com/san-kum/fraudsim/internal/stats"
)

const Banner = "🚀 Fraud Detection API powered by XGBoost (ML layer)"

type Config struct {
	Addr            string
	Fail            bool
	ShutdownTimeout time.Duration
	Seed            int64
}

// Option configures Server.
type Option func(*Server)

func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

func WithRecorder(r *metrics.Recorder) Option {
	return func(s *Server) { s.rec = r }
}

type Server struct {
	cfg  Config
	echo *echo.Echo
	log  *logger.Logger
	rec  *metrics.Recorder

	mu       sync.Mutex
	rng      *rand.Rand
	snapshot stats.Snapshot
}

func New(cfg Config, opts ...Option) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Server{
		cfg:      cfg,
		log:      logger.Nop(),
		rng:      rand.New(rand.NewSource(seed)),
		snapshot: stats.Fallback(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rec == nil {
		s.rec = metrics.NewRecorder()
	}
	s.log = s.log.With(logger.String("component", "server"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(s.requestLogging())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	e.GET("/", s.handleRoot)
	e.GET("/health", s.handleHealth)
	e.GET(stats.Path, s.handleStats)
	e.GET("/metrics", echo.WrapHandler(s.rec.Handler()))

	s.echo = e
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.echo }

func (s *Server) Addr() string { return s.cfg.Addr }

// Serve accepts on l until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	s.echo.Listener = l
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("stats server listening",
			logger.String("addr", l.Addr().String()),
			logger.Bool("fail", s.cfg.Fail),
		)
		errCh <- s.echo.Start("")
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	s.log.Info("stats server stopped gracefully")
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, l)
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "running",
		"message": Banner,
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(c echo.Context) error {
	if s.cfg.Fail {
		s.rec.ObserveFlagged()
		return c.JSON(http.StatusOK, map[string]string{"error": "stats backend unavailable"})
	}
	snap := s.next()
	if err := snap.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "invalid snapshot").SetInternal(err)
	}
	s.rec.ObserveSnapshot(snap.TotalTx, snap.FraudTx, snap.DetectionRate)
	return c.JSON(http.StatusOK, snap)
}

// next grows the counters and redraws rate and latency.
func (s *Server) next() stats.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.TotalTx += 50 + s.rng.Intn(450)
	s.snapshot.FraudTx += s.rng.Intn(6)
	s.snapshot.DetectionRate = 0.95 + s.rng.Float64()*0.04
	s.snapshot.AvgLatency = float64(60 + s.rng.Intn(50))
	return s.snapshot
}
