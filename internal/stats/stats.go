// Package stats fetches the dashboard's headline counters from the stats
// endpoint, substituting a fixed snapshot whenever the fetch fails.
package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/san-kum/fraudsim/internal/logger"
)

const (
	DefaultBaseURL = "http://127.0.0.1:8000"
	Path           = "/stats"
)

// ErrFlagged is reported when the payload carries an error field.
var ErrFlagged = errors.New("stats: payload flagged error")

var validate = validator.New()

type Snapshot struct {
	TotalTx       int     `json:"totalTx" validate:"gte=0"`
	FraudTx       int     `json:"fraudTx" validate:"gte=0"`
	DetectionRate float64 `json:"detectionRate" validate:"gte=0,lte=1"`
	AvgLatency    float64 `json:"avgLatency" validate:"gte=0"`
}

// Fallback is shown whenever the endpoint cannot be read.
func Fallback() Snapshot {
	return Snapshot{
		TotalTx:       105000,
		FraudTx:       892,
		DetectionRate: 0.982,
		AvgLatency:    85,
	}
}

// Accuracy is the detection rate as a percentage.
func (s Snapshot) Accuracy() float64 { return s.DetectionRate * 100 }

func (s Snapshot) Validate() error {
	return validate.Struct(s)
}

// payload mirrors Snapshot with every counter required, so a null body or
// one with missing or misnamed keys is rejected instead of read as zeros.
// Counts must be JSON integers.
type payload struct {
	TotalTx       *int            `json:"totalTx" validate:"required,gte=0"`
	FraudTx       *int            `json:"fraudTx" validate:"required,gte=0"`
	DetectionRate *float64        `json:"detectionRate" validate:"required,gte=0,lte=1"`
	AvgLatency    *float64        `json:"avgLatency" validate:"required,gte=0"`
	Error         json.RawMessage `json:"error,omitempty"`
}

func (p payload) snapshot() Snapshot {
	return Snapshot{
		TotalTx:       *p.TotalTx,
		FraudTx:       *p.FraudTx,
		DetectionRate: *p.DetectionRate,
		AvgLatency:    *p.AvgLatency,
	}
}

type Source struct {
	baseURL string
	client  *Client
	log     *logger.Logger
	now     func() time.Time
}

type Option func(*Source)

func WithClient(c *Client) Option {
	return func(s *Source) { s.client = c }
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Source) { s.log = l }
}

// NewSource reads from baseURL, or DefaultBaseURL when empty.
func NewSource(baseURL string, opts ...Option) *Source {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	s := &Source{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     logger.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = NewClient()
	}
	return s
}

func (s *Source) Endpoint() string { return s.baseURL + Path }

// Fetch issues one GET and returns the snapshot, or Fallback on any failure.
// The failure is only logged.
func (s *Source) Fetch(ctx context.Context) Snapshot {
	start := s.now()
	snap, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn("stats unavailable, using fallback",
			logger.String("endpoint", s.Endpoint()),
			logger.Duration("elapsed_ms", s.now().Sub(start)),
			logger.Error(err),
		)
		return Fallback()
	}
	s.log.Debug("stats fetched",
		logger.String("endpoint", s.Endpoint()),
		logger.Int("total_tx", snap.TotalTx),
	)
	return snap
}

func (s *Source) fetch(ctx context.Context) (Snapshot, error) {
	var p payload
	err := s.client.SendAndParse(ctx, &RequestOptions{URL: s.Endpoint()}, &p)
	if err != nil {
		return Snapshot{}, err
	}
	if raw := bytes.TrimSpace(p.Error); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrFlagged, raw)
	}
	if err := validate.Struct(p); err != nil {
		return Snapshot{}, fmt.Errorf("validate: %w", err)
	}
	return p.snapshot(), nil
}
