package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private registry so several servers can coexist in tests.
type Recorder struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	inFlight  prometheus.Gauge
	totalTx   prometheus.Gauge
	fraudTx   prometheus.Gauge
	detection prometheus.Gauge
	failures  prometheus.Counter
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fraudsim_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fraudsim_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"route", "method", "class"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fraudsim_http_in_flight_requests",
			Help: "Current number of in-flight HTTP requests",
		}),
		totalTx: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fraudsim_stats_total_transactions",
			Help: "Last served total transaction count",
		}),
		fraudTx: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fraudsim_stats_fraud_transactions",
			Help: "Last served fraudulent transaction count",
		}),
		detection: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fraudsim_stats_detection_rate",
			Help: "Last served detection rate",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fraudsim_stats_flagged_responses_total",
			Help: "Stats responses served with an error field",
		}),
	}
	r.registry.MustRegister(
		r.requests, r.duration, r.inFlight,
		r.totalTx, r.fraudTx, r.detection, r.failures,
		collectors.NewGoCollector(),
	)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) Begin() { r.inFlight.Inc() }

// ObserveRequest closes a request opened with Begin.
func (r *Recorder) ObserveRequest(route, method string, status int, d time.Duration) {
	r.inFlight.Dec()
	r.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(route, method, statusClass(status)).Observe(d.Seconds())
}

func (r *Recorder) ObserveSnapshot(totalTx, fraudTx int, detectionRate float64) {
	r.totalTx.Set(float64(totalTx))
	r.fraudTx.Set(float64(fraudTx))
	r.detection.Set(detectionRate)
}

func (r *Recorder) ObserveFlagged() { r.failures.Inc() }

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	case code >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
