package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/fraudsim/internal/stats"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRootAndHealth(t *testing.T) {
	s := New(Config{Seed: 1})

	rec := get(t, s.Handler(), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	var root map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &root))
	assert.Equal(t, "running", root["status"])
	assert.Equal(t, Banner, root["message"])

	rec = get(t, s.Handler(), "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStatsGrows(t *testing.T) {
	s := New(Config{Seed: 7})

	var prev stats.Snapshot
	for i := 0; i < 5; i++ {
		rec := get(t, s.Handler(), "/stats")
		require.Equal(t, http.StatusOK, rec.Code)

		var snap stats.Snapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
		require.NoError(t, snap.Validate())
		assert.GreaterOrEqual(t, snap.DetectionRate, 0.95)
		assert.LessOrEqual(t, snap.DetectionRate, 0.99)
		if i > 0 {
			assert.Greater(t, snap.TotalTx, prev.TotalTx)
			assert.GreaterOrEqual(t, snap.FraudTx, prev.FraudTx)
		}
		prev = snap
	}
}

func TestStatsFailMode(t *testing.T) {
	s := New(Config{Fail: true})

	rec := get(t, s.Handler(), "/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(Config{Seed: 3})
	get(t, s.Handler(), "/stats")
	get(t, s.Handler(), "/nope")

	rec := get(t, s.Handler(), "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `fraudsim_http_requests_total{method="GET",route="/stats",status="200"} 1`)
	assert.Contains(t, body, `status="404"`)
	assert.Contains(t, body, "fraudsim_stats_total_transactions")
}

func TestSourceAgainstServer(t *testing.T) {
	srv := httptest.NewServer(New(Config{Seed: 5}).Handler())
	t.Cleanup(srv.Close)

	snap := stats.NewSource(srv.URL).Fetch(context.Background())
	assert.NotEqual(t, stats.Fallback(), snap)
	assert.Greater(t, snap.TotalTx, stats.Fallback().TotalTx)

	failing := httptest.NewServer(New(Config{Fail: true}).Handler())
	t.Cleanup(failing.Close)
	assert.Equal(t, stats.Fallback(), stats.NewSource(failing.URL).Fetch(context.Background()))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := New(Config{ShutdownTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, l) }()

	url := "http://" + l.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get(url)
	assert.Error(t, err)
}
