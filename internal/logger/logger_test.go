package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(&Config{Level: "loud", Output: "discard"}); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestNew_Discard(t *testing.T) {
	l, err := New(&Config{Level: "debug", Format: "json", Output: "discard"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.Info("dropped", String("k", "v"))
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	l := FromWriter(&buf, zerolog.DebugLevel)

	l.Warn("stats fetch failed",
		String("url", "http://127.0.0.1:8000/stats"),
		Int("attempt", 1),
		Float("rate", 0.5),
		Bool("fallback", true),
		Duration("elapsed", 1500*time.Millisecond),
		Error(errors.New("connection refused")),
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if entry["level"] != "warn" {
		t.Errorf("expected level warn, got %v", entry["level"])
	}
	if entry["url"] != "http://127.0.0.1:8000/stats" {
		t.Errorf("unexpected url field: %v", entry["url"])
	}
	if entry["elapsed"] != float64(1500) {
		t.Errorf("expected elapsed 1500ms, got %v", entry["elapsed"])
	}
	if entry["error"] != "connection refused" {
		t.Errorf("unexpected error field: %v", entry["error"])
	}
	if entry["fallback"] != true {
		t.Errorf("expected fallback true, got %v", entry["fallback"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := FromWriter(&buf, zerolog.WarnLevel)
	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := FromWriter(&buf, zerolog.InfoLevel).With(String("component", "clock"))
	l.Info("started")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry["component"] != "clock" {
		t.Errorf("expected component clock, got %v", entry["component"])
	}
}

func TestNew_FileOutputClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fraudsim.log")
	l, err := New(&Config{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.With(String("component", "stats")).Info("written")

	if err := l.With().Close(); err != nil {
		t.Errorf("derived logger close: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second close should be a no-op, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"message":"written"`) {
		t.Errorf("log file missing entry: %q", data)
	}
}
