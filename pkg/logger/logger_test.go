package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Output: &buf, Service: "hotel-api", Level: DEBUG})

	log.Debug("room locked", "room_id", 12)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry[SERVICE] != "hotel-api" {
		t.Errorf("expected service attribute, got %v", entry[SERVICE])
	}
	if entry["room_id"] != float64(12) {
		t.Errorf("expected room_id 12, got %v", entry["room_id"])
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Output: &buf, Level: WARN, Format: TEXT})

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn message should be written")
	}
}

func TestNew_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotel-api.log")
	var buf bytes.Buffer
	log := New(Config{Output: &buf, File: &FileConfig{Path: path, MaxSizeMB: 1}})

	log.Info("booking created", "booking_id", 1)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	if !strings.Contains(string(data), "booking created") {
		t.Errorf("log file missing entry: %q", string(data))
	}
	if !strings.Contains(buf.String(), "booking created") {
		t.Error("primary output missing entry")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		DEBUG:     slog.LevelDebug,
		INFO:      slog.LevelInfo,
		WARN:      slog.LevelWarn,
		ERROR:     slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
