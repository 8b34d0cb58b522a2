package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, "json")

	logger.Debug("hidden")
	logger.Info("Stations refreshed", "stations", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Log line is not JSON: %v", err)
	}
	if entry["app"] != "gasprices" {
		t.Errorf("app = %v, expected gasprices", entry["app"])
	}
	if entry["stations"] != float64(3) {
		t.Errorf("stations = %v, expected 3", entry["stations"])
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn, "text")

	logger.Info("hidden")
	logger.Warn("Refresh failed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "Refresh failed") {
		t.Errorf("Warn message missing: %q", out)
	}
}
