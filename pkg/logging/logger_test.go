package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriterLoggerEmitsJSONL(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, "session-1")

	if err := log.Info(CategoryConsole, "load_all", "refresh applied", map[string]any{"narratives": 3}); err != nil {
		t.Fatalf("Info: %v", err)
	}
	if err := log.Error(CategoryGateway, "request", "boom", nil); err != nil {
		t.Fatalf("Error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var ev Event
	if err := json.Unmarshal([]byte(lines[0]), &ev); err != nil {
		t.Fatalf("unmarshal first line: %v", err)
	}
	if ev.SessionID != "session-1" {
		t.Errorf("session id = %q", ev.SessionID)
	}
	if ev.Category != CategoryConsole || ev.EventType != "load_all" {
		t.Errorf("event = %+v", ev)
	}
	if ev.Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}
}

func TestMinLevelFiltersEvents(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, "s")
	log.SetMinLevel(LevelWarn)

	log.Debug(CategoryUI, "key", "ignored", nil)
	log.Info(CategoryUI, "key", "ignored", nil)
	log.Warn(CategoryUI, "key", "kept", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
}

func TestFileLoggerCreatesSessionFile(t *testing.T) {
	dir := t.TempDir()
	log, err := NewLogger(dir, "abc123")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Info(CategoryConfig, "startup", "hello", nil)
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sessions", "abc123.jsonl"))
	if err != nil {
		t.Fatalf("read session file: %v", err)
	}
	if !strings.Contains(string(data), `"startup"`) {
		t.Errorf("session file missing event: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("debug"); got != LevelDebug {
		t.Errorf("ParseLevel(debug) = %q", got)
	}
	if got := ParseLevel("loud"); got != LevelInfo {
		t.Errorf("ParseLevel(invalid) = %q, want info", got)
	}
}
