package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func parseEntry(t *testing.T, line []byte) LogEntry {
	t.Helper()
	var entry LogEntry
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v\n%s", err, line)
	}
	return entry
}

func TestJSONLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)

	logger.Info("computation finished", Algorithm("betweenness"), Nodes(34), Edges(78))

	entry := parseEntry(t, buf.Bytes())
	if entry.Level != "INFO" {
		t.Errorf("expected level INFO, got %s", entry.Level)
	}
	if entry.Message != "computation finished" {
		t.Errorf("unexpected message: %s", entry.Message)
	}
	if entry.Fields["algorithm"] != "betweenness" {
		t.Errorf("expected algorithm field, got %v", entry.Fields["algorithm"])
	}
	if entry.Fields["nodes"] != float64(34) {
		t.Errorf("expected nodes=34, got %v", entry.Fields["nodes"])
	}
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
}

func TestJSONLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	child := logger.With(RunID("abc-123"))
	child.Info("pass complete", Sources(10))

	entry := parseEntry(t, buf.Bytes())
	if entry.Fields["run_id"] != "abc-123" {
		t.Errorf("expected inherited run_id, got %v", entry.Fields["run_id"])
	}
	if entry.Fields["sources"] != float64(10) {
		t.Errorf("expected sources=10, got %v", entry.Fields["sources"])
	}
}

func TestErrorField(t *testing.T) {
	if f := Error(nil); f.Value != nil {
		t.Errorf("Error(nil) should carry nil value, got %v", f.Value)
	}
	if f := Error(errors.New("bad graph")); f.Value != "bad graph" {
		t.Errorf("expected error text, got %v", f.Value)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warning": WarnLevel,
		"ERROR":   ErrorLevel,
		"bogus":   InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("ignored")
	if logger.With(String("k", "v")).GetLevel() != InfoLevel {
		t.Error("NopLogger.GetLevel should report InfoLevel")
	}
}
