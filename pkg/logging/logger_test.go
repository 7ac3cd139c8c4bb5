package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWithWriter_EmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", &buf)

	logger.Info("hello", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "hello" {
		t.Errorf("expected msg %q, got %v", "hello", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("expected key %q, got %v", "value", entry["key"])
	}
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("error", &buf)

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info log to be filtered at error level, got %q", buf.String())
	}

	logger.Error("kept")
	if buf.Len() == 0 {
		t.Error("expected error log to be emitted")
	}
}

func TestParseLevel_UnknownDefaultsToInfo(t *testing.T) {
	if got := parseLevel("bogus"); got.String() != "INFO" {
		t.Errorf("expected INFO for unknown level, got %s", got)
	}
}
