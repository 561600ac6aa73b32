package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", "json")

	log.Info().Msg("hidden")
	log.Warn().Str("key", "problem-list-tags").Msg("shown")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected exactly one JSON log line, but got %q: %v", buf.String(), err)
	}
	if entry["message"] != "shown" || entry["key"] != "problem-list-tags" || entry["level"] != "warn" {
		t.Errorf("Unexpected log entry: %v", entry)
	}
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "loud", "json")

	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected debug output to be suppressed, but got %q", buf.String())
	}
	log.Info().Msg("shown")
	if buf.Len() == 0 {
		t.Error("Expected info output")
	}
}
