package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"INFO", false, true},
		{"", false, true},
		{"bogus", false, true},
		{"error", false, false},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		l := New(&buf, tt.level, "json")
		l.Debug().Msg("d")
		got := buf.Len() > 0
		if got != tt.debugSeen {
			t.Errorf("level %q: debug written = %v, want %v", tt.level, got, tt.debugSeen)
		}
		buf.Reset()
		l.Info().Msg("i")
		got = buf.Len() > 0
		if got != tt.infoSeen {
			t.Errorf("level %q: info written = %v, want %v", tt.level, got, tt.infoSeen)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := WithComponent(New(&buf, "info", "json"), "store")
	l.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["component"] != "store" {
		t.Errorf("component = %v, want store", entry["component"])
	}
	if entry["message"] != "hello" {
		t.Errorf("message = %v", entry["message"])
	}
}
