package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "info")
	t.Cleanup(func() { Init("info") })

	Error("generation.failed", map[string]any{
		"model": "gpt-4o-mini",
		"error": errors.New("boom"),
	})

	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}
	if payload["level"] != "error" {
		t.Fatalf("expected level error, got %v", payload["level"])
	}
	if payload["msg"] != "generation.failed" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["error"] != "boom" {
		t.Fatalf("expected error string, got %v", payload["error"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("missing ts field")
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "warn")
	t.Cleanup(func() { Init("info") })

	Info("ignored", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
	Warn("kept", nil)
	if !strings.Contains(buf.String(), `"msg":"kept"`) {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}
