package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("WARN")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if l != WarnLevel {
		t.Fatalf("expected warn, got %v", l)
	}
	if _, err := ParseLevel("shout"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestTextFormatterOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithLevel(DebugLevel), WithOutput(&buf))
	logger.Info("order created", Str("id", "abc"), Int("subs", 3))
	line := buf.String()
	if !strings.Contains(line, "INFO order created") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "id=abc") || !strings.Contains(line, "subs=3") {
		t.Fatalf("fields missing: %q", line)
	}
}

func TestJSONFormatterOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithFormatter(&JSONFormatter{}), WithOutput(&buf))
	logger.Error("store failed", Err(errors.New("boom")))
	var obj map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &obj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if obj["level"] != "ERROR" || obj["msg"] != "store failed" {
		t.Fatalf("unexpected object: %v", obj)
	}
	if obj["error"] != "boom" {
		t.Fatalf("error field: %v", obj["error"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithLevel(ErrorLevel), WithOutput(&buf))
	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered: %q", buf.String())
	}
	logger.Error("kept")
	if buf.Len() == 0 {
		t.Fatal("error should be written")
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithOutput(&buf)).With(Component("events"))
	logger.Info("subscribed")
	if !strings.Contains(buf.String(), "component=events") {
		t.Fatalf("component missing: %q", buf.String())
	}
}

func TestApplyConfig(t *testing.T) {
	logger, err := ApplyConfig(&Config{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if logger.Level() != DebugLevel {
		t.Fatalf("level: %v", logger.Level())
	}
	if _, err := ApplyConfig(&Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
