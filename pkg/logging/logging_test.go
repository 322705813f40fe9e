package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(true, "text", &buf)

	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Errorf("Debug output missing: %s", buf.String())
	}
}

func TestNew_QuietSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(false, "text", &buf)

	logger.Debug("debug message")
	if buf.Len() != 0 {
		t.Errorf("Expected no debug output, got: %s", buf.String())
	}

	logger.Info("info message")
	if !strings.Contains(buf.String(), "info message") {
		t.Errorf("Info output missing: %s", buf.String())
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(false, "json", &buf)

	logger.Info("hello", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Log output is not valid JSON: %v", err)
	}
	if entry["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("key = %v, want value", entry["key"])
	}
}
