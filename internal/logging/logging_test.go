package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, buf.String())
	}
	return entry
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf)

	logger.Info("test message", "count", 3)

	entry := logLine(t, &buf)
	if entry["msg"] != "test message" {
		t.Errorf("msg = %v, want %q", entry["msg"], "test message")
	}
	if entry["count"] != float64(3) {
		t.Errorf("count = %v, want 3", entry["count"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf)

	ctx := context.Background()
	ctx = ContextWithRunID(ctx, "run-123")
	ctx = ContextWithProject(ctx, "myproject")
	ctx = ContextWithCommand(ctx, "optimize")

	logger.WithContext(ctx).Info("running")

	entry := logLine(t, &buf)
	if entry["run_id"] != "run-123" {
		t.Errorf("run_id = %v, want run-123", entry["run_id"])
	}
	if entry["project"] != "myproject" {
		t.Errorf("project = %v, want myproject", entry["project"])
	}
	if entry["command"] != "optimize" {
		t.Errorf("command = %v, want optimize", entry["command"])
	}
}

func TestLogger_WithContext_Empty(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf)

	logger.WithContext(context.Background()).Info("bare")

	entry := logLine(t, &buf)
	for _, key := range []string{"run_id", "project", "command"} {
		if _, ok := entry[key]; ok {
			t.Errorf("unexpected %s field on a bare context", key)
		}
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic and must accept all attribute forms.
	logger := Discard()
	logger.Info("dropped", "k", "v")
	logger.With("a", 1).Error("also dropped")
}
