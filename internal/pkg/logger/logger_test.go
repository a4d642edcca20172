package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestQuietLoggerWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, false)
	l.Debug("d", nil)
	l.Info("i", nil)
	l.Warn("w", nil)
	l.Error("e", errors.New("x"), nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestVerboseLoggerSortsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, true)
	l.Error("command failed", errors.New("denied"), map[string]interface{}{
		"session": "abc",
		"command": "makefile",
	})
	line := buf.String()
	if !strings.Contains(line, `[ERROR] command failed error="denied" command=makefile session=abc`) {
		t.Fatalf("unexpected log line %q", line)
	}
}
