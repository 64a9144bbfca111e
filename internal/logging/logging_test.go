package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew_Levels(t *testing.T) {
	cases := map[string]log.Level{
		"debug":   log.DebugLevel,
		"info":    log.InfoLevel,
		"WARN":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"bogus":   log.InfoLevel,
		"":        log.InfoLevel,
	}
	for level, want := range cases {
		if got := New(level).GetLevel(); got != want {
			t.Errorf("level %q: expected %v, got %v", level, want, got)
		}
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "debug")

	logger.Debug("probe", "key", "value")
	if buf.Len() == 0 {
		t.Error("expected debug output to be written")
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic and must swallow output silently.
	Discard().Info("dropped")
}
