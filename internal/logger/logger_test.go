package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

type logEntry map[string]any

func TestLogger_FieldsAndMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.WithFields(map[string]any{"cell": "0,1", "symbol": "K♥"}).Debug("card flipped")

	var entry logEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["message"] != "card flipped" {
		t.Errorf("message: %v", entry["message"])
	}
	if entry["cell"] != "0,1" || entry["symbol"] != "K♥" {
		t.Errorf("fields missing: %v", entry)
	}
	if entry["level"] != "debug" {
		t.Errorf("level: %v", entry["level"])
	}
}

func TestLogger_LevelGate(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug should be gated at info level: %q", buf.String())
	}

	log.Info("shown")
	if buf.Len() == 0 {
		t.Error("info should pass at info level")
	}
}

func TestLogger_BadLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLogger_DisabledAndNil(t *testing.T) {
	Disabled().Info("dropped")

	var l *Logger
	l.Debug("no panic")
	l.WithFields(map[string]any{"k": "v"}).Error("no panic")
}
