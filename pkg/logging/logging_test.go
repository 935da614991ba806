package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"nonsense", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if LevelDebug.String() != "DEBUG" || LevelError.String() != "ERROR" {
		t.Error("unexpected level strings")
	}
	if LevelWarn.SlogLevel() != slog.LevelWarn {
		t.Error("unexpected slog mapping")
	}
}

func TestInitForCLIWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)
	defer func() { defaultLogger = nil }()

	Info("Test", "hello %s", "world")

	out := buf.String()
	if !strings.Contains(out, "hello world") {
		t.Errorf("expected the formatted message, got %q", out)
	}
	if !strings.Contains(out, "subsystem=Test") {
		t.Errorf("expected the subsystem attribute, got %q", out)
	}
}

func TestInitForCLIFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)
	defer func() { defaultLogger = nil }()

	Debug("Test", "too quiet")
	Info("Test", "still too quiet")
	Warn("Test", "loud enough")

	out := buf.String()
	if strings.Contains(out, "too quiet") {
		t.Errorf("expected debug/info filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "loud enough") {
		t.Errorf("expected the warning, got %q", out)
	}
}

func TestInitForTUICreatesLogFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	path, err := InitForTUI(LevelInfo)
	if err != nil {
		t.Fatalf("InitForTUI: %v", err)
	}
	defer func() { Close(); defaultLogger = nil }()

	if filepath.Base(path) != "dockhand.log" {
		t.Errorf("unexpected log file name: %s", path)
	}

	Error("Test", os.ErrNotExist, "query for %s failed", "web")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "query for web failed") {
		t.Errorf("expected the error entry in the file, got %q", data)
	}
}
