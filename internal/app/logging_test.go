package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/quill/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"Warn", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "quill"})

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown %d", 1)
	l.Error("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains messages below the level: %q", out)
	}
	if !strings.Contains(out, "[WARN] quill: shown 1") {
		t.Errorf("output missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] quill: shown 2") {
		t.Errorf("output missing error line: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	l := base.WithField("session", "abc").WithComponent("watcher")

	l.Info("hello")
	if !strings.HasSuffix(buf.String(), "hello {component=watcher, session=abc}\n") {
		t.Errorf("output = %q, want sorted fields", buf.String())
	}

	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "{") {
		t.Errorf("WithField should not modify the parent logger: %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Error("nothing %s", "happens")
	NullLogger.WithComponent("x").Error("still nothing")
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.log")
	l, closer := NewFileLogger(config.LogConfig{Level: "debug", File: path, MaxSizeMB: 1})
	l.Debug("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "[DEBUG] quill: to file") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewFileLoggerDisabled(t *testing.T) {
	l, closer := NewFileLogger(config.LogConfig{Level: "debug"})
	l.Error("discarded")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
