package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/tinygfx"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, c := New(&buf, Options{Level: "debug", Format: "json"})
	defer c.Close()

	l.Debug("rendered", slog.Int("shapes", 3))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("json.Unmarshal() error = %v (output %q)", err, buf.String())
	}
	if rec["msg"] != "rendered" {
		t.Errorf("msg = %v, want rendered", rec["msg"])
	}
	if rec["shapes"] != float64(3) {
		t.Errorf("shapes = %v, want 3", rec["shapes"])
	}
}

func TestNewTextLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, c := New(&buf, Options{Level: "warn"})
	defer c.Close()

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains info record: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("output = %q, want text record for warning", out)
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tgdemo.log")
	var buf bytes.Buffer
	l, c := New(&buf, Options{Level: "info", File: path})

	l.With(slog.String("component", "export")).Info("saved", slog.String("path", "out.png"))
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("json.Unmarshal() error = %v (file %q)", err, data)
	}
	if rec["msg"] != "saved" || rec["component"] != "export" {
		t.Errorf("file record = %v, want msg=saved component=export", rec)
	}
	if !strings.Contains(buf.String(), "msg=saved") {
		t.Errorf("console output = %q, want the same record", buf.String())
	}
}

func TestInitSetsLibraryLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		tinygfx.SetLogger(nil)
	})

	var buf bytes.Buffer
	c := Init(&buf, Options{Level: "debug"})
	defer c.Close()

	tinygfx.Logger().Debug("font built")
	out := buf.String()
	if !strings.Contains(out, "msg=\"font built\"") || !strings.Contains(out, "component=tinygfx") {
		t.Errorf("output = %q, want library record tagged component=tinygfx", out)
	}
}
