package main

import (
	"bytes"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/tinygfx"
)

func runDemo(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		tinygfx.SetLogger(nil)
	})
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.png")
	_, _, err := runDemo(t, "-out", out, "-width", "64", "-height", "32", "-scale", "2")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("png.DecodeConfig() error = %v", err)
	}
	if cfg.Width != 128 || cfg.Height != 64 {
		t.Errorf("output size = %dx%d, want 128x64", cfg.Width, cfg.Height)
	}
}

func TestRunPreview(t *testing.T) {
	stdout, _, err := runDemo(t, "-preview", "-width", "16", "-height", "8")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if n := strings.Count(stdout, "\n"); n != 4 {
		t.Errorf("preview has %d lines, want 4", n)
	}
}

func TestRunSceneFile(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	doc := "shapes:\n  - kind: circle\n    at: [1, 1]\n    diameter: 6\n    fill: red\n"
	if err := os.WriteFile(scenePath, []byte(doc), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	out := filepath.Join(dir, "scene.bmp")
	_, stderr, err := runDemo(t, "-scene", scenePath, "-out", out, "-log-level", "debug")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Stat(%s) error = %v", out, err)
	}
	if !strings.Contains(stderr, "msg=rendered") {
		t.Errorf("log output = %q, want rendered record", stderr)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("shapes:\n  - kind: star\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	tests := []struct {
		name string
		args []string
	}{
		{name: "nothing to do", args: nil},
		{name: "unknown flag", args: []string{"-bogus"}},
		{name: "invalid scene", args: []string{"-scene", invalid, "-preview"}},
		{name: "missing scene", args: []string{"-scene", filepath.Join(dir, "missing.yaml"), "-preview"}},
		{name: "unknown format", args: []string{"-out", filepath.Join(dir, "frame.jpg")}},
		{name: "zero width", args: []string{"-width", "0", "-preview"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runDemo(t, tt.args...); err == nil {
				t.Errorf("run(%v) error = nil, want error", tt.args)
			}
		})
	}
}
