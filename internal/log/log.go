// Package log configures log/slog for the tgdemo command.
//
// Console output is either slog's text handler or its JSON handler. When a
// file is set, records are also written as JSON to a size-rotated file.
// The configured logger becomes both slog's default and the tinygfx
// library logger.
package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/gogpu/tinygfx"
	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Level     string // debug, info, warn or error
	Format    string // text or json
	AddSource bool
	File      string // optional rotated log file
}

// Rotation limits for the log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// New builds a logger writing to w. The returned closer releases the log
// file and must be called before exit; it is a no-op without a file.
func New(w io.Writer, opts Options) (*slog.Logger, io.Closer) {
	hopts := &slog.HandlerOptions{Level: ParseLevel(opts.Level), AddSource: opts.AddSource}

	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(w, hopts)
	} else {
		console = slog.NewTextHandler(w, hopts)
	}

	file := strings.TrimSpace(opts.File)
	if file == "" {
		return slog.New(console), nopCloser{}
	}
	rot := &lj.Logger{Filename: file, MaxSize: maxSizeMB, MaxBackups: maxBackups, MaxAge: maxAgeDays}
	h := &multi{hs: []slog.Handler{console, slog.NewJSONHandler(rot, hopts)}}
	return slog.New(h), rot
}

// Init builds a logger with New and installs it as slog's default and as
// the tinygfx library logger.
func Init(w io.Writer, opts Options) io.Closer {
	l, c := New(w, opts)
	slog.SetDefault(l)
	tinygfx.SetLogger(l.With(slog.String("component", "tinygfx")))
	return c
}

// ParseLevel converts a level name to a slog level. Unknown names map to
// info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// multi fans records out to several handlers.
type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		hs[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: hs}
}

func (m *multi) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		hs[i] = h.WithGroup(name)
	}
	return &multi{hs: hs}
}
