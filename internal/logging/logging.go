// Package logging builds the slog logger shared by quickgui and its
// renderer.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-theft-auto/quickgui"
	"github.com/go-theft-auto/quickgui/immediate"
)

// Options controls the logger.
type Options struct {
	Level  string // debug, info, warn or error
	Format string // text or json
	File   string // optional rotated JSON log, in addition to the console
}

// Rotation limits for the file sink.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// New builds a logger writing to console and, when opts.File is set, to a
// rotating file. The returned closer releases the file.
func New(opts Options, console io.Writer) (*slog.Logger, io.Closer) {
	lvl := ParseLevel(opts.Level)
	ho := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		h = slog.NewJSONHandler(console, ho)
	} else {
		h = slog.NewTextHandler(console, ho)
	}

	var closer io.Closer = nopCloser{}
	if path := strings.TrimSpace(opts.File); path != "" {
		w := &lj.Logger{Filename: path, MaxSize: maxSizeMB, MaxBackups: maxBackups, MaxAge: maxAgeDays}
		h = &multi{hs: []slog.Handler{h, slog.NewJSONHandler(w, ho)}}
		closer = w
	}
	return slog.New(h), closer
}

// Install builds a logger and makes it the logger of quickgui, its
// renderer and slog.Default. Debug level also turns on verbose widget
// logging.
func Install(opts Options, console io.Writer) (*slog.Logger, io.Closer) {
	l, closer := New(opts, console)
	debug := ParseLevel(opts.Level) <= slog.LevelDebug

	quickgui.SetLogger(l.With(slog.String("component", "quickgui")))
	quickgui.SetVerbose(debug)
	immediate.SetLogger(l.With(slog.String("component", "immediate")))
	immediate.SetVerbose(debug)
	slog.SetDefault(l)
	return l, closer
}

// ParseLevel converts a level name; unknown names are info.
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

// multi fans out records to every handler.
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
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
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
