package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-theft-auto/quickgui"
	"github.com/go-theft-auto/quickgui/immediate"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewConsoleLevels(t *testing.T) {
	var buf bytes.Buffer
	l, closer := New(Options{Level: "warn"}, &buf)
	defer closer.Close()

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info dropped at warn level, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "key=value") {
		t.Errorf("expected text record, got %q", out)
	}
}

func TestNewJSONConsole(t *testing.T) {
	var buf bytes.Buffer
	l, closer := New(Options{Format: "json"}, &buf)
	defer closer.Close()

	l.Info("hello", "n", 3)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON record: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "hello" || rec["n"] != float64(3) {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quickgui.log")
	var console bytes.Buffer
	l, closer := New(Options{Level: "debug", File: path}, &console)

	l.With("component", "test").Debug("to both")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("expected JSON line in file: %v (%q)", err, data)
	}
	if rec["msg"] != "to both" || rec["component"] != "test" {
		t.Errorf("unexpected file record %v", rec)
	}
	if !strings.Contains(console.String(), "to both") {
		t.Errorf("expected console copy, got %q", console.String())
	}
}

func TestInstallRoutesPackageLoggers(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		quickgui.SetLogger(nil)
		quickgui.SetVerbose(false)
		immediate.SetLogger(nil)
		immediate.SetVerbose(false)
	})

	var buf bytes.Buffer
	_, closer := Install(Options{Level: "debug"}, &buf)
	defer closer.Close()

	// A menu bar inside a window is refused with a warning.
	ui := immediate.New(nil)
	ctx := ui.Begin(nil, immediate.Vec2{X: 100, Y: 100}, 0.016)
	ctx.BeginWindow("W", 50, 50, nil)
	ctx.BeginMainMenuBar()
	ctx.EndWindow()
	if err := ui.End(); err != nil {
		t.Fatalf("End() error: %v", err)
	}

	if !strings.Contains(buf.String(), "component=immediate") {
		t.Errorf("expected renderer log through installed logger, got %q", buf.String())
	}
}
