package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/quickgui"
)

// isolate points config discovery at an empty home.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfig, "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, WindowConfig{Title: "quickgui", Width: 800, Height: 600, Theme: "auto"}, cfg.Window)
	require.Equal(t, float64(quickgui.DefaultFontSize), cfg.Font.Size)
	require.Empty(t, cfg.Font.Path)
	require.Equal(t, "Ctrl+Q", cfg.QuitChord)
}

func TestLoadFileAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "quickgui.yaml")
	data := []byte("window:\n  title: Demo\n  width: 1024\n  theme: light\nquit_chord: Ctrl+W\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv(EnvConfig, path)
	t.Setenv("QUICKGUI_WINDOW_WIDTH", "1280")
	t.Setenv("QUICKGUI_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Demo", cfg.Window.Title)
	require.Equal(t, "light", cfg.Window.Theme)
	require.Equal(t, 1280, cfg.Window.Width, "env overrides file")
	require.Equal(t, 600, cfg.Window.Height, "default kept")
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "Ctrl+W", cfg.QuitChord)
}

func TestLoadDiscoversHomeConfig(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("HOME"), ".config", "quickgui")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("font:\n  size: 24\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 24.0, cfg.Font.Size)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestWindowOptions(t *testing.T) {
	cfg := Config{
		Window: WindowConfig{Title: "T", Width: 640, Height: 480, Theme: "dark"},
		Font:   FontConfig{Path: "/fonts/a.ttf", Size: 20},
	}
	opts, err := cfg.WindowOptions()
	require.NoError(t, err)

	got := quickgui.NewWindow(cfg.Window.Title, opts...).Config()
	want := quickgui.Config{Title: "T", Width: 640, Height: 480, FontPath: "/fonts/a.ttf", FontSize: 20, Theme: quickgui.ThemeDark}
	require.Equal(t, want, got)

	cfg.Window.Theme = "purple"
	_, err = cfg.WindowOptions()
	require.Error(t, err, "unknown theme")

	cfg.Window.Theme = ""
	cfg.Window.Width = 0
	_, err = cfg.WindowOptions()
	require.Error(t, err, "zero width")
}

func TestQuit(t *testing.T) {
	chord, err := Config{QuitChord: "Ctrl+Q"}.Quit()
	require.NoError(t, err)
	require.Equal(t, "Ctrl + Q", chord.String())

	_, err = Config{QuitChord: "Ctrl+Nope"}.Quit()
	require.Error(t, err)
}
