// Package config loads settings for the quickgui example program.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/go-theft-auto/quickgui"
)

// EnvConfig names an explicit config file. Other keys are overridden by
// QUICKGUI_<SECTION>_<KEY>, e.g. QUICKGUI_WINDOW_WIDTH.
const EnvConfig = "QUICKGUI_CONFIG"

// Config holds application configuration.
type Config struct {
	Window    WindowConfig
	Font      FontConfig
	Log       LogConfig
	QuitChord string `mapstructure:"quit_chord"`
}

// WindowConfig holds OS window settings.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Theme  string
}

// FontConfig selects the text font. An empty path uses the embedded font.
type FontConfig struct {
	Path string
	Size float64
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads defaults, then the config file if present, then env.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("window.title", "quickgui")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.theme", "auto")
	v.SetDefault("font.path", "")
	v.SetDefault("font.size", quickgui.DefaultFontSize)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("quit_chord", "Ctrl+Q")

	explicit := os.Getenv(EnvConfig)
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "quickgui"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QUICKGUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// WindowOptions converts the window and font settings.
func (c Config) WindowOptions() ([]quickgui.WindowOption, error) {
	theme, err := quickgui.ParseTheme(c.Window.Theme)
	if err != nil {
		return nil, fmt.Errorf("window.theme: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d: must be positive", c.Window.Width, c.Window.Height)
	}

	opts := []quickgui.WindowOption{
		quickgui.WithSize(c.Window.Width, c.Window.Height),
		quickgui.WithTheme(theme),
	}
	if c.Font.Path != "" {
		opts = append(opts, quickgui.WithFont(c.Font.Path))
	}
	if c.Font.Size > 0 {
		opts = append(opts, quickgui.WithFontSize(c.Font.Size))
	}
	return opts, nil
}

// Quit parses the quit shortcut.
func (c Config) Quit() (quickgui.Chord, error) {
	chord, err := quickgui.ParseChord(c.QuitChord)
	if err != nil {
		return nil, fmt.Errorf("quit_chord: %w", err)
	}
	return chord, nil
}
