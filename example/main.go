// Example opens a window with two frames exercising every quickgui widget.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Settings come from $HOME/.config/quickgui/config.yaml, the file named by
// QUICKGUI_CONFIG, or QUICKGUI_* environment variables.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/go-theft-auto/quickgui"
	"github.com/go-theft-auto/quickgui/backend/opengl"
	"github.com/go-theft-auto/quickgui/internal/config"
	"github.com/go-theft-auto/quickgui/internal/logging"
)

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod " +
	"tempor incididunt ut labore et dolore magna aliqua."

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closer := logging.Install(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}, os.Stderr)
	defer closer.Close()

	opts, err := cfg.WindowOptions()
	if err != nil {
		return err
	}
	quit, err := cfg.Quit()
	if err != nil {
		return err
	}

	w := quickgui.NewWindow(cfg.Window.Title, opts...)
	w.Frame("Widgets", widgets, quickgui.FrameSize(420, 420), quickgui.FramePosition(20, 40))
	w.Frame("Hello World", favorite, quickgui.FramePosition(460, 40))
	w.Menu("File", "Quit", w.Close, quit...)

	backend, err := opengl.NewBackend(w.Config())
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	logger.Info("window opened", "title", cfg.Window.Title, "quit", quit.String())
	return w.Start(backend)
}

func widgets(el *quickgui.Elements) {
	color, _ := el.ColorPicker("color", quickgui.Hex(0x008080))

	el.Text(lorem, quickgui.WithWrap(true), quickgui.WithTextColor(color))
	el.Text("Centered title", quickgui.Centered())

	el.Button("Say hello", quickgui.WithKey("hello"))
	if el.ButtonEvent("hello", quickgui.WithTimeLimit(2)) {
		el.Text("Hello!")
	}

	if el.Checkbox("Shout", false) {
		el.Text(strings.ToUpper(lorem[:11]))
	}

	n, err := el.InputInt("Stars", 3, quickgui.WithMin(2), quickgui.WithMax(8))
	if err == nil {
		el.Text(strings.Repeat("*", n))
	}

	name := el.InputText("Name", "", quickgui.WithMaxLength(15))
	if name != "" {
		el.Text("Hi, " + name)
	}
}

func favorite(el *quickgui.Elements) {
	fav, _ := el.InputInt("What is your favorite number?", 7, quickgui.WithKey("favorite"))
	el.Button("Add 2", quickgui.WithHandler(func() {
		el.State().Set("favorite", quickgui.Int(fav+2))
	}))
}
