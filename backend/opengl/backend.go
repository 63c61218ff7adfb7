package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/quickgui"
	"github.com/go-theft-auto/quickgui/immediate"
)

var _ quickgui.Backend = (*Backend)(nil)

// ErrClosed is returned by BeginFrame after Close.
var ErrClosed = errors.New("opengl: backend closed")

// Background clear color, RGBA.
var clearColor = [4]float32{0.1, 0.1, 0.1, 1}

// Backend is a GLFW window with a GL context and the GUI drawn into it.
// All methods must be called from the main OS thread.
type Backend struct {
	window   *glfw.Window
	renderer *Renderer
	input    *InputAdapter
	ui       *immediate.GUI
	lastTime float64
	closed   bool
}

// NewBackend opens the OS window described by cfg.
func NewBackend(cfg quickgui.Config) (b *Backend, err error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	defer func() {
		if err != nil {
			glfw.Terminate()
		}
	}()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	renderer, err := NewRenderer(window.GetSize())
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gui renderer: %w", err)
	}

	atlas, err := loadFont(cfg)
	if err != nil {
		renderer.Delete()
		window.Destroy()
		return nil, err
	}
	renderer.UploadFont(atlas)

	immediate.SetClipboardProvider(clipboard{window: window})

	return &Backend{
		window:   window,
		renderer: renderer,
		input:    NewInputAdapter(window),
		ui: immediate.New(renderer,
			immediate.WithStyle(immediate.StyleForTheme(cfg.Theme)),
			immediate.WithFont(atlas),
		),
		lastTime: glfw.GetTime(),
	}, nil
}

func loadFont(cfg quickgui.Config) (*immediate.Atlas, error) {
	size := cfg.FontSize
	if size <= 0 {
		size = quickgui.DefaultFontSize
	}
	if cfg.FontPath == "" {
		atlas, err := immediate.DefaultFont(size)
		if err != nil {
			return nil, fmt.Errorf("default font: %w", err)
		}
		return atlas, nil
	}
	atlas, err := immediate.LoadFont(cfg.FontPath, size)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", cfg.FontPath, err)
	}
	return atlas, nil
}

// ShouldClose reports whether the user asked to close the window.
func (b *Backend) ShouldClose() bool {
	return b.closed || b.window.ShouldClose()
}

// BeginFrame polls events, clears the framebuffer and starts a GUI frame.
func (b *Backend) BeginFrame() (quickgui.Surface, error) {
	if b.closed {
		return nil, ErrClosed
	}
	glfw.PollEvents()

	now := glfw.GetTime()
	dt := float32(now - b.lastTime)
	b.lastTime = now
	if dt <= 0 {
		dt = 1.0 / 60.0
	}

	w, h := b.window.GetSize()
	fw, fh := b.window.GetFramebufferSize()
	b.ui.Resize(w, h)
	b.renderer.SetFramebufferSize(fw, fh)

	gl.Viewport(0, 0, int32(fw), int32(fh))
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	input := b.input.Update(dt)
	return b.ui.Begin(input, immediate.Vec2{X: float32(w), Y: float32(h)}, dt), nil
}

// EndFrame renders the frame and presents it.
func (b *Backend) EndFrame() error {
	err := b.ui.End()
	b.input.EndFrame()
	b.window.SwapBuffers()
	if err != nil {
		return fmt.Errorf("render gui: %w", err)
	}
	return nil
}

// GUI returns the frame runner, for drawing with the immediate API directly.
func (b *Backend) GUI() *immediate.GUI {
	return b.ui
}

// Close releases GL resources, destroys the window and terminates GLFW.
// Further calls do nothing.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	immediate.SetClipboardProvider(nil)
	b.renderer.Delete()
	b.window.Destroy()
	glfw.Terminate()
	return nil
}
