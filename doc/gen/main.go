// Command gen renders each widget in a hidden window, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/quickgui"
	"github.com/go-theft-auto/quickgui/backend/opengl"
	"github.com/go-theft-auto/quickgui/immediate"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is one captured window.
type screenshot struct {
	name          string // filename without extension
	width, height int
	build         func(w *quickgui.Window)
}

// The hidden window is larger than every screenshot. Resizing it would be
// processed asynchronously and mismatch the scissor.
const canvasWidth, canvasHeight = 800, 600

// Frames rendered before capture: the first one sizes unsized frames.
const warmupFrames = 3

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(canvasWidth, canvasHeight, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(canvasWidth, canvasHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	atlas, err := immediate.DefaultFont(quickgui.DefaultFontSize)
	if err != nil {
		return fmt.Errorf("font: %w", err)
	}
	renderer.UploadFont(atlas)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, atlas, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, atlas *immediate.Atlas, s screenshot, outDir string) error {
	renderer.Resize(s.width, s.height)
	renderer.SetFramebufferSize(s.width, s.height)

	// Fresh window and GUI per screenshot so state does not leak.
	w := quickgui.NewWindow(s.name)
	s.build(w)
	ui := immediate.New(renderer, immediate.WithFont(atlas))
	input := immediate.NewInputState()

	for i := 0; i < warmupFrames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.1, 0.1, 0.1, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input, immediate.Vec2{X: float32(s.width), Y: float32(s.height)}, 1.0/60.0)
		if err := w.RenderFrame(ctx); err != nil {
			return err
		}
		if err := ui.End(); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	// OpenGL rows start at the bottom.
	flipRows(pixels, s.width*4)

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func flipRows(pix []byte, stride int) {
	rows := len(pix) / stride
	tmp := make([]byte, stride)
	for y := 0; y < rows/2; y++ {
		top := pix[y*stride : (y+1)*stride]
		bot := pix[(rows-1-y)*stride : (rows-y)*stride]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

// panel registers a single frame filling most of the screenshot.
func panel(title string, width, height int, draw func(*quickgui.Elements)) func(*quickgui.Window) {
	return func(w *quickgui.Window) {
		w.Frame(title, draw, quickgui.FrameSize(width-20, height-20), quickgui.FramePosition(10, 10))
	}
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "text", width: 400, height: 200,
			build: panel("Text", 400, 200, func(el *quickgui.Elements) {
				el.Text("Plain text")
				el.Text("Colored text", quickgui.WithTextColor(quickgui.Hex(0x4FC3F7)))
				el.Text("Centered", quickgui.Centered())
				el.Text("Wrapped text flows onto the next line when it reaches the edge of the frame.",
					quickgui.WithWrap(true))
			}),
		},
		{
			name: "button", width: 300, height: 140,
			build: panel("Button", 300, 140, func(el *quickgui.Elements) {
				el.Button("Click me")
				el.Button("Save", quickgui.WithTextColor(quickgui.RGB(120, 220, 120)))
			}),
		},
		{
			name: "checkbox", width: 300, height: 140,
			build: func(w *quickgui.Window) {
				w.State().Set("Enabled", quickgui.Bool(true))
				panel("Checkbox", 300, 140, func(el *quickgui.Elements) {
					el.Checkbox("Enabled", false)
					el.Checkbox("Disabled", false)
				})(w)
			},
		},
		{
			name: "color_picker", width: 420, height: 140,
			build: panel("Color", 420, 140, func(el *quickgui.Elements) {
				el.ColorPicker("Teal", quickgui.Hex(0x008080))
				el.ColorPicker("Glass", quickgui.RGBA(200, 80, 80, 0.5), quickgui.WithAlpha())
			}),
		},
		{
			name: "inputs", width: 420, height: 160,
			build: panel("Inputs", 420, 160, func(el *quickgui.Elements) {
				el.InputInt("Count", 42, quickgui.WithMin(0), quickgui.WithMax(99))
				el.InputText("Name", "Hello, world!", quickgui.WithMaxLength(32))
			}),
		},
		{
			name: "menu_bar", width: 400, height: 160,
			build: func(w *quickgui.Window) {
				w.Menu("File", "Open", nil, quickgui.KeyCtrl, quickgui.KeyO)
				w.Menu("File", "Quit", w.Close, quickgui.KeyCtrl, quickgui.KeyQ)
				w.Menu("View", "Reset", nil)
				w.Frame("Hello World", func(el *quickgui.Elements) {
					el.Text("Frames sit below the menu bar.")
				})
			},
		},
	}
}
