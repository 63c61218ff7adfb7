package quickgui

// Renderer is the immediate-mode primitive set Elements draws with.
// Colors cross this boundary in the 0.0-1.0 domain.
//
// Each stateful primitive returns whether the user changed the value this
// frame together with the value to show.
type Renderer interface {
	Text(text string)
	Button(label string) bool
	Checkbox(label string, value bool) (changed, v bool)
	ColorEdit3(label string, rgb [3]float32) (changed bool, v [3]float32)
	ColorEdit4(label string, rgba [4]float32) (changed bool, v [4]float32)
	InputInt(label string, value int) (changed bool, v int)
	InputText(label, value string, bufSize int) (changed bool, v string)

	// Time is seconds since the renderer started.
	Time() float64

	// WindowWidth is the width of the current window.
	WindowWidth() float32
	TextWidth(text string) float32
	SetCursorX(x float32)

	PushTextColor(r, g, b, a float32)
	PopTextColor()
	PushTextWrapPos(x float32)
	PopTextWrapPos()
}

// Point is a screen position in pixels.
type Point struct {
	X, Y int
}

// Surface is a Renderer that can also open windows and menus.
type Surface interface {
	Renderer

	// BeginWindow opens a window. Size and position apply on its first use only;
	// pos may be nil.
	BeginWindow(title string, width, height int, pos *Point)
	EndWindow()

	BeginMainMenuBar() bool
	EndMainMenuBar()
	BeginMenu(label string) bool
	EndMenu()
	MenuItem(label, shortcut string) bool

	KeyDown(k Key) bool
}

// Backend owns the OS window and produces a Surface per frame.
type Backend interface {
	ShouldClose() bool
	BeginFrame() (Surface, error)
	EndFrame() error
	Close() error
}
