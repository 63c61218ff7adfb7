package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/quickgui/immediate"
)

// InputAdapter collects GLFW events into an immediate.InputState.
type InputAdapter struct {
	window *glfw.Window
	input  *immediate.InputState
}

// NewInputAdapter installs event callbacks on window.
func NewInputAdapter(window *glfw.Window) *InputAdapter {
	a := &InputAdapter{
		window: window,
		input:  immediate.NewInputState(),
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// EndFrame clears this frame's events. Call it after the frame is drawn and
// before polling for the next one.
func (a *InputAdapter) EndFrame() {
	a.input.Reset()
}

// Update samples held state after events were polled and advances key
// repeat by dt seconds.
func (a *InputAdapter) Update(dt float32) *immediate.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.held(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = a.held(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = a.held(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	a.input.ModSuper = a.held(glfw.KeyLeftSuper, glfw.KeyRightSuper)

	a.input.UpdateKeyRepeat(dt)
	return a.input
}

func (a *InputAdapter) held(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Input returns the state events are collected into.
func (a *InputAdapter) Input() *immediate.InputState {
	return a.input
}

func (a *InputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := mapKey(key)
	if k == immediate.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *InputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *InputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := mapMouseButton(button)
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *InputAdapter) cursorPosCallback(_ *glfw.Window, x, y float64) {
	a.input.SetMousePos(float32(x), float32(y))
}

var namedKeys = map[glfw.Key]immediate.Key{
	glfw.KeyTab:       immediate.KeyTab,
	glfw.KeyLeft:      immediate.KeyLeft,
	glfw.KeyRight:     immediate.KeyRight,
	glfw.KeyUp:        immediate.KeyUp,
	glfw.KeyDown:      immediate.KeyDown,
	glfw.KeyHome:      immediate.KeyHome,
	glfw.KeyEnd:       immediate.KeyEnd,
	glfw.KeyDelete:    immediate.KeyDelete,
	glfw.KeyBackspace: immediate.KeyBackspace,
	glfw.KeySpace:     immediate.KeySpace,
	glfw.KeyEnter:     immediate.KeyEnter,
	glfw.KeyKPEnter:   immediate.KeyEnter,
	glfw.KeyEscape:    immediate.KeyEscape,
}

// mapKey converts a GLFW key. Letters and digits are contiguous in both.
func mapKey(key glfw.Key) immediate.Key {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return immediate.KeyA + immediate.Key(key-glfw.KeyA)
	case key >= glfw.Key0 && key <= glfw.Key9:
		return immediate.Key0 + immediate.Key(key-glfw.Key0)
	}
	if k, ok := namedKeys[key]; ok {
		return k
	}
	return immediate.KeyNone
}

func mapMouseButton(button glfw.MouseButton) (immediate.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return immediate.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return immediate.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return immediate.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

// clipboard reads and writes the system clipboard through GLFW.
type clipboard struct{ window *glfw.Window }

func (c clipboard) GetText() string     { return c.window.GetClipboardString() }
func (c clipboard) SetText(text string) { c.window.SetClipboardString(text) }
