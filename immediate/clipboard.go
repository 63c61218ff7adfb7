package immediate

// ClipboardProvider gives text fields access to the system clipboard.
//
// With GLFW:
//
//	type glfwClipboard struct{ w *glfw.Window }
//
//	func (c glfwClipboard) GetText() string     { return c.w.GetClipboardString() }
//	func (c glfwClipboard) SetText(text string) { c.w.SetClipboardString(text) }
type ClipboardProvider interface {
	// GetText returns "" when the clipboard holds no text.
	GetText() string
	SetText(text string)
}

var clipboardProvider ClipboardProvider

// SetClipboardProvider installs the clipboard used by copy, cut and paste.
// Without one, copy and cut are no-ops and paste inserts nothing.
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardProvider = cp
}

func clipboardGetText() string {
	if clipboardProvider != nil {
		return clipboardProvider.GetText()
	}
	return ""
}

func clipboardSetText(text string) {
	if clipboardProvider != nil {
		clipboardProvider.SetText(text)
	}
}
