/*
Package immediate is the immediate-mode renderer behind quickgui.

The UI is rebuilt every frame. A Context collects vertices into draw lists
while widgets are called, and widgets return interaction results directly.
Persistent per-widget state (window positions, text cursors, edit buffers)
lives in the Context, keyed by an ID hashed from the window title and the
widget label.

# Frame Loop

	ui := immediate.New(renderer, immediate.WithStyle(immediate.DarkStyle()), immediate.WithFont(font))

	for !window.ShouldClose() {
	    input := pollInput(window)

	    ctx := ui.Begin(input, immediate.Vec2{X: 800, Y: 600}, dt)
	    ctx.BeginWindow("Hello", 300, 200, nil)
	    ctx.Text("Hello World")
	    if ctx.Button("Click Me") {
	        // Button was clicked
	    }
	    ctx.EndWindow()

	    ui.End()
	    window.SwapBuffers()
	}

Context satisfies quickgui.Surface, so a quickgui.Window can drive it.

# Keyboard Shortcuts

Text fields:

	Left / Right     Move cursor
	Ctrl+Left/Right  Move by word
	Home / End       Jump to start or end
	Shift+movement   Extend selection
	Ctrl+A           Select all
	Ctrl+C / Ctrl+X  Copy or cut selection
	Ctrl+V           Paste
	Ctrl+Z           Undo
	Backspace/Delete Delete character or selection
	Enter / Escape   Leave the field

Integer fields accept digits and a leading minus sign; Enter commits and
Escape discards the edit.

# Fonts

Text is drawn from an alpha atlas rasterized from a TrueType font. DefaultFont
uses the embedded Go Regular face; LoadFont reads any TTF or OTF file. The
renderer uploads Atlas.Pixels and reports the texture with SetTextureID.
*/
package immediate
