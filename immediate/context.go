package immediate

import "strings"

// Context holds the state of one UI frame and the state carried between
// frames. It is not a context.Context.
type Context struct {
	// DrawList is where widgets draw: the current window's list, the open
	// popup's, or ForegroundDrawList outside any window.
	DrawList *DrawList
	// ForegroundDrawList holds the main menu bar, drawn above all windows.
	ForegroundDrawList *DrawList

	Input       *InputState
	DisplaySize Vec2
	DeltaTime   float32
	FrameCount  uint64

	// Set during the frame so the application can ignore input the UI used.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	style      Style
	font       Font
	stateStore StateStore

	// Layout within the current window
	cursor     Vec2
	contentMin float32
	contentMax Vec2

	idStack       []ID
	textColors    []uint32
	wrapPositions []float32

	time float64

	windows     []*window // back to front
	current     *window
	hovered     *window
	interactive bool // mouse may reach the widgets being built

	activeID  ID // widget holding the mouse
	focusedID ID // field with keyboard focus

	menu       menuState
	popupLists []*DrawList

	// Previous frame's menu bar and popup rectangles. The mouse over one of
	// them never reaches a window underneath.
	blockRects     []Rect
	nextBlockRects []Rect

	glyphBuffer []GlyphQuad
}

// NewContext creates a context with the dark style and the fallback font.
func NewContext() *Context {
	return &Context{
		Input:       NewInputState(),
		style:       DarkStyle(),
		font:        defaultMonoFont,
		stateStore:  make(MapStateStore),
		idStack:     make([]ID, 0, 8),
		glyphBuffer: make([]GlyphQuad, 0, 256),
		menu:        menuState{widths: make(map[ID]float32)},
	}
}

// Style returns the active style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle replaces the active style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Font returns the font used for measuring and drawing text.
func (ctx *Context) Font() Font {
	return ctx.font
}

// SetFont sets the text font. With nil, text is measured on a fixed grid
// and not drawn.
func (ctx *Context) SetFont(f Font) {
	if f == nil {
		f = defaultMonoFont
	}
	ctx.font = f
}

// newFrame resets per-frame state and resolves which window the mouse is
// over, using the rectangles recorded last frame.
func (ctx *Context) newFrame(input *InputState, displaySize Vec2, deltaTime float32) {
	if input == nil {
		input = NewInputState()
	}
	ctx.Input = input
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++
	ctx.time += float64(deltaTime)

	ctx.ForegroundDrawList = AcquireDrawList()
	ctx.DrawList = ctx.ForegroundDrawList
	ctx.popupLists = ctx.popupLists[:0]

	ctx.idStack = ctx.idStack[:0]
	ctx.textColors = ctx.textColors[:0]
	ctx.wrapPositions = ctx.wrapPositions[:0]
	ctx.current = nil
	ctx.interactive = false
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false

	ctx.blockRects, ctx.nextBlockRects = ctx.nextBlockRects, ctx.blockRects[:0]

	if ctx.activeID != 0 && !input.MouseDown(MouseButtonLeft) {
		ctx.activeID = 0
	}

	mouse := ctx.mousePos()
	blocked := false
	for _, r := range ctx.blockRects {
		if r.Contains(mouse) {
			blocked = true
			break
		}
	}

	ctx.hovered = nil
	if !blocked {
		for i := len(ctx.windows) - 1; i >= 0; i-- {
			w := ctx.windows[i]
			if w.lastFrame == ctx.FrameCount-1 && w.rect().Contains(mouse) {
				ctx.hovered = w
				break
			}
		}
	}
	ctx.WantCaptureMouse = blocked || ctx.hovered != nil

	clicked := input.MouseClicked(MouseButtonLeft)
	if ctx.menu.open != 0 && ((clicked && !blocked) || input.KeyPressed(KeyEscape)) {
		logger.Debug("menu closed", "frame", ctx.FrameCount)
		ctx.menu.open = 0
	}
	if clicked && ctx.hovered != nil {
		ctx.raise(ctx.hovered)
	}
}

// endFrame closes anything left open and returns the frame's draw lists in
// back-to-front order.
func (ctx *Context) endFrame() []*DrawList {
	if ctx.menu.popup != nil {
		logger.Warn("menu left open at end of frame")
		ctx.EndMenu()
	}
	if ctx.menu.barActive {
		ctx.EndMainMenuBar()
	}
	if ctx.current != nil {
		logger.Warn("window left open at end of frame", "title", ctx.current.title)
		ctx.EndWindow()
	}

	lists := make([]*DrawList, 0, len(ctx.windows)+1+len(ctx.popupLists))
	for _, w := range ctx.windows {
		if w.dl != nil {
			lists = append(lists, w.dl)
			w.dl = nil
		}
	}
	lists = append(lists, ctx.ForegroundDrawList)
	lists = append(lists, ctx.popupLists...)

	ctx.ForegroundDrawList = nil
	ctx.DrawList = nil
	ctx.popupLists = ctx.popupLists[:0]
	return lists
}

func (ctx *Context) mousePos() Vec2 {
	return Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}
}

// isHovered reports whether the mouse is over rect and may interact with id.
func (ctx *Context) isHovered(id ID, rect Rect) bool {
	if !ctx.interactive {
		return false
	}
	if ctx.activeID != 0 && ctx.activeID != id {
		return false
	}
	mouse := ctx.mousePos()
	clip := ctx.DrawList.ClipRect()
	if mouse.X < clip[0] || mouse.Y < clip[1] || mouse.X >= clip[2] || mouse.Y >= clip[3] {
		return false
	}
	return rect.Contains(mouse)
}

// IsHovered is the exported form of isHovered.
func (ctx *Context) IsHovered(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect)
}

func (ctx *Context) isClicked(id ID, rect Rect) bool {
	clicked := ctx.isHovered(id, rect) && ctx.Input.MouseClicked(MouseButtonLeft)
	if clicked && verbose() {
		logger.Debug("click", "id", id, "rect", rect, "mouse", ctx.mousePos())
	}
	return clicked
}

func (ctx *Context) isPressed(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// Time returns seconds accumulated over all frames.
func (ctx *Context) Time() float64 {
	return ctx.time
}

// SetCursorPos places the next widget at an absolute screen position.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// CursorPos returns where the next widget goes.
func (ctx *Context) CursorPos() Vec2 {
	return ctx.cursor
}

// SetCursorX moves the next widget horizontally, relative to the left edge
// of the current window.
func (ctx *Context) SetCursorX(x float32) {
	var origin float32
	if ctx.current != nil {
		origin = ctx.current.pos.X
	}
	ctx.cursor.X = origin + x
}

// WindowWidth is the full width of the current window, or the display
// width outside one.
func (ctx *Context) WindowWidth() float32 {
	if ctx.current != nil {
		return ctx.current.size.X
	}
	return ctx.DisplaySize.X
}

// contentWidth is the usable width inside the current window.
func (ctx *Context) contentWidth() float32 {
	return ctx.WindowWidth() - 2*ctx.style.WindowPadding
}

// fieldWidth is the default width of input fields.
func (ctx *Context) fieldWidth() float32 {
	return max(ctx.contentWidth()*0.65, 80)
}

func (ctx *Context) itemPos() Vec2 {
	return ctx.cursor
}

// advanceCursor moves below an item of the given size.
func (ctx *Context) advanceCursor(size Vec2) {
	ctx.contentMax.X = max(ctx.contentMax.X, ctx.cursor.X+size.X)
	ctx.contentMax.Y = max(ctx.contentMax.Y, ctx.cursor.Y+size.Y)
	ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
	ctx.cursor.X = ctx.contentMin
}

func (ctx *Context) lineHeight() float32 {
	return ctx.font.LineHeight(ctx.style.FontScale)
}

// LineHeight returns the height of one line of text.
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// frameHeight is the height of a framed widget such as a button.
func (ctx *Context) frameHeight() float32 {
	return ctx.lineHeight() + 2*ctx.style.FramePadding
}

// MeasureText returns the size of a single line of text.
func (ctx *Context) MeasureText(text string) Vec2 {
	return ctx.font.MeasureText(text, ctx.style.FontScale)
}

// TextWidth returns the width of the widest line of text.
func (ctx *Context) TextWidth(text string) float32 {
	var w float32
	for _, line := range strings.Split(text, "\n") {
		w = max(w, ctx.MeasureText(line).X)
	}
	return w
}

// AddText draws text on the current draw list.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text on dl with its top-left at x, y.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	ctx.glyphBuffer = ctx.font.GlyphQuads(ctx.glyphBuffer[:0], text, x, y, ctx.style.FontScale)
	if len(ctx.glyphBuffer) == 0 {
		return
	}
	dl.SetTexture(ctx.font.TextureID())
	dl.AddGlyphQuads(ctx.glyphBuffer, color)
	dl.SetTexture(0)
}

// PushTextColor overrides the color of text until PopTextColor.
// Components are 0.0-1.0.
func (ctx *Context) PushTextColor(r, g, b, a float32) {
	ctx.textColors = append(ctx.textColors, RGBAf(r, g, b, a))
}

// PopTextColor undoes the last PushTextColor.
func (ctx *Context) PopTextColor() {
	if n := len(ctx.textColors); n > 0 {
		ctx.textColors = ctx.textColors[:n-1]
		return
	}
	logger.Debug("PopTextColor without matching push")
}

func (ctx *Context) textColor() uint32 {
	if n := len(ctx.textColors); n > 0 {
		return ctx.textColors[n-1]
	}
	return ctx.style.TextColor
}

// PushTextWrapPos wraps text at x, relative to the left edge of the
// current window. Zero wraps at the content edge and a negative x disables
// wrapping.
func (ctx *Context) PushTextWrapPos(x float32) {
	ctx.wrapPositions = append(ctx.wrapPositions, x)
}

// PopTextWrapPos undoes the last PushTextWrapPos.
func (ctx *Context) PopTextWrapPos() {
	if n := len(ctx.wrapPositions); n > 0 {
		ctx.wrapPositions = ctx.wrapPositions[:n-1]
		return
	}
	logger.Debug("PopTextWrapPos without matching push")
}

// wrapWidth is the width text starting at x may take, or 0 for no wrapping.
func (ctx *Context) wrapWidth(x float32) float32 {
	n := len(ctx.wrapPositions)
	if n == 0 || ctx.wrapPositions[n-1] < 0 {
		return 0
	}
	var origin float32
	if ctx.current != nil {
		origin = ctx.current.pos.X
	}
	wp := ctx.wrapPositions[n-1]
	if wp == 0 {
		wp = ctx.WindowWidth() - ctx.style.WindowPadding
	}
	return max(origin+wp-x, 1)
}
