package immediate

import "github.com/go-theft-auto/quickgui"

const (
	defaultWindowWidth  = 320
	defaultWindowHeight = 240
	minWindowWidth      = 80
	resizeGripSize      = 12
	cascadeStep         = 24
	cascadeOrigin       = 20
)

// window is the persistent state of one titled window.
type window struct {
	id        ID
	title     string
	pos       Vec2
	size      Vec2
	fitFrames int // frames left to size the window to its content
	lastFrame uint64
	dl        *DrawList

	drag   dragState
	resize dragState
}

func (w *window) rect() Rect {
	return Rect{X: w.pos.X, Y: w.pos.Y, W: w.size.X, H: w.size.Y}
}

func (w *window) gripRect() Rect {
	return Rect{
		X: w.pos.X + w.size.X - resizeGripSize,
		Y: w.pos.Y + w.size.Y - resizeGripSize,
		W: resizeGripSize,
		H: resizeGripSize,
	}
}

func (ctx *Context) titleBarHeight() float32 {
	return ctx.frameHeight()
}

func (ctx *Context) findWindow(id ID) *window {
	for _, w := range ctx.windows {
		if w.id == id {
			return w
		}
	}
	return nil
}

// raise moves w to the front.
func (ctx *Context) raise(w *window) {
	for i, other := range ctx.windows {
		if other == w {
			ctx.windows = append(ctx.windows[:i], ctx.windows[i+1:]...)
			ctx.windows = append(ctx.windows, w)
			return
		}
	}
}

func (ctx *Context) isFront(w *window) bool {
	return len(ctx.windows) > 0 && ctx.windows[len(ctx.windows)-1] == w
}

// createWindow places a new window. Without a size it fits its content on
// the first frame; without a position it cascades below the menu bar.
func (ctx *Context) createWindow(id ID, title string, width, height int, pos *quickgui.Point) *window {
	w := &window{id: id, title: title}

	if width > 0 && height > 0 {
		w.size = Vec2{X: float32(width), Y: float32(height)}
	} else {
		w.size = Vec2{X: defaultWindowWidth, Y: defaultWindowHeight}
		w.fitFrames = 1
	}

	if pos != nil {
		w.pos = Vec2{X: float32(pos.X), Y: float32(pos.Y)}
	} else {
		n := float32(len(ctx.windows))
		w.pos = Vec2{
			X: cascadeOrigin + n*cascadeStep,
			Y: ctx.menu.barHeight + cascadeOrigin + n*cascadeStep,
		}
	}

	ctx.windows = append(ctx.windows, w)
	logger.Debug("window created", "title", title, "pos", w.pos, "size", w.size)
	return w
}

// BeginWindow opens the window titled title. Widgets called before
// EndWindow are placed inside it. Size and position only apply the first
// time a title is seen; pos may be nil.
func (ctx *Context) BeginWindow(title string, width, height int, pos *quickgui.Point) {
	if ctx.current != nil {
		logger.Warn("BeginWindow called inside another window", "title", title, "open", ctx.current.title)
		ctx.EndWindow()
	}

	id := hashID(0, title)
	w := ctx.findWindow(id)
	if w == nil {
		w = ctx.createWindow(id, title, width, height, pos)
	}
	w.lastFrame = ctx.FrameCount
	w.dl = AcquireDrawList()

	ctx.current = w
	ctx.DrawList = w.dl
	ctx.interactive = ctx.hovered == w
	ctx.idStack = append(ctx.idStack[:0], id)

	ctx.handleWindowMove(w)

	pad := ctx.style.WindowPadding
	top := w.pos.Y + ctx.titleBarHeight()
	if w.fitFrames > 0 {
		w.dl.PushClipRect(0, 0, ctx.DisplaySize.X, ctx.DisplaySize.Y)
	} else {
		w.dl.PushClipRect(w.pos.X+pad, top, w.pos.X+w.size.X-pad, w.pos.Y+w.size.Y-pad)
	}

	ctx.cursor = Vec2{X: w.pos.X + pad, Y: top + pad}
	ctx.contentMin = ctx.cursor.X
	ctx.contentMax = ctx.cursor
}

// handleWindowMove drags w by its title bar and resizes it by the grip.
func (ctx *Context) handleWindowMove(w *window) {
	input := ctx.Input
	mouse := ctx.mousePos()
	gripID := hashID(w.id, "#resize")
	titleH := ctx.titleBarHeight()

	if ctx.interactive && ctx.activeID == 0 && input.MouseClicked(MouseButtonLeft) {
		switch {
		case w.gripRect().Contains(mouse):
			w.resize = dragState{Active: true, StartX: mouse.X, StartY: mouse.Y, Offset: w.size}
			ctx.activeID = gripID
		case Rect{X: w.pos.X, Y: w.pos.Y, W: w.size.X, H: titleH}.Contains(mouse):
			w.drag = dragState{Active: true, Offset: w.pos.Sub(mouse)}
			ctx.activeID = w.id
		}
	}

	if w.drag.Active {
		if input.MouseDown(MouseButtonLeft) {
			p := mouse.Add(w.drag.Offset)
			// Keep part of the title bar on screen.
			p.X = clampf(p.X, -(w.size.X - 40), max(ctx.DisplaySize.X-40, 0))
			p.Y = clampf(p.Y, 0, max(ctx.DisplaySize.Y-titleH, 0))
			w.pos = p
		} else {
			w.drag.Active = false
			logger.Debug("window moved", "title", w.title, "pos", w.pos)
		}
	}

	if w.resize.Active {
		if input.MouseDown(MouseButtonLeft) {
			w.size = Vec2{
				X: max(w.resize.Offset.X+mouse.X-w.resize.StartX, minWindowWidth),
				Y: max(w.resize.Offset.Y+mouse.Y-w.resize.StartY, titleH*2),
			}
			w.fitFrames = 0
		} else {
			w.resize.Active = false
			logger.Debug("window resized", "title", w.title, "size", w.size)
		}
	}
}

// EndWindow closes the window opened by BeginWindow and draws its frame
// underneath the content.
func (ctx *Context) EndWindow() {
	w := ctx.current
	if w == nil {
		logger.Debug("EndWindow without matching BeginWindow")
		return
	}
	dl := w.dl
	dl.PopClipRect()

	s := ctx.style
	titleH := ctx.titleBarHeight()
	if w.fitFrames > 0 {
		w.size = Vec2{
			X: max(ctx.contentMax.X-w.pos.X+s.WindowPadding, ctx.MeasureText(w.title).X+2*s.WindowPadding, minWindowWidth),
			Y: max(ctx.contentMax.Y-w.pos.Y+s.WindowPadding, titleH*2),
		}
		w.fitFrames--
	}

	r := w.rect()
	dl.InsertRect(r.X, r.Y, r.W, r.H, s.WindowBgColor)

	titleBg := s.TitleBgColor
	if ctx.isFront(w) {
		titleBg = s.TitleActiveBgColor
	}
	dl.AddRect(r.X, r.Y, r.W, titleH, titleBg)
	title := TruncateText(ctx.font, s.FontScale, w.title, r.W-2*s.WindowPadding)
	ctx.AddTextTo(dl, r.X+s.WindowPadding, r.Y+s.FramePadding, title, s.TextColor)
	dl.AddRectOutline(r.X, r.Y, r.W, r.H, s.WindowBorderColor, s.BorderSize)

	g := w.gripRect()
	dl.AddTriangle(g.X+g.W, g.Y, g.X+g.W, g.Y+g.H, g.X, g.Y+g.H, s.ResizeGripColor)

	ctx.current = nil
	ctx.DrawList = ctx.ForegroundDrawList
	ctx.interactive = false
	ctx.idStack = ctx.idStack[:0]
}
