package immediate

const minPopupWidth = 120

type menuState struct {
	open      ID // open menu, 0 when none
	barActive bool
	barHeight float32 // height of the last drawn bar
	barX      float32
	popup     *popup
	widths    map[ID]float32 // popup widths measured last frame
}

// popup is an open menu being built this frame.
type popup struct {
	id      ID
	dl      *DrawList
	pos     Vec2
	width   float32
	needed  float32
	cursorY float32
}

// BeginMainMenuBar starts the menu bar along the top of the display.
// It returns false when called inside a window.
func (ctx *Context) BeginMainMenuBar() bool {
	if ctx.current != nil {
		logger.Warn("BeginMainMenuBar called inside a window", "title", ctx.current.title)
		return false
	}

	h := ctx.frameHeight()
	ctx.menu.barHeight = h
	ctx.menu.barActive = true
	ctx.menu.barX = ctx.style.WindowPadding

	ctx.DrawList = ctx.ForegroundDrawList
	ctx.DrawList.AddRect(0, 0, ctx.DisplaySize.X, h, ctx.style.MenuBarBgColor)
	ctx.interactive = true
	ctx.idStack = append(ctx.idStack[:0], hashID(0, "#menubar"))
	ctx.nextBlockRects = append(ctx.nextBlockRects, Rect{W: ctx.DisplaySize.X, H: h})
	return true
}

// EndMainMenuBar ends the bar started by BeginMainMenuBar.
func (ctx *Context) EndMainMenuBar() {
	if !ctx.menu.barActive {
		return
	}
	if ctx.menu.popup != nil {
		ctx.EndMenu()
	}
	ctx.menu.barActive = false
	ctx.interactive = false
	ctx.idStack = ctx.idStack[:0]
}

// BeginMenu adds a menu to the bar and reports whether it is open. When it
// returns true, add items with MenuItem and close with EndMenu.
func (ctx *Context) BeginMenu(label string) bool {
	if !ctx.menu.barActive || ctx.menu.popup != nil {
		return false
	}

	id := ctx.GetID(label)
	textSize := ctx.MeasureText(label)
	rect := Rect{X: ctx.menu.barX, Y: 0, W: textSize.X + 2*SpaceMD, H: ctx.menu.barHeight}
	ctx.menu.barX += rect.W

	hovered := ctx.isHovered(id, rect)
	switch {
	case hovered && ctx.Input.MouseClicked(MouseButtonLeft):
		if ctx.menu.open == id {
			ctx.menu.open = 0
		} else {
			ctx.menu.open = id
		}
		logger.Debug("menu toggled", "menu", label, "open", ctx.menu.open == id)
	case hovered && ctx.menu.open != 0:
		// Sliding across the bar switches menus.
		ctx.menu.open = id
	}

	open := ctx.menu.open == id
	if open {
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.SelectedBgColor)
	} else if hovered {
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.HoveredBgColor)
	}
	ctx.AddText(rect.X+SpaceMD, rect.Y+ctx.style.FramePadding, label, ctx.textColor())

	if !open {
		return false
	}

	p := &popup{
		id:     id,
		dl:     AcquireDrawList(),
		pos:    Vec2{X: rect.X, Y: rect.H},
		width:  max(ctx.menu.widths[id], minPopupWidth),
		needed: minPopupWidth,
	}
	p.cursorY = p.pos.Y + ctx.style.FramePadding
	ctx.popupLists = append(ctx.popupLists, p.dl)
	ctx.menu.popup = p
	ctx.DrawList = p.dl
	ctx.PushID(label)
	return true
}

// EndMenu closes the popup opened by BeginMenu and draws its background.
func (ctx *Context) EndMenu() {
	p := ctx.menu.popup
	if p == nil {
		return
	}
	ctx.PopID()

	w := p.needed
	h := p.cursorY - p.pos.Y + ctx.style.FramePadding
	p.dl.InsertRect(p.pos.X, p.pos.Y, w, h, ctx.style.PopupBgColor)
	p.dl.AddRectOutline(p.pos.X, p.pos.Y, w, h, ctx.style.BorderColor, ctx.style.BorderSize)
	ctx.menu.widths[p.id] = w
	ctx.nextBlockRects = append(ctx.nextBlockRects, Rect{X: p.pos.X, Y: p.pos.Y, W: w, H: h})

	ctx.menu.popup = nil
	ctx.DrawList = ctx.ForegroundDrawList
}

// MenuItem adds an item to the open menu and reports whether it was
// clicked. The shortcut text is drawn right-aligned and is display only.
// A click closes the menu.
func (ctx *Context) MenuItem(label, shortcut string) bool {
	p := ctx.menu.popup
	if p == nil {
		return false
	}

	id := ctx.GetID(label)
	pad := ctx.style.FramePadding
	labelW := ctx.MeasureText(label).X
	var shortcutW float32
	if shortcut != "" {
		shortcutW = ctx.MeasureText(shortcut).X
	}
	need := labelW + 2*SpaceMD
	if shortcut != "" {
		need += shortcutW + SpaceXL
	}
	p.needed = max(p.needed, need)

	w := max(p.width, need)
	rect := Rect{X: p.pos.X, Y: p.cursorY, W: w, H: ctx.frameHeight()}
	p.cursorY += rect.H

	hovered := ctx.isHovered(id, rect)
	if hovered {
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.HoveredBgColor)
	}
	ctx.AddText(rect.X+SpaceMD, rect.Y+pad, label, ctx.textColor())
	if shortcut != "" {
		ctx.AddText(rect.X+w-SpaceMD-shortcutW, rect.Y+pad, shortcut, ctx.style.TextDisabledColor)
	}

	clicked := hovered && ctx.Input.MouseClicked(MouseButtonLeft)
	if clicked {
		logger.Debug("menu item clicked", "item", label)
		ctx.menu.open = 0
	}
	return clicked
}
