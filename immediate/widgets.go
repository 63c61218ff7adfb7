package immediate

import "strings"

// Text draws text in the current text color, wrapped at the current wrap
// position if one is pushed.
func (ctx *Context) Text(text string) {
	pos := ctx.itemPos()

	var lines []string
	if wrap := ctx.wrapWidth(pos.X); wrap > 0 {
		lines = WrapText(ctx.font, ctx.style.FontScale, text, wrap, WrapModeAuto)
	} else {
		lines = strings.Split(text, "\n")
	}

	lh := ctx.lineHeight()
	color := ctx.textColor()
	var width float32
	for i, line := range lines {
		ctx.AddText(pos.X, pos.Y+float32(i)*lh, line, color)
		width = max(width, ctx.MeasureText(line).X)
	}
	ctx.advanceCursor(Vec2{X: width, Y: lh * float32(len(lines))})
}

// Button draws a button sized to its label and reports whether it was
// clicked this frame.
func (ctx *Context) Button(label string) bool {
	pos := ctx.itemPos()
	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + 2*SpaceMD,
		Y: textSize.Y + 2*ctx.style.FramePadding,
	}

	clicked := ctx.buttonAt(ctx.GetID(label), Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}, label)
	ctx.advanceCursor(size)
	return clicked
}

// buttonAt draws a button in rect with a centered label.
func (ctx *Context) buttonAt(id ID, rect Rect, label string) bool {
	bg := ctx.style.ButtonColor
	if ctx.isPressed(id, rect) {
		bg = ctx.style.ButtonActiveColor
	} else if ctx.isHovered(id, rect) {
		bg = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)

	textSize := ctx.MeasureText(label)
	ctx.AddText(rect.X+(rect.W-textSize.X)/2, rect.Y+(rect.H-textSize.Y)/2, label, ctx.textColor())

	return ctx.isClicked(id, rect)
}

// Checkbox draws a box with label to its right. Clicking either toggles the
// value. It returns whether the value changed and the value to keep.
func (ctx *Context) Checkbox(label string, value bool) (bool, bool) {
	pos := ctx.itemPos()
	id := ctx.GetID(label)

	box := ctx.frameHeight()
	labelW := ctx.MeasureText(label).X
	total := box + ctx.style.ItemSpacing + labelW
	rect := Rect{X: pos.X, Y: pos.Y, W: total, H: box}

	bg := ctx.style.FrameBgColor
	if ctx.isPressed(id, rect) {
		bg = ctx.style.FrameActiveBgColor
	} else if ctx.isHovered(id, rect) {
		bg = ctx.style.FrameHoveredBgColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, box, box, bg)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, box, box, ctx.style.BorderColor, ctx.style.BorderSize)

	changed := ctx.isClicked(id, rect)
	if changed {
		value = !value
	}

	if value {
		// Check mark
		p := box * 0.25
		x0, y0 := pos.X+p, pos.Y+box*0.5
		x1, y1 := pos.X+box*0.45, pos.Y+box-p
		x2, y2 := pos.X+box-p, pos.Y+p
		ctx.DrawList.AddLine(x0, y0, x1, y1, ctx.style.CheckmarkColor, 2)
		ctx.DrawList.AddLine(x1, y1, x2, y2, ctx.style.CheckmarkColor, 2)
	}

	ctx.AddText(pos.X+box+ctx.style.ItemSpacing, pos.Y+ctx.style.FramePadding, label, ctx.textColor())
	ctx.advanceCursor(Vec2{X: total, Y: box})
	return changed, value
}

// drawLabel draws an input's label to the right of its frame at x and
// returns the label width.
func (ctx *Context) drawLabel(x, y float32, label string) float32 {
	if label == "" {
		return 0
	}
	ctx.AddText(x+ctx.style.ItemSpacing, y+ctx.style.FramePadding, label, ctx.textColor())
	return ctx.style.ItemSpacing + ctx.MeasureText(label).X
}
