package immediate

import "strconv"

var channelNames = [4]string{"R", "G", "B", "A"}

// ColorEdit3 edits an RGB color with components in 0.0-1.0. Each channel
// is shown as 0-255 and changed by dragging it horizontally.
func (ctx *Context) ColorEdit3(label string, rgb [3]float32) (bool, [3]float32) {
	changed := ctx.colorEdit(label, rgb[:])
	return changed, rgb
}

// ColorEdit4 is ColorEdit3 with an alpha channel.
func (ctx *Context) ColorEdit4(label string, rgba [4]float32) (bool, [4]float32) {
	changed := ctx.colorEdit(label, rgba[:])
	return changed, rgba
}

func (ctx *Context) colorEdit(label string, ch []float32) bool {
	pos := ctx.itemPos()
	id := ctx.GetID(label)
	s := ctx.style

	h := ctx.frameHeight()
	alpha := float32(1)
	if len(ch) == 4 {
		alpha = ch[3]
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, h, h, RGBAf(ch[0], ch[1], ch[2], 1))
	if alpha < 1 {
		// Lower half shows the color with its alpha over the frame.
		ctx.DrawList.AddRect(pos.X, pos.Y+h/2, h, h/2, s.FrameBgColor)
		ctx.DrawList.AddRect(pos.X, pos.Y+h/2, h, h/2, RGBAf(ch[0], ch[1], ch[2], alpha))
	}
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, h, h, s.BorderColor, s.BorderSize)

	n := float32(len(ch))
	x := pos.X + h + s.ItemSpacing
	total := max(ctx.fieldWidth()-h-s.ItemSpacing, 4*36)
	fw := (total - s.ItemSpacing*(n-1)) / n

	mouse := ctx.mousePos()
	changed := false
	for i := range ch {
		fid := hashID(id, channelNames[i])
		rect := Rect{X: x, Y: pos.Y, W: fw, H: h}
		x += fw + s.ItemSpacing

		drag := GetState(ctx, fid, dragState{})
		if ctx.isClicked(fid, rect) {
			drag = dragState{Active: true, StartX: mouse.X, StartValue: ch[i]}
			ctx.activeID = fid
		}
		if drag.Active {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				// One pixel is one step of 255.
				v := clampf(drag.StartValue+(mouse.X-drag.StartX)/255, 0, 1)
				if v != ch[i] {
					ch[i] = v
					changed = true
				}
			} else {
				drag.Active = false
				if ctx.activeID == fid {
					ctx.activeID = 0
				}
			}
		}
		SetState(ctx, fid, drag)

		bg := s.FrameBgColor
		if drag.Active {
			bg = s.FrameActiveBgColor
		} else if ctx.isHovered(fid, rect) {
			bg = s.FrameHoveredBgColor
		}
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)

		text := channelNames[i] + ":" + strconv.Itoa(int(ch[i]*255+0.5))
		tw := ctx.MeasureText(text).X
		ctx.DrawList.PushClipRect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)
		ctx.AddText(rect.X+(rect.W-tw)/2, rect.Y+s.FramePadding, text, ctx.textColor())
		ctx.DrawList.PopClipRect()
	}

	labelW := ctx.drawLabel(x-s.ItemSpacing, pos.Y, label)
	ctx.advanceCursor(Vec2{X: x - s.ItemSpacing - pos.X + labelW, Y: h})
	return changed
}
