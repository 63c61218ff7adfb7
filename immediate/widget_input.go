package immediate

import (
	"math"
	"strconv"
)

// InputText draws an editable single-line field with label to its right.
// bufSize is the capacity in runes including a terminator, so the field
// holds at most bufSize-1 runes. It returns whether the text changed and
// the text to keep.
func (ctx *Context) InputText(label, value string, bufSize int) (bool, string) {
	pos := ctx.itemPos()
	id := ctx.GetID(label)
	limit := max(bufSize-1, 0)

	runes := []rune(value)
	state := GetState(ctx, id, newInputTextState(len(runes)))

	w := ctx.fieldWidth()
	h := ctx.frameHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	pad := ctx.style.FramePadding
	hovered := ctx.isHovered(id, rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	if state.Editing && (ctx.focusedID != id || (clicked && !hovered)) {
		state.Editing = false
		state.ClearSelection()
	}

	state.CursorPos = min(max(state.CursorPos, 0), len(runes))
	textX := pos.X + pad
	maxWidth := w - 2*pad

	if hovered && clicked {
		state.Editing = true
		state.CursorBlinkTime = 0
		ctx.focusedID = id

		// Place the cursor at the clicked character.
		clickX := ctx.Input.MouseX - textX + state.ScrollOffset
		state.CursorPos = 0
		for i := 0; i <= len(runes); i++ {
			if ctx.MeasureText(string(runes[:i])).X > clickX {
				break
			}
			state.CursorPos = i
		}
		state.ClearSelection()
	}

	changed := false
	if state.Editing {
		ctx.WantCaptureKeyboard = true
		var edited bool
		edited, runes = ctx.processTextKeys(&state, runes, limit)
		if edited {
			value = string(runes)
			changed = true
		}
		if !state.Editing && ctx.focusedID == id {
			ctx.focusedID = 0
		}
	}

	bg := ctx.style.FrameBgColor
	if state.Editing {
		bg = ctx.style.FrameActiveBgColor
	} else if hovered {
		bg = ctx.style.FrameHoveredBgColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bg)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, h, ctx.style.BorderColor, ctx.style.BorderSize)

	// Scroll to keep the cursor visible.
	cursorW := ctx.MeasureText(string(runes[:state.CursorPos])).X
	if cursorW-state.ScrollOffset > maxWidth {
		state.ScrollOffset = cursorW - maxWidth + 10
	}
	if cursorW < state.ScrollOffset {
		state.ScrollOffset = cursorW
	}
	state.ScrollOffset = max(state.ScrollOffset, 0)

	ctx.DrawList.PushClipRect(textX, pos.Y, textX+maxWidth, pos.Y+h)
	if state.Editing && state.HasSelection() {
		start, end := state.SelectedRange()
		x0 := ctx.MeasureText(string(runes[:start])).X - state.ScrollOffset
		x1 := ctx.MeasureText(string(runes[:end])).X - state.ScrollOffset
		ctx.DrawList.AddRect(textX+x0, pos.Y+2, x1-x0, h-4, ctx.style.SelectedBgColor)
	}
	ctx.AddText(textX-state.ScrollOffset, pos.Y+pad, string(runes), ctx.textColor())
	ctx.DrawList.PopClipRect()

	if state.Editing {
		state.CursorBlinkTime += ctx.DeltaTime
		if int(state.CursorBlinkTime*2)%2 == 0 {
			cx := textX + cursorW - state.ScrollOffset
			ctx.DrawList.AddLine(cx, pos.Y+2, cx, pos.Y+h-2, ctx.textColor(), 1)
		}
	}

	labelW := ctx.drawLabel(pos.X+w, pos.Y, label)
	SetState(ctx, id, state)
	ctx.advanceCursor(Vec2{X: w + labelW, Y: h})
	return changed, value
}

// processTextKeys applies this frame's keys and typed characters to runes.
// Insertions stop at limit runes.
func (ctx *Context) processTextKeys(state *InputTextState, runes []rune, limit int) (bool, []rune) {
	input := ctx.Input
	changed := false
	textLen := len(runes)

	deleteSelection := func() bool {
		if !state.HasSelection() {
			return false
		}
		start, end := state.SelectedRange()
		state.PushUndo(string(runes))
		runes = append(runes[:start], runes[end:]...)
		state.CursorPos = start
		state.ClearSelection()
		return true
	}
	insert := func(text []rune) {
		room := limit - len(runes)
		if room <= 0 {
			return
		}
		if len(text) > room {
			text = text[:room]
		}
		state.PushUndo(string(runes))
		tail := append([]rune(nil), runes[state.CursorPos:]...)
		runes = append(append(runes[:state.CursorPos], text...), tail...)
		state.CursorPos += len(text)
		changed = true
	}
	restore := func(text string) {
		runes = []rune(text)
		state.CursorPos = len(runes)
		state.ClearSelection()
		changed = true
	}

	if input.ModCtrl {
		switch {
		case input.KeyPressed(KeyA):
			state.SelectAll(textLen)
			return false, runes
		case input.KeyPressed(KeyC):
			if state.HasSelection() {
				start, end := state.SelectedRange()
				clipboardSetText(string(runes[start:end]))
			}
			return false, runes
		case input.KeyPressed(KeyX):
			if state.HasSelection() {
				start, end := state.SelectedRange()
				clipboardSetText(string(runes[start:end]))
				changed = deleteSelection()
			}
			return changed, runes
		case input.KeyPressed(KeyV):
			if clip := clipboardGetText(); clip != "" {
				changed = deleteSelection()
				insert([]rune(clip))
			}
			return changed, runes
		case input.KeyPressed(KeyZ) && !input.ModShift:
			if text, ok := state.Undo(string(runes)); ok {
				restore(text)
			}
			return changed, runes
		case input.KeyPressed(KeyZ), input.KeyPressed(KeyY):
			if text, ok := state.Redo(); ok {
				restore(text)
			}
			return changed, runes
		}
	}

	if input.KeyRepeated(KeyLeft) {
		from := state.CursorPos
		if state.CursorPos > 0 {
			if input.ModCtrl {
				state.CursorPos = wordBoundaryLeft(runes, state.CursorPos)
			} else {
				state.CursorPos--
			}
		}
		if input.ModShift {
			state.extendSelection(from)
		} else {
			state.ClearSelection()
		}
		state.CursorBlinkTime = 0
	}

	if input.KeyRepeated(KeyRight) {
		from := state.CursorPos
		if state.CursorPos < textLen {
			if input.ModCtrl {
				state.CursorPos = wordBoundaryRight(runes, state.CursorPos)
			} else {
				state.CursorPos++
			}
		}
		if input.ModShift {
			state.extendSelection(from)
		} else {
			state.ClearSelection()
		}
		state.CursorBlinkTime = 0
	}

	if input.KeyPressed(KeyHome) {
		from := state.CursorPos
		state.CursorPos = 0
		if input.ModShift {
			state.extendSelection(from)
		} else {
			state.ClearSelection()
		}
	}

	if input.KeyPressed(KeyEnd) {
		from := state.CursorPos
		state.CursorPos = textLen
		if input.ModShift {
			state.extendSelection(from)
		} else {
			state.ClearSelection()
		}
	}

	if input.KeyRepeated(KeyBackspace) {
		if deleteSelection() {
			changed = true
		} else if state.CursorPos > 0 {
			state.PushUndo(string(runes))
			runes = append(runes[:state.CursorPos-1], runes[state.CursorPos:]...)
			state.CursorPos--
			changed = true
		}
		state.CursorBlinkTime = 0
	}

	if input.KeyRepeated(KeyDelete) {
		if deleteSelection() {
			changed = true
		} else if state.CursorPos < len(runes) {
			state.PushUndo(string(runes))
			runes = append(runes[:state.CursorPos], runes[state.CursorPos+1:]...)
			changed = true
		}
		state.CursorBlinkTime = 0
	}

	if input.KeyPressed(KeyEscape) || input.KeyPressed(KeyEnter) {
		state.Editing = false
		state.ClearSelection()
		return changed, runes
	}

	var typed []rune
	for _, ch := range input.InputChars {
		if ch >= 32 {
			typed = append(typed, ch)
		}
	}
	if len(typed) > 0 {
		if deleteSelection() {
			changed = true
		}
		insert(typed)
	}
	return changed, runes
}

func wordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && isWhitespace(runes[pos]) {
		pos--
	}
	for pos > 0 && !isWhitespace(runes[pos-1]) {
		pos--
	}
	return pos
}

func wordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	for pos < n && !isWhitespace(runes[pos]) {
		pos++
	}
	for pos < n && isWhitespace(runes[pos]) {
		pos++
	}
	return pos
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// InputInt draws an integer field with step buttons and label to its right.
// Clicking the field edits it as text; Enter or clicking elsewhere commits
// and Escape discards. It returns whether the value changed and the value
// to keep.
func (ctx *Context) InputInt(label string, value int) (bool, int) {
	pos := ctx.itemPos()
	id := ctx.GetID(label)
	state := GetState(ctx, id, intEditState{})

	h := ctx.frameHeight()
	gap := ctx.style.ItemSpacing
	fieldW := max(ctx.fieldWidth()-2*(h+gap), 40)
	field := Rect{X: pos.X, Y: pos.Y, W: fieldW, H: h}
	minus := Rect{X: field.X + fieldW + gap, Y: pos.Y, W: h, H: h}
	plus := Rect{X: minus.X + h + gap, Y: pos.Y, W: h, H: h}

	hovered := ctx.isHovered(id, field)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)
	changed := false

	commit := func() {
		if n, err := strconv.Atoi(state.Text); err == nil && n != value {
			value = n
			changed = true
		} else if err != nil && state.Text != "" {
			logger.Debug("discarding integer edit", "label", label, "text", state.Text)
		}
		state = intEditState{}
		if ctx.focusedID == id {
			ctx.focusedID = 0
		}
	}

	if state.Editing && (ctx.focusedID != id || (clicked && !hovered)) {
		commit()
	}
	if hovered && clicked && !state.Editing {
		state = intEditState{Editing: true, Text: strconv.Itoa(value)}
		ctx.focusedID = id
	}

	if state.Editing {
		ctx.WantCaptureKeyboard = true
		input := ctx.Input
		for _, ch := range input.InputChars {
			if (ch >= '0' && ch <= '9') || (ch == '-' && state.Text == "") {
				state.Text += string(ch)
			}
		}
		if input.KeyRepeated(KeyBackspace) && state.Text != "" {
			r := []rune(state.Text)
			state.Text = string(r[:len(r)-1])
		}
		switch {
		case input.KeyPressed(KeyEnter):
			commit()
		case input.KeyPressed(KeyEscape):
			state = intEditState{}
			ctx.focusedID = 0
		}
	}

	bg := ctx.style.FrameBgColor
	if state.Editing {
		bg = ctx.style.FrameActiveBgColor
	} else if hovered {
		bg = ctx.style.FrameHoveredBgColor
	}
	ctx.DrawList.AddRect(field.X, field.Y, field.W, field.H, bg)
	ctx.DrawList.AddRectOutline(field.X, field.Y, field.W, field.H, ctx.style.BorderColor, ctx.style.BorderSize)

	text := strconv.Itoa(value)
	if state.Editing {
		text = state.Text
	}
	pad := ctx.style.FramePadding
	ctx.DrawList.PushClipRect(field.X+pad, field.Y, field.X+field.W-pad, field.Y+field.H)
	ctx.AddText(field.X+pad, field.Y+pad, text, ctx.textColor())
	ctx.DrawList.PopClipRect()
	if state.Editing {
		cx := field.X + pad + ctx.MeasureText(text).X
		ctx.DrawList.AddLine(cx, field.Y+2, cx, field.Y+h-2, ctx.textColor(), 1)
	}

	if ctx.buttonAt(hashID(id, "-"), minus, "-") && value > math.MinInt {
		value--
		changed = true
	}
	if ctx.buttonAt(hashID(id, "+"), plus, "+") && value < math.MaxInt {
		value++
		changed = true
	}

	labelW := ctx.drawLabel(plus.X+plus.W, pos.Y, label)
	SetState(ctx, id, state)
	ctx.advanceCursor(Vec2{X: plus.X + plus.W - pos.X + labelW, Y: h})
	return changed, value
}
