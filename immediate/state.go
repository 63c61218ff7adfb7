package immediate

// StateStore persists widget state between frames.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is an in-memory StateStore.
type MapStateStore map[ID]any

func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState returns the state stored under id, or defaultVal when it is
// missing or of another type.
func GetState[T any](ctx *Context, id ID, defaultVal T) T {
	if v, ok := ctx.stateStore.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState stores widget state under id.
func SetState[T any](ctx *Context, id ID, value T) {
	ctx.stateStore.Set(id, value)
}

// DeleteState removes the state under id.
func DeleteState(ctx *Context, id ID) {
	ctx.stateStore.Delete(id)
}

// InputTextState is the editing state of a text field.
type InputTextState struct {
	Editing bool

	// In runes, not bytes.
	CursorPos int

	// SelectionStart is the anchor and SelectionEnd follows the cursor.
	// -1 means no selection.
	SelectionStart int
	SelectionEnd   int

	ScrollOffset float32

	UndoStack []string
	UndoIndex int

	CursorBlinkTime float32
}

func newInputTextState(textLen int) InputTextState {
	return InputTextState{
		CursorPos:      textLen,
		SelectionStart: -1,
		SelectionEnd:   -1,
	}
}

// HasSelection reports whether a non-empty range is selected.
func (s *InputTextState) HasSelection() bool {
	return s.SelectionStart >= 0 && s.SelectionStart != s.SelectionEnd
}

// SelectedRange returns the selection with start <= end, or -1, -1.
func (s *InputTextState) SelectedRange() (start, end int) {
	if !s.HasSelection() {
		return -1, -1
	}
	if s.SelectionStart < s.SelectionEnd {
		return s.SelectionStart, s.SelectionEnd
	}
	return s.SelectionEnd, s.SelectionStart
}

func (s *InputTextState) ClearSelection() {
	s.SelectionStart = -1
	s.SelectionEnd = -1
}

func (s *InputTextState) SelectAll(textLen int) {
	s.SelectionStart = 0
	s.SelectionEnd = textLen
	s.CursorPos = textLen
}

// extendSelection moves the selection end to the cursor, anchoring at from
// when nothing was selected.
func (s *InputTextState) extendSelection(from int) {
	if s.SelectionStart < 0 {
		s.SelectionStart = from
	}
	s.SelectionEnd = s.CursorPos
}

const maxUndoSize = 50

// PushUndo records text before a change.
func (s *InputTextState) PushUndo(text string) {
	if s.UndoIndex < len(s.UndoStack) {
		s.UndoStack = s.UndoStack[:s.UndoIndex]
	}
	if n := len(s.UndoStack); n > 0 && s.UndoStack[n-1] == text {
		return
	}

	s.UndoStack = append(s.UndoStack, text)
	s.UndoIndex = len(s.UndoStack)

	if len(s.UndoStack) > maxUndoSize {
		s.UndoStack = s.UndoStack[1:]
		s.UndoIndex--
	}
}

// Undo steps back one entry.
func (s *InputTextState) Undo(current string) (string, bool) {
	if n := len(s.UndoStack); s.UndoIndex == n && n > 0 && s.UndoStack[n-1] != current {
		s.UndoStack = append(s.UndoStack, current)
	}
	if s.UndoIndex > 0 {
		s.UndoIndex--
		return s.UndoStack[s.UndoIndex], true
	}
	return "", false
}

// Redo steps forward one entry.
func (s *InputTextState) Redo() (string, bool) {
	if s.UndoIndex < len(s.UndoStack)-1 {
		s.UndoIndex++
		return s.UndoStack[s.UndoIndex], true
	}
	return "", false
}

// intEditState is an integer field being typed into.
type intEditState struct {
	Editing bool
	Text    string
}

// dragState tracks a mouse drag on a window or value.
type dragState struct {
	Active     bool
	StartX     float32
	StartY     float32
	StartValue float32
	Offset     Vec2
}
