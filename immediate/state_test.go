package immediate

import "testing"

func TestGetStateDefaultsAndTypes(t *testing.T) {
	ctx := NewContext()
	id := ctx.GetID("field")

	if got := GetState(ctx, id, 42); got != 42 {
		t.Errorf("expected default for missing state, got %d", got)
	}
	SetState(ctx, id, "text")
	if got := GetState(ctx, id, 42); got != 42 {
		t.Errorf("expected default for mismatched type, got %d", got)
	}
	if got := GetState(ctx, id, ""); got != "text" {
		t.Errorf("expected stored string, got %q", got)
	}
	DeleteState(ctx, id)
	if got := GetState(ctx, id, "gone"); got != "gone" {
		t.Errorf("expected deleted state, got %q", got)
	}
}

func TestSelection(t *testing.T) {
	s := newInputTextState(5)
	if s.HasSelection() {
		t.Fatal("expected no initial selection")
	}
	if start, end := s.SelectedRange(); start != -1 || end != -1 {
		t.Errorf("expected -1,-1, got %d,%d", start, end)
	}

	// Shift+Left twice from the end.
	s.CursorPos = 3
	s.extendSelection(5)
	if start, end := s.SelectedRange(); start != 3 || end != 5 {
		t.Errorf("expected 3,5, got %d,%d", start, end)
	}

	s.SelectAll(5)
	if start, end := s.SelectedRange(); start != 0 || end != 5 || s.CursorPos != 5 {
		t.Errorf("expected all selected, got %d,%d cursor %d", start, end, s.CursorPos)
	}
	s.ClearSelection()
	if s.HasSelection() {
		t.Error("expected selection cleared")
	}
}

func TestUndoRedo(t *testing.T) {
	s := newInputTextState(0)
	if _, ok := s.Undo(""); ok {
		t.Fatal("expected nothing to undo")
	}

	s.PushUndo("")
	s.PushUndo("a")
	s.PushUndo("a")
	current := "ab"

	text, ok := s.Undo(current)
	if !ok || text != "a" {
		t.Fatalf("expected undo to \"a\", got %q %v", text, ok)
	}
	text, _ = s.Undo(text)
	if text != "" {
		t.Fatalf("expected undo to \"\", got %q", text)
	}
	if _, ok := s.Undo(text); ok {
		t.Error("expected undo history exhausted")
	}

	s.Redo()
	text, _ = s.Redo()
	if text != "ab" {
		t.Errorf("expected redo back to \"ab\", got %q", text)
	}
	if _, ok := s.Redo(); ok {
		t.Error("expected redo history exhausted")
	}

	// A new edit discards the redo tail.
	s.Undo("ab")
	s.PushUndo("a")
	if _, ok := s.Redo(); ok {
		t.Error("expected redo cleared by a new edit")
	}
}

func TestUndoHistoryBounded(t *testing.T) {
	s := newInputTextState(0)
	for i := 0; i < maxUndoSize+10; i++ {
		s.PushUndo(string(rune('a' + i%26)) + string(rune('0'+i/26)))
	}
	if len(s.UndoStack) != maxUndoSize || s.UndoIndex != maxUndoSize {
		t.Errorf("expected %d entries, got %d at %d", maxUndoSize, len(s.UndoStack), s.UndoIndex)
	}
}

func TestIDScopes(t *testing.T) {
	ctx := NewContext()
	top := ctx.GetID("Save")
	if top != ctx.GetID("Save") {
		t.Fatal("expected stable IDs")
	}

	ctx.PushID("File")
	nested := ctx.GetID("Save")
	ctx.PopID()
	if nested == top {
		t.Error("expected scoped ID to differ from the top-level one")
	}
	if ctx.CurrentID() != 0 {
		t.Errorf("expected top-level scope after PopID, got %d", ctx.CurrentID())
	}
	ctx.PopID()
}
