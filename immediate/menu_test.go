package immediate_test

import (
	"testing"

	"github.com/go-theft-auto/quickgui"
	"github.com/go-theft-auto/quickgui/immediate"
)

// The File menu sits at 8,0 (48x24); its popup starts at 8,24 and the
// first item spans y 28-52.
type menuRecorder struct {
	open    []bool
	clicked []bool
}

func (m *menuRecorder) draw(ctx *immediate.Context) {
	if !ctx.BeginMainMenuBar() {
		return
	}
	open := ctx.BeginMenu("File")
	m.open = append(m.open, open)
	clicked := false
	if open {
		clicked = ctx.MenuItem("Quit", "Ctrl + Q")
		ctx.EndMenu()
	}
	m.clicked = append(m.clicked, clicked)
	ctx.EndMainMenuBar()
}

func TestMenuOpenAndSelect(t *testing.T) {
	h := newHarness(t)
	m := &menuRecorder{}

	h.frame(m.draw)
	h.press(20, 10)
	h.frame(m.draw)
	h.release()
	h.frame(m.draw)
	h.press(20, 40)
	h.frame(m.draw)
	h.release()
	h.frame(m.draw)

	wantOpen := []bool{false, true, true, true, false}
	wantClicked := []bool{false, false, false, true, false}
	for i := range wantOpen {
		if m.open[i] != wantOpen[i] || m.clicked[i] != wantClicked[i] {
			t.Errorf("frame %d: expected open=%v clicked=%v, got open=%v clicked=%v",
				i, wantOpen[i], wantClicked[i], m.open[i], m.clicked[i])
		}
	}
}

func TestMenuClosesOnClickElsewhere(t *testing.T) {
	h := newHarness(t)
	m := &menuRecorder{}

	h.frame(m.draw)
	h.press(20, 10)
	h.frame(m.draw)
	h.release()
	h.frame(m.draw)
	h.press(500, 500)
	h.frame(m.draw)

	if !m.open[2] || m.open[3] {
		t.Errorf("expected menu closed by outside click, got %v", m.open)
	}
}

func TestMenuClosesOnEscape(t *testing.T) {
	h := newHarness(t)
	m := &menuRecorder{}

	h.frame(m.draw)
	h.press(20, 10)
	h.frame(m.draw)
	h.release()
	h.input.SetKey(immediate.KeyEscape, true)
	h.frame(m.draw)

	if m.open[2] {
		t.Error("expected Escape to close the menu")
	}
}

func TestPopupBlocksWindowBeneath(t *testing.T) {
	h := newHarness(t)
	m := &menuRecorder{}
	clicked := false
	draw := func(ctx *immediate.Context) {
		m.draw(ctx)
		// Button spans y 52-76, overlapping the popup's bottom edge.
		ctx.BeginWindow("W", 300, 200, &quickgui.Point{X: 0, Y: 20})
		clicked = ctx.Button("OK") || clicked
		ctx.EndWindow()
	}

	h.frame(draw)
	h.press(20, 10)
	h.frame(draw)
	h.release()
	h.frame(draw)
	h.press(20, 54)
	h.frame(draw)

	if clicked {
		t.Error("expected click on the popup not to reach the window")
	}
	if !m.open[3] {
		t.Error("expected click inside the popup to keep it open")
	}
}

func TestMenuDrawnAboveWindows(t *testing.T) {
	h := newHarness(t)
	m := &menuRecorder{}
	draw := func(ctx *immediate.Context) {
		m.draw(ctx)
		inWindow(ctx, "W", func() {})
	}

	h.frame(draw)
	h.press(20, 10)
	h.frame(draw)

	// Window, menu bar, popup.
	if len(h.r.lists) != 3 {
		t.Fatalf("expected 3 lists, got %d", len(h.r.lists))
	}
	if got := h.r.lists[0].vertices[0].Pos; got != [2]float32{100, 100} {
		t.Errorf("expected window first, got %v", got)
	}
	popupBg := immediate.DarkStyle().PopupBgColor
	if got := h.r.lists[2].vertices[0].Color; got != popupBg {
		t.Errorf("expected popup background last, got %#x", got)
	}
}

func TestMenuBarRefusedInsideWindow(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *immediate.Context) {
		inWindow(ctx, "W", func() {
			if ctx.BeginMainMenuBar() {
				t.Error("expected menu bar refused inside a window")
			}
		})
	})
}
