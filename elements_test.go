package quickgui_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-theft-auto/quickgui"
)

// captureLogs routes package logs into a buffer for the test's duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	quickgui.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { quickgui.SetLogger(nil) })
	return &buf
}

func newElements() (*quickgui.Elements, *fakeRenderer) {
	r := newFakeRenderer()
	return quickgui.NewElements(quickgui.NewState(), r), r
}

func TestCheckboxScenario(t *testing.T) {
	el, r := newElements()

	if el.Checkbox("Enabled", false) {
		t.Error("Expected unchanged checkbox to return false")
	}
	if el.State().Len() != 0 {
		t.Errorf("Expected store untouched, got %v", el.State().Keys())
	}

	r.nextBool = ptr(true)
	if !el.Checkbox("Enabled", false) {
		t.Error("Expected changed checkbox to return true")
	}
	if b, _ := el.State().Get("Enabled", quickgui.Bool(false)).AsBool(); !b {
		t.Error("Expected stored value true")
	}

	// Next frame reads the stored value back.
	if !el.Checkbox("Enabled", false) {
		t.Error("Expected checkbox to remember true")
	}
	if r.labels[0] != " Enabled" {
		t.Errorf("Expected label with leading space, got %q", r.labels[0])
	}
}

func TestCheckboxWritesUnderKey(t *testing.T) {
	el, r := newElements()
	r.nextBool = ptr(true)

	el.Checkbox("Check me", false, quickgui.WithKey("check"))

	if !el.State().Contains("check") {
		t.Error("Expected value stored under explicit key")
	}
	if el.State().Contains("Check me") {
		t.Error("Expected nothing stored under label")
	}
}

func TestCheckboxKindConflict(t *testing.T) {
	logs := captureLogs(t)
	el, _ := newElements()
	el.State().Set("shared", quickgui.Int(5))

	if el.Checkbox("box", true, quickgui.WithKey("shared")) != true {
		t.Error("Expected default on kind conflict")
	}
	if !strings.Contains(logs.String(), "another kind") {
		t.Errorf("Expected kind warning, got %q", logs.String())
	}
}

func TestColorPickerScenario(t *testing.T) {
	el, r := newElements()

	got, err := el.ColorPicker("Pick", quickgui.Hex(0x008080))
	if err != nil {
		t.Fatal(err)
	}

	want := [3]float32{0, float32(128.0 / 255), float32(128.0 / 255)}
	if len(r.colorIn3) != 1 || r.colorIn3[0] != want {
		t.Errorf("Expected renderer to receive %v, got %v", want, r.colorIn3)
	}
	if got != quickgui.RGB(0, 128, 128) {
		t.Errorf("Expected (0, 128, 128), got %v", got)
	}
	if el.State().Len() != 0 {
		t.Error("Expected unchanged picker to leave store empty")
	}
	if !el.State().ConversionEnabled() {
		t.Error("Expected conversion re-enabled")
	}
}

func TestColorPickerStoresChange(t *testing.T) {
	el, r := newElements()
	r.nextColor3 = &[3]float32{1, 0, 0.2}

	got, err := el.ColorPicker("Pick", quickgui.Hex(0x008080), quickgui.WithKey("color"))
	if err != nil {
		t.Fatal(err)
	}
	if got != quickgui.RGB(255, 0, 51) {
		t.Errorf("Expected (255, 0, 51), got %v", got)
	}

	stored, ok := el.State().Get("color", quickgui.Value{}).AsColor()
	if !ok || stored != quickgui.RGB(255, 0, 51) {
		t.Errorf("Expected stored (255, 0, 51) in user domain, got %v", stored)
	}

	// The following frame draws the stored color.
	if _, err := el.ColorPicker("Pick", quickgui.Hex(0), quickgui.WithKey("color")); err != nil {
		t.Fatal(err)
	}
	if r.colorIn3[1] != [3]float32{1, 0, 0.2} {
		t.Errorf("Expected stored color drawn, got %v", r.colorIn3[1])
	}
}

func TestColorPickerAlpha(t *testing.T) {
	el, r := newElements()

	got, err := el.ColorPicker("Pick", quickgui.Hex(0xFFFFFF), quickgui.WithAlpha())
	if err != nil {
		t.Fatal(err)
	}
	if r.colorIn4[0] != [4]float32{1, 1, 1, 1} {
		t.Errorf("Expected alpha 1 appended, got %v", r.colorIn4[0])
	}
	if got != quickgui.RGBA(255, 255, 255, 1) {
		t.Errorf("Expected (255, 255, 255, 1), got %v", got)
	}

	_, _ = el.ColorPicker("Half", quickgui.RGBA(0, 0, 255, 0.5), quickgui.WithAlpha())
	if r.colorIn4[1] != [4]float32{0, 0, 1, 0.5} {
		t.Errorf("Expected default alpha kept, got %v", r.colorIn4[1])
	}
}

func TestColorPickerKeepsStoredAlpha(t *testing.T) {
	el, r := newElements()
	el.State().Set("c", quickgui.ColorValue(quickgui.RGBA(0, 0, 0, 0.25)))
	r.nextColor3 = &[3]float32{1, 1, 1}

	got, err := el.ColorPicker("c", quickgui.Hex(0))
	if err != nil {
		t.Fatal(err)
	}
	if got.HasAlpha {
		t.Errorf("Expected RGB result without alpha, got %v", got)
	}

	stored, _ := el.State().Get("c", quickgui.Value{}).AsColor()
	if stored != quickgui.RGBA(255, 255, 255, 0.25) {
		t.Errorf("Expected stored alpha preserved, got %v", stored)
	}
}

func TestColorPickerKindConflict(t *testing.T) {
	captureLogs(t)
	el, r := newElements()
	el.State().Set("c", quickgui.Text("teal"))

	got, err := el.ColorPicker("c", quickgui.Hex(0x008080))
	if !errors.Is(err, quickgui.ErrKind) {
		t.Fatalf("Expected ErrKind, got %v", err)
	}
	if got != quickgui.Hex(0x008080) {
		t.Errorf("Expected default returned, got %v", got)
	}
	if r.colorEdits != 0 {
		t.Error("Expected renderer not called")
	}
	if !el.State().ConversionEnabled() {
		t.Error("Expected conversion re-enabled after error")
	}
}

func TestInputIntClamp(t *testing.T) {
	tests := []struct {
		name      string
		submitted int
		want      int
	}{
		{"below", -40, 2},
		{"above", 99, 8},
		{"inside", 5, 5},
		{"lower edge", 2, 2},
		{"upper edge", 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, r := newElements()
			r.nextInt = ptr(tt.submitted)

			got, err := el.InputInt("n", 5, quickgui.WithMin(2), quickgui.WithMax(8))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
			if n, _ := el.State().Get("n", quickgui.Value{}).AsInt(); n != tt.want {
				t.Errorf("Expected stored %d, got %d", tt.want, n)
			}
		})
	}
}

func TestInputIntUnchanged(t *testing.T) {
	el, r := newElements()

	got, err := el.InputInt("n", 7)
	if err != nil || got != 7 {
		t.Errorf("Expected 7, nil; got %d, %v", got, err)
	}
	if el.State().Contains("n") {
		t.Error("Expected no store write without change")
	}
	if r.wrapDepth != 0 || len(r.wrapPos) != 1 {
		t.Errorf("Expected balanced wrap push, depth=%d pushes=%d", r.wrapDepth, len(r.wrapPos))
	}
}

func TestInputIntInvertedRange(t *testing.T) {
	el, r := newElements()

	_, err := el.InputInt("n", 0, quickgui.WithMin(5), quickgui.WithMax(1))
	var re *quickgui.RangeError
	if !errors.As(err, &re) || re.Min != 5 || re.Max != 1 {
		t.Fatalf("Expected *RangeError{5, 1}, got %v", err)
	}
	if !errors.Is(err, quickgui.ErrRange) {
		t.Error("Expected errors.Is ErrRange")
	}
	if len(r.intIn) != 0 {
		t.Error("Expected renderer not called")
	}
}

func TestInputTextLength(t *testing.T) {
	el, r := newElements()

	if got := el.InputText("Enter a text", "Hello World", quickgui.WithMaxLength(15)); got != "Hello World" {
		t.Errorf("Expected default, got %q", got)
	}
	if r.bufSizes[0] != 16 {
		t.Errorf("Expected buffer size 16, got %d", r.bufSizes[0])
	}

	r.nextText = ptr("ünïcödé and more text")
	got := el.InputText("Enter a text", "Hello World", quickgui.WithMaxLength(15))
	if got != "ünïcödé and mor" {
		t.Errorf("Expected truncated to 15 runes, got %q", got)
	}
	if v, _ := el.State().Get("Enter a text", quickgui.Value{}).AsText(); v != got {
		t.Errorf("Expected stored %q, got %q", got, v)
	}

	el.InputText("other", "")
	if r.bufSizes[2] != 256 {
		t.Errorf("Expected default buffer size 256, got %d", r.bufSizes[2])
	}
}

func TestButtonClick(t *testing.T) {
	el, r := newElements()
	r.now = 12.5
	r.clicks["Add 2"] = true

	calls := 0
	if !el.Button("Add 2", quickgui.WithHandler(func() { calls++ })) {
		t.Error("Expected click reported")
	}
	if calls != 1 {
		t.Errorf("Expected handler once, got %d", calls)
	}
	if at, _ := el.State().Get("Add 2", quickgui.Value{}).AsFloat(); at != 12.5 {
		t.Errorf("Expected click time 12.5 stored, got %v", at)
	}

	if el.Button("Add 2", quickgui.WithHandler(func() { calls++ })) {
		t.Error("Expected no click")
	}
	if calls != 1 {
		t.Errorf("Expected handler not called without click, got %d", calls)
	}
	if r.colorDepth != 0 || r.wrapDepth != 0 {
		t.Error("Expected balanced push/pop")
	}
}

func TestButtonEventGate(t *testing.T) {
	el, r := newElements()

	for _, now := range []float64{0, 5, 1e9} {
		r.now = now
		if el.ButtonEvent("go") {
			t.Errorf("Expected gate closed before click at t=%v", now)
		}
	}

	r.now = 100
	r.clicks["Go"] = true
	el.Button("Go", quickgui.WithKey("go"))

	tests := []struct {
		now  float64
		want bool
	}{
		{100, true},
		{105, true},
		{109.999, true},
		{110, false},
		{200, false},
	}
	for _, tt := range tests {
		r.now = tt.now
		fired := false
		got := el.ButtonEvent("go", quickgui.WithTimeLimit(10), quickgui.WithHandler(func() { fired = true }))
		if got != tt.want || fired != tt.want {
			t.Errorf("t=%v: expected %v, got gate=%v handler=%v", tt.now, tt.want, got, fired)
		}
	}
}

func TestTextCenterWrapExclusive(t *testing.T) {
	logs := captureLogs(t)
	el, r := newElements()

	el.Text("hello", quickgui.Centered())

	if len(r.cursorX) != 0 {
		t.Errorf("Expected centering disabled, cursor moved to %v", r.cursorX)
	}
	if len(r.wrapPos) != 1 || r.wrapPos[0] != 400*quickgui.WrapPercentage {
		t.Errorf("Expected wrap at 360, got %v", r.wrapPos)
	}
	if !strings.Contains(logs.String(), "level=WARN") {
		t.Errorf("Expected warning, got %q", logs.String())
	}
}

func TestTextCentered(t *testing.T) {
	el, r := newElements()

	el.Text("hello", quickgui.Centered(), quickgui.WithWrap(false))

	if len(r.cursorX) != 1 || r.cursorX[0] != 175 {
		t.Errorf("Expected cursor at 175, got %v", r.cursorX)
	}
	if len(r.wrapPos) != 0 {
		t.Error("Expected no wrap")
	}
}

func TestTextColor(t *testing.T) {
	el, r := newElements()

	el.Text("a")
	el.Text("b", quickgui.WithTextColor(quickgui.Hex(0xFF0000)))
	el.Text("c", quickgui.WithTextColor(quickgui.RGBA(0, 0, 255, 0.5)))

	want := [][4]float32{{1, 1, 1, 1}, {1, 0, 0, 1}, {0, 0, 1, 0.5}}
	for i, w := range want {
		if r.textColors[i] != w {
			t.Errorf("Text %d: expected color %v, got %v", i, w, r.textColors[i])
		}
	}
	if r.colorDepth != 0 {
		t.Error("Expected balanced color stack")
	}
}

func TestFavoriteNumber(t *testing.T) {
	el, r := newElements()

	draw := func(el *quickgui.Elements) {
		fav, _ := el.InputInt("What is your favorite number?", 7, quickgui.WithKey("favorite"))
		el.Button("Add 2", quickgui.WithHandler(func() {
			el.State().Set("favorite", quickgui.Int(fav+2))
		}))
	}

	draw(el)
	r.clicks["Add 2"] = true
	draw(el)
	draw(el)

	if got := r.intIn[2]; got != 9 {
		t.Errorf("Expected third frame to show 9, got %d", got)
	}
}
