package quickgui_test

import (
	"errors"

	"github.com/go-theft-auto/quickgui"
)

// fakeRenderer records calls and reports scripted changes.
// A non-nil next* field makes the next matching call report a change to
// that value, then clears.
type fakeRenderer struct {
	now   float64
	width float32

	clicks map[string]bool

	nextBool   *bool
	nextInt    *int
	nextText   *string
	nextColor3 *[3]float32
	nextColor4 *[4]float32

	texts       []string
	labels      []string
	colorIn3    [][3]float32
	colorIn4    [][4]float32
	intIn       []int
	textIn      []string
	bufSizes    []int
	cursorX     []float32
	textColors  [][4]float32
	wrapPos     []float32
	colorDepth  int
	wrapDepth   int
	colorEdits  int
	buttonCalls int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{width: 400, clicks: make(map[string]bool)}
}

func (f *fakeRenderer) Text(text string) { f.texts = append(f.texts, text) }

func (f *fakeRenderer) Button(label string) bool {
	f.buttonCalls++
	f.labels = append(f.labels, label)
	c := f.clicks[label]
	delete(f.clicks, label)
	return c
}

func (f *fakeRenderer) Checkbox(label string, v bool) (bool, bool) {
	f.labels = append(f.labels, label)
	if f.nextBool != nil {
		nv := *f.nextBool
		f.nextBool = nil
		return true, nv
	}
	return false, v
}

func (f *fakeRenderer) ColorEdit3(label string, rgb [3]float32) (bool, [3]float32) {
	f.colorEdits++
	f.labels = append(f.labels, label)
	f.colorIn3 = append(f.colorIn3, rgb)
	if f.nextColor3 != nil {
		nv := *f.nextColor3
		f.nextColor3 = nil
		return true, nv
	}
	return false, rgb
}

func (f *fakeRenderer) ColorEdit4(label string, rgba [4]float32) (bool, [4]float32) {
	f.colorEdits++
	f.labels = append(f.labels, label)
	f.colorIn4 = append(f.colorIn4, rgba)
	if f.nextColor4 != nil {
		nv := *f.nextColor4
		f.nextColor4 = nil
		return true, nv
	}
	return false, rgba
}

func (f *fakeRenderer) InputInt(label string, v int) (bool, int) {
	f.labels = append(f.labels, label)
	f.intIn = append(f.intIn, v)
	if f.nextInt != nil {
		nv := *f.nextInt
		f.nextInt = nil
		return true, nv
	}
	return false, v
}

func (f *fakeRenderer) InputText(label, v string, bufSize int) (bool, string) {
	f.labels = append(f.labels, label)
	f.textIn = append(f.textIn, v)
	f.bufSizes = append(f.bufSizes, bufSize)
	if f.nextText != nil {
		nv := *f.nextText
		f.nextText = nil
		return true, nv
	}
	return false, v
}

func (f *fakeRenderer) Time() float64        { return f.now }
func (f *fakeRenderer) WindowWidth() float32 { return f.width }

// TextWidth is 10 pixels per byte.
func (f *fakeRenderer) TextWidth(text string) float32 { return float32(len(text) * 10) }

func (f *fakeRenderer) SetCursorX(x float32) { f.cursorX = append(f.cursorX, x) }

func (f *fakeRenderer) PushTextColor(r, g, b, a float32) {
	f.colorDepth++
	f.textColors = append(f.textColors, [4]float32{r, g, b, a})
}

func (f *fakeRenderer) PopTextColor() { f.colorDepth-- }

func (f *fakeRenderer) PushTextWrapPos(x float32) {
	f.wrapDepth++
	f.wrapPos = append(f.wrapPos, x)
}

func (f *fakeRenderer) PopTextWrapPos() { f.wrapDepth-- }

// fakeSurface adds windows, menus and keys to fakeRenderer.
type fakeSurface struct {
	*fakeRenderer

	down       map[quickgui.Key]bool
	windows    []string
	sizes      [][2]int
	open       int
	menusOpen  bool
	menuItems  []string
	shortcuts  []string
	menuClicks map[string]bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		fakeRenderer: newFakeRenderer(),
		down:         make(map[quickgui.Key]bool),
		menusOpen:    true,
		menuClicks:   make(map[string]bool),
	}
}

func (s *fakeSurface) BeginWindow(title string, w, h int, _ *quickgui.Point) {
	s.open++
	s.windows = append(s.windows, title)
	s.sizes = append(s.sizes, [2]int{w, h})
}

func (s *fakeSurface) EndWindow()             { s.open-- }
func (s *fakeSurface) BeginMainMenuBar() bool { return s.menusOpen }
func (s *fakeSurface) EndMainMenuBar()        {}
func (s *fakeSurface) BeginMenu(string) bool  { return s.menusOpen }
func (s *fakeSurface) EndMenu()               {}

func (s *fakeSurface) MenuItem(label, shortcut string) bool {
	s.menuItems = append(s.menuItems, label)
	s.shortcuts = append(s.shortcuts, shortcut)
	c := s.menuClicks[label]
	delete(s.menuClicks, label)
	return c
}

func (s *fakeSurface) KeyDown(k quickgui.Key) bool { return s.down[k] }

// fakeBackend closes itself after a fixed number of frames.
type fakeBackend struct {
	surface   *fakeSurface
	remaining int
	began     int
	ended     int
	closed    bool
	beginErr  error
	closeErr  error
}

func (b *fakeBackend) ShouldClose() bool { return b.remaining <= 0 }

func (b *fakeBackend) BeginFrame() (quickgui.Surface, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	b.began++
	return b.surface, nil
}

func (b *fakeBackend) EndFrame() error {
	b.ended++
	b.remaining--
	return nil
}

func (b *fakeBackend) Close() error {
	b.closed = true
	return b.closeErr
}

var errBoom = errors.New("boom")

func ptr[T any](v T) *T { return &v }
