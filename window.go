package quickgui

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSurface is returned by RenderFrame when given a nil Surface.
var ErrNoSurface = errors.New("quickgui: nil surface")

// Theme selects the renderer's color preset.
type Theme int

const (
	ThemeAuto Theme = iota
	ThemeLight
	ThemeDark
)

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "auto"
	}
}

// ParseTheme parses "auto", "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ThemeAuto, nil
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeAuto, fmt.Errorf("quickgui: unknown theme %q", s)
	}
}

// Config describes the OS window a Backend should open.
type Config struct {
	Title    string
	Width    int
	Height   int
	FontPath string // empty selects the embedded default font
	FontSize float64
	Theme    Theme
}

// DefaultFontSize is the font size used when none is configured.
const DefaultFontSize = 18

// Frame is one registered panel drawn every iteration.
type Frame struct {
	Title    string
	Width    int
	Height   int
	Position *Point
	Draw     func(*Elements)
}

// FrameOption configures a Frame.
type FrameOption func(*Frame)

// FrameSize sets the size a frame opens with. Later resizes by the user stick.
func FrameSize(width, height int) FrameOption {
	return func(f *Frame) {
		f.Width, f.Height = width, height
	}
}

// FramePosition sets the position a frame opens at.
func FramePosition(x, y int) FrameOption {
	return func(f *Frame) {
		f.Position = &Point{X: x, Y: y}
	}
}

// Menu is one item in the main menu bar.
type Menu struct {
	Category string
	Title    string
	Keys     Chord
	Action   func()
}

type menuEntry struct {
	Menu
	wasHeld bool
}

// Window owns the state, frames and menus of one application window.
type Window struct {
	cfg        Config
	state      *State
	frames     []Frame
	categories []string
	menus      map[string][]*menuEntry
	edgeChords bool
	closing    bool
}

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithSize sets the OS window size. Default is 800x600.
func WithSize(width, height int) WindowOption {
	return func(w *Window) { w.cfg.Width, w.cfg.Height = width, height }
}

// WithFont loads a TTF file instead of the embedded font.
func WithFont(path string) WindowOption {
	return func(w *Window) { w.cfg.FontPath = path }
}

// WithFontSize sets the font size in pixels.
func WithFontSize(size float64) WindowOption {
	return func(w *Window) { w.cfg.FontSize = size }
}

// WithTheme selects the color preset.
func WithTheme(t Theme) WindowOption {
	return func(w *Window) { w.cfg.Theme = t }
}

// WithChordEdgeTrigger makes menu chords fire once per press instead of on
// every frame they are held.
func WithChordEdgeTrigger() WindowOption {
	return func(w *Window) { w.edgeChords = true }
}

// WithState uses s instead of a fresh State.
func WithState(s *State) WindowOption {
	return func(w *Window) {
		if s != nil {
			w.state = s
		}
	}
}

// NewWindow creates a window. Each window has its own state, frames and menus.
func NewWindow(title string, opts ...WindowOption) *Window {
	w := &Window{
		cfg: Config{
			Title:    title,
			Width:    800,
			Height:   600,
			FontSize: DefaultFontSize,
			Theme:    ThemeAuto,
		},
		state: NewState(),
		menus: make(map[string][]*menuEntry),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Config returns what a Backend needs to open this window.
func (w *Window) Config() Config {
	return w.cfg
}

// State returns the window's store.
func (w *Window) State() *State {
	return w.state
}

// Frame registers draw to be called every iteration inside a window titled title.
// Frames are drawn in registration order.
func (w *Window) Frame(title string, draw func(*Elements), opts ...FrameOption) {
	f := Frame{Title: title, Draw: draw}
	for _, opt := range opts {
		opt(&f)
	}
	w.frames = append(w.frames, f)
}

// Frames returns the registered frames.
func (w *Window) Frames() []Frame {
	out := make([]Frame, len(w.frames))
	copy(out, w.frames)
	return out
}

// Menu registers a menu item under category. If keys are given, holding
// them all runs action as well.
func (w *Window) Menu(category, title string, action func(), keys ...Key) {
	if _, ok := w.menus[category]; !ok {
		w.categories = append(w.categories, category)
	}
	w.menus[category] = append(w.menus[category], &menuEntry{
		Menu: Menu{Category: category, Title: title, Keys: Chord(keys), Action: action},
	})
}

// Menus returns the registered menu items, grouped by category in
// registration order.
func (w *Window) Menus() []Menu {
	var out []Menu
	for _, cat := range w.categories {
		for _, m := range w.menus[cat] {
			out = append(out, m.Menu)
		}
	}
	return out
}

// Close stops Start after the current iteration.
func (w *Window) Close() {
	w.closing = true
}

// RenderFrame draws one iteration onto s: menu chords, the main menu bar,
// then every frame.
func (w *Window) RenderFrame(s Surface) error {
	if s == nil {
		return ErrNoSurface
	}

	if len(w.categories) > 0 {
		w.fireChords(s)
		w.drawMenuBar(s)
	}

	for _, f := range w.frames {
		s.BeginWindow(f.Title, f.Width, f.Height, f.Position)
		if f.Draw != nil {
			f.Draw(NewElements(w.state, s))
		}
		s.EndWindow()
	}
	return nil
}

func (w *Window) fireChords(s Surface) {
	for _, cat := range w.categories {
		for _, m := range w.menus[cat] {
			held := m.Keys.held(s.KeyDown)
			fire := held && (!w.edgeChords || !m.wasHeld)
			m.wasHeld = held
			if fire && m.Action != nil {
				logger.Debug("menu chord fired", "menu", m.Title, "keys", m.Keys.String())
				m.Action()
			}
		}
	}
}

func (w *Window) drawMenuBar(s Surface) {
	if !s.BeginMainMenuBar() {
		return
	}
	for _, cat := range w.categories {
		if !s.BeginMenu(cat) {
			continue
		}
		for _, m := range w.menus[cat] {
			if s.MenuItem(m.Title, m.Keys.String()) && m.Action != nil {
				m.Action()
			}
		}
		s.EndMenu()
	}
	s.EndMainMenuBar()
}

// Start runs the frame loop on b until the OS window closes or Close is
// called. b is closed before Start returns.
func (w *Window) Start(b Backend) (err error) {
	defer func() {
		if cerr := b.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close backend: %w", cerr)
		}
	}()

	logger.Debug("window started", "title", w.cfg.Title, "frames", len(w.frames))
	for !w.closing && !b.ShouldClose() {
		s, err := b.BeginFrame()
		if err != nil {
			return fmt.Errorf("begin frame: %w", err)
		}
		if err := w.RenderFrame(s); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
		if err := b.EndFrame(); err != nil {
			return fmt.Errorf("end frame: %w", err)
		}
	}
	return nil
}

// String implements fmt.Stringer.
func (w *Window) String() string {
	return fmt.Sprintf("Window(title=%q, width=%d, height=%d)", w.cfg.Title, w.cfg.Width, w.cfg.Height)
}
