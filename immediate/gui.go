package immediate

import "errors"

// Renderer draws finished draw lists.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// GUI runs frames of a Context against a Renderer.
type GUI struct {
	renderer   Renderer
	stateStore StateStore
	style      Style
	font       Font
	ctx        *Context
}

// GUIOption configures a GUI.
type GUIOption func(*GUI)

// WithStyle sets the style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithFont sets the text font.
func WithFont(f Font) GUIOption {
	return func(g *GUI) { g.font = f }
}

// WithStateStore sets where widget state is kept between frames.
func WithStateStore(store StateStore) GUIOption {
	return func(g *GUI) { g.stateStore = store }
}

// New creates a GUI drawing through renderer.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:   renderer,
		stateStore: make(MapStateStore),
		style:      DarkStyle(),
		ctx:        NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a frame and returns the context to build it with.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx
	ctx.stateStore = g.stateStore
	ctx.SetStyle(g.style)
	ctx.SetFont(g.font)
	ctx.newFrame(input, displaySize, deltaTime)
	return ctx
}

// End finishes the frame and renders windows back to front, then the menu
// bar and any open menu.
func (g *GUI) End() error {
	var errs []error
	for _, dl := range g.ctx.endFrame() {
		dl.Finalize()
		if len(dl.CmdBuffer) > 0 && g.renderer != nil {
			if err := g.renderer.Render(dl); err != nil {
				errs = append(errs, err)
			}
		}
		ReleaseDrawList(dl)
	}
	return errors.Join(errs...)
}

// Context returns the frame context. It is only valid between Begin and End.
func (g *GUI) Context() *Context {
	return g.ctx
}

func (g *GUI) Style() Style {
	return g.style
}

func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize forwards a framebuffer size change to the renderer.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}
