/*
Package quickgui is a declarative layer over an immediate-mode GUI renderer.

Widgets are plain method calls made from a per-frame callback. Each stateful
widget remembers its last value in a State owned by the Window, so the
callback does not have to keep variables of its own: the value a widget
returns is the one the user left it at on the previous frame.

# Quick Start

	w := quickgui.NewWindow("Hello World")

	w.Frame("Hello World", func(el *quickgui.Elements) {
	    fav, _ := el.InputInt("What is your favorite number?", 7, quickgui.WithKey("favorite"))
	    el.Button("Add 2", quickgui.WithHandler(func() {
	        el.State().Set("favorite", quickgui.Int(fav+2))
	    }))
	}, quickgui.FrameSize(700, 450))

	backend, err := opengl.NewBackend(w.Config())
	if err != nil {
	    return err
	}
	return w.Start(backend)

# Keys and State

A widget's key is its label unless WithKey is given. Two widgets sharing a key
share a value; a widget that finds a value of another kind under its key logs
a warning and uses its default.

Colors are stored in the renderer's 0.0-1.0 domain and exposed to callers in
the 0-255 domain. State converts on every Get and Set while conversion is
enabled; State.WithoutConversion suspends that for one read-modify-write.

# Renderer

Elements never draws by itself. It calls a Renderer, which is implemented by
package immediate on top of its draw lists and driven by backend/opengl.
Tests can substitute any Renderer.
*/
package quickgui
