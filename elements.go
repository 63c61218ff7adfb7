package quickgui

import (
	"math"
	"unicode/utf8"
)

// WrapPercentage is the fraction of the window width text wraps at.
const WrapPercentage = 0.9

// labelPrefix is prepended to labels drawn beside an input so they do not
// touch the control.
const labelPrefix = " "

// Elements binds widgets to a State for one frame.
// A Window creates one per registered frame and passes it to the callback.
type Elements struct {
	state *State
	r     Renderer
}

// NewElements creates a binder drawing with r and persisting into state.
func NewElements(state *State, r Renderer) *Elements {
	return &Elements{state: state, r: r}
}

// State returns the store widget values live in.
// Callbacks may read and write it directly.
func (e *Elements) State() *State {
	return e.state
}

// Renderer returns the renderer widgets draw with.
func (e *Elements) Renderer() Renderer {
	return e.r
}

// Text draws a line of text. It keeps no state.
func (e *Elements) Text(text string, opts ...Option) {
	o := applyOptions(opts)
	center := GetOpt(o, OptCenter)
	wrap := GetOpt(o, OptWrap)
	if center && wrap {
		logger.Warn("cannot center and wrap text at the same time; centering disabled",
			"text", text)
		center = false
	}

	e.pushTextColor(GetOpt(o, OptTextColor))
	if center {
		e.r.SetCursorX((e.r.WindowWidth() - e.r.TextWidth(text)) / 2)
	}
	if wrap {
		e.pushWrap()
	}
	e.r.Text(text)
	e.r.PopTextColor()
	if wrap {
		e.r.PopTextWrapPos()
	}
}

// Button draws a button and reports whether it was clicked this frame.
// A click records the renderer time under the button's key, which
// ButtonEvent reads, and then runs the WithHandler callback.
func (e *Elements) Button(text string, opts ...Option) bool {
	o := applyOptions(opts)
	wrap := GetOpt(o, OptWrap)
	key := resolveKey(o, text)

	if wrap {
		e.pushWrap()
	}
	e.pushTextColor(GetOpt(o, OptTextColor))
	clicked := e.r.Button(text)
	if wrap {
		e.r.PopTextWrapPos()
	}
	e.r.PopTextColor()

	if clicked {
		now := e.r.Time()
		e.state.Set(key, Float(now))
		logger.Debug("button clicked", "key", key, "time", now)
		if h := GetOpt(o, OptHandler); h != nil {
			h()
		}
	}
	return clicked
}

// ButtonEvent reports whether the button stored under key was clicked less
// than the time limit ago (10 seconds unless WithTimeLimit is given).
// It is false until the button has been clicked at least once.
// The WithHandler callback runs whenever the result is true.
func (e *Elements) ButtonEvent(key string, opts ...Option) bool {
	o := applyOptions(opts)
	limit := GetOpt(o, OptTimeLimit)

	clickedAt := math.Inf(-1)
	if v, ok := e.state.Lookup(key); ok {
		if t, ok := v.AsFloat(); ok {
			clickedAt = t
		} else {
			warnKind(key, KindFloat, v.Kind())
		}
	}

	open := e.r.Time()-clickedAt < limit
	if open {
		if h := GetOpt(o, OptHandler); h != nil {
			h()
		}
	}
	return open
}

// Checkbox draws a checkbox and returns whether it is checked.
func (e *Elements) Checkbox(label string, def bool, opts ...Option) bool {
	o := applyOptions(opts)
	key := resolveKey(o, label)

	prior := def
	if v, ok := e.state.Lookup(key); ok {
		if b, ok := v.AsBool(); ok {
			prior = b
		} else {
			warnKind(key, KindBool, v.Kind())
		}
	}

	changed, value := e.r.Checkbox(labelPrefix+label, prior)
	if changed {
		e.state.Set(key, Bool(value))
		logger.Debug("checkbox changed", "key", key, "value", value)
	}
	return value
}

// ColorPicker draws a color editor and returns the selected color in the
// 0-255 domain. Alpha, when enabled with WithAlpha, is returned in 0.0-1.0.
//
// A value of another kind under the key is a *KindError; the default is
// returned and nothing is drawn.
func (e *Elements) ColorPicker(label string, def Color, opts ...Option) (Color, error) {
	o := applyOptions(opts)
	key := resolveKey(o, label)
	alpha := GetOpt(o, OptAlpha)

	var result Color
	err := e.state.WithoutConversion(func() error {
		native := def.WithoutAlpha().ToNative()
		if alpha {
			native = native.WithAlpha(def.AlphaOr(1))
		}

		prior := native
		if v, ok := e.state.Lookup(key); ok {
			c, ok := v.AsColor()
			if !ok {
				return &KindError{Key: key, Want: "color", Got: v.Kind()}
			}
			prior = c
		}

		var value Color
		var changed bool
		if alpha {
			var rgba [4]float32
			changed, rgba = e.r.ColorEdit4(labelPrefix+label, prior.WithAlpha(prior.AlphaOr(1)).nativeRGBA())
			value = colorFromRGBA(rgba)
		} else {
			var rgb [3]float32
			changed, rgb = e.r.ColorEdit3(labelPrefix+label, prior.nativeRGB())
			value = colorFromRGB(rgb)
			if prior.HasAlpha {
				// Keep a stored alpha channel the editor did not show.
				value = value.WithAlpha(prior.A)
			}
		}
		if changed {
			e.state.Set(key, ColorValue(value))
			logger.Debug("color changed", "key", key, "value", value)
		}

		result = value.ToUser()
		if !alpha {
			result = result.WithoutAlpha()
		}
		return nil
	})
	if err != nil {
		logger.Warn("color picker skipped", "key", key, "err", err)
		return def, err
	}
	return result, nil
}

// InputInt draws an integer field and returns its value. A changed value is
// clamped to the WithMin/WithMax bounds before it is stored.
func (e *Elements) InputInt(label string, def int, opts ...Option) (int, error) {
	o := applyOptions(opts)
	key := resolveKey(o, label)
	lo, hi := GetOpt(o, OptMin), GetOpt(o, OptMax)
	if lo > hi {
		return def, &RangeError{Min: lo, Max: hi}
	}

	prior := def
	if v, ok := e.state.Lookup(key); ok {
		if n, ok := v.AsInt(); ok {
			prior = n
		} else {
			warnKind(key, KindInt, v.Kind())
		}
	}

	wrap := GetOpt(o, OptWrap)
	if wrap {
		e.pushWrap()
	}
	changed, value := e.r.InputInt(labelPrefix+label, prior)
	if wrap {
		e.r.PopTextWrapPos()
	}

	if changed {
		value = clampInt(value, lo, hi)
		e.state.Set(key, Int(value))
		logger.Debug("int input changed", "key", key, "value", value)
	}
	return value, nil
}

// InputText draws a text field and returns its contents, at most
// WithMaxLength runes (255 by default).
func (e *Elements) InputText(label string, def string, opts ...Option) string {
	o := applyOptions(opts)
	key := resolveKey(o, label)
	maxLen := max(GetOpt(o, OptMaxLength), 0)

	prior := def
	if v, ok := e.state.Lookup(key); ok {
		if s, ok := v.AsText(); ok {
			prior = s
		} else {
			warnKind(key, KindText, v.Kind())
		}
	}

	wrap := GetOpt(o, OptWrap)
	if wrap {
		e.pushWrap()
	}
	// Buffer size counts a terminator slot.
	changed, value := e.r.InputText(labelPrefix+label, prior, maxLen+1)
	if wrap {
		e.r.PopTextWrapPos()
	}

	if changed {
		value = truncateRunes(value, maxLen)
		e.state.Set(key, Text(value))
		logger.Debug("text input changed", "key", key, "len", utf8.RuneCountInString(value))
	}
	return value
}

func (e *Elements) pushWrap() {
	e.r.PushTextWrapPos(e.r.WindowWidth() * WrapPercentage)
}

// pushTextColor pushes a 0-255 color, defaulting alpha to 1.
func (e *Elements) pushTextColor(c Color) {
	n := c.ToNative()
	e.r.PushTextColor(float32(n.R), float32(n.G), float32(n.B), float32(c.AlphaOr(1)))
}

func resolveKey(o options, label string) string {
	if k := GetOpt(o, OptStateKey); k != "" {
		return k
	}
	return label
}

func warnKind(key string, want, got Kind) {
	logger.Warn("stored value has another kind; using default",
		"key", key, "want", want.String(), "got", got.String())
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
