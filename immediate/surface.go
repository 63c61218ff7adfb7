package immediate

import "github.com/go-theft-auto/quickgui"

var _ quickgui.Surface = (*Context)(nil)

// KeyDown reports whether k is held. Modifier keys read the modifier flags.
func (ctx *Context) KeyDown(k quickgui.Key) bool {
	switch k {
	case quickgui.KeyCtrl:
		return ctx.Input.ModCtrl
	case quickgui.KeyAlt:
		return ctx.Input.ModAlt
	case quickgui.KeyShift:
		return ctx.Input.ModShift
	}
	key, ok := keyFromQuickgui(k)
	return ok && ctx.Input.KeyDown(key)
}

func keyFromQuickgui(k quickgui.Key) (Key, bool) {
	switch {
	case k >= quickgui.KeyA && k <= quickgui.KeyZ:
		return KeyA + Key(k-quickgui.KeyA), true
	case k >= quickgui.Key0 && k <= quickgui.Key9:
		return Key0 + Key(k-quickgui.Key0), true
	}
	return KeyNone, false
}
