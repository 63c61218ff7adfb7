package quickgui

import "math"

// Option configures a widget call.
type Option func(*options)

// options holds widget configuration keyed by option name.
type options struct {
	values map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptTint = quickgui.NewOptKey("tint", quickgui.White)
//
//	el.Text("hi", quickgui.WithOpt(OptTint, quickgui.Hex(0xFF0000)))
//	tint := quickgui.ApplyAndGet(opts, OptTint)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the value used when the option is not set.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any)
		}
		o.values[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default if unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.values[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt reports whether the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.values[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// Built-in option keys.
var (
	OptStateKey  = NewOptKey("key", "")
	OptTextColor = NewOptKey("textColor", White)
	OptCenter    = NewOptKey("center", false)
	OptWrap      = NewOptKey("wrap", true)
	OptAlpha     = NewOptKey("alpha", false)
	OptMin       = NewOptKey("min", math.MinInt)
	OptMax       = NewOptKey("max", math.MaxInt)
	OptMaxLength = NewOptKey("maxLength", 255)
	OptTimeLimit = NewOptKey("timeLimit", 10.0)
	OptHandler   = NewOptKey[func()]("handler", nil)
)

// WithKey stores the widget's value under key instead of its label.
func WithKey(key string) Option { return WithOpt(OptStateKey, key) }

// WithTextColor sets the text color in the 0-255 domain.
func WithTextColor(c Color) Option { return WithOpt(OptTextColor, c) }

// Centered centers text horizontally. It cannot be combined with wrapping.
func Centered() Option { return WithOpt(OptCenter, true) }

// WithWrap enables or disables word wrapping. Text wraps by default.
func WithWrap(wrap bool) Option { return WithOpt(OptWrap, wrap) }

// WithAlpha adds an alpha channel to a color picker.
func WithAlpha() Option { return WithOpt(OptAlpha, true) }

// WithMin sets the lower bound of an integer input.
func WithMin(n int) Option { return WithOpt(OptMin, n) }

// WithMax sets the upper bound of an integer input.
func WithMax(n int) Option { return WithOpt(OptMax, n) }

// WithMaxLength caps a text input, in runes.
func WithMaxLength(n int) Option { return WithOpt(OptMaxLength, n) }

// WithTimeLimit sets how long, in seconds, a ButtonEvent stays open after a click.
func WithTimeLimit(seconds float64) Option { return WithOpt(OptTimeLimit, seconds) }

// WithHandler runs fn synchronously when a button is clicked
// or a ButtonEvent gate is open.
func WithHandler(fn func()) Option { return WithOpt(OptHandler, fn) }
