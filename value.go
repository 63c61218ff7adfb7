package quickgui

import (
	"fmt"
	"strconv"
)

// Kind identifies which field of a Value is set.
type Kind uint8

const (
	KindInvalid Kind = iota // Zero Value, used for "absent"
	KindBool
	KindInt
	KindFloat
	KindText
	KindColor3
	KindColor4
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindColor3:
		return "color3"
	case KindColor4:
		return "color4"
	default:
		return "invalid"
	}
}

// Value is a tagged union of everything a widget can persist.
// The zero Value has KindInvalid.
type Value struct {
	kind  Kind
	b     bool
	i     int
	f     float64
	s     string
	color Color
}

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(i int) Value { return Value{kind: KindInt, i: i} }

// Float wraps a float. Buttons store their click time this way.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// ColorValue wraps a color. The kind is KindColor4 when c has alpha.
func ColorValue(c Color) Value {
	if c.HasAlpha {
		return Value{kind: KindColor4, color: c}
	}
	return Value{kind: KindColor3, color: c}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds anything.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// IsColor reports whether v is a 3- or 4-channel color.
func (v Value) IsColor() bool { return v.kind == KindColor3 || v.kind == KindColor4 }

// AsBool returns the boolean and whether v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer and whether v is an int.
func (v Value) AsInt() (int, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float and whether v is a float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsText returns the string and whether v is text.
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// AsColor returns the color and whether v is a color.
func (v Value) AsColor() (Color, bool) { return v.color, v.IsColor() }

// String formats v for logs and debugging.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.s)
	case KindColor3, KindColor4:
		return v.color.String()
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}
