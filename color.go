package quickgui

import (
	"fmt"
	"math"
	"strconv"
)

// channelMax is the top of the user-facing channel range.
const channelMax = 255

// Color is an RGB color with optional alpha.
//
// R, G and B are either in the 0-255 user domain or the 0.0-1.0 renderer
// domain, depending on where the value came from. A is 0.0-1.0 in both
// and is only meaningful when HasAlpha is set.
type Color struct {
	R, G, B  float64
	A        float64
	HasAlpha bool
}

// White is the default text color.
var White = RGBA(255, 255, 255, 1)

// RGB builds a three-channel color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA builds a four-channel color.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a, HasAlpha: true}
}

// Hex decomposes a 24-bit 0xRRGGBB value into a three-channel color.
func Hex(v int) Color {
	return RGB(float64((v>>16)&0xFF), float64((v>>8)&0xFF), float64(v&0xFF))
}

// Len returns the number of channels, 3 or 4.
func (c Color) Len() int {
	if c.HasAlpha {
		return 4
	}
	return 3
}

// WithAlpha returns c with alpha set to a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	c.HasAlpha = true
	return c
}

// WithoutAlpha returns the RGB part of c.
func (c Color) WithoutAlpha() Color {
	c.A = 0
	c.HasAlpha = false
	return c
}

// AlphaOr returns the alpha channel, or def when c has none.
func (c Color) AlphaOr(def float64) float64 {
	if c.HasAlpha {
		return c.A
	}
	return def
}

// Channels returns the channels as a slice of length Len().
func (c Color) Channels() []float64 {
	if c.HasAlpha {
		return []float64{c.R, c.G, c.B, c.A}
	}
	return []float64{c.R, c.G, c.B}
}

// ToNative maps RGB from 0-255 to 0.0-1.0. Alpha is untouched.
func (c Color) ToNative() Color {
	c.R /= channelMax
	c.G /= channelMax
	c.B /= channelMax
	return c
}

// ToUser maps RGB from 0.0-1.0 to rounded 0-255. Alpha is untouched.
// Rounding is half to even.
func (c Color) ToUser() Color {
	c.R = math.RoundToEven(c.R * channelMax)
	c.G = math.RoundToEven(c.G * channelMax)
	c.B = math.RoundToEven(c.B * channelMax)
	return c
}

// RGB8 returns the RGB channels as integers, assuming the user domain.
func (c Color) RGB8() (r, g, b int) {
	return int(c.R), int(c.G), int(c.B)
}

// Hex packs the RGB channels into 0xRRGGBB, assuming the user domain.
func (c Color) Hex() int {
	r, g, b := c.RGB8()
	return (clampInt(r, 0, 255) << 16) | (clampInt(g, 0, 255) << 8) | clampInt(b, 0, 255)
}

// String formats c as a tuple, e.g. "(0, 128, 128)" or "(0, 128, 128, 0.5)".
func (c Color) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }
	if c.HasAlpha {
		return fmt.Sprintf("(%s, %s, %s, %s)", f(c.R), f(c.G), f(c.B), f(c.A))
	}
	return fmt.Sprintf("(%s, %s, %s)", f(c.R), f(c.G), f(c.B))
}

// ColorFromChannels builds a color from 3 or 4 channels.
// Any other length is a *ShapeError.
func ColorFromChannels(ch []float64) (Color, error) {
	switch len(ch) {
	case 3:
		return RGB(ch[0], ch[1], ch[2]), nil
	case 4:
		return RGBA(ch[0], ch[1], ch[2], ch[3]), nil
	default:
		return Color{}, &ShapeError{Got: len(ch)}
	}
}

// ParseColor accepts an int (0xRRGGBB), a Color, or a 3- or 4-element
// numeric slice or array.
func ParseColor(v any) (Color, error) {
	switch c := v.(type) {
	case Color:
		return c, nil
	case int:
		return Hex(c), nil
	case uint32:
		return Hex(int(c)), nil
	case []float64:
		return ColorFromChannels(c)
	case []float32:
		return ColorFromChannels(widen(c))
	case []int:
		ch := make([]float64, len(c))
		for i, x := range c {
			ch[i] = float64(x)
		}
		return ColorFromChannels(ch)
	case [3]float64:
		return ColorFromChannels(c[:])
	case [4]float64:
		return ColorFromChannels(c[:])
	case [3]int:
		return RGB(float64(c[0]), float64(c[1]), float64(c[2])), nil
	case [4]int:
		return RGBA(float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3])), nil
	default:
		return Color{}, fmt.Errorf("%w: unsupported color type %T", ErrShape, v)
	}
}

// nativeRGB narrows the RGB channels for the renderer.
func (c Color) nativeRGB() [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

// nativeRGBA narrows all four channels for the renderer.
func (c Color) nativeRGBA() [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

func colorFromRGB(v [3]float32) Color {
	return RGB(float64(v[0]), float64(v[1]), float64(v[2]))
}

func colorFromRGBA(v [4]float32) Color {
	return RGBA(float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]))
}

func widen(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// clampInt clamps n into [lo, hi], both inclusive.
func clampInt(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
