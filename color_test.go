package quickgui_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/quickgui"
)

func TestHex(t *testing.T) {
	tests := []struct {
		hex  int
		want quickgui.Color
	}{
		{0x000000, quickgui.RGB(0, 0, 0)},
		{0x008080, quickgui.RGB(0, 128, 128)},
		{0xFF0000, quickgui.RGB(255, 0, 0)},
		{0x123456, quickgui.RGB(0x12, 0x34, 0x56)},
	}
	for _, tt := range tests {
		got := quickgui.Hex(tt.hex)
		if got != tt.want {
			t.Errorf("Hex(%#06x): expected %v, got %v", tt.hex, tt.want, got)
		}
		if got.Hex() != tt.hex {
			t.Errorf("Hex(%#06x).Hex(): got %#06x", tt.hex, got.Hex())
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want quickgui.Color
	}{
		{"hex", 0x008080, quickgui.RGB(0, 128, 128)},
		{"color", quickgui.RGBA(1, 2, 3, 0.5), quickgui.RGBA(1, 2, 3, 0.5)},
		{"ints", []int{10, 20, 30}, quickgui.RGB(10, 20, 30)},
		{"floats4", []float64{10, 20, 30, 0.5}, quickgui.RGBA(10, 20, 30, 0.5)},
		{"array3", [3]int{1, 2, 3}, quickgui.RGB(1, 2, 3)},
		{"array4", [4]float64{1, 2, 3, 1}, quickgui.RGBA(1, 2, 3, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := quickgui.ParseColor(tt.in)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseColorShape(t *testing.T) {
	for _, in := range []any{[]int{1, 2}, []float64{1, 2, 3, 4, 5}, "red"} {
		_, err := quickgui.ParseColor(in)
		if !errors.Is(err, quickgui.ErrShape) {
			t.Errorf("ParseColor(%v): expected ErrShape, got %v", in, err)
		}
	}

	_, err := quickgui.ParseColor([]int{1, 2})
	var se *quickgui.ShapeError
	if !errors.As(err, &se) || se.Got != 2 {
		t.Errorf("Expected *ShapeError with Got=2, got %v", err)
	}
}

func TestColorScaling(t *testing.T) {
	for i := 0; i <= 255; i++ {
		c := quickgui.RGBA(float64(i), float64(255-i), float64(i/2), 0.3)
		back := c.ToNative().ToUser()
		if back != c {
			t.Fatalf("Expected %v after round trip, got %v", c, back)
		}
		if c.ToNative().A != 0.3 {
			t.Fatalf("Expected alpha untouched, got %v", c.ToNative().A)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := quickgui.Hex(0x008080).String(); got != "(0, 128, 128)" {
		t.Errorf("Expected (0, 128, 128), got %s", got)
	}
	if got := quickgui.RGBA(1, 2, 3, 0.5).String(); got != "(1, 2, 3, 0.5)" {
		t.Errorf("Expected (1, 2, 3, 0.5), got %s", got)
	}
}
