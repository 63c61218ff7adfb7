package quickgui_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-theft-auto/quickgui"
)

func TestStateColorRoundTrip(t *testing.T) {
	s := quickgui.NewState()
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 5 {
				rgb := quickgui.RGB(float64(r), float64(g), float64(b))
				s.Set("c", quickgui.ColorValue(rgb))
				got, ok := s.Get("c", quickgui.Value{}).AsColor()
				if !ok || got != rgb {
					t.Fatalf("Expected %v, got %v", rgb, got)
				}

				rgba := rgb.WithAlpha(0.25)
				s.Set("c4", quickgui.ColorValue(rgba))
				got4, ok := s.Get("c4", quickgui.Value{}).AsColor()
				if !ok || got4 != rgba {
					t.Fatalf("Expected %v, got %v", rgba, got4)
				}
			}
		}
	}
}

func TestStateStoresNativeColors(t *testing.T) {
	s := quickgui.NewState()
	s.Set("c", quickgui.ColorValue(quickgui.RGBA(0, 255, 51, 0.5)))

	var raw quickgui.Color
	err := s.WithoutConversion(func() error {
		raw, _ = s.Get("c", quickgui.Value{}).AsColor()
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	want := quickgui.RGBA(0, 1, 0.2, 0.5)
	if raw != want {
		t.Errorf("Expected native %v, got %v", want, raw)
	}
}

func TestStateDefaultFallback(t *testing.T) {
	s := quickgui.NewState()
	defaults := []quickgui.Value{
		{},
		quickgui.Bool(true),
		quickgui.Int(-3),
		quickgui.Text("x"),
		quickgui.ColorValue(quickgui.Hex(0x123456)),
		quickgui.ColorValue(quickgui.RGBA(1, 2, 3, 0.4)),
	}
	for _, def := range defaults {
		if got := s.Get("missing", def); got != def {
			t.Errorf("Expected default %v, got %v", def, got)
		}
	}
}

func TestStateNonColorPassThrough(t *testing.T) {
	s := quickgui.NewState()
	s.Set("n", quickgui.Int(200))
	s.Set("t", quickgui.Text("255"))

	if n, _ := s.Get("n", quickgui.Value{}).AsInt(); n != 200 {
		t.Errorf("Expected 200, got %d", n)
	}
	if v, _ := s.Get("t", quickgui.Value{}).AsText(); v != "255" {
		t.Errorf("Expected \"255\", got %q", v)
	}
}

func TestStateStructural(t *testing.T) {
	s := quickgui.NewState()
	s.Set("b", quickgui.Bool(true))
	s.Set("a", quickgui.Int(1))
	s.Set("c", quickgui.ColorValue(quickgui.Hex(0xFFFFFF)))

	if s.Len() != 3 {
		t.Errorf("Expected 3 values, got %d", s.Len())
	}
	if !reflect.DeepEqual(s.Keys(), []string{"a", "b", "c"}) {
		t.Errorf("Expected sorted keys, got %v", s.Keys())
	}

	s.Delete("b")
	if s.Contains("b") {
		t.Error("Expected b to be deleted")
	}
	if _, ok := s.Lookup("b"); ok {
		t.Error("Expected Lookup to miss deleted key")
	}
	if s.Len() != 2 {
		t.Errorf("Expected 2 values, got %d", s.Len())
	}
}

func TestWithoutConversionRestores(t *testing.T) {
	s := quickgui.NewState()

	err := s.WithoutConversion(func() error {
		if s.ConversionEnabled() {
			t.Error("Expected conversion disabled inside scope")
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("Expected errBoom, got %v", err)
	}
	if !s.ConversionEnabled() {
		t.Error("Expected conversion restored after error")
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic to propagate")
			}
		}()
		_ = s.WithoutConversion(func() error { panic("draw failed") })
	}()
	if !s.ConversionEnabled() {
		t.Error("Expected conversion restored after panic")
	}
}

func TestWithoutConversionRestoresPriorMode(t *testing.T) {
	s := quickgui.NewState()
	s.SetConversion(false)

	_ = s.WithoutConversion(func() error { return nil })
	if s.ConversionEnabled() {
		t.Error("Expected conversion to stay disabled")
	}

	s.SetConversion(true)
	_ = s.WithoutConversion(func() error {
		return s.WithoutConversion(func() error { return nil })
	})
	if !s.ConversionEnabled() {
		t.Error("Expected nested scopes to restore enabled mode")
	}
}
