package quickgui

import (
	"fmt"
	"strings"
)

// Key is a keyboard key usable in menu chords.
type Key int

const (
	KeyNone Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Modifiers match either the left or the right key.
	KeyCtrl
	KeyAlt
	KeyShift
)

// String returns the display name used in menu shortcuts.
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k == KeyCtrl:
		return "Ctrl"
	case k == KeyAlt:
		return "Alt"
	case k == KeyShift:
		return "Shift"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// ParseKey parses a key name such as "Q", "7", "Ctrl" or "shift".
func ParseKey(s string) (Key, error) {
	name := strings.TrimSpace(s)
	switch strings.ToLower(name) {
	case "ctrl", "control":
		return KeyCtrl, nil
	case "alt", "option":
		return KeyAlt, nil
	case "shift":
		return KeyShift, nil
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return KeyA + Key(c-'a'), nil
		case c >= 'A' && c <= 'Z':
			return KeyA + Key(c-'A'), nil
		case c >= '0' && c <= '9':
			return Key0 + Key(c-'0'), nil
		}
	}
	return KeyNone, fmt.Errorf("quickgui: unknown key %q", s)
}

// Chord is a set of keys that must all be held at once.
type Chord []Key

// ParseChord parses "Ctrl+Q" or "Ctrl + Shift + S". An empty string is an
// empty chord.
func ParseChord(s string) (Chord, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, "+")
	chord := make(Chord, 0, len(parts))
	for _, p := range parts {
		k, err := ParseKey(p)
		if err != nil {
			return nil, fmt.Errorf("parse chord %q: %w", s, err)
		}
		chord = append(chord, k)
	}
	return chord, nil
}

// String joins the key names with " + ", e.g. "Ctrl + Q".
func (c Chord) String() string {
	names := make([]string, len(c))
	for i, k := range c {
		names[i] = k.String()
	}
	return strings.Join(names, " + ")
}

// held reports whether every key in c is down. An empty chord is never held.
func (c Chord) held(isDown func(Key) bool) bool {
	if len(c) == 0 {
		return false
	}
	for _, k := range c {
		if !isDown(k) {
			return false
		}
	}
	return true
}
