package immediate

import (
	"strings"
	"unicode"
)

// TextWrapMode selects where lines may break.
type TextWrapMode int

const (
	// WrapModeWord breaks at spaces.
	WrapModeWord TextWrapMode = iota
	// WrapModeChar breaks between any two characters.
	WrapModeChar
	// WrapModeAuto uses char mode for text containing CJK, word mode otherwise.
	WrapModeAuto
)

// WrapText splits text into lines no wider than maxWidth. Explicit newlines
// always break. A single word wider than maxWidth is split by character.
func WrapText(f Font, scale float32, text string, maxWidth float32, mode TextWrapMode) []string {
	paragraphs := strings.Split(text, "\n")
	if maxWidth <= 0 {
		return paragraphs
	}
	if mode == WrapModeAuto {
		mode = WrapModeWord
		if containsCJK(text) {
			mode = WrapModeChar
		}
	}

	var lines []string
	for _, p := range paragraphs {
		var wrapped []string
		if mode == WrapModeChar {
			wrapped = wrapByChar(f, scale, p, maxWidth)
		} else {
			wrapped = wrapByWord(f, scale, p, maxWidth)
		}
		if len(wrapped) == 0 {
			// Keep blank lines.
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

func wrapByWord(f Font, scale float32, text string, maxWidth float32) []string {
	var lines []string
	var current string

	for _, word := range strings.Fields(text) {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if f.MeasureText(test, scale).X <= maxWidth {
			current = test
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		if f.MeasureText(word, scale).X > maxWidth {
			parts := wrapByChar(f, scale, word, maxWidth)
			lines = append(lines, parts[:len(parts)-1]...)
			current = parts[len(parts)-1]
			continue
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func wrapByChar(f Font, scale float32, text string, maxWidth float32) []string {
	var lines []string
	var current []rune

	for _, r := range text {
		test := append(current, r)
		if f.MeasureText(string(test), scale).X > maxWidth && len(current) > 0 {
			lines = append(lines, string(current))
			current = []rune{r}
		} else {
			current = test
		}
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}

func containsCJK(text string) bool {
	for _, r := range text {
		if isCJKRune(r) {
			return true
		}
	}
	return false
}

func isCJKRune(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}

// TruncateText shortens text to fit maxWidth, ending it with "..".
func TruncateText(f Font, scale float32, text string, maxWidth float32) string {
	const suffix = ".."
	if f.MeasureText(text, scale).X <= maxWidth {
		return text
	}

	target := maxWidth - f.MeasureText(suffix, scale).X
	runes := []rune(text)
	for len(runes) > 0 {
		if f.MeasureText(string(runes), scale).X <= target {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	return suffix
}
