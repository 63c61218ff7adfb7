package immediate

import (
	"errors"
	"fmt"
	"image"
	"os"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font measures text and produces glyph quads against a texture atlas.
type Font interface {
	// TextureID is the atlas texture, or 0 before upload.
	TextureID() uint32
	HasGlyph(r rune) bool
	// MeasureText returns the size of a single line of text.
	MeasureText(text string, scale float32) Vec2
	// GlyphQuads appends quads for text with its top-left at x, y.
	GlyphQuads(dst []GlyphQuad, text string, x, y, scale float32) []GlyphQuad
	LineHeight(scale float32) float32
}

// ErrFontSize is returned for a non-positive font size.
var ErrFontSize = errors.New("font size must be positive")

const (
	atlasWidth   = 512
	glyphPadding = 1
	fallbackRune = '?'
)

// Rasterized ranges: printable ASCII and Latin-1.
var atlasRanges = [][2]rune{{32, 126}, {160, 255}}

type glyph struct {
	advance        float32 // pixels
	width          float32 // cell width in pixels
	u0, v0, u1, v1 float32
}

// Atlas is a Font rasterized into a single-channel alpha image.
type Atlas struct {
	img        *image.Alpha
	glyphs     map[rune]glyph
	lineHeight float32
	textureID  uint32
}

// DefaultFont rasterizes the embedded Go Regular face.
func DefaultFont(size float64) (*Atlas, error) {
	return NewAtlas(goregular.TTF, size)
}

// LoadFont reads a TTF or OTF file and rasterizes it.
func LoadFont(path string, size float64) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return NewAtlas(data, size)
}

// NewAtlas rasterizes font data at size points (96 DPI).
func NewAtlas(data []byte, size float64) (*Atlas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrFontSize, size)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	cellH := ascent + metrics.Descent.Ceil()

	type placed struct {
		r       rune
		x, y    int
		w       int
		advance fixed.Int26_6
	}
	var cells []placed
	x, y := 0, 0
	for _, rg := range atlasRanges {
		for r := rg[0]; r <= rg[1]; r++ {
			adv, ok := face.GlyphAdvance(r)
			if !ok {
				continue
			}
			w := adv.Ceil() + glyphPadding
			if x+w > atlasWidth {
				x = 0
				y += cellH + glyphPadding
			}
			cells = append(cells, placed{r: r, x: x, y: y, w: w, advance: adv})
			x += w + glyphPadding
		}
	}
	height := y + cellH

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, height))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}

	a := &Atlas{
		img:        img,
		glyphs:     make(map[rune]glyph, len(cells)),
		lineHeight: float32(cellH),
	}
	fw, fh := float32(atlasWidth), float32(height)
	for _, c := range cells {
		drawer.Dot = fixed.P(c.x, c.y+ascent)
		drawer.DrawString(string(c.r))

		a.glyphs[c.r] = glyph{
			advance: float32(c.advance) / 64,
			width:   float32(c.w),
			u0:      float32(c.x) / fw,
			v0:      float32(c.y) / fh,
			u1:      float32(c.x+c.w) / fw,
			v1:      float32(c.y+cellH) / fh,
		}
	}
	return a, nil
}

// Image returns the rasterized atlas.
func (a *Atlas) Image() *image.Alpha { return a.img }

// Pixels returns the atlas as tightly packed 8-bit alpha rows.
func (a *Atlas) Pixels() (pix []byte, width, height int) {
	b := a.img.Bounds()
	return a.img.Pix, b.Dx(), b.Dy()
}

// SetTextureID records the uploaded texture.
func (a *Atlas) SetTextureID(id uint32) { a.textureID = id }

func (a *Atlas) TextureID() uint32 { return a.textureID }

func (a *Atlas) HasGlyph(r rune) bool {
	_, ok := a.glyphs[r]
	return ok
}

func (a *Atlas) LineHeight(scale float32) float32 { return a.lineHeight * scale }

func (a *Atlas) lookup(r rune) glyph {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	return a.glyphs[fallbackRune]
}

func (a *Atlas) MeasureText(text string, scale float32) Vec2 {
	var w float32
	for _, r := range text {
		w += a.lookup(r).advance
	}
	return Vec2{X: w * scale, Y: a.lineHeight * scale}
}

func (a *Atlas) GlyphQuads(dst []GlyphQuad, text string, x, y, scale float32) []GlyphQuad {
	h := a.lineHeight * scale
	for _, r := range text {
		g := a.lookup(r)
		if r != ' ' {
			dst = append(dst, GlyphQuad{
				X0: x, Y0: y,
				X1: x + g.width*scale, Y1: y + h,
				U0: g.u0, V0: g.v0,
				U1: g.u1, V1: g.v1,
			})
		}
		x += g.advance * scale
	}
	return dst
}

// monoFont measures text on a fixed grid and draws nothing. It is used
// when no atlas is configured, which keeps layout testable without GL.
type monoFont struct {
	charWidth, charHeight float32
}

var defaultMonoFont = monoFont{charWidth: 8, charHeight: 16}

func (monoFont) TextureID() uint32 { return 0 }

func (monoFont) HasGlyph(r rune) bool { return r >= 32 }

func (m monoFont) MeasureText(text string, scale float32) Vec2 {
	return Vec2{
		X: float32(utf8.RuneCountInString(text)) * m.charWidth * scale,
		Y: m.charHeight * scale,
	}
}

func (monoFont) GlyphQuads(dst []GlyphQuad, _ string, _, _, _ float32) []GlyphQuad {
	return dst
}

func (m monoFont) LineHeight(scale float32) float32 { return m.charHeight * scale }
