package ui2d

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/seaworld/internal/engine/texture"
)

// Printable ASCII range baked into the atlas.
const (
	firstGlyph   = 32
	lastGlyph    = 126
	atlasCols    = 16
	fallbackRune = '?'
)

// Font is a fixed-width bitmap font baked into a texture atlas.
type Font struct {
	face   *basicfont.Face
	glyphW int
	glyphH int
	atlasW int
	atlasH int
	texID  uint32
}

// NewFont bakes basicfont's 7x13 face and uploads it.
func NewFont() *Font {
	f := newFontLayout(basicfont.Face7x13)
	f.texID = texture.Upload2D(f.Atlas(), texture.Options{Clamp: true})
	return f
}

// newFontLayout computes atlas dimensions without touching GL.
func newFontLayout(face *basicfont.Face) *Font {
	glyphs := lastGlyph - firstGlyph + 1
	rows := (glyphs + atlasCols - 1) / atlasCols
	return &Font{
		face:   face,
		glyphW: face.Advance,
		glyphH: face.Height,
		atlasW: atlasCols * face.Advance,
		atlasH: rows * face.Height,
	}
}

// Atlas renders every glyph white on transparent, one cell per rune.
func (f *Font) Atlas() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.atlasW, f.atlasH))
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: f.face,
	}
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		x, y := f.cell(r)
		d.Dot = fixed.P(x, y+f.face.Ascent)
		d.DrawString(string(r))
	}
	return img
}

// cell returns the top-left pixel of r's atlas cell.
func (f *Font) cell(r rune) (int, int) {
	if r < firstGlyph || r > lastGlyph {
		r = fallbackRune
	}
	i := int(r - firstGlyph)
	return (i % atlasCols) * f.glyphW, (i / atlasCols) * f.glyphH
}

// TextureID returns the atlas texture.
func (f *Font) TextureID() uint32 {
	return f.texID
}

// GlyphSize returns the cell size in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.glyphW, f.glyphH
}

// GetGlyphUV returns the atlas coordinates of r. Runes outside printable
// ASCII map to '?'.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	x, y := f.cell(r)
	u0 = float32(x) / float32(f.atlasW)
	v0 = float32(y) / float32(f.atlasH)
	u1 = float32(x+f.glyphW) / float32(f.atlasW)
	v1 = float32(y+f.glyphH) / float32(f.atlasH)
	return u0, v0, u1, v1
}

// MeasureText returns the size of text at scale, honoring newlines.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	lines, longest, cur := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		if cur > longest {
			longest = cur
		}
	}
	return float32(longest*f.glyphW) * scale, float32(lines*f.glyphH) * scale
}

// Close releases the atlas texture.
func (f *Font) Close() {
	texture.Delete(f.texID)
	f.texID = 0
}
