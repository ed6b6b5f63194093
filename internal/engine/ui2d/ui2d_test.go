package ui2d

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

// fakePainter records text draws and measures 8px-wide glyphs.
type fakePainter struct {
	texts []string
	rects int
}

func (f *fakePainter) DrawRect(x, y, w, h float32, c Color) { f.rects++ }
func (f *fakePainter) DrawRectOutline(x, y, w, h, thickness float32, c Color) { f.rects++ }
func (f *fakePainter) DrawPanel(x, y, w, h float32, bg, border Color) { f.rects++ }
func (f *fakePainter) DrawText(x, y float32, text string, scale float32, c Color) {
	f.texts = append(f.texts, text)
}
func (f *fakePainter) MeasureText(text string, scale float32) (float32, float32) {
	return float32(len(text)*8) * scale, 13 * scale
}
func (f *fakePainter) Begin() {}
func (f *fakePainter) End() {}

// frame runs one UI frame with the mouse at x, y.
func frame(c *Context, x, y float32, down bool, body func()) {
	in := c.Input()
	in.MouseX, in.MouseY, in.MouseLeftDown = x, y, down
	c.Begin()
	c.BeginWindow("w", 0, 0, 300, 200, "Debug")
	body()
	c.EndWindow()
	c.End()
}

func TestCheckboxTogglesOnRelease(t *testing.T) {
	c := NewContextWith(&fakePainter{})
	checked := false

	// Box sits at (8, 22+8+4) after the title bar, padding and row spacing
	const bx, by = 12, 38

	frame(c, bx, by, true, func() { checked = c.Checkbox("mouse", "Mouse look", checked) })
	if checked {
		t.Fatal("toggle must wait for release")
	}
	frame(c, bx, by, false, func() { checked = c.Checkbox("mouse", "Mouse look", checked) })
	if !checked {
		t.Fatal("expected toggle on release")
	}
	frame(c, bx, by, false, func() { checked = c.Checkbox("mouse", "Mouse look", checked) })
	if !checked {
		t.Error("no further toggle without a new click")
	}
}

func TestSliderFollowsMouse(t *testing.T) {
	c := NewContextWith(&fakePainter{})
	v := float32(0.5)

	// Label "r" is 8px wide: track starts at 8+8+8 = 24 and ends at 300-8.
	trackX, trackW := float32(24), float32(300-8-24)
	y := float32(40)

	frame(c, trackX+trackW*0.25, y, true, func() { v = c.SliderFloat("r", "r", v, 0, 1) })
	if v < 0.249 || v > 0.251 {
		t.Fatalf("expected 0.25, got %f", v)
	}

	// Dragging past the end clamps
	frame(c, trackX+trackW*2, y, true, func() { v = c.SliderFloat("r", "r", v, 0, 1) })
	if v != 1 {
		t.Errorf("expected clamp to 1, got %f", v)
	}
	if !c.WantsMouse() {
		t.Error("an active drag should capture the mouse")
	}

	frame(c, 1000, 1000, false, func() { v = c.SliderFloat("r", "r", v, 0, 1) })
	if c.WantsMouse() {
		t.Error("released mouse outside the window should not be captured")
	}
}

func TestSliderClampsInitialValue(t *testing.T) {
	c := NewContextWith(&fakePainter{})
	var v float32
	frame(c, 1000, 1000, false, func() { v = c.SliderFloat("q", "q", 5, 0, 1) })
	if v != 1 {
		t.Errorf("expected 1, got %f", v)
	}
}

func TestButtonClickOnPress(t *testing.T) {
	c := NewContextWith(&fakePainter{})
	clicked := false
	frame(c, 100, 40, true, func() { clicked = c.Button("reset", "Reset") })
	if !clicked {
		t.Error("expected click")
	}
	frame(c, 100, 40, true, func() { clicked = c.Button("reset", "Reset") })
	if clicked {
		t.Error("holding the button must not click again")
	}
}

func TestWindowDrag(t *testing.T) {
	c := NewContextWith(&fakePainter{})
	frame(c, 50, 10, false, func() {})
	frame(c, 50, 10, true, func() {})
	frame(c, 70, 30, true, func() {})

	ws := c.windows["w"]
	if ws.X != 20 || ws.Y != 20 {
		t.Errorf("window at (%f, %f), want (20, 20)", ws.X, ws.Y)
	}
}

func TestLabelsOutsideWindowIgnored(t *testing.T) {
	p := &fakePainter{}
	c := NewContextWith(p)
	c.Label("orphan")
	if len(p.texts) != 0 {
		t.Errorf("expected no draws outside a window, got %v", p.texts)
	}
}

func TestFontLayout(t *testing.T) {
	f := newFontLayout(basicfont.Face7x13)
	if w, h := f.GlyphSize(); w != 7 || h != 13 {
		t.Fatalf("glyph size %dx%d, want 7x13", w, h)
	}

	u0, v0, u1, v1 := f.GetGlyphUV('A')
	if u0 >= u1 || v0 >= v1 {
		t.Errorf("degenerate uv for A: %f %f %f %f", u0, v0, u1, v1)
	}

	// Unknown runes fall back to '?'
	q0, qv0, _, _ := f.GetGlyphUV('?')
	x0, xv0, _, _ := f.GetGlyphUV('é')
	if q0 != x0 || qv0 != xv0 {
		t.Error("expected fallback glyph for non-ASCII rune")
	}

	w, h := f.MeasureText("ab\nlonger", 2)
	if w != 6*7*2 || h != 2*13*2 {
		t.Errorf("MeasureText = %f x %f", w, h)
	}
}

func TestFontAtlasHasInk(t *testing.T) {
	f := newFontLayout(basicfont.Face7x13)
	img := f.Atlas()

	x, y := f.cell('W')
	ink := false
	for py := y; py < y+13 && !ink; py++ {
		for px := x; px < x+7; px++ {
			if img.RGBAAt(px, py).A > 0 {
				ink = true
				break
			}
		}
	}
	if !ink {
		t.Error("expected glyph pixels for W")
	}

	sx, sy := f.cell(' ')
	for py := sy; py < sy+13; py++ {
		for px := sx; px < sx+7; px++ {
			if img.RGBAAt(px, py).A != 0 {
				t.Fatalf("space cell has ink at %d,%d", px, py)
			}
		}
	}
}
