package ui2d

import "fmt"

// textScale is the glyph magnification used by every widget.
const textScale = 1

// Layout constants in pixels.
const (
	titleBarH = 22
	padding   = 8
	spacing   = 4
	rowHeight = 20
)

// Painter is the drawing surface widgets emit to. *Renderer implements it.
type Painter interface {
	DrawRect(x, y, width, height float32, color Color)
	DrawRectOutline(x, y, width, height, thickness float32, color Color)
	DrawPanel(x, y, width, height float32, bg, border Color)
	DrawText(x, y float32, text string, scale float32, color Color)
	MeasureText(text string, scale float32) (float32, float32)
	Begin()
	End()
}

// Context is the main UI context that manages layout and interaction.
type Context struct {
	painter Painter
	input   *InputState

	activeWidget string

	windows       map[string]*WindowState
	currentWindow *WindowState

	cursorX float32
	cursorY float32
	rowH    float32
}

// WindowState holds state for a UI window.
type WindowState struct {
	ID     string
	X, Y   float32
	W, H   float32
	Open   bool
	Moving bool
}

// NewContext creates a context drawing through a new GL renderer.
func NewContext(width, height int) (*Context, *Renderer, error) {
	r, err := New(width, height)
	if err != nil {
		return nil, nil, fmt.Errorf("create renderer: %w", err)
	}
	return NewContextWith(r), r, nil
}

// NewContextWith creates a context drawing through p.
func NewContextWith(p Painter) *Context {
	return &Context{
		painter: p,
		input:   &InputState{},
		windows: make(map[string]*WindowState),
	}
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.painter.Begin()
}

// End finishes the UI frame.
func (c *Context) End() {
	c.painter.End()
	c.input.EndFrame()
}

// WantsMouse reports whether the mouse is over an open window or a widget
// is being dragged, so the scene should ignore mouse input.
func (c *Context) WantsMouse() bool {
	if c.activeWidget != "" {
		return true
	}
	for _, ws := range c.windows {
		if ws.Open && c.input.IsMouseInRect(ws.X, ws.Y, ws.W, ws.H) {
			return true
		}
	}
	return false
}

// BeginWindow starts a window. The first call fixes its initial placement;
// afterwards the user may drag it by the title bar.
func (c *Context) BeginWindow(id string, x, y, w, h float32, title string) bool {
	ws, ok := c.windows[id]
	if !ok {
		ws = &WindowState{ID: id, X: x, Y: y, W: w, H: h, Open: true}
		c.windows[id] = ws
	}
	if !ws.Open {
		return false
	}
	c.currentWindow = ws

	titleRect := Rect{ws.X, ws.Y, ws.W, titleBarH}
	if c.input.MouseLeftPressed && titleRect.Contains(c.input.MouseX, c.input.MouseY) {
		ws.Moving = true
		c.activeWidget = id + "_titlebar"
	}
	if ws.Moving && c.input.MouseLeftDown {
		ws.X += c.input.MouseDeltaX
		ws.Y += c.input.MouseDeltaY
	}
	if c.input.MouseLeftReleased {
		ws.Moving = false
		if c.activeWidget == id+"_titlebar" {
			c.activeWidget = ""
		}
	}

	c.painter.DrawPanel(ws.X, ws.Y, ws.W, ws.H, ColorPanelBg, ColorPanelBorder)
	c.painter.DrawRect(ws.X+1, ws.Y+1, ws.W-2, titleBarH-1, ColorButtonNormal)
	_, textH := c.painter.MeasureText(title, textScale)
	c.painter.DrawText(ws.X+padding, ws.Y+(titleBarH-textH)/2, title, textScale, ColorText)

	c.cursorX = ws.X + padding
	c.cursorY = ws.Y + titleBarH + padding
	c.rowH = 0
	return true
}

// EndWindow ends the current window.
func (c *Context) EndWindow() {
	c.currentWindow = nil
}

// Row starts a new row with the given height.
func (c *Context) Row(height float32) {
	if c.currentWindow == nil {
		return
	}
	c.cursorX = c.currentWindow.X + padding
	c.cursorY += c.rowH + spacing
	c.rowH = height
}

// Label draws a text label on a new row.
func (c *Context) Label(text string) {
	c.LabelColored(text, ColorText)
}

// LabelColored draws a text label with a specific color on a new row.
func (c *Context) LabelColored(text string, color Color) {
	if c.currentWindow == nil {
		return
	}
	_, h := c.painter.MeasureText(text, textScale)
	c.Row(h)
	c.painter.DrawText(c.cursorX, c.cursorY, text, textScale, color)
}

// Separator draws a horizontal line across the window.
func (c *Context) Separator() {
	if c.currentWindow == nil {
		return
	}
	c.Row(1)
	c.painter.DrawRect(c.currentWindow.X+padding, c.cursorY, c.currentWindow.W-2*padding, 1, ColorPanelBorder)
}

// Button draws a full-width button on a new row and reports a click.
func (c *Context) Button(id, label string) bool {
	if c.currentWindow == nil {
		return false
	}
	c.Row(rowHeight)
	rect := Rect{c.cursorX, c.cursorY, c.currentWindow.W - 2*padding, rowHeight}
	fullID := c.currentWindow.ID + "_" + id

	hovered := rect.Contains(c.input.MouseX, c.input.MouseY)
	clicked := false
	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
		clicked = true
	}
	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		c.activeWidget = ""
	}

	color := ColorButtonNormal
	if c.activeWidget == fullID {
		color = ColorButtonActive
	} else if hovered {
		color = ColorButtonHover
	}
	c.painter.DrawRect(rect.X, rect.Y, rect.W, rect.H, color)
	c.painter.DrawRectOutline(rect.X, rect.Y, rect.W, rect.H, 1, ColorPanelBorder)

	textW, textH := c.painter.MeasureText(label, textScale)
	c.painter.DrawText(rect.X+(rect.W-textW)/2, rect.Y+(rect.H-textH)/2, label, textScale, ColorText)
	return clicked
}

// Checkbox draws a checkbox on a new row and returns the possibly toggled
// value. A toggle happens on release over the box.
func (c *Context) Checkbox(id, label string, checked bool) bool {
	if c.currentWindow == nil {
		return checked
	}
	c.Row(rowHeight)
	const box = 16
	x, y := c.cursorX, c.cursorY
	fullID := c.currentWindow.ID + "_" + id
	rect := Rect{x, y, box, box}

	hovered := rect.Contains(c.input.MouseX, c.input.MouseY)
	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
	}
	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		if hovered {
			checked = !checked
		}
		c.activeWidget = ""
	}

	bg := ColorInputBg
	if hovered {
		bg = ColorButtonHover
	}
	c.painter.DrawRect(x, y, box, box, bg)
	c.painter.DrawRectOutline(x, y, box, box, 1, ColorPanelBorder)
	if checked {
		c.painter.DrawRect(x+4, y+4, box-8, box-8, ColorHighlight)
	}

	_, textH := c.painter.MeasureText(label, textScale)
	c.painter.DrawText(x+box+padding, y+(box-textH)/2, label, textScale, ColorText)
	return checked
}

// SliderFloat draws a labeled horizontal slider on a new row. Dragging
// anywhere on the track sets the value proportionally, clamped to
// [lo, hi].
func (c *Context) SliderFloat(id, label string, value, lo, hi float32) float32 {
	if c.currentWindow == nil || hi <= lo {
		return value
	}
	c.Row(rowHeight)
	fullID := c.currentWindow.ID + "_" + id

	labelW, textH := c.painter.MeasureText(label, textScale)
	trackX := c.cursorX + labelW + padding
	trackW := c.currentWindow.X + c.currentWindow.W - padding - trackX
	if trackW < 20 {
		trackW = 20
	}
	track := Rect{trackX, c.cursorY, trackW, rowHeight}

	if c.input.MouseLeftPressed && track.Contains(c.input.MouseX, c.input.MouseY) {
		c.activeWidget = fullID
	}
	if c.activeWidget == fullID {
		frac := (c.input.MouseX - track.X) / track.W
		value = lo + clamp01(frac)*(hi-lo)
		if c.input.MouseLeftReleased || !c.input.MouseLeftDown {
			c.activeWidget = ""
		}
	}
	if value < lo {
		value = lo
	} else if value > hi {
		value = hi
	}

	c.painter.DrawText(c.cursorX, c.cursorY+(rowHeight-textH)/2, label, textScale, ColorText)
	c.painter.DrawRect(track.X, track.Y, track.W, track.H, ColorInputBg)
	fill := (value - lo) / (hi - lo) * track.W
	c.painter.DrawRect(track.X, track.Y, fill, track.H, ColorButtonActive)
	c.painter.DrawRectOutline(track.X, track.Y, track.W, track.H, 1, ColorInputBorder)

	text := fmt.Sprintf("%.3f", value)
	tw, th := c.painter.MeasureText(text, textScale)
	c.painter.DrawText(track.X+(track.W-tw)/2, track.Y+(track.H-th)/2, text, textScale, ColorText)
	return value
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
