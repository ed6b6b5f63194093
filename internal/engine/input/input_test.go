package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyPressIgnoresRepeat(t *testing.T) {
	in := New()
	in.apply(Event{Type: EventKeyDown, Key: sdl.SCANCODE_B, Repeat: true})

	if in.IsKeyPressed(sdl.SCANCODE_B) {
		t.Error("auto-repeat must not count as a press")
	}
	if !in.IsKeyHeld(sdl.SCANCODE_B) {
		t.Error("repeat still means the key is held")
	}
}

func TestKeyHeldAcrossFrames(t *testing.T) {
	in := New()
	in.apply(Event{Type: EventKeyDown, Key: sdl.SCANCODE_W})
	if !in.IsKeyPressed(sdl.SCANCODE_W) {
		t.Fatal("expected press on the first frame")
	}

	// Next frame without new events
	in.events = in.events[:0]
	if in.IsKeyPressed(sdl.SCANCODE_W) {
		t.Error("press must not carry into the next frame")
	}
	if !in.IsKeyHeld(sdl.SCANCODE_W) {
		t.Error("key should still be held")
	}

	in.apply(Event{Type: EventKeyUp, Key: sdl.SCANCODE_W})
	if in.IsKeyHeld(sdl.SCANCODE_W) {
		t.Error("key should be released")
	}
}

func TestMouseAccumulation(t *testing.T) {
	in := New()
	in.apply(Event{Type: EventMouseMove, MouseX: 10, MouseY: 10, RelX: 3, RelY: -1})
	in.apply(Event{Type: EventMouseMove, MouseX: 12, MouseY: 8, RelX: 2, RelY: -2})
	in.apply(Event{Type: EventMouseWheel, WheelY: 1})
	in.apply(Event{Type: EventMouseWheel, WheelY: 0.5})

	if dx, dy := in.MouseDelta(); dx != 5 || dy != -3 {
		t.Errorf("delta = (%d, %d), want (5, -3)", dx, dy)
	}
	if w := in.Wheel(); w != 1.5 {
		t.Errorf("wheel = %f, want 1.5", w)
	}
	if x, y := in.MousePosition(); x != 12 || y != 8 {
		t.Errorf("position = (%d, %d), want (12, 8)", x, y)
	}
}

func TestButtons(t *testing.T) {
	in := New()
	in.apply(Event{Type: EventMouseDown, Button: sdl.BUTTON_LEFT, MouseX: 4, MouseY: 5})
	if !in.IsButtonHeld(sdl.BUTTON_LEFT) {
		t.Fatal("left button should be held")
	}
	in.apply(Event{Type: EventMouseUp, Button: sdl.BUTTON_LEFT})
	if in.IsButtonHeld(sdl.BUTTON_LEFT) {
		t.Error("left button should be released")
	}
}

func TestResizedKeepsLast(t *testing.T) {
	in := New()
	if _, _, ok := in.Resized(); ok {
		t.Fatal("no resize expected")
	}
	in.apply(Event{Type: EventWindowResize, Width: 800, Height: 600})
	in.apply(Event{Type: EventWindowResize, Width: 1024, Height: 768})

	w, h, ok := in.Resized()
	if !ok || w != 1024 || h != 768 {
		t.Errorf("Resized() = %d, %d, %v", w, h, ok)
	}
}
