package game

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/seaworld/internal/scene"
)

// keyState is the part of input.Input the bindings read.
type keyState interface {
	IsKeyPressed(sdl.Scancode) bool
	IsKeyHeld(sdl.Scancode) bool
}

// binding maps a key to a scene action.
type binding struct {
	key    sdl.Scancode
	action scene.Action
}

// Movement keys act every frame they are held.
var heldBindings = []binding{
	{sdl.SCANCODE_W, scene.MoveForward},
	{sdl.SCANCODE_S, scene.MoveBackward},
	{sdl.SCANCODE_A, scene.MoveLeft},
	{sdl.SCANCODE_D, scene.MoveRight},
}

// Toggle keys act once per press; auto-repeat is ignored.
var pressBindings = []binding{
	{sdl.SCANCODE_F1, scene.ToggleOverlay},
	{sdl.SCANCODE_B, scene.ToggleBlink},
	{sdl.SCANCODE_C, scene.CycleJellyfishColor},
	{sdl.SCANCODE_ESCAPE, scene.Quit},
}

// actions returns the actions triggered by the keyboard this frame,
// edge-triggered ones first.
func actions(keys keyState) []scene.Action {
	var out []scene.Action
	for _, b := range pressBindings {
		if keys.IsKeyPressed(b.key) {
			out = append(out, b.action)
		}
	}
	for _, b := range heldBindings {
		if keys.IsKeyHeld(b.key) {
			out = append(out, b.action)
		}
	}
	return out
}
