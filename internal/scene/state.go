package scene

import (
	"github.com/Faultbox/seaworld/internal/engine/camera"
	"github.com/Faultbox/seaworld/internal/engine/lighting"
	"github.com/Faultbox/seaworld/internal/settings"
	"github.com/Faultbox/seaworld/pkg/math"
)

// Action is a user command. Movement actions are held and scaled by the
// frame time; the rest fire once per key press.
type Action uint8

const (
	MoveForward Action = iota
	MoveBackward
	MoveLeft
	MoveRight
	ToggleOverlay
	ToggleBlink
	CycleJellyfishColor
	Quit
)

func (a Action) String() string {
	switch a {
	case MoveForward:
		return "move_forward"
	case MoveBackward:
		return "move_backward"
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case ToggleOverlay:
		return "toggle_overlay"
	case ToggleBlink:
		return "toggle_blink"
	case CycleJellyfishColor:
		return "cycle_color"
	case Quit:
		return "quit"
	}
	return "unknown"
}

var moveDirection = map[Action]camera.Direction{
	MoveForward:  camera.Forward,
	MoveBackward: camera.Backward,
	MoveLeft:     camera.Left,
	MoveRight:    camera.Right,
}

// State is everything input can change, plus the scene clock.
type State struct {
	Objects []Object
	Camera  *camera.FlyCamera
	Lights  *lighting.Rig

	ClearColor math.Vec3
	Overlay    bool
	MouseLook  bool // Mouse motion turns the camera
	Quitting   bool

	// Seconds since the scene started
	Time float32
}

// NewState builds the scene state from persisted settings. Mouse look is on
// unless the overlay starts open.
func NewState(s settings.Settings) *State {
	cam := camera.NewFlyCamera(s.CameraPosition)
	cam.SetFront(s.CameraFront)
	return &State{
		Objects:    Objects(),
		Camera:     cam,
		Lights:     lighting.NewRig(),
		ClearColor: s.ClearColor,
		Overlay:    s.OverlayEnabled,
		MouseLook:  !s.OverlayEnabled,
	}
}

// Settings returns the persisted subset of the state.
func (s *State) Settings() settings.Settings {
	return settings.Settings{
		ClearColor:     s.ClearColor,
		OverlayEnabled: s.Overlay,
		CameraPosition: s.Camera.Position,
		CameraFront:    s.Camera.Front,
	}
}

// Apply performs a. dt is only used by movement.
func (s *State) Apply(a Action, dt float32) {
	if dir, ok := moveDirection[a]; ok {
		s.Camera.ProcessKeyboard(dir, dt)
		return
	}
	switch a {
	case ToggleOverlay:
		s.Overlay = !s.Overlay
		// The overlay needs a free cursor
		s.MouseLook = !s.Overlay
	case ToggleBlink:
		s.Lights.ToggleBlink()
	case CycleJellyfishColor:
		s.Lights.CycleColor()
	case Quit:
		s.Quitting = true
	}
}

// CaptureMouse reports whether the cursor should be grabbed. The overlay
// always keeps it free, even with mouse look checked there.
func (s *State) CaptureMouse() bool {
	return s.MouseLook && !s.Overlay
}

// Look turns the camera by a mouse offset while the mouse is captured. dy
// is positive when the mouse moves up.
func (s *State) Look(dx, dy float32) {
	if !s.CaptureMouse() {
		return
	}
	s.Camera.ProcessMouseMovement(dx, dy)
}

// Zoom narrows the field of view by a wheel offset.
func (s *State) Zoom(dy float32) {
	s.Camera.ProcessMouseScroll(dy)
}

