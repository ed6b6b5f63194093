// Package camera provides the free-fly camera used to explore the scene.
package camera

import (
	gomath "math"

	"github.com/Faultbox/seaworld/pkg/math"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Default camera options.
const (
	DefaultYaw         float32 = -90
	DefaultPitch       float32 = 0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45
	MinZoom            float32 = 1
	MaxZoom            float32 = 45

	pitchLimit float32 = 89

	// unitTolerance is how far from 1 a length may be to count as unit
	unitTolerance float32 = 1e-4
)

// worldUp is the fixed up axis the basis is derived against.
var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// FlyCamera is a yaw/pitch camera that moves freely through the world.
// Front, Right and Up are derived from Yaw and Pitch after every turn;
// SetFront sets Front directly and derives the angles from it.
type FlyCamera struct {
	Position math.Vec3

	// Euler angles in degrees
	Yaw   float32
	Pitch float32

	// Derived basis
	Front math.Vec3
	Right math.Vec3
	Up    math.Vec3

	Speed       float32 // World units per second
	Sensitivity float32 // Degrees per pixel
	Zoom        float32 // Vertical field of view in degrees

	MinZoom        float32
	MaxZoom        float32
	ConstrainPitch bool
}

// NewFlyCamera creates a camera at position looking down -Z.
func NewFlyCamera(position math.Vec3) *FlyCamera {
	c := &FlyCamera{
		Position:       position,
		Yaw:            DefaultYaw,
		Pitch:          DefaultPitch,
		Speed:          DefaultSpeed,
		Sensitivity:    DefaultSensitivity,
		Zoom:           DefaultZoom,
		MinZoom:        MinZoom,
		MaxZoom:        MaxZoom,
		ConstrainPitch: true,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the world-to-view transform.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// SkyboxView returns the view matrix with its translation removed, so the
// skybox stays centered on the viewer wherever the camera is.
func (c *FlyCamera) SkyboxView() math.Mat4 {
	return c.ViewMatrix().WithoutTranslation()
}

// ProjectionMatrix returns the perspective projection for the current zoom.
func (c *FlyCamera) ProjectionMatrix(aspect, near, far float32) math.Mat4 {
	return math.Perspective(math.Radians(c.Zoom), aspect, near, far)
}

// ProcessKeyboard moves the camera along its basis. Distance is
// Speed*dt, so the path does not depend on how time is sliced into frames.
func (c *FlyCamera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Scale(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Scale(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Scale(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Scale(velocity))
	}
}

// ProcessMouseMovement turns the camera by a mouse offset in pixels.
// dy is positive when the mouse moves up.
func (c *FlyCamera) ProcessMouseMovement(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	if c.ConstrainPitch {
		c.Pitch = clamp(c.Pitch, -pitchLimit, pitchLimit)
	}
	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *FlyCamera) ProcessMouseScroll(dy float32) {
	c.Zoom = clamp(c.Zoom-dy, c.MinZoom, c.MaxZoom)
}

// SetFront points the camera along v and derives yaw and pitch from it.
// A vector of unit length is kept as is, so a restored front is saved back
// unchanged; others are normalized. A zero vector leaves the orientation
// unchanged. Front is only rebuilt from the angles on the next mouse turn.
func (c *FlyCamera) SetFront(v math.Vec3) {
	l := v.Length()
	if l == 0 {
		return
	}
	if d := l - 1; d > unitTolerance || d < -unitTolerance {
		v = v.Scale(1 / l)
	}
	c.Pitch = math.Degrees(float32(gomath.Asin(float64(clamp(v.Y, -1, 1)))))
	c.Yaw = math.Degrees(float32(gomath.Atan2(float64(v.Z), float64(v.X))))
	if c.ConstrainPitch {
		c.Pitch = clamp(c.Pitch, -pitchLimit, pitchLimit)
	}
	c.Front = v
	c.updateBasis()
}

// updateVectors re-derives Front, Right and Up from the Euler angles.
func (c *FlyCamera) updateVectors() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))

	c.Front = math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
	c.updateBasis()
}

// updateBasis re-derives Right and Up from Front.
func (c *FlyCamera) updateBasis() {
	c.Right = c.Front.Cross(worldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
