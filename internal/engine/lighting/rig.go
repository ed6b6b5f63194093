package lighting

import (
	gomath "math"

	"github.com/Faultbox/seaworld/pkg/math"
)

// Lamp indices into Rig.Points.
const (
	JellyfishLamp  = 0
	AnglerfishLamp = 1
)

// Blink oscillation of the jellyfish lamp, in radians per second.
const blinkFreq = 20

// lampAttenuation reaches roughly 100 world units.
var lampAttenuation = Attenuation{Constant: 1, Linear: 0.027, Quadratic: 0.0028}

var white = math.Vec3{X: 1, Y: 1, Z: 1}

// LampPalette lists the jellyfish lamp tints selected by Rig.ColorIndex:
// red, green and blue.
var LampPalette = [3]Phong{
	{Ambient: math.Vec3{X: 0.1, Y: 0.02, Z: 0.02}, Diffuse: math.Vec3{X: 0.6, Y: 0.1, Z: 0.1}, Specular: white},
	{Ambient: math.Vec3{X: 0.02, Y: 0.1, Z: 0.02}, Diffuse: math.Vec3{X: 0.1, Y: 0.6, Z: 0.1}, Specular: white},
	{Ambient: math.Vec3{X: 0.02, Y: 0.02, Z: 0.1}, Diffuse: math.Vec3{X: 0.1, Y: 0.1, Z: 0.6}, Specular: white},
}

// Rig is the complete set of lights uploaded every frame.
type Rig struct {
	Points [MaxPointLights]PointLight
	Dir    DirLight
	Spot   SpotLight

	Blink      bool
	ColorIndex int
}

// NewRig returns the scene's static light configuration.
func NewRig() *Rig {
	r := &Rig{
		Points: [MaxPointLights]PointLight{
			JellyfishLamp: {
				Position:    math.Vec3{X: -16, Y: 11, Z: -6},
				Phong:       LampPalette[0],
				Attenuation: lampAttenuation,
			},
			AnglerfishLamp: {
				Position: math.Vec3{X: 0, Y: 3, Z: 51},
				Phong: Phong{
					Ambient:  math.Splat(0.1),
					Diffuse:  math.Splat(0.6),
					Specular: white,
				},
				Attenuation: lampAttenuation,
			},
		},
		Dir: DirLight{
			Direction: math.Vec3{X: 0, Y: -1, Z: 0.15},
			Phong: Phong{
				Ambient:  math.Splat(0.05),
				Diffuse:  math.Splat(0.4),
				Specular: math.Splat(0.5),
			},
		},
		Spot: SpotLight{
			CutOff:      cosDeg(12.5),
			OuterCutOff: cosDeg(15),
			Phong: Phong{
				Diffuse:  white,
				Specular: white,
			},
			Attenuation: Attenuation{Constant: 1, Linear: 0.09, Quadratic: 0.032},
		},
	}
	return r
}

// ToggleBlink switches the bioluminescent pulse of the jellyfish lamp.
func (r *Rig) ToggleBlink() {
	r.Blink = !r.Blink
}

// CycleColor advances the jellyfish lamp tint: red, green, blue, red.
func (r *Rig) CycleColor() {
	r.ColorIndex = (r.ColorIndex + 1) % len(LampPalette)
}

// LampColors returns the jellyfish lamp colors at time t for the current
// toggles. The result depends only on t, Blink and ColorIndex.
func (r *Rig) LampColors(t float32) Phong {
	idx := r.ColorIndex % len(LampPalette)
	if idx < 0 {
		idx += len(LampPalette)
	}
	base := LampPalette[idx]
	if !r.Blink {
		return base
	}
	k := 0.5 + 0.5*gomath.Sin(blinkFreq*float64(t))
	return base.Scaled(float32(k))
}

// Update refreshes the time-varying parts of the rig: the jellyfish lamp
// follows its tethered object and the spotlight follows the camera.
func (r *Rig) Update(t float32, lampPos, camPos, camFront math.Vec3) {
	lamp := &r.Points[JellyfishLamp]
	lamp.Position = lampPos
	lamp.Phong = r.LampColors(t)

	r.Spot.Position = camPos
	r.Spot.Direction = camFront
}
