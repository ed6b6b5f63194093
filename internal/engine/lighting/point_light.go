// Package lighting holds the fixed light rig of the scene: two point lamps,
// one directional light and a flashlight that follows the camera.
package lighting

import "github.com/Faultbox/seaworld/pkg/math"

// MaxPointLights is the size of the pointLights uniform array in the shaders.
const MaxPointLights = 2

// Attenuation holds the constant, linear and quadratic falloff terms.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// At returns the attenuation factor at distance d.
func (a Attenuation) At(d float32) float32 {
	return 1 / (a.Constant + a.Linear*d + a.Quadratic*d*d)
}

// Phong groups the three color terms every light carries.
type Phong struct {
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

// Scaled returns the colors multiplied by k.
func (p Phong) Scaled(k float32) Phong {
	return Phong{
		Ambient:  p.Ambient.Scale(k),
		Diffuse:  p.Diffuse.Scale(k),
		Specular: p.Specular.Scale(k),
	}
}

// PointLight is a positional light with distance falloff.
type PointLight struct {
	Position math.Vec3
	Phong
	Attenuation
}

// Reach returns the fraction of the lamp's light left at p.
func (l PointLight) Reach(p math.Vec3) float32 {
	return l.At(l.Position.Distance(p))
}
