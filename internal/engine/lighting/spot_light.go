package lighting

import (
	gomath "math"

	"github.com/Faultbox/seaworld/pkg/math"
)

// SpotLight is a cone light. CutOff and OuterCutOff are cosines of the
// inner and outer cone half-angles, so CutOff > OuterCutOff.
type SpotLight struct {
	Position    math.Vec3
	Direction   math.Vec3
	CutOff      float32
	OuterCutOff float32
	Phong
	Attenuation
}

// Intensity returns the soft-edge cone factor for a fragment whose
// direction from the light makes cosine theta with the spot axis.
func (s SpotLight) Intensity(theta float32) float32 {
	eps := s.CutOff - s.OuterCutOff
	if eps <= 0 {
		if theta >= s.CutOff {
			return 1
		}
		return 0
	}
	i := (theta - s.OuterCutOff) / eps
	return float32(gomath.Min(1, gomath.Max(0, float64(i))))
}

// Reach returns the fraction of the spot's light left at p, counting both
// the cone edge and the distance falloff.
func (s SpotLight) Reach(p math.Vec3) float32 {
	d := p.Sub(s.Position)
	dist := d.Length()
	if dist == 0 {
		return 1
	}
	theta := d.Scale(1 / dist).Dot(s.Direction.Normalize())
	return s.Intensity(theta) * s.At(dist)
}

// cosDeg returns the cosine of an angle given in degrees.
func cosDeg(deg float32) float32 {
	return float32(gomath.Cos(float64(math.Radians(deg))))
}
