package animation

import "github.com/Faultbox/seaworld/pkg/math"

// Pose describes an object's placement as functions of time.
// Rotate holds angles in degrees around X, Y and Z.
type Pose struct {
	Translate Vec3Wave
	Rotate    Vec3Wave
	Scale     Vec3Wave
}

// Static returns a pose with constant components.
func Static(translate, rotateDeg math.Vec3, scale float32) Pose {
	return Pose{
		Translate: ConstVec3(translate.X, translate.Y, translate.Z),
		Rotate:    ConstVec3(rotateDeg.X, rotateDeg.Y, rotateDeg.Z),
		Scale:     Uniform(Const(scale)),
	}
}

// Translation evaluates only the translation at t.
func (p Pose) Translation(t float32) math.Vec3 {
	return p.Translate.Value(t)
}

// Matrix evaluates the model matrix at t as
// translate * rotX * rotY * rotZ * scale.
func (p Pose) Matrix(t float32) math.Mat4 {
	r := p.Rotate.Value(t)
	return math.TRS(
		p.Translate.Value(t),
		math.Radians(r.X), math.Radians(r.Y), math.Radians(r.Z),
		p.Scale.Value(t),
	)
}
