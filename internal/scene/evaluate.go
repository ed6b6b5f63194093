package scene

import "github.com/Faultbox/seaworld/pkg/math"

// Posed is an object placed at a point in time.
type Posed struct {
	Index int // Position in the object table
	Name  string
	Batch Batch
	Model math.Mat4
}

// Position returns the world-space origin of the object.
func (p Posed) Position() math.Vec3 {
	return p.Model.Translation()
}

// Evaluate returns the model matrix of every object at t seconds since
// start, in table order. The result depends only on objects and t.
func Evaluate(objects []Object, t float32) []Posed {
	out := make([]Posed, len(objects))
	for i := range objects {
		o := &objects[i]
		out[i] = Posed{
			Index: i,
			Name:  o.Name,
			Batch: o.Batch,
			Model: o.Pose.Matrix(t),
		}
	}
	return out
}

// LampPosition returns where the jellyfish lamp is at t. ok is false when
// the table has no anchor object.
func LampPosition(objects []Object, t float32) (pos math.Vec3, ok bool) {
	i := Index(objects, LampAnchor)
	if i < 0 {
		return math.Vec3{}, false
	}
	return objects[i].Pose.Translation(t), true
}
