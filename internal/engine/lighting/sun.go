package lighting

import "github.com/Faultbox/seaworld/pkg/math"

// DirLight is a light infinitely far away, shining along Direction.
// Underwater it stands in for sunlight filtered from the surface.
type DirLight struct {
	Direction math.Vec3
	Phong
}

