// Package scene composes the underwater scene: the table of objects and how
// they move, the viewer state driven by input, and the fixed order in which
// a frame is drawn. It does not touch OpenGL; a Backend performs the draws.
package scene

import (
	"github.com/Faultbox/seaworld/internal/engine/animation"
	"github.com/Faultbox/seaworld/pkg/math"
)

// Batch selects the pipeline an object is drawn with.
type Batch uint8

const (
	BatchSolid    Batch = iota // Textured box with diffuse and specular maps
	BatchModel                 // Loaded mesh model
	BatchParallax              // Normal and height mapped quad
	BatchSkybox                // Cube map around the viewer
	BatchSprite                // Alpha blended quad
)

func (b Batch) String() string {
	switch b {
	case BatchSolid:
		return "solid"
	case BatchModel:
		return "model"
	case BatchParallax:
		return "parallax"
	case BatchSkybox:
		return "skybox"
	case BatchSprite:
		return "sprite"
	}
	return "unknown"
}

// Object names referenced outside the table.
const (
	Box        = "box"
	Fish       = "fish"
	Submarine  = "submarine"
	Fish2      = "fish2"
	Jellyfish  = "jellyfish"
	Shark      = "shark"
	Anglerfish = "anglerfish"
	Seashell   = "seashell"
	Barrels    = "barrels"
	Sand       = "sand"
	Skybox     = "skybox"
)

// LampAnchor is the object the jellyfish lamp travels with.
const LampAnchor = Jellyfish

// Object is one entry of the scene table.
type Object struct {
	Name  string
	Asset string // Model path under the resource directory; empty for built-in geometry
	Batch Batch
	Pose  animation.Pose
}

// seaweedBlades are the sway phases and bases of the seaweed patch that
// grows on the sand next to the box.
var seaweedBlades = []struct {
	base  math.Vec3
	phase float32
}{
	{math.Vec3{X: -4, Y: -49.5, Z: -12}, 0},
	{math.Vec3{X: -7, Y: -49.5, Z: -11}, 2.1},
	{math.Vec3{X: -2.5, Y: -49.5, Z: -15}, 4.2},
}

// Objects returns the scene table. Models keep the order they are drawn in.
func Objects() []Object {
	objs := []Object{
		{
			Name:  Box,
			Batch: BatchSolid,
			Pose:  animation.Static(math.Vec3{X: -10, Y: -50, Z: -10}, math.Vec3{X: 30, Y: 10, Z: 40}, 10),
		},
		{
			Name:  Fish,
			Asset: "objects/fish/13009_Coral_Beauty_Angelfish_v1_l3.obj",
			Batch: BatchModel,
			Pose: animation.Pose{
				Translate: animation.Vec3Wave{animation.Const(10), animation.CosWave(5, 0.1, 1), animation.Const(10)},
				Rotate:    animation.Vec3Wave{animation.CosWave(-90, -2, 1), animation.Const(0), animation.SinWave(0, -2, 7)},
				Scale:     animation.Uniform(animation.Const(2)),
			},
		},
		{
			Name:  Submarine,
			Asset: "objects/submarine/scene.gltf",
			Batch: BatchModel,
			Pose:  animation.Static(math.Vec3{}, math.Vec3{X: -90}, 2),
		},
		{
			Name:  Fish2,
			Asset: "objects/fish2/scene.gltf",
			Batch: BatchModel,
			Pose: animation.Pose{
				Translate: animation.Vec3Wave{animation.Const(8), animation.CosWave(2, 0.5, 1), animation.Const(15)},
				Rotate:    animation.Vec3Wave{animation.SinWave(0, -2, 1), animation.SinWave(-90, 8, 5), animation.SinWave(10, -3, 1)},
				Scale:     animation.Uniform(animation.Const(0.8)),
			},
		},
		{
			Name:  Jellyfish,
			Asset: "objects/jellyfish/scene.gltf",
			Batch: BatchModel,
			Pose: animation.Pose{
				Translate: animation.Vec3Wave{animation.Const(-15), animation.SinWave(4, 4, 0.5), animation.Const(-5)},
				Rotate:    animation.ConstVec3(-100, -10, -20),
				Scale:     animation.Uniform(animation.Const(0.2)),
			},
		},
		{
			Name:  Shark,
			Asset: "objects/shark/scene.gltf",
			Batch: BatchModel,
			Pose: animation.Pose{
				Translate: animation.Vec3Wave{animation.Const(10), animation.SinWave(10, 0.3, 0.2), animation.Const(20)},
				Rotate:    animation.Vec3Wave{animation.Const(0), animation.CosWave(0, -2, 1), animation.Const(0)},
				Scale:     animation.Uniform(animation.Const(0.8)),
			},
		},
		{
			Name:  Anglerfish,
			Asset: "objects/anglerfish/scene.gltf",
			Batch: BatchModel,
			Pose:  animation.Static(math.Vec3{X: 0, Y: -3, Z: 70}, math.Vec3{Y: -90}, 0.1),
		},
		{
			Name:  Seashell,
			Asset: "objects/seashell/sea_shell.obj",
			Batch: BatchModel,
			Pose:  animation.Static(math.Vec3{X: -4, Y: -48, Z: -7}, math.Vec3{X: 10, Y: 60}, 0.05),
		},
		{
			Name:  Barrels,
			Asset: "objects/barrels/barrels.obj",
			Batch: BatchModel,
			Pose: animation.Pose{
				Translate: animation.ConstVec3(-14, -49, -12),
				Rotate:    animation.Vec3Wave{animation.Const(0), animation.SinWave(25, 1.5, 0.3), animation.Const(0)},
				Scale:     animation.Uniform(animation.Const(1.5)),
			},
		},
		{
			Name:  Sand,
			Batch: BatchParallax,
			Pose:  animation.Static(math.Vec3{X: -6, Y: -49.5, Z: -14}, math.Vec3{X: -90}, 6),
		},
		{
			Name:  Skybox,
			Batch: BatchSkybox,
			Pose:  animation.Static(math.Vec3{}, math.Vec3{}, 1),
		},
	}

	for i, blade := range seaweedBlades {
		objs = append(objs, Object{
			Name:  seaweedName(i),
			Batch: BatchSprite,
			Pose: animation.Pose{
				Translate: animation.ConstVec3(blade.base.X, blade.base.Y, blade.base.Z),
				Rotate:    animation.Vec3Wave{animation.Const(0), animation.Const(0), animation.SinWave(0, 3, 1.5).WithPhase(blade.phase)},
				Scale:     animation.ConstVec3(2, 4, 1),
			},
		})
	}
	return objs
}

func seaweedName(i int) string {
	return "seaweed" + string(rune('1'+i))
}

// Index returns the position of the object called name, or -1.
func Index(objects []Object, name string) int {
	for i := range objects {
		if objects[i].Name == name {
			return i
		}
	}
	return -1
}
