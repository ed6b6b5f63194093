package scene

import (
	"sort"

	"github.com/Faultbox/seaworld/internal/engine/lighting"
	"github.com/Faultbox/seaworld/pkg/math"
)

// Frame is the per-frame input of every draw. View and Projection are
// shared by all draws except the skybox, which uses SkyboxView.
type Frame struct {
	Time       float32
	View       math.Mat4
	Projection math.Mat4
	SkyboxView math.Mat4 // View without translation
	CameraPos  math.Vec3
	ClearColor math.Vec3
	Lights     lighting.Rig // Snapshot after Update
	Objects    []Posed
}

// Frame evaluates the scene at the current time: object poses, the lamp
// that follows the jellyfish, the flashlight and the camera matrices.
func (s *State) Frame(aspect, near, far float32) *Frame {
	lamp := s.Lights.Points[lighting.JellyfishLamp].Position
	if p, ok := LampPosition(s.Objects, s.Time); ok {
		lamp = p
	}
	s.Lights.Update(s.Time, lamp, s.Camera.Position, s.Camera.Front)

	return &Frame{
		Time:       s.Time,
		View:       s.Camera.ViewMatrix(),
		Projection: s.Camera.ProjectionMatrix(aspect, near, far),
		SkyboxView: s.Camera.SkyboxView(),
		CameraPos:  s.Camera.Position,
		ClearColor: s.ClearColor,
		Lights:     *s.Lights,
		Objects:    Evaluate(s.Objects, s.Time),
	}
}

// DepthFunc is the depth comparison a Backend is asked to use.
type DepthFunc uint8

const (
	DepthLess DepthFunc = iota
	DepthLessEqual
)

// Step is one draw of the frame.
type Step struct {
	Object Posed

	// NoCull disables face culling for this draw only
	NoCull bool
	// DepthLessEqual relaxes the depth test for this draw only
	DepthLessEqual bool
}

// batchOrder is the fixed order batches are drawn in.
var batchOrder = []Batch{BatchSolid, BatchModel, BatchParallax, BatchSkybox, BatchSprite}

// Plan orders the draws of f: solids, models in table order, the parallax
// quad, the skybox and last the sprites, farthest first.
func Plan(f *Frame) []Step {
	steps := make([]Step, 0, len(f.Objects))
	for _, b := range batchOrder {
		start := len(steps)
		for _, o := range f.Objects {
			if o.Batch != b {
				continue
			}
			steps = append(steps, Step{
				Object:         o,
				NoCull:         b == BatchParallax || b == BatchSprite,
				DepthLessEqual: b == BatchSkybox,
			})
		}
		if b == BatchSprite {
			sortBackToFront(steps[start:], f.CameraPos)
		}
	}
	return steps
}

// sortBackToFront orders blended draws by decreasing distance to eye. Ties
// keep table order.
func sortBackToFront(steps []Step, eye math.Vec3) {
	sort.SliceStable(steps, func(i, j int) bool {
		di := steps[i].Object.Position().Distance(eye)
		dj := steps[j].Object.Position().Distance(eye)
		return di > dj
	})
}

// Backend performs the draws and the state changes around them.
type Backend interface {
	SetCulling(enabled bool)
	SetDepthFunc(fn DepthFunc)
	Draw(f *Frame, s Step)
}

// Run issues steps in order. State relaxed for a step is restored right
// after it, so every step starts with culling on and depth LESS.
func Run(f *Frame, steps []Step, b Backend) {
	for _, s := range steps {
		if s.NoCull {
			b.SetCulling(false)
		}
		if s.DepthLessEqual {
			b.SetDepthFunc(DepthLessEqual)
		}

		b.Draw(f, s)

		if s.DepthLessEqual {
			b.SetDepthFunc(DepthLess)
		}
		if s.NoCull {
			b.SetCulling(true)
		}
	}
}
