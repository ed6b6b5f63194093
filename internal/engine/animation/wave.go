// Package animation evaluates the closed-form periodic motion that drives
// every animated object in the scene. Evaluation is a pure function of the
// elapsed time: there is no per-frame state to integrate.
package animation

import (
	gomath "math"

	"github.com/Faultbox/seaworld/pkg/math"
)

// Shape selects the periodic function of a Wave.
type Shape uint8

const (
	Sin Shape = iota
	Cos
)

// Wave is Base + Amp*shape(Freq*t + Phase).
// A zero Amp gives a constant.
type Wave struct {
	Base  float32
	Amp   float32
	Freq  float32 // Radians per second
	Phase float32 // Radians
	Shape Shape
}

// Const returns a wave that always evaluates to v.
func Const(v float32) Wave {
	return Wave{Base: v}
}

// SinWave returns base + amp*sin(freq*t).
func SinWave(base, amp, freq float32) Wave {
	return Wave{Base: base, Amp: amp, Freq: freq, Shape: Sin}
}

// CosWave returns base + amp*cos(freq*t).
func CosWave(base, amp, freq float32) Wave {
	return Wave{Base: base, Amp: amp, Freq: freq, Shape: Cos}
}

// WithPhase returns a copy of w shifted by phase radians.
func (w Wave) WithPhase(phase float32) Wave {
	w.Phase = phase
	return w
}

// Value evaluates the wave at t seconds.
func (w Wave) Value(t float32) float32 {
	if w.Amp == 0 {
		return w.Base
	}
	arg := float64(w.Freq)*float64(t) + float64(w.Phase)
	var s float64
	if w.Shape == Cos {
		s = gomath.Cos(arg)
	} else {
		s = gomath.Sin(arg)
	}
	return float32(float64(w.Base) + float64(w.Amp)*s)
}

// Vec3Wave is one wave per axis.
type Vec3Wave [3]Wave

// ConstVec3 returns a constant vector wave.
func ConstVec3(x, y, z float32) Vec3Wave {
	return Vec3Wave{Const(x), Const(y), Const(z)}
}

// Uniform returns a wave repeated on all three axes.
func Uniform(w Wave) Vec3Wave {
	return Vec3Wave{w, w, w}
}

// Value evaluates all three axes at t.
func (v Vec3Wave) Value(t float32) math.Vec3 {
	return math.Vec3{X: v[0].Value(t), Y: v[1].Value(t), Z: v[2].Value(t)}
}
