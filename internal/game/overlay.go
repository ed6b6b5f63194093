package game

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/seaworld/internal/engine/lighting"
	"github.com/Faultbox/seaworld/internal/engine/renderer"
	"github.com/Faultbox/seaworld/internal/engine/ui2d"
	"github.com/Faultbox/seaworld/internal/scene"
)

// Overlay window placement.
const (
	overlayX     = 10
	overlayY     = 10
	overlayWidth = 300
	overlayH     = 520
)

// frameStats averages the frame rate over half-second windows.
type frameStats struct {
	fps       float64
	frameTime float64 // ms
	accum     int
	elapsed   float64 // seconds since the last FPS update

	mem        runtime.MemStats
	memElapsed float64
	readMem    func(*runtime.MemStats)
}

func newFrameStats() *frameStats {
	return &frameStats{readMem: runtime.ReadMemStats}
}

// Update records one frame of dt seconds.
func (s *frameStats) Update(dt float64) {
	s.frameTime = dt * 1000
	s.accum++
	s.elapsed += dt
	if s.elapsed >= 0.5 {
		s.fps = float64(s.accum) / s.elapsed
		s.accum = 0
		s.elapsed = 0
	}

	// Memory stats stop the world, so sample them rarely
	s.memElapsed += dt
	if s.memElapsed >= 2 {
		s.readMem(&s.mem)
		s.memElapsed = 0
	}
}

// Overlay is the debug window toggled with F1.
type Overlay struct {
	ui    *ui2d.Context
	stats *frameStats
}

// NewOverlay wraps a UI context.
func NewOverlay(ui *ui2d.Context) *Overlay {
	return &Overlay{ui: ui, stats: newFrameStats()}
}

// Update feeds the frame time and the mouse to the overlay. The mouse is
// only used while the overlay is open.
func (o *Overlay) Update(dt float64, mouseX, mouseY int, leftDown bool) {
	o.stats.Update(dt)
	in := o.ui.Input()
	in.MouseX = float32(mouseX)
	in.MouseY = float32(mouseY)
	in.MouseLeftDown = leftDown
}

// WantsMouse reports whether the pointer is over the overlay.
func (o *Overlay) WantsMouse() bool {
	return o.ui.WantsMouse()
}

// Render draws the overlay and applies edits to st.
func (o *Overlay) Render(st *scene.State, gpu renderer.Stats) {
	ui := o.ui
	ui.Begin()
	defer ui.End()

	if !ui.BeginWindow("debug", overlayX, overlayY, overlayWidth, overlayH, "Seaworld") {
		return
	}
	defer ui.EndWindow()

	ui.Label(fmt.Sprintf("FPS: %.0f (%.2f ms)", o.stats.fps, o.stats.frameTime))
	ui.Label(fmt.Sprintf("Draws: %d  Triangles: %d", gpu.DrawCalls, gpu.Triangles))
	ui.Label(fmt.Sprintf("Heap: %.1f MB", float64(o.stats.mem.HeapAlloc)/(1024*1024)))
	ui.Separator()

	cam := st.Camera
	ui.Label(fmt.Sprintf("Pos: %.2f %.2f %.2f", cam.Position.X, cam.Position.Y, cam.Position.Z))
	ui.Label(fmt.Sprintf("Yaw: %.1f  Pitch: %.1f  FOV: %.0f", cam.Yaw, cam.Pitch, cam.Zoom))
	st.MouseLook = ui.Checkbox("mouselook", "Mouse look", st.MouseLook)
	ui.Separator()

	ui.LabelColored("Clear color", ui2d.ColorHighlight)
	st.ClearColor.X = ui.SliderFloat("clear_r", "R", st.ClearColor.X, 0, 1)
	st.ClearColor.Y = ui.SliderFloat("clear_g", "G", st.ClearColor.Y, 0, 1)
	st.ClearColor.Z = ui.SliderFloat("clear_b", "B", st.ClearColor.Z, 0, 1)
	ui.Separator()

	rig := st.Lights
	if blink := ui.Checkbox("blink", "Jellyfish blink", rig.Blink); blink != rig.Blink {
		rig.ToggleBlink()
	}
	if ui.Button("color", fmt.Sprintf("Jellyfish color: %s", lampColorName(rig.ColorIndex))) {
		rig.CycleColor()
	}

	ui.LabelColored("Lamp attenuation", ui2d.ColorHighlight)
	att := &rig.Points[lighting.JellyfishLamp].Attenuation
	att.Linear = ui.SliderFloat("lin", "Linear", att.Linear, 0, 0.2)
	att.Quadratic = ui.SliderFloat("quad", "Quad", att.Quadratic, 0, 0.05)
	rig.Points[lighting.AnglerfishLamp].Attenuation = *att

	lamp := rig.Points[lighting.JellyfishLamp]
	ui.Label(fmt.Sprintf("Lamp at camera: %.0f%%", 100*lamp.Reach(cam.Position)))
	ui.Label(fmt.Sprintf("Flashlight on jellyfish: %.0f%%", 100*rig.Spot.Reach(lamp.Position)))
}

func lampColorName(i int) string {
	switch i {
	case 0:
		return "red"
	case 1:
		return "green"
	case 2:
		return "blue"
	}
	return "?"
}
