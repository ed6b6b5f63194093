// Package game runs the viewer: it owns the window, turns input into scene
// actions and draws every frame.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/seaworld/internal/config"
	"github.com/Faultbox/seaworld/internal/engine/debug"
	"github.com/Faultbox/seaworld/internal/engine/input"
	"github.com/Faultbox/seaworld/internal/engine/renderer"
	"github.com/Faultbox/seaworld/internal/engine/ui2d"
	"github.com/Faultbox/seaworld/internal/engine/window"
	"github.com/Faultbox/seaworld/internal/logger"
	"github.com/Faultbox/seaworld/internal/scene"
	"github.com/Faultbox/seaworld/internal/settings"
)

const title = "Seaworld"

// Game is the viewer instance.
type Game struct {
	config *config.Config
	state  *scene.State

	window   *window.Window
	renderer *renderer.Renderer
	scene    *SceneRenderer
	input    *input.Input

	ui          *ui2d.Renderer
	overlay     *Overlay
	screenshots *debug.Screenshots
}

// New creates the window and GL resources and loads the scene assets.
// Asset failures are logged; only window, context or shader failures
// are returned.
func New(cfg *config.Config, st settings.Settings) (*Game, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	g := &Game{config: cfg}

	var err error
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The drawable may be larger than the window on high-DPI displays
	w, h := g.window.DrawableSize()
	g.renderer = renderer.New(renderer.Config{Width: w, Height: h})

	g.scene, err = NewSceneRenderer(g.renderer)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create scene renderer: %w", err)
	}

	var ctx *ui2d.Context
	ctx, g.ui, err = ui2d.NewContext(g.window.GetSize())
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}
	g.overlay = NewOverlay(ctx)

	g.state = newState(cfg, st)
	g.input = input.New()
	g.screenshots = debug.NewScreenshots(cfg.Scene.ScreenshotDir, "seaworld")

	start := time.Now()
	g.scene.Load(cfg.Scene.ResourceDir, g.state.Objects)
	logger.Info("scene loaded",
		zap.String("resources", cfg.Scene.ResourceDir),
		zap.Duration("took", time.Since(start)),
	)

	g.window.SetMouseCaptured(g.state.CaptureMouse())
	return g, nil
}

// newState builds the scene state and applies the camera tuning.
func newState(cfg *config.Config, st settings.Settings) *scene.State {
	s := scene.NewState(st)
	cam := s.Camera
	cam.Speed = cfg.Camera.Speed
	cam.Sensitivity = cfg.Camera.Sensitivity
	cam.MinZoom = cfg.Camera.MinZoom
	cam.MaxZoom = cfg.Camera.MaxZoom
	cam.ConstrainPitch = cfg.Camera.ConstrainPitch
	return s
}

// Settings returns the state to persist.
func (g *Game) Settings() settings.Settings {
	return g.state.Settings()
}

// Run starts the main loop and returns when the user quits.
func (g *Game) Run() error {
	start := time.Now()
	lastTime := start
	fpsTimer := start
	frameCount := 0

	logger.Info("starting main loop")

	for !g.state.Quitting {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			break
		}
		g.handleEvents()
		g.update(float32(dt))
		g.state.Time = float32(now.Sub(start).Seconds())

		g.render(dt)
		if g.input.IsKeyPressed(sdl.SCANCODE_F12) {
			g.screenshot()
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			g.window.SetTitle(fmt.Sprintf("%s - %d fps", title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("main loop finished")
	return nil
}

// handleEvents reacts to window events.
func (g *Game) handleEvents() {
	if _, _, ok := g.input.Resized(); ok {
		w, h := g.window.DrawableSize()
		g.renderer.Resize(w, h)
		g.ui.Resize(g.window.GetSize())
	}
}

// update applies keyboard actions and mouse look.
func (g *Game) update(dt float32) {
	for _, a := range actions(g.input) {
		g.state.Apply(a, dt)
		if a >= scene.ToggleOverlay {
			logger.Debug("action", zap.Stringer("action", a))
		}
	}

	dx, dy := g.input.MouseDelta()
	if !g.state.Overlay || !g.overlay.WantsMouse() {
		// Screen y grows downwards
		g.state.Look(float32(dx), float32(-dy))
		if wheel := g.input.Wheel(); wheel != 0 {
			g.state.Zoom(wheel)
		}
	}
	g.syncMouse()
}

// syncMouse captures the mouse exactly when the state asks for it.
func (g *Game) syncMouse() {
	if want := g.state.CaptureMouse(); g.window.MouseCaptured() != want {
		g.window.SetMouseCaptured(want)
	}
}

// render draws the scene and, when open, the overlay.
func (g *Game) render(dt float64) {
	g.renderer.Begin(g.state.ClearColor)

	f := g.state.Frame(g.renderer.Aspect(), g.config.Graphics.Near, g.config.Graphics.Far)
	g.scene.Prepare(f)
	scene.Run(f, scene.Plan(f), g.scene)

	mx, my := g.input.MousePosition()
	g.overlay.Update(dt, mx, my, g.input.IsButtonHeld(uint8(sdl.BUTTON_LEFT)))
	if g.state.Overlay {
		g.overlay.Render(g.state, g.renderer.Stats())
		g.syncMouse()
	}
}

// screenshot saves the frame just drawn.
func (g *Game) screenshot() {
	name, err := g.screenshots.Capture(g.renderer.Size())
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", name))
}

// Close releases all resources.
func (g *Game) Close() {
	logger.Info("closing viewer")

	if g.ui != nil {
		g.ui.Close()
	}
	if g.scene != nil {
		g.scene.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
