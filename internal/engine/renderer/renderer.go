// Package renderer owns the global OpenGL state of a frame: viewport,
// clearing, culling, depth and blending, plus simple draw statistics.
package renderer

import (
	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/seaworld/internal/logger"
	"github.com/Faultbox/seaworld/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Stats counts the work of the last frame.
type Stats struct {
	DrawCalls int
	Triangles int
}

// Renderer handles frame-level OpenGL state.
// It must be created after the OpenGL context.
type Renderer struct {
	config Config
	stats  Stats
	last   Stats
}

// New sets up the default state: depth test LESS, back-face culling and
// alpha blending for the whole frame.
func New(cfg Config) *Renderer {
	r := &Renderer{config: cfg}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	logger.Debug("renderer state initialized",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)
	return r
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame by clearing color and depth.
func (r *Renderer) Begin(clear math.Vec3) {
	r.last = r.stats
	r.stats = Stats{}
	gl.ClearColor(clear.X, clear.Y, clear.Z, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetCulling enables or disables back-face culling.
func (r *Renderer) SetCulling(enabled bool) {
	if enabled {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

// SetDepthLessEqual switches the depth test between LEQUAL and LESS.
func (r *Renderer) SetDepthLessEqual(lequal bool) {
	if lequal {
		gl.DepthFunc(gl.LEQUAL)
	} else {
		gl.DepthFunc(gl.LESS)
	}
}

// Count records one draw call of n triangles.
func (r *Renderer) Count(triangles int) {
	r.stats.DrawCalls++
	r.stats.Triangles += triangles
}

// Stats returns the counters of the previous complete frame.
func (r *Renderer) Stats() Stats {
	return r.last
}
