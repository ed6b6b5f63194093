package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/seaworld/internal/engine/mesh"
	"github.com/Faultbox/seaworld/internal/engine/renderer"
	"github.com/Faultbox/seaworld/internal/engine/shader"
	"github.com/Faultbox/seaworld/internal/engine/texture"
	"github.com/Faultbox/seaworld/internal/game/shaders"
	"github.com/Faultbox/seaworld/internal/logger"
	"github.com/Faultbox/seaworld/internal/scene"
	"github.com/Faultbox/seaworld/pkg/math"
)

// unitDepth is the texture unit of the parallax height map.
const unitDepth = 3

// Material and parallax tuning.
const (
	shininess   = 32
	heightScale = 0.05
)

// Triangles of the built-in shapes, for the draw statistics.
const (
	boxTriangles  = 12
	quadTriangles = 2
)

// SceneRenderer draws scene steps with OpenGL. It implements scene.Backend.
type SceneRenderer struct {
	gl *renderer.Renderer

	lit      *shader.Program
	parallax *shader.Program
	skybox   *shader.Program
	sprite   *shader.Program

	box        *mesh.Buffer
	quad       *mesh.Buffer
	spriteQuad *mesh.Buffer
	cube       *mesh.Buffer

	fallback mesh.Material
	boxMat   mesh.Material
	sandMat  mesh.Material
	sandDisp uint32
	seaweed  uint32
	cubemap  uint32

	// models is indexed like the object table; nil for non-models and
	// models that failed to load
	models   []*mesh.Model
	textures []uint32
}

// NewSceneRenderer compiles the scene shaders and uploads the built-in
// geometry. Shader failures are fatal; assets are loaded by Load.
func NewSceneRenderer(r *renderer.Renderer) (*SceneRenderer, error) {
	s := &SceneRenderer{gl: r}

	programs := []struct {
		dst    **shader.Program
		name   string
		vs, fs string
	}{
		{&s.lit, "lit", shaders.LitVertexShader, shaders.LitFragmentShader()},
		{&s.parallax, "parallax", shaders.ParallaxVertexShader, shaders.ParallaxFragmentShader()},
		{&s.skybox, "skybox", shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader},
		{&s.sprite, "sprite", shaders.SpriteVertexShader, shaders.SpriteFragmentShader},
	}
	for _, p := range programs {
		prog, err := shader.New(p.vs, p.fs)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("%s shader: %w", p.name, err)
		}
		*p.dst = prog
	}

	for _, p := range []*shader.Program{s.lit, s.parallax} {
		p.Use()
		p.SetInt("material.diffuse", mesh.UnitDiffuse)
		p.SetInt("material.specular", mesh.UnitSpecular)
	}
	s.parallax.SetInt("normalMap", mesh.UnitNormal)
	s.parallax.SetInt("depthMap", unitDepth)
	s.parallax.SetFloat("heightScale", heightScale)
	s.skybox.Use()
	s.skybox.SetInt("skybox", 0)
	s.sprite.Use()
	s.sprite.SetInt("sprite", 0)
	gl.UseProgram(0)

	s.box = mesh.Upload(mesh.Box())
	s.quad = mesh.Upload(mesh.Quad())
	s.spriteQuad = mesh.Upload(mesh.SpriteQuad())
	s.cube = mesh.UploadPositions(mesh.SkyboxVertices[:])

	s.fallback = mesh.Material{
		Diffuse:  s.own(texture.Upload2D(solid(placeholderDiffuse), texture.Options{})),
		Specular: s.own(texture.Upload2D(solid(placeholderSpecular), texture.Options{})),
		Normal:   s.own(texture.Upload2D(solid(placeholderNormal), texture.Options{})),
	}
	s.sandDisp = s.own(texture.Upload2D(solid(placeholderDepth), texture.Options{}))
	return s, nil
}

// own records a texture for release by Close.
func (s *SceneRenderer) own(id uint32) uint32 {
	if id != 0 {
		s.textures = append(s.textures, id)
	}
	return id
}

// load2D loads a texture, returning 0 on failure. The failure is already
// logged by the texture package.
func (s *SceneRenderer) load2D(path string, opts texture.Options) uint32 {
	id, _ := texture.Load2D(path, opts)
	return s.own(id)
}

// Load reads every texture and model the scene needs from dir. Missing or
// broken assets are logged and drawn with placeholders or skipped.
func (s *SceneRenderer) Load(dir string, objects []scene.Object) {
	res := resources(dir)
	log := logger.Named("assets")

	s.boxMat = mesh.Material{
		Diffuse:   s.load2D(res.path(boxDiffuse), texture.Options{}),
		Specular:  s.load2D(res.path(boxSpecular), texture.Options{}),
		Color:     math.Splat(1),
		Shininess: shininess,
	}
	s.sandMat = mesh.Material{
		Diffuse:   s.load2D(res.path(sandDiffuse), texture.Options{}),
		Normal:    s.load2D(res.path(sandNormal), texture.Options{}),
		Color:     math.Splat(1),
		Shininess: shininess,
	}
	if id := s.load2D(res.path(sandDepth), texture.Options{}); id != 0 {
		s.sandDisp = id
	}
	s.seaweed = s.load2D(res.path(seaweedSprite), texture.Options{Clamp: true})

	var err error
	s.cubemap, err = texture.LoadCubemap(res.skybox())
	if err != nil {
		log.Warn("skybox incomplete", zap.Error(err))
	}

	s.models = make([]*mesh.Model, len(objects))
	loaded := 0
	for i, o := range objects {
		if o.Batch != scene.BatchModel {
			continue
		}
		m, err := mesh.LoadModel(res.path(o.Asset))
		if err != nil {
			log.Warn("model failed to load, skipping",
				zap.String("object", o.Name), zap.String("path", o.Asset), zap.Error(err))
			continue
		}
		s.models[i] = m
		loaded++
	}
	log.Info("models loaded", zap.Int("loaded", loaded), zap.Int("objects", len(objects)))
}

// Prepare uploads the uniforms shared by every draw of f.
func (s *SceneRenderer) Prepare(f *scene.Frame) {
	for _, p := range []*shader.Program{s.lit, s.parallax} {
		p.Use()
		p.SetMat4("view", f.View)
		p.SetMat4("projection", f.Projection)
		p.SetVec3("viewPosition", f.CameraPos)
		setLights(p, &f.Lights)
	}

	s.skybox.Use()
	s.skybox.SetMat4("view", f.SkyboxView)
	s.skybox.SetMat4("projection", f.Projection)

	// Seaweed only picks up the filtered sunlight
	s.sprite.Use()
	s.sprite.SetMat4("view", f.View)
	s.sprite.SetMat4("projection", f.Projection)
	s.sprite.SetVec3("tint", f.Lights.Dir.Ambient.Add(f.Lights.Dir.Diffuse))
}

// SetCulling implements scene.Backend.
func (s *SceneRenderer) SetCulling(enabled bool) {
	s.gl.SetCulling(enabled)
}

// SetDepthFunc implements scene.Backend.
func (s *SceneRenderer) SetDepthFunc(fn scene.DepthFunc) {
	s.gl.SetDepthLessEqual(fn == scene.DepthLessEqual)
}

// Draw implements scene.Backend.
func (s *SceneRenderer) Draw(f *scene.Frame, step scene.Step) {
	o := step.Object
	switch o.Batch {
	case scene.BatchSolid:
		s.lit.Use()
		s.lit.SetMat4("model", o.Model)
		s.boxMat.Or(s.fallback).Bind(s.lit)
		s.box.Draw()
		s.gl.Count(boxTriangles)

	case scene.BatchModel:
		if o.Index >= len(s.models) || s.models[o.Index] == nil {
			return
		}
		m := s.models[o.Index]
		s.lit.Use()
		s.lit.SetMat4("model", o.Model)
		m.Draw(s.lit, s.fallback)
		s.gl.Count(m.Triangles)

	case scene.BatchParallax:
		s.parallax.Use()
		s.parallax.SetMat4("model", o.Model)
		s.sandMat.Or(s.fallback).Bind(s.parallax)
		gl.ActiveTexture(gl.TEXTURE0 + unitDepth)
		gl.BindTexture(gl.TEXTURE_2D, s.sandDisp)
		s.quad.Draw()
		s.gl.Count(quadTriangles)

	case scene.BatchSkybox:
		if s.cubemap == 0 {
			return
		}
		s.skybox.Use()
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.cubemap)
		s.cube.Draw()
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
		s.gl.Count(boxTriangles)

	case scene.BatchSprite:
		if s.seaweed == 0 {
			return
		}
		s.sprite.Use()
		s.sprite.SetMat4("model", o.Model)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, s.seaweed)
		s.spriteQuad.Draw()
		s.gl.Count(quadTriangles)
	}
}

// Close releases all GPU resources.
func (s *SceneRenderer) Close() {
	for _, m := range s.models {
		m.Delete()
	}
	s.models = nil
	for _, b := range []*mesh.Buffer{s.box, s.quad, s.spriteQuad, s.cube} {
		b.Delete()
	}
	texture.Delete(s.textures...)
	s.textures = nil
	if s.cubemap != 0 {
		gl.DeleteTextures(1, &s.cubemap)
		s.cubemap = 0
	}
	for _, p := range []*shader.Program{s.lit, s.parallax, s.skybox, s.sprite} {
		if p != nil {
			p.Delete()
		}
	}
}
