// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LitVertexShader transforms meshes lit by the scene lights.
//
//go:embed lit.vert
var LitVertexShader string

//go:embed lit.frag
var litFragment string

// ParallaxVertexShader passes the tangent frame of the sand quad.
//
//go:embed parallax.vert
var ParallaxVertexShader string

//go:embed parallax.frag
var parallaxFragment string

// SkyboxVertexShader is the vertex shader for the cube map backdrop.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader samples the cube map.
//
//go:embed skybox.frag
var SkyboxFragmentShader string

// SpriteVertexShader is the vertex shader for blended billboards.
//
//go:embed sprite.vert
var SpriteVertexShader string

// SpriteFragmentShader is the fragment shader for blended billboards.
//
//go:embed sprite.frag
var SpriteFragmentShader string

// lighting declares the material and light uniforms and the shade function
// shared by lit fragment shaders.
//
//go:embed lighting.glsl
var lighting string

const version = "#version 410 core\n"

// LitFragmentShader returns the Phong fragment shader for meshes.
func LitFragmentShader() string {
	return version + lighting + litFragment
}

// ParallaxFragmentShader returns the parallax mapped fragment shader.
func ParallaxFragmentShader() string {
	return version + lighting + parallaxFragment
}
