// Package formats parses the 3D model formats the scene is built from:
// Wavefront OBJ with MTL material libraries and glTF 2.0.
//
// Both loaders produce the same Model: triangle meshes in model space with
// per-mesh material references. Texture files are resolved relative to the
// model file; glTF images embedded in the document are returned as bytes.
package formats

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Faultbox/seaworld/pkg/math"
)

// Parser errors.
var (
	ErrEmptyOBJ          = errors.New("obj: no faces")
	ErrNoGLTFMeshes      = errors.New("gltf: no triangle meshes in scene")
	ErrUnsupportedFormat = errors.New("unsupported model format")
)

// Vertex is a mesh vertex as stored in the file.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// TextureRef points at a texture image, either as a file or as bytes
// embedded in the model. Name carries the file name for decoding when
// Data is set.
type TextureRef struct {
	Path string
	Data []byte
	Name string
}

// IsZero reports whether the reference names no texture.
func (t TextureRef) IsZero() bool {
	return t.Path == "" && len(t.Data) == 0
}

// Material holds the surface parameters the renderer understands.
type Material struct {
	Name         string
	DiffuseColor [3]float32
	Shininess    float32
	Diffuse      TextureRef
	Specular     TextureRef
	Normal       TextureRef
}

// Mesh is an indexed triangle list sharing one material.
// Material is an index into Model.Materials, or -1 for none.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Material int
}

// Model is a set of meshes and the materials they reference.
type Model struct {
	Meshes    []Mesh
	Materials []Material
}

// TriangleCount returns the number of triangles across all meshes.
func (m *Model) TriangleCount() int {
	n := 0
	for _, mesh := range m.Meshes {
		n += len(mesh.Indices) / 3
	}
	return n
}

// Bounds returns the axis-aligned box enclosing every vertex.
func (m *Model) Bounds() (min, max math.Vec3) {
	first := true
	for _, mesh := range m.Meshes {
		for _, v := range mesh.Vertices {
			p := math.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]}
			if first {
				min, max = p, p
				first = false
				continue
			}
			min = math.Vec3{X: min32(min.X, p.X), Y: min32(min.Y, p.Y), Z: min32(min.Z, p.Z)}
			max = math.Vec3{X: max32(max.X, p.X), Y: max32(max.Y, p.Y), Z: max32(max.Z, p.Z)}
		}
	}
	return min, max
}

// LoadModel loads an OBJ or glTF model, chosen by file extension.
func LoadModel(path string) (*Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// assetPath turns a path written inside a model file into a path on disk,
// relative to dir.
func assetPath(dir, ref string) string {
	ref = strings.ReplaceAll(ref, "\\", "/")
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	return filepath.Join(dir, filepath.FromSlash(ref))
}

// faceNormal returns the unit normal of triangle abc, counter-clockwise front.
func faceNormal(a, b, c [3]float32) [3]float32 {
	e1 := math.Vec3{X: b[0] - a[0], Y: b[1] - a[1], Z: b[2] - a[2]}
	e2 := math.Vec3{X: c[0] - a[0], Y: c[1] - a[1], Z: c[2] - a[2]}
	return e1.Cross(e2).Normalize().Array()
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
