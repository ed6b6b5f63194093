package formats

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/seaworld/internal/logger"
	"github.com/Faultbox/seaworld/pkg/math"
)

// LoadGLTF loads a .gltf or .glb file and flattens its default scene into
// meshes with node transforms baked into the vertices.
func LoadGLTF(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	model, err := ConvertGLTF(doc, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return model, nil
}

// ConvertGLTF converts a decoded document. dir resolves external image URIs.
func ConvertGLTF(doc *gltf.Document, dir string) (*Model, error) {
	c := gltfConverter{doc: doc, dir: dir, model: &Model{}}
	c.materials()

	for _, root := range sceneRoots(doc) {
		if err := c.node(root, math.Identity(), 0); err != nil {
			return nil, err
		}
	}
	if len(c.model.Meshes) == 0 {
		return nil, ErrNoGLTFMeshes
	}
	return c.model, nil
}

// maxNodeDepth guards against cyclic node graphs in malformed files.
const maxNodeDepth = 64

type gltfConverter struct {
	doc   *gltf.Document
	dir   string
	model *Model
}

// sceneRoots returns the root nodes of the default scene. Without scenes,
// every node that is nobody's child is a root.
func sceneRoots(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		s := 0
		if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
			s = *doc.Scene
		}
		return doc.Scenes[s].Nodes
	}

	child := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !child[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

var identity64 = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// localMatrix returns a node's transform relative to its parent. An
// explicit matrix wins over translation, rotation and scale.
func localMatrix(n *gltf.Node) math.Mat4 {
	if mat := n.MatrixOrDefault(); mat != identity64 {
		var m math.Mat4
		for i, v := range mat {
			m[i] = float32(v)
		}
		return m
	}
	t := n.TranslationOrDefault()
	s := n.ScaleOrDefault()
	r := math.QuatFromArray(n.RotationOrDefault()).ToMat4()
	return math.Translate(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul(r).
		Mul(math.Scale(float32(s[0]), float32(s[1]), float32(s[2])))
}

func (c *gltfConverter) node(idx int, parent math.Mat4, depth int) error {
	if idx < 0 || idx >= len(c.doc.Nodes) {
		return fmt.Errorf("gltf: node %d out of range", idx)
	}
	if depth > maxNodeDepth {
		return fmt.Errorf("gltf: node hierarchy deeper than %d", maxNodeDepth)
	}
	n := c.doc.Nodes[idx]
	world := parent.Mul(localMatrix(n))

	if n.Mesh != nil && *n.Mesh < len(c.doc.Meshes) {
		mesh := c.doc.Meshes[*n.Mesh]
		for pi, prim := range mesh.Primitives {
			m, err := c.primitive(prim, world)
			if err != nil {
				logger.Warn("gltf primitive skipped",
					zap.String("mesh", mesh.Name), zap.Int("primitive", pi), zap.Error(err))
				continue
			}
			m.Name = mesh.Name
			c.model.Meshes = append(c.model.Meshes, m)
		}
	}

	for _, child := range n.Children {
		if err := c.node(child, world, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (c *gltfConverter) accessor(i int) (*gltf.Accessor, error) {
	if i < 0 || i >= len(c.doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", i)
	}
	return c.doc.Accessors[i], nil
}

// primitive reads one triangle primitive into world space.
func (c *gltfConverter) primitive(p *gltf.Primitive, world math.Mat4) (Mesh, error) {
	mesh := Mesh{Material: -1}
	if p.Mode != gltf.PrimitiveTriangles {
		return mesh, fmt.Errorf("unsupported primitive mode %d", p.Mode)
	}

	posIdx, ok := p.Attributes[gltf.POSITION]
	if !ok {
		return mesh, fmt.Errorf("primitive has no positions")
	}
	acr, err := c.accessor(posIdx)
	if err != nil {
		return mesh, err
	}
	positions, err := modeler.ReadPosition(c.doc, acr, nil)
	if err != nil {
		return mesh, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if i, ok := p.Attributes[gltf.NORMAL]; ok {
		if acr, err := c.accessor(i); err == nil {
			normals, _ = modeler.ReadNormal(c.doc, acr, nil)
		}
	}
	var uvs [][2]float32
	if i, ok := p.Attributes[gltf.TEXCOORD_0]; ok {
		if acr, err := c.accessor(i); err == nil {
			uvs, _ = modeler.ReadTextureCoord(c.doc, acr, nil)
		}
	}

	if p.Indices != nil {
		acr, err := c.accessor(*p.Indices)
		if err != nil {
			return mesh, err
		}
		if mesh.Indices, err = modeler.ReadIndices(c.doc, acr, nil); err != nil {
			return mesh, fmt.Errorf("indices: %w", err)
		}
	} else {
		mesh.Indices = make([]uint32, len(positions))
		for i := range mesh.Indices {
			mesh.Indices[i] = uint32(i)
		}
	}
	for _, i := range mesh.Indices {
		if int(i) >= len(positions) {
			return mesh, fmt.Errorf("index %d out of range (%d vertices)", i, len(positions))
		}
	}

	mesh.Vertices = make([]Vertex, len(positions))
	for i, pos := range positions {
		v := Vertex{Position: world.TransformPoint(pos)}
		if i < len(normals) {
			n := world.TransformDirection(normals[i])
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}.Normalize().Array()
		}
		if i < len(uvs) {
			v.UV = uvs[i]
		}
		mesh.Vertices[i] = v
	}
	if len(normals) < len(positions) {
		smoothNormals(&mesh)
	}

	if p.Material != nil && *p.Material < len(c.model.Materials) {
		mesh.Material = *p.Material
	}
	return mesh, nil
}

// materials converts every document material, keeping document indices.
func (c *gltfConverter) materials() {
	for _, gm := range c.doc.Materials {
		m := Material{
			Name:         gm.Name,
			DiffuseColor: [3]float32{1, 1, 1},
			Shininess:    32,
		}
		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			if f := pbr.BaseColorFactor; f != nil {
				m.DiffuseColor = [3]float32{float32(f[0]), float32(f[1]), float32(f[2])}
			}
			if pbr.BaseColorTexture != nil {
				m.Diffuse = c.texture(pbr.BaseColorTexture.Index)
			}
		}
		if nt := gm.NormalTexture; nt != nil && nt.Index != nil {
			m.Normal = c.texture(*nt.Index)
		}
		c.model.Materials = append(c.model.Materials, m)
	}
}

// texture resolves a texture index to a file path or embedded bytes.
// Unresolvable references yield a zero TextureRef.
func (c *gltfConverter) texture(idx int) TextureRef {
	if idx < 0 || idx >= len(c.doc.Textures) {
		return TextureRef{}
	}
	src := c.doc.Textures[idx].Source
	if src == nil || *src >= len(c.doc.Images) {
		return TextureRef{}
	}
	img := c.doc.Images[*src]

	switch {
	case img.BufferView != nil && *img.BufferView < len(c.doc.BufferViews):
		data, err := modeler.ReadBufferView(c.doc, c.doc.BufferViews[*img.BufferView])
		if err != nil {
			logger.Warn("gltf image unreadable", zap.String("image", img.Name), zap.Error(err))
			return TextureRef{}
		}
		return TextureRef{Data: data, Name: img.Name}
	case img.IsEmbeddedResource():
		data, err := img.MarshalData()
		if err != nil {
			logger.Warn("gltf data uri unreadable", zap.String("image", img.Name), zap.Error(err))
			return TextureRef{}
		}
		return TextureRef{Data: data, Name: img.Name}
	case img.URI != "":
		uri, err := url.PathUnescape(img.URI)
		if err != nil {
			uri = img.URI
		}
		return TextureRef{Path: assetPath(c.dir, uri)}
	}
	return TextureRef{}
}
