package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/seaworld/internal/engine/shader"
	"github.com/Faultbox/seaworld/internal/engine/texture"
	"github.com/Faultbox/seaworld/internal/logger"
	"github.com/Faultbox/seaworld/pkg/formats"
	"github.com/Faultbox/seaworld/pkg/math"
)

// Texture units of the material samplers.
const (
	UnitDiffuse  = 0
	UnitSpecular = 1
	UnitNormal   = 2
)

// Buffer is an uploaded vertex array, indexed or not.
type Buffer struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// Upload creates a vertex array with the full Vertex layout.
func Upload(d *Data) *Buffer {
	b := &Buffer{}
	if len(d.Vertices) == 0 {
		return b
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*int(VertexSize), unsafe.Pointer(&d.Vertices[0]), gl.STATIC_DRAW)

	attrib(AttrPosition, 3, 0)
	attrib(AttrNormal, 3, 3*4)
	attrib(AttrTexCoord, 2, 6*4)
	attrib(AttrTangent, 3, 8*4)
	attrib(AttrBitangent, 3, 11*4)

	if len(d.Indices) > 0 {
		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, unsafe.Pointer(&d.Indices[0]), gl.STATIC_DRAW)
		b.count = int32(len(d.Indices))
		b.indexed = true
	} else {
		b.count = int32(len(d.Vertices))
	}

	gl.BindVertexArray(0)
	return b
}

// UploadPositions creates a vertex array holding only positions at
// attribute 0, as used by the skybox.
func UploadPositions(positions []float32) *Buffer {
	b := &Buffer{count: int32(len(positions) / 3)}
	if len(positions) == 0 {
		return b
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(AttrPosition, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(AttrPosition)
	gl.BindVertexArray(0)
	return b
}

func attrib(loc uint32, size int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, VertexSize, offset)
	gl.EnableVertexAttribArray(loc)
}

// Draw issues the draw call for the whole buffer.
func (b *Buffer) Draw() {
	if b == nil || b.vao == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	if b.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, b.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (b *Buffer) Delete() {
	if b == nil {
		return
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	*b = Buffer{}
}

// Material is a set of texture handles and the uniforms that go with them.
type Material struct {
	Diffuse   uint32
	Specular  uint32
	Normal    uint32
	Color     math.Vec3
	Shininess float32
}

// Bind activates the material textures on their units and sets the
// material uniforms of p.
func (m Material) Bind(p *shader.Program) {
	bindUnit(UnitDiffuse, m.Diffuse)
	bindUnit(UnitSpecular, m.Specular)
	bindUnit(UnitNormal, m.Normal)
	p.SetVec3("material.color", m.Color)
	p.SetFloat("material.shininess", m.Shininess)
}

// Or fills the zero texture handles of m from fallback.
func (m Material) Or(fallback Material) Material {
	if m.Diffuse == 0 {
		m.Diffuse = fallback.Diffuse
	}
	if m.Specular == 0 {
		m.Specular = fallback.Specular
	}
	if m.Normal == 0 {
		m.Normal = fallback.Normal
	}
	return m
}

func bindUnit(unit uint32, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

type gpuPart struct {
	buf *Buffer
	mat Material
}

// Model is an uploaded model: one buffer and material per part.
type Model struct {
	Name      string
	parts     []gpuPart
	textures  []uint32
	Triangles int
}

// LoadModel parses an OBJ or glTF file and uploads it. Textures that fail
// to load are logged and left unbound.
func LoadModel(path string) (*Model, error) {
	src, err := formats.LoadModel(path)
	if err != nil {
		return nil, err
	}
	return NewModel(path, src), nil
}

// NewModel uploads a parsed model.
func NewModel(name string, src *formats.Model) *Model {
	m := &Model{Name: name, Triangles: src.TriangleCount()}
	cache := make(map[string]uint32)

	mats := make([]Material, len(src.Materials))
	for i, fm := range src.Materials {
		mats[i] = Material{
			Diffuse:   m.texture(fm.Diffuse, cache),
			Specular:  m.texture(fm.Specular, cache),
			Normal:    m.texture(fm.Normal, cache),
			Color:     math.Vec3{X: fm.DiffuseColor[0], Y: fm.DiffuseColor[1], Z: fm.DiffuseColor[2]},
			Shininess: fm.Shininess,
		}
		if mats[i].Shininess <= 0 {
			mats[i].Shininess = 32
		}
	}

	for _, p := range FromModel(src) {
		mat := Material{Color: math.Splat(1), Shininess: 32}
		if p.Material >= 0 {
			mat = mats[p.Material]
		}
		m.parts = append(m.parts, gpuPart{buf: Upload(p.Data), mat: mat})
	}

	lo, hi := src.Bounds()
	logger.Debug("model uploaded",
		zap.String("model", name),
		zap.Int("parts", len(m.parts)),
		zap.Int("triangles", m.Triangles),
		zap.Int("textures", len(m.textures)),
		zap.Any("size", hi.Sub(lo)))
	return m
}

// texture loads ref once per model, keyed by path or embedded name.
func (m *Model) texture(ref formats.TextureRef, cache map[string]uint32) uint32 {
	if ref.IsZero() {
		return 0
	}
	key := ref.Path
	if key == "" {
		key = fmt.Sprintf("embedded:%p", &ref.Data[0])
	}
	if id, ok := cache[key]; ok {
		return id
	}

	var id uint32
	if ref.Path != "" {
		id, _ = texture.Load2D(ref.Path, texture.Options{})
	} else {
		img, err := texture.Decode(ref.Data, ref.Name)
		if err != nil {
			logger.Warn("embedded texture failed to decode",
				zap.String("model", m.Name), zap.String("image", ref.Name), zap.Error(err))
		} else {
			id = texture.Upload2D(img, texture.Options{})
		}
	}
	cache[key] = id
	if id != 0 {
		m.textures = append(m.textures, id)
	}
	return id
}

// Draw binds each part's material and draws it with p, which must be in use.
// Textures a part lacks are taken from fallback.
func (m *Model) Draw(p *shader.Program, fallback Material) {
	if m == nil {
		return
	}
	for _, part := range m.parts {
		part.mat.Or(fallback).Bind(p)
		part.buf.Draw()
	}
}

// Delete releases buffers and textures.
func (m *Model) Delete() {
	if m == nil {
		return
	}
	for _, part := range m.parts {
		part.buf.Delete()
	}
	texture.Delete(m.textures...)
	m.parts = nil
	m.textures = nil
}
