package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/seaworld/internal/logger"
	"github.com/Faultbox/seaworld/pkg/math"
)

// OBJ index triple of one face corner; -1 marks an absent component.
type objCorner struct {
	v, vt, vn int
}

// objBuilder accumulates OBJ data while parsing.
type objBuilder struct {
	positions [][3]float32
	normals   [][3]float32
	uvs       [][2]float32

	model     *Model
	matIndex  map[string]int
	current   *objMesh
	meshes    []*objMesh
	mtllibs   []string
	objectTag string
}

// objMesh is a mesh under construction with its corner dedup table.
type objMesh struct {
	Mesh
	lookup     map[objCorner]uint32
	hasNormals bool
}

// LoadOBJ loads an OBJ file and the material libraries it references.
// Missing material libraries are logged and ignored.
func LoadOBJ(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dir := filepath.Dir(path)
	model, err := ParseOBJ(f, func(name string) (io.ReadCloser, error) {
		return os.Open(assetPath(dir, name))
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	for i := range model.Materials {
		m := &model.Materials[i]
		for _, ref := range []*TextureRef{&m.Diffuse, &m.Specular, &m.Normal} {
			if ref.Path != "" {
				ref.Path = assetPath(dir, ref.Path)
			}
		}
	}
	return model, nil
}

// ParseOBJ parses OBJ text. openLib opens material libraries named by
// mtllib statements; it may be nil. Texture paths in the result are left
// as written in the MTL file.
func ParseOBJ(r io.Reader, openLib func(name string) (io.ReadCloser, error)) (*Model, error) {
	b := &objBuilder{
		model:    &Model{},
		matIndex: make(map[string]int),
	}

	err := scanLines(r, func(_ int, fields []string) error {
		return b.parseLine(fields)
	})
	if err != nil {
		return nil, err
	}

	if openLib != nil {
		for _, lib := range b.mtllibs {
			b.loadLib(lib, openLib)
		}
	}

	for _, m := range b.meshes {
		if len(m.Indices) == 0 {
			continue
		}
		if !m.hasNormals {
			smoothNormals(&m.Mesh)
		}
		b.model.Meshes = append(b.model.Meshes, m.Mesh)
	}
	if len(b.model.Meshes) == 0 {
		return nil, ErrEmptyOBJ
	}
	return b.model, nil
}

// scanLines calls fn with the whitespace-separated fields of every
// non-blank, non-comment line.
func scanLines(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := fn(n, fields); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

func (b *objBuilder) parseLine(fields []string) error {
	args := fields[1:]
	switch fields[0] {
	case "v":
		v, err := parseFloats(args, 3)
		if err != nil {
			return err
		}
		b.positions = append(b.positions, [3]float32{v[0], v[1], v[2]})
	case "vn":
		v, err := parseFloats(args, 3)
		if err != nil {
			return err
		}
		b.normals = append(b.normals, [3]float32{v[0], v[1], v[2]})
	case "vt":
		v, err := parseFloats(args, 2)
		if err != nil {
			return err
		}
		b.uvs = append(b.uvs, [2]float32{v[0], v[1]})
	case "f":
		return b.parseFace(args)
	case "usemtl":
		if len(args) < 1 {
			return errors.New("usemtl without a name")
		}
		b.useMaterial(args[0])
	case "mtllib":
		b.mtllibs = append(b.mtllibs, args...)
	case "o", "g":
		if len(args) > 0 {
			b.objectTag = args[0]
		}
		// Start a fresh mesh for the next face
		b.current = nil
	}
	return nil
}

func parseFloats(args []string, n int) ([]float32, error) {
	if len(args) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(args))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

// material returns the index of the named material, creating a default one.
func (b *objBuilder) material(name string) int {
	if i, ok := b.matIndex[name]; ok {
		return i
	}
	b.model.Materials = append(b.model.Materials, Material{
		Name:         name,
		DiffuseColor: [3]float32{1, 1, 1},
		Shininess:    32,
	})
	i := len(b.model.Materials) - 1
	b.matIndex[name] = i
	return i
}

func (b *objBuilder) useMaterial(name string) {
	mat := b.material(name)
	// Reuse an existing mesh for the same object and material
	for _, m := range b.meshes {
		if m.Material == mat && m.Name == b.objectTag {
			b.current = m
			return
		}
	}
	b.current = b.newMesh(mat)
}

func (b *objBuilder) newMesh(mat int) *objMesh {
	m := &objMesh{
		Mesh:       Mesh{Name: b.objectTag, Material: mat},
		lookup:     make(map[objCorner]uint32),
		hasNormals: true,
	}
	b.meshes = append(b.meshes, m)
	return m
}

// parseFace triangulates a polygon as a fan around its first corner.
func (b *objBuilder) parseFace(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("face with %d corners", len(args))
	}
	if b.current == nil {
		b.current = b.newMesh(-1)
	}

	idx := make([]uint32, len(args))
	for i, tok := range args {
		c, err := b.parseCorner(tok)
		if err != nil {
			return err
		}
		idx[i] = b.current.vertex(c, b)
	}
	for i := 1; i+1 < len(idx); i++ {
		b.current.Indices = append(b.current.Indices, idx[0], idx[i], idx[i+1])
	}
	return nil
}

// parseCorner parses v, v/vt, v//vn or v/vt/vn.
func (b *objBuilder) parseCorner(tok string) (objCorner, error) {
	parts := strings.Split(tok, "/")
	c := objCorner{v: -1, vt: -1, vn: -1}

	var err error
	if c.v, err = resolveIndex(parts[0], len(b.positions)); err != nil {
		return c, fmt.Errorf("vertex index %q: %w", tok, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = resolveIndex(parts[1], len(b.uvs)); err != nil {
			return c, fmt.Errorf("uv index %q: %w", tok, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = resolveIndex(parts[2], len(b.normals)); err != nil {
			return c, fmt.Errorf("normal index %q: %w", tok, err)
		}
	}
	return c, nil
}

// resolveIndex converts a 1-based or negative (relative) OBJ index
// into a 0-based index into a list of n elements.
func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return 0, fmt.Errorf("index %d out of range [1, %d]", i, n)
	}
}

// vertex returns the index of corner c in the mesh, adding it if new.
func (m *objMesh) vertex(c objCorner, b *objBuilder) uint32 {
	if i, ok := m.lookup[c]; ok {
		return i
	}
	var v Vertex
	v.Position = b.positions[c.v]
	if c.vt >= 0 {
		v.UV = b.uvs[c.vt]
	}
	if c.vn >= 0 {
		v.Normal = b.normals[c.vn]
	} else {
		m.hasNormals = false
	}
	i := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, v)
	m.lookup[c] = i
	return i
}

// smoothNormals replaces vertex normals with the normalized sum of the
// adjacent face normals.
func smoothNormals(m *Mesh) {
	acc := make([][3]float32, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		n := faceNormal(m.Vertices[a].Position, m.Vertices[b].Position, m.Vertices[c].Position)
		for _, vi := range []uint32{a, b, c} {
			for k := 0; k < 3; k++ {
				acc[vi][k] += n[k]
			}
		}
	}
	for i, n := range acc {
		v := math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		if v.Length() == 0 {
			continue
		}
		m.Vertices[i].Normal = v.Normalize().Array()
	}
}

// loadLib parses one MTL library into the builder's materials.
func (b *objBuilder) loadLib(name string, open func(string) (io.ReadCloser, error)) {
	rc, err := open(name)
	if err != nil {
		logger.Warn("material library not found", zap.String("mtllib", name), zap.Error(err))
		return
	}
	defer rc.Close()

	if err := b.parseMTL(rc); err != nil {
		logger.Warn("material library malformed", zap.String("mtllib", name), zap.Error(err))
	}
}

func (b *objBuilder) parseMTL(r io.Reader) error {
	var cur *Material
	return scanLines(r, func(_ int, fields []string) error {
		key, args := fields[0], fields[1:]
		if key == "newmtl" {
			if len(args) < 1 {
				return errors.New("newmtl without a name")
			}
			cur = &b.model.Materials[b.material(args[0])]
			return nil
		}
		if cur == nil {
			return nil
		}
		switch key {
		case "Kd":
			v, err := parseFloats(args, 3)
			if err != nil {
				return err
			}
			cur.DiffuseColor = [3]float32{v[0], v[1], v[2]}
		case "Ns":
			v, err := parseFloats(args, 1)
			if err != nil {
				return err
			}
			cur.Shininess = v[0]
		case "map_Kd":
			cur.Diffuse = mapRef(args)
		case "map_Ks":
			cur.Specular = mapRef(args)
		case "map_Bump", "map_bump", "bump", "norm":
			cur.Normal = mapRef(args)
		}
		return nil
	})
}

// mapRef takes the file name of a map statement, skipping any options
// such as "-bm 0.5" that precede it.
func mapRef(args []string) TextureRef {
	if len(args) == 0 {
		return TextureRef{}
	}
	return TextureRef{Path: args[len(args)-1]}
}
