package mesh

import (
	"testing"
	"unsafe"

	"github.com/Faultbox/seaworld/pkg/formats"
	"github.com/Faultbox/seaworld/pkg/math"
)

const eps = 1e-5

func near(a, b [3]float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}

func TestVertexSize(t *testing.T) {
	if VertexSize != 14*4 {
		t.Errorf("expected a packed 56-byte vertex, got %d", VertexSize)
	}
	if off := unsafe.Offsetof(Vertex{}.Tangent); off != 8*4 {
		t.Errorf("tangent offset %d, want 32", off)
	}
	if off := unsafe.Offsetof(Vertex{}.Bitangent); off != 11*4 {
		t.Errorf("bitangent offset %d, want 44", off)
	}
}

func TestTriangleTangent(t *testing.T) {
	tan, bit := TriangleTangent(
		[3]float32{0, 0, 0}, [3]float32{2, 0, 0}, [3]float32{0, 2, 0},
		[2]float32{0, 0}, [2]float32{1, 0}, [2]float32{0, 1},
	)
	if !near(tan.Normalize().Array(), [3]float32{1, 0, 0}) {
		t.Errorf("tangent %+v, want +X", tan)
	}
	if !near(bit.Normalize().Array(), [3]float32{0, 1, 0}) {
		t.Errorf("bitangent %+v, want +Y", bit)
	}
}

func TestTriangleTangentDegenerateUV(t *testing.T) {
	tan, bit := TriangleTangent(
		[3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0},
		[2]float32{0.5, 0.5}, [2]float32{0.5, 0.5}, [2]float32{0.5, 0.5},
	)
	if tan != (math.Vec3{}) || bit != (math.Vec3{}) {
		t.Errorf("expected zero vectors, got %+v %+v", tan, bit)
	}
}

func TestQuadTangentFrame(t *testing.T) {
	q := Quad()
	for i, v := range q.Vertices {
		if !near(v.Tangent, [3]float32{1, 0, 0}) {
			t.Errorf("vertex %d tangent %v", i, v.Tangent)
		}
		if !near(v.Bitangent, [3]float32{0, 1, 0}) {
			t.Errorf("vertex %d bitangent %v", i, v.Bitangent)
		}
	}
}

// windingNormal is the geometric normal implied by counter-clockwise order.
func windingNormal(d *Data, tri int) [3]float32 {
	a := vec(d.Vertices[d.Indices[tri*3]].Position)
	b := vec(d.Vertices[d.Indices[tri*3+1]].Position)
	c := vec(d.Vertices[d.Indices[tri*3+2]].Position)
	return b.Sub(a).Cross(c.Sub(a)).Normalize().Array()
}

func TestWindingMatchesNormals(t *testing.T) {
	tests := []struct {
		name string
		data *Data
		tris int
	}{
		{"box", Box(), 12},
		{"quad", Quad(), 2},
		{"sprite", SpriteQuad(), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.data.Indices) / 3; got != tt.tris {
				t.Fatalf("expected %d triangles, got %d", tt.tris, got)
			}
			for tri := 0; tri < tt.tris; tri++ {
				want := tt.data.Vertices[tt.data.Indices[tri*3]].Normal
				if got := windingNormal(tt.data, tri); !near(got, want) {
					t.Errorf("triangle %d winds to %v, normal says %v", tri, got, want)
				}
			}
		})
	}
}

// extent returns the corners of the box enclosing every vertex of d.
func extent(d *Data) (lo, hi [3]float32) {
	lo, hi = d.Vertices[0].Position, d.Vertices[0].Position
	for _, v := range d.Vertices[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], v.Position[k])
			hi[k] = max(hi[k], v.Position[k])
		}
	}
	return lo, hi
}

func TestBoxIsUnitCube(t *testing.T) {
	lo, hi := extent(Box())
	if lo != [3]float32{-0.5, -0.5, -0.5} || hi != [3]float32{0.5, 0.5, 0.5} {
		t.Errorf("unexpected extent %v..%v", lo, hi)
	}
}

func TestSpriteQuadStandsOnOrigin(t *testing.T) {
	lo, hi := extent(SpriteQuad())
	if lo[1] != 0 || hi[1] != 1 {
		t.Errorf("expected y in [0, 1], got %v..%v", lo, hi)
	}
}

func TestSkyboxVerticesSpanCube(t *testing.T) {
	for i, v := range SkyboxVertices {
		if v != 1 && v != -1 {
			t.Fatalf("component %d = %f, want +-1", i, v)
		}
	}
}

func TestFromModel(t *testing.T) {
	src := &formats.Model{
		Materials: []formats.Material{{Name: "skin"}},
		Meshes: []formats.Mesh{
			{
				Name: "body",
				Vertices: []formats.Vertex{
					{Position: [3]float32{0, 0, 0}, Normal: [3]float32{0, 0, 1}, UV: [2]float32{0, 0}},
					{Position: [3]float32{1, 0, 0}, Normal: [3]float32{0, 0, 1}, UV: [2]float32{1, 0}},
					{Position: [3]float32{0, 1, 0}, Normal: [3]float32{0, 0, 1}, UV: [2]float32{0, 1}},
				},
				Indices:  []uint32{0, 1, 2},
				Material: 0,
			},
			{Name: "empty", Material: -1},
			{
				Name:     "bad material",
				Vertices: []formats.Vertex{{}, {}, {}},
				Indices:  []uint32{0, 1, 2},
				Material: 7,
			},
		},
	}

	parts := FromModel(src)
	if len(parts) != 2 {
		t.Fatalf("expected empty mesh dropped, got %d parts", len(parts))
	}
	body := parts[0]
	if body.Material != 0 || body.Name != "body" {
		t.Errorf("unexpected part %+v", body)
	}
	if body.Data.Vertices[1].TexCoord != [2]float32{1, 0} {
		t.Errorf("uv not copied: %v", body.Data.Vertices[1].TexCoord)
	}
	if !near(body.Data.Vertices[0].Tangent, [3]float32{1, 0, 0}) {
		t.Errorf("tangents not computed: %v", body.Data.Vertices[0].Tangent)
	}
	if parts[1].Material != -1 {
		t.Errorf("expected out-of-range material to become -1, got %d", parts[1].Material)
	}
}

func TestMaterialOr(t *testing.T) {
	fallback := Material{Diffuse: 1, Specular: 2, Normal: 3}
	got := Material{Diffuse: 7, Shininess: 16}.Or(fallback)
	want := Material{Diffuse: 7, Specular: 2, Normal: 3, Shininess: 16}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
