package mesh

// boxFace spans one face of the unit cube: u x v points along normal, so
// corners listed as (-u-v, +u-v, +u+v, -u+v) wind counter-clockwise seen
// from outside.
type boxFace struct {
	normal, u, v [3]float32
}

var boxFaces = [6]boxFace{
	{normal: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
}

// Box returns a unit cube centered on the origin with one texture square
// per face and outward counter-clockwise winding.
func Box() *Data {
	d := &Data{}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	for _, f := range boxFaces {
		base := uint32(len(d.Vertices))
		for _, c := range corners {
			var v Vertex
			for k := 0; k < 3; k++ {
				v.Position[k] = 0.5 * (f.normal[k] + c[0]*f.u[k] + c[1]*f.v[k])
			}
			v.Normal = f.normal
			v.TexCoord = [2]float32{(c[0] + 1) / 2, (c[1] + 1) / 2}
			d.Vertices = append(d.Vertices, v)
		}
		d.Indices = append(d.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	ComputeTangents(d)
	return d
}

// Quad returns a 2x2 square in the XY plane facing +Z with tangents for
// normal and parallax mapping.
func Quad() *Data {
	d := &Data{
		Vertices: []Vertex{
			{Position: [3]float32{-1, 1, 0}, TexCoord: [2]float32{0, 1}},
			{Position: [3]float32{-1, -1, 0}, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{1, -1, 0}, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{1, 1, 0}, TexCoord: [2]float32{1, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
	for i := range d.Vertices {
		d.Vertices[i].Normal = [3]float32{0, 0, 1}
	}
	ComputeTangents(d)
	return d
}

// SpriteQuad returns a unit-wide quad standing on the origin, one unit
// tall. Texture rows run top to bottom so images need no flip.
func SpriteQuad() *Data {
	d := &Data{
		Vertices: []Vertex{
			{Position: [3]float32{-0.5, 1, 0}, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{-0.5, 0, 0}, TexCoord: [2]float32{0, 1}},
			{Position: [3]float32{0.5, 0, 0}, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{0.5, 1, 0}, TexCoord: [2]float32{1, 0}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
	for i := range d.Vertices {
		d.Vertices[i].Normal = [3]float32{0, 0, 1}
	}
	return d
}

// SkyboxVertices are the positions of a cube spanning [-1, 1], 36 vertices
// wound to be seen from inside.
var SkyboxVertices = [36 * 3]float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1,
	1, -1, -1, 1, 1, -1, -1, 1, -1,

	-1, -1, 1, -1, -1, -1, -1, 1, -1,
	-1, 1, -1, -1, 1, 1, -1, -1, 1,

	1, -1, -1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, -1, 1, -1, -1,

	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, -1, 1, -1, -1, 1,

	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, 1, -1,

	-1, -1, -1, -1, -1, 1, 1, -1, -1,
	1, -1, -1, -1, -1, 1, 1, -1, 1,
}
