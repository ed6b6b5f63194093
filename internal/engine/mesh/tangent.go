package mesh

import "github.com/Faultbox/seaworld/pkg/math"

// TriangleTangent returns the tangent and bitangent of a triangle from its
// positions and texture coordinates. A degenerate UV mapping yields zero
// vectors.
func TriangleTangent(p0, p1, p2 [3]float32, uv0, uv1, uv2 [2]float32) (tangent, bitangent math.Vec3) {
	e1 := vec(p1).Sub(vec(p0))
	e2 := vec(p2).Sub(vec(p0))
	du1, dv1 := uv1[0]-uv0[0], uv1[1]-uv0[1]
	du2, dv2 := uv2[0]-uv0[0], uv2[1]-uv0[1]

	det := du1*dv2 - du2*dv1
	if det == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	f := 1 / det

	tangent = e1.Scale(dv2).Sub(e2.Scale(dv1)).Scale(f)
	bitangent = e2.Scale(du1).Sub(e1.Scale(du2)).Scale(f)
	return tangent, bitangent
}

// ComputeTangents fills Tangent and Bitangent of every vertex with the
// normalized sum over the triangles that share it.
func ComputeTangents(d *Data) {
	tan := make([]math.Vec3, len(d.Vertices))
	bit := make([]math.Vec3, len(d.Vertices))

	for i := 0; i+2 < len(d.Indices); i += 3 {
		a, b, c := d.Indices[i], d.Indices[i+1], d.Indices[i+2]
		if int(a) >= len(d.Vertices) || int(b) >= len(d.Vertices) || int(c) >= len(d.Vertices) {
			continue
		}
		va, vb, vc := &d.Vertices[a], &d.Vertices[b], &d.Vertices[c]
		t, bt := TriangleTangent(va.Position, vb.Position, vc.Position, va.TexCoord, vb.TexCoord, vc.TexCoord)
		for _, idx := range [3]uint32{a, b, c} {
			tan[idx] = tan[idx].Add(t)
			bit[idx] = bit[idx].Add(bt)
		}
	}

	for i := range d.Vertices {
		d.Vertices[i].Tangent = tan[i].Normalize().Array()
		d.Vertices[i].Bitangent = bit[i].Normalize().Array()
	}
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
