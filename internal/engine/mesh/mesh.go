package mesh

import (
	"github.com/Faultbox/seaworld/pkg/formats"
)

// Part is one material group of a model.
type Part struct {
	Name     string
	Data     *Data
	Material int // Index into formats.Model.Materials, -1 for none
}

// FromModel converts parsed meshes to the interleaved layout and computes
// their tangents. Empty meshes are dropped.
func FromModel(m *formats.Model) []Part {
	parts := make([]Part, 0, len(m.Meshes))
	for _, src := range m.Meshes {
		if len(src.Vertices) == 0 || len(src.Indices) < 3 {
			continue
		}
		d := &Data{
			Vertices: make([]Vertex, len(src.Vertices)),
			Indices:  src.Indices[:len(src.Indices)/3*3],
		}
		for i, v := range src.Vertices {
			d.Vertices[i] = Vertex{
				Position: v.Position,
				Normal:   v.Normal,
				TexCoord: v.UV,
			}
		}
		ComputeTangents(d)

		mat := src.Material
		if mat >= len(m.Materials) {
			mat = -1
		}
		parts = append(parts, Part{Name: src.Name, Data: d, Material: mat})
	}
	return parts
}
