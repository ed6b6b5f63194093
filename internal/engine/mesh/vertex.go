// Package mesh builds interleaved vertex data for the scene's geometry and
// uploads it to the GPU.
package mesh

import "unsafe"

// Vertex is the interleaved layout shared by every lit mesh:
// position, normal, texture coordinates, tangent and bitangent.
type Vertex struct {
	Position  [3]float32
	Normal    [3]float32
	TexCoord  [2]float32
	Tangent   [3]float32
	Bitangent [3]float32
}

// VertexSize is the stride of Vertex in bytes.
var VertexSize = int32(unsafe.Sizeof(Vertex{}))

// Attribute locations used by the shaders.
const (
	AttrPosition  = 0
	AttrNormal    = 1
	AttrTexCoord  = 2
	AttrTangent   = 3
	AttrBitangent = 4
)

// Data is CPU-side geometry ready for upload.
type Data struct {
	Vertices []Vertex
	Indices  []uint32
}
