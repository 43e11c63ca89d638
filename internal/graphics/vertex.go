package graphics

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the fixed per-vertex layout: position, normal, texture coordinate.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// vertexFloats is the number of float32 components per vertex.
const vertexFloats = 8

// flattenVertices packs vertices into the interleaved layout uploaded to the GPU.
func flattenVertices(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*vertexFloats)
	for _, v := range vertices {
		out = append(out,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
			v.TexCoord.X(), v.TexCoord.Y(),
		)
	}
	return out
}
