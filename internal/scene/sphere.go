package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"lumen/internal/graphics"
)

// NewSphere returns a UV sphere shape with the given radius, latitudinal
// stacks and longitudinal slices.
func NewSphere(radius float32, stacks, slices int) *Shape {
	return NewShape(sphereVertices(radius, stacks, slices), sphereIndices(stacks, slices))
}

func sphereVertices(radius float32, stacks, slices int) []graphics.Vertex {
	vertices := make([]graphics.Vertex, 0, (stacks+1)*(slices+1))

	for stack := 0; stack <= stacks; stack++ {
		// Vertical angle from 0 to Pi.
		phi := math.Pi * float64(stack) / float64(stacks)

		for slice := 0; slice <= slices; slice++ {
			// Horizontal angle from 0 to 2*Pi.
			theta := 2.0 * math.Pi * float64(slice) / float64(slices)

			pos := mgl32.Vec3{
				radius * float32(math.Sin(phi)*math.Cos(theta)),
				radius * float32(math.Cos(phi)),
				radius * float32(math.Sin(phi)*math.Sin(theta)),
			}

			vertices = append(vertices, graphics.Vertex{
				Position: pos,
				Normal:   pos.Normalize(),
				TexCoord: mgl32.Vec2{
					float32(slice) / float32(slices),
					float32(stack) / float32(stacks),
				},
			})
		}
	}
	return vertices
}

func sphereIndices(stacks, slices int) []uint32 {
	indices := make([]uint32, 0, stacks*slices*6)

	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			first := uint32(stack*(slices+1) + slice)
			second := first + uint32(slices) + 1

			indices = append(indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}
	return indices
}
