package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"lumen/internal/graphics"
)

// NewCube returns a unit cube shape: 24 vertices (4 per face, so normals
// and texture coordinates stay per-face) and 36 indices.
func NewCube() *Shape {
	return NewShape(cubeVertices(), cubeIndices())
}

func cubeVertices() []graphics.Vertex {
	v := func(px, py, pz, nx, ny, nz, u, w float32) graphics.Vertex {
		return graphics.Vertex{
			Position: mgl32.Vec3{px, py, pz},
			Normal:   mgl32.Vec3{nx, ny, nz},
			TexCoord: mgl32.Vec2{u, w},
		}
	}
	return []graphics.Vertex{
		// Front face
		v(-0.5, -0.5, -0.5, 0, 0, -1, 0, 0),
		v(0.5, -0.5, -0.5, 0, 0, -1, 1, 0),
		v(-0.5, 0.5, -0.5, 0, 0, -1, 0, 1),
		v(0.5, 0.5, -0.5, 0, 0, -1, 1, 1),
		// Back face
		v(-0.5, -0.5, 0.5, 0, 0, 1, 0, 0),
		v(0.5, -0.5, 0.5, 0, 0, 1, 1, 0),
		v(-0.5, 0.5, 0.5, 0, 0, 1, 0, 1),
		v(0.5, 0.5, 0.5, 0, 0, 1, 1, 1),
		// Left face
		v(-0.5, -0.5, -0.5, -1, 0, 0, 0, 0),
		v(-0.5, -0.5, 0.5, -1, 0, 0, 1, 0),
		v(-0.5, 0.5, -0.5, -1, 0, 0, 0, 1),
		v(-0.5, 0.5, 0.5, -1, 0, 0, 1, 1),
		// Right face
		v(0.5, -0.5, -0.5, 1, 0, 0, 0, 0),
		v(0.5, -0.5, 0.5, 1, 0, 0, 1, 0),
		v(0.5, 0.5, -0.5, 1, 0, 0, 0, 1),
		v(0.5, 0.5, 0.5, 1, 0, 0, 1, 1),
		// Top face
		v(-0.5, 0.5, -0.5, 0, 1, 0, 0, 1),
		v(0.5, 0.5, -0.5, 0, 1, 0, 1, 1),
		v(-0.5, 0.5, 0.5, 0, 1, 0, 0, 0),
		v(0.5, 0.5, 0.5, 0, 1, 0, 1, 0),
		// Bottom face
		v(-0.5, -0.5, -0.5, 0, -1, 0, 0, 1),
		v(0.5, -0.5, -0.5, 0, -1, 0, 1, 1),
		v(-0.5, -0.5, 0.5, 0, -1, 0, 0, 0),
		v(0.5, -0.5, 0.5, 0, -1, 0, 1, 0),
	}
}

func cubeIndices() []uint32 {
	return []uint32{
		0, 1, 3, 0, 2, 3, // front
		4, 5, 7, 4, 6, 7, // back
		8, 9, 11, 8, 10, 11, // left
		12, 13, 15, 12, 14, 15, // right
		16, 17, 19, 16, 18, 19, // top
		20, 21, 23, 20, 22, 23, // bottom
	}
}
