package scene

import (
	"lumen/internal/graphics"
)

// Shape is a single-mesh scene object built from generated geometry.
type Shape struct {
	BaseObject
	mesh *graphics.Mesh
}

func NewShape(vertices []graphics.Vertex, indices []uint32) *Shape {
	return &Shape{
		BaseObject: NewBaseObject(),
		mesh:       graphics.NewMesh(vertices, indices),
	}
}

func (s *Shape) Hash() uint64 {
	return s.mesh.ContentHash()
}

func (s *Shape) Meshes() []*graphics.Mesh {
	return []*graphics.Mesh{s.mesh}
}

func (s *Shape) SetMaterial(mat graphics.Material) {
	s.mesh.SetMaterial(mat)
}

func (s *Shape) Material() graphics.Material {
	return s.mesh.Material()
}

func (s *Shape) Render(instanceCount int32) {
	s.mesh.Draw(instanceCount)
}

func (s *Shape) Destroy() {
	s.mesh.Dispose()
}
