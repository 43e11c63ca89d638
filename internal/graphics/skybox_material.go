package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SkyboxMaterial renders a cube map as an infinitely distant background.
// The view matrix is stripped of its translation so the box follows the
// camera, and projection/view go in as uniforms because the instanced
// transform attributes are meaningless for a box pinned to the horizon.
type SkyboxMaterial struct {
	*TextureMaterial

	camera *Camera
}

func NewSkyboxMaterial(shader *Shader, camera *Camera) *SkyboxMaterial {
	return &SkyboxMaterial{
		TextureMaterial: NewTextureMaterial(shader),
		camera:          camera,
	}
}

func (m *SkyboxMaterial) Activate() {
	m.TextureMaterial.Activate()
	if m.Shader() == nil || m.camera == nil {
		return
	}

	sh := m.Shader()
	sh.SetMat4("projection", m.camera.Projection())
	sh.SetMat4("view", stripTranslation(m.camera.View()))
}

// stripTranslation keeps only the rotational part of a view matrix.
func stripTranslation(view mgl32.Mat4) mgl32.Mat4 {
	rot := view.Mat3()
	return rot.Mat4()
}
