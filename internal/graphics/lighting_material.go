package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightingMaterial extends the texture material with a single directional
// light and the camera position for specular shading. The camera is injected
// at construction rather than resolved through the scene.
type LightingMaterial struct {
	*TextureMaterial

	camera *Camera

	LightDirection mgl32.Vec3
	LightColor     mgl32.Vec3
	AmbientFactor  float32
}

func NewLightingMaterial(shader *Shader, camera *Camera) *LightingMaterial {
	return &LightingMaterial{
		TextureMaterial: NewTextureMaterial(shader),
		camera:          camera,
		LightDirection:  mgl32.Vec3{0.3, 1.0, 0.3}.Normalize(),
		LightColor:      mgl32.Vec3{1, 1, 1},
		AmbientFactor:   0.2,
	}
}

func (m *LightingMaterial) Activate() {
	m.TextureMaterial.Activate()
	if m.Shader() == nil {
		return
	}

	sh := m.Shader()
	sh.SetVec3("lightDir", m.LightDirection)
	sh.SetVec3("lightColor", m.LightColor)
	sh.SetFloat("ambient", m.AmbientFactor)
	if m.camera != nil {
		sh.SetVec3("viewPos", m.camera.Position)
	}
}
