package graphics

import (
	"lumen/internal/logging"
)

// Material is applied once per batch, immediately before the instanced draw.
// Activation failures are soft: they are logged and the draw proceeds with
// whatever GL state is already bound.
type Material interface {
	Activate()
}

// TextureMaterial binds a shader program and a set of named textures. The
// texture name doubles as the sampler uniform name; unit slots are assigned
// in insertion order.
type TextureMaterial struct {
	shader   *Shader
	names    []string
	textures map[string]*Texture
}

func NewTextureMaterial(shader *Shader) *TextureMaterial {
	return &TextureMaterial{
		shader:   shader,
		textures: make(map[string]*Texture),
	}
}

// SetTexture registers a texture under a sampler uniform name. A nil texture
// is logged and skipped rather than failing the material.
func (m *TextureMaterial) SetTexture(name string, tex *Texture) {
	if tex == nil {
		logging.Error("texture %q is nil, skipping", name)
		return
	}
	if _, exists := m.textures[name]; !exists {
		tex.SetSlot(int32(len(m.names)))
		m.names = append(m.names, name)
	}
	m.textures[name] = tex
}

func (m *TextureMaterial) Texture(name string) *Texture {
	tex, ok := m.textures[name]
	if !ok {
		logging.Error("failed to retrieve texture %q from material", name)
		return nil
	}
	return tex
}

func (m *TextureMaterial) Shader() *Shader {
	return m.shader
}

func (m *TextureMaterial) Activate() {
	if m.shader == nil {
		logging.Error("material has no shader program, leaving prior state bound")
		return
	}

	m.shader.Use()
	m.activateTextures()
}

func (m *TextureMaterial) activateTextures() {
	// names preserves insertion order so slots stay stable across frames.
	for _, name := range m.names {
		tex := m.textures[name]
		if tex == nil {
			logging.Debug("texture %q is nil, skipping activation", name)
			continue
		}
		tex.Activate()
		m.shader.SetInt(name, tex.Slot())
	}
}
