package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// SkyboxEntity is the background object: drawn after every batch, with the
// depth test relaxed to LEQUAL so sky fragments survive at the far plane,
// then restored for the next frame.
type SkyboxEntity struct {
	*Entity
}

func NewSkyboxEntity(object Renderable) *SkyboxEntity {
	return &SkyboxEntity{Entity: NewEntity(object)}
}

func (s *SkyboxEntity) IsBackground() bool {
	return true
}

func (s *SkyboxEntity) Render(instanceCount int32) {
	gl.DepthFunc(gl.LEQUAL)
	s.Entity.Render(instanceCount)
	gl.DepthFunc(gl.LESS)
}
