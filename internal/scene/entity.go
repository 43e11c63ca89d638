package scene

import (
	"lumen/internal/graphics"
)

// Renderable is the geometry-and-material provider an entity wraps: a
// Shape, a Model, or anything else exposing meshes and a render call.
type Renderable interface {
	Hash() uint64
	Meshes() []*graphics.Mesh
	Material() graphics.Material
	Render(instanceCount int32)
}

// Entity is a scene object with behavior: it wraps a renderable and fans
// lifecycle events out to its components. The entity has its own transform
// and lifecycle flag; the wrapped renderable only supplies geometry.
type Entity struct {
	BaseObject
	object     Renderable
	components []Component
}

func NewEntity(object Renderable) *Entity {
	return &Entity{
		BaseObject: NewBaseObject(),
		object:     object,
	}
}

// AddComponent attaches a component. Components added after BeginPlay miss
// that hook.
func (e *Entity) AddComponent(c Component) {
	e.components = append(e.components, c)
}

func (e *Entity) Hash() uint64 {
	return e.object.Hash()
}

func (e *Entity) Meshes() []*graphics.Mesh {
	return e.object.Meshes()
}

func (e *Entity) Material() graphics.Material {
	return e.object.Material()
}

func (e *Entity) Render(instanceCount int32) {
	e.object.Render(instanceCount)
}

func (e *Entity) Tick(dt float64) {
	for _, c := range e.components {
		c.OnTick(e, dt)
	}
}

func (e *Entity) BeginPlay() {
	for _, c := range e.components {
		c.OnBeginPlay(e)
	}
}

func (e *Entity) Destroy() {
	for _, c := range e.components {
		c.OnDestroyed(e)
	}
}
