package scene

import (
	"github.com/google/uuid"

	"lumen/internal/graphics"
)

// LifecycleState gates the two-phase GPU setup. Objects start New; the
// renderer advances them to Ready the first frame they are drawn, after
// both mesh passes have run. Ready is terminal.
type LifecycleState uint8

const (
	StateNew LifecycleState = iota
	StateReady
)

// SceneObject is anything the frame renderer can draw. Implementations own
// a transform, one or more meshes, a content hash shared by geometry-equal
// objects, and a render entry point that activates the material before
// drawing.
type SceneObject interface {
	ID() uuid.UUID
	Hash() uint64
	Transform() *Transform
	Meshes() []*graphics.Mesh
	Material() graphics.Material

	// Render issues the object's draw calls for the given instance count.
	Render(instanceCount int32)

	// IsBackground marks the at-most-one object drawn after all batches.
	IsBackground() bool

	State() LifecycleState
	MarkReady()

	Tick(dt float64)
	BeginPlay()
	Destroy()
}

// BaseObject carries the state every scene object shares: identity,
// transform and lifecycle flag. Concrete objects embed it and provide
// geometry and rendering.
type BaseObject struct {
	id        uuid.UUID
	transform Transform
	state     LifecycleState
}

func NewBaseObject() BaseObject {
	return BaseObject{
		id:        uuid.New(),
		transform: NewTransform(),
		state:     StateNew,
	}
}

func (o *BaseObject) ID() uuid.UUID {
	return o.id
}

func (o *BaseObject) Transform() *Transform {
	return &o.transform
}

func (o *BaseObject) State() LifecycleState {
	return o.state
}

func (o *BaseObject) MarkReady() {
	o.state = StateReady
}

func (o *BaseObject) IsBackground() bool {
	return false
}

func (o *BaseObject) Tick(dt float64) {}

func (o *BaseObject) BeginPlay() {}

func (o *BaseObject) Destroy() {}
