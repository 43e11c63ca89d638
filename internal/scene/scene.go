package scene

import (
	"github.com/google/uuid"

	"lumen/internal/graphics"
	"lumen/internal/logging"
)

// Scene owns the registered objects in registration order and the active
// camera. Delta time comes in through Update; there is no global clock.
type Scene struct {
	objects      []SceneObject
	activeCamera *graphics.Camera
}

func NewScene(camera *graphics.Camera) *Scene {
	return &Scene{activeCamera: camera}
}

// AddObject registers an object and runs its BeginPlay hook. The scene owns
// the object from this point until removal or teardown.
func (s *Scene) AddObject(obj SceneObject) {
	obj.BeginPlay()
	s.objects = append(s.objects, obj)
}

// RemoveObject destroys and unregisters the object with the given id.
func (s *Scene) RemoveObject(id uuid.UUID) {
	for i, obj := range s.objects {
		if obj.ID() == id {
			obj.Destroy()
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return
		}
	}
	logging.Warn("remove requested for unknown object %s", id)
}

// Objects returns the registered objects in registration order. The slice is
// a copy; the scene keeps sole ownership of its object list.
func (s *Scene) Objects() []SceneObject {
	return append([]SceneObject(nil), s.objects...)
}

func (s *Scene) SetActiveCamera(camera *graphics.Camera) {
	s.activeCamera = camera
}

func (s *Scene) ActiveCamera() *graphics.Camera {
	return s.activeCamera
}

// Update refreshes the camera's view matrix and ticks every object with the
// frame's delta time, in registration order.
func (s *Scene) Update(dt float64) {
	if s.activeCamera != nil {
		s.activeCamera.UpdateView()
	}
	for _, obj := range s.objects {
		obj.Tick(dt)
	}
}

// Teardown destroys all objects and empties the scene.
func (s *Scene) Teardown() {
	for _, obj := range s.objects {
		obj.Destroy()
	}
	s.objects = nil
}
