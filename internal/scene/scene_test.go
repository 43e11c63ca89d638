package scene

import (
	"testing"

	"github.com/google/uuid"

	"lumen/internal/graphics"
)

// trackedObject records lifecycle calls so ordering can be asserted.
type trackedObject struct {
	BaseObject
	name      string
	tickLog   *[]string
	began     bool
	destroyed bool
}

func newTrackedObject(name string, tickLog *[]string) *trackedObject {
	return &trackedObject{BaseObject: NewBaseObject(), name: name, tickLog: tickLog}
}

func (o *trackedObject) Hash() uint64                { return 1 }
func (o *trackedObject) Meshes() []*graphics.Mesh    { return nil }
func (o *trackedObject) Material() graphics.Material { return nil }
func (o *trackedObject) Render(instanceCount int32)  {}
func (o *trackedObject) BeginPlay()                  { o.began = true }
func (o *trackedObject) Destroy()                    { o.destroyed = true }

func (o *trackedObject) Tick(dt float64) {
	if o.tickLog != nil {
		*o.tickLog = append(*o.tickLog, o.name)
	}
}

func TestAddObjectRunsBeginPlay(t *testing.T) {
	s := NewScene(nil)
	obj := newTrackedObject("a", nil)
	s.AddObject(obj)
	if !obj.began {
		t.Error("AddObject should run BeginPlay")
	}
	if len(s.Objects()) != 1 {
		t.Errorf("object count = %d, want 1", len(s.Objects()))
	}
}

func TestUpdateTicksInRegistrationOrder(t *testing.T) {
	var log []string
	s := NewScene(nil)
	s.AddObject(newTrackedObject("first", &log))
	s.AddObject(newTrackedObject("second", &log))
	s.AddObject(newTrackedObject("third", &log))

	s.Update(0.016)

	want := []string{"first", "second", "third"}
	if len(log) != len(want) {
		t.Fatalf("tick log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("tick log = %v, want %v", log, want)
		}
	}
}

func TestRemoveObjectDestroysAndUnregisters(t *testing.T) {
	s := NewScene(nil)
	keep := newTrackedObject("keep", nil)
	drop := newTrackedObject("drop", nil)
	s.AddObject(keep)
	s.AddObject(drop)

	s.RemoveObject(drop.ID())

	if !drop.destroyed {
		t.Error("removed object should be destroyed")
	}
	if keep.destroyed {
		t.Error("remaining object should survive removal")
	}
	if len(s.Objects()) != 1 || s.Objects()[0].ID() != keep.ID() {
		t.Error("scene should hold only the remaining object")
	}

	// Unknown ids are logged, not fatal.
	s.RemoveObject(uuid.New())
	if len(s.Objects()) != 1 {
		t.Error("removing an unknown id should not change the scene")
	}
}

func TestObjectsReturnsACopy(t *testing.T) {
	s := NewScene(nil)
	orig := newTrackedObject("orig", nil)
	s.AddObject(orig)

	snapshot := s.Objects()
	snapshot[0] = newTrackedObject("alien", nil)

	if got := s.Objects()[0]; got.ID() != orig.ID() {
		t.Error("mutating the returned slice must not touch the scene's list")
	}
}

func TestTeardownDestroysEverything(t *testing.T) {
	s := NewScene(nil)
	a := newTrackedObject("a", nil)
	b := newTrackedObject("b", nil)
	s.AddObject(a)
	s.AddObject(b)

	s.Teardown()

	if !a.destroyed || !b.destroyed {
		t.Error("teardown should destroy all objects")
	}
	if len(s.Objects()) != 0 {
		t.Error("teardown should empty the scene")
	}
}

func TestEntityDelegatesToRenderable(t *testing.T) {
	cube := NewCube()
	entity := NewEntity(cube)

	if entity.Hash() != cube.Hash() {
		t.Error("entity should delegate its hash to the wrapped renderable")
	}
	if len(entity.Meshes()) != len(cube.Meshes()) {
		t.Error("entity should expose the renderable's meshes")
	}
	if entity.IsBackground() {
		t.Error("plain entities are not background objects")
	}
}

func TestSpinComponentRotatesOwner(t *testing.T) {
	entity := NewEntity(NewCube())
	entity.AddComponent(&SpinComponent{YawRate: 90})

	// 90 deg/s over half a second.
	entity.Tick(0.5)

	rot := entity.Transform().Rotation()
	if rot.Y() != 45 {
		t.Errorf("yaw = %v, want 45", rot.Y())
	}
	if rot.X() != 0 || rot.Z() != 0 {
		t.Errorf("pitch/roll = %v/%v, want 0/0", rot.X(), rot.Z())
	}
}
