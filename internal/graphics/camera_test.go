package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSetPerspective(t *testing.T) {
	cam := NewCamera()
	cam.SetPerspective(60, 1.5, 0.1, 100)

	want := mgl32.Perspective(mgl32.DegToRad(60), 1.5, 0.1, 100)
	if cam.Projection() != want {
		t.Error("projection should match a standard perspective matrix")
	}
}

func TestRotateClampsPitch(t *testing.T) {
	cam := NewCamera()

	cam.Rotate(0, 200)
	if cam.Pitch != 89 {
		t.Errorf("pitch = %v, want clamp at 89", cam.Pitch)
	}
	cam.Rotate(0, -400)
	if cam.Pitch != -89 {
		t.Errorf("pitch = %v, want clamp at -89", cam.Pitch)
	}
}

func TestMoveFollowsHeading(t *testing.T) {
	cam := NewCamera()
	// Default yaw faces -Z.
	cam.Move(2, 0, 0)

	pos := cam.Position
	if pos.Z() >= 0 {
		t.Errorf("forward move should decrease z, got %v", pos)
	}
	if mgl32.Abs(pos.X()) > 1e-5 || mgl32.Abs(pos.Y()) > 1e-5 {
		t.Errorf("forward move should stay on the view axis, got %v", pos)
	}

	cam.Move(0, 0, 3)
	if cam.Position.Y() != 3 {
		t.Errorf("vertical move should raise y to 3, got %v", cam.Position.Y())
	}
}

func TestViewTracksPosition(t *testing.T) {
	cam := NewCamera()
	cam.Position = mgl32.Vec3{1, 2, 3}
	cam.UpdateView()

	want := mgl32.LookAtV(cam.Position, cam.Position.Add(cam.front), cam.up)
	if cam.View() != want {
		t.Error("view should be a look-at from the camera position along front")
	}
}
