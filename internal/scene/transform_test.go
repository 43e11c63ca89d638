package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"lumen/internal/graphics"
)

func testCamera() *graphics.Camera {
	cam := graphics.NewCamera()
	cam.Position = mgl32.Vec3{0, 2, 5}
	cam.SetPerspective(60, 1.5, 0.1, 100)
	cam.UpdateView()
	return cam
}

func TestComputeModelViewProjection(t *testing.T) {
	cam := testCamera()

	tr := NewTransform()
	tr.SetPosition(1, 2, 3)
	tr.SetRotation(30, 45, 60)
	tr.SetScale(2, 1, 0.5)

	mvp, model, err := tr.ComputeModelViewProjection(cam)
	if err != nil {
		t.Fatalf("ComputeModelViewProjection: %v", err)
	}

	wantModel := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(45))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(60))).
		Mul4(mgl32.Scale3D(2, 1, 0.5))
	if model != wantModel {
		t.Errorf("model matrix mismatch\ngot  %v\nwant %v", model, wantModel)
	}

	wantMVP := cam.Projection().Mul4(cam.View()).Mul4(wantModel)
	if mvp != wantMVP {
		t.Errorf("mvp mismatch\ngot  %v\nwant %v", mvp, wantMVP)
	}
}

func TestComputeWithoutCameraIsFatal(t *testing.T) {
	tr := NewTransform()
	if _, _, err := tr.ComputeModelViewProjection(nil); err != ErrNoCamera {
		t.Errorf("err = %v, want ErrNoCamera", err)
	}
}

func TestModelMatrixRecomputedOnlyWhenDirty(t *testing.T) {
	cam := testCamera()
	tr := NewTransform()

	// Two mutations without a query in between: one recomputation.
	tr.SetPosition(1, 0, 0)
	tr.MoveBy(1, 0, 0)
	if !tr.dirty {
		t.Fatal("mutators should set the dirty flag")
	}

	_, first, err := tr.ComputeModelViewProjection(cam)
	if err != nil {
		t.Fatal(err)
	}
	if tr.dirty {
		t.Error("dirty flag should clear after recomputation")
	}

	// Poison the cache; a clean transform must return it untouched,
	// proving no recomputation happens without a mutation.
	sentinel := mgl32.Scale3D(9, 9, 9)
	tr.model = sentinel
	_, got, err := tr.ComputeModelViewProjection(cam)
	if err != nil {
		t.Fatal(err)
	}
	if got != sentinel {
		t.Error("clean transform recomputed its model matrix")
	}

	// A mutation invalidates the poisoned cache again.
	tr.RotateBy(0, 90, 0)
	_, got, err = tr.ComputeModelViewProjection(cam)
	if err != nil {
		t.Fatal(err)
	}
	if got == sentinel {
		t.Error("mutated transform returned the stale cached matrix")
	}
	_ = first
}

func TestRepeatedQueriesAreIdentical(t *testing.T) {
	cam := testCamera()
	tr := NewTransform()
	tr.SetPosition(4, 5, 6)
	tr.SetRotation(10, 20, 30)

	mvp1, model1, _ := tr.ComputeModelViewProjection(cam)
	mvp2, model2, _ := tr.ComputeModelViewProjection(cam)
	if mvp1 != mvp2 || model1 != model2 {
		t.Error("repeated queries with no mutation should be byte-identical")
	}
}
