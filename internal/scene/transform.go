package scene

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"lumen/internal/graphics"
)

// ErrNoCamera marks a model-view-projection request without a camera
// context. This is a setup-order bug in the caller, not a transient
// condition, and the frame aborts on it.
var ErrNoCamera = errors.New("transform has no camera context; object is not part of a rendered scene")

// Transform holds an object's position, rotation and scale, and caches the
// derived model matrix behind a dirty flag. Rotation is pitch/yaw/roll in
// degrees, applied extrinsically about the world axes in that order.
type Transform struct {
	position mgl32.Vec3
	rotation mgl32.Vec3 // pitch, yaw, roll in degrees
	scale    mgl32.Vec3

	model mgl32.Mat4
	dirty bool
}

func NewTransform() Transform {
	return Transform{
		scale: mgl32.Vec3{1, 1, 1},
		dirty: true,
	}
}

func (t *Transform) SetPosition(x, y, z float32) {
	t.position = mgl32.Vec3{x, y, z}
	t.dirty = true
}

func (t *Transform) MoveBy(dx, dy, dz float32) {
	t.position = t.position.Add(mgl32.Vec3{dx, dy, dz})
	t.dirty = true
}

func (t *Transform) Position() mgl32.Vec3 {
	return t.position
}

func (t *Transform) SetRotation(pitch, yaw, roll float32) {
	t.rotation = mgl32.Vec3{pitch, yaw, roll}
	t.dirty = true
}

func (t *Transform) RotateBy(dPitch, dYaw, dRoll float32) {
	t.rotation = t.rotation.Add(mgl32.Vec3{dPitch, dYaw, dRoll})
	t.dirty = true
}

func (t *Transform) Rotation() mgl32.Vec3 {
	return t.rotation
}

func (t *Transform) SetScale(x, y, z float32) {
	t.scale = mgl32.Vec3{x, y, z}
	t.dirty = true
}

func (t *Transform) SetUniformScale(factor float32) {
	t.scale = mgl32.Vec3{factor, factor, factor}
	t.dirty = true
}

func (t *Transform) ScaleBy(fx, fy, fz float32) {
	t.scale = mgl32.Vec3{t.scale.X() * fx, t.scale.Y() * fy, t.scale.Z() * fz}
	t.dirty = true
}

func (t *Transform) Scale() mgl32.Vec3 {
	return t.scale
}

// ComputeModelViewProjection returns the MVP and model matrices for the
// given camera. The model matrix is recomputed only when a mutator ran
// since the last call. The camera comes in as an explicit parameter; there
// is no back-reference from a transform to its scene.
func (t *Transform) ComputeModelViewProjection(cam *graphics.Camera) (mvp, model mgl32.Mat4, err error) {
	if cam == nil {
		return mgl32.Mat4{}, mgl32.Mat4{}, ErrNoCamera
	}

	if t.dirty {
		t.recalculateModelMatrix()
	}

	model = t.model
	mvp = cam.Projection().Mul4(cam.View()).Mul4(model)
	return mvp, model, nil
}

// recalculateModelMatrix rebuilds the cached model matrix as
// Translate · RotateX · RotateY · RotateZ · Scale and clears the dirty flag.
func (t *Transform) recalculateModelMatrix() {
	t.model = mgl32.Translate3D(t.position.X(), t.position.Y(), t.position.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.rotation.X()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.rotation.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.rotation.Z()))).
		Mul4(mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z()))

	t.dirty = false
}
