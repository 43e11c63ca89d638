package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera provides the view and projection matrices for the active scene.
// Orientation is a yaw/pitch pair in degrees; UpdateView rebuilds the view
// matrix once per frame after input has been applied.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32 // degrees, -90 looks down -Z
	Pitch    float32 // degrees, clamped to avoid flipping over

	front   mgl32.Vec3
	right   mgl32.Vec3
	up      mgl32.Vec3
	worldUp mgl32.Vec3

	view       mgl32.Mat4
	projection mgl32.Mat4
}

func NewCamera() *Camera {
	c := &Camera{
		Yaw:     -90.0,
		worldUp: mgl32.Vec3{0, 1, 0},
	}
	c.updateVectors()
	c.UpdateView()
	return c
}

// SetPerspective configures a perspective projection. FOV is in degrees.
func (c *Camera) SetPerspective(fov, aspect, near, far float32) {
	c.projection = mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
}

// SetOrthographic configures an orthographic projection.
func (c *Camera) SetOrthographic(left, right, bottom, top, near, far float32) {
	c.projection = mgl32.Ortho(left, right, bottom, top, near, far)
}

// Rotate applies a mouse-look offset in degrees and rebuilds the basis
// vectors. Pitch is clamped so the view never flips.
func (c *Camera) Rotate(yawOffset, pitchOffset float32) {
	c.Yaw += yawOffset
	c.Pitch += pitchOffset
	if c.Pitch > 89.0 {
		c.Pitch = 89.0
	}
	if c.Pitch < -89.0 {
		c.Pitch = -89.0
	}
	c.updateVectors()
}

// Move translates the camera along its basis vectors: forward, strafe and
// vertical amounts in world units.
func (c *Camera) Move(forward, strafe, vertical float32) {
	c.Position = c.Position.Add(c.front.Mul(forward))
	c.Position = c.Position.Add(c.right.Mul(strafe))
	c.Position = c.Position.Add(c.worldUp.Mul(vertical))
}

// UpdateView recomputes the view matrix from the current position and
// orientation. Called once per frame before rendering.
func (c *Camera) UpdateView() {
	c.view = mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

func (c *Camera) View() mgl32.Mat4 {
	return c.view
}

func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	dir := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = dir.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
