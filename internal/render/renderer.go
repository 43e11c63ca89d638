package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"lumen/internal/config"
	"lumen/internal/graphics"
	"lumen/internal/logging"
	"lumen/internal/scene"
)

// instanceStore is what the renderer needs from the per-instance matrix
// buffer. *graphics.MatrixBuffer satisfies it; tests substitute a recorder.
type instanceStore interface {
	EnsureCapacity(objectCount int) error
	Capacity() int
	Bind()
	Set(slot int, mvp, model mgl32.Mat4)
	Upload()
}

// Renderer draws a scene as one instanced call per geometry batch, with the
// background object last. It owns the shared instance matrix store.
type Renderer struct {
	store      instanceStore
	clearColor [3]float32
	wireframe  bool
}

// New sets up global pipeline state and allocates the instance store. Face
// culling stays off so the inside of the background cube is visible.
func New(cfg config.Renderer) *Renderer {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)

	return &Renderer{
		store:      graphics.NewMatrixBuffer(),
		clearColor: cfg.ClearColor,
	}
}

// ToggleWireframe flips between fill and line polygon modes.
func (r *Renderer) ToggleWireframe() {
	r.wireframe = !r.wireframe
	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	logging.Debug("wireframe: %v", r.wireframe)
}

// Render clears the frame and draws every scene object. Errors are
// unrecoverable for the frame and the application: no camera, or the GPU
// refusing to grow the instance store.
func (r *Renderer) Render(s *scene.Scene) error {
	camera := s.ActiveCamera()
	if camera == nil {
		return scene.ErrNoCamera
	}

	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	return r.renderFrame(s.Objects(), camera)
}

func (r *Renderer) renderFrame(objects []scene.SceneObject, camera *graphics.Camera) error {
	plan := BuildFramePlan(objects)

	if err := r.store.EnsureCapacity(plan.TotalInstances); err != nil {
		return fmt.Errorf("reserving %d instance slots: %w", plan.TotalInstances, err)
	}

	slot := 0
	for _, batch := range plan.Batches {
		for _, obj := range batch.Objects {
			if obj.State() == scene.StateNew {
				r.initObject(obj)
			}

			mvp, model, err := obj.Transform().ComputeModelViewProjection(camera)
			if err != nil {
				return fmt.Errorf("object %s: %w", obj.ID(), err)
			}
			r.store.Set(slot, mvp, model)
			slot++
		}
	}
	r.store.Upload()

	for _, batch := range plan.Batches {
		// All objects in the batch share geometry; the first one's
		// meshes and material stand in for the whole group.
		batch.Objects[0].Render(int32(len(batch.Objects)))
	}

	if bg := plan.Background; bg != nil {
		if bg.State() == scene.StateNew {
			r.initObject(bg)
		}
		bg.Render(1)
	}
	return nil
}

// initObject runs the two-phase GPU setup on first draw: vertex buffers and
// per-vertex attributes for every mesh, then per-instance matrix attributes
// sourced from the shared store. The store must be bound between the passes
// so instance attributes capture its buffer.
func (r *Renderer) initObject(obj scene.SceneObject) {
	meshes := obj.Meshes()
	for _, mesh := range meshes {
		mesh.FirstPass()
	}
	r.store.Bind()
	for _, mesh := range meshes {
		mesh.SecondPass()
	}
	obj.MarkReady()
}

// Dispose releases the instance store.
func (r *Renderer) Dispose() {
	if b, ok := r.store.(*graphics.MatrixBuffer); ok {
		b.Dispose()
	}
}
