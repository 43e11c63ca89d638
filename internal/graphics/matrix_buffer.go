package graphics

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// matricesPerObject: every object slot holds an MVP and a Model matrix.
const matricesPerObject = 2

// ErrDeviceAllocation is returned when the GPU refuses to allocate the
// instance buffer. There is no partial-frame recovery; callers abort.
var ErrDeviceAllocation = errors.New("device allocation for instance matrix buffer failed")

// MatrixBuffer is the growable per-instance transform store: a CPU-side
// array of (MVP, Model) pairs mirrored by one GL buffer. Capacity only
// grows, and every grow doubles the requested size, so n monotonically
// increasing requests cause O(log n) reallocations.
type MatrixBuffer struct {
	vbo      uint32
	capacity int // object slots
	data     []mgl32.Mat4
}

func NewMatrixBuffer() *MatrixBuffer {
	b := &MatrixBuffer{}
	gl.GenBuffers(1, &b.vbo)
	return b
}

// resize grows the CPU-side store and reports whether a reallocation
// happened. Separated from EnsureCapacity so the growth policy is testable
// without a GL context.
func (b *MatrixBuffer) resize(objectCount int) bool {
	if objectCount <= b.capacity {
		return false
	}
	b.capacity = objectCount * 2
	b.data = make([]mgl32.Mat4, b.capacity*matricesPerObject)
	return true
}

// EnsureCapacity makes room for objectCount instances. When the store grows,
// the GL buffer is re-specified and its previous contents are discarded;
// the full re-upload that follows every frame makes that safe for objects
// whose instance attributes were bound against the old storage.
func (b *MatrixBuffer) EnsureCapacity(objectCount int) error {
	if !b.resize(objectCount) {
		return nil
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, b.byteSize(), nil, gl.DYNAMIC_DRAW)
	defer gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if gl.GetError() == gl.OUT_OF_MEMORY {
		return ErrDeviceAllocation
	}
	return nil
}

// Capacity returns the current object-slot capacity.
func (b *MatrixBuffer) Capacity() int {
	return b.capacity
}

// Set stores the matrix pair for the instance at the given object slot.
// Callers sequence slots contiguously per batch.
func (b *MatrixBuffer) Set(slot int, mvp, model mgl32.Mat4) {
	b.data[slot*matricesPerObject] = mvp
	b.data[slot*matricesPerObject+1] = model
}

// Bind makes the store the active ARRAY_BUFFER so SecondPass attribute
// configuration reads instance data from it.
func (b *MatrixBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
}

// Upload transfers the whole logical region to the GPU in one operation,
// once per frame after all writes.
func (b *MatrixBuffer) Upload() {
	if b.capacity == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, b.byteSize(), gl.Ptr(b.data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Dispose releases the GL buffer.
func (b *MatrixBuffer) Dispose() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
}

func (b *MatrixBuffer) byteSize() int {
	// mat4 is 16 float32s.
	return b.capacity * matricesPerObject * 16 * 4
}
