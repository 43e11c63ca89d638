package graphics

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh owns one drawable unit: immutable vertex/index data, a content hash
// used as the instancing batch key, and the GPU state created by the
// two-phase setup. FirstPass uploads the static geometry, SecondPass wires
// the per-instance matrix attributes against whatever ARRAY_BUFFER is bound
// at that moment (the renderer binds the instance matrix buffer first).
//
// Both passes configure GL attribute state destructively, so each must run
// exactly once per mesh. The renderer gates them with the owning object's
// lifecycle state.
type Mesh struct {
	vertices []Vertex
	indices  []uint32
	hash     uint64

	material Material

	vao uint32
	vbo uint32
	ebo uint32
}

// NewMesh builds a mesh and computes its content hash.
func NewMesh(vertices []Vertex, indices []uint32) *Mesh {
	m := &Mesh{vertices: vertices, indices: indices}
	m.hash = hashGeometry(vertices, indices)
	return m
}

// NewSecondaryMesh builds a mesh without a content hash. Multi-mesh models
// batch by their first mesh's hash only, so the remaining meshes skip the
// hash computation.
func NewSecondaryMesh(vertices []Vertex, indices []uint32) *Mesh {
	return &Mesh{vertices: vertices, indices: indices}
}

// ContentHash identifies geometry equivalence for batching. Two distinct
// geometries that collide will be rendered as instances of one another; the
// hash is assumed collision-free at the scene sizes this renderer targets.
func (m *Mesh) ContentHash() uint64 {
	return m.hash
}

func (m *Mesh) SetMaterial(mat Material) {
	m.material = mat
}

func (m *Mesh) Material() Material {
	return m.material
}

func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

func (m *Mesh) IndexCount() int {
	return len(m.indices)
}

// FirstPass uploads the vertex and index data into GPU buffers and
// configures the fixed per-vertex attributes. Must run before any draw.
func (m *Mesh) FirstPass() {
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)

	flat := flattenVertices(m.vertices)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(flat)*4, gl.Ptr(flat), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.indices)*4, gl.Ptr(m.indices), gl.STATIC_DRAW)

	stride := int32(vertexFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
}

// SecondPass configures the per-instance transform attributes. The instance
// matrix buffer must be bound to ARRAY_BUFFER and FirstPass must have run.
// Each instance reads two mat4s (MVP then Model) as eight vec4 columns,
// advancing once per instance.
func (m *Mesh) SecondPass() {
	gl.BindVertexArray(m.vao)

	const vec4Size = 4 * 4
	stride := int32(8 * vec4Size)

	// MVP columns at locations 3..6, Model columns at 7..10.
	for i := uint32(0); i < 8; i++ {
		attrib := 3 + i
		gl.EnableVertexAttribArray(attrib)
		gl.VertexAttribPointerWithOffset(attrib, 4, gl.FLOAT, false, stride, uintptr(i*vec4Size))
		gl.VertexAttribDivisor(attrib, 1)
	}

	gl.BindVertexArray(0)
}

// Draw issues one instanced draw call for instanceCount copies. The material,
// when present, is activated first; a nil material falls back to whatever
// shader state is already bound.
func (m *Mesh) Draw(instanceCount int32) {
	if m.material != nil {
		m.material.Activate()
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, int32(len(m.indices)), gl.UNSIGNED_INT, gl.PtrOffset(0), instanceCount)
	gl.BindVertexArray(0)
}

// Dispose releases the GPU buffers created by FirstPass.
func (m *Mesh) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		m.vao, m.vbo, m.ebo = 0, 0, 0
	}
}

func hashGeometry(vertices []Vertex, indices []uint32) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	writeFloat := func(f float32) {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
		h.Write(buf[:])
	}
	for _, v := range vertices {
		writeFloat(v.Position.X())
		writeFloat(v.Position.Y())
		writeFloat(v.Position.Z())
	}
	for _, idx := range indices {
		binary.LittleEndian.PutUint32(buf[:], idx)
		h.Write(buf[:])
	}
	return h.Sum64()
}
