package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func quadVertices() []Vertex {
	return []Vertex{
		{Position: mgl32.Vec3{-1, -1, 0}, Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{1, -1, 0}, Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{1, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{-1, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{0, 1}},
	}
}

func TestContentHashMatchesForIdenticalGeometry(t *testing.T) {
	a := NewMesh(quadVertices(), []uint32{0, 1, 2, 0, 2, 3})
	b := NewMesh(quadVertices(), []uint32{0, 1, 2, 0, 2, 3})
	if a.ContentHash() != b.ContentHash() {
		t.Error("identical geometry should share a content hash")
	}
}

func TestContentHashDiffersForDifferentGeometry(t *testing.T) {
	base := NewMesh(quadVertices(), []uint32{0, 1, 2, 0, 2, 3})

	moved := quadVertices()
	moved[0].Position = mgl32.Vec3{-2, -1, 0}
	other := NewMesh(moved, []uint32{0, 1, 2, 0, 2, 3})
	if base.ContentHash() == other.ContentHash() {
		t.Error("moved vertex should change the content hash")
	}

	reindexed := NewMesh(quadVertices(), []uint32{0, 2, 1, 0, 3, 2})
	if base.ContentHash() == reindexed.ContentHash() {
		t.Error("different index winding should change the content hash")
	}
}

func TestSecondaryMeshSkipsHash(t *testing.T) {
	m := NewSecondaryMesh(quadVertices(), []uint32{0, 1, 2})
	if m.ContentHash() != 0 {
		t.Errorf("secondary mesh hash = %d, want 0", m.ContentHash())
	}
}

func TestFlattenVerticesLayout(t *testing.T) {
	flat := flattenVertices(quadVertices()[:1])
	want := []float32{-1, -1, 0, 0, 0, 1, 0, 0}
	if len(flat) != len(want) {
		t.Fatalf("flat length = %d, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("flat[%d] = %v, want %v", i, flat[i], want[i])
		}
	}
}
