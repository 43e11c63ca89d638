package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"lumen/internal/graphics"
)

// Model is a multi-mesh scene object imported from a model file. Batching
// uses the first mesh's content hash; the remaining meshes skip hashing.
type Model struct {
	BaseObject
	meshes   []*graphics.Mesh
	textures []string // declared texture path per mesh, may be empty
}

// modelFile is the on-disk JSON layout: flat arrays per mesh.
type modelFile struct {
	Meshes []meshFile `json:"meshes"`
}

type meshFile struct {
	Name      string    `json:"name"`
	Positions []float32 `json:"positions"` // x,y,z per vertex
	Normals   []float32 `json:"normals"`   // x,y,z per vertex
	TexCoords []float32 `json:"texcoords"` // u,v per vertex
	Indices   []uint32  `json:"indices"`
	Texture   string    `json:"texture,omitempty"`
}

// ModelLoader reads and caches model files. Parsed files are cached, but
// every LoadModel call builds fresh meshes so two scene objects never share
// GPU initialization state.
type ModelLoader struct {
	root  string
	cache map[string]*modelFile
}

func NewModelLoader(root string) *ModelLoader {
	return &ModelLoader{
		root:  root,
		cache: make(map[string]*modelFile),
	}
}

func (l *ModelLoader) LoadModel(name string) (*Model, error) {
	file, ok := l.cache[name]
	if !ok {
		path := filepath.Join(l.root, name+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read model file: %v", err)
		}

		file = &modelFile{}
		if err := json.Unmarshal(data, file); err != nil {
			return nil, fmt.Errorf("could not unmarshal model json: %v", err)
		}
		if err := file.validate(); err != nil {
			return nil, fmt.Errorf("model %q: %v", name, err)
		}
		l.cache[name] = file
	}

	return buildModel(file), nil
}

func (f *modelFile) validate() error {
	if len(f.Meshes) == 0 {
		return fmt.Errorf("contains no meshes")
	}
	for i, m := range f.Meshes {
		if len(m.Positions) == 0 || len(m.Positions)%3 != 0 {
			return fmt.Errorf("mesh %d has %d position floats, want a positive multiple of 3", i, len(m.Positions))
		}
		count := len(m.Positions) / 3
		if len(m.Normals) != count*3 {
			return fmt.Errorf("mesh %d has %d normal floats for %d vertices", i, len(m.Normals), count)
		}
		if len(m.TexCoords) != 0 && len(m.TexCoords) != count*2 {
			return fmt.Errorf("mesh %d has %d texcoord floats for %d vertices", i, len(m.TexCoords), count)
		}
		if len(m.Indices)%3 != 0 {
			return fmt.Errorf("mesh %d has %d indices, want a multiple of 3", i, len(m.Indices))
		}
		for _, idx := range m.Indices {
			if int(idx) >= count {
				return fmt.Errorf("mesh %d index %d out of range for %d vertices", i, idx, count)
			}
		}
	}
	return nil
}

func buildModel(file *modelFile) *Model {
	model := &Model{BaseObject: NewBaseObject()}

	for i, mf := range file.Meshes {
		vertices := buildVertices(mf)
		var mesh *graphics.Mesh
		if i == 0 {
			mesh = graphics.NewMesh(vertices, mf.Indices)
		} else {
			mesh = graphics.NewSecondaryMesh(vertices, mf.Indices)
		}
		model.meshes = append(model.meshes, mesh)
		model.textures = append(model.textures, mf.Texture)
	}
	return model
}

func buildVertices(mf meshFile) []graphics.Vertex {
	count := len(mf.Positions) / 3
	vertices := make([]graphics.Vertex, count)
	for v := 0; v < count; v++ {
		vertices[v].Position = mgl32.Vec3{mf.Positions[v*3], mf.Positions[v*3+1], mf.Positions[v*3+2]}
		vertices[v].Normal = mgl32.Vec3{mf.Normals[v*3], mf.Normals[v*3+1], mf.Normals[v*3+2]}
		if len(mf.TexCoords) > 0 {
			vertices[v].TexCoord = mgl32.Vec2{mf.TexCoords[v*2], mf.TexCoords[v*2+1]}
		}
	}
	return vertices
}

func (m *Model) Hash() uint64 {
	return m.meshes[0].ContentHash()
}

func (m *Model) Meshes() []*graphics.Mesh {
	return m.meshes
}

// TexturePaths returns the texture declared for each mesh, in mesh order.
// Empty entries mean the mesh declared none.
func (m *Model) TexturePaths() []string {
	return m.textures
}

// SetMaterial assigns one material to every mesh of the model.
func (m *Model) SetMaterial(mat graphics.Material) {
	for _, mesh := range m.meshes {
		mesh.SetMaterial(mat)
	}
}

func (m *Model) Material() graphics.Material {
	return m.meshes[0].Material()
}

func (m *Model) Render(instanceCount int32) {
	for _, mesh := range m.meshes {
		mesh.Draw(instanceCount)
	}
}

func (m *Model) Destroy() {
	for _, mesh := range m.meshes {
		mesh.Dispose()
	}
}
