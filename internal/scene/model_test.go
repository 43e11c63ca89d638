package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadModelBuildsMeshes(t *testing.T) {
	loader := NewModelLoader("testdata")

	model, err := loader.LoadModel("crystal")
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}

	meshes := model.Meshes()
	if len(meshes) != 2 {
		t.Fatalf("mesh count = %d, want 2", len(meshes))
	}
	if meshes[0].VertexCount() != 4 || meshes[0].IndexCount() != 9 {
		t.Errorf("body mesh: %d vertices / %d indices, want 4 / 9",
			meshes[0].VertexCount(), meshes[0].IndexCount())
	}

	// Only the first mesh carries the batching hash.
	if model.Hash() == 0 {
		t.Error("model hash should come from the first mesh")
	}
	if meshes[1].ContentHash() != 0 {
		t.Error("secondary meshes should skip hashing")
	}

	paths := model.TexturePaths()
	if len(paths) != 2 || paths[0] != "textures/crystal.png" || paths[1] != "" {
		t.Errorf("texture paths = %v", paths)
	}
}

func TestLoadModelReusesParseNotMeshes(t *testing.T) {
	loader := NewModelLoader("testdata")

	first, err := loader.LoadModel("crystal")
	if err != nil {
		t.Fatal(err)
	}
	second, err := loader.LoadModel("crystal")
	if err != nil {
		t.Fatal(err)
	}

	if first.Hash() != second.Hash() {
		t.Error("same model file should batch with itself")
	}
	if first.ID() == second.ID() {
		t.Error("each load should produce a distinct scene object")
	}
	if first.Meshes()[0] == second.Meshes()[0] {
		t.Error("loads must not share mesh instances")
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	loader := NewModelLoader("testdata")
	if _, err := loader.LoadModel("no-such-model"); err == nil {
		t.Error("missing file should be an error")
	}
}

func TestLoadModelValidation(t *testing.T) {
	cases := []struct {
		name    string
		json    string
		wantErr string
	}{
		{
			name:    "empty",
			json:    `{"meshes": []}`,
			wantErr: "no meshes",
		},
		{
			name:    "ragged-positions",
			json:    `{"meshes": [{"positions": [0, 1], "normals": [], "indices": []}]}`,
			wantErr: "position floats",
		},
		{
			name: "missing-normals",
			json: `{"meshes": [{"positions": [0, 0, 0, 1, 0, 0, 0, 1, 0],
				"normals": [0, 1, 0], "indices": [0, 1, 2]}]}`,
			wantErr: "normal floats",
		},
		{
			name: "index-out-of-range",
			json: `{"meshes": [{"positions": [0, 0, 0, 1, 0, 0, 0, 1, 0],
				"normals": [0, 1, 0, 0, 1, 0, 0, 1, 0], "indices": [0, 1, 3]}]}`,
			wantErr: "out of range",
		},
		{
			name:    "malformed",
			json:    `{"meshes": [`,
			wantErr: "unmarshal",
		},
	}

	dir := t.TempDir()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".json")
			if err := os.WriteFile(path, []byte(tc.json), 0o644); err != nil {
				t.Fatal(err)
			}

			loader := NewModelLoader(dir)
			_, err := loader.LoadModel(tc.name)
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %q, want it to mention %q", err, tc.wantErr)
			}
		})
	}
}
