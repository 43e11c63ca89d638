package assets

import (
	"os"
	"path/filepath"
	"testing"

	"lumen/internal/config"
)

func TestPathResolvesDeclaredAssets(t *testing.T) {
	root := t.TempDir()
	rel := filepath.Join("textures", "crate.png")
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(config.Assets{
		Root:  root,
		Paths: map[string]string{"crate": rel},
	})

	got, err := m.Path("crate")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if got != full {
		t.Errorf("path = %q, want %q", got, full)
	}
}

func TestPathErrors(t *testing.T) {
	m := NewManager(config.Assets{
		Root:  t.TempDir(),
		Paths: map[string]string{"ghost": "missing.png"},
	})

	if _, err := m.Path("undeclared"); err == nil {
		t.Error("undeclared name should be an error")
	}
	if _, err := m.Path("ghost"); err == nil {
		t.Error("declared but missing file should be an error")
	}
}
