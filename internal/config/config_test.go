package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Window.Width != def.Window.Width || cfg.Window.Height != def.Window.Height {
		t.Errorf("expected default window size, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Renderer.FOV != def.Renderer.FOV {
		t.Errorf("expected default fov %v, got %v", def.Renderer.FOV, cfg.Renderer.FOV)
	}
}

func TestLoadParsesAndClamps(t *testing.T) {
	src := `
[window]
width = 1280
height = 720
title = "demo"

[renderer]
fov = 300.0
near_plane = -1.0
fps_limit = 144

[assets]
root = "data"

[assets.paths]
skybox_right = "textures/right.png"
`
	path := filepath.Join(t.TempDir(), "lumen.toml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window size = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "demo" {
		t.Errorf("title = %q", cfg.Window.Title)
	}
	if cfg.Renderer.FOV != 120 {
		t.Errorf("fov should clamp to 120, got %v", cfg.Renderer.FOV)
	}
	if cfg.Renderer.NearPlane != 0.1 {
		t.Errorf("near plane should clamp to 0.1, got %v", cfg.Renderer.NearPlane)
	}
	if cfg.Renderer.FPSLimit != 144 {
		t.Errorf("fps limit = %d", cfg.Renderer.FPSLimit)
	}
	if got := cfg.Assets.Paths["skybox_right"]; got != "textures/right.png" {
		t.Errorf("asset path = %q", got)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[window\nwidth="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
