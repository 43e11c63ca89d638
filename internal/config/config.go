package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Window holds windowing and GL context settings.
type Window struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Fullscreen bool   `toml:"fullscreen"`
	VSync      bool   `toml:"vsync"`
}

// Renderer holds camera and frame settings.
type Renderer struct {
	FOV        float32    `toml:"fov"` // degrees
	NearPlane  float32    `toml:"near_plane"`
	FarPlane   float32    `toml:"far_plane"`
	FPSLimit   int        `toml:"fps_limit"` // 0 disables the limiter
	ClearColor [3]float32 `toml:"clear_color"`
}

// Assets maps logical asset names to paths relative to Root.
type Assets struct {
	Root  string            `toml:"root"`
	Paths map[string]string `toml:"paths"`
}

type Config struct {
	Window   Window   `toml:"window"`
	Renderer Renderer `toml:"renderer"`
	Assets   Assets   `toml:"assets"`
}

// Default returns the settings used when no config file is present.
func Default() *Config {
	return &Config{
		Window: Window{
			Width:  900,
			Height: 600,
			Title:  "lumen",
			VSync:  true,
		},
		Renderer: Renderer{
			FOV:        60.0,
			NearPlane:  0.1,
			FarPlane:   1000.0,
			FPSLimit:   0,
			ClearColor: [3]float32{0.05, 0.05, 0.08},
		},
		Assets: Assets{
			Root:  "assets",
			Paths: map[string]string{},
		},
	}
}

// Load reads a TOML config file. A missing file is not an error: defaults
// are returned so the demo runs without any setup.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %v", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file: %v", err)
	}

	cfg.clamp()
	return cfg, nil
}

func (c *Config) clamp() {
	if c.Window.Width < 160 {
		c.Window.Width = 160
	}
	if c.Window.Height < 120 {
		c.Window.Height = 120
	}
	if c.Renderer.FOV < 20 {
		c.Renderer.FOV = 20
	}
	if c.Renderer.FOV > 120 {
		c.Renderer.FOV = 120
	}
	if c.Renderer.NearPlane <= 0 {
		c.Renderer.NearPlane = 0.1
	}
	if c.Renderer.FarPlane <= c.Renderer.NearPlane {
		c.Renderer.FarPlane = c.Renderer.NearPlane + 1000.0
	}
	if c.Renderer.FPSLimit < 0 {
		c.Renderer.FPSLimit = 0
	}
}
