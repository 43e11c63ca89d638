package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"lumen/internal/app"
	"lumen/internal/assets"
	"lumen/internal/config"
	"lumen/internal/graphics"
	"lumen/internal/input"
	"lumen/internal/logging"
	"lumen/internal/render"
	"lumen/internal/scene"
	"lumen/internal/window"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "lumen.toml", "path to the config file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logging.SetVerbose()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal("loading config: %v", err)
	}

	win, err := window.Open(cfg.Window)
	if err != nil {
		logging.Fatal("opening window: %v", err)
	}
	defer win.Close()

	camera := graphics.NewCamera()
	camera.Position = mgl32.Vec3{0, 2, 12}
	camera.SetPerspective(cfg.Renderer.FOV, win.AspectRatio(),
		cfg.Renderer.NearPlane, cfg.Renderer.FarPlane)
	win.OnResize(func(width, height int) {
		camera.SetPerspective(cfg.Renderer.FOV, win.AspectRatio(),
			cfg.Renderer.NearPlane, cfg.Renderer.FarPlane)
	})

	manager := input.NewManager()
	manager.InstallCallbacks(win.Handle())

	renderer := render.New(cfg.Renderer)

	world, shaders, err := buildScene(cfg, camera)
	if err != nil {
		logging.Fatal("building scene: %v", err)
	}

	watcher, err := assets.NewWatcher(filepath.Join(cfg.Assets.Root, "shaders"))
	if err != nil {
		logging.Warn("shader hot reload disabled: %v", err)
		watcher = nil
	}

	a := app.New(app.Options{
		Window:   win,
		Renderer: renderer,
		Scene:    world,
		Camera:   camera,
		Input:    manager,
		Watcher:  watcher,
		Shaders:  shaders,
		FPSLimit: cfg.Renderer.FPSLimit,
	})
	defer a.Shutdown()

	logging.Info("scene ready, %d objects", len(world.Objects()))
	a.Run()
}

// buildScene assembles the demo: a ring of spinning cubes, a sphere, a model
// loaded from disk and a cube map background.
func buildScene(cfg *config.Config, camera *graphics.Camera) (*scene.Scene, []*graphics.Shader, error) {
	shaderDir := filepath.Join(cfg.Assets.Root, "shaders")

	litShader, err := graphics.NewShader(
		filepath.Join(shaderDir, "instanced.vert"),
		filepath.Join(shaderDir, "instanced.frag"))
	if err != nil {
		return nil, nil, fmt.Errorf("instanced shader: %w", err)
	}
	skyShader, err := graphics.NewShader(
		filepath.Join(shaderDir, "skybox.vert"),
		filepath.Join(shaderDir, "skybox.frag"))
	if err != nil {
		return nil, nil, fmt.Errorf("skybox shader: %w", err)
	}
	shaders := []*graphics.Shader{litShader, skyShader}

	lit := graphics.NewLightingMaterial(litShader, camera)

	// The config can remap asset names; fall back to the conventional path.
	manager := assets.NewManager(cfg.Assets)
	cratePath := filepath.Join(cfg.Assets.Root, "textures", "crate.png")
	if p, err := manager.Path("crate_texture"); err == nil {
		cratePath = p
	}
	if tex, err := graphics.GetTexture(cratePath); err != nil {
		logging.Warn("crate texture unavailable: %v", err)
	} else {
		lit.SetTexture("albedo", tex)
	}

	world := scene.NewScene(camera)

	// A row of cubes sharing one geometry hash: a single instanced draw.
	for i := 0; i < 15; i++ {
		cube := scene.NewCube()
		cube.SetMaterial(lit)

		entity := scene.NewEntity(cube)
		entity.Transform().SetPosition(float32(i-7)*2.5, 0, 0)
		entity.AddComponent(&scene.SpinComponent{YawRate: 20 + float32(i)*5})
		world.AddObject(entity)
	}

	sphere := scene.NewSphere(1.5, 24, 32)
	sphere.SetMaterial(lit)
	sphere.Transform().SetPosition(0, 4, -3)
	world.AddObject(sphere)

	loader := scene.NewModelLoader(filepath.Join(cfg.Assets.Root, "models"))
	if model, err := loader.LoadModel("monument"); err != nil {
		logging.Warn("monument model unavailable: %v", err)
	} else {
		model.SetMaterial(lit)
		model.Transform().SetPosition(0, -3, -6)
		model.Transform().SetUniformScale(2)
		world.AddObject(model)
	}

	if sky, err := buildSkybox(cfg, skyShader, camera); err != nil {
		logging.Warn("skybox unavailable: %v", err)
	} else {
		world.AddObject(sky)
	}

	return world, shaders, nil
}

func buildSkybox(cfg *config.Config, shader *graphics.Shader, camera *graphics.Camera) (*scene.SkyboxEntity, error) {
	dir := filepath.Join(cfg.Assets.Root, "textures", "sky")
	cubeMap, err := graphics.LoadCubeMap([6]string{
		filepath.Join(dir, "right.png"),
		filepath.Join(dir, "left.png"),
		filepath.Join(dir, "top.png"),
		filepath.Join(dir, "bottom.png"),
		filepath.Join(dir, "front.png"),
		filepath.Join(dir, "back.png"),
	})
	if err != nil {
		return nil, err
	}

	mat := graphics.NewSkyboxMaterial(shader, camera)
	mat.SetTexture("sky", cubeMap)

	box := scene.NewCube()
	box.SetMaterial(mat)
	return scene.NewSkyboxEntity(box), nil
}
