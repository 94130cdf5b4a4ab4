// Command flycam flies a free camera through a field of boxes.
//
// Usage:
//
//	flycam [-config flycam.toml]
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/config"
	"github.com/Carmen-Shannon/oxy-flycam/engine"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/model"
	"github.com/Carmen-Shannon/oxy-flycam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
)

func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml configuration file")
	flag.Parse()

	// ── Config ──────────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[Flycam] %v", err)
		}
		cfg = loaded
		log.Printf("[Flycam] Loaded config from %s", *configPath)
	}
	bindings, err := cfg.Input.Bindings()
	if err != nil {
		log.Fatalf("[Flycam] %v", err)
	}

	// ── Window ──────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithCursorCaptured(true),
	)
	if err != nil {
		log.Fatalf("[Flycam] %v", err)
	}
	defer win.Close()

	// ── Renderer ────────────────────────────────────────────────────
	presentMode := renderer.PresentModeUncapped
	if cfg.Window.VSync {
		presentMode = renderer.PresentModeVSync
	}
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
	)
	if err != nil {
		log.Fatalf("[Flycam] %v", err)
	}
	defer r.Release()

	// ── Camera + Input ──────────────────────────────────────────────
	cam := camera.NewCameraFromConfig(cfg.CameraConfig())
	proj := cfg.CameraProjection().WithViewport(win.Width(), win.Height())
	ctrl := input.NewFreeFlyController(cam,
		input.WithBindings(bindings),
		input.WithInvertY(cfg.Input.InvertY),
		input.WithConstrainPitch(cfg.Input.ConstrainPitch),
	)
	field := model.DefaultBoxField()

	// ── Engine ──────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithProfiling(cfg.Profiling),
		engine.WithProfiler(profiler.NewProfiler(profiler.WithCamera(cam))),
	)

	win.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyC:
			win.CaptureCursor(!win.CursorCaptured())
			ctrl.ResetPointer()
			log.Printf("[Input] Cursor captured: %v", win.CursorCaptured())
		default:
			ctrl.KeyDown(keyCode)
		}
	})
	win.SetKeyUpCallback(ctrl.KeyUp)
	win.SetScrollCallback(ctrl.Scrolled)
	win.SetCursorPosCallback(func(x, y float64) {
		if win.CursorCaptured() {
			ctrl.PointerMoved(x, y)
		}
	})
	win.SetFocusCallback(func(focused bool) {
		if !focused {
			ctrl.ReleaseAll()
		}
		ctrl.ResetPointer()
	})
	eng.SetResizeCallback(func(width, height int) {
		r.Resize(width, height)
		proj = proj.WithViewport(width, height)
	})

	var elapsed float32
	eng.SetTickCallback(func(deltaTime float32) {
		elapsed += deltaTime
		ctrl.Update(deltaTime)
	})

	eng.SetRenderCallback(func(_ float32) {
		r.UpdateCamera(camera.NewGPUCameraUniform(cam, proj))

		frustum := camera.NewFrustum(camera.ViewProjectionMatrix(cam, proj))
		if err := r.UpdateInstances(field.Instances(elapsed, &frustum)); err != nil {
			log.Printf("[Flycam] Instance upload failed: %v", err)
			eng.Quit()
			return
		}
		if err := r.DrawFrame(); err != nil {
			log.Printf("[Flycam] Frame skipped: %v", err)
		}
	})

	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Println("║  Oxy Flycam - Flying Camera Boxes                    ║")
	fmt.Println("╠══════════════════════════════════════════════════════╣")
	fmt.Printf("║  Move: %-4s %-4s %-4s %-4s (fwd/back/left/right)    ║\n",
		cfg.Input.Forward, cfg.Input.Backward, cfg.Input.Left, cfg.Input.Right)
	fmt.Println("║  Look: mouse       Zoom: scroll wheel                ║")
	fmt.Println("║  C = toggle cursor capture    Esc = quit             ║")
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	log.Println("[Flycam] Starting Oxy Flycam")
	eng.Run()
}
