// Package app runs the demo: window, camera, shader programs, scenes and
// the frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/raymarcher/internal/config"
	"github.com/Faultbox/raymarcher/internal/engine/camera"
	"github.com/Faultbox/raymarcher/internal/engine/framebuffer"
	"github.com/Faultbox/raymarcher/internal/engine/input"
	"github.com/Faultbox/raymarcher/internal/engine/mesh"
	"github.com/Faultbox/raymarcher/internal/engine/renderer"
	"github.com/Faultbox/raymarcher/internal/engine/screenshot"
	"github.com/Faultbox/raymarcher/internal/engine/shader"
	"github.com/Faultbox/raymarcher/internal/engine/window"
	"github.com/Faultbox/raymarcher/internal/logger"
	"github.com/Faultbox/raymarcher/pkg/math"
)

const title = "Raymarcher"

// App owns every resource of a running session.
type App struct {
	cfg      *config.Config
	window   window.Window
	renderer *renderer.Renderer
	input    *input.State
	camera   *camera.Camera
	programs *programSet
	target   *framebuffer.Framebuffer
	screen   *mesh.Mesh
	scene    *litScene
	capture  *screenshot.Capture
	controls controls

	projection        math.Mat4
	start             time.Time
	running           bool
	pendingScreenshot bool
}

// New creates the window and every GPU resource.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.String("backend", cfg.Graphics.Backend),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("mode", cfg.Scene.Mode),
	)

	a := &App{
		cfg:   cfg,
		input: input.New(),
		controls: controls{
			scene:    cfg.Scene.Active,
			lighting: cfg.Scene.Lighting,
			mode:     cfg.Scene.Mode,
		},
	}

	capture, err := screenshot.New(cfg.Screenshot.Dir, cfg.Screenshot.Format)
	if err != nil {
		return nil, err
	}
	a.capture = capture

	// The window creates the OpenGL context; everything below needs it.
	a.window, err = window.New(cfg.Graphics.Backend, window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.FramebufferSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: [4]float32{0.1, 0.1, 0.12, 1},
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.programs = newProgramSet(shaderSource(cfg.Shaders.Dir), shader.NewProgram)
	if err := a.programs.load(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build shaders: %w", err)
	}

	a.target, err = framebuffer.New(width, height, cfg.Scene.RaymarchScale)
	if err != nil {
		a.Close()
		return nil, err
	}

	p := cfg.Camera.StartPosition
	a.camera = camera.New(math.Vec3{X: p[0], Y: p[1], Z: p[2]})
	a.screen = mesh.Screen()
	a.scene = newLitScene()
	a.resize(width, height)

	a.window.SetCursorCaptured(true)

	logger.Info("initialized successfully")
	return a, nil
}

// Run executes the frame loop until the user quits.
func (a *App) Run() error {
	a.running = true
	a.start = time.Now()

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		a.window.PollEvents(a.input)
		if w, h, ok := a.input.Resized(); ok {
			a.resize(w, h)
		}

		a.handle(a.controls.update(a.input, a.camera, dt))
		if !a.running {
			break
		}

		if a.window.CursorCaptured() {
			if d := a.input.CursorDelta(); d != (math.Vec2{}) {
				a.camera.Look(d)
			}
		} else {
			a.input.CursorDelta()
		}

		a.render(float32(now.Sub(a.start).Seconds()))

		if a.pendingScreenshot {
			a.pendingScreenshot = false
			a.saveScreenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handle reacts to the non-movement actions of one frame.
func (a *App) handle(act action) {
	if act.has(actQuit) {
		logger.Info("quit requested")
		a.running = false
		return
	}
	if act.has(actReload) {
		a.reload()
	}
	if act.has(actToggleCursor) {
		captured := !a.window.CursorCaptured()
		a.window.SetCursorCaptured(captured)
		a.input.ResetCursor()
		logger.Debug("cursor capture", zap.Bool("captured", captured))
	}
	if act.has(actSceneChanged) {
		logger.Info("scene changed", zap.Int("scene", a.controls.scene))
	}
	if act.has(actLightingChanged) {
		logger.Info("lighting toggled", zap.Bool("lighting", a.controls.lighting))
	}
	if act.has(actModeChanged) {
		logger.Info("render mode changed", zap.String("mode", a.controls.mode))
	}
	if act.has(actScreenshot) {
		a.pendingScreenshot = true
	}
}

func (a *App) reload() {
	start := time.Now()
	if err := a.programs.load(); err != nil {
		logger.Error("shader reload failed, keeping previous programs", zap.Error(err))
		return
	}
	logger.Info("shaders reloaded", zap.Duration("took", time.Since(start)))
}

func (a *App) resize(width, height int) {
	if width <= 0 || height <= 0 {
		// Minimized.
		return
	}
	a.renderer.Resize(width, height)
	a.target.Resize(width, height)
	a.projection = projection(a.cfg.Graphics.FOVDegrees, a.cfg.Graphics.Near, a.cfg.Graphics.Far, a.renderer.Aspect())
}

func (a *App) render(t float32) {
	if a.controls.mode == config.ModeLit {
		a.renderLit(t)
		return
	}
	a.renderRaymarch(t)
}

func (a *App) renderLit(t float32) {
	a.renderer.SetDepthTest(true)
	a.renderer.Begin()

	prog := a.programs.get(programLit)
	prog.Use()
	a.scene.draw(a.renderer, prog, a.camera, a.projection, a.controls.lighting, t)
}

// renderRaymarch draws the ray-marched scene into the offscreen target, then
// stretches the target over the window.
func (a *App) renderRaymarch(t float32) {
	a.renderer.SetDepthTest(false)

	restore := a.target.BindWithViewport()
	a.renderer.Begin()
	w, h := a.target.Size()
	prog := a.programs.get(programRaymarch)
	prog.Use()
	setRaymarchUniforms(prog, a.camera, raymarchState{
		time:     t,
		width:    w,
		height:   h,
		scene:    a.controls.scene,
		lighting: a.controls.lighting,
	})
	a.screen.Draw(a.renderer)
	restore()

	a.renderer.Begin()
	blit := a.programs.get(programScreen)
	blit.Use()
	a.target.BindTexture(0)
	blit.SetInt("u_texture", 0)
	a.screen.Draw(a.renderer)
}

func (a *App) saveScreenshot() {
	w, h := a.renderer.Size()
	name, err := a.capture.Save(screenshot.ReadFramebuffer(w, h), w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

// Close releases every resource in reverse creation order.
func (a *App) Close() {
	logger.Info("closing")

	if a.scene != nil {
		a.scene.release()
	}
	if a.screen != nil {
		a.screen.Release()
	}
	if a.target != nil {
		a.target.Destroy()
	}
	if a.programs != nil {
		a.programs.release()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
