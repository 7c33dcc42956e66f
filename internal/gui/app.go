package gui

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/spaceengine/internal/camera"
	"github.com/san-kum/spaceengine/internal/config"
	"github.com/san-kum/spaceengine/internal/sim"
	"github.com/san-kum/spaceengine/internal/vmath"
)

// Theme Colors
var (
	ColBg      = rl.NewColor(10, 10, 14, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(40, 40, 50, 255)
	ColError   = rl.NewColor(230, 80, 80, 255)
)

const (
	maxTrail     = 600
	maxTelemetry = 200
)

// minAngularSize keeps distant bodies a few pixels wide: the drawn radius
// never falls below this fraction of the eye distance.
const minAngularSize = 0.004

type App struct {
	cfg    *config.Constants
	logger *log.Logger

	sim   *sim.Simulator
	cam   *camera.OrbitCamera
	home  camera.OrbitCamera
	scene string

	running    bool
	showTrails bool
	inMenu     bool
	menu       bool
	scenes     []string
	selected   int

	trails     [][]rl.Vector3
	telemetry  []float64
	stepErrors int
	lastErr    string
	gridSlices int32
	gridStep   float32
}

// NewApp loads scene. With menu set the app opens on the scene picker and
// Escape returns to it; otherwise Escape closes the window.
func NewApp(cfg *config.Constants, scene string, menu bool, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &App{
		cfg:        cfg,
		logger:     logger,
		showTrails: true,
		inMenu:     menu,
		menu:       menu,
		scenes:     config.ListScenes(),
	}
	for i, name := range a.scenes {
		if name == scene {
			a.selected = i
		}
	}
	if err := a.loadScene(scene); err != nil {
		return nil, err
	}
	return a, nil
}

// initWindow opens the window at the configured size and frame rate and
// disables the default exit key.
func initWindow(cfg *config.Constants) {
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "Space engine")
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)
}

// Run opens a window on scene and blocks until it is closed.
func Run(cfg *config.Constants, scene string, logger *log.Logger) error {
	initWindow(cfg)
	defer rl.CloseWindow()
	app, err := NewApp(cfg, scene, false, logger)
	if err != nil {
		return err
	}
	app.RunLoop()
	return nil
}

// RunInteractive opens a window on the scene picker.
func RunInteractive(cfg *config.Constants, logger *log.Logger) error {
	initWindow(cfg)
	defer rl.CloseWindow()
	app, err := NewApp(cfg, cfg.Scene, true, logger)
	if err != nil {
		return err
	}
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

func (a *App) loadScene(name string) error {
	s, scene, err := sim.FromScene(a.cfg, name, sim.WithLogger(a.logger))
	if err != nil {
		return err
	}
	cam, err := camera.ForScene(a.cfg, scene, s.LargestRenderRadius(a.cfg.Physics.Scale))
	if err != nil {
		return err
	}

	a.sim, a.cam, a.home = s, cam, *cam
	a.scene = scene.Name
	a.running = true
	a.trails = make([][]rl.Vector3, len(s.Bodies()))
	a.telemetry = a.telemetry[:0]
	a.stepErrors, a.lastErr = 0, ""

	extent := s.RenderExtent(a.cfg.Physics.Scale)
	a.gridSlices = 10
	a.gridStep = float32(math.Max(1, extent/5))

	a.logger.Info("scene loaded", "scene", a.scene, "bodies", len(s.Bodies()), "eye", a.cam.Eye())
	return nil
}

// Update handles one frame of input and steps the simulation. It returns
// false when the app should quit.
func (a *App) Update() bool {
	if a.inMenu {
		return a.updateMenu()
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		if !a.menu {
			return false
		}
		a.inMenu = true
		rl.ShowCursor()
		return true
	}

	in := camera.Input{
		Wheel:   float64(rl.GetMouseWheelMove()),
		Forward: rl.IsKeyDown(rl.KeyW),
		Back:    rl.IsKeyDown(rl.KeyS),
		Left:    rl.IsKeyDown(rl.KeyA),
		Right:   rl.IsKeyDown(rl.KeyD),
		Rise:    rl.IsKeyDown(rl.KeySpace),
		Sink:    rl.IsKeyDown(rl.KeyLeftShift),
		Boost:   rl.IsKeyDown(rl.KeyLeftControl),
		Slow:    rl.IsKeyDown(rl.KeyLeftAlt),
	}
	delta := rl.GetMouseDelta()
	in.MouseDX, in.MouseDY = float64(delta.X), float64(delta.Y)

	if err := a.cam.Apply(in); err != nil {
		a.logger.Debug("zoom clamped", "err", err)
	}

	rl.HideCursor()
	rl.SetMousePosition(rl.GetScreenWidth()/2, rl.GetScreenHeight()/2)

	if rl.IsKeyPressed(rl.KeyP) {
		a.running = !a.running
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.showTrails = !a.showTrails
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.reset()
	}

	if a.running {
		a.step()
	}
	return true
}

func (a *App) updateMenu() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.selected = (a.selected + 1) % len(a.scenes)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.selected = (a.selected - 1 + len(a.scenes)) % len(a.scenes)
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		if err := a.loadScene(a.scenes[a.selected]); err != nil {
			a.logger.Error("load scene", "scene", a.scenes[a.selected], "err", err)
			return true
		}
		a.inMenu = false
		rl.SetMousePosition(rl.GetScreenWidth()/2, rl.GetScreenHeight()/2)
	}
	return true
}

func (a *App) step() {
	for i := 0; i < a.cfg.Physics.StepsPerFrame; i++ {
		if err := a.sim.Step(a.cfg.Physics.Dt); err != nil {
			a.stepErrors++
			a.lastErr = err.Error()
		}
	}

	scale := a.cfg.Physics.Scale
	for i, b := range a.sim.Bodies() {
		a.trails[i] = append(a.trails[i], toRl(b.RenderPosition(scale)))
		if len(a.trails[i]) > maxTrail {
			a.trails[i] = a.trails[i][1:]
		}
	}

	a.telemetry = append(a.telemetry, a.energy())
	if len(a.telemetry) > maxTelemetry {
		a.telemetry = a.telemetry[1:]
	}
}

func (a *App) reset() {
	a.sim.Reset()
	*a.cam = a.home
	for i := range a.trails {
		a.trails[i] = a.trails[i][:0]
	}
	a.telemetry = a.telemetry[:0]
	a.stepErrors, a.lastErr = 0, ""
	a.logger.Info("reset", "scene", a.scene)
}

func toRl(v vmath.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// raylibCamera mirrors the orbit camera for BeginMode3D.
func (a *App) raylibCamera() rl.Camera3D {
	return rl.NewCamera3D(
		toRl(a.cam.Eye()),
		toRl(a.cam.Target()),
		toRl(a.cam.Up()),
		float32(a.cam.Fovy()),
		rl.CameraPerspective,
	)
}
