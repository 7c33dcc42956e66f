package viz

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/spaceengine/internal/camera"
	"github.com/san-kum/spaceengine/internal/config"
	"github.com/san-kum/spaceengine/internal/physics"
	"github.com/san-kum/spaceengine/internal/sim"
	"github.com/san-kum/spaceengine/internal/vmath"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	trailCapacity   = 240
	hudWidth        = 46
)

type TickMsg time.Time

// Model drives one simulation in the terminal: every tick it applies the
// camera modifiers, steps the simulator and redraws the canvas.
type Model struct {
	sim    *sim.Simulator
	cam    *camera.OrbitCamera
	home   camera.OrbitCamera
	cfg    *config.Constants
	logger *log.Logger

	scene         string
	canvas        *Canvas
	grid          *Wireframe
	trails        [][]vmath.Vec3
	energyHistory []float64
	width, height int

	running     bool
	boost, slow bool
	stepErrors  int
	lastErr     string
	recording   bool
	recorder    *Recorder
	showHelp    bool
}

// NewModel wraps an existing simulator and camera. A nil logger discards.
func NewModel(s *sim.Simulator, cam *camera.OrbitCamera, cfg *config.Constants, scene string, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	extent := s.RenderExtent(cfg.Physics.Scale)
	spacing := math.Max(1, extent/5)

	return Model{
		sim:           s,
		cam:           cam,
		home:          *cam,
		cfg:           cfg,
		logger:        logger,
		scene:         scene,
		canvas:        NewCanvas(width, height),
		grid:          CreateGridWireframe(10, spacing, gridInk),
		trails:        make([][]vmath.Vec3, len(s.Bodies())),
		energyHistory: make([]float64, 0, historyCapacity),
		width:         width,
		height:        height,
		running:       true,
		recorder:      NewRecorder(ForFPS(cfg.Window.FPS)),
	}
}

// NewSceneModel builds the simulator and camera for a built-in scene.
func NewSceneModel(cfg *config.Constants, name string, logger *log.Logger) (Model, error) {
	s, scene, err := sim.FromScene(cfg, name, sim.WithLogger(logger))
	if err != nil {
		return Model{}, err
	}
	cam, err := camera.ForScene(cfg, scene, s.LargestRenderRadius(cfg.Physics.Scale))
	if err != nil {
		return Model{}, err
	}
	return NewModel(s, cam, cfg, scene.Name, logger), nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.Window.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.cam.ApplyModifiers(m.boost, m.slow)
		if m.running {
			m.step()
		}
		m.draw()
		if m.recording && !m.recorder.Capture(m.canvas) {
			m.logger.Warn("recording reached frame limit", "frames", m.recorder.Len())
			m.stopRecording()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		if m.recording {
			m.stopRecording()
		}
		return m, tea.Quit
	case "w":
		m.cam.Move(camera.Forward)
	case "s":
		m.cam.Move(camera.Back)
	case "a":
		m.cam.Move(camera.Left)
	case "d":
		m.cam.Move(camera.Right)
	case "e":
		m.cam.Move(camera.Rise)
	case "q":
		m.cam.Move(camera.Sink)
	case "left":
		m.cam.Rotate(-m.cam.AngleSpeed(), 0)
	case "right":
		m.cam.Rotate(m.cam.AngleSpeed(), 0)
	case "up":
		m.cam.Rotate(0, m.cam.AngleSpeed())
	case "down":
		m.cam.Rotate(0, -m.cam.AngleSpeed())
	case "+", "=":
		m.zoom(1)
	case "-", "_":
		m.zoom(-1)
	case "b":
		m.boost = !m.boost
	case "n":
		m.slow = !m.slow
	case " ":
		m.running = !m.running
	case "r":
		m.reset()
	case "g":
		if m.recording {
			m.stopRecording()
		} else {
			m.recording = true
			m.recorder.Reset()
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// zoom moves a tenth of the current distance per key press.
func (m *Model) zoom(dir float64) {
	delta := dir * math.Max(1, m.cam.Distance()/10)
	if err := m.cam.Zoom(delta); err != nil {
		m.logger.Debug("zoom clamped", "err", err)
	}
}

func (m *Model) resize(w, h int) {
	cols := max(20, w-hudWidth-6)
	rows := max(8, h-4)
	if cols == m.width && rows == m.height {
		return
	}
	m.width, m.height = cols, rows
	m.canvas = NewCanvas(cols, rows)
}

// step advances the simulation by the configured steps per frame.
func (m *Model) step() {
	for i := 0; i < m.cfg.Physics.StepsPerFrame; i++ {
		if err := m.sim.Step(m.cfg.Physics.Dt); err != nil {
			m.stepErrors++
			m.lastErr = err.Error()
		}
	}

	energy := physics.TotalEnergy(m.sim.Bodies(), m.cfg.Physics.G)
	m.energyHistory = append(m.energyHistory, energy)
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}

	for i, b := range m.sim.Bodies() {
		m.trails[i] = append(m.trails[i], b.RenderPosition(m.cfg.Physics.Scale))
		if len(m.trails[i]) > trailCapacity {
			m.trails[i] = m.trails[i][1:]
		}
	}
}

// reset restores the bodies, the clock and the starting viewpoint.
func (m *Model) reset() {
	m.sim.Reset()
	*m.cam = m.home
	m.boost, m.slow = false, false
	for i := range m.trails {
		m.trails[i] = m.trails[i][:0]
	}
	m.energyHistory = m.energyHistory[:0]
	m.stepErrors = 0
	m.lastErr = ""
	m.logger.Info("reset", "scene", m.scene)
}

func (m *Model) stopRecording() {
	m.recording = false
	path := fmt.Sprintf("%s-%s.gif", m.scene, time.Now().Format("20060102-150405"))
	if err := m.recorder.Save(path); err != nil {
		m.logger.Error("save recording", "path", path, "err", err)
		return
	}
	m.logger.Info("saved recording", "path", path, "frames", m.recorder.Len())
}

// draw renders grid, trails and bodies.
func (m *Model) draw() {
	m.canvas.Clear()
	Render3D(m.canvas, m.grid, m.cam)

	pw, ph := m.canvas.PixelWidth(), m.canvas.PixelHeight()
	bodies := m.sim.Bodies()
	for i, trail := range m.trails {
		ink := Ink(bodies[i].Color())
		for _, p := range trail {
			if x, y, ok := m.cam.Project(p, pw, ph); ok {
				m.canvas.Paint(int(x), int(y), ink)
			}
		}
	}
	DrawBodies(m.canvas, bodies, m.cam, m.cfg.Physics.Scale)
}

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.scene)) + "\n")

	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}
	if m.recording {
		status += "  " + StatusRecording.Render("● REC")
	}
	s.WriteString(status + "\n\n")

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	eye := m.cam.Eye()
	row("Time", fmt.Sprintf("%.2f d", m.sim.Time()/86400))
	row("Steps", fmt.Sprintf("%d", m.sim.Steps()))
	row("Eye", fmt.Sprintf("%.1f %.1f %.1f", eye.X, eye.Y, eye.Z))
	row("Distance", fmt.Sprintf("%.2f", m.cam.Distance()))
	row("Az/El", fmt.Sprintf("%.1f° %.1f°", m.cam.Azimuth()*180/math.Pi, m.cam.Elevation()*180/math.Pi))
	row("Speed", fmt.Sprintf("%.2f %s", m.cam.Speed(), m.cam.Mode()))
	if m.stepErrors > 0 {
		row("Errors", fmt.Sprintf("%d", m.stepErrors))
		s.WriteString(StatusError.Render(truncate(m.lastErr, hudWidth-6)) + "\n")
	}

	if len(m.energyHistory) > 1 && finite(m.energyHistory) {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\n")
	for _, b := range m.sim.Bodies() {
		s.WriteString(Swatch(b.Name(), b.Color()) + "\n")
	}

	s.WriteString(helpStyle.Render("\nWASD/EQ:Move ←↑↓→:Orbit +-:Zoom\nB:Boost N:Slow SP:Pause R:Reset\nG:Record ?:Help Esc:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  W/S      - Move toward/away         ║
║  A/D      - Move sideways            ║
║  E/Q      - Move up/down             ║
║  Arrows   - Orbit around target      ║
║  +/-      - Zoom in/out              ║
║  B        - Toggle boost speed       ║
║  N        - Toggle slow speed        ║
║  Space    - Pause/Resume simulation  ║
║  R        - Reset simulation         ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
║  Esc      - Quit                     ║
╚══════════════════════════════════════╝`

func finite(vs []float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
