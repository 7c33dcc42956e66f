package viz

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/spaceengine/internal/config"
)

const (
	stateMenu = iota
	stateConfig
	stateSim
)

// tunable is a run setting adjustable before a scene starts.
type tunable struct {
	name   string
	get    func(*config.Constants) float64
	set    func(*config.Constants, float64)
	factor float64
}

var tunables = []tunable{
	{
		name:   "dt",
		get:    func(c *config.Constants) float64 { return c.Physics.Dt },
		set:    func(c *config.Constants, v float64) { c.Physics.Dt = v },
		factor: 2,
	},
	{
		name:   "steps/frame",
		get:    func(c *config.Constants) float64 { return float64(c.Physics.StepsPerFrame) },
		set:    func(c *config.Constants, v float64) { c.Physics.StepsPerFrame = int(v) },
		factor: 2,
	},
	{
		name:   "cam speed",
		get:    func(c *config.Constants) float64 { return c.Camera.Speed },
		set:    func(c *config.Constants, v float64) { c.Camera.Speed = v },
		factor: 2,
	},
}

type model struct {
	state, cursor int
	scenes        []string
	selected      string
	paramCursor   int
	cfg           config.Constants
	base          *config.Constants
	logger        *log.Logger
	err           error
	liveModel     Model
}

// NewInteractiveApp starts on a scene picker. Settings tuned on the
// second screen apply to a copy of cfg.
func NewInteractiveApp(cfg *config.Constants, logger *log.Logger) *model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &model{
		state:  stateMenu,
		scenes: config.ListScenes(),
		cfg:    *cfg,
		base:   cfg,
		logger: logger,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		if m.state == stateSim {
			newLive, cmd := m.liveModel.Update(msg)
			m.liveModel = newLive.(Model)
			return m, cmd
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateSim:
		newLive, cmd := m.liveModel.Update(msg)
		m.liveModel = newLive.(Model)
		return m, cmd
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.scenes)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.scenes[m.cursor]
		m.state, m.paramCursor, m.err = stateConfig, 0, nil
		m.cfg = *m.base
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(tunables)-1 {
			m.paramCursor++
		}
	case "left", "h":
		m.adjust(1 / tunables[m.paramCursor].factor)
	case "right", "l":
		m.adjust(tunables[m.paramCursor].factor)
	case "enter", "s":
		return m, m.start()
	}
	return m, nil
}

// adjust scales the selected setting, keeping the configuration valid.
func (m *model) adjust(factor float64) {
	t := tunables[m.paramCursor]
	old := t.get(&m.cfg)
	t.set(&m.cfg, old*factor)
	if err := m.cfg.Validate(); err != nil {
		t.set(&m.cfg, old)
		m.err = err
		return
	}
	m.err = nil
}

func (m *model) start() tea.Cmd {
	cfg := m.cfg
	live, err := NewSceneModel(&cfg, m.selected, m.logger)
	if err != nil {
		m.err = err
		return nil
	}
	m.logger.Info("scene started", "scene", m.selected, "dt", cfg.Physics.Dt, "steps_per_frame", cfg.Physics.StepsPerFrame)
	m.liveModel = live
	m.state = stateSim
	return m.liveModel.Init()
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.liveModel.View()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + headerStyle.Render("SPACEENGINE") + "\n    " + dimStyle.Render("n-body orbit viewer") + "\n\n")
	for i, name := range m.scenes {
		desc := config.Scenes[name].Description
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cursorStyle.Render("▸"), itemStyle.Bold(true).Render(fmt.Sprintf("%-10s", name)), dimStyle.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", dimStyle.Render(fmt.Sprintf("%-10s", name)), dimStyle.Render(desc)))
		}
	}
	b.WriteString("\n    " + helpStyle.Render("j/k navigate  enter select  q quit") + "\n")
	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder
	scene := config.Scenes[m.selected]
	b.WriteString("\n\n    " + headerStyle.Render(strings.ToUpper(m.selected)) + "\n    " + dimStyle.Render(scene.Description) + "\n\n")
	for _, spec := range scene.Bodies {
		b.WriteString("      " + dimStyle.Render(fmt.Sprintf("%-8s %.3g kg  %.2f AU", spec.Name, spec.Mass, spec.Distance)) + "\n")
	}
	b.WriteString("\n")
	for i, t := range tunables {
		val := fmt.Sprintf("%10.3g", t.get(&m.cfg))
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", cursorStyle.Render("▸"), itemStyle.Bold(true).Render(fmt.Sprintf("%-12s", t.name)), cursorStyle.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", dimStyle.Render(fmt.Sprintf("%-12s", t.name)), dimStyle.Render(val)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + StatusError.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + helpStyle.Render("j/k select  h/l halve/double  enter start  esc back") + "\n")
	return b.String()
}

// RunInteractive shows the scene picker in the alternate screen.
func RunInteractive(cfg *config.Constants, logger *log.Logger) error {
	_, err := tea.NewProgram(NewInteractiveApp(cfg, logger), tea.WithAltScreen()).Run()
	return err
}

// Run shows m in the alternate screen until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
