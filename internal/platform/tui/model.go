package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkarpenko/tui-sims/internal/core"
	"github.com/vkarpenko/tui-sims/internal/registry"
)

// helpLines is the screen space reserved below the simulation viewport for
// the key-binding footer.
const helpLines = 1

// Model is the Bubble Tea model for running one simulation session.
// It implements the fixed-tick loop: every frame renders, key messages are
// translated into the pending input frame, and each tick applies the frame
// and advances the engine.
type Model struct {
	sim        registry.Sim
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       SimKeyMap
	helpView   help.Model
	inputFrame core.InputFrame
	simState   core.SimState
	resetErr   error
	quitting   bool
}

// NewModel creates a model for the given simulation. The simulation must
// already have been Reset by the caller.
func NewModel(sim registry.Sim, cfg core.RuntimeConfig) Model {
	return Model{
		sim:        sim,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpLines),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		keys:       KeyMapFor(sim.ID()),
		helpView:   help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey translates a key press into the pending input frame. Quit
// short-circuits: it never waits for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize re-fits the simulation to the new window. Mid-session resize
// restarts the engine; a viewport that became unusable is reported instead
// of producing degenerate state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-helpLines))
	m.helpView.Width = msg.Width

	simCfg := m.config
	simCfg.ScreenH -= helpLines
	m.resetErr = m.sim.Reset(simCfg)

	return m, nil
}

// handleTick applies the sampled input and advances the simulation by one
// platform tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.resetErr == nil {
		result := m.sim.Step(m.inputFrame)
		m.simState = result.State
	}
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current simulation frame plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.resetErr != nil {
		return "Window too small — resize to continue\n"
	}

	m.sim.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.helpView.View(m.keys)
}

// Run resets the simulation for the given viewport and drives it until the
// user quits. Construction errors (invalid viewport) surface before the
// terminal enters the alternate screen.
func Run(sim registry.Sim, cfg core.RuntimeConfig) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	simCfg := cfg
	simCfg.ScreenH -= helpLines
	if err := sim.Reset(simCfg); err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(sim, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
