package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkarpenko/tui-sims/internal/core"
	"github.com/vkarpenko/tui-sims/internal/registry"
)

const menuListWidth = 28

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	descPaneStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)
)

// menuItem is one selectable simulation in the menu list.
type menuItem struct {
	id      string
	title   string
	tagline string // First line of the description, shown in the list
	desc    string // Full description, shown in the side pane
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.tagline }
func (i menuItem) FilterValue() string { return i.title }

// MenuModel is the Bubble Tea model for the simulation picker.
type MenuModel struct {
	list      list.Model
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	selected  string
	quitting  bool
}

// NewMenuModel creates a menu over all registered simulations.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	infos := registry.List()
	items := make([]list.Item, 0, len(infos))
	for _, info := range infos {
		sim, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		desc := sim.Description()
		tagline := desc
		if idx := strings.IndexByte(desc, '\n'); idx >= 0 {
			tagline = strings.TrimSuffix(desc[:idx], ":")
		}
		items = append(items, menuItem{
			id:      info.ID,
			title:   info.Title,
			tagline: tagline,
			desc:    desc,
		})
	}

	l := list.New(items, list.NewDefaultDelegate(), menuListWidth, cfg.ScreenH-2)
	l.Title = "Simulations"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = menuTitleStyle

	return MenuModel{
		list:      l,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionSelect:
			if item, ok := m.list.SelectedItem().(menuItem); ok {
				m.selected = item.id
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.list.SetSize(menuListWidth, msg.Height-2)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list beside the description pane of the highlighted
// simulation.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	desc := ""
	if item, ok := m.list.SelectedItem().(menuItem); ok {
		desc = item.desc
	}

	paneWidth := core.Max(20, m.width-menuListWidth-6)
	pane := descPaneStyle.Width(paneWidth).Render(desc)

	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), pane)
}

// Selected returns the chosen simulation ID, or "" if none.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	SimID  string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the picker and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		SimID:  m.Selected(),
		Config: m.Config(),
	}
	if m.IsQuitting() || result.SimID == "" {
		result.Quit = true
	}
	return result, nil
}
