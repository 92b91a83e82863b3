package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/calcpad/internal/calc"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Scientific bool
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	layout := newGridLayout()
	state := calc.NewState(config.Scientific)
	buttons := calc.Visible(state.Scientific)
	layout.count = len(buttons)
	return &model{
		config:      config,
		state:       state,
		buttons:     buttons,
		layout:      layout,
		keys:        newKeyMap(),
		help:        help.New(),
		infoMessage: introMessage,
	}
}

type model struct {
	config  Config
	state   calc.State
	buttons []calc.Button
	focus   int
	layout  gridLayout
	keys    keyMap
	help    help.Model

	infoMessage string
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.help.Width = m.layout.width()
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.focus = m.layout.move(m.focus, 0, -1)
	case key.Matches(msg, m.keys.Down):
		m.focus = m.layout.move(m.focus, 0, 1)
	case key.Matches(msg, m.keys.Left):
		m.focus = m.layout.move(m.focus, -1, 0)
	case key.Matches(msg, m.keys.Right):
		m.focus = m.layout.move(m.focus, 1, 0)
	case key.Matches(msg, m.keys.Press):
		m.press(m.focus)
	case key.Matches(msg, m.keys.Mode):
		m.toggleMode()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if msg.Type != tea.MouseLeft {
		return
	}
	if m.layout.hitBadge(msg.X, msg.Y) {
		m.toggleMode()
		return
	}
	if idx, ok := m.layout.hitButton(msg.X, msg.Y); ok {
		m.focus = idx
		m.press(idx)
	}
}

func (m *model) press(idx int) {
	if idx < 0 || idx >= len(m.buttons) {
		return
	}
	button := m.buttons[idx]
	m.state = calc.Press(m.state, button)
	m.infoMessage = fmt.Sprintf("Pressed %s.", button.Label)
}

// toggleMode swaps the visible keypad and keeps the focus on the same button
// when it survives the swap.
func (m *model) toggleMode() {
	var focused string
	if m.focus < len(m.buttons) {
		focused = m.buttons[m.focus].Value
	}
	m.state = m.state.ToggleMode()
	m.buttons = calc.Visible(m.state.Scientific)
	m.layout.count = len(m.buttons)
	m.focus = 0
	for idx, button := range m.buttons {
		if button.Value == focused {
			m.focus = idx
			break
		}
	}
	m.infoMessage = fmt.Sprintf("%s keypad.", m.modeLabel())
	log.Printf("[tui] mode %s (%d buttons)", m.modeLabel(), len(m.buttons))
}

func (m *model) modeLabel() string {
	if m.state.Scientific {
		return badgeSci
	}
	return badgeBasic
}
