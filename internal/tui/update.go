package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/passgenie/passgenie-go/internal/crypto"
	"github.com/passgenie/passgenie-go/internal/handler"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case autoGenerateMsg:
		m.runGenerate()

	case hideToastMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}

	case endPulseMsg:
		if msg.id == m.pulseID {
			m.pulsing = false
		}

	case copyDoneMsg:
		// The controller already raised the toast.

	case tea.KeyMsg:
		var quit bool
		cmd, quit = m.handleKeyPress(msg)
		if quit {
			return m, tea.Quit
		}
	}

	return m, tea.Batch(cmd, m.showPendingToast())
}

func (m *model) handleKeyPress(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Generate):
		m.runGenerate()
	case key.Matches(msg, m.keys.Copy):
		return m.copyCmd(), false
	case key.Matches(msg, m.keys.Longer):
		m.ctrl.AdjustLength(1)
	case key.Matches(msg, m.keys.Shorter):
		m.ctrl.AdjustLength(-1)
	default:
		for i, binding := range m.keys.Toggles {
			if key.Matches(msg, binding) {
				return m.toggle(crypto.AllClasses()[i]), false
			}
		}
	}
	return nil, false
}

// runGenerate invokes Generate through the middleware chain. Throttled key
// repeats are dropped silently and other failures already raised a toast.
func (m *model) runGenerate() {
	_ = m.generate(m.ctx)
}

func (m *model) copyCmd() tea.Cmd {
	ctx, copyFn := m.ctx, m.copy
	return func() tea.Msg {
		return copyDoneMsg{err: copyFn(ctx)}
	}
}

func (m *model) toggle(class crypto.CharacterClass) tea.Cmd {
	err := m.ctrl.Toggle(class)
	if !errors.Is(err, handler.ErrLastActiveClass) {
		return nil
	}

	m.pulseID++
	m.pulsing = true
	m.pulse = class
	id := m.pulseID
	return tea.Tick(pulseDuration, func(time.Time) tea.Msg { return endPulseMsg{id: id} })
}

// showPendingToast displays the latest controller toast and schedules it to
// disappear. A newer toast restarts the timer.
func (m *model) showPendingToast() tea.Cmd {
	msg, ok := m.notifier.drain()
	if !ok {
		return nil
	}

	m.toastID++
	m.toast = msg
	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return hideToastMsg{id: id} })
}
