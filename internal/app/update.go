package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prismchat/prism/internal/msg"
	"github.com/prismchat/prism/internal/plugin"
	"github.com/prismchat/prism/internal/state"
	"github.com/prismchat/prism/internal/styles"
	"github.com/prismchat/prism/internal/theme"
	"github.com/prismchat/prism/internal/version"
)

// Update routes messages to the shell and the active page.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		return m, nil

	case themeEventMsg:
		return m.handleThemeEvent(message.event)

	case tea.FocusMsg:
		// Returning to the terminal is the cheapest moment the OS scheme
		// could have flipped; the engine ignores this unless mode is auto.
		m.engine.ReevaluateAuto()
		return m, nil

	case autoRecheckMsg:
		m.engine.ReevaluateAuto()
		return m, scheduleAutoRecheck()

	case msg.ToastMsg:
		m.toast = &message
		m.toastID++
		return m, expireToast(m.toastID, message.Duration)

	case toastExpiredMsg:
		if message.id == m.toastID {
			m.toast = nil
		}
		return m, nil

	case msg.ClearToastMsg:
		m.toast = nil
		return m, nil

	case version.UpdateAvailableMsg:
		toast := msg.ToastMsg{
			Message:  fmt.Sprintf("prism %s available: %s", message.LatestVersion, message.UpdateCommand),
			Duration: 8 * time.Second,
		}
		m.toast = &toast
		m.toastID++
		return m, expireToast(m.toastID, toast.Duration)

	case tea.KeyMsg:
		return m.handleKey(message)
	}

	return m.forwardToActive(message)
}

// handleThemeEvent applies palette changes to the style layer, fans the
// event out to every page, and re-arms the pump.
func (m Model) handleThemeEvent(ev theme.Event) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if pc, ok := ev.(theme.PaletteChanged); ok {
		styles.Apply(pc.Palette)
	}

	plugins := m.registry.Plugins()
	for i, p := range plugins {
		next, cmd := p.Update(ev)
		plugins[i] = next
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, waitForThemeEvent(m.sub))
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := m.activePlugin()

	// Pages in text-entry mode get every key except their own context
	// bindings; app shortcuts stay out of the way while typing.
	if consumer, ok := active.(plugin.TextInputConsumer); ok && consumer.ConsumesTextInput() {
		return m.forwardToActive(key)
	}

	context := "global"
	if active != nil {
		context = active.FocusContext()
	}
	command, bound := m.keymap.Resolve(key, context)
	if !bound {
		return m.forwardToActive(key)
	}

	switch command {
	case "quit":
		m.registry.StopAll()
		m.sub.Cancel()
		return m, tea.Quit
	case "next-page":
		m.focusPlugin((m.active + 1) % len(m.registry.Plugins()))
		return m, nil
	case "prev-page":
		n := len(m.registry.Plugins())
		m.focusPlugin((m.active - 1 + n) % n)
		return m, nil
	case "focus-page-1":
		m.focusPlugin(0)
		return m, nil
	case "focus-page-2":
		m.focusPlugin(1)
		return m, nil
	case "focus-page-3":
		m.focusPlugin(2)
		return m, nil
	case "cycle-mode":
		m.engine.SetBaseMode(m.engine.BaseMode().Next())
		return m, nil
	case "clear-theme":
		m.engine.Clear()
		return m, nil
	case "toggle-help":
		m.showHelp = !m.showHelp
		_ = state.SetShowHelp(m.showHelp)
		return m, nil
	}

	// Page-level command: the page resolves it again from its context.
	return m.forwardToActive(key)
}

func (m Model) forwardToActive(message tea.Msg) (tea.Model, tea.Cmd) {
	active := m.activePlugin()
	if active == nil {
		return m, nil
	}
	plugins := m.registry.Plugins()
	next, cmd := active.Update(message)
	plugins[m.active] = next
	return m, cmd
}
