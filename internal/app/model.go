package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prismchat/prism/internal/config"
	"github.com/prismchat/prism/internal/keymap"
	"github.com/prismchat/prism/internal/msg"
	"github.com/prismchat/prism/internal/plugin"
	"github.com/prismchat/prism/internal/state"
	"github.com/prismchat/prism/internal/styles"
	"github.com/prismchat/prism/internal/theme"
)

// themeEventMsg wraps a bus event for the update loop.
type themeEventMsg struct {
	event theme.Event
}

// toastExpiredMsg clears a toast after its duration.
type toastExpiredMsg struct {
	id int
}

// autoRecheckMsg triggers a re-detection of the environment color scheme
// so an auto base mode tracks OS/terminal changes mid-session.
type autoRecheckMsg struct{}

const autoRecheckInterval = 30 * time.Second

func scheduleAutoRecheck() tea.Cmd {
	return tea.Tick(autoRecheckInterval, func(time.Time) tea.Msg {
		return autoRecheckMsg{}
	})
}

// Model is the root application model: sidebar navigation on the left,
// the active page on the right, footer with key hints, toasts on top.
type Model struct {
	registry *plugin.Registry
	keymap   *keymap.Registry
	cfg      *config.Config
	engine   *theme.Engine
	sub      *theme.Subscription
	logger   *slog.Logger

	active int
	width  int
	height int

	showHelp bool

	toast     *msg.ToastMsg
	toastID   int
	startCmds []tea.Cmd
}

// New builds the root model. The subscription must be freshly created;
// the model owns it and cancels it on quit.
func New(reg *plugin.Registry, km *keymap.Registry, cfg *config.Config, engine *theme.Engine, sub *theme.Subscription, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	var startCmds []tea.Cmd
	for _, p := range reg.Plugins() {
		if cmd := p.Start(); cmd != nil {
			startCmds = append(startCmds, cmd)
		}
	}
	// Styles must match the engine's palette before the first render.
	styles.Apply(engine.CurrentPalette())

	m := Model{
		registry:  reg,
		keymap:    km,
		cfg:       cfg,
		engine:    engine,
		sub:       sub,
		logger:    logger,
		showHelp:  state.GetShowHelp(),
		startCmds: startCmds,
	}
	// Restore the page that was focused last run, if it still exists.
	if saved := state.GetActivePage(); saved != "" {
		for i, p := range reg.Plugins() {
			if p.ID() == saved {
				m.active = i
				break
			}
		}
	}
	if plugins := reg.Plugins(); len(plugins) > 0 {
		plugins[m.active].SetFocused(true)
	}
	return m
}

// Init starts the plugins, the theme event pump, and the periodic
// environment re-check for auto mode.
func (m Model) Init() tea.Cmd {
	cmds := append([]tea.Cmd{}, m.startCmds...)
	cmds = append(cmds, waitForThemeEvent(m.sub), scheduleAutoRecheck())
	return tea.Batch(cmds...)
}

// waitForThemeEvent blocks on the bus subscription and forwards the next
// event into the update loop. Re-issued after every received event so the
// pump never drops one.
func waitForThemeEvent(sub *theme.Subscription) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-sub.C
		if !ok {
			return nil
		}
		return themeEventMsg{event: ev}
	}
}

func expireToast(id int, d time.Duration) tea.Cmd {
	if d <= 0 {
		d = 2 * time.Second
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// activePlugin returns the focused page, or nil when none registered.
func (m *Model) activePlugin() plugin.Plugin {
	plugins := m.registry.Plugins()
	if m.active < 0 || m.active >= len(plugins) {
		return nil
	}
	return plugins[m.active]
}

// focusPlugin switches the active page.
func (m *Model) focusPlugin(idx int) {
	plugins := m.registry.Plugins()
	if idx < 0 || idx >= len(plugins) || idx == m.active {
		return
	}
	plugins[m.active].SetFocused(false)
	m.active = idx
	plugins[m.active].SetFocused(true)
	_ = state.SetActivePage(plugins[m.active].ID())
}
