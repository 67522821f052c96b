package themes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prismchat/prism/internal/catalog"
	"github.com/prismchat/prism/internal/msg"
	"github.com/prismchat/prism/internal/plugin"
	"github.com/prismchat/prism/internal/theme"
)

const (
	pluginID   = "themes"
	pluginName = "themes"
	pluginIcon = "T"

	fetchTimeout = 15 * time.Second
)

// themesLoadedMsg carries the catalog listing result.
type themesLoadedMsg struct {
	gen    int
	themes []catalog.ThemeSummary
	err    error
}

// themeActivatedMsg reports the outcome of a preview or apply.
type themeActivatedMsg struct {
	id      string
	applied bool
	err     error
}

// Plugin implements the theme browser page.
type Plugin struct {
	ctx     *plugin.Context
	focused bool

	width  int
	height int

	themes  []catalog.ThemeSummary
	cursor  int
	loading bool
	loadErr error
	loadGen int

	// Inline error from the last failed preview/apply, shown until the
	// next successful activation or cursor move.
	actionErr error

	filterMode  bool
	filterInput textinput.Model
	filterQuery string
}

// New creates a new themes plugin.
func New() *Plugin {
	ti := textinput.New()
	ti.Placeholder = "filter themes"
	ti.CharLimit = 64
	return &Plugin{filterInput: ti}
}

func (p *Plugin) ID() string   { return pluginID }
func (p *Plugin) Name() string { return pluginName }
func (p *Plugin) Icon() string { return pluginIcon }

// Init initializes the plugin with context.
func (p *Plugin) Init(ctx *plugin.Context) error {
	p.ctx = ctx
	p.themes = nil
	p.cursor = 0
	p.loading = false
	p.loadErr = nil
	p.actionErr = nil
	p.filterMode = false
	p.filterQuery = ""
	return nil
}

// Start kicks off the initial catalog fetch.
func (p *Plugin) Start() tea.Cmd {
	return p.loadThemes()
}

// Stop is a no-op; the plugin holds no background resources.
func (p *Plugin) Stop() {}

func (p *Plugin) IsFocused() bool     { return p.focused }
func (p *Plugin) SetFocused(f bool)   { p.focused = f }
func (p *Plugin) FocusContext() string {
	if p.filterMode {
		return "themes-filter"
	}
	return "themes"
}

// ConsumesTextInput reports whether typed characters belong to the
// filter input rather than app shortcuts.
func (p *Plugin) ConsumesTextInput() bool { return p.filterMode }

func (p *Plugin) loadThemes() tea.Cmd {
	p.loading = true
	p.loadGen++
	gen := p.loadGen
	client := p.ctx.Catalog
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		themes, err := client.ListThemes(ctx)
		return themesLoadedMsg{gen: gen, themes: themes, err: err}
	}
}

func (p *Plugin) previewSelected() tea.Cmd {
	sel, ok := p.selected()
	if !ok {
		return nil
	}
	engine := p.ctx.Theme
	id := sel.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		err := engine.PreviewTheme(ctx, id)
		return themeActivatedMsg{id: id, err: err}
	}
}

func (p *Plugin) applySelected() tea.Cmd {
	sel, ok := p.selected()
	if !ok {
		return nil
	}
	engine := p.ctx.Theme
	id := sel.ID
	name := sel.Label()
	return tea.Batch(
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			err := engine.ApplyTheme(ctx, id)
			return themeActivatedMsg{id: id, applied: true, err: err}
		},
		msg.ShowToast(fmt.Sprintf("applied %s", name), 2*time.Second),
	)
}

// Update handles messages.
func (p *Plugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	switch m := m.(type) {
	case themesLoadedMsg:
		if m.gen != p.loadGen {
			return p, nil
		}
		p.loading = false
		p.loadErr = m.err
		if m.err == nil {
			p.themes = m.themes
			if p.cursor >= len(p.visible()) {
				p.cursor = 0
			}
		}
		return p, nil

	case themeActivatedMsg:
		p.actionErr = m.err
		if m.err != nil {
			p.ctx.Log().Warn("theme activation failed", "theme", m.id, "err", m.err)
		}
		return p, nil

	case tea.KeyMsg:
		if p.filterMode {
			return p.updateFilter(m)
		}
		return p.handleKey(m)
	}

	return p, nil
}

func (p *Plugin) handleKey(m tea.KeyMsg) (plugin.Plugin, tea.Cmd) {
	cmd, ok := p.ctx.Keymap.Resolve(m, "themes")
	if !ok {
		return p, nil
	}
	switch cmd {
	case "cursor-down":
		if p.cursor < len(p.visible())-1 {
			p.cursor++
			p.actionErr = nil
			return p, p.previewSelected()
		}
	case "cursor-up":
		if p.cursor > 0 {
			p.cursor--
			p.actionErr = nil
			return p, p.previewSelected()
		}
	case "apply-theme":
		return p, p.applySelected()
	case "clear-preview":
		p.actionErr = nil
		p.ctx.Theme.Clear()
		return p, nil
	case "refresh":
		return p, p.loadThemes()
	case "filter":
		p.filterMode = true
		p.filterInput.SetValue(p.filterQuery)
		p.filterInput.Focus()
		return p, textinput.Blink
	}
	return p, nil
}

func (p *Plugin) updateFilter(m tea.KeyMsg) (plugin.Plugin, tea.Cmd) {
	if cmd, ok := p.ctx.Keymap.Resolve(m, "themes-filter"); ok {
		switch cmd {
		case "cancel":
			p.filterMode = false
			p.filterQuery = ""
			p.filterInput.Blur()
			p.cursor = 0
			return p, nil
		case "confirm":
			p.filterMode = false
			p.filterQuery = p.filterInput.Value()
			p.filterInput.Blur()
			p.cursor = 0
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.filterInput, cmd = p.filterInput.Update(m)
	p.filterQuery = p.filterInput.Value()
	if p.cursor >= len(p.visible()) {
		p.cursor = 0
	}
	return p, cmd
}

// visible returns the themes matching the current filter.
func (p *Plugin) visible() []catalog.ThemeSummary {
	q := strings.ToLower(strings.TrimSpace(p.filterQuery))
	if q == "" {
		return p.themes
	}
	var out []catalog.ThemeSummary
	for _, t := range p.themes {
		if strings.Contains(strings.ToLower(t.Label()), q) ||
			strings.Contains(strings.ToLower(t.ID), q) ||
			strings.Contains(strings.ToLower(t.Category), q) {
			out = append(out, t)
		}
	}
	return out
}

func (p *Plugin) selected() (catalog.ThemeSummary, bool) {
	vis := p.visible()
	if p.cursor < 0 || p.cursor >= len(vis) {
		return catalog.ThemeSummary{}, false
	}
	return vis[p.cursor], true
}

// activationErrorText maps an activation error to a short inline label.
func activationErrorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, catalog.ErrNotFound):
		return "theme not found"
	case errors.Is(err, theme.ErrFetchFailed):
		return "theme service unavailable"
	default:
		return "theme load failed"
	}
}
