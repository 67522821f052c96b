package preview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prismchat/prism/internal/plugin"
	"github.com/prismchat/prism/internal/styles"
	"github.com/prismchat/prism/internal/theme"
)

const (
	pluginID   = "preview"
	pluginName = "palette"
	pluginIcon = "P"
)

// role pairs a display name with an accessor into the color set.
type role struct {
	name string
	get  func(theme.ColorSet) string
}

var roles = []role{
	{"primary", func(c theme.ColorSet) string { return c.Primary }},
	{"secondary", func(c theme.ColorSet) string { return c.Secondary }},
	{"accent", func(c theme.ColorSet) string { return c.Accent }},
	{"background", func(c theme.ColorSet) string { return c.Background }},
	{"surface", func(c theme.ColorSet) string { return c.Surface }},
	{"text", func(c theme.ColorSet) string { return c.Text }},
	{"text muted", func(c theme.ColorSet) string { return c.TextMuted }},
	{"border", func(c theme.ColorSet) string { return c.Border }},
	{"hover", func(c theme.ColorSet) string { return c.Hover }},
	{"secondary light", func(c theme.ColorSet) string { return c.SecondaryLight }},
	{"secondary dark", func(c theme.ColorSet) string { return c.SecondaryDark }},
	{"success", func(c theme.ColorSet) string { return c.Success }},
	{"warning", func(c theme.ColorSet) string { return c.Warning }},
	{"error", func(c theme.ColorSet) string { return c.Error }},
}

// Plugin renders every role of the resolved palette with its hex value.
type Plugin struct {
	ctx     *plugin.Context
	focused bool
	scroll  int
}

// New creates a new preview plugin.
func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string           { return pluginID }
func (p *Plugin) Name() string         { return pluginName }
func (p *Plugin) Icon() string         { return pluginIcon }
func (p *Plugin) FocusContext() string { return "preview" }

func (p *Plugin) Init(ctx *plugin.Context) error {
	p.ctx = ctx
	p.scroll = 0
	return nil
}

func (p *Plugin) Start() tea.Cmd { return nil }
func (p *Plugin) Stop()          {}

func (p *Plugin) IsFocused() bool   { return p.focused }
func (p *Plugin) SetFocused(f bool) { p.focused = f }

// Update handles messages.
func (p *Plugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	key, ok := m.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	cmd, ok := p.ctx.Keymap.Resolve(key, "preview")
	if !ok {
		return p, nil
	}
	switch cmd {
	case "scroll-down":
		if p.scroll < len(roles)-1 {
			p.scroll++
		}
	case "scroll-up":
		if p.scroll > 0 {
			p.scroll--
		}
	}
	return p, nil
}

// View renders the swatch table for the current palette.
func (p *Plugin) View(width, height int) string {
	pal := p.ctx.Theme.CurrentPalette()

	var b strings.Builder
	b.WriteString(styles.PanelHeader.Render("Palette"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(describe(pal)))
	b.WriteString("\n\n")

	rows := height - 5
	if rows < 1 {
		rows = 1
	}
	end := p.scroll + rows
	if end > len(roles) {
		end = len(roles)
	}

	for _, r := range roles[p.scroll:end] {
		hex := r.get(pal.Colors)
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(styles.ReadableOn(hex)).
			Render(" " + hex + " ")
		b.WriteString(swatch)
		b.WriteString(styles.Body.Render(fmt.Sprintf(" %s", r.name)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func describe(pal theme.Palette) string {
	if pal.Source == theme.SourceNamed {
		return fmt.Sprintf("theme %s · %s mode", pal.NamedThemeID, pal.EffectiveMode)
	}
	return fmt.Sprintf("base theme · %s mode", pal.EffectiveMode)
}
