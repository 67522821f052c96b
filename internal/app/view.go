package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/prismchat/prism/internal/styles"
)

const sidebarWidth = 16

// View renders the sidebar, the active page, and the footer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	contentHeight := m.height - 2 // footer + toast line
	if contentHeight < 1 {
		contentHeight = 1
	}

	var body string
	if m.cfg != nil && !m.cfg.UI.ShowSidebar {
		body = m.renderActive(m.width-2, contentHeight)
	} else {
		sidebar := m.renderSidebar(contentHeight)
		page := m.renderActive(m.width-sidebarWidth-4, contentHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, page)
	}

	footer := ""
	if m.cfg == nil || m.cfg.UI.ShowFooter {
		footer = m.renderFooter()
	}

	toast := ""
	if m.toast != nil {
		style := styles.KeyHint
		if m.toast.IsError {
			style = styles.ToastError
		}
		toast = style.Render(m.toast.Message)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer, toast)
}

func (m Model) renderSidebar(height int) string {
	var rows []string
	rows = append(rows, styles.Logo.Render("prism"), "")

	for i, p := range m.registry.Plugins() {
		label := fmt.Sprintf("%s %s", p.Icon(), p.Name())
		label = runewidth.Truncate(label, sidebarWidth-2, "…")
		if i == m.active {
			rows = append(rows, styles.ListItemSelected.Render("▌"+label))
		} else {
			rows = append(rows, styles.Muted.Render(" "+label))
		}
	}

	pal := m.engine.CurrentPalette()
	rows = append(rows, "", styles.Muted.Render(string(pal.EffectiveMode)))

	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(height).
		Render(strings.Join(rows, "\n"))
}

func (m Model) renderActive(width, height int) string {
	active := m.activePlugin()
	if active == nil {
		return styles.Muted.Render("no pages registered")
	}
	style := styles.PanelInactive
	if active.IsFocused() {
		style = styles.PanelActive
	}
	return style.Width(width).Height(height).Render(active.View(width-2, height-2))
}

// renderFooter shows the key bindings for the active context, most
// specific first, or the full help list when toggled.
func (m Model) renderFooter() string {
	context := "global"
	if active := m.activePlugin(); active != nil {
		context = active.FocusContext()
	}

	bindings := m.keymap.BindingsForContext(context)
	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].Context != bindings[j].Context {
			return bindings[i].Context != "global"
		}
		return bindings[i].Key < bindings[j].Key
	})

	limit := 6
	if m.showHelp {
		limit = len(bindings)
	}

	var parts []string
	for i, b := range bindings {
		if i >= limit {
			parts = append(parts, styles.Muted.Render("? more"))
			break
		}
		parts = append(parts, styles.KeyHint.Render(b.Key)+" "+styles.Muted.Render(b.Command))
	}
	return strings.Join(parts, "  ")
}
