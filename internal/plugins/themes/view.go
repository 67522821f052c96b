package themes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/prismchat/prism/internal/styles"
	"github.com/prismchat/prism/internal/theme"
)

// View renders the theme browser.
func (p *Plugin) View(width, height int) string {
	p.width = width
	p.height = height

	var b strings.Builder

	header := styles.PanelHeader.Render("Themes")
	b.WriteString(header)
	b.WriteString("\n")

	mode := p.ctx.Theme.BaseMode()
	pal := p.ctx.Theme.CurrentPalette()
	modeLabel := fmt.Sprintf("mode: %s · active: %s", mode, statusLine(pal))
	b.WriteString(styles.Muted.Render(modeLabel))
	b.WriteString("\n")

	if p.filterMode {
		b.WriteString(p.filterInput.View())
		b.WriteString("\n")
	} else if p.filterQuery != "" {
		b.WriteString(styles.Muted.Render("filter: " + p.filterQuery))
		b.WriteString("\n")
	}

	switch {
	case p.loading && len(p.themes) == 0:
		b.WriteString(styles.Muted.Render("loading themes..."))
	case p.loadErr != nil && len(p.themes) == 0:
		b.WriteString(styles.StatusError.Render("theme service unavailable"))
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("press r to retry"))
	default:
		b.WriteString(p.renderList(width, height-6))
	}

	if p.actionErr != nil {
		b.WriteString("\n")
		b.WriteString(styles.StatusError.Render(activationErrorText(p.actionErr)))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (p *Plugin) renderList(width, maxRows int) string {
	vis := p.visible()
	if len(vis) == 0 {
		return styles.Muted.Render("no themes match")
	}
	if maxRows < 1 {
		maxRows = 1
	}

	activeID, applied := p.ctx.Theme.ActiveThemeID()

	// Keep the cursor in the visible window.
	start := 0
	if p.cursor >= maxRows {
		start = p.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(vis) {
		end = len(vis)
	}

	var rows []string
	for i := start; i < end; i++ {
		t := vis[i]
		marker := "  "
		if t.ID == activeID {
			if applied {
				marker = styles.StatusSuccess.Render("● ")
			} else {
				marker = styles.Highlight.Render("○ ")
			}
		}

		label := t.Label()
		if t.Category != "" {
			label += "  " + t.Category
		}
		label = runewidth.Truncate(label, width-4, "…")

		line := marker + label
		if i == p.cursor && p.focused {
			line = styles.ListCursor.Render("> ") + styles.ListItemSelected.Render(marker+label)
		} else {
			line = "  " + styles.ListItemNormal.Render(line)
		}
		rows = append(rows, line)
	}

	if desc := p.selectedDescription(); desc != "" {
		rows = append(rows, "", styles.Muted.Render(runewidth.Truncate(desc, width-2, "…")))
	}

	return strings.Join(rows, "\n")
}

func (p *Plugin) selectedDescription() string {
	sel, ok := p.selected()
	if !ok {
		return ""
	}
	return sel.Description
}

// statusLine summarizes the resolved palette for the footer.
func statusLine(pal theme.Palette) string {
	if pal.Source == theme.SourceNamed {
		return fmt.Sprintf("%s · %s", pal.NamedThemeID, pal.EffectiveMode)
	}
	return fmt.Sprintf("base · %s", pal.EffectiveMode)
}
