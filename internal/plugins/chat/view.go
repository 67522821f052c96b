package chat

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/prismchat/prism/internal/history"
	"github.com/prismchat/prism/internal/styles"
	"github.com/prismchat/prism/internal/ui"
)

// View renders the transcript and composer.
func (p *Plugin) View(width, height int) string {
	p.width = width
	p.height = height

	var b strings.Builder
	b.WriteString(styles.PanelHeader.Render("Chat"))
	b.WriteString("\n")

	transcriptRows := height - 5
	if transcriptRows < 1 {
		transcriptRows = 1
	}

	if p.loadErr != nil {
		b.WriteString(styles.StatusError.Render("history unavailable"))
		b.WriteString("\n")
	}

	lines := p.transcriptLines(width)
	start := 0
	if len(lines) > transcriptRows {
		start = len(lines) - transcriptRows
	}
	b.WriteString(strings.Join(lines[start:], "\n"))
	b.WriteString("\n")

	if p.inputFocus {
		b.WriteString(p.input.View())
	} else {
		b.WriteString(styles.Muted.Render("press i to compose"))
	}

	out := lipgloss.NewStyle().Width(width).Render(b.String())
	if p.confirmClear != nil {
		out = ui.Overlay(out, p.confirmClear.View(), width, height)
	}
	return out
}

// transcriptLines renders all messages, cached until the palette, size,
// or message count changes.
func (p *Plugin) transcriptLines(width int) []string {
	if len(p.messages) == 0 {
		return []string{styles.Muted.Render("no messages yet")}
	}

	key := renderKey{
		width:       width,
		markdown:    styles.CurrentMarkdownStyle,
		fingerprint: p.ctx.Theme.CurrentPalette().Fingerprint(),
		count:       len(p.messages),
	}
	if key == p.renderedFor && p.rendered != nil {
		return p.rendered
	}

	var lines []string
	for i, m := range p.messages {
		selected := i == p.cursor || (p.cursor >= len(p.messages) && i == len(p.messages)-1)
		lines = append(lines, p.renderMessage(m, width, selected)...)
	}

	p.renderedFor = key
	p.rendered = lines
	return lines
}

func (p *Plugin) renderMessage(m history.Message, width int, selected bool) []string {
	meta := string(m.Role) + " · " + m.CreatedAt.Local().Format("15:04")
	header := styles.MessageMeta.Render(meta)
	if selected && p.focused && !p.inputFocus {
		header = styles.ListCursor.Render("> ") + header
	} else {
		header = "  " + header
	}

	var body string
	switch m.Role {
	case history.RoleAssistant:
		body = renderMarkdown(m.Content, width-4)
	default:
		body = styles.UserMessage.Render(wrapPlain(m.Content, width-4))
	}

	out := []string{header}
	for _, l := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		out = append(out, "  "+l)
	}
	out = append(out, "")
	return out
}

// renderMarkdown renders assistant content with the palette's glamour
// style, falling back to plain text when rendering fails.
func renderMarkdown(content string, width int) string {
	if width < 10 {
		width = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.CurrentMarkdownStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return out
}

// wrapPlain hard-wraps plain text to width, preserving explicit newlines.
func wrapPlain(s string, width int) string {
	if width < 10 {
		width = 10
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		for runewidth.StringWidth(line) > width {
			cut := width
			runes := []rune(line)
			if cut > len(runes) {
				cut = len(runes)
			}
			out = append(out, string(runes[:cut]))
			line = string(runes[cut:])
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
