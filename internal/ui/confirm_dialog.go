package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prismchat/prism/internal/styles"
)

// Dialog widths.
const (
	DialogWidthSmall  = 40
	DialogWidthMedium = 50
)

// ConfirmDialog is a two-button confirmation overlay. The confirm button
// has focus initially; left/right and tab switch, enter activates, esc
// cancels.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	BorderColor  lipgloss.Color
	Width        int

	onCancel bool
}

// NewConfirmDialog creates a dialog with sensible defaults.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
		BorderColor:  styles.Primary,
		Width:        DialogWidthMedium,
	}
}

// HandleKey processes a key while the dialog is open. It returns
// "confirm" or "cancel" when a choice was made, or "" while the dialog
// stays open.
func (d *ConfirmDialog) HandleKey(key tea.KeyMsg) string {
	switch key.String() {
	case "left", "right", "tab", "h", "l":
		d.onCancel = !d.onCancel
		return ""
	case "enter":
		if d.onCancel {
			return "cancel"
		}
		return "confirm"
	case "esc", "q":
		return "cancel"
	case "y":
		return "confirm"
	case "n":
		return "cancel"
	}
	return ""
}

// View renders the dialog box.
func (d *ConfirmDialog) View() string {
	width := d.Width
	if width <= 0 {
		width = DialogWidthMedium
	}

	inner := width - 4 // border + padding

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(d.BorderColor).
		Render(d.Title)

	message := lipgloss.NewStyle().
		Width(inner).
		Foreground(styles.Text).
		Render(d.Message)

	focused := lipgloss.NewStyle().
		Foreground(styles.BgPrimary).
		Background(d.BorderColor).
		Bold(true)
	blurred := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Background(styles.BgSurface)

	confirmBtn := focused.Render(d.ConfirmLabel)
	cancelBtn := blurred.Render(d.CancelLabel)
	if d.onCancel {
		confirmBtn = blurred.Render(d.ConfirmLabel)
		cancelBtn = focused.Render(d.CancelLabel)
	}
	buttons := lipgloss.NewStyle().
		Width(inner).
		Align(lipgloss.Center).
		Render(confirmBtn + "  " + cancelBtn)

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", message, "", buttons)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.BorderColor).
		Padding(0, 1).
		Width(width - 2).
		Render(body)
}
