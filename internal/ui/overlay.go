// Package ui provides shared UI components and helpers for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle is the gray applied to background content behind dialogs.
// Existing ANSI codes are stripped first because SGR 2 (faint) doesn't
// reliably combine with color codes in most terminals.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func dimLine(s string) string {
	return DimStyle.Render(ansi.Strip(s))
}

// compositeRow overlays one dialog line onto a background line at startX:
// dimmed left segment, dialog content, dimmed right segment.
func compositeRow(bgLine, dialogLine string, startX, dialogWidth, totalWidth int) string {
	var b strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if startX > 0 {
		left := ansi.Truncate(stripped, startX, "")
		leftWidth := ansi.StringWidth(left)
		b.WriteString(DimStyle.Render(left))
		if leftWidth < startX {
			b.WriteString(strings.Repeat(" ", startX-leftWidth))
		}
	}

	b.WriteString(dialogLine)

	rightStart := startX + dialogWidth
	if rightStart < totalWidth && bgWidth > rightStart {
		right := ansi.Cut(stripped, rightStart, bgWidth)
		b.WriteString(DimStyle.Render(right))
	}

	return b.String()
}

// Overlay composites a dialog centered on top of a dimmed background.
func Overlay(background, dialog string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	dialogLines := strings.Split(dialog, "\n")

	dialogWidth := maxLineWidth(dialogLines)
	dialogHeight := len(dialogLines)
	startX := (width - dialogWidth) / 2
	startY := (height - dialogHeight) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bgLine := ""
		if y < len(bgLines) {
			bgLine = bgLines[y]
		}

		row := y - startY
		if row >= 0 && row < dialogHeight {
			rows = append(rows, compositeRow(bgLine, dialogLines[row], startX, dialogWidth, width))
		} else {
			rows = append(rows, dimLine(bgLine))
		}
	}

	return strings.Join(rows, "\n")
}
