package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestMaxLineWidth(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"empty", []string{}, 0},
		{"single", []string{"hello"}, 5},
		{"multiple", []string{"hi", "hello", "hey"}, 5},
		{"with ansi", []string{"\x1b[31mred\x1b[0m"}, 3},
		{"empty lines", []string{"", "", ""}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maxLineWidth(tt.lines); got != tt.want {
				t.Errorf("maxLineWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOverlayContainsDialogAndBackground(t *testing.T) {
	bg := strings.Join([]string{
		"line one of the background",
		"line two of the background",
		"line three of the background",
		"line four of the background",
		"line five of the background",
	}, "\n")
	out := Overlay(bg, "[DIALOG]", 30, 5)

	if !strings.Contains(out, "[DIALOG]") {
		t.Error("overlay lost the dialog content")
	}
	stripped := ansi.Strip(out)
	if !strings.Contains(stripped, "line one") {
		t.Error("overlay lost the background content")
	}
}

func TestOverlayHeight(t *testing.T) {
	out := Overlay("short", "[D]", 20, 8)
	if got := len(strings.Split(out, "\n")); got != 8 {
		t.Errorf("overlay height = %d lines, want 8", got)
	}
}

func TestOverlayCentersDialog(t *testing.T) {
	bg := strings.Repeat(strings.Repeat("x", 20)+"\n", 4) + strings.Repeat("x", 20)
	out := Overlay(bg, "[D]", 20, 5)

	rows := strings.Split(out, "\n")
	mid := ansi.Strip(rows[2])
	idx := strings.Index(mid, "[D]")
	if idx < 7 || idx > 9 {
		t.Errorf("dialog at column %d, want roughly centered in 20", idx)
	}
}

func TestCompositeRowPadsShortBackground(t *testing.T) {
	row := compositeRow("ab", "[D]", 5, 3, 20)
	stripped := ansi.Strip(row)
	if !strings.HasSuffix(stripped, "[D]") {
		t.Errorf("row = %q, want background padded up to the dialog", stripped)
	}
	if got := ansi.StringWidth(stripped); got != 8 {
		t.Errorf("row width = %d, want 8", got)
	}
}
