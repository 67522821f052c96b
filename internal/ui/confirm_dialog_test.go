package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewConfirmDialogDefaults(t *testing.T) {
	d := NewConfirmDialog("Clear history?", "All messages will be deleted.")

	if d.Title != "Clear history?" {
		t.Errorf("title = %q", d.Title)
	}
	if d.ConfirmLabel != " Confirm " || d.CancelLabel != " Cancel " {
		t.Errorf("labels = %q / %q", d.ConfirmLabel, d.CancelLabel)
	}
	if d.Width != DialogWidthMedium {
		t.Errorf("width = %d, want %d", d.Width, DialogWidthMedium)
	}
}

func TestConfirmDialogView(t *testing.T) {
	d := NewConfirmDialog("Delete?", "Are you sure?")
	d.ConfirmLabel = " Delete "

	out := d.View()
	for _, want := range []string{"Delete?", "Are you sure?", "Delete", "Cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestConfirmDialogKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"enter confirms", []string{"enter"}, "confirm"},
		{"esc cancels", []string{"esc"}, "cancel"},
		{"y confirms", []string{"y"}, "confirm"},
		{"n cancels", []string{"n"}, "cancel"},
		{"switch then enter cancels", []string{"tab", "enter"}, "cancel"},
		{"switch twice then enter confirms", []string{"left", "right", "enter"}, "confirm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewConfirmDialog("t", "m")
			got := ""
			for _, k := range tt.keys {
				got = d.HandleKey(keyMsg(k))
			}
			if got != tt.want {
				t.Errorf("result = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfirmDialogSwitchKeepsOpen(t *testing.T) {
	d := NewConfirmDialog("t", "m")
	if got := d.HandleKey(keyMsg("tab")); got != "" {
		t.Errorf("tab returned %q, want dialog to stay open", got)
	}
	if got := d.HandleKey(keyMsg("x")); got != "" {
		t.Errorf("unbound key returned %q", got)
	}
}
