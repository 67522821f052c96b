package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/prismchat/prism/internal/theme"
)

func TestApplyUpdatesColors(t *testing.T) {
	p := theme.BuildBasePalette(theme.EffectiveLight)
	Apply(p)

	if Text != lipgloss.Color(p.Colors.Text) {
		t.Errorf("Text = %v, want %v", Text, p.Colors.Text)
	}
	if BgPrimary != lipgloss.Color(p.Colors.Background) {
		t.Errorf("BgPrimary = %v, want %v", BgPrimary, p.Colors.Background)
	}
	if CurrentMarkdownStyle != "light" {
		t.Errorf("CurrentMarkdownStyle = %s, want light", CurrentMarkdownStyle)
	}

	dark := theme.BuildBasePalette(theme.EffectiveDark)
	Apply(dark)
	if Text == lipgloss.Color(p.Colors.Text) {
		t.Error("Apply(dark) left light text color in place")
	}
	if CurrentMarkdownStyle != "dark" {
		t.Errorf("CurrentMarkdownStyle = %s, want dark", CurrentMarkdownStyle)
	}
}

func TestApplyRebuildsDependentStyles(t *testing.T) {
	p := theme.BuildBasePalette(theme.EffectiveDark)
	Apply(p)

	if got := Title.GetForeground(); got != lipgloss.Color(p.Colors.Text) {
		t.Errorf("Title foreground = %v, want %v", got, p.Colors.Text)
	}
	if got := PanelActive.GetBorderTopForeground(); got != lipgloss.Color(p.Colors.Primary) {
		t.Errorf("PanelActive border = %v, want %v", got, p.Colors.Primary)
	}
}

func TestReadableOn(t *testing.T) {
	if got := ReadableOn("#ffffff"); got != lipgloss.Color("#000000") {
		t.Errorf("ReadableOn(white) = %v, want black", got)
	}
	if got := ReadableOn("#0f172a"); got != lipgloss.Color("#ffffff") {
		t.Errorf("ReadableOn(dark) = %v, want white", got)
	}
}

func TestToastErrorForegroundReadableOnErrorColor(t *testing.T) {
	p := theme.BuildBasePalette(theme.EffectiveDark)

	p.Colors.Error = "#fef08a" // pale yellow, needs dark text
	Apply(p)
	if got := ToastError.GetForeground(); got != lipgloss.Color("#000000") {
		t.Errorf("toast foreground on light error bg = %v, want black", got)
	}

	p.Colors.Error = "#7f1d1d" // deep red, needs light text
	Apply(p)
	if got := ToastError.GetForeground(); got != lipgloss.Color("#ffffff") {
		t.Errorf("toast foreground on dark error bg = %v, want white", got)
	}
}
