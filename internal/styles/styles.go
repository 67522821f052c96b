package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/prismchat/prism/internal/theme"
)

// Color variables, seeded with the base dark palette and replaced by
// Apply whenever the resolved palette changes.
var (
	Primary   = lipgloss.Color("#818cf8")
	Secondary = lipgloss.Color("#a78bfa")
	Accent    = lipgloss.Color("#f59e0b")

	Success = lipgloss.Color("#34d399")
	Warning = lipgloss.Color("#fbbf24")
	Error   = lipgloss.Color("#f87171")

	Text      = lipgloss.Color("#f1f5f9")
	TextMuted = lipgloss.Color("#64748b")

	BgPrimary   = lipgloss.Color("#0f172a")
	BgSurface   = lipgloss.Color("#1e293b")
	BorderColor = lipgloss.Color("#334155")
	HoverColor  = lipgloss.Color("#6366f1")

	// Glamour style name for markdown rendering, swapped with the palette.
	CurrentMarkdownStyle = "dark"
)

// Panel styles
var (
	PanelActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	PanelInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	PanelHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			MarginBottom(1)
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Highlight = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgSurface).
		Padding(0, 1)

	Logo = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
)

// Chat styles
var (
	UserMessage = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	AssistantMessage = lipgloss.NewStyle().
				Foreground(Text)

	MessageMeta = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// List item styles
var (
	ListItemNormal = lipgloss.NewStyle().
			Foreground(Text)

	ListItemSelected = lipgloss.NewStyle().
				Foreground(Text).
				Background(BgSurface)

	ListCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// Status styles
var (
	StatusSuccess = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ToastError = lipgloss.NewStyle().
			Background(Error).
			Foreground(ReadableOn(string(Error))).
			Bold(true).
			Padding(0, 1)
)

// Apply updates all style package variables from a resolved palette and
// rebuilds every style that depends on them.
//
// NOT thread-safe for concurrent reads; call only from the Bubble Tea
// update loop (or before the program starts), never from a goroutine
// racing with View.
func Apply(p theme.Palette) {
	c := p.Colors

	Primary = lipgloss.Color(c.Primary)
	Secondary = lipgloss.Color(c.Secondary)
	Accent = lipgloss.Color(c.Accent)

	Success = lipgloss.Color(c.Success)
	Warning = lipgloss.Color(c.Warning)
	Error = lipgloss.Color(c.Error)

	Text = lipgloss.Color(c.Text)
	TextMuted = lipgloss.Color(c.TextMuted)

	BgPrimary = lipgloss.Color(c.Background)
	BgSurface = lipgloss.Color(c.Surface)
	BorderColor = lipgloss.Color(c.Border)
	HoverColor = lipgloss.Color(c.Hover)

	CurrentMarkdownStyle = p.MarkdownStyle

	rebuildStyles()
}

// rebuildStyles recreates all lipgloss styles with current colors.
func rebuildStyles() {
	PanelActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	PanelInactive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	PanelHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		MarginBottom(1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Highlight = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgSurface).
		Padding(0, 1)

	Logo = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	UserMessage = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	AssistantMessage = lipgloss.NewStyle().
		Foreground(Text)

	MessageMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	ListItemNormal = lipgloss.NewStyle().
		Foreground(Text)

	ListItemSelected = lipgloss.NewStyle().
		Foreground(Text).
		Background(BgSurface)

	ListCursor = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	StatusSuccess = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	StatusWarning = lipgloss.NewStyle().
		Foreground(Warning)

	StatusError = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ToastError = lipgloss.NewStyle().
		Background(Error).
		Foreground(ReadableOn(string(Error))).
		Bold(true).
		Padding(0, 1)
}

// ReadableOn picks black or white text for a given background color.
func ReadableOn(bgHex string) lipgloss.Color {
	if theme.Luminance(bgHex) > 0.5 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
