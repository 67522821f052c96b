package theme

import (
	"github.com/cespare/xxhash/v2"

	"github.com/prismchat/prism/internal/catalog"
)

// PaletteSource tells consumers where a palette came from.
type PaletteSource string

const (
	SourceBase  PaletteSource = "base"
	SourceNamed PaletteSource = "named"
)

// ColorSet holds every color role a renderer may ask for. All fields are
// always populated; the factory substitutes defaults for anything a named
// theme leaves unspecified so consumers never need nil checks.
type ColorSet struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`

	Background string `json:"background"`
	Surface    string `json:"surface"`

	Text      string `json:"text"`
	TextMuted string `json:"textMuted"`

	Border string `json:"border"`

	// Derived interaction/variant roles
	Hover          string `json:"hover"`
	SecondaryLight string `json:"secondaryLight"`
	SecondaryDark  string `json:"secondaryDark"`

	// Status colors
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
}

// Palette is the single resolved, renderable style object for the current
// moment. Produced only by BuildBasePalette/BuildNamedPalette; recomputed
// on every relevant input change, never patched in place.
type Palette struct {
	EffectiveMode EffectiveMode `json:"effectiveMode"`
	Source        PaletteSource `json:"source"`
	NamedThemeID  string        `json:"namedThemeId,omitempty"`
	Colors        ColorSet      `json:"colors"`

	// MarkdownStyle is the glamour style name matching the mode.
	MarkdownStyle string `json:"markdownStyle"`
}

// Built-in design tokens for the unthemed application.
var (
	baseLightColors = ColorSet{
		Primary:    "#2563eb",
		Secondary:  "#7c3aed",
		Accent:     "#d97706",
		Background: "#f9fafb",
		Surface:    "#e5e7eb",
		Text:       "#111827",
		TextMuted:  "#6b7280",
		Border:     "#d1d5db",
		Success:    "#059669",
		Warning:    "#d97706",
		Error:      "#dc2626",
	}

	baseDarkColors = ColorSet{
		Primary:    "#60a5fa",
		Secondary:  "#a78bfa",
		Accent:     "#fbbf24",
		Background: "#111827",
		Surface:    "#1f2937",
		Text:       "#f9fafb",
		TextMuted:  "#9ca3af",
		Border:     "#374151",
		Success:    "#34d399",
		Warning:    "#fbbf24",
		Error:      "#f87171",
	}
)

// BuildBasePalette returns the built-in palette for an effective mode.
// Total and deterministic.
func BuildBasePalette(mode EffectiveMode) Palette {
	colors := baseDarkColors
	if mode == EffectiveLight {
		colors = baseLightColors
	}
	deriveVariants(&colors, mode)
	return Palette{
		EffectiveMode: mode,
		Source:        SourceBase,
		Colors:        colors,
		MarkdownStyle: markdownStyle(mode),
	}
}

// BuildNamedPalette resolves a named theme record against an effective
// mode. A record with no colors for the mode degrades to the base look,
// tagged with the record's id, rather than erroring. Total: never fails,
// never leaves a role empty.
func BuildNamedPalette(record *catalog.ThemeRecord, mode EffectiveMode) Palette {
	p := BuildBasePalette(mode)
	p.Source = SourceNamed
	if record != nil {
		p.NamedThemeID = record.ID
	}

	roles := record.ColorsFor(string(mode))
	if len(roles) == 0 {
		return p
	}

	// Core roles from the record; defaults already in place from the base.
	assignRole(&p.Colors.Primary, roles, "primary")
	assignRole(&p.Colors.Secondary, roles, "secondary")
	assignRole(&p.Colors.Background, roles, "background")
	assignRole(&p.Colors.Text, roles, "text")

	// Optional extended roles fall back to role-specific defaults.
	assignRole(&p.Colors.Accent, roles, "accent")
	assignRole(&p.Colors.Success, roles, "success")
	assignRole(&p.Colors.Warning, roles, "warning")
	assignRole(&p.Colors.Error, roles, "error")

	// Surface/muted/border follow the theme's background and text unless
	// the record names them explicitly.
	if v, ok := validRole(roles, "surface"); ok {
		p.Colors.Surface = v
	} else {
		p.Colors.Surface = adjustForMode(p.Colors.Background, 0.06, mode)
	}
	if v, ok := validRole(roles, "textMuted"); ok {
		p.Colors.TextMuted = v
	} else {
		p.Colors.TextMuted = Blend(p.Colors.Text, p.Colors.Background, 0.40)
	}
	if v, ok := validRole(roles, "border"); ok {
		p.Colors.Border = v
	} else {
		p.Colors.Border = Blend(p.Colors.Text, p.Colors.Background, 0.75)
	}

	deriveVariants(&p.Colors, mode)
	return p
}

// deriveVariants fills the computed interaction roles from the core roles
// with fixed lighten/darken factors.
func deriveVariants(colors *ColorSet, mode EffectiveMode) {
	colors.Hover = adjustForMode(colors.Primary, 0.08, mode)
	colors.SecondaryLight = Lighten(colors.Secondary, 0.15)
	colors.SecondaryDark = Darken(colors.Secondary, 0.15)
}

// adjustForMode darkens in light mode and lightens in dark mode, so the
// result always moves away from the background.
func adjustForMode(hex string, amount float64, mode EffectiveMode) string {
	if mode == EffectiveLight {
		return Darken(hex, amount)
	}
	return Lighten(hex, amount)
}

func assignRole(dst *string, roles map[string]string, key string) {
	if v, ok := validRole(roles, key); ok {
		*dst = v
	}
}

func validRole(roles map[string]string, key string) (string, bool) {
	v, ok := roles[key]
	if !ok || !IsValidHexColor(v) {
		return "", false
	}
	return v, true
}

func markdownStyle(mode EffectiveMode) string {
	if mode == EffectiveLight {
		return "light"
	}
	return "dark"
}

// Fingerprint hashes the renderable content of the palette. Two palettes
// with the same fingerprint render identically, which lets the engine skip
// republishing when an auto-mode re-evaluation resolves to the same result.
func (p Palette) Fingerprint() uint64 {
	h := xxhash.New()
	h.WriteString(string(p.EffectiveMode))
	h.WriteString("|")
	h.WriteString(string(p.Source))
	h.WriteString("|")
	h.WriteString(p.NamedThemeID)
	c := p.Colors
	for _, s := range []string{
		c.Primary, c.Secondary, c.Accent,
		c.Background, c.Surface,
		c.Text, c.TextMuted, c.Border,
		c.Hover, c.SecondaryLight, c.SecondaryDark,
		c.Success, c.Warning, c.Error,
	} {
		h.WriteString("|")
		h.WriteString(s)
	}
	return h.Sum64()
}
