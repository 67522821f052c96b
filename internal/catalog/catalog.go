package catalog

// ThemeSummary is a single entry in the theme catalog listing.
type ThemeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Label returns the best display string for the theme.
func (t ThemeSummary) Label() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}

// ColorScheme holds the per-mode role→color maps of a named theme.
// Either map may be empty; a theme that lacks colors for a mode falls
// back to the built-in palette for that mode.
type ColorScheme struct {
	Light map[string]string `json:"light,omitempty"`
	Dark  map[string]string `json:"dark,omitempty"`
}

// ThemeRecord is the full definition of a named theme.
type ThemeRecord struct {
	ThemeSummary
	ColorScheme *ColorScheme `json:"colorScheme,omitempty"`
}

// ColorsFor returns the color set for a mode key ("light" or "dark"),
// or nil when the record has no colors for that mode.
func (r *ThemeRecord) ColorsFor(mode string) map[string]string {
	if r == nil || r.ColorScheme == nil {
		return nil
	}
	switch mode {
	case "light":
		return r.ColorScheme.Light
	case "dark":
		return r.ColorScheme.Dark
	}
	return nil
}
