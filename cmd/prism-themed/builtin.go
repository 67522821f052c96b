package main

import "github.com/prismchat/prism/internal/catalog"

// builtinThemes is the catalog served by prism-themed, in listing order.
var builtinThemes = []catalog.ThemeRecord{
	{
		ThemeSummary: catalog.ThemeSummary{
			ID:          "corporate_blue",
			Name:        "corporate_blue",
			DisplayName: "Corporate Blue",
			Description: "Professional business environment with sophisticated blue tones",
			Category:    "professional",
		},
		ColorScheme: &catalog.ColorScheme{
			Light: map[string]string{
				"primary":    "#1e40af",
				"secondary":  "#3b82f6",
				"background": "#ffffff",
				"text":       "#0f172a",
			},
			Dark: map[string]string{
				"primary":    "#6366f1",
				"secondary":  "#8b5cf6",
				"background": "#0f172a",
				"text":       "#f1f5f9",
			},
		},
	},
	{
		ThemeSummary: catalog.ThemeSummary{
			ID:          "executive_dark",
			Name:        "executive_dark",
			DisplayName: "Executive Dark",
			Description: "Sophisticated dark theme for executives and premium users",
			Category:    "professional",
		},
		ColorScheme: &catalog.ColorScheme{
			Light: map[string]string{
				"primary":    "#111827",
				"secondary":  "#374151",
				"background": "#f9fafb",
				"text":       "#111827",
			},
			Dark: map[string]string{
				"primary":    "#d97706",
				"secondary":  "#f59e0b",
				"background": "#111827",
				"text":       "#f9fafb",
			},
		},
	},
	{
		ThemeSummary: catalog.ThemeSummary{
			ID:          "minimalist_light",
			Name:        "minimalist_light",
			DisplayName: "Minimalist Light",
			Description: "Clean, distraction-free interface for focused work",
			Category:    "professional",
		},
		ColorScheme: &catalog.ColorScheme{
			Light: map[string]string{
				"primary":    "#000000",
				"secondary":  "#525252",
				"background": "#ffffff",
				"text":       "#000000",
			},
			Dark: map[string]string{
				"primary":    "#ffffff",
				"secondary":  "#a3a3a3",
				"background": "#0a0a0a",
				"text":       "#ffffff",
			},
		},
	},
	{
		ThemeSummary: catalog.ThemeSummary{
			ID:          "focus_mode",
			Name:        "focus_mode",
			DisplayName: "Focus Mode",
			Description: "High contrast, productivity-focused theme for deep work",
			Category:    "professional",
		},
		ColorScheme: &catalog.ColorScheme{
			Light: map[string]string{
				"primary":    "#7c2d12",
				"secondary":  "#ea580c",
				"background": "#fffbeb",
				"text":       "#7c2d12",
			},
			Dark: map[string]string{
				"primary":    "#fb923c",
				"secondary":  "#f97316",
				"background": "#0c0a09",
				"text":       "#fbbf24",
			},
		},
	},
	{
		ThemeSummary: catalog.ThemeSummary{
			ID:          "creative_studio",
			Name:        "creative_studio",
			DisplayName: "Creative Studio",
			Description: "Design and creative work optimized with inspiring colors",
			Category:    "creative",
		},
		ColorScheme: &catalog.ColorScheme{
			Light: map[string]string{
				"primary":    "#7c3aed",
				"secondary":  "#8b5cf6",
				"background": "#faf5ff",
				"text":       "#581c87",
			},
			Dark: map[string]string{
				"primary":    "#8b5cf6",
				"secondary":  "#a78bfa",
				"background": "#1a0b2e",
				"text":       "#f3e8ff",
			},
		},
	},
	{
		ThemeSummary: catalog.ThemeSummary{
			ID:          "tech_console",
			Name:        "tech_console",
			DisplayName: "Tech Console",
			Description: "Developer-friendly theme with syntax highlighting optimization",
			Category:    "industry",
		},
		ColorScheme: &catalog.ColorScheme{
			Light: map[string]string{
				"primary":    "#059669",
				"secondary":  "#10b981",
				"background": "#f0fdf4",
				"text":       "#064e3b",
			},
			Dark: map[string]string{
				"primary":    "#10b981",
				"secondary":  "#34d399",
				"background": "#0f1419",
				"text":       "#a7f3d0",
			},
		},
	},
	{
		ThemeSummary: catalog.ThemeSummary{
			ID:          "medical_professional",
			Name:        "medical_professional",
			DisplayName: "Medical Professional",
			Description: "Healthcare industry optimized theme with calming colors",
			Category:    "industry",
		},
		ColorScheme: &catalog.ColorScheme{
			Light: map[string]string{
				"primary":    "#0369a1",
				"secondary":  "#0ea5e9",
				"background": "#f0f9ff",
				"text":       "#0c4a6e",
			},
			Dark: map[string]string{
				"primary":    "#0ea5e9",
				"secondary":  "#38bdf8",
				"background": "#0c1821",
				"text":       "#e0f2fe",
			},
		},
	},
	{
		ThemeSummary: catalog.ThemeSummary{
			ID:          "financial_dashboard",
			Name:        "financial_dashboard",
			DisplayName: "Financial Dashboard",
			Description: "Finance industry professional theme with data visualization focus",
			Category:    "industry",
		},
		ColorScheme: &catalog.ColorScheme{
			Light: map[string]string{
				"primary":    "#065f46",
				"secondary":  "#059669",
				"background": "#f0fdf4",
				"text":       "#064e3b",
			},
			Dark: map[string]string{
				"primary":    "#10b981",
				"secondary":  "#34d399",
				"background": "#0f1b0f",
				"text":       "#dcfce7",
			},
		},
	},
	{
		ThemeSummary: catalog.ThemeSummary{
			ID:          "high_contrast",
			Name:        "high_contrast",
			DisplayName: "High Contrast",
			Description: "WCAG AAA accessibility compliant high contrast theme",
			Category:    "accessibility",
		},
		ColorScheme: &catalog.ColorScheme{
			Light: map[string]string{
				"primary":    "#000000",
				"secondary":  "#000000",
				"background": "#ffffff",
				"text":       "#000000",
			},
			Dark: map[string]string{
				"primary":    "#ffffff",
				"secondary":  "#ffffff",
				"background": "#000000",
				"text":       "#ffffff",
			},
		},
	},
	{
		ThemeSummary: catalog.ThemeSummary{
			ID:          "night_shift",
			Name:        "night_shift",
			DisplayName: "Night Shift",
			Description: "Blue light reduced theme for comfortable evening use",
			Category:    "accessibility",
		},
		ColorScheme: &catalog.ColorScheme{
			Light: map[string]string{
				"primary":    "#a16207",
				"secondary":  "#d97706",
				"background": "#fffbeb",
				"text":       "#78350f",
			},
			Dark: map[string]string{
				"primary":    "#fbbf24",
				"secondary":  "#f59e0b",
				"background": "#1c1410",
				"text":       "#fef3c7",
			},
		},
	},
	{
		ThemeSummary: catalog.ThemeSummary{
			ID:          "accessibility_plus",
			Name:        "accessibility_plus",
			DisplayName: "Accessibility Plus",
			Description: "Enhanced readability and navigation for all users",
			Category:    "accessibility",
		},
		ColorScheme: &catalog.ColorScheme{
			Light: map[string]string{
				"primary":    "#1f2937",
				"secondary":  "#374151",
				"background": "#ffffff",
				"text":       "#111827",
			},
			Dark: map[string]string{
				"primary":    "#e5e7eb",
				"secondary":  "#d1d5db",
				"background": "#1f2937",
				"text":       "#f3f4f6",
			},
		},
	},
	{
		ThemeSummary: catalog.ThemeSummary{
			ID:          "warm_reading",
			Name:        "warm_reading",
			DisplayName: "Warm Reading",
			Description: "Comfortable warm theme for long conversations and reading",
			Category:    "accessibility",
		},
		ColorScheme: &catalog.ColorScheme{
			Light: map[string]string{
				"primary":    "#9a3412",
				"secondary":  "#c2410c",
				"background": "#fefce8",
				"text":       "#78350f",
			},
			Dark: map[string]string{
				"primary":    "#fb923c",
				"secondary":  "#f97316",
				"background": "#1c1814",
				"text":       "#fef3c7",
			},
		},
	},
}

// themeCategories lists every category used by the built-in catalog.
var themeCategories = []string{"professional", "creative", "industry", "accessibility"}
