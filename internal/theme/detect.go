package theme

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// DetectTerminal attempts to detect whether the terminal is using a light
// or dark color scheme. Returns EffectiveDark if detection fails, the safe
// default for most terminals.
func DetectTerminal() EffectiveMode {
	// COLORFGBG is "fg;bg" where high bg values indicate a light background.
	if colorfgbg := os.Getenv("COLORFGBG"); colorfgbg != "" {
		if isLightFromCOLORFGBG(colorfgbg) {
			return EffectiveLight
		}
		return EffectiveDark
	}

	if isLightTerminal() {
		return EffectiveLight
	}

	if runtime.GOOS == "darwin" && isMacOSLightMode() {
		return EffectiveLight
	}

	return EffectiveDark
}

// isLightFromCOLORFGBG parses the COLORFGBG environment variable.
// Standard ANSI: backgrounds 0-6 and 8 are dark, 7 and 9-15 are light.
func isLightFromCOLORFGBG(value string) bool {
	parts := strings.Split(value, ";")
	if len(parts) < 2 {
		return false
	}
	bg, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return bg == 7 || (bg >= 9 && bg <= 15)
}

// isLightTerminal checks terminal-specific environment hints.
func isLightTerminal() bool {
	if profile := os.Getenv("ITERM_PROFILE"); profile != "" {
		if strings.Contains(strings.ToLower(profile), "light") {
			return true
		}
	}
	if vscodeTheme := os.Getenv("VSCODE_THEME_KIND"); vscodeTheme != "" {
		if strings.Contains(strings.ToLower(vscodeTheme), "light") {
			return true
		}
	}
	if hint := os.Getenv("TERMINAL_THEME"); strings.EqualFold(hint, "light") {
		return true
	}
	return false
}

// isMacOSLightMode reads the system appearance. AppleInterfaceStyle only
// exists when dark mode is enabled, so a failed read means light mode.
func isMacOSLightMode() bool {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return true
	}
	return !strings.Contains(strings.ToLower(string(out)), "dark")
}
