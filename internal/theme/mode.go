package theme

// BaseMode is the user's light/dark/auto preference, independent of any
// named theme. Auto is not renderable by itself; it resolves against the
// terminal environment at read time.
type BaseMode string

const (
	ModeLight BaseMode = "light"
	ModeDark  BaseMode = "dark"
	ModeAuto  BaseMode = "auto"
)

// EffectiveMode is a BaseMode resolved to a concrete light/dark value.
// It is the only mode the palette factory ever computes against.
type EffectiveMode string

const (
	EffectiveLight EffectiveMode = "light"
	EffectiveDark  EffectiveMode = "dark"
)

// ParseBaseMode normalizes a stored mode string. Unknown values map to
// auto so a corrupted selection file never wedges startup.
func ParseBaseMode(s string) BaseMode {
	switch BaseMode(s) {
	case ModeLight:
		return ModeLight
	case ModeDark:
		return ModeDark
	default:
		return ModeAuto
	}
}

// Next cycles light → dark → auto → light. Used by the mode toggle.
func (m BaseMode) Next() BaseMode {
	switch m {
	case ModeLight:
		return ModeDark
	case ModeDark:
		return ModeAuto
	default:
		return ModeLight
	}
}

// DetectFunc reports the terminal environment's effective color scheme.
type DetectFunc func() EffectiveMode

// Resolve maps a BaseMode to an EffectiveMode, consulting detect only
// when the mode is auto. A nil detect falls back to dark.
func Resolve(mode BaseMode, detect DetectFunc) EffectiveMode {
	switch mode {
	case ModeLight:
		return EffectiveLight
	case ModeDark:
		return EffectiveDark
	}
	if detect == nil {
		return EffectiveDark
	}
	return detect()
}
