package theme

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const achromaticEpsilon = 1e-6

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsValidHexColor reports whether s is a #RRGGBB hex color.
func IsValidHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

type rgb struct {
	r, g, b float64 // 0-255
}

func hexToRGB(hex string) rgb {
	trimmed := strings.TrimPrefix(hex, "#")
	if len(trimmed) < 6 {
		return rgb{}
	}
	r, _ := strconv.ParseUint(trimmed[0:2], 16, 8)
	g, _ := strconv.ParseUint(trimmed[2:4], 16, 8)
	b, _ := strconv.ParseUint(trimmed[4:6], 16, 8)
	return rgb{r: float64(r), g: float64(g), b: float64(b)}
}

func rgbToHex(c rgb) string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(c.r), clampByte(c.g), clampByte(c.b))
}

// hexToHSL converts #RRGGBB to HSL (h: 0-360, s: 0-1, l: 0-1).
func hexToHSL(hex string) (h, s, l float64) {
	c := hexToRGB(hex)
	r := c.r / 255.0
	g := c.g / 255.0
	b := c.b / 255.0

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2.0

	if math.Abs(max-min) < achromaticEpsilon {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60

	return h, s, l
}

// hslToHex converts HSL (h: 0-360, s: 0-1, l: 0-1) back to #RRGGBB.
func hslToHex(h, s, l float64) string {
	if s == 0 {
		v := clampFloat(l*255, 0, 255)
		return rgbToHex(rgb{r: v, g: v, b: v})
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	hNorm := h / 360.0
	r := hueToRGB(p, q, hNorm+1.0/3.0)
	g := hueToRGB(p, q, hNorm)
	b := hueToRGB(p, q, hNorm-1.0/3.0)

	return rgbToHex(rgb{
		r: clampFloat(r*255, 0, 255),
		g: clampFloat(g*255, 0, 255),
		b: clampFloat(b*255, 0, 255),
	})
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// Lighten increases HSL lightness by pct (0-1).
func Lighten(hex string, pct float64) string {
	h, s, l := hexToHSL(hex)
	l = math.Min(1.0, l+pct)
	return hslToHex(h, s, l)
}

// Darken decreases HSL lightness by pct (0-1).
func Darken(hex string, pct float64) string {
	h, s, l := hexToHSL(hex)
	l = math.Max(0.0, l-pct)
	return hslToHex(h, s, l)
}

// Blend mixes two hex colors: result = (1-t)*c1 + t*c2. t is clamped to [0,1].
func Blend(c1, c2 string, t float64) string {
	t = math.Max(0, math.Min(1, t))
	a := hexToRGB(c1)
	b := hexToRGB(c2)
	return rgbToHex(rgb{
		r: a.r*(1-t) + b.r*t,
		g: a.g*(1-t) + b.g*t,
		b: a.b*(1-t) + b.b*t,
	})
}

// Luminance returns relative luminance (0-1) using the sRGB formula.
func Luminance(hex string) float64 {
	c := hexToRGB(hex)
	r := linearize(c.r / 255.0)
	g := linearize(c.g / 255.0)
	b := linearize(c.b / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
