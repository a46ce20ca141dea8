// Package contrast computes WCAG 2 color contrast for CSS rules.
package contrast

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses CSS color value: named colors, #rgb, #rgba, #rrggbb,
// #rrggbbaa, rgb(), rgba(), hsl() and hsla(). Keywords which depend on
// context (inherit, currentcolor, transparent) are not colors here.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return color.RGBA{}, false
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		return parseFunc(s, rgbChannels)
	case strings.HasPrefix(s, "hsl(") || strings.HasPrefix(s, "hsla("):
		return parseFunc(s, hslChannels)
	}
	c, ok := colornames.Map[s]
	return c, ok
}

// FindColor returns the first token of a shorthand value (background) which
// is a color.
func FindColor(value string) (color.RGBA, bool) {
	if c, ok := ParseColor(value); ok {
		return c, true
	}
	depth, start := 0, 0
	for i, r := range value + " " {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case (r == ' ' || r == ',' || r == '/') && depth == 0:
			if c, ok := ParseColor(value[start:i]); ok {
				return c, true
			}
			start = i + 1
		}
	}
	return color.RGBA{}, false
}

func parseHex(h string) (color.RGBA, bool) {
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return color.RGBA{}, false
		}
	}
	nibble := func(i int) uint8 {
		v, _ := strconv.ParseUint(h[i:i+1], 16, 8)
		return uint8(v * 17)
	}
	byteAt := func(i int) uint8 {
		v, _ := strconv.ParseUint(h[i:i+2], 16, 8)
		return uint8(v)
	}
	switch len(h) {
	case 3:
		return color.RGBA{nibble(0), nibble(1), nibble(2), 0xff}, true
	case 4:
		return color.RGBA{nibble(0), nibble(1), nibble(2), nibble(3)}, true
	case 6:
		return color.RGBA{byteAt(0), byteAt(2), byteAt(4), 0xff}, true
	case 8:
		return color.RGBA{byteAt(0), byteAt(2), byteAt(4), byteAt(6)}, true
	}
	return color.RGBA{}, false
}

type channelsFunc func(args []string) (r, g, b float64, ok bool)

// parseFunc handles both legacy comma and modern space separated syntax with
// optional alpha.
func parseFunc(s string, channels channelsFunc) (color.RGBA, bool) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return color.RGBA{}, false
	}
	body := strings.NewReplacer(",", " ", "/", " ").Replace(s[open+1 : end])
	args := strings.Fields(body)
	if len(args) != 3 && len(args) != 4 {
		return color.RGBA{}, false
	}

	r, g, b, ok := channels(args[:3])
	if !ok {
		return color.RGBA{}, false
	}
	alpha := 1.0
	if len(args) == 4 {
		if alpha, ok = number(args[3], 1); !ok {
			return color.RGBA{}, false
		}
	}
	return color.RGBA{to8(r), to8(g), to8(b), to8(alpha)}, true
}

func rgbChannels(args []string) (r, g, b float64, ok bool) {
	var v [3]float64
	for i, a := range args {
		if v[i], ok = number(a, 255); !ok {
			return 0, 0, 0, false
		}
		v[i] /= 255
	}
	return v[0], v[1], v[2], true
}

func hslChannels(args []string) (r, g, b float64, ok bool) {
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return 0, 0, 0, false
	}
	sat, ok1 := number(args[1], 1)
	light, ok2 := number(args[2], 1)
	if !ok1 || !ok2 {
		return 0, 0, 0, false
	}
	h = math.Mod(math.Mod(h, 360)+360, 360) / 360

	hue := func(n float64) float64 {
		k := math.Mod(n+h*12, 12)
		a := sat * math.Min(light, 1-light)
		return light - a*math.Max(-1, math.Min(math.Min(k-3, 9-k), 1))
	}
	return hue(0), hue(8), hue(4), true
}

// number parses plain number or percentage, percentages are scaled to max.
// Results are clamped to [0, max].
func number(s string, max float64) (float64, bool) {
	pct := strings.HasSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	if pct {
		v = v / 100 * max
	}
	return math.Max(0, math.Min(v, max)), true
}

// to8 converts [0,1] value to byte.
func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(v, 1)) * 255))
}

// blend composes foreground over opaque background.
func blend(fg, bg color.RGBA) color.RGBA {
	if fg.A == 0xff {
		return fg
	}
	a := float64(fg.A) / 255
	mix := func(f, b uint8) uint8 {
		return uint8(math.Round(float64(f)*a + float64(b)*(1-a)))
	}
	return color.RGBA{mix(fg.R, bg.R), mix(fg.G, bg.G), mix(fg.B, bg.B), 0xff}
}

// Luminance returns WCAG 2 relative luminance of an opaque color.
func Luminance(c color.RGBA) float64 {
	linear := func(v uint8) float64 {
		s := float64(v) / 255
		if s <= 0.04045 {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	}
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

// Ratio returns WCAG 2 contrast ratio of two colors, from 1 to 21. Order of
// arguments does not matter. Translucent foreground is composed over
// background, translucent background over white.
func Ratio(fg, bg color.RGBA) float64 {
	bg = blend(bg, color.RGBA{0xff, 0xff, 0xff, 0xff})
	fg = blend(fg, bg)
	l1, l2 := Luminance(fg), Luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}
