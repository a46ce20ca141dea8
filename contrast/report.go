package contrast

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"webcheck/css"
	"webcheck/project"
)

// Result is contrast evaluation of one rule.
type Result struct {
	File       string // document name
	Selector   string
	Foreground color.RGBA
	Background color.RGBA
	Ratio      float64
	Minimum    float64
}

// Passed reports whether ratio satisfies the minimum.
func (r Result) Passed() bool {
	return r.Ratio >= r.Minimum
}

// Message renders result in the same form other checks use.
func (r Result) Message() string {
	status := "pass"
	if !r.Passed() {
		status = "fail"
	}
	return fmt.Sprintf("%s: in %s, %s has a contrast ratio of %.2f (minimum %s).",
		status, r.File, r.Selector, r.Ratio, strconv.FormatFloat(r.Minimum, 'f', -1, 64))
}

var (
	defaultForeground = color.RGBA{0, 0, 0, 0xff}
	defaultBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// rule accumulates winning color values of a selector.
type rule struct {
	fg, bg       string
	fgImp, bgImp bool
}

func (r *rule) apply(d css.Declaration) {
	var value string
	switch d.Property {
	case "color":
		if r.fgImp && !d.Important {
			return
		}
		r.fg, r.fgImp = d.Value, d.Important
		return
	case "background-color":
		value = d.Value
	case "background":
		c, ok := FindColor(d.Value)
		if !ok {
			return
		}
		value = fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64))
	default:
		return
	}
	if r.bgImp && !d.Important {
		return
	}
	r.bg, r.bgImp = value, d.Important
}

// Report evaluates every rule setting foreground or background color in every
// document. Missing half of the pair is taken from body (or html) rule, then
// from black on white defaults. Rules inside @media are not evaluated.
func Report(snap *project.Snapshot, minimum float64, log *zap.Logger) []Result {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("contrast")

	var results []Result
	for _, f := range snap.Files {
		rules, order := collect(f.Declarations())

		baseFg, baseBg := defaultForeground, defaultBackground
		for _, root := range []string{"html", "body"} {
			r, ok := rules[root]
			if !ok {
				continue
			}
			if c, ok := ParseColor(r.fg); ok {
				baseFg = c
			}
			if c, ok := ParseColor(r.bg); ok {
				baseBg = blend(c, baseBg)
			}
		}

		for _, sel := range order {
			r := rules[sel]
			fg, fgOK := ParseColor(r.fg)
			bg, bgOK := ParseColor(r.bg)
			if r.fg != "" && !fgOK {
				log.Debug("Unable to parse color", zap.String("file", f.Path), zap.String("selector", sel), zap.String("color", r.fg))
			}
			if r.bg != "" && !bgOK {
				log.Debug("Unable to parse color", zap.String("file", f.Path), zap.String("selector", sel), zap.String("background", r.bg))
			}
			if !fgOK && !bgOK {
				continue
			}
			if !fgOK {
				fg = baseFg
			}
			if !bgOK {
				bg = baseBg
			}
			bg = blend(bg, baseBg)
			results = append(results, Result{
				File:       f.Name(),
				Selector:   sel,
				Foreground: fg,
				Background: bg,
				Ratio:      Ratio(fg, bg),
				Minimum:    minimum,
			})
		}
	}
	return results
}

// collect groups color declarations by selector keeping order of first
// appearance. Selector lists are evaluated as a whole.
func collect(decls []css.Declaration) (map[string]*rule, []string) {
	rules := make(map[string]*rule)
	var order []string
	for _, d := range decls {
		if d.Media != "" || strings.HasPrefix(d.Selector, "@") {
			continue
		}
		switch d.Property {
		case "color", "background-color", "background":
		default:
			continue
		}
		r, ok := rules[d.Selector]
		if !ok {
			r = &rule{}
			rules[d.Selector] = r
			order = append(order, d.Selector)
		}
		r.apply(d)
	}
	return rules, order
}
