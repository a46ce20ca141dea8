package rules

import (
	"fmt"
	"strconv"
	"strings"

	"webcheck/common"
	"webcheck/config"
	"webcheck/css"
	"webcheck/project"
)

// FontStack is a font-family value split into font names.
type FontStack []string

// ParseFontStack splits font-family value on commas, names are trimmed.
func ParseFontStack(value string) FontStack {
	return FontStack(css.SplitList(value))
}

// First returns first listed font lower-cased with quotes removed, the form
// compared against illegal fonts.
func (fs FontStack) First() string {
	if len(fs) == 0 {
		return ""
	}
	return strings.ToLower(displayName(fs[0]))
}

func (fs FontStack) key() string {
	return strings.Join(fs, "\x00")
}

// displayName is a font name as shown in messages: trimmed, without quotes.
func displayName(name string) string {
	return strings.TrimSpace(strings.NewReplacer(`'`, "", `"`, "").Replace(name))
}

// AuditFonts produces one verdict per document about the number of distinct
// font stacks it uses and illegal first-listed fonts. Pair order is
// (expected, actual).
func AuditFonts(files []project.FileFontRules, cfg *config.FontsConfig) []Verdict {
	illegal := make(map[string]bool, len(cfg.Illegal))
	for _, f := range cfg.Illegal {
		illegal[strings.ToLower(displayName(f))] = true
	}
	low := max(cfg.Min, 1)

	verdicts := make([]Verdict, 0, len(files))
	for _, ffr := range files {
		name := ffr.File.Name()

		stacks := make(map[string]bool)
		var used []string
		seenIllegal := make(map[string]bool)
		for _, r := range ffr.Rules {
			stack := ParseFontStack(r.Family)
			if len(stack) == 0 {
				continue
			}
			if first := stack.First(); illegal[first] && !seenIllegal[first] {
				seenIllegal[first] = true
				used = append(used, displayName(stack[0]))
			}
			stacks[stack.key()] = true
		}
		count := len(stacks)

		n := min(max(count, low), cfg.Max)
		expected := fmt.Sprintf("pass: %s has %d %s.", name, n, plural(n, "font", "fonts"))

		var actual string
		switch {
		case count == 0:
			actual = fmt.Sprintf("fail: %s has no font family applied.", name)
		case count > cfg.Max:
			actual = fmt.Sprintf("fail: %s has too many fonts (more than %d).", name, cfg.Max)
		case count < low:
			actual = fmt.Sprintf("fail: %s has too few fonts (less than %d).", name, low)
		case len(used) > 0:
			actual = fmt.Sprintf("fail: %s applies %s - select a different font.", name, strings.Join(used, " and "))
		default:
			actual = expected
		}

		v := newVerdict(common.RuleIDFontFamilies, name, common.PairOrderExpectedFirst, actual, expected)
		v.Detail = strconv.Itoa(count)
		verdicts = append(verdicts, v)
	}
	return verdicts
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
