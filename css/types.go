package css

import (
	"strings"
)

// Declaration is a single property declaration in source order.
type Declaration struct {
	Selector  string // Selector list of enclosing rule as written (e.g. "h1, h2"), at-rule name for @font-face and @page
	Property  string // Lower-cased property name (e.g. "font-family")
	Value     string // Raw value without "!important"
	Important bool   // true if "!important" was used
	Media     string // Prelude of the enclosing @media rule if any (e.g. "screen and (max-width:600px)")
}

// AtRule is an at-rule occurrence, only presence is interesting to callers.
type AtRule struct {
	Name    string // Lower-cased at-keyword with "@" (e.g. "@media")
	Prelude string // Everything between the keyword and the block or semicolon
	Raw     string // Name and prelude as single string (e.g. "@media screen and (max-width:600px)")
	Line    int    // 1-based source line
}

// Stylesheet is one parsed style source: linked file, <style> element or
// imported file.
type Stylesheet struct {
	Source       string        // Path relative to project root or "<style>#N" for embedded styles
	Text         string        // Original text
	Declarations []Declaration // All declarations in source order, including ones inside @media
	AtRules      []AtRule      // All at-rules in source order, including nested ones
	Imports      []string      // @import URLs in source order
	Warnings     []string      // Recoverable parse problems
}

// Empty reports whether stylesheet has no text content at all.
func (s *Stylesheet) Empty() bool {
	return s == nil || strings.TrimSpace(s.Text) == ""
}

// DeclarationsOf returns declarations of the given property in source order.
func (s *Stylesheet) DeclarationsOf(property string) []Declaration {
	var out []Declaration
	for _, d := range s.Declarations {
		if d.Property == property {
			out = append(out, d)
		}
	}
	return out
}

// AtRulesContaining returns at-rules whose raw text contains marker.
func (s *Stylesheet) AtRulesContaining(marker string) []AtRule {
	var out []AtRule
	for _, r := range s.AtRules {
		if strings.Contains(r.Raw, marker) {
			out = append(out, r)
		}
	}
	return out
}

// SplitList splits comma separated value (font stacks, selector lists)
// ignoring commas inside quotes and parentheses. Entries are trimmed, empty
// entries are dropped.
func SplitList(s string) []string {
	var (
		out   []string
		depth int
		quote rune
		start int
	)
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			if depth > 0 {
				depth--
			}
		case r == ',' && depth == 0:
			if part := strings.TrimSpace(s[start:i]); part != "" {
				out = append(out, part)
			}
			start = i + 1
		}
	}
	if part := strings.TrimSpace(s[start:]); part != "" {
		out = append(out, part)
	}
	return out
}

// Unquote removes surrounding quotes from a string.
func Unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
