package css

import (
	"strings"
)

// Subject returns lower-cased element name of the rightmost compound of a
// single complex selector - the element declarations actually apply to.
// "nav ul > li.active:hover" -> "li", ".card" -> "", "header::before" -> "header".
func Subject(selector string) string {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return ""
	}

	// rightmost compound, attribute selectors may contain combinator characters
	start, depth := 0, 0
	for i, r := range selector {
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ' ', '\t', '\n', '>', '+', '~':
			if depth == 0 {
				start = i + 1
			}
		}
	}
	compound := selector[start:]

	end := len(compound)
	if i := strings.IndexAny(compound, ".#[:"); i >= 0 {
		end = i
	}
	element := compound[:end]
	// namespace prefix (svg|rect)
	if _, local, found := strings.Cut(element, "|"); found {
		element = local
	}
	if element == "*" {
		return ""
	}
	return strings.ToLower(element)
}

// Subjects returns subject element names for every selector of a selector
// list, preserving order. Selectors without element part produce no entry.
func Subjects(list string) []string {
	var out []string
	for _, sel := range SplitList(list) {
		if el := Subject(sel); el != "" {
			out = append(out, el)
		}
	}
	return out
}

// Targets reports whether any selector of the list has element as its subject.
func Targets(list, element string) bool {
	for _, el := range Subjects(list) {
		if el == element {
			return true
		}
	}
	return false
}
